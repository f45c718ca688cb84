package server

// CreateTaskRequest is the payload for POST /api/tasks
type CreateTaskRequest struct {
	Description string `json:"description"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the response for /api/health
type HealthResponse struct {
	Status string `json:"status"`
	Tasks  int    `json:"tasks"`
}
