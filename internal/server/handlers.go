package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/josephgoksu/todo/store"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeAPIJSON(w, HealthResponse{Status: "ok", Tasks: len(s.store.List())})
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	writeAPIJSON(w, s.store.List())
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := s.store.Add(req.Description)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", task.ID))
	writeAPIJSONStatus(w, http.StatusCreated, task)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	task, found := s.store.Get(id)
	if !found {
		writeNotFound(w, id)
		return
	}
	writeAPIJSON(w, task)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	task, found, err := store.CompleteAndGet(s.store, id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if !found {
		writeNotFound(w, id)
		return
	}
	writeAPIJSON(w, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	deleted, err := s.store.Delete(id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if !deleted {
		writeNotFound(w, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseTaskID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeAPIError(w, http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return id, true
}

// writeStoreError maps store failures onto status codes: validation is the
// caller's fault, everything else is an internal storage failure whose
// details stay in the log.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrInvalidDescription) {
		writeAPIError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.Error("store operation failed", "request_id", RequestID(r.Context()), "error", err)
	msg := "storage failure"
	if errors.Is(err, store.ErrDataCorruption) {
		msg = "stored task data is corrupt"
	}
	writeAPIError(w, http.StatusInternalServerError, msg)
}

func writeNotFound(w http.ResponseWriter, id int) {
	writeAPIError(w, http.StatusNotFound, fmt.Sprintf("Task with ID %d not found", id))
}

func writeAPIError(w http.ResponseWriter, status int, msg string) {
	writeAPIJSONStatus(w, status, ErrorResponse{Error: msg})
}

func writeAPIJSON(w http.ResponseWriter, data interface{}) {
	writeAPIJSONStatus(w, http.StatusOK, data)
}

func writeAPIJSONStatus(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
