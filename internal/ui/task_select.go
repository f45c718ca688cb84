package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todo/models"
)

// ErrCancelled is returned when the user leaves a prompt without choosing.
var ErrCancelled = errors.New("selection cancelled")

// PromptTaskSelection lets the user pick one of tasks with the arrow keys.
// Returns the chosen task id.
func PromptTaskSelection(title string, tasks []models.Task) (int, error) {
	if len(tasks) == 0 {
		return 0, errors.New("no tasks to choose from")
	}

	p := tea.NewProgram(newTaskSelectModel(title, tasks))
	finalModel, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("error running task selection: %w", err)
	}

	result := finalModel.(taskSelectModel)
	if result.quit {
		return 0, ErrCancelled
	}
	return result.selectedID, nil
}

type taskSelectModel struct {
	title      string
	tasks      []models.Task
	cursor     int
	selectedID int
	quit       bool
}

func newTaskSelectModel(title string, tasks []models.Task) taskSelectModel {
	return taskSelectModel{title: title, tasks: tasks}
}

func (m taskSelectModel) Init() tea.Cmd {
	return nil
}

func (m taskSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quit = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.tasks) - 1
		case "enter", " ":
			m.selectedID = m.tasks[m.cursor].ID
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m taskSelectModel) View() string {
	s := "\n" + StyleSelectTitle.Render(m.title) + "\n\n"

	for i, task := range m.tasks {
		cursor := "  "
		style := StyleSelectNormal
		if m.cursor == i {
			cursor = "▶ "
			style = StyleSelectActive
		}
		line := fmt.Sprintf("%s%s %s", cursor, StyleSelectDim.Render(fmt.Sprintf("%3d %s", task.ID, StatusMark(task.Completed))), style.Render(task.Description))
		s += line + "\n"
	}

	s += "\n" + StyleSelectDim.Render("↑/↓ navigate • enter select • esc cancel") + "\n"
	return s
}
