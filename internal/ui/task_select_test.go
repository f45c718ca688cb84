package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []models.Task {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return []models.Task{
		{ID: 2, Description: "walk dog", CreatedAt: now},
		{ID: 5, Description: "water plants", CreatedAt: now},
		{ID: 9, Description: "call mom", CreatedAt: now},
	}
}

func press(m tea.Model, key string) (tea.Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	return m.Update(msg)
}

func TestTaskSelect_NavigateAndSelect(t *testing.T) {
	var m tea.Model = newTaskSelectModel("Complete which task?", sampleTasks())

	m, _ = press(m, "down")
	m, _ = press(m, "j")
	m, _ = press(m, "j") // clamped at the last row
	m, _ = press(m, "up")
	m, cmd := press(m, "enter")

	result := m.(taskSelectModel)
	assert.Equal(t, 5, result.selectedID)
	assert.False(t, result.quit)
	require.NotNil(t, cmd)
}

func TestTaskSelect_Cancel(t *testing.T) {
	var m tea.Model = newTaskSelectModel("Delete which task?", sampleTasks())

	m, cmd := press(m, "esc")
	result := m.(taskSelectModel)
	assert.True(t, result.quit)
	assert.Zero(t, result.selectedID)
	require.NotNil(t, cmd)
}

func TestTaskSelect_View(t *testing.T) {
	m := newTaskSelectModel("Complete which task?", sampleTasks())
	view := m.View()

	assert.Contains(t, view, "Complete which task?")
	assert.Contains(t, view, "walk dog")
	assert.Contains(t, view, "call mom")
	assert.Contains(t, view, "▶ ")
}

func TestPromptTaskSelection_NoTasks(t *testing.T) {
	_, err := PromptTaskSelection("Pick", nil)
	assert.Error(t, err)
}

func TestDescriptionPrompt(t *testing.T) {
	var m tea.Model = newDescriptionModel()

	m, cmd := press(m, "enter")
	result := m.(descriptionModel)
	assert.Nil(t, cmd, "empty input keeps the prompt open")
	assert.Equal(t, "Description cannot be empty", result.errMsg)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("  buy milk ")})
	m, cmd = press(m, "enter")
	result = m.(descriptionModel)
	require.NotNil(t, cmd)
	assert.Equal(t, "buy milk", result.value)
	assert.False(t, result.quit)
}

func TestDescriptionPrompt_Cancel(t *testing.T) {
	var m tea.Model = newDescriptionModel()
	m, _ = press(m, "esc")
	assert.True(t, m.(descriptionModel).quit)
}
