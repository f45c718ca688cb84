package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptDescription asks for a task description on the terminal.
// Returns the trimmed text, or ErrCancelled on Esc / Ctrl+C.
func PromptDescription() (string, error) {
	p := tea.NewProgram(newDescriptionModel())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running prompt: %w", err)
	}

	result := finalModel.(descriptionModel)
	if result.quit {
		return "", ErrCancelled
	}
	return result.value, nil
}

type descriptionModel struct {
	textInput textinput.Model
	value     string
	errMsg    string
	quit      bool
}

func newDescriptionModel() descriptionModel {
	ti := textinput.New()
	ti.Placeholder = "buy milk"
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60
	return descriptionModel{textInput: ti}
}

func (m descriptionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m descriptionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			value := strings.TrimSpace(m.textInput.Value())
			if value == "" {
				m.errMsg = "Description cannot be empty"
				return m, nil
			}
			m.value = value
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		}
	}

	m.errMsg = ""
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m descriptionModel) View() string {
	s := "\n" + StyleTitle.Render("New task") + "\n\n"
	s += StyleInputBox.Render(m.textInput.View()) + "\n"
	if m.errMsg != "" {
		s += StyleError.Render(m.errMsg) + "\n"
	}
	s += "\n" + StyleSubtle.Render("Press Enter to add • Esc to cancel") + "\n"
	return s
}
