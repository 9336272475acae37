package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mizutani/kotoba/internal/grader"
	"github.com/mizutani/kotoba/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput with Kotoba styling. When KanaMode is
// set, typed romaji is converted to hiragana on every keystroke so reading
// answers can be entered on an ASCII keyboard.
type AnswerInput struct {
	Model     textinput.Model
	KanaMode  bool
	submitted bool
	valid     bool
}

// NewAnswerInput creates a new styled answer input.
func NewAnswerInput(placeholder string, kanaMode bool) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Focus()

	return AnswerInput{
		Model:    ti,
		KanaMode: kanaMode,
	}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)

	if a.KanaMode {
		if converted := grader.ConvertLive(a.Model.Value()); converted != a.Model.Value() {
			a.Model.SetValue(converted)
			a.Model.CursorEnd()
		}
	}
	return a, cmd
}

// View renders the answer input.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Reset clears the input and any submitted state.
func (a *AnswerInput) Reset() {
	a.Model.SetValue("")
	a.submitted = false
	a.valid = false
}

// Submit marks the input as submitted with a validation result.
func (a *AnswerInput) Submit(valid bool) {
	a.submitted = true
	a.valid = valid
}
