package summary

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mizutani/kotoba/internal/quiz"
	"github.com/mizutani/kotoba/internal/router"
	"github.com/mizutani/kotoba/internal/screen"
	"github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/ui/components"
	"github.com/mizutani/kotoba/internal/ui/layout"
	"github.com/mizutani/kotoba/internal/ui/theme"
)

// SummaryScreen displays the wrap-up after a quiz session.
type SummaryScreen struct {
	sessionType session.Type
	summary     quiz.Summary
	duration    time.Duration
	button      components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(t session.Type, sum quiz.Summary, duration time.Duration) *SummaryScreen {
	return &SummaryScreen{
		sessionType: t,
		summary:     sum,
		duration:    duration,
		button: components.NewButton("CONTINUE", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	s.button, cmd = s.button.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	title := fmt.Sprintf("%s complete!", sessionTitle(s.sessionType))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	mins := int(s.duration.Minutes())
	secs := int(s.duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Items: %d        Completed: %d        Misses: %d",
		sum.Total, sum.Completed, sum.Incorrect)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	if sum.Abandoned > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Set aside for next time: %d", sum.Abandoned)))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(accuracyColor(sum)).
		Bold(true).
		Render(accuracyLine(sum)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.button.View()))

	return b.String()
}

// accuracyLine formats the first-try accuracy over completed items.
func accuracyLine(sum quiz.Summary) string {
	if sum.Completed == 0 {
		return "No items completed"
	}
	return fmt.Sprintf("Accuracy: %.0f%%", accuracy(sum)*100)
}

// accuracy estimates the share of answers that were right the first
// time. Every miss added one extra answer, so completed items over
// completed plus misses is the first-try rate.
func accuracy(sum quiz.Summary) float64 {
	attempts := sum.Completed + sum.Incorrect
	if attempts == 0 {
		return 0
	}
	return float64(sum.Completed) / float64(attempts)
}

func accuracyColor(sum quiz.Summary) color.Color {
	switch {
	case sum.Completed == 0:
		return theme.TextDim
	case accuracy(sum) >= 0.8:
		return theme.Success
	case accuracy(sum) >= 0.5:
		return theme.Accent
	}
	return theme.Error
}

func sessionTitle(t session.Type) string {
	switch t {
	case session.TypeLesson:
		return "Lessons"
	case session.TypeReview:
		return "Reviews"
	case session.TypeSelfStudy:
		return "Self study"
	}
	return "Session"
}
