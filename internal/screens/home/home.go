package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mizutani/kotoba/internal/config"
	"github.com/mizutani/kotoba/internal/quiz"
	"github.com/mizutani/kotoba/internal/router"
	"github.com/mizutani/kotoba/internal/screen"
	sessionscreen "github.com/mizutani/kotoba/internal/screens/session"
	sess "github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/srs"
	"github.com/mizutani/kotoba/internal/store"
	"github.com/mizutani/kotoba/internal/ui/components"
	"github.com/mizutani/kotoba/internal/ui/theme"
)

// stats is the dashboard data loaded from the store.
type stats struct {
	reviewsDue  int
	lessons     int
	subjects    int
	stageGroups []stageGroup
}

type stageGroup struct {
	name  string
	count int
}

// statsLoadedMsg carries the dashboard data.
type statsLoadedMsg struct {
	stats stats
	err   error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	store   *store.Store
	planner *quiz.Planner
	cfg     *config.Config

	menu   components.Menu
	stats  stats
	loaded bool
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *store.Store, planner *quiz.Planner, cfg *config.Config) *HomeScreen {
	h := &HomeScreen{
		store:   st,
		planner: planner,
		cfg:     cfg,
	}

	items := []components.MenuItem{
		{Label: "REVIEWS", Action: h.startSession(sess.TypeReview)},
		{Label: "LESSONS", Action: h.startSession(sess.TypeLesson)},
		{Label: "SELF STUDY", Action: h.startSession(sess.TypeSelfStudy)},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startSession(t sess.Type) func() tea.Cmd {
	return func() tea.Cmd {
		opts, err := h.sessionOptions(t)
		if err != nil {
			h.errMsg = err.Error()
			return nil
		}
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: sessionscreen.New(h.planner, opts, h.cfg.Quiz.BatchSize),
			}
		}
	}
}

// sessionOptions maps the configuration onto quiz options for a session
// of the given type.
func (h *HomeScreen) sessionOptions(t sess.Type) (quiz.Options, error) {
	lenience, err := h.cfg.Lenience()
	if err != nil {
		return quiz.Options{}, err
	}
	return quiz.Options{
		Type:                  t,
		Delayed:               h.cfg.Quiz.DelayedReport,
		Lenience:              lenience,
		SeparateKanjiReadings: h.cfg.Quiz.SeparateKanjiReadings,
		Settings:              h.cfg,
	}, nil
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// loadStats queries the dashboard counters.
func (h *HomeScreen) loadStats() tea.Cmd {
	st := h.store
	return func() tea.Msg {
		ctx := context.Background()

		due, err := st.Assignments().CountDue(ctx, time.Now())
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		lessons, err := st.Assignments().Lessons(ctx, 0)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		subjects, err := st.Subjects().Count(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		counts, err := st.Assignments().StageCounts(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}

		return statsLoadedMsg{stats: stats{
			reviewsDue:  due,
			lessons:     len(lessons),
			subjects:    subjects,
			stageGroups: groupStages(counts),
		}}
	}
}

// groupStages folds per-stage counts into the five display groups.
func groupStages(counts map[srs.Stage]int) []stageGroup {
	groups := []stageGroup{
		{name: "Apprentice"},
		{name: "Guru"},
		{name: "Master"},
		{name: "Enlightened"},
		{name: "Burned"},
	}
	for stage, n := range counts {
		switch {
		case stage >= srs.StageApprentice1 && stage <= srs.StageApprentice4:
			groups[0].count += n
		case stage == srs.StageGuru1 || stage == srs.StageGuru2:
			groups[1].count += n
		case stage == srs.StageMaster:
			groups[2].count += n
		case stage == srs.StageEnlightened:
			groups[3].count += n
		case stage == srs.StageBurned:
			groups[4].count += n
		}
	}
	return groups
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.err != nil {
			h.errMsg = msg.err.Error()
			return h, nil
		}
		h.stats = msg.stats
		h.loaded = true
		return h, nil

	case router.ScreenResumedMsg:
		// A finished session changes the counters; reload them on the
		// way back.
		return h, h.loadStats()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderTitle(width))

	if h.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(h.errMsg))
	} else {
		sections = append(sections, h.renderStats(width))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderTitle(width int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("ことば  KOTOBA")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Japanese vocabulary, one review at a time")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, subtitle)
}

func (h *HomeScreen) renderStats(width int) string {
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Loading...")
	}

	topLine := fmt.Sprintf("Reviews due: %d    Lessons: %d    Subjects: %d",
		h.stats.reviewsDue, h.stats.lessons, h.stats.subjects)

	var parts []string
	for _, g := range h.stats.stageGroups {
		parts = append(parts, fmt.Sprintf("%s %d", g.name, g.count))
	}
	stageLine := strings.Join(parts, "  ·  ")

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(topLine) + "\n" +
		lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(stageLine)
}
