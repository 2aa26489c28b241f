// Package tui is the Bubble Tea front end of the board: keyboard and mouse
// input, drag and drop, forms, and the layered view.
package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/effects"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/kanban"
	"github.com/thenoetrevino/tablero/internal/services/project"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Board is the board service as seen by the TUI.
type Board interface {
	ProjectID() string
	View(query string) kanban.View
	Task(id string) (models.Task, bool)
	Column(id string) (models.Column, bool)
	SwitchProject(ctx context.Context, projectID string) error

	CreateColumn(ctx context.Context, title string) (models.Column, error)
	RenameColumn(ctx context.Context, id, title string) error
	DeleteColumn(ctx context.Context, id string) error
	MoveColumn(ctx context.Context, id string, toIndex int) error

	CreateTask(ctx context.Context, columnID string, init models.TaskInit) (models.Task, error)
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error
	DeleteTask(ctx context.Context, id string) error
	ShiftTask(ctx context.Context, id string, delta int) (bool, error)
	ReorderTask(ctx context.Context, id string, delta int) error

	Dragging() bool
	StartDrag(e dnd.Entity) bool
	Hover(t dnd.Target, ok bool) bool
	Release(ctx context.Context, t dnd.Target, ok bool) (dnd.Result, error)
	CancelDrag(ctx context.Context) (dnd.Result, error)
}

// ThemeStore persists the theme choice.
type ThemeStore interface {
	Theme(ctx context.Context) (string, bool, error)
	SetTheme(ctx context.Context, theme string) error
}

// Deps are the collaborators of the model.
type Deps struct {
	Board    Board
	Projects project.Service
	Themes   ThemeStore
	Config   *config.Config
	Logger   *slog.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Seed feeds the confetti generator; zero picks one from the clock.
	Seed uint64
}

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger

	Board    Board
	Projects project.Service
	Themes   ThemeStore

	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState
	DragState         *state.DragState
	SearchState       *state.SearchState

	theme    *themeState
	keys     keyMap
	confetti *effects.Confetti
	clock    func() time.Time

	// projects is the cached project list for the sidebar
	projects []models.Project
}

// InitialModel creates the TUI model. The board service must already have
// the active project loaded.
func InitialModel(ctx context.Context, deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	seed := deps.Seed
	if seed == 0 {
		seed = uint64(clock().UnixNano())
	}

	search := textinput.New()
	search.Placeholder = "filter tasks..."
	search.Prompt = "/ "
	search.CharLimit = 100

	m := Model{
		Ctx:               ctx,
		Config:            cfg,
		Logger:            logger,
		Board:             deps.Board,
		Projects:          deps.Projects,
		Themes:            deps.Themes,
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		DragState:         state.NewDragState(cfg.Drag.Activation()),
		SearchState:       state.NewSearchState(search),
		keys:              newKeyMap(cfg.KeyMappings),
		confetti:          effects.NewConfetti(0, 0, seed),
		clock:             clock,
	}
	m.theme = newThemeState(cfg.ColorScheme, m.storedTheme(), clock())
	m.reloadProjects()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	if m.theme.Preset() == themeGradient {
		return gradientTick()
	}
	return nil
}

// DbContext returns a context for one storage round trip.
func (m Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, 5*time.Second)
}

func (m Model) storedTheme() string {
	if m.Themes == nil {
		return ""
	}
	ctx, cancel := m.DbContext()
	defer cancel()
	name, ok, err := m.Themes.Theme(ctx)
	if err != nil {
		m.Logger.Warn("failed to read theme", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return name
}

// reloadProjects refreshes the sidebar list.
func (m *Model) reloadProjects() {
	if m.Projects == nil {
		return
	}
	ctx, cancel := m.DbContext()
	defer cancel()
	projects, err := m.Projects.List(ctx)
	if err != nil {
		m.Logger.Error("failed to load projects", "error", err)
		m.NotificationState.Add(state.LevelError, "Error loading projects")
		return
	}
	m.projects = projects
}
