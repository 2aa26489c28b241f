package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/kanban"
	"github.com/thenoetrevino/tablero/internal/services/project"
	"github.com/thenoetrevino/tablero/internal/storage"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// Screen geometry of the 140x40 test terminal with the sidebar open:
// three columns at x=28, 61 and 94, each 32 wide. Cards start at y=6 and are
// 5 tall; column headers span y=2..4. The dock overlays y=36..38 while a
// task is dragged, with chips 20 wide starting at x=27.
const (
	testWidth  = 140
	testHeight = 40

	todoX  = 35
	doingX = 70
	doneX  = 100

	headerY = 3
	card0Y  = 7
	card1Y  = 12
	bodyY   = 25
	dockY   = 37
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	board    *kanban.Service
	projects project.Service
	bridge   *storage.Bridge
}

func setupTestModel(t *testing.T, opts ...kanban.Option) (Model, testEnv) {
	t.Helper()
	ctx := context.Background()

	db, err := database.InitDB(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := logging.Discard()
	bridge := storage.New(database.NewKVRepository(db), logger)
	projects := project.NewService(bridge, project.WithLogger(logger))

	active, err := projects.Active(ctx)
	require.NoError(t, err)
	opts = append([]kanban.Option{kanban.WithLogger(logger)}, opts...)
	board, err := kanban.NewService(ctx, bridge, active.ID, opts...)
	require.NoError(t, err)

	m := InitialModel(ctx, Deps{
		Board:    board,
		Projects: projects,
		Themes:   bridge,
		Config:   config.Default(),
		Logger:   logger,
		Clock:    func() time.Time { return testNow },
		Seed:     1,
	})
	m = send(t, m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	return m, testEnv{board: board, projects: projects, bridge: bridge}
}

// update runs one message through the model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update must return a Model")
	return out, cmd
}

// send is update without the command.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	out, _ := update(t, m, msg)
	return out
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	}
	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok {
		return tea.KeyPressMsg(tea.Key{Code: []rune(rest)[0], Mod: tea.ModCtrl})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

func press(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func motion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func release(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func wheelDown(x, y int) tea.MouseWheelMsg {
	return tea.MouseWheelMsg{X: x, Y: y, Button: tea.MouseWheelDown}
}

func wheelUp(x, y int) tea.MouseWheelMsg {
	return tea.MouseWheelMsg{X: x, Y: y, Button: tea.MouseWheelUp}
}

// drag presses at from, nudges past the activation distance and then moves
// through each waypoint.
func drag(t *testing.T, m Model, fromX, fromY int, waypoints ...[2]int) Model {
	t.Helper()
	m = send(t, m, press(fromX, fromY))
	m = send(t, m, motion(fromX+2, fromY))
	for _, p := range waypoints {
		m = send(t, m, motion(p[0], p[1]))
	}
	return m
}

func columnTaskIDs(b *kanban.Service, columnID string) []string {
	var ids []string
	for _, task := range b.Snapshot().Tasks {
		if task.ColumnID == columnID {
			ids = append(ids, task.ID)
		}
	}
	return ids
}

func columnIDs(b *kanban.Service) []string {
	var ids []string
	for _, c := range b.Snapshot().Columns {
		ids = append(ids, c.ID)
	}
	return ids
}

// reloadBoard reads the persisted board back through a fresh service.
func reloadBoard(t *testing.T, env testEnv) models.BoardData {
	t.Helper()
	data, err := env.bridge.LoadBoard(context.Background(), env.board.ProjectID())
	require.NoError(t, err)
	return data
}
