package huhforms

import (
	"testing"
	"time"

	"charm.land/huh/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
)

var timeNoon = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestPriorityOptions(t *testing.T) {
	opts := PriorityOptions()
	require.Len(t, opts, len(models.Priorities))
	assert.Equal(t, "High", opts[0].Value)
	assert.Equal(t, "Low", opts[2].Value)
}

func TestColorOptions(t *testing.T) {
	opts := ColorOptions()
	require.Len(t, opts, len(models.TaskColors)+1)
	assert.Equal(t, "", opts[0].Value)
	assert.Equal(t, "Yellow", opts[1].Key)
	assert.Equal(t, "yellow", opts[1].Value)
}

func TestFormsBuild(t *testing.T) {
	var title, content, name string
	priority := string(models.PriorityMedium)
	color := ""
	var confirm bool

	forms := []*huh.Form{
		CreateTaskForm(&title, &content, &priority, &color, false, 5),
		CreateTaskForm(&title, &content, &priority, &color, true, 0),
		CreateColumnForm(&name, false),
		CreateProjectForm(&name, true),
		CreateConfirmForm("Delete task?", "", &confirm),
	}
	for _, f := range forms {
		require.NotNil(t, f)
		f = f.WithTheme(CreateTableroTheme(*colors.GetPreset(colors.PresetDark, timeNoon)))
		f.Init()
		assert.Equal(t, huh.StateNormal, f.State)
	}
}
