package project

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
	clitest "github.com/thenoetrevino/tablero/internal/testutil/cli"
)

func TestProjectCmd_Subcommands(t *testing.T) {
	cmd := ProjectCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "create", "rename", "delete", "use"}, names)
}

func TestCreateProject(t *testing.T) {
	app := clitest.SetupCLITest(t)
	ctx := context.Background()

	t.Run("quiet prints the id", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, app, CreateCmd(), "", "--title", "Backend API", "--quiet")
		require.NoError(t, res.Err)

		id := strings.TrimSpace(res.Stdout)
		p, err := app.Projects.Find(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Backend API", p.Name)

		active, err := app.Projects.Active(ctx)
		require.NoError(t, err)
		assert.Equal(t, id, active.ID, "a new project becomes active")
	})

	t.Run("blank title is untitled", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, app, CreateCmd(), "", "--json")
		require.NoError(t, res.Err)

		out := testutil.ParseJSON(t, res.Stdout)
		assert.Equal(t, true, out["success"])
		data := out["data"].(map[string]any)
		assert.Equal(t, models.UntitledProjectName, data["name"])
	})

	t.Run("human output", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, app, CreateCmd(), "", "--title", "Docs")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Project 'Docs' created")
	})
}

func TestListProjects(t *testing.T) {
	app := clitest.SetupCLITest(t)
	ctx := context.Background()
	second, err := app.Projects.Create(ctx, "Second")
	require.NoError(t, err)

	t.Run("quiet lists ids in order", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, app, ListCmd(), "", "--quiet")
		require.NoError(t, res.Err)
		assert.Equal(t, models.DefaultProjectID+"\n"+second.ID+"\n", res.Stdout)
	})

	t.Run("json marks the active project", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, app, ListCmd(), "", "--json")
		require.NoError(t, res.Err)

		out := testutil.ParseJSON(t, res.Stdout)
		projects := out["projects"].([]any)
		require.Len(t, projects, 2)
		assert.Equal(t, false, projects[0].(map[string]any)["active"])
		assert.Equal(t, true, projects[1].(map[string]any)["active"])
		assert.Equal(t, "Second", projects[1].(map[string]any)["name"])
	})

	t.Run("human output", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, app, ListCmd(), "")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Found 2 projects")
		assert.Contains(t, res.Stdout, "My Project")
		assert.Contains(t, res.Stdout, "● ")
	})
}

func TestRenameProject(t *testing.T) {
	app := clitest.SetupCLITest(t)
	ctx := context.Background()

	res := clitest.ExecuteCLICommand(t, app, RenameCmd(), "", "my project", "Home")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Project renamed to 'Home'")

	p, err := app.Projects.Find(ctx, models.DefaultProjectID)
	require.NoError(t, err)
	assert.Equal(t, "Home", p.Name)
}

func TestRenameProject_NotFound(t *testing.T) {
	app := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, app, RenameCmd(), "", "nope", "Home")
	require.Error(t, res.Err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(res.Err))
	assert.Contains(t, res.Stderr, "project not found")
	assert.Contains(t, res.Stderr, "tablero project list")
}

func TestRenameProject_MissingArgs(t *testing.T) {
	app := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, app, RenameCmd(), "", "only-one")
	assert.Error(t, res.Err)
}

func TestDeleteProject(t *testing.T) {
	app := clitest.SetupCLITest(t)
	ctx := context.Background()
	p, err := app.Projects.Create(ctx, "Scratch")
	require.NoError(t, err)

	t.Run("declining keeps the project", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, app, DeleteCmd(), "n\n", "Scratch")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Cancelled")

		_, err := app.Projects.Find(ctx, p.ID)
		assert.NoError(t, err)
	})

	t.Run("confirming deletes and reactivates", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, app, DeleteCmd(), "y\n", "Scratch")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Project 'Scratch' deleted")

		projects, err := app.Projects.List(ctx)
		require.NoError(t, err)
		assert.Len(t, projects, 1)

		active, err := app.Projects.Active(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultProjectID, active.ID)
	})

	t.Run("last project is refused", func(t *testing.T) {
		res := clitest.ExecuteCLICommand(t, app, DeleteCmd(), "", models.DefaultProjectID, "--force")
		require.Error(t, res.Err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(res.Err))
	})
}

func TestDeleteProject_JSONError(t *testing.T) {
	app := clitest.SetupCLITest(t)

	res := clitest.ExecuteCLICommand(t, app, DeleteCmd(), "", "ghost", "--force", "--json")
	require.Error(t, res.Err)

	out := testutil.ParseJSON(t, res.Stdout)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "PROJECT_NOT_FOUND", out["error"].(map[string]any)["code"])
}

func TestUseProject(t *testing.T) {
	app := clitest.SetupCLITest(t)
	ctx := context.Background()
	_, err := app.Projects.Create(ctx, "Other")
	require.NoError(t, err)

	res := clitest.ExecuteCLICommand(t, app, UseCmd(), "", models.DefaultProjectID, "--quiet")
	require.NoError(t, res.Err)
	assert.Equal(t, models.DefaultProjectID+"\n", res.Stdout)

	active, err := app.Projects.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProjectID, active.ID)
}

func TestUseProject_Ambiguous(t *testing.T) {
	app := clitest.SetupCLITest(t)
	ctx := context.Background()
	_, err := app.Projects.Create(ctx, "Twin")
	require.NoError(t, err)
	_, err = app.Projects.Create(ctx, "twin")
	require.NoError(t, err)

	res := clitest.ExecuteCLICommand(t, app, UseCmd(), "", "TWIN")
	require.Error(t, res.Err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(res.Err))
}

func TestCommandsWithoutCLI(t *testing.T) {
	cmd := ListCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrNoCLI)
}
