// Package project manages the project list, the active project selection,
// and whole-workspace backups.
package project

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	List(ctx context.Context) ([]models.Project, error)
	Active(ctx context.Context) (models.Project, error)
	Find(ctx context.Context, ref string) (models.Project, error)

	// Write operations
	Create(ctx context.Context, name string) (models.Project, error)
	Rename(ctx context.Context, id, name string) (models.Project, error)
	Delete(ctx context.Context, id string) error
	Select(ctx context.Context, id string) error

	// Backup operations
	Export(ctx context.Context) (models.ExportDocument, error)
	Import(ctx context.Context, doc models.ExportDocument) error
	Reset(ctx context.Context) (int64, error)
}

// repository defines the persistence methods needed by the project service
// This interface is private to the service layer
type repository interface {
	Projects(ctx context.Context) ([]models.Project, error)
	SaveProjects(ctx context.Context, projects []models.Project) error
	ActiveProject(ctx context.Context) (string, error)
	SetActiveProject(ctx context.Context, projectID string) error
	DeleteProjectData(ctx context.Context, projectID string) error

	Export(ctx context.Context, now time.Time) (models.ExportDocument, error)
	Import(ctx context.Context, doc models.ExportDocument) error
	ClearAll(ctx context.Context) (int64, error)
}

// service implements Service interface with private repository
type service struct {
	repo   repository
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures the service.
type Option func(*service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator overrides project id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *service) {
		s.newID = newID
	}
}

// NewService creates a new project service with private repository
func NewService(repo repository, opts ...Option) Service {
	s := &service{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every project in creation order.
func (s *service) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	if len(projects) == 0 {
		return []models.Project{models.DefaultProject()}, nil
	}
	return projects, nil
}

// Active returns the active project. A stored id that no longer matches a
// project is repaired to the first project.
func (s *service) Active(ctx context.Context) (models.Project, error) {
	projects, err := s.List(ctx)
	if err != nil {
		return models.Project{}, err
	}
	id, err := s.repo.ActiveProject(ctx)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to load active project: %w", err)
	}

	if i := indexOf(projects, id); i != -1 {
		return projects[i], nil
	}

	first := projects[0]
	s.logger.Warn("active project missing, falling back", "stored_id", id, "project_id", first.ID)
	if err := s.repo.SetActiveProject(ctx, first.ID); err != nil {
		return models.Project{}, fmt.Errorf("failed to repair active project: %w", err)
	}
	return first, nil
}

// Find resolves ref as a project id, or failing that as a case-insensitive
// project name.
func (s *service) Find(ctx context.Context, ref string) (models.Project, error) {
	projects, err := s.List(ctx)
	if err != nil {
		return models.Project{}, err
	}
	if i := indexOf(projects, ref); i != -1 {
		return projects[i], nil
	}

	var matches []models.Project
	for _, p := range projects {
		if strings.EqualFold(p.Name, strings.TrimSpace(ref)) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return models.Project{}, ErrProjectNotFound
	case 1:
		return matches[0], nil
	default:
		return models.Project{}, ErrAmbiguousProject
	}
}

// Create adds a project and makes it active. A blank name becomes
// "Untitled Project".
func (s *service) Create(ctx context.Context, name string) (models.Project, error) {
	projects, err := s.List(ctx)
	if err != nil {
		return models.Project{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = models.UntitledProjectName
	}
	p := models.Project{ID: s.newID(), Name: name, CreatedAt: s.now().UTC()}

	if err := s.repo.SaveProjects(ctx, append(projects, p)); err != nil {
		return models.Project{}, fmt.Errorf("failed to save projects: %w", err)
	}
	if err := s.repo.SetActiveProject(ctx, p.ID); err != nil {
		return models.Project{}, fmt.Errorf("failed to activate project: %w", err)
	}

	s.logger.Info("project created", "project_id", p.ID, "name", p.Name)
	return p, nil
}

// Rename changes a project's name. A blank name keeps the old one.
func (s *service) Rename(ctx context.Context, id, name string) (models.Project, error) {
	projects, err := s.List(ctx)
	if err != nil {
		return models.Project{}, err
	}
	i := indexOf(projects, id)
	if i == -1 {
		return models.Project{}, ErrProjectNotFound
	}

	if name = strings.TrimSpace(name); name != "" {
		projects[i].Name = name
	}
	projects[i].UpdatedAt = s.now().UTC()

	if err := s.repo.SaveProjects(ctx, projects); err != nil {
		return models.Project{}, fmt.Errorf("failed to save projects: %w", err)
	}
	return projects[i], nil
}

// Delete removes a project and its board. The last project cannot be
// deleted. Deleting the active project activates the first remaining one.
func (s *service) Delete(ctx context.Context, id string) error {
	projects, err := s.List(ctx)
	if err != nil {
		return err
	}
	if len(projects) <= 1 {
		return ErrLastProject
	}
	i := indexOf(projects, id)
	if i == -1 {
		return ErrProjectNotFound
	}

	active, err := s.repo.ActiveProject(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active project: %w", err)
	}

	remaining := slices.Delete(projects, i, i+1)
	if err := s.repo.SaveProjects(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	if err := s.repo.DeleteProjectData(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project data: %w", err)
	}
	if active == id {
		if err := s.repo.SetActiveProject(ctx, remaining[0].ID); err != nil {
			return fmt.Errorf("failed to activate project: %w", err)
		}
	}

	s.logger.Info("project deleted", "project_id", id)
	return nil
}

// Select makes an existing project active.
func (s *service) Select(ctx context.Context, id string) error {
	projects, err := s.List(ctx)
	if err != nil {
		return err
	}
	if indexOf(projects, id) == -1 {
		return ErrProjectNotFound
	}
	if err := s.repo.SetActiveProject(ctx, id); err != nil {
		return fmt.Errorf("failed to activate project: %w", err)
	}
	return nil
}

// Export snapshots every project and board.
func (s *service) Export(ctx context.Context) (models.ExportDocument, error) {
	return s.repo.Export(ctx, s.now())
}

// Import replaces all projects and boards with doc.
func (s *service) Import(ctx context.Context, doc models.ExportDocument) error {
	return s.repo.Import(ctx, doc)
}

// Reset removes every stored project, board and preference.
func (s *service) Reset(ctx context.Context) (int64, error) {
	return s.repo.ClearAll(ctx)
}

func indexOf(projects []models.Project, id string) int {
	return slices.IndexFunc(projects, func(p models.Project) bool { return p.ID == id })
}
