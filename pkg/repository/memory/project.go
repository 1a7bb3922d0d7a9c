package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forge-lab/daedalus/pkg/domain/model"
	"github.com/forge-lab/daedalus/pkg/domain/types"
)

type projectRepository struct {
	mu       sync.RWMutex
	projects map[string]*model.Project
}

func newProjectRepository() *projectRepository {
	return &projectRepository{
		projects: make(map[string]*model.Project),
	}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := project.Clone()
	if created.ID == "" {
		created.ID = model.NewProjectID()
	}
	if created.Status == "" {
		created.Status = types.ProjectStatusActive
	}
	if created.CurrentPhase == "" {
		created.CurrentPhase = types.PhaseGenesis
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.projects[created.ID] = created
	return created.Clone(), nil
}

func (r *projectRepository) Get(ctx context.Context, id string) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, exists := r.projects[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	}

	return project.Clone(), nil
}

func (r *projectRepository) List(ctx context.Context) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		result = append(result, p.Clone())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result, nil
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.updateLocked(project)
}

// updateLocked merges project state under an already-held write lock
func (r *projectRepository) updateLocked(project *model.Project) (*model.Project, error) {
	existing, exists := r.projects[project.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", project.ID))
	}

	updated := project.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.projects[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *projectRepository) AppendMessage(ctx context.Context, id string, msg *model.Message) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.projects[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	}

	updated := existing.Clone()
	appended := *msg
	updated.Messages = append(updated.Messages, &appended)

	return r.updateLocked(updated)
}

func (r *projectRepository) AppendFile(ctx context.Context, id string, file *model.ProjectFile) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.projects[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	}

	updated := existing.Clone()
	appended := *file
	updated.Files = append(updated.Files, &appended)

	return r.updateLocked(updated)
}
