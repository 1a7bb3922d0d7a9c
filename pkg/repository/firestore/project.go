package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/forge-lab/daedalus/pkg/domain/model"
	"github.com/forge-lab/daedalus/pkg/domain/types"
)

// projectDoc is the Firestore document representation of model.Project.
// Messages and files are embedded; the transcript is small per project and
// always read as a whole.
type projectDoc struct {
	ID           string            `firestore:"ID"`
	Name         string            `firestore:"Name"`
	Description  string            `firestore:"Description"`
	Status       string            `firestore:"Status"`
	CurrentPhase string            `firestore:"CurrentPhase"`
	Messages     []messageDoc      `firestore:"Messages"`
	Files        []projectFileDoc  `firestore:"Files"`
	AgentIDs     []string          `firestore:"AgentIDs"`
	CreatedAt    time.Time         `firestore:"CreatedAt"`
	UpdatedAt    time.Time         `firestore:"UpdatedAt"`
}

type messageDoc struct {
	ID        string    `firestore:"ID"`
	Role      string    `firestore:"Role"`
	Content   string    `firestore:"Content"`
	Code      string    `firestore:"Code,omitempty"`
	Language  string    `firestore:"Language,omitempty"`
	AgentID   string    `firestore:"AgentID,omitempty"`
	AgentName string    `firestore:"AgentName,omitempty"`
	Phase     string    `firestore:"Phase,omitempty"`
	CreatedAt time.Time `firestore:"CreatedAt"`
}

type projectFileDoc struct {
	Name     string `firestore:"Name"`
	Content  string `firestore:"Content"`
	Language string `firestore:"Language"`
}

func toProjectDoc(p *model.Project) *projectDoc {
	doc := &projectDoc{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Status:       string(p.Status),
		CurrentPhase: string(p.CurrentPhase),
		AgentIDs:     p.AgentIDs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	for _, m := range p.Messages {
		doc.Messages = append(doc.Messages, messageDoc{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			Code:      m.Code,
			Language:  m.Language,
			AgentID:   m.AgentID,
			AgentName: m.AgentName,
			Phase:     string(m.Phase),
			CreatedAt: m.CreatedAt,
		})
	}
	for _, f := range p.Files {
		doc.Files = append(doc.Files, projectFileDoc{
			Name:     f.Name,
			Content:  f.Content,
			Language: f.Language,
		})
	}
	return doc
}

func fromProjectDoc(d *projectDoc) *model.Project {
	p := &model.Project{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Status:       types.ProjectStatus(d.Status),
		CurrentPhase: types.Phase(d.CurrentPhase),
		AgentIDs:     d.AgentIDs,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	for _, m := range d.Messages {
		p.Messages = append(p.Messages, &model.Message{
			ID:        m.ID,
			Role:      types.MessageRole(m.Role),
			Content:   m.Content,
			Code:      m.Code,
			Language:  m.Language,
			AgentID:   m.AgentID,
			AgentName: m.AgentName,
			Phase:     types.Phase(m.Phase),
			CreatedAt: m.CreatedAt,
		})
	}
	for _, f := range d.Files {
		p.Files = append(p.Files, &model.ProjectFile{
			Name:     f.Name,
			Content:  f.Content,
			Language: f.Language,
		})
	}
	return p
}

func docToProject(doc *firestore.DocumentSnapshot) (*model.Project, error) {
	var d projectDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return fromProjectDoc(&d), nil
}

type projectRepository struct {
	client *firestore.Client
}

func newProjectRepository(client *firestore.Client) *projectRepository {
	return &projectRepository{
		client: client,
	}
}

func (r *projectRepository) collection() *firestore.CollectionRef {
	return r.client.Collection("projects")
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
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

	docRef := r.collection().Doc(created.ID)
	if _, err := docRef.Set(ctx, toProjectDoc(created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create project", goerr.V("id", created.ID))
	}

	return created, nil
}

func (r *projectRepository) Get(ctx context.Context, id string) (*model.Project, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get project", goerr.V("id", id))
	}

	project, err := docToProject(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal project", goerr.V("id", id))
	}

	return project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]*model.Project, error) {
	iter := r.collection().
		OrderBy("UpdatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	projects := make([]*model.Project, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate projects")
		}

		project, err := docToProject(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal project", goerr.V("doc", doc.Ref.ID))
		}
		projects = append(projects, project)
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) (*model.Project, error) {
	docRef := r.collection().Doc(project.ID)

	updated := project.Clone()
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", project.ID))
			}
			return err
		}

		existing, err := docToProject(doc)
		if err != nil {
			return err
		}

		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = time.Now().UTC()
		return tx.Set(docRef, toProjectDoc(updated))
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update project", goerr.V("id", project.ID))
	}

	return updated, nil
}

// appendInTx reads the project, applies mutate and writes it back inside a
// transaction. Firestore transactions retry on contention, which gives the
// append-then-update pattern optimistic concurrency.
func (r *projectRepository) appendInTx(ctx context.Context, id string, mutate func(*model.Project)) (*model.Project, error) {
	docRef := r.collection().Doc(id)

	var updated *model.Project
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
			}
			return err
		}

		project, err := docToProject(doc)
		if err != nil {
			return err
		}

		mutate(project)
		project.UpdatedAt = time.Now().UTC()
		updated = project
		return tx.Set(docRef, toProjectDoc(project))
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to append to project", goerr.V("id", id))
	}

	return updated, nil
}

func (r *projectRepository) AppendMessage(ctx context.Context, id string, msg *model.Message) (*model.Project, error) {
	appended := *msg
	return r.appendInTx(ctx, id, func(p *model.Project) {
		p.Messages = append(p.Messages, &appended)
	})
}

func (r *projectRepository) AppendFile(ctx context.Context, id string, file *model.ProjectFile) (*model.Project, error) {
	appended := *file
	return r.appendInTx(ctx, id, func(p *model.Project) {
		p.Files = append(p.Files, &appended)
	})
}
