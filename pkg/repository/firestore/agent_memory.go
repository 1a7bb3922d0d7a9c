package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/forge-lab/daedalus/pkg/domain/model"
)

type agentMemoryDoc struct {
	AgentID         string    `firestore:"AgentID"`
	Experience      int       `firestore:"Experience"`
	Level           int       `firestore:"Level"`
	SuccessfulTasks int       `firestore:"SuccessfulTasks"`
	Knowledge       []string  `firestore:"Knowledge"`
	ProjectIDs      []string  `firestore:"ProjectIDs"`
	CreatedAt       time.Time `firestore:"CreatedAt"`
	UpdatedAt       time.Time `firestore:"UpdatedAt"`
}

func toAgentMemoryDoc(m *model.AgentMemory) *agentMemoryDoc {
	return &agentMemoryDoc{
		AgentID:         m.AgentID,
		Experience:      m.Experience,
		Level:           m.Level,
		SuccessfulTasks: m.SuccessfulTasks,
		Knowledge:       m.Knowledge,
		ProjectIDs:      m.ProjectIDs,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromAgentMemoryDoc(d *agentMemoryDoc) *model.AgentMemory {
	return &model.AgentMemory{
		AgentID:         d.AgentID,
		Experience:      d.Experience,
		Level:           d.Level,
		SuccessfulTasks: d.SuccessfulTasks,
		Knowledge:       d.Knowledge,
		ProjectIDs:      d.ProjectIDs,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type agentMemoryRepository struct {
	client *firestore.Client
}

func newAgentMemoryRepository(client *firestore.Client) *agentMemoryRepository {
	return &agentMemoryRepository{
		client: client,
	}
}

func (r *agentMemoryRepository) collection() *firestore.CollectionRef {
	return r.client.Collection("agent_memories")
}

func (r *agentMemoryRepository) Get(ctx context.Context, agentID string) (*model.AgentMemory, error) {
	doc, err := r.collection().Doc(agentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "agent memory not found", goerr.V("agentID", agentID))
		}
		return nil, goerr.Wrap(err, "failed to get agent memory", goerr.V("agentID", agentID))
	}

	var d agentMemoryDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal agent memory", goerr.V("agentID", agentID))
	}

	return fromAgentMemoryDoc(&d), nil
}

func (r *agentMemoryRepository) Put(ctx context.Context, memory *model.AgentMemory) (*model.AgentMemory, error) {
	if memory.AgentID == "" {
		return nil, goerr.New("agent ID is required")
	}

	now := time.Now().UTC()
	saved := memory.Clone()
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = now
	}
	saved.UpdatedAt = now

	docRef := r.collection().Doc(saved.AgentID)
	if _, err := docRef.Set(ctx, toAgentMemoryDoc(saved)); err != nil {
		return nil, goerr.Wrap(err, "failed to put agent memory", goerr.V("agentID", saved.AgentID))
	}

	return saved, nil
}
