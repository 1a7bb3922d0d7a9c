package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/forge-lab/daedalus/pkg/domain/interfaces"
	"github.com/forge-lab/daedalus/pkg/domain/model"
	"github.com/forge-lab/daedalus/pkg/repository/firestore"
	"github.com/forge-lab/daedalus/pkg/repository/memory"
	"github.com/forge-lab/daedalus/pkg/service/agents"
	"github.com/forge-lab/daedalus/pkg/utils/kmutex"
)

// LedgerUseCase manages per-agent experience and knowledge records. All
// mutations run under a per-agent mutex: the read-then-write pattern on the
// memory repository has no concurrency control of its own.
type LedgerUseCase struct {
	repo      interfaces.Repository
	directory *agents.Directory
	locks     *kmutex.KMutex
}

func NewLedgerUseCase(repo interfaces.Repository, directory *agents.Directory) *LedgerUseCase {
	return &LedgerUseCase{
		repo:      repo,
		directory: directory,
		locks:     kmutex.New(),
	}
}

// GetMemory returns the agent's memory record, lazily creating one seeded
// from the agent's static catalog stats on first access. The initialization
// is idempotent: an existing record is never reset.
func (uc *LedgerUseCase) GetMemory(ctx context.Context, agentID string) (*model.AgentMemory, error) {
	uc.locks.Lock(agentID)
	defer uc.locks.Unlock(agentID)

	return uc.getOrInitLocked(ctx, agentID)
}

func (uc *LedgerUseCase) getOrInitLocked(ctx context.Context, agentID string) (*model.AgentMemory, error) {
	mem, err := uc.repo.AgentMemory().Get(ctx, agentID)
	if err == nil {
		return mem, nil
	}
	if !isNotFound(err) {
		return nil, goerr.Wrap(err, "failed to get agent memory", goerr.V(AgentIDKey, agentID))
	}

	agent := uc.directory.Get(agentID)
	if agent == nil {
		return nil, goerr.Wrap(ErrAgentNotFound, "cannot initialize memory for unknown agent",
			goerr.V(AgentIDKey, agentID))
	}

	created, err := uc.repo.AgentMemory().Put(ctx, model.NewAgentMemory(agent))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize agent memory", goerr.V(AgentIDKey, agentID))
	}
	return created, nil
}

// AddExperience awards experience to the agent. One call counts as one
// completed task; the level is recomputed from the new total.
func (uc *LedgerUseCase) AddExperience(ctx context.Context, agentID string, amount int) (*model.AgentMemory, error) {
	if amount <= 0 {
		return nil, goerr.Wrap(ErrInvalidInput, "experience amount must be positive",
			goerr.V(AgentIDKey, agentID),
			goerr.V("amount", amount),
		)
	}

	uc.locks.Lock(agentID)
	defer uc.locks.Unlock(agentID)

	mem, err := uc.getOrInitLocked(ctx, agentID)
	if err != nil {
		return nil, err
	}

	mem.AddExperience(amount)

	saved, err := uc.repo.AgentMemory().Put(ctx, mem)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save agent memory", goerr.V(AgentIDKey, agentID))
	}
	return saved, nil
}

// RecordInteraction associates a project with the agent's memory and logs
// the interaction context.
func (uc *LedgerUseCase) RecordInteraction(ctx context.Context, agentID, projectID, interactionContext string) error {
	uc.locks.Lock(agentID)
	defer uc.locks.Unlock(agentID)

	mem, err := uc.getOrInitLocked(ctx, agentID)
	if err != nil {
		return err
	}

	mem.RecordInteraction(projectID, interactionContext)

	if _, err := uc.repo.AgentMemory().Put(ctx, mem); err != nil {
		return goerr.Wrap(err, "failed to save agent memory",
			goerr.V(AgentIDKey, agentID),
			goerr.V(ProjectIDKey, projectID),
		)
	}
	return nil
}

// isNotFound reports whether err is a not-found signal from any repository
// backend.
func isNotFound(err error) bool {
	return errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)
}
