package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/forge-lab/daedalus/pkg/domain/interfaces"
	"github.com/forge-lab/daedalus/pkg/domain/model"
	"github.com/forge-lab/daedalus/pkg/domain/types"
	"github.com/forge-lab/daedalus/pkg/repository/firestore"
	"github.com/forge-lab/daedalus/pkg/repository/memory"
)

func runProjectRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create allocates ID and defaults", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Project().Create(ctx, &model.Project{
			Name:        "Todo App",
			Description: "A todo application",
			AgentIDs:    []string{"agent-001"},
		})
		gt.NoError(t, err).Required()

		gt.String(t, created.ID).NotEqual("")
		gt.Value(t, created.Status).Equal(types.ProjectStatusActive)
		gt.Value(t, created.CurrentPhase).Equal(types.PhaseGenesis)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()

		created2, err := repo.Project().Create(ctx, &model.Project{Name: "Second"})
		gt.NoError(t, err).Required()
		gt.Value(t, created2.ID).NotEqual(created.ID)
	})

	t.Run("Get retrieves existing project", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Project().Create(ctx, &model.Project{
			Name:     "Dashboard",
			AgentIDs: []string{"agent-001", "agent-002"},
		})
		gt.NoError(t, err).Required()

		retrieved, err := repo.Project().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, retrieved.ID).Equal(created.ID)
		gt.Value(t, retrieved.Name).Equal("Dashboard")
		gt.Array(t, retrieved.AgentIDs).Length(2)
	})

	t.Run("Get returns error for non-existent project", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Project().Get(ctx, "proj-does-not-exist")
		gt.Value(t, err).NotNil()
	})

	t.Run("List orders by most-recently-updated first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Project().Create(ctx, &model.Project{Name: "First"})
		gt.NoError(t, err).Required()
		second, err := repo.Project().Create(ctx, &model.Project{Name: "Second"})
		gt.NoError(t, err).Required()

		// Touch the first project so it becomes the most recent
		first.Description = "touched"
		_, err = repo.Project().Update(ctx, first)
		gt.NoError(t, err).Required()

		projects, err := repo.Project().List(ctx)
		gt.NoError(t, err).Required()

		// The collection may hold records from other runs; only the
		// relative order of our two projects matters.
		firstIdx, secondIdx := -1, -1
		for i, p := range projects {
			switch p.ID {
			case first.ID:
				firstIdx = i
			case second.ID:
				secondIdx = i
			}
		}
		gt.Number(t, firstIdx).NotEqual(-1)
		gt.Number(t, secondIdx).NotEqual(-1)
		gt.Bool(t, firstIdx < secondIdx).True()
	})

	t.Run("Update merges fields and refreshes UpdatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Project().Create(ctx, &model.Project{Name: "Original"})
		gt.NoError(t, err).Required()

		created.Name = "Renamed"
		created.Status = types.ProjectStatusCompleted
		created.CurrentPhase = types.PhasePerfection

		updated, err := repo.Project().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.ID).Equal(created.ID)
		gt.Value(t, updated.Name).Equal("Renamed")
		gt.Value(t, updated.Status).Equal(types.ProjectStatusCompleted)
		gt.Value(t, updated.CurrentPhase).Equal(types.PhasePerfection)
		gt.Bool(t, updated.UpdatedAt.Before(created.UpdatedAt)).False()
		gt.Bool(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
	})

	t.Run("Update returns error for non-existent project", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Project().Update(ctx, &model.Project{ID: "proj-missing", Name: "X"})
		gt.Value(t, err).NotNil()
	})

	t.Run("AppendMessage round-trips through Get", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Project().Create(ctx, &model.Project{Name: "Chat"})
		gt.NoError(t, err).Required()
		before := created.UpdatedAt

		msg := &model.Message{
			ID:      model.NewMessageID(),
			Role:    types.MessageRoleUser,
			Content: "create a todo app",
		}
		updated, err := repo.Project().AppendMessage(ctx, created.ID, msg)
		gt.NoError(t, err).Required()
		gt.Array(t, updated.Messages).Length(1)

		retrieved, err := repo.Project().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		last := retrieved.Messages[len(retrieved.Messages)-1]
		gt.Value(t, last.ID).Equal(msg.ID)
		gt.Value(t, last.Role).Equal(msg.Role)
		gt.Value(t, last.Content).Equal(msg.Content)
		gt.Bool(t, retrieved.UpdatedAt.Before(before)).False()
	})

	t.Run("AppendMessage preserves insertion order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Project().Create(ctx, &model.Project{Name: "Transcript"})
		gt.NoError(t, err).Required()

		contents := []string{"first", "second", "third"}
		for _, c := range contents {
			_, err := repo.Project().AppendMessage(ctx, created.ID, &model.Message{
				ID:      model.NewMessageID(),
				Role:    types.MessageRoleUser,
				Content: c,
			})
			gt.NoError(t, err).Required()
		}

		retrieved, err := repo.Project().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, retrieved.Messages).Length(3)
		for i, c := range contents {
			gt.Value(t, retrieved.Messages[i].Content).Equal(c)
		}
	})

	t.Run("AppendFile keeps duplicates", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Project().Create(ctx, &model.Project{Name: "Files"})
		gt.NoError(t, err).Required()

		file := &model.ProjectFile{Name: "main.go", Content: "package main", Language: "go"}
		_, err = repo.Project().AppendFile(ctx, created.ID, file)
		gt.NoError(t, err).Required()
		_, err = repo.Project().AppendFile(ctx, created.ID, file)
		gt.NoError(t, err).Required()

		retrieved, err := repo.Project().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, retrieved.Files).Length(2)
	})

	t.Run("AppendMessage to missing project fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Project().AppendMessage(ctx, "proj-missing", &model.Message{
			ID:      model.NewMessageID(),
			Role:    types.MessageRoleUser,
			Content: "hello",
		})
		gt.Value(t, err).NotNil()
	})
}

func TestProjectRepository_Memory(t *testing.T) {
	runProjectRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestProjectRepository_Firestore(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	runProjectRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, os.Getenv("TEST_FIRESTORE_DATABASE_ID"))
		gt.NoError(t, err).Required()
		return repo
	})
}
