package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/forge-lab/daedalus/pkg/cli/config"
	"github.com/forge-lab/daedalus/pkg/repository/memory"
)

func TestGemini_Configure(t *testing.T) {
	t.Run("returns nil client when project ID is empty", func(t *testing.T) {
		cfg := config.NewGeminiForTest("", "us-central1")
		client, err := cfg.Configure(context.Background())
		gt.NoError(t, err)
		gt.Value(t, client).Nil()
	})

	t.Run("returns flags", func(t *testing.T) {
		cfg := config.NewGeminiForTest("", "")
		flags := cfg.Flags()
		gt.Value(t, len(flags)).Equal(2)
	})
}

func TestRepository_Configure(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("memory", "", "")
		repo, err := cfg.Configure(context.Background())
		gt.NoError(t, err).Required()
		gt.Value(t, repo).NotNil()

		_, ok := repo.(*memory.Memory)
		gt.Bool(t, ok).True()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore backend requires project ID", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("firestore", "", "")
		_, err := cfg.Configure(context.Background())
		gt.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("redis", "", "")
		_, err := cfg.Configure(context.Background())
		gt.Error(t, err)
	})
}

func TestSafety_Configure(t *testing.T) {
	ctx := context.Background()

	t.Run("default gate blocks denylist terms", func(t *testing.T) {
		gate := config.NewSafetyForTest(false, nil).Configure(nil)
		gt.Bool(t, gate.Check(ctx, "write malware")).False()
		gt.Bool(t, gate.Check(ctx, "write a blog post")).True()
	})

	t.Run("extra terms extend the default denylist", func(t *testing.T) {
		gate := config.NewSafetyForTest(false, []string{"forbidden"}).Configure(nil)
		gt.Bool(t, gate.Check(ctx, "this is forbidden territory")).False()
		gt.Bool(t, gate.Check(ctx, "write malware")).False()
	})
}

func TestCatalog_Configure(t *testing.T) {
	t.Run("empty path uses built-in catalog", func(t *testing.T) {
		directory, err := config.NewCatalogForTest("").Configure()
		gt.NoError(t, err).Required()
		gt.Number(t, len(directory.List())).Equal(3)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := config.NewCatalogForTest("/no/such/catalog.toml").Configure()
		gt.Error(t, err)
	})
}
