package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/forge-lab/daedalus/pkg/service/agents"
	"github.com/forge-lab/daedalus/pkg/utils/logging"
)

// Catalog holds CLI flags for the agent catalog
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "agent-catalog",
			Usage:       "Path to an agent catalog TOML file (built-in catalog when empty)",
			Sources:     cli.EnvVars("DAEDALUS_AGENT_CATALOG"),
			Destination: &c.path,
		},
	}
}

// Path returns the configured catalog file path
func (c *Catalog) Path() string {
	return c.path
}

// Configure loads the agent directory from the configured catalog file, or
// the built-in catalog when no path is set.
func (c *Catalog) Configure() (*agents.Directory, error) {
	if c.path == "" {
		logging.Default().Info("Using built-in agent catalog")
		return agents.NewDirectory(), nil
	}

	catalog, err := agents.LoadCatalog(c.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load agent catalog", goerr.V("path", c.path))
	}

	list := catalog.ToAgents()
	logging.Default().Info("Loaded agent catalog", "path", c.path, "agents", len(list))
	return agents.NewDirectory(list...), nil
}
