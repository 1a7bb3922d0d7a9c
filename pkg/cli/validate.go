package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/forge-lab/daedalus/pkg/service/agents"
	"github.com/forge-lab/daedalus/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var catalogPath string

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate an agent catalog file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "agent-catalog",
				Usage:       "Path to the agent catalog TOML file",
				Required:    true,
				Sources:     cli.EnvVars("DAEDALUS_AGENT_CATALOG"),
				Destination: &catalogPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			catalog, err := agents.LoadCatalog(catalogPath)
			if err != nil {
				return goerr.Wrap(err, "catalog validation failed", goerr.V("path", catalogPath))
			}

			list := catalog.ToAgents()
			logger.Info("Catalog validation passed",
				"path", catalogPath,
				"agent_count", len(list),
			)
			for _, a := range list {
				logger.Info("Agent validated",
					"id", a.ID,
					"name", a.Name,
					"role", a.Role,
					"tasks", len(a.Tasks),
				)
			}

			return nil
		},
	}
}
