package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/forge-lab/daedalus/pkg/cli/config"
	"github.com/forge-lab/daedalus/pkg/domain/types"
	"github.com/forge-lab/daedalus/pkg/usecase"
	"github.com/forge-lab/daedalus/pkg/utils/logging"
)

func cmdGenerate() *cli.Command {
	var agentID string
	var projectID string
	var phase string
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var safetyCfg config.Safety
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "agent",
			Usage:       "Agent ID to run the prompt with",
			Value:       "agent-001",
			Sources:     cli.EnvVars("DAEDALUS_AGENT"),
			Destination: &agentID,
		},
		&cli.StringFlag{
			Name:        "project",
			Usage:       "Existing project ID (a new project is created when empty)",
			Destination: &projectID,
		},
		&cli.StringFlag{
			Name:        "phase",
			Usage:       "Initial phase for a new project (genesis, implementation or perfection)",
			Destination: &phase,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, safetyCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"g"},
		Usage:     "Run one prompt through the generation pipeline",
		ArgsUsage: "<prompt>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() == 0 {
				return goerr.New("prompt argument is required")
			}
			prompt := c.Args().First()

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			directory, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load agent directory")
			}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}

			ucOpts := []usecase.Option{
				usecase.WithGate(safetyCfg.Configure(llmClient)),
			}
			if llmClient != nil {
				ucOpts = append(ucOpts, usecase.WithLLMClient(llmClient))
			}
			uc := usecase.New(repo, directory, ucOpts...)

			result, err := uc.Studio.Execute(ctx, &usecase.ExecuteInput{
				Prompt:       prompt,
				AgentIDs:     []string{agentID},
				ProjectID:    projectID,
				CurrentPhase: types.Phase(phase),
			})
			if err != nil {
				return err
			}

			printResult(result)
			return nil
		},
	}
}

func printResult(r *usecase.ExecuteResult) {
	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)

	header.Fprintf(os.Stdout, "%s", r.AgentName)
	fmt.Fprintf(os.Stdout, " [%s / %s]\n\n", r.ProjectID, r.Phase)
	fmt.Fprintln(os.Stdout, r.Explanation)

	if r.Code != "" {
		fmt.Fprintln(os.Stdout)
		label.Fprintf(os.Stdout, "--- %s (%s) ---\n", r.FileName, r.Language)
		fmt.Fprintln(os.Stdout, r.Code)
	}

	if len(r.SuggestedActions) > 0 {
		fmt.Fprintln(os.Stdout)
		label.Fprintln(os.Stdout, "Next:")
		for _, action := range r.SuggestedActions {
			fmt.Fprintf(os.Stdout, "  - %s\n", action)
		}
	}
}
