package config

import (
	"github.com/m-mizutani/gollem"
	"github.com/urfave/cli/v3"

	"github.com/forge-lab/daedalus/pkg/service/safety"
)

// Safety holds CLI flags for the prompt safety gate
type Safety struct {
	denyOnError bool
	extraTerms  []string
}

// Flags returns CLI flags for safety gate configuration
func (s *Safety) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "safety-deny-on-error",
			Usage:       "Reject prompts when the safety classifier fails (default is to allow)",
			Sources:     cli.EnvVars("DAEDALUS_SAFETY_DENY_ON_ERROR"),
			Destination: &s.denyOnError,
		},
		&cli.StringSliceFlag{
			Name:        "safety-deny-term",
			Usage:       "Additional denylist terms, repeatable",
			Sources:     cli.EnvVars("DAEDALUS_SAFETY_DENY_TERMS"),
			Destination: &s.extraTerms,
		},
	}
}

// Configure builds the safety gate. A nil LLM client limits screening to the
// keyword denylist.
func (s *Safety) Configure(llmClient gollem.LLMClient) *safety.Gate {
	var opts []safety.Option
	if s.denyOnError {
		opts = append(opts, safety.WithClassifierErrorPolicy(safety.PolicyDeny))
	}
	if len(s.extraTerms) > 0 {
		opts = append(opts, safety.WithDenylist(append(safety.DefaultDenylist(), s.extraTerms...)))
	}
	return safety.New(llmClient, opts...)
}
