package usecase

import (
	"github.com/m-mizutani/gollem"

	"github.com/forge-lab/daedalus/pkg/domain/interfaces"
	"github.com/forge-lab/daedalus/pkg/service/agents"
	"github.com/forge-lab/daedalus/pkg/service/safety"
)

// UseCases bundles the application use cases behind one constructor
type UseCases struct {
	Studio *StudioUseCase
	Ledger *LedgerUseCase

	repo      interfaces.Repository
	directory *agents.Directory
}

type Option func(*options)

type options struct {
	llmClient gollem.LLMClient
	gate      *safety.Gate
	generate  Generator
}

// WithLLMClient sets the LLM client used for both content generation and
// prompt classification. Without one, generation falls back to templates
// and the safety gate to keyword matching.
func WithLLMClient(client gollem.LLMClient) Option {
	return func(o *options) {
		o.llmClient = client
	}
}

// WithGate overrides the default safety gate
func WithGate(gate *safety.Gate) Option {
	return func(o *options) {
		o.gate = gate
	}
}

// WithGenerator overrides the content generator
func WithGenerator(g Generator) Option {
	return func(o *options) {
		o.generate = g
	}
}

func New(repo interfaces.Repository, directory *agents.Directory, opts ...Option) *UseCases {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.gate == nil {
		o.gate = safety.New(o.llmClient)
	}
	if o.generate == nil {
		if o.llmClient != nil {
			o.generate = LLMGenerator(o.llmClient)
		} else {
			o.generate = TemplateGenerator()
		}
	}

	ledger := NewLedgerUseCase(repo, directory)

	return &UseCases{
		Studio:    NewStudioUseCase(repo, directory, ledger, o.gate, o.generate),
		Ledger:    ledger,
		repo:      repo,
		directory: directory,
	}
}

// Repository exposes the backing repository, mainly for read endpoints
func (u *UseCases) Repository() interfaces.Repository {
	return u.repo
}

// Directory exposes the agent directory
func (u *UseCases) Directory() *agents.Directory {
	return u.directory
}
