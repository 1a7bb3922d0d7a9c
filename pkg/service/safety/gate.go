package safety

import (
	"context"
	_ "embed"
	"strings"

	"github.com/m-mizutani/gollem"

	"github.com/forge-lab/daedalus/pkg/utils/logging"
)

//go:embed prompt/classifier_system.md
var classifierSystemPrompt string

// Policy is the verdict applied when the external classifier cannot be
// consulted.
type Policy string

const (
	PolicyAllow Policy = "allow"
	PolicyDeny  Policy = "deny"
)

// OnClassifierErrorDefault is the documented default: a classifier outage
// must not block legitimate work. Overridable via WithClassifierErrorPolicy.
const OnClassifierErrorDefault = PolicyAllow

// defaultDenylist holds high-risk terms that block a prompt without any
// external call.
var defaultDenylist = []string{
	"malware",
	"exploit",
	"hack",
	"ddos",
	"virus",
}

// DefaultDenylist returns a copy of the built-in denylist, for callers that
// want to extend it rather than replace it.
func DefaultDenylist() []string {
	return append([]string{}, defaultDenylist...)
}

// Gate combines a static keyword denylist with an LLM-backed SAFE/UNSAFE
// classification. The denylist always runs first and never requires the
// external capability.
type Gate struct {
	llmClient         gollem.LLMClient
	denylist          []string
	onClassifierError Policy
}

type Option func(*Gate)

// WithDenylist replaces the default denylist
func WithDenylist(terms []string) Option {
	return func(g *Gate) {
		g.denylist = terms
	}
}

// WithClassifierErrorPolicy overrides the verdict applied on classifier failure
func WithClassifierErrorPolicy(policy Policy) Option {
	return func(g *Gate) {
		g.onClassifierError = policy
	}
}

// New creates a safety gate. A nil LLM client disables the classification
// step; the gate then runs in keyword-only mode.
func New(llmClient gollem.LLMClient, opts ...Option) *Gate {
	g := &Gate{
		llmClient:         llmClient,
		denylist:          defaultDenylist,
		onClassifierError: OnClassifierErrorDefault,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check returns true when the prompt is safe to process. Denylist matches are
// rejected immediately; otherwise the external classifier is consulted once,
// with no retry. A classifier failure resolves to the configured policy.
func (g *Gate) Check(ctx context.Context, prompt string) bool {
	lowered := strings.ToLower(prompt)
	for _, term := range g.denylist {
		if strings.Contains(lowered, term) {
			logging.From(ctx).Info("prompt blocked by denylist", "term", term)
			return false
		}
	}

	if g.llmClient == nil {
		return true
	}

	session, err := g.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(classifierSystemPrompt),
	)
	if err != nil {
		return g.resolveClassifierError(ctx, err)
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return g.resolveClassifierError(ctx, err)
	}
	if len(resp.Texts) == 0 {
		return g.resolveClassifierError(ctx, nil)
	}

	verdict := strings.ToUpper(resp.Texts[0])
	return strings.Contains(verdict, "SAFE") && !strings.Contains(verdict, "UNSAFE")
}

func (g *Gate) resolveClassifierError(ctx context.Context, err error) bool {
	logger := logging.From(ctx)
	if err != nil {
		logger.Warn("safety classifier unavailable", "error", err.Error(), "policy", g.onClassifierError)
	} else {
		logger.Warn("safety classifier returned empty response", "policy", g.onClassifierError)
	}
	return g.onClassifierError == PolicyAllow
}
