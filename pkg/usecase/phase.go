package usecase

import (
	"strings"

	"github.com/forge-lab/daedalus/pkg/domain/types"
)

// Intent keywords that advance a project to the next phase. Matching is a
// heuristic: a false negative keeps the project where it is, which is always
// a valid state.
var (
	implementationKeywords = []string{"start", "code", "implement"}
	perfectionKeywords     = []string{"review", "finish", "polish"}
)

// NextPhase decides the lifecycle phase that should apply to the next
// generation step. Transitions only move forward; perfection is terminal and
// keeps accepting further refinement work.
func NextPhase(current types.Phase, prompt string) types.Phase {
	lowered := strings.ToLower(prompt)

	switch current {
	case types.PhaseGenesis:
		if containsAny(lowered, implementationKeywords) {
			return types.PhaseImplementation
		}
	case types.PhaseImplementation:
		if containsAny(lowered, perfectionKeywords) {
			return types.PhasePerfection
		}
	}

	return current
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
