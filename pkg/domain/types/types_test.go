package types_test

import (
	"testing"

	"github.com/forge-lab/daedalus/pkg/domain/types"
)

func TestPhase_Validate(t *testing.T) {
	tests := []struct {
		name    string
		phase   types.Phase
		wantErr bool
	}{
		{"genesis", types.PhaseGenesis, false},
		{"implementation", types.PhaseImplementation, false},
		{"perfection", types.PhasePerfection, false},
		{"empty", "", true},
		{"uppercase", "GENESIS", true},
		{"unknown", "review", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.phase.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Phase.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPhase_Order(t *testing.T) {
	if !types.PhaseGenesis.Before(types.PhaseImplementation) {
		t.Error("genesis should come before implementation")
	}
	if !types.PhaseImplementation.Before(types.PhasePerfection) {
		t.Error("implementation should come before perfection")
	}
	if types.PhasePerfection.Before(types.PhaseGenesis) {
		t.Error("perfection should not come before genesis")
	}
	if got := types.Phase("unknown").Index(); got != -1 {
		t.Errorf("unknown phase Index() = %d, want -1", got)
	}
}

func TestProjectStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  types.ProjectStatus
		wantErr bool
	}{
		{"active", types.ProjectStatusActive, false},
		{"completed", types.ProjectStatusCompleted, false},
		{"archived", types.ProjectStatusArchived, false},
		{"empty", "", true},
		{"unknown", "deleted", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("ProjectStatus.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMessageRole_Validate(t *testing.T) {
	tests := []struct {
		name    string
		role    types.MessageRole
		wantErr bool
	}{
		{"user", types.MessageRoleUser, false},
		{"assistant", types.MessageRoleAssistant, false},
		{"system", types.MessageRoleSystem, false},
		{"empty", "", true},
		{"unknown", "bot", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.role.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("MessageRole.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
