package governance

import (
	"testing"

	"github.com/openlearn-dev/community-gov/src/govapi/types"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		proposal   types.Proposal
		wantQuorum bool
		wantRatio  float64
		wantPasses bool
	}{
		{
			name: "quorum met and ratio above threshold",
			proposal: types.Proposal{
				QuorumRequired: 10, ApprovalThreshold: 0.6,
				TotalVotes: 12, TotalWeightFor: 70, TotalWeightAgainst: 30,
			},
			wantQuorum: true, wantRatio: 0.7, wantPasses: true,
		},
		{
			name: "split weight below threshold",
			proposal: types.Proposal{
				QuorumRequired: 10, ApprovalThreshold: 0.6,
				TotalVotes: 12, TotalWeightFor: 50, TotalWeightAgainst: 50,
			},
			wantQuorum: true, wantRatio: 0.5, wantPasses: false,
		},
		{
			name: "quorum not met",
			proposal: types.Proposal{
				QuorumRequired: 10, ApprovalThreshold: 0.6,
				TotalVotes: 5, TotalWeightFor: 100,
			},
			wantQuorum: false, wantRatio: 1.0, wantPasses: false,
		},
		{
			name: "all abstain never passes by default",
			proposal: types.Proposal{
				QuorumRequired: 10, ApprovalThreshold: 0.6,
				TotalVotes: 15, TotalWeightAbstain: 200,
			},
			wantQuorum: true, wantRatio: 0, wantPasses: false,
		},
		{
			name: "exact threshold passes",
			proposal: types.Proposal{
				QuorumRequired: 1, ApprovalThreshold: 0.6,
				TotalVotes: 10, TotalWeightFor: 60, TotalWeightAgainst: 40,
			},
			wantQuorum: true, wantRatio: 0.6, wantPasses: true,
		},
		{
			name: "zero quorum with no votes",
			proposal: types.Proposal{
				QuorumRequired: 0, ApprovalThreshold: 0.6,
			},
			wantQuorum: true, wantRatio: 0, wantPasses: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(&tt.proposal)
			if got.QuorumMet != tt.wantQuorum {
				t.Errorf("QuorumMet = %v, want %v", got.QuorumMet, tt.wantQuorum)
			}
			if got.ApprovalRatio != tt.wantRatio {
				t.Errorf("ApprovalRatio = %v, want %v", got.ApprovalRatio, tt.wantRatio)
			}
			if got.Passes != tt.wantPasses {
				t.Errorf("Passes = %v, want %v", got.Passes, tt.wantPasses)
			}
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	p := types.Proposal{
		QuorumRequired: 10, ApprovalThreshold: 0.6,
		TotalVotes: 12, TotalWeightFor: 70, TotalWeightAgainst: 30,
	}
	first := Evaluate(&p)
	second := Evaluate(&p)
	if first != second {
		t.Errorf("Evaluate not idempotent: %+v vs %+v", first, second)
	}
}
