package governance

import "github.com/openlearn-dev/community-gov/src/govapi/types"

// Tally is the evaluated outcome of a proposal's running totals.
// Abstain weight counts toward the vote count (quorum) but not toward
// the approval ratio.
type Tally struct {
	QuorumMet      bool    `json:"quorumMet"`
	DecisiveWeight int64   `json:"decisiveWeight"`
	ApprovalRatio  float64 `json:"approvalRatio"`
	Passes         bool    `json:"passes"`
}

// Evaluate computes quorum and approval from a proposal's running
// totals. Pure function; safe for both the closing path and live
// "would this pass right now" previews.
func Evaluate(p *types.Proposal) Tally {
	t := Tally{
		QuorumMet:      p.TotalVotes >= p.QuorumRequired,
		DecisiveWeight: p.TotalWeightFor + p.TotalWeightAgainst,
	}
	// All-abstain outcomes keep a zero ratio: a proposal never passes
	// by default and we never divide by zero.
	if t.DecisiveWeight > 0 {
		t.ApprovalRatio = float64(p.TotalWeightFor) / float64(t.DecisiveWeight)
	}
	t.Passes = t.QuorumMet && t.ApprovalRatio >= p.ApprovalThreshold
	return t
}
