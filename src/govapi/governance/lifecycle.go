package governance

import "github.com/openlearn-dev/community-gov/src/govapi/types"

// nextStatuses is the normal lifecycle transition table:
// draft -> pending_review -> active -> passed|rejected -> implemented.
// The veto path (any non-terminal -> rejected) deliberately bypasses
// this table and is only reachable through Service.Veto.
var nextStatuses = map[string][]string{
	types.StatusDraft:         {types.StatusPendingReview},
	types.StatusPendingReview: {types.StatusActive, types.StatusRejected},
	types.StatusActive:        {types.StatusPassed, types.StatusRejected},
	types.StatusPassed:        {types.StatusImplemented},
}

// CanTransition reports whether the normal lifecycle allows moving a
// proposal from one status to another.
func CanTransition(from, to string) bool {
	for _, s := range nextStatuses[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status string) bool {
	return status == types.StatusRejected || status == types.StatusImplemented
}
