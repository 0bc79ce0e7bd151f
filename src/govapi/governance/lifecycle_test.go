package governance

import (
	"testing"

	"github.com/openlearn-dev/community-gov/src/govapi/types"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{types.StatusDraft, types.StatusPendingReview},
		{types.StatusPendingReview, types.StatusActive},
		{types.StatusPendingReview, types.StatusRejected},
		{types.StatusActive, types.StatusPassed},
		{types.StatusActive, types.StatusRejected},
		{types.StatusPassed, types.StatusImplemented},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to string }{
		{types.StatusDraft, types.StatusActive},
		{types.StatusDraft, types.StatusPassed},
		{types.StatusActive, types.StatusImplemented},
		{types.StatusRejected, types.StatusActive},
		{types.StatusImplemented, types.StatusPassed},
		{types.StatusPassed, types.StatusActive},
	}
	for _, tr := range denied {
		if CanTransition(tr.from, tr.to) {
			t.Errorf("expected %s -> %s to be denied", tr.from, tr.to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for status, terminal := range map[string]bool{
		types.StatusDraft:         false,
		types.StatusPendingReview: false,
		types.StatusActive:        false,
		types.StatusPassed:        false,
		types.StatusRejected:      true,
		types.StatusImplemented:   true,
	} {
		if got := IsTerminal(status); got != terminal {
			t.Errorf("IsTerminal(%s) = %v, want %v", status, got, terminal)
		}
	}
}
