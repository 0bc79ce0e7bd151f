package governance

import (
	"testing"

	"github.com/openlearn-dev/community-gov/src/govapi/types"
)

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name  string
		check func() bool
		want  bool
	}{
		{"member creates level 1", func() bool { return policy.CanCreate(1, types.RoleMember) }, true},
		{"member cannot create level 2", func() bool { return policy.CanCreate(2, types.RoleMember) }, false},
		{"mentor creates level 2", func() bool { return policy.CanCreate(2, types.RoleMentor) }, true},
		{"council creates level 2", func() bool { return policy.CanCreate(2, types.RoleCouncil) }, true},
		{"instructor validates level 1", func() bool { return policy.CanValidate(1, types.RoleInstructor) }, true},
		{"instructor cannot validate level 2", func() bool { return policy.CanValidate(2, types.RoleInstructor) }, false},
		{"mentor cannot validate level 2", func() bool { return policy.CanValidate(2, types.RoleMentor) }, false},
		{"admin validates level 2", func() bool { return policy.CanValidate(2, types.RoleAdmin) }, true},
		{"member cannot validate level 1", func() bool { return policy.CanValidate(1, types.RoleMember) }, false},
		{"admin can override", func() bool { return policy.CanOverride(types.RoleAdmin) }, true},
		{"council can override", func() bool { return policy.CanOverride(types.RoleCouncil) }, true},
		{"mentor cannot override", func() bool { return policy.CanOverride(types.RoleMentor) }, false},
		{"unknown level denies everyone", func() bool { return policy.CanCreate(3, types.RoleCouncil) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
