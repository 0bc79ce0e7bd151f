package governance

import "github.com/openlearn-dev/community-gov/src/govapi/types"

// Policy is the role/level permission table. One table instead of
// conditionals scattered across handlers, so the rule set can be
// audited and tested on its own.
type Policy struct {
	Create   map[int][]string // proposal level -> roles allowed to create
	Validate map[int][]string // proposal level -> roles allowed to validate
	Override []string         // roles allowed to veto / force-implement
}

// DefaultPolicy returns the stock permission table:
// level 1 is open to every member and reviewable by any staff role;
// level 2 needs a high-trust author and an admin/council reviewer.
func DefaultPolicy() Policy {
	return Policy{
		Create: map[int][]string{
			1: {types.RoleMember, types.RoleInstructor, types.RoleMentor, types.RoleAdmin, types.RoleCouncil},
			2: {types.RoleMentor, types.RoleAdmin, types.RoleCouncil},
		},
		Validate: map[int][]string{
			1: {types.RoleInstructor, types.RoleMentor, types.RoleAdmin, types.RoleCouncil},
			2: {types.RoleAdmin, types.RoleCouncil},
		},
		Override: []string{types.RoleAdmin, types.RoleCouncil},
	}
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p Policy) CanCreate(level int, role string) bool {
	return contains(p.Create[level], role)
}

func (p Policy) CanValidate(level int, role string) bool {
	return contains(p.Validate[level], role)
}

func (p Policy) CanOverride(role string) bool {
	return contains(p.Override, role)
}
