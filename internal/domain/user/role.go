package user

import (
	"fmt"
	"strings"

	"lotledger/internal/shared/constants"
)

// Role is a user's workstation role. Roles map to casbin policy groups;
// the domain only validates membership in the closed set.
type Role string

const (
	RoleAdmin    Role = constants.RoleAdmin
	RoleAnalyst  Role = constants.RoleAnalyst
	RoleOperator Role = constants.RoleOperator
	RoleAuditor  Role = constants.RoleAuditor
)

// ValidRoles lists every assignable role.
var ValidRoles = []Role{RoleAdmin, RoleAnalyst, RoleOperator, RoleAuditor}

// ParseRole validates a role string.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range ValidRoles {
		if r == valid {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role: %s", s)
}

func (r Role) String() string { return string(r) }
func (r Role) IsAdmin() bool  { return r == RoleAdmin }
