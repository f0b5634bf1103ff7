package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRoleNotFound is matched by errors.Is for any RoleNotFoundError.
var ErrRoleNotFound = errors.New("role not found")

// RoleNotFoundError reports a role with no observations and lists the roles
// that do have data.
type RoleNotFoundError struct {
	// Role is the role that was requested.
	Role string

	// Valid lists the roles present in the table.
	Valid []string
}

// Error implements the error interface.
func (e *RoleNotFoundError) Error() string {
	return fmt.Sprintf("no rows for role %q (valid roles: %s)", e.Role, strings.Join(e.Valid, ", "))
}

// Is reports whether target is ErrRoleNotFound.
func (e *RoleNotFoundError) Is(target error) bool {
	return target == ErrRoleNotFound
}
