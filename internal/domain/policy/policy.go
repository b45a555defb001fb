// Package policy holds the authorization decision table for every operation the service exposes.
//
// Decisions are stateless: the caller passes the authenticated actor (or nil), the operation and the
// target user, and receives nil, domainerrors.ErrUnauthorized or domainerrors.ErrForbidden.
// Admin password resets intentionally do not require the target's current password; that privilege
// belongs to RolePasswordManager alone.
package policy

import (
	"fmt"

	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"

	"github.com/google/uuid"
)

// Operation identifies a request kind subject to authorization.
type Operation int

const (
	OpRegister Operation = iota + 1
	OpLogin
	OpLogout
	OpChangeOwnPassword
	OpAdminResetPassword
	OpGrantManager
	OpViewAuditLog
)

// String returns a stable name used in logs and metric labels.
func (op Operation) String() string {
	switch op {
	case OpRegister:
		return "register"
	case OpLogin:
		return "login"
	case OpLogout:
		return "logout"
	case OpChangeOwnPassword:
		return "change_own_password"
	case OpAdminResetPassword:
		return "admin_reset_password"
	case OpGrantManager:
		return "grant_manager"
	case OpViewAuditLog:
		return "view_audit_log"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}

// Authorize decides whether actor may perform op against target.
// target is ignored by operations that have no target user.
func Authorize(actor *entity.Actor, op Operation, target uuid.UUID) error {
	switch op {
	case OpRegister, OpLogin:
		return nil

	case OpLogout:
		return requireAuthenticated(actor)

	case OpChangeOwnPassword:
		if err := requireAuthenticated(actor); err != nil {
			return err
		}
		if actor.UserID != target {
			return domainerrors.ErrForbidden.WithDetails("users may only change their own password")
		}

		return nil

	case OpAdminResetPassword, OpGrantManager, OpViewAuditLog:
		if err := requireAuthenticated(actor); err != nil {
			return err
		}
		if !canManagePasswords(actor.Role) {
			return domainerrors.ErrForbidden.WithDetails(op.String() + " requires the password_manager role")
		}

		return nil

	default:
		// Unknown operations are denied rather than allowed.
		return domainerrors.ErrForbidden.WithDetails("unknown operation")
	}
}

func requireAuthenticated(actor *entity.Actor) error {
	if !actor.IsAuthenticated() {
		return domainerrors.ErrUnauthorized
	}

	return nil
}

func canManagePasswords(role entity.Role) bool {
	switch role {
	case entity.RolePasswordManager:
		return true
	case entity.RoleStandard:
		return false
	default:
		return false
	}
}
