package policy

import (
	"testing"

	"passwarden/internal/domain/entity"
	domainerrors "passwarden/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAuthorize_DecisionTable(t *testing.T) {
	standard := &entity.Actor{UserID: uuid.New(), Role: entity.RoleStandard}
	manager := &entity.Actor{UserID: uuid.New(), Role: entity.RolePasswordManager}
	other := uuid.New()

	tests := []struct {
		name    string
		actor   *entity.Actor
		op      Operation
		target  uuid.UUID
		wantErr error
	}{
		{"anonymous register", nil, OpRegister, uuid.Nil, nil},
		{"anonymous login", nil, OpLogin, uuid.Nil, nil},
		{"anonymous logout", nil, OpLogout, uuid.Nil, domainerrors.ErrUnauthorized},
		{"standard logout", standard, OpLogout, uuid.Nil, nil},

		{"anonymous self change", nil, OpChangeOwnPassword, other, domainerrors.ErrUnauthorized},
		{"standard self change", standard, OpChangeOwnPassword, standard.UserID, nil},
		{"standard change of another", standard, OpChangeOwnPassword, other, domainerrors.ErrForbidden},
		{"manager self change of another", manager, OpChangeOwnPassword, other, domainerrors.ErrForbidden},

		{"anonymous admin reset", nil, OpAdminResetPassword, other, domainerrors.ErrUnauthorized},
		{"standard admin reset", standard, OpAdminResetPassword, other, domainerrors.ErrForbidden},
		{"manager admin reset", manager, OpAdminResetPassword, other, nil},
		{"manager admin reset of self", manager, OpAdminResetPassword, manager.UserID, nil},

		{"anonymous grant", nil, OpGrantManager, other, domainerrors.ErrUnauthorized},
		{"standard grant", standard, OpGrantManager, other, domainerrors.ErrForbidden},
		{"standard grant to self", standard, OpGrantManager, standard.UserID, domainerrors.ErrForbidden},
		{"manager grant", manager, OpGrantManager, other, nil},

		{"anonymous view logs", nil, OpViewAuditLog, uuid.Nil, domainerrors.ErrUnauthorized},
		{"standard view logs", standard, OpViewAuditLog, uuid.Nil, domainerrors.ErrForbidden},
		{"manager view logs", manager, OpViewAuditLog, uuid.Nil, nil},

		{"unknown operation", manager, Operation(99), other, domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.op, tt.target)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestAuthorize_UnknownRoleIsNotPrivileged(t *testing.T) {
	actor := &entity.Actor{UserID: uuid.New(), Role: entity.Role("Password_Manager")}

	err := Authorize(actor, OpAdminResetPassword, uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAuthorize_ZeroActorIsUnauthenticated(t *testing.T) {
	err := Authorize(&entity.Actor{Role: entity.RolePasswordManager}, OpViewAuditLog, uuid.Nil)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "admin_reset_password", OpAdminResetPassword.String())
	assert.Equal(t, "operation(42)", Operation(42).String())
}
