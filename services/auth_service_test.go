package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/repository"
	"github.com/maojude27/FInal-project-itmajor/utils"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour, zerolog.Nop())
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("New@Example.com", "Secret1!", "New User", "0812345678", "1 Test St", entity.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.NotEqual(t, "Secret1!", user.Password)

	token, got, err := svc.Login("new@example.com", "Secret1!", entity.RoleCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("dup@example.com", "Secret1!", "", "", "", entity.RoleCustomer)
	require.NoError(t, err)

	_, err = svc.Register("dup@example.com", "Other2@", "", "", "", entity.RoleCustomer)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"too short", "Ab1!", false},
		{"no uppercase", "secret1!", false},
		{"no symbol", "Secret11", false},
		{"boundary six chars", "Abc12!", true},
		{"long valid", `Str0ng"Pass`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			svc := newAuthService(db)

			_, err := svc.Register("pw@example.com", tc.password, "", "", "", entity.RoleCustomer)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, utils.ErrWeakPassword)
			}
		})
	}
}

func TestRegisterPasswordCollisionRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("first@example.com", "Shared1!", "", "", "", entity.RoleCustomer)
	require.NoError(t, err)

	_, err = svc.Register("second@example.com", "Shared1!", "", "", "", entity.RoleCustomer)
	require.ErrorIs(t, err, ErrPasswordInUse)
}

func TestLoginFilteredByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("customer@example.com", "Secret1!", "", "", "", entity.RoleCustomer)
	require.NoError(t, err)

	// the admin endpoint looks up role=admin only
	_, _, err = svc.Login("customer@example.com", "Secret1!", entity.RoleAdmin)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("customer@example.com", "Wrong1!x", entity.RoleCustomer)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("edit@example.com", "Secret1!", "Before", "111", "Old Addr", entity.RoleCustomer)
	require.NoError(t, err)

	contact := "0899999999"
	updated, err := svc.UpdateProfile(user.ID, &ProfilePatch{Contact: &contact})
	require.NoError(t, err)
	assert.Equal(t, "0899999999", updated.Contact)
	assert.Equal(t, "Before", updated.Name)
	assert.Equal(t, "edit@example.com", updated.Email)

	// password change goes through the policy and rehash
	weak := "short"
	_, err = svc.UpdateProfile(user.ID, &ProfilePatch{Password: &weak})
	require.ErrorIs(t, err, utils.ErrWeakPassword)

	strong := "Newpass2@"
	_, err = svc.UpdateProfile(user.ID, &ProfilePatch{Password: &strong})
	require.NoError(t, err)

	_, _, err = svc.Login("edit@example.com", "Newpass2@", entity.RoleCustomer)
	require.NoError(t, err)
}
