// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPasswordHashesAndChecks(t *testing.T) {
	user := &User{}

	assert.NoError(t, user.SetPassword("StrongPass1!"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "StrongPass1!", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("StrongPass1!"))
	assert.Error(t, user.CheckPassword("WrongPass1!"))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: UserRoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: UserRoleMember}).IsAdmin())
}

func TestMovementTypeForDelta(t *testing.T) {
	assert.Equal(t, MovementTypeStockAdded, MovementTypeForDelta(5))
	assert.Equal(t, MovementTypeStockAdded, MovementTypeForDelta(0))
	assert.Equal(t, MovementTypeStockRemoved, MovementTypeForDelta(-5))
}
