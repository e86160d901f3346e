package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleSeller.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestActor_IsAdmin(t *testing.T) {
	assert.True(t, Actor{UserID: uuid.New(), Role: RoleAdmin, Active: true}.IsAdmin())
	assert.False(t, Actor{UserID: uuid.New(), Role: RoleAdmin, Active: false}.IsAdmin())
	assert.False(t, Actor{UserID: uuid.New(), Role: RoleSeller, Active: true}.IsAdmin())
}

func TestActor_CanSell(t *testing.T) {
	assert.True(t, Actor{Role: RoleSeller, Active: true}.CanSell())
	assert.True(t, Actor{Role: RoleAdmin, Active: true}.CanSell())
	assert.False(t, Actor{Role: RoleSeller, Active: false}.CanSell())
	assert.False(t, Actor{Role: Role("viewer"), Active: true}.CanSell())
}

func TestUser_Actor(t *testing.T) {
	user := &User{ID: uuid.New(), Role: RoleSeller, Active: true}

	actor := user.Actor()

	assert.Equal(t, user.ID, actor.UserID)
	assert.Equal(t, RoleSeller, actor.Role)
	assert.True(t, actor.Active)
}
