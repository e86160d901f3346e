// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can operate the system: an administrator or a seller.
// PasswordHash holds the bcrypt hash of the credential; the plaintext is never stored.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name or real name.
	Cedula       string    // National identity document number. Unique when present.
	Email        string    // Login identifier. Unique.
	PasswordHash string    // Salted bcrypt hash of the password.
	Role         Role      // Either RoleAdmin or RoleSeller.
	Phone        string
	Address      string
	Active       bool      // Inactive users are denied authentication.
	CreatedAt    time.Time // Timestamp of when this account was registered.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Actor is the acting identity passed explicitly to every mutating operation.
// Core operations trust it and never re-verify credentials.
type Actor struct {
	UserID uuid.UUID
	Role   Role
	Active bool
}

// Actor derives the acting identity of this user.
func (u *User) Actor() Actor {
	return Actor{UserID: u.ID, Role: u.Role, Active: u.Active}
}

// IsAdmin reports whether the actor holds the admin role and is active.
func (a Actor) IsAdmin() bool {
	return a.Active && a.Role == RoleAdmin
}

// CanSell reports whether the actor may register sales.
func (a Actor) CanSell() bool {
	return a.Active && (a.Role == RoleAdmin || a.Role == RoleSeller)
}
