package entity

import "github.com/google/uuid"

// Category groups products. Names are unique.
// A category that still owns products cannot be deleted; historical sale lines
// must never disappear through a catalog cleanup.
type Category struct {
	ID   uuid.UUID
	Name string
}
