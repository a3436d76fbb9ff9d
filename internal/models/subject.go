package models

import (
	"time"

	"github.com/google/uuid"
)

// Subject represents a teachable subject. Two subjects whose names differ only
// in letter case are the same subject; the registry enforces the dedup.
type Subject struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
