package automobile

import (
	"time"

	"github.com/google/uuid"
)

// Automobile is one stored record. Deleted records stay in the table
// and are only hidden from the active listing.
type Automobile struct {
	ID            uuid.UUID
	Name          string
	Color         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	OriginalColor bool
	Deleted       bool
}
