package prospects

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"
)

// Note types
const (
	NoteTypeCall    = "call"
	NoteTypeEmail   = "email"
	NoteTypeMeeting = "meeting"
	NoteTypeTask    = "task"
	NoteTypeNote    = "note"
)

// Note statuses
const (
	NoteStatusPending    = "pending"
	NoteStatusInProgress = "in_progress"
	NoteStatusCompleted  = "completed"
)

// Note is an interaction logged by staff on a prospect.
type Note struct {
	ID          string `validate:"required,uuid4"`
	ProspectID  string `validate:"required,uuid4"`
	Title       string `validate:"required,min=3,max=255"`
	Content     string `validate:"required,min=5"`
	Type        string `validate:"required,oneof=call email meeting task note"`
	Status      string `validate:"required,oneof=pending in_progress completed"`
	Important   bool
	Private     bool
	ScheduledAt *time.Time
	CreatedByID string `validate:"required"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate for validating Note struct
func (n *Note) Validate() error {
	return validators.Struct(n)
}

// VisibleTo reports whether the note can be read by userID. Private notes are
// only visible to their author.
func (n *Note) VisibleTo(userID string) bool {
	return !n.Private || n.CreatedByID == userID
}
