package prospects

import (
	"context"
	"time"
)

// ProspectService defines the CRM operations exposed to the API.
type ProspectService interface {
	// Create validates and stores a new prospect on behalf of username.
	Create(ctx context.Context, prospect *Prospect, username string) (*Prospect, error)
	Get(ctx context.Context, prospectID string) (*Prospect, error)
	List(ctx context.Context, query *ProspectQuery) ([]*Prospect, error)
	// Update overwrites the editable fields of an existing prospect.
	Update(ctx context.Context, prospect *Prospect, username string) (*Prospect, error)
	Delete(ctx context.Context, prospectID, username string) error
	Statistics(ctx context.Context, now time.Time) (*Statistics, error)
}

// ProspectActivityService groups the interactions recorded against a prospect.
type ProspectActivityService interface {
	AddNote(ctx context.Context, note *Note, username string) (*Note, error)
	// ListNotes returns the notes of a prospect visible to userID, newest first.
	ListNotes(ctx context.Context, prospectID, userID string) ([]*Note, error)
	// AddContactRequest records the request and acknowledges it by email.
	AddContactRequest(ctx context.Context, request *ContactRequest, username string) (*ContactRequest, error)
	AddNeedsAnalysis(ctx context.Context, analysis *NeedsAnalysisRequest, username string) (*NeedsAnalysisRequest, error)
	CompleteNeedsAnalysis(ctx context.Context, prospectID, analysisID, username string) (*NeedsAnalysisRequest, error)
}

// ProspectRepository defines the persistence operations for prospects and
// their child records.
type ProspectRepository interface {
	Create(ctx context.Context, prospect *Prospect) error
	List(ctx context.Context, query *ProspectQuery) ([]*Prospect, error)
	ListAll(ctx context.Context) ([]*Prospect, error)
	GetByID(ctx context.Context, prospectID string) (*Prospect, error)
	UpdateByID(ctx context.Context, prospect *Prospect) error
	DeleteByID(ctx context.Context, prospectID string) error

	CreateNote(ctx context.Context, note *Note) error
	ListNotes(ctx context.Context, prospectID string) ([]*Note, error)
	CreateContactRequest(ctx context.Context, request *ContactRequest) error
	CreateNeedsAnalysis(ctx context.Context, analysis *NeedsAnalysisRequest) error
	GetNeedsAnalysis(ctx context.Context, analysisID string) (*NeedsAnalysisRequest, error)
	UpdateNeedsAnalysis(ctx context.Context, analysis *NeedsAnalysisRequest) error
}

// ContactAcknowledger confirms receipt of a contact request to the prospect.
type ContactAcknowledger interface {
	AcknowledgeContactRequest(ctx context.Context, prospect *Prospect, request *ContactRequest) error
}
