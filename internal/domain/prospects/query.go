package prospects

import (
	"fmt"

	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"
)

// ProspectQuery filters and paginates prospect listings.
type ProspectQuery struct {
	Status       string `validate:"omitempty,oneof=lead prospect qualified negotiation customer lost"`
	Priority     string `validate:"omitempty,oneof=low medium high urgent"`
	Source       string `validate:"omitempty,max=50"`
	Search       string `validate:"omitempty,max=100"`
	AssignedToID string `validate:"omitempty,uuid4"`
	Limit        int    `validate:"omitempty,gt=0,max=200"`
	Offset       int    `validate:"omitempty,gte=0"`
	SortBy       string `validate:"omitempty,oneof=created_at updated_at last_name status priority"`
	SortOrder    string `validate:"omitempty,oneof=asc desc"`
}

// NewProspectQuery creates a ProspectQuery with default values.
func NewProspectQuery() *ProspectQuery {
	return &ProspectQuery{
		Limit:     50,
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// Validate for validating ProspectQuery struct
func (q *ProspectQuery) Validate() error {
	if err := validators.Struct(q); err != nil {
		return fmt.Errorf("invalid prospect query: %w", err)
	}
	return nil
}

// Statistics summarises the funnel.
type Statistics struct {
	Total             int            `json:"total"`
	ByStatus          map[string]int `json:"by_status"`
	AverageLeadScore  float64        `json:"average_lead_score"`
	HotLeads          int            `json:"hot_leads"`
	OverdueFollowUps  int            `json:"overdue_follow_ups"`
	ConversionRatePct float64        `json:"conversion_rate_pct"`
}
