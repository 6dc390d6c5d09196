package models

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"

	"gorm.io/gorm"
)

// ProspectModel is the GORM database model for prospects
type ProspectModel struct {
	ID                       string `gorm:"primaryKey;type:uuid"`
	FirstName                string `gorm:"not null;type:varchar(100)"`
	LastName                 string `gorm:"not null;index;type:varchar(100)"`
	Email                    string `gorm:"not null;index;type:varchar(180)"`
	Phone                    string `gorm:"type:varchar(30)"`
	Company                  string `gorm:"type:varchar(150)"`
	Position                 string `gorm:"type:varchar(100)"`
	Status                   string `gorm:"not null;index;type:varchar(20)"`
	Source                   string `gorm:"type:varchar(50)"`
	Priority                 string `gorm:"not null;type:varchar(20)"`
	EstimatedBudget          *float64
	ExpectedClosureDate      *time.Time
	AssignedToID             *string  `gorm:"type:uuid;index"`
	SessionRegistrationCount int      `gorm:"not null;default:0"`
	InterestedFormationIDs   []string `gorm:"serializer:json;type:text"`
	LastContactDate          *time.Time
	NextFollowUpDate         *time.Time            `gorm:"index"`
	ContactRequests          []ContactRequestModel `gorm:"foreignKey:ProspectID;constraint:OnDelete:CASCADE"`
	NeedsAnalyses            []NeedsAnalysisModel  `gorm:"foreignKey:ProspectID;constraint:OnDelete:CASCADE"`
	Timestamps
}

// TableName specifies the table name for GORM
func (ProspectModel) TableName() string {
	return "prospects"
}

// ToDomain converts GORM model to domain entity
func (m *ProspectModel) ToDomain() *prospects.Prospect {
	p := &prospects.Prospect{
		ID:                       m.ID,
		FirstName:                m.FirstName,
		LastName:                 m.LastName,
		Email:                    m.Email,
		Phone:                    m.Phone,
		Company:                  m.Company,
		Position:                 m.Position,
		Status:                   m.Status,
		Source:                   m.Source,
		Priority:                 m.Priority,
		EstimatedBudget:          m.EstimatedBudget,
		ExpectedClosureDate:      m.ExpectedClosureDate,
		AssignedToID:             m.AssignedToID,
		SessionRegistrationCount: m.SessionRegistrationCount,
		InterestedFormationIDs:   m.InterestedFormationIDs,
		LastContactDate:          m.LastContactDate,
		NextFollowUpDate:         m.NextFollowUpDate,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
	for i := range m.ContactRequests {
		p.ContactRequests = append(p.ContactRequests, *m.ContactRequests[i].ToDomain())
	}
	for i := range m.NeedsAnalyses {
		p.NeedsAnalyses = append(p.NeedsAnalyses, *m.NeedsAnalyses[i].ToDomain())
	}
	return p
}

// FromDomain converts domain entity to GORM model. Child records are
// persisted through their own repository methods and are not copied.
func (m *ProspectModel) FromDomain(p *prospects.Prospect) {
	m.ID = p.ID
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.Email = p.Email
	m.Phone = p.Phone
	m.Company = p.Company
	m.Position = p.Position
	m.Status = p.Status
	m.Source = p.Source
	m.Priority = p.Priority
	m.EstimatedBudget = p.EstimatedBudget
	m.ExpectedClosureDate = p.ExpectedClosureDate
	m.AssignedToID = p.AssignedToID
	m.SessionRegistrationCount = p.SessionRegistrationCount
	m.InterestedFormationIDs = p.InterestedFormationIDs
	m.LastContactDate = p.LastContactDate
	m.NextFollowUpDate = p.NextFollowUpDate
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// ContactRequestModel is the GORM database model for contact requests
type ContactRequestModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	ProspectID string    `gorm:"not null;index;type:uuid"`
	Type       string    `gorm:"not null;type:varchar(30)"`
	Subject    string    `gorm:"type:varchar(200)"`
	Message    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ContactRequestModel) TableName() string {
	return "contact_requests"
}

// ToDomain converts GORM model to domain entity
func (m *ContactRequestModel) ToDomain() *prospects.ContactRequest {
	return &prospects.ContactRequest{
		ID:         m.ID,
		ProspectID: m.ProspectID,
		Type:       m.Type,
		Subject:    m.Subject,
		Message:    m.Message,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContactRequestModel) FromDomain(c *prospects.ContactRequest) {
	m.ID = c.ID
	m.ProspectID = c.ProspectID
	m.Type = c.Type
	m.Subject = c.Subject
	m.Message = c.Message
	m.CreatedAt = c.CreatedAt
}

// BeforeCreate stamps the creation date when it is not set.
func (m *ContactRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}

// NeedsAnalysisModel is the GORM database model for needs analysis requests
type NeedsAnalysisModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	ProspectID  string `gorm:"not null;index;type:uuid"`
	Type        string `gorm:"not null;type:varchar(20)"`
	Completed   bool   `gorm:"not null;default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (NeedsAnalysisModel) TableName() string {
	return "needs_analysis_requests"
}

// ToDomain converts GORM model to domain entity
func (m *NeedsAnalysisModel) ToDomain() *prospects.NeedsAnalysisRequest {
	return &prospects.NeedsAnalysisRequest{
		ID:          m.ID,
		ProspectID:  m.ProspectID,
		Type:        m.Type,
		Completed:   m.Completed,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NeedsAnalysisModel) FromDomain(n *prospects.NeedsAnalysisRequest) {
	m.ID = n.ID
	m.ProspectID = n.ProspectID
	m.Type = n.Type
	m.Completed = n.Completed
	m.CompletedAt = n.CompletedAt
	m.CreatedAt = n.CreatedAt
}

// BeforeCreate stamps the creation date when it is not set.
func (m *NeedsAnalysisModel) BeforeCreate(tx *gorm.DB) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}

// NoteModel is the GORM database model for prospect notes
type NoteModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	ProspectID  string `gorm:"not null;index;type:uuid"`
	Title       string `gorm:"not null;type:varchar(255)"`
	Content     string `gorm:"not null;type:text"`
	Type        string `gorm:"not null;type:varchar(20)"`
	Status      string `gorm:"not null;type:varchar(20)"`
	Important   bool   `gorm:"not null;default:false"`
	Private     bool   `gorm:"not null;default:false"`
	ScheduledAt *time.Time
	CreatedByID string `gorm:"not null;index;type:varchar(255)"`
	Timestamps
}

// TableName specifies the table name for GORM
func (NoteModel) TableName() string {
	return "prospect_notes"
}

// ToDomain converts GORM model to domain entity
func (m *NoteModel) ToDomain() *prospects.Note {
	return &prospects.Note{
		ID:          m.ID,
		ProspectID:  m.ProspectID,
		Title:       m.Title,
		Content:     m.Content,
		Type:        m.Type,
		Status:      m.Status,
		Important:   m.Important,
		Private:     m.Private,
		ScheduledAt: m.ScheduledAt,
		CreatedByID: m.CreatedByID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NoteModel) FromDomain(n *prospects.Note) {
	m.ID = n.ID
	m.ProspectID = n.ProspectID
	m.Title = n.Title
	m.Content = n.Content
	m.Type = n.Type
	m.Status = n.Status
	m.Important = n.Important
	m.Private = n.Private
	m.ScheduledAt = n.ScheduledAt
	m.CreatedByID = n.CreatedByID
	m.CreatedAt = n.CreatedAt
	m.UpdatedAt = n.UpdatedAt
}
