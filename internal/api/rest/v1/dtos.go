package v1

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/dashboard"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"
)

// ErrorResponse is returned with every non 2xx status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a human readable confirmation.
type InfoResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// ProspectRequest is the body of prospect create and update calls.
type ProspectRequest struct {
	FirstName                string     `json:"first_name" validate:"required,min=2,max=100"`
	LastName                 string     `json:"last_name" validate:"required,min=2,max=100"`
	Email                    string     `json:"email" validate:"required,email,max=180"`
	Phone                    string     `json:"phone" validate:"omitempty,frphone"`
	Company                  string     `json:"company" validate:"max=150"`
	Position                 string     `json:"position" validate:"max=100"`
	Status                   string     `json:"status" validate:"omitempty,oneof=lead prospect qualified negotiation customer lost"`
	Source                   string     `json:"source" validate:"omitempty,oneof=website referral social_media email_campaign phone event partner other"`
	Priority                 string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	EstimatedBudget          *float64   `json:"estimated_budget" validate:"omitempty,min=0"`
	ExpectedClosureDate      *time.Time `json:"expected_closure_date"`
	AssignedToID             *string    `json:"assigned_to_id" validate:"omitempty,uuid4"`
	SessionRegistrationCount int        `json:"session_registration_count" validate:"min=0"`
	InterestedFormationIDs   []string   `json:"interested_formation_ids" validate:"dive,required"`
	NextFollowUpDate         *time.Time `json:"next_follow_up_date"`
}

// Validate for validating ProspectRequest struct
func (r *ProspectRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the prospect identified by id from the request.
func (r *ProspectRequest) ToDomain(id string) *prospects.Prospect {
	return &prospects.Prospect{
		ID:                       id,
		FirstName:                r.FirstName,
		LastName:                 r.LastName,
		Email:                    r.Email,
		Phone:                    r.Phone,
		Company:                  r.Company,
		Position:                 r.Position,
		Status:                   r.Status,
		Source:                   r.Source,
		Priority:                 r.Priority,
		EstimatedBudget:          r.EstimatedBudget,
		ExpectedClosureDate:      r.ExpectedClosureDate,
		AssignedToID:             r.AssignedToID,
		SessionRegistrationCount: r.SessionRegistrationCount,
		InterestedFormationIDs:   r.InterestedFormationIDs,
		NextFollowUpDate:         r.NextFollowUpDate,
	}
}

// ContactRequestResponse describes a contact request.
type ContactRequestResponse struct {
	ID         string    `json:"id"`
	ProspectID string    `json:"prospect_id"`
	Type       string    `json:"type"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// NeedsAnalysisResponse describes a needs analysis.
type NeedsAnalysisResponse struct {
	ID          string     `json:"id"`
	ProspectID  string     `json:"prospect_id"`
	Type        string     `json:"type"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ProspectResponse describes a prospect with its computed lead score.
type ProspectResponse struct {
	ID                       string                   `json:"id"`
	FirstName                string                   `json:"first_name"`
	LastName                 string                   `json:"last_name"`
	FullName                 string                   `json:"full_name"`
	Email                    string                   `json:"email"`
	Phone                    string                   `json:"phone"`
	Company                  string                   `json:"company"`
	Position                 string                   `json:"position"`
	Status                   string                   `json:"status"`
	Source                   string                   `json:"source"`
	Priority                 string                   `json:"priority"`
	EstimatedBudget          *float64                 `json:"estimated_budget"`
	ExpectedClosureDate      *time.Time               `json:"expected_closure_date"`
	AssignedToID             *string                  `json:"assigned_to_id"`
	SessionRegistrationCount int                      `json:"session_registration_count"`
	InterestedFormationIDs   []string                 `json:"interested_formation_ids"`
	LastContactDate          *time.Time               `json:"last_contact_date"`
	NextFollowUpDate         *time.Time               `json:"next_follow_up_date"`
	LeadScore                int                      `json:"lead_score"`
	ScoreLevel               string                   `json:"score_level"`
	ContactRequests          []ContactRequestResponse `json:"contact_requests"`
	NeedsAnalyses            []NeedsAnalysisResponse  `json:"needs_analyses"`
	CreatedAt                time.Time                `json:"created_at"`
	UpdatedAt                time.Time                `json:"updated_at"`
}

func newProspectResponse(p *prospects.Prospect) ProspectResponse {
	resp := ProspectResponse{
		ID:                       p.ID,
		FirstName:                p.FirstName,
		LastName:                 p.LastName,
		FullName:                 p.FullName(),
		Email:                    p.Email,
		Phone:                    p.Phone,
		Company:                  p.Company,
		Position:                 p.Position,
		Status:                   p.Status,
		Source:                   p.Source,
		Priority:                 p.Priority,
		EstimatedBudget:          p.EstimatedBudget,
		ExpectedClosureDate:      p.ExpectedClosureDate,
		AssignedToID:             p.AssignedToID,
		SessionRegistrationCount: p.SessionRegistrationCount,
		InterestedFormationIDs:   p.InterestedFormationIDs,
		LastContactDate:          p.LastContactDate,
		NextFollowUpDate:         p.NextFollowUpDate,
		LeadScore:                p.LeadScore(),
		ScoreLevel:               p.ScoreLevel(),
		ContactRequests:          []ContactRequestResponse{},
		NeedsAnalyses:            []NeedsAnalysisResponse{},
		CreatedAt:                p.CreatedAt,
		UpdatedAt:                p.UpdatedAt,
	}
	for i := range p.ContactRequests {
		resp.ContactRequests = append(resp.ContactRequests, newContactRequestResponse(&p.ContactRequests[i]))
	}
	for i := range p.NeedsAnalyses {
		resp.NeedsAnalyses = append(resp.NeedsAnalyses, newNeedsAnalysisResponse(&p.NeedsAnalyses[i]))
	}
	return resp
}

func newContactRequestResponse(c *prospects.ContactRequest) ContactRequestResponse {
	return ContactRequestResponse{
		ID:         c.ID,
		ProspectID: c.ProspectID,
		Type:       c.Type,
		Subject:    c.Subject,
		Message:    c.Message,
		CreatedAt:  c.CreatedAt,
	}
}

func newNeedsAnalysisResponse(n *prospects.NeedsAnalysisRequest) NeedsAnalysisResponse {
	return NeedsAnalysisResponse{
		ID:          n.ID,
		ProspectID:  n.ProspectID,
		Type:        n.Type,
		Completed:   n.Completed,
		CompletedAt: n.CompletedAt,
		CreatedAt:   n.CreatedAt,
	}
}

// ScoreResponse is the lead score of one prospect.
type ScoreResponse struct {
	ProspectID string `json:"prospect_id"`
	Score      int    `json:"score"`
	Level      string `json:"level"`
}

// NoteRequest is the body of the add note call.
type NoteRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=255"`
	Content     string     `json:"content" validate:"required,min=5"`
	Type        string     `json:"type" validate:"omitempty,oneof=call email meeting task note"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Important   bool       `json:"important"`
	Private     bool       `json:"private"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// Validate for validating NoteRequest struct
func (r *NoteRequest) Validate() error {
	return validators.Struct(r)
}

// NoteResponse describes a prospect note.
type NoteResponse struct {
	ID          string     `json:"id"`
	ProspectID  string     `json:"prospect_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Important   bool       `json:"important"`
	Private     bool       `json:"private"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	CreatedByID string     `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

func newNoteResponse(n *prospects.Note) NoteResponse {
	return NoteResponse{
		ID:          n.ID,
		ProspectID:  n.ProspectID,
		Title:       n.Title,
		Content:     n.Content,
		Type:        n.Type,
		Status:      n.Status,
		Important:   n.Important,
		Private:     n.Private,
		ScheduledAt: n.ScheduledAt,
		CreatedByID: n.CreatedByID,
		CreatedAt:   n.CreatedAt,
	}
}

// ContactRequestRequest is the body of the add contact request call.
type ContactRequestRequest struct {
	Type    string `json:"type" validate:"required,oneof=quote advice information quick_registration"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"max=5000"`
}

// Validate for validating ContactRequestRequest struct
func (r *ContactRequestRequest) Validate() error {
	return validators.Struct(r)
}

// NeedsAnalysisCreateRequest is the body of the add needs analysis call.
type NeedsAnalysisCreateRequest struct {
	Type string `json:"type" validate:"required,oneof=company individual"`
}

// Validate for validating NeedsAnalysisCreateRequest struct
func (r *NeedsAnalysisCreateRequest) Validate() error {
	return validators.Struct(r)
}

// MentorRequest is the body of mentor create and update calls.
type MentorRequest struct {
	FirstName        string   `json:"first_name" validate:"required,min=2,max=100"`
	LastName         string   `json:"last_name" validate:"required,min=2,max=100"`
	Email            string   `json:"email" validate:"required,email,max=180"`
	Phone            string   `json:"phone" validate:"omitempty,frphone"`
	Position         string   `json:"position" validate:"required,max=150"`
	CompanyName      string   `json:"company_name" validate:"required,max=200"`
	CompanySiret     string   `json:"company_siret" validate:"required,siret"`
	ExpertiseDomains []string `json:"expertise_domains" validate:"dive,required,max=100"`
	ExperienceYears  int      `json:"experience_years" validate:"min=0,max=60"`
	EducationLevel   string   `json:"education_level" validate:"omitempty,oneof=cap bac bac+2 bac+3 bac+5 doctorat"`
	Active           *bool    `json:"active"`
}

// Validate for validating MentorRequest struct
func (r *MentorRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the mentor identified by id from the request.
func (r *MentorRequest) ToDomain(id string) *alternance.Mentor {
	m := &alternance.Mentor{
		ID:               id,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		Position:         r.Position,
		CompanyName:      r.CompanyName,
		CompanySiret:     r.CompanySiret,
		ExpertiseDomains: r.ExpertiseDomains,
		ExperienceYears:  r.ExperienceYears,
		EducationLevel:   r.EducationLevel,
		Active:           true,
	}
	if r.Active != nil {
		m.Active = *r.Active
	}
	return m
}

// MentorResponse describes a mentor.
type MentorResponse struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Position         string    `json:"position"`
	CompanyName      string    `json:"company_name"`
	CompanySiret     string    `json:"company_siret"`
	ExpertiseDomains []string  `json:"expertise_domains"`
	ExperienceYears  int       `json:"experience_years"`
	EducationLevel   string    `json:"education_level"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func newMentorResponse(m *alternance.Mentor) MentorResponse {
	return MentorResponse{
		ID:               m.ID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		FullName:         m.FullName(),
		Email:            m.Email,
		Phone:            m.Phone,
		Position:         m.Position,
		CompanyName:      m.CompanyName,
		CompanySiret:     m.CompanySiret,
		ExpertiseDomains: m.ExpertiseDomains,
		ExperienceYears:  m.ExperienceYears,
		EducationLevel:   m.EducationLevel,
		Active:           m.Active,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ContractRequest is the body of the contract create call.
type ContractRequest struct {
	StudentID          string    `json:"student_id" validate:"required,uuid4"`
	MentorID           string    `json:"mentor_id" validate:"required,uuid4"`
	CompanyName        string    `json:"company_name" validate:"required,max=200"`
	CompanySiret       string    `json:"company_siret" validate:"required,siret"`
	ContractType       string    `json:"contract_type" validate:"required,oneof=apprentissage professionnalisation"`
	StartDate          time.Time `json:"start_date" validate:"required"`
	EndDate            time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
	WeeklyCenterHours  int       `json:"weekly_center_hours" validate:"min=0,max=35"`
	WeeklyCompanyHours int       `json:"weekly_company_hours" validate:"min=0,max=35"`
	Remuneration       *float64  `json:"remuneration" validate:"omitempty,min=0"`
}

// Validate for validating ContractRequest struct
func (r *ContractRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds a draft contract from the request.
func (r *ContractRequest) ToDomain() *alternance.Contract {
	return &alternance.Contract{
		StudentID:          r.StudentID,
		MentorID:           r.MentorID,
		CompanyName:        r.CompanyName,
		CompanySiret:       r.CompanySiret,
		ContractType:       r.ContractType,
		Status:             alternance.ContractStatusDraft,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		WeeklyCenterHours:  r.WeeklyCenterHours,
		WeeklyCompanyHours: r.WeeklyCompanyHours,
		Remuneration:       r.Remuneration,
	}
}

// StatusTransitionRequest is the body of the contract status call.
type StatusTransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=draft pending_validation validated active suspended completed terminated"`
}

// Validate for validating StatusTransitionRequest struct
func (r *StatusTransitionRequest) Validate() error {
	return validators.Struct(r)
}

// ContractResponse describes a contract with its progress.
type ContractResponse struct {
	ID                 string    `json:"id"`
	StudentID          string    `json:"student_id"`
	MentorID           string    `json:"mentor_id"`
	CompanyName        string    `json:"company_name"`
	CompanySiret       string    `json:"company_siret"`
	ContractType       string    `json:"contract_type"`
	Status             string    `json:"status"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	DurationMonths     int       `json:"duration_months"`
	ProgressPercent    float64   `json:"progress_percent"`
	WeeklyCenterHours  int       `json:"weekly_center_hours"`
	WeeklyCompanyHours int       `json:"weekly_company_hours"`
	Remuneration       *float64  `json:"remuneration"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func newContractResponse(c *alternance.Contract, now time.Time) ContractResponse {
	return ContractResponse{
		ID:                 c.ID,
		StudentID:          c.StudentID,
		MentorID:           c.MentorID,
		CompanyName:        c.CompanyName,
		CompanySiret:       c.CompanySiret,
		ContractType:       c.ContractType,
		Status:             c.Status,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		DurationMonths:     c.DurationInMonths(),
		ProgressPercent:    c.ProgressPercent(now),
		WeeklyCenterHours:  c.WeeklyCenterHours,
		WeeklyCompanyHours: c.WeeklyCompanyHours,
		Remuneration:       c.Remuneration,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// EngagementRequest is the body of the engagement upsert call.
type EngagementRequest struct {
	StudentID       string     `json:"student_id" validate:"required,uuid4"`
	StudentName     string     `json:"student_name" validate:"required,max=200"`
	FormationTitle  string     `json:"formation_title" validate:"max=255"`
	AttendanceRate  float64    `json:"attendance_rate" validate:"min=0,max=100"`
	EngagementScore float64    `json:"engagement_score" validate:"min=0,max=100"`
	MissedSessions  int        `json:"missed_sessions" validate:"min=0"`
	LastActivityAt  *time.Time `json:"last_activity_at"`
}

// Validate for validating EngagementRequest struct
func (r *EngagementRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain builds the engagement record from the request.
func (r *EngagementRequest) ToDomain() *engagement.StudentEngagement {
	return &engagement.StudentEngagement{
		StudentID:       r.StudentID,
		StudentName:     r.StudentName,
		FormationTitle:  r.FormationTitle,
		AttendanceRate:  r.AttendanceRate,
		EngagementScore: r.EngagementScore,
		MissedSessions:  r.MissedSessions,
		LastActivityAt:  r.LastActivityAt,
	}
}

// EngagementResponse describes an evaluated engagement record.
type EngagementResponse struct {
	StudentID       string     `json:"student_id"`
	StudentName     string     `json:"student_name"`
	FormationTitle  string     `json:"formation_title"`
	AttendanceRate  float64    `json:"attendance_rate"`
	EngagementScore float64    `json:"engagement_score"`
	MissedSessions  int        `json:"missed_sessions"`
	LastActivityAt  *time.Time `json:"last_activity_at"`
	RiskScore       int        `json:"risk_score"`
	RiskLevel       string     `json:"risk_level"`
	AtRisk          bool       `json:"at_risk"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newEngagementResponse(r *engagement.StudentEngagement) EngagementResponse {
	return EngagementResponse{
		StudentID:       r.StudentID,
		StudentName:     r.StudentName,
		FormationTitle:  r.FormationTitle,
		AttendanceRate:  r.AttendanceRate,
		EngagementScore: r.EngagementScore,
		MissedSessions:  r.MissedSessions,
		LastActivityAt:  r.LastActivityAt,
		RiskScore:       r.RiskScore,
		RiskLevel:       r.RiskLevel,
		AtRisk:          r.AtRisk,
		UpdatedAt:       r.UpdatedAt,
	}
}

func newEngagementResponses(records []*engagement.StudentEngagement) []EngagementResponse {
	resp := make([]EngagementResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, newEngagementResponse(r))
	}
	return resp
}

// ReevaluationResponse reports how many stored records changed risk.
type ReevaluationResponse struct {
	Updated int `json:"updated"`
}

// EngagementDashboardResponse is the admin engagement view.
type EngagementDashboardResponse struct {
	Report     *engagement.Report          `json:"report"`
	Compliance *engagement.ComplianceScore `json:"compliance"`
	AtRisk     []EngagementResponse        `json:"at_risk"`
}

func newEngagementDashboardResponse(d *engagement.Dashboard) *EngagementDashboardResponse {
	if d == nil {
		return nil
	}
	return &EngagementDashboardResponse{
		Report:     d.Report,
		Compliance: d.Compliance,
		AtRisk:     newEngagementResponses(d.AtRisk),
	}
}

// LogEntryResponse describes an audit log entry.
type LogEntryResponse struct {
	ID          string                 `json:"id"`
	Action      string                 `json:"action"`
	LoggedAt    time.Time              `json:"logged_at"`
	ObjectID    string                 `json:"object_id"`
	ObjectClass string                 `json:"object_class"`
	Version     int                    `json:"version"`
	Data        map[string]interface{} `json:"data"`
	Username    string                 `json:"username"`
}

func newLogEntryResponse(e *audit.LogEntry) LogEntryResponse {
	return LogEntryResponse{
		ID:          e.ID,
		Action:      e.Action,
		LoggedAt:    e.LoggedAt,
		ObjectID:    e.ObjectID,
		ObjectClass: e.ObjectClass,
		Version:     e.Version,
		Data:        e.Data,
		Username:    e.Username,
	}
}

// HistoryEntryResponse is a log entry with its labelled changes.
type HistoryEntryResponse struct {
	LogEntryResponse
	Changes []audit.FieldChange `json:"changes"`
}

func newHistoryEntryResponse(h *audit.HistoryEntry) HistoryEntryResponse {
	changes := h.Changes
	if changes == nil {
		changes = []audit.FieldChange{}
	}
	return HistoryEntryResponse{
		LogEntryResponse: newLogEntryResponse(h.Entry),
		Changes:          changes,
	}
}

// DashboardResponse is the role based landing summary.
type DashboardResponse struct {
	Role               string                       `json:"role"`
	ProspectStatistics *prospects.Statistics        `json:"prospect_statistics,omitempty"`
	Engagement         *EngagementDashboardResponse `json:"engagement,omitempty"`
	AtRiskStudents     []EngagementResponse         `json:"at_risk_students,omitempty"`
	Contracts          []ContractResponse           `json:"contracts,omitempty"`
	EngagementRecord   *EngagementResponse          `json:"engagement_record,omitempty"`
}

func newDashboardResponse(s *dashboard.Summary, now time.Time) DashboardResponse {
	resp := DashboardResponse{
		Role:               s.Role,
		ProspectStatistics: s.ProspectStatistics,
		Engagement:         newEngagementDashboardResponse(s.Engagement),
	}
	if s.AtRiskStudents != nil {
		resp.AtRiskStudents = newEngagementResponses(s.AtRiskStudents)
	}
	if s.Contracts != nil {
		resp.Contracts = make([]ContractResponse, 0, len(s.Contracts))
		for _, c := range s.Contracts {
			resp.Contracts = append(resp.Contracts, newContractResponse(c, now))
		}
	}
	if s.EngagementRecord != nil {
		record := newEngagementResponse(s.EngagementRecord)
		resp.EngagementRecord = &record
	}
	return resp
}
