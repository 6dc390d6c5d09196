package prospects

import "strings"

// MaxLeadScore caps the lead score.
const MaxLeadScore = 999

// Score levels
const (
	ScoreLevelHot  = "hot"
	ScoreLevelWarm = "warm"
	ScoreLevelCool = "cool"
	ScoreLevelCold = "cold"
)

var statusPoints = map[string]int{
	StatusLead:        10,
	StatusProspect:    20,
	StatusQualified:   40,
	StatusNegotiation: 60,
	StatusCustomer:    100,
	StatusLost:        0,
}

const defaultStatusPoints = 5

var contactRequestPoints = map[string]int{
	ContactTypeQuote:             50,
	ContactTypeAdvice:            30,
	ContactTypeInformation:       20,
	ContactTypeQuickRegistration: 60,
}

const defaultContactRequestPoints = 15

const (
	sessionRegistrationPoints   = 80
	completedAnalysisPoints     = 60
	pendingAnalysisPoints       = 30
	interestedFormationPoints   = 20
	professionalEmailBonusPoint = 10
)

// freeEmailProviders are matched on the first label of the email domain so
// that gmail.com, yahoo.fr or outlook.fr all count as consumer addresses.
var freeEmailProviders = map[string]bool{
	"gmail":   true,
	"yahoo":   true,
	"hotmail": true,
	"outlook": true,
}

// LeadScore computes the weighted engagement score of the prospect, capped at
// MaxLeadScore. Negative counts contribute nothing.
func (p *Prospect) LeadScore() int {
	score, ok := statusPoints[p.Status]
	if !ok {
		score = defaultStatusPoints
	}

	for _, request := range p.ContactRequests {
		points, ok := contactRequestPoints[request.Type]
		if !ok {
			points = defaultContactRequestPoints
		}
		score = addCapped(score, points, 1)
	}

	score = addCapped(score, sessionRegistrationPoints, p.SessionRegistrationCount)

	for _, analysis := range p.NeedsAnalyses {
		if analysis.Completed {
			score = addCapped(score, completedAnalysisPoints, 1)
		} else {
			score = addCapped(score, pendingAnalysisPoints, 1)
		}
	}

	score = addCapped(score, interestedFormationPoints, len(p.InterestedFormationIDs))

	if p.hasProfessionalEmail() && strings.TrimSpace(p.Company) != "" {
		score = addCapped(score, professionalEmailBonusPoint, 1)
	}
	return score
}

// addCapped adds points*count to score without exceeding MaxLeadScore.
// The count is compared against the remaining headroom before multiplying
// so huge counts cannot overflow.
func addCapped(score, points, count int) int {
	if count <= 0 || points <= 0 {
		return min(score, MaxLeadScore)
	}
	headroom := MaxLeadScore - score
	if headroom <= 0 || count > headroom/points {
		return MaxLeadScore
	}
	return score + points*count
}

// ScoreLevel buckets the lead score for display and prioritisation.
func (p *Prospect) ScoreLevel() string {
	return LevelForScore(p.LeadScore())
}

// LevelForScore maps a lead score to its level.
func LevelForScore(score int) string {
	switch {
	case score >= 200:
		return ScoreLevelHot
	case score >= 100:
		return ScoreLevelWarm
	case score >= 40:
		return ScoreLevelCool
	default:
		return ScoreLevelCold
	}
}

func (p *Prospect) hasProfessionalEmail() bool {
	at := strings.LastIndex(p.Email, "@")
	if at < 0 || at == len(p.Email)-1 {
		return false
	}
	domain := strings.ToLower(p.Email[at+1:])
	provider := domain
	if dot := strings.Index(domain, "."); dot >= 0 {
		provider = domain[:dot]
	}
	return !freeEmailProviders[provider]
}
