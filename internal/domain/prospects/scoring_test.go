//go:build unit
// +build unit

package prospects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadScore_BaseByStatus(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{StatusLead, 10},
		{StatusProspect, 20},
		{StatusQualified, 40},
		{StatusNegotiation, 60},
		{StatusCustomer, 100},
		{StatusLost, 0},
		{"archived", 5},
		{"", 5},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			p := &Prospect{Status: tt.status}
			assert.Equal(t, tt.want, p.LeadScore())
		})
	}
}

func TestLeadScore_CustomerWithQuotesAndSession(t *testing.T) {
	p := &Prospect{
		Status: StatusCustomer,
		Email:  "a@gmail.com",
		ContactRequests: []ContactRequest{
			{Type: ContactTypeQuote},
			{Type: ContactTypeQuote},
		},
		SessionRegistrationCount: 1,
	}

	assert.Equal(t, 280, p.LeadScore())
}

func TestLeadScore_Components(t *testing.T) {
	p := &Prospect{
		Status: StatusLead,
		ContactRequests: []ContactRequest{
			{Type: ContactTypeAdvice},
			{Type: ContactTypeInformation},
			{Type: ContactTypeQuickRegistration},
			{Type: "callback"},
		},
		NeedsAnalyses: []NeedsAnalysisRequest{
			{Completed: true},
			{Completed: false},
		},
		InterestedFormationIDs: []string{"f1", "f2", "f3"},
	}

	// 10 + (30+20+60+15) + (60+30) + 3*20
	assert.Equal(t, 285, p.LeadScore())
}

func TestLeadScore_ProfessionalEmailBonus(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		company string
		want    int
	}{
		{"company domain with company", "jean@acme.fr", "ACME", 30},
		{"company domain without company", "jean@acme.fr", "", 20},
		{"blank company", "jean@acme.fr", "   ", 20},
		{"gmail", "jean@gmail.com", "ACME", 20},
		{"yahoo other tld", "jean@yahoo.fr", "ACME", 20},
		{"hotmail uppercase", "jean@HOTMAIL.FR", "ACME", 20},
		{"outlook", "jean@outlook.com", "ACME", 20},
		{"missing domain", "jean@", "ACME", 20},
		{"no at sign", "jean", "ACME", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Prospect{Status: StatusProspect, Email: tt.email, Company: tt.company}
			assert.Equal(t, tt.want, p.LeadScore())
		})
	}
}

func TestLeadScore_Capped(t *testing.T) {
	p := &Prospect{
		Status:                   StatusCustomer,
		SessionRegistrationCount: 50,
	}

	assert.Equal(t, MaxLeadScore, p.LeadScore())
}

func TestLeadScore_HugeCountsSaturate(t *testing.T) {
	p := &Prospect{
		Status:                   StatusLead,
		SessionRegistrationCount: 1 << 60,
	}

	assert.Equal(t, MaxLeadScore, p.LeadScore())
	assert.Equal(t, ScoreLevelHot, p.ScoreLevel())
}

func TestLeadScore_NegativeCountIgnored(t *testing.T) {
	p := &Prospect{
		Status:                   StatusQualified,
		SessionRegistrationCount: -5,
	}

	assert.Equal(t, 40, p.LeadScore())
	assert.Equal(t, ScoreLevelCool, p.ScoreLevel())
}

func TestLevelForScore(t *testing.T) {
	assert.Equal(t, ScoreLevelCold, LevelForScore(0))
	assert.Equal(t, ScoreLevelCold, LevelForScore(39))
	assert.Equal(t, ScoreLevelCool, LevelForScore(40))
	assert.Equal(t, ScoreLevelWarm, LevelForScore(100))
	assert.Equal(t, ScoreLevelHot, LevelForScore(200))
	assert.Equal(t, ScoreLevelHot, LevelForScore(MaxLeadScore))
}
