package notification

import (
	"context"
	"fmt"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
)

var riskLevelLabels = map[string]string{
	engagement.RiskLevelLow:      "faible",
	engagement.RiskLevelMedium:   "moyen",
	engagement.RiskLevelHigh:     "élevé",
	engagement.RiskLevelCritical: "critique",
}

// MailNotifier sends the business emails of the platform.
type MailNotifier struct {
	sender          Sender
	renderer        *Renderer
	organization    string
	alertRecipients []string
	logger          logger.Logger
}

// NewMailNotifier creates a MailNotifier. Risk alerts go to alertRecipients.
func NewMailNotifier(sender Sender, renderer *Renderer, organization string, alertRecipients []string, logger logger.Logger) *MailNotifier {
	return &MailNotifier{
		sender:          sender,
		renderer:        renderer,
		organization:    organization,
		alertRecipients: alertRecipients,
		logger:          logger,
	}
}

// AcknowledgeContactRequest emails the prospect a receipt for request.
func (n *MailNotifier) AcknowledgeContactRequest(ctx context.Context, prospect *prospects.Prospect, request *prospects.ContactRequest) error {
	body, err := n.renderer.Render(TemplateContactAck, map[string]interface{}{
		"first_name":   prospect.FirstName,
		"subject":      request.Subject,
		"request_type": request.Type,
		"organization": n.organization,
	})
	if err != nil {
		return err
	}

	return n.sender.Send(ctx, &Message{
		To:      []string{prospect.Email},
		Subject: fmt.Sprintf("%s : nous avons bien reçu votre demande", n.organization),
		HTML:    body,
	})
}

// NotifyAtRisk alerts the pedagogical team that a student became at risk.
func (n *MailNotifier) NotifyAtRisk(ctx context.Context, record *engagement.StudentEngagement) error {
	if len(n.alertRecipients) == 0 {
		n.logger.Warn("No alert recipient configured, skipping risk alert for student ", record.StudentID)
		return nil
	}

	level := riskLevelLabels[record.RiskLevel]
	body, err := n.renderer.Render(TemplateRiskAlert, map[string]interface{}{
		"student_name":     record.StudentName,
		"formation_title":  record.FormationTitle,
		"risk_level":       level,
		"risk_score":       record.RiskScore,
		"attendance_rate":  record.AttendanceRate,
		"engagement_score": record.EngagementScore,
		"missed_sessions":  record.MissedSessions,
	})
	if err != nil {
		return err
	}

	return n.sender.Send(ctx, &Message{
		To:      n.alertRecipients,
		Subject: fmt.Sprintf("Alerte décrochage : %s (risque %s)", record.StudentName, level),
		HTML:    body,
	})
}
