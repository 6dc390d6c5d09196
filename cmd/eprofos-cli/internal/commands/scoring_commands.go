package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/utils"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// prospectFile is the YAML (or JSON) description of a prospect to score.
type prospectFile struct {
	Email                    string   `yaml:"email"`
	Company                  string   `yaml:"company"`
	Status                   string   `yaml:"status"`
	ContactRequests          []string `yaml:"contact_requests"`
	NeedsAnalyses            []bool   `yaml:"needs_analyses"`
	SessionRegistrationCount int      `yaml:"session_registration_count" validate:"min=0"`
	InterestedFormationIDs   []string `yaml:"interested_formation_ids"`
}

func (f *prospectFile) toDomain() *prospects.Prospect {
	p := &prospects.Prospect{
		Email:                    f.Email,
		Company:                  f.Company,
		Status:                   f.Status,
		SessionRegistrationCount: f.SessionRegistrationCount,
		InterestedFormationIDs:   f.InterestedFormationIDs,
	}
	for _, requestType := range f.ContactRequests {
		p.ContactRequests = append(p.ContactRequests, prospects.ContactRequest{Type: requestType})
	}
	for _, completed := range f.NeedsAnalyses {
		p.NeedsAnalyses = append(p.NeedsAnalyses, prospects.NeedsAnalysisRequest{Completed: completed})
	}
	return p
}

// ScoringCommandHandler computes lead and compliance scores without a database.
type ScoringCommandHandler struct {
	logger logger.Logger
	now    func() time.Time
}

// NewScoringCommandHandler initializes a ScoringCommandHandler with a console logger.
func NewScoringCommandHandler() (*ScoringCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &ScoringCommandHandler{logger: loggerInstance, now: time.Now}, nil
}

// LeadScoreCmd prints the lead score of the prospect described in --file
func (commandHandler *ScoringCommandHandler) LeadScoreCmd(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("invalid file flag: %w", err)
	}

	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return err
	}

	var file prospectFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to decode prospect file %s: %w", path, err)
	}
	if err := validators.Struct(&file); err != nil {
		return fmt.Errorf("invalid prospect file %s: %w", path, err)
	}

	p := file.toDomain()
	score := p.LeadScore()
	return writeJSON(cmd, map[string]interface{}{
		"score": score,
		"level": prospects.LevelForScore(score),
	})
}

// ComplianceCmd prints the Qualiopi compliance estimate for the given figures
func (commandHandler *ScoringCommandHandler) ComplianceCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	total, err := flags.GetInt("total")
	if err != nil {
		return err
	}
	atRisk, err := flags.GetInt("at-risk")
	if err != nil {
		return err
	}
	attendance, err := flags.GetFloat64("attendance")
	if err != nil {
		return err
	}
	engagementAvg, err := flags.GetFloat64("engagement")
	if err != nil {
		return err
	}

	if total < 0 || atRisk < 0 || atRisk > total {
		return fmt.Errorf("at-risk (%d) must be between 0 and total (%d)", atRisk, total)
	}

	report := &engagement.Report{
		TotalStudents:     total,
		AtRiskCount:       atRisk,
		AverageAttendance: attendance,
		AvgEngagement:     engagementAvg,
		GeneratedAt:       commandHandler.now(),
	}
	if total > 0 {
		report.RiskRate = utils.RoundTo(float64(atRisk)/float64(total)*100, 1)
	}

	return writeJSON(cmd, engagement.CalculateComplianceScore(report))
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// InitScoringCommands registers the lead-score and compliance commands.
func InitScoringCommands(rootCmd *cobra.Command) error {
	handler, err := NewScoringCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create scoring command handler: %w", err)
	}

	var leadScoreCmd = &cobra.Command{
		Use:   "lead-score",
		Short: "Compute the lead score of a prospect described in a YAML or JSON file",
		RunE:  handler.LeadScoreCmd,
	}
	leadScoreCmd.Flags().String("file", "", "Path to the prospect file")
	_ = leadScoreCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(leadScoreCmd)

	var complianceCmd = &cobra.Command{
		Use:   "compliance",
		Short: "Estimate the Qualiopi compliance score from engagement figures",
		RunE:  handler.ComplianceCmd,
	}
	complianceCmd.Flags().Int("total", 0, "Number of students")
	complianceCmd.Flags().Int("at-risk", 0, "Number of students at risk")
	complianceCmd.Flags().Float64("attendance", 0, "Average attendance rate (0-100)")
	complianceCmd.Flags().Float64("engagement", 0, "Average engagement score (0-100)")
	rootCmd.AddCommand(complianceCmd)

	return nil
}
