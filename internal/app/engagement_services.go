package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
)

// ExporterLookup resolves the exporter of a file format.
type ExporterLookup interface {
	Get(format string) (engagement.Exporter, error)
}

// EngagementDependencies groups the collaborators of the engagement service.
// Cache, Archiver, Notifier and Recorder are optional.
type EngagementDependencies struct {
	Repository engagement.EngagementRepository
	Cache      engagement.DashboardCache
	Exporters  ExporterLookup
	Archiver   engagement.Archiver
	Notifier   engagement.RiskNotifier
	Recorder   audit.Recorder
	CacheTTL   time.Duration
}

// engagementService implements the EngagementService interface
type engagementService struct {
	deps   EngagementDependencies
	logger logger.Logger
	now    func() time.Time
}

// NewEngagementService creates a new instance of EngagementService
func NewEngagementService(deps EngagementDependencies, logger logger.Logger) (engagement.EngagementService, error) {
	if deps.Repository == nil {
		return nil, fmt.Errorf("engagement repository is required")
	}
	return &engagementService{
		deps:   deps,
		logger: logger,
		now:    time.Now,
	}, nil
}

// UpsertRecord evaluates and stores a record, then alerts when the student
// has just become at risk.
func (s *engagementService) UpsertRecord(ctx context.Context, record *engagement.StudentEngagement, username string) (*engagement.StudentEngagement, error) {
	previous, err := s.deps.Repository.GetByStudentID(ctx, record.StudentID)
	if err != nil && !errors.Is(err, engagement.ErrNotFound) {
		return nil, fmt.Errorf("failed to load engagement record: %w", err)
	}

	record.Evaluate(s.now())
	if err := s.deps.Repository.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store engagement record: %w", err)
	}

	if s.deps.Cache != nil {
		if err := s.deps.Cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Failed to invalidate engagement dashboard: ", err)
		}
	}

	action := audit.ActionUpdate
	if previous == nil {
		action = audit.ActionCreate
	}
	recordAudit(ctx, s.deps.Recorder, s.logger, action, engagement.EntityClass, record.StudentID, record.Snapshot(), username)

	if record.AtRisk && (previous == nil || !previous.AtRisk) {
		s.notifyAtRisk(ctx, record)
	}
	return record, nil
}

// Get returns the record of a student with its risk evaluated as of now.
func (s *engagementService) Get(ctx context.Context, studentID string) (*engagement.StudentEngagement, error) {
	record, err := s.deps.Repository.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	record.Evaluate(s.now())
	return record, nil
}

// ListAtRisk returns the students at risk as of now, most at risk first.
func (s *engagementService) ListAtRisk(ctx context.Context) ([]*engagement.StudentEngagement, error) {
	records, err := s.listEvaluated(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return atRiskOf(records), nil
}

// Reevaluate stores the records whose risk changed since they were last
// written and alerts for students that became at risk in the meantime.
// It returns the number of records updated.
func (s *engagementService) Reevaluate(ctx context.Context, username string) (int, error) {
	records, err := s.deps.Repository.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load engagement records: %w", err)
	}

	now := s.now()
	updated := 0
	for _, record := range records {
		wasAtRisk, previousScore := record.AtRisk, record.RiskScore
		record.Evaluate(now)
		if record.AtRisk == wasAtRisk && record.RiskScore == previousScore {
			continue
		}

		if err := s.deps.Repository.Upsert(ctx, record); err != nil {
			return updated, fmt.Errorf("failed to store engagement record %s: %w", record.StudentID, err)
		}
		updated++
		recordAudit(ctx, s.deps.Recorder, s.logger, audit.ActionUpdate, engagement.EntityClass, record.StudentID, record.Snapshot(), username)

		if record.AtRisk && !wasAtRisk {
			s.notifyAtRisk(ctx, record)
		}
	}

	if updated > 0 && s.deps.Cache != nil {
		if err := s.deps.Cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Failed to invalidate engagement dashboard: ", err)
		}
	}
	s.logger.Info(fmt.Sprintf("Re-evaluated %d engagement records, %d changed", len(records), updated))
	return updated, nil
}

func (s *engagementService) notifyAtRisk(ctx context.Context, record *engagement.StudentEngagement) {
	s.logger.Warn("Student ", record.StudentID, " is now at risk with score ", record.RiskScore)
	if s.deps.Notifier == nil {
		return
	}
	if err := s.deps.Notifier.NotifyAtRisk(ctx, record); err != nil {
		s.logger.Error("Failed to send risk alert for student ", record.StudentID, ": ", err)
	}
}

func (s *engagementService) listEvaluated(ctx context.Context, now time.Time) ([]*engagement.StudentEngagement, error) {
	records, err := s.deps.Repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load engagement records: %w", err)
	}
	for _, record := range records {
		record.Evaluate(now)
	}
	return records, nil
}

// Dashboard returns the engagement report and compliance score, served from
// the cache while it is fresh.
func (s *engagementService) Dashboard(ctx context.Context) (*engagement.Dashboard, error) {
	if s.deps.Cache != nil {
		cached, err := s.deps.Cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, engagement.ErrCacheMiss) {
			s.logger.Warn("Failed to read engagement dashboard from cache: ", err)
		}
	}

	now := s.now()
	records, err := s.listEvaluated(ctx, now)
	if err != nil {
		return nil, err
	}
	dashboard := buildDashboard(records, now)

	if s.deps.Cache != nil {
		if err := s.deps.Cache.Set(ctx, dashboard, s.deps.CacheTTL); err != nil {
			s.logger.Warn("Failed to cache engagement dashboard: ", err)
		}
	}
	return dashboard, nil
}

// Export renders the dashboard and every record in format and archives a
// copy when an archiver is configured.
func (s *engagementService) Export(ctx context.Context, format string) (*engagement.ExportFile, error) {
	if s.deps.Exporters == nil {
		return nil, fmt.Errorf("%w: %s", engagement.ErrUnsupportedFormat, format)
	}
	exporter, err := s.deps.Exporters.Get(format)
	if err != nil {
		return nil, err
	}

	now := s.now()
	records, err := s.listEvaluated(ctx, now)
	if err != nil {
		return nil, err
	}
	data := &engagement.ExportData{
		Dashboard: buildDashboard(records, now),
		Records:   records,
	}

	content, err := exporter.Export(data)
	if err != nil {
		return nil, fmt.Errorf("failed to export engagement data as %s: %w", format, err)
	}

	file := &engagement.ExportFile{
		Filename:    engagement.ExportFilename(now, exporter.Format()),
		ContentType: exporter.ContentType(),
		Content:     content,
	}

	if s.deps.Archiver != nil {
		location, err := s.deps.Archiver.Archive(ctx, file.Filename, content, file.ContentType)
		if err != nil {
			s.logger.Error("Failed to archive export ", file.Filename, ": ", err)
		} else {
			file.Location = location
		}
	}

	s.logger.Info("Exported ", len(records), " engagement records as ", format)
	return file, nil
}

func buildDashboard(records []*engagement.StudentEngagement, now time.Time) *engagement.Dashboard {
	report := engagement.BuildReport(records, now)
	return &engagement.Dashboard{
		Report:     report,
		Compliance: engagement.CalculateComplianceScore(report),
		AtRisk:     atRiskOf(records),
	}
}

// atRiskOf keeps the at-risk records ordered by risk score, then name.
func atRiskOf(records []*engagement.StudentEngagement) []*engagement.StudentEngagement {
	atRisk := make([]*engagement.StudentEngagement, 0)
	for _, r := range records {
		if r.AtRisk {
			atRisk = append(atRisk, r)
		}
	}
	sort.SliceStable(atRisk, func(i, j int) bool {
		if atRisk[i].RiskScore != atRisk[j].RiskScore {
			return atRisk[i].RiskScore > atRisk[j].RiskScore
		}
		return atRisk[i].StudentName < atRisk[j].StudentName
	})
	return atRisk
}
