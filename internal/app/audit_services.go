package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
	"github.com/google/uuid"
)

// auditService implements the AuditService interface on top of an AuditRepository
type auditService struct {
	repo      audit.AuditRepository
	publisher audit.EventPublisher
	formatter *audit.Formatter
	logger    logger.Logger
	now       func() time.Time
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(repo audit.AuditRepository, publisher audit.EventPublisher, formatter *audit.Formatter, logger logger.Logger) (audit.AuditService, error) {
	if formatter == nil {
		var err error
		formatter, err = audit.NewFormatter()
		if err != nil {
			return nil, fmt.Errorf("failed to load audit labels: %w", err)
		}
	}
	return &auditService{
		repo:      repo,
		publisher: publisher,
		formatter: formatter,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Record stores a new version of an object holding only the fields that
// changed since the previous one. It returns a nil entry when an update
// changes nothing.
func (s *auditService) Record(ctx context.Context, action, objectClass, objectID string, snapshot map[string]interface{}, username string) (*audit.LogEntry, error) {
	entries, err := s.repo.ListByObject(ctx, objectClass, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history of %s %s: %w", objectClass, objectID, err)
	}

	version := 1
	if len(entries) > 0 {
		version = entries[len(entries)-1].Version + 1
	}

	var data map[string]interface{}
	if action != audit.ActionRemove {
		current, err := normalizeSnapshot(snapshot)
		if err != nil {
			return nil, err
		}
		changes := audit.Diff(audit.Replay(entries), current)
		if len(changes) == 0 && action == audit.ActionUpdate {
			s.logger.Debug("No change to record for ", objectClass, " ", objectID)
			return nil, nil
		}
		data = make(map[string]interface{}, len(changes))
		for field, change := range changes {
			data[field] = change.NewValue
		}
	}

	entry := &audit.LogEntry{
		ID:          uuid.New().String(),
		Action:      action,
		LoggedAt:    s.now().UTC(),
		ObjectID:    objectID,
		ObjectClass: objectClass,
		Version:     version,
		Data:        data,
		Username:    username,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store audit entry: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, entry); err != nil {
			s.logger.Warn("Failed to publish audit entry ", entry.ID, ": ", err)
		}
	}

	s.logger.Info("Recorded ", action, " of ", objectClass, " ", objectID, " as version ", version)
	return entry, nil
}

// History returns the versions of an object newest first.
func (s *auditService) History(ctx context.Context, objectClass, objectID string) ([]*audit.HistoryEntry, error) {
	entries, err := s.repo.ListByObject(ctx, objectClass, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history of %s %s: %w", objectClass, objectID, err)
	}

	history := make([]*audit.HistoryEntry, len(entries))
	for i := range entries {
		history[len(entries)-1-i] = s.decorate(entries[:i], entries[i])
	}
	return history, nil
}

// List returns log entries matching query.
func (s *auditService) List(ctx context.Context, query *audit.Query) ([]*audit.LogEntry, error) {
	if query == nil {
		query = audit.NewQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	return s.repo.List(ctx, query)
}

// Get returns one entry with the changes it introduced.
func (s *auditService) Get(ctx context.Context, entryID string) (*audit.HistoryEntry, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListByObject(ctx, entry.ObjectClass, entry.ObjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history of %s %s: %w", entry.ObjectClass, entry.ObjectID, err)
	}

	var previous []*audit.LogEntry
	for _, e := range entries {
		if e.Version < entry.Version {
			previous = append(previous, e)
		}
	}
	return s.decorate(previous, entry), nil
}

// Purge deletes entries logged before olderThan. The oldest surviving
// version of each object first receives the full state replayed up to it,
// so later diffs still start from the complete object.
func (s *auditService) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	objects, err := s.repo.ListObjectsLoggedBefore(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to list purged objects: %w", err)
	}
	for _, object := range objects {
		if err := s.rebase(ctx, object, olderThan); err != nil {
			return 0, err
		}
	}

	deleted, err := s.repo.DeleteOlderThan(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit entries: %w", err)
	}
	s.logger.Info("Purged ", deleted, " audit entries logged before ", olderThan.Format(time.RFC3339))
	return deleted, nil
}

// rebase stores the replayed state in the first version of object logged at
// or after olderThan.
func (s *auditService) rebase(ctx context.Context, object audit.ObjectRef, olderThan time.Time) error {
	entries, err := s.repo.ListByObject(ctx, object.ObjectClass, object.ObjectID)
	if err != nil {
		return fmt.Errorf("failed to load history of %s %s: %w", object.ObjectClass, object.ObjectID, err)
	}

	first := -1
	for i, entry := range entries {
		if !entry.LoggedAt.Before(olderThan) {
			first = i
			break
		}
	}
	if first <= 0 || entries[first].Action == audit.ActionRemove {
		return nil
	}

	baseline := entries[first]
	if err := s.repo.UpdateData(ctx, baseline.ID, audit.Replay(entries[:first+1])); err != nil {
		return fmt.Errorf("failed to rebase history of %s %s: %w", object.ObjectClass, object.ObjectID, err)
	}
	s.logger.Debug("Rebased ", object.ObjectClass, " ", object.ObjectID, " on version ", baseline.Version)
	return nil
}

// decorate computes the labelled changes entry applies on top of previous.
func (s *auditService) decorate(previous []*audit.LogEntry, entry *audit.LogEntry) *audit.HistoryEntry {
	before := audit.Replay(previous)
	after := make(map[string]interface{}, len(before)+len(entry.Data))
	for field, value := range before {
		after[field] = value
	}
	for field, value := range entry.Data {
		after[field] = value
	}

	return &audit.HistoryEntry{
		Entry:   entry,
		Changes: s.formatter.Decorate(entry.ObjectClass, audit.Diff(before, after)),
	}
}

// normalizeSnapshot round-trips a snapshot through JSON so its values have
// the same shape as the ones read back from storage.
func normalizeSnapshot(snapshot map[string]interface{}) (map[string]interface{}, error) {
	if snapshot == nil {
		return map[string]interface{}{}, nil
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	normalized := map[string]interface{}{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return normalized, nil
}

// recordAudit stores an audit version for a change that is already
// committed, so a failure is logged rather than returned.
func recordAudit(ctx context.Context, recorder audit.Recorder, log logger.Logger, action, objectClass, objectID string, snapshot map[string]interface{}, username string) {
	if recorder == nil {
		return
	}
	if _, err := recorder.Record(ctx, action, objectClass, objectID, snapshot, username); err != nil {
		log.Error("Failed to audit ", action, " of ", objectClass, " ", objectID, ": ", err)
	}
}
