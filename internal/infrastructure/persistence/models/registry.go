package models

// All returns every model managed by the schema migration.
func All() []interface{} {
	return []interface{}{
		&ProspectModel{},
		&ContactRequestModel{},
		&NeedsAnalysisModel{},
		&NoteModel{},
		&MentorModel{},
		&ContractModel{},
		&EngagementModel{},
		&AuditLogModel{},
	}
}
