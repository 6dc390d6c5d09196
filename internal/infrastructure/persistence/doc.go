// Package persistence provides the GORM repository implementations for
// prospects, alternance, engagement records and the audit log, plus the
// connection and schema migration helpers. Both PostgreSQL and SQLite are
// supported.
package persistence
