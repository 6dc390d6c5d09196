// Package models contains the GORM database models. They are kept apart from
// the domain entities and converted with ToDomain/FromDomain; timestamps are
// stamped by the BeforeCreate/BeforeUpdate hooks.
package models
