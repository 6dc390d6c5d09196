// Package engagement tracks how involved each student is in their training,
// flags students at risk of dropping out, and turns the aggregate figures into
// the Qualiopi compliance score shown on the admin dashboard.
package engagement
