// Package notification renders Liquid email templates and delivers them
// through Amazon SES, or through the application log when no mail provider
// is configured.
package notification
