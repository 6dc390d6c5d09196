// Package prospects defines the CRM side of the platform: prospects moving
// through the sales funnel, the contact requests and needs analyses they
// submit, the notes commercial staff keep on them, and the lead score used to
// prioritise follow-ups.
package prospects
