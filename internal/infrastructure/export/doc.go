// Package export renders the engagement dashboard and the student records
// as CSV, XLSX or PDF files.
package export
