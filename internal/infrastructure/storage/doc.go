// Package storage archives generated engagement exports to Amazon S3.
package storage
