// Package cache provides the Redis backed cache of the engagement dashboard
// and an in-process no-op variant used when Redis is disabled.
package cache
