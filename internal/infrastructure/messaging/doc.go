// Package messaging publishes audit log entries to Kafka so that other
// systems can follow changes to prospects, contracts and engagement records.
package messaging
