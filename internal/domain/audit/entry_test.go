//go:build unit
// +build unit

package audit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReplay(t *testing.T) {
	entries := []*LogEntry{
		{Version: 1, Data: map[string]interface{}{"status": "lead", "company": "ACME"}},
		{Version: 2, Data: map[string]interface{}{"status": "qualified"}},
		{Version: 3, Data: map[string]interface{}{"company": nil}},
	}

	assert.Equal(t, map[string]interface{}{"status": "qualified", "company": nil}, Replay(entries))
	assert.Empty(t, Replay(nil))
}

func TestLogEntry_Validate(t *testing.T) {
	entry := &LogEntry{
		ID:          uuid.NewString(),
		Action:      ActionUpdate,
		LoggedAt:    time.Now(),
		ObjectID:    uuid.NewString(),
		ObjectClass: "Prospect",
		Version:     2,
	}
	assert.NoError(t, entry.Validate())

	entry.Action = "patch"
	assert.Error(t, entry.Validate())

	entry.Action = ActionUpdate
	entry.Version = 0
	assert.Error(t, entry.Validate())
}
