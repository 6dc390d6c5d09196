//go:build unit
// +build unit

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/validators"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeScoring(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "eprofos-cli"}
	require.NoError(t, InitScoringCommands(root))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLeadScoreCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
email: claire.martin@acme.fr
company: Acme
status: qualified
contact_requests: [quote]
needs_analyses: [true]
interested_formation_ids: [f-1]
`), 0600))

	out, err := executeScoring(t, "lead-score", "--file", path)
	require.NoError(t, err)

	var result struct {
		Score int    `json:"score"`
		Level string `json:"level"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 180, result.Score)
	assert.Equal(t, prospects.ScoreLevelWarm, result.Level)
}

func TestLeadScoreCmd_HugeRegistrationCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
email: contact@example.fr
status: lead
session_registration_count: 1152921504606846976
`), 0600))

	out, err := executeScoring(t, "lead-score", "--file", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 999, "level": "hot"}`, out)
}

func TestLeadScoreCmd_RejectsNegativeCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
email: contact@example.fr
status: lead
session_registration_count: -4
`), 0600))

	_, err := executeScoring(t, "lead-score", "--file", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestLeadScoreCmd_MissingFile(t *testing.T) {
	_, err := executeScoring(t, "lead-score", "--file", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestComplianceCmd(t *testing.T) {
	out, err := executeScoring(t, "compliance", "--total", "10", "--at-risk", "1", "--attendance", "90", "--engagement", "72")
	require.NoError(t, err)

	var score engagement.ComplianceScore
	require.NoError(t, json.Unmarshal([]byte(out), &score))
	assert.Equal(t, 100, score.Score)
	assert.Equal(t, engagement.ComplianceExcellent, score.Level)
	assert.Len(t, score.Criteria, 4)
}

func TestComplianceCmd_RejectsInconsistentCounts(t *testing.T) {
	_, err := executeScoring(t, "compliance", "--total", "3", "--at-risk", "5")
	assert.Error(t, err)
}
