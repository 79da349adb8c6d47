package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRow feeds canned column values into scanJob without a database.
type stubRow struct {
	skills  []byte
	reasons []byte
}

func (r stubRow) Scan(dest ...any) error {
	*(dest[0].(*uuid.UUID)) = uuid.New()
	*(dest[1].(*string)) = "Backend Engineer"
	*(dest[2].(*string)) = "Acme"
	*(dest[11].(*[]byte)) = r.skills
	*(dest[12].(*[]byte)) = r.reasons
	return nil
}

func TestScanJob_DecodesJSONColumns(t *testing.T) {
	job, err := scanJob(stubRow{
		skills:  []byte(`["python", "docker"]`),
		reasons: []byte(`["Strong skills coverage"]`),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "docker"}, job.Skills)
	assert.Equal(t, []string{"Strong skills coverage"}, job.MatchReasons)
}

func TestScanJob_MalformedSkillsColumn(t *testing.T) {
	_, err := scanJob(stubRow{skills: []byte(`{not json`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills")
}

func TestScanJob_MalformedReasonsColumn(t *testing.T) {
	_, err := scanJob(stubRow{reasons: []byte(`[truncated`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "match_reasons")
}

func TestScanJob_EmptyColumnsLeaveNilSlices(t *testing.T) {
	job, err := scanJob(stubRow{})
	require.NoError(t, err)

	assert.Nil(t, job.Skills)
	assert.Nil(t, job.MatchReasons)
}
