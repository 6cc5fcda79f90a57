package eligibility

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesTier_WholeTokenForShortKeywords(t *testing.T) {
	ceiling := DefaultCriteria().QualificationCeiling

	assert.True(t, MatchesTier("CA", ceiling))
	assert.True(t, MatchesTier("Chartered Accountant ca final", ceiling))
	// "ca" must not fire inside "BCA".
	assert.False(t, MatchesTier("BCA", ceiling))
}

func TestMatchesTier_NormalizesPunctuation(t *testing.T) {
	floor := DefaultCriteria().QualificationFloor

	assert.True(t, MatchesTier("B.Tech", floor))
	assert.True(t, MatchesTier("b-tech", floor))
	assert.True(t, MatchesTier("Bachelor of Arts", floor))
}

func TestMatchesTier_MultiWordKeyword(t *testing.T) {
	assert.True(t, MatchesTier("passed Class 10 board exam", []string{"class 10"}))
	assert.False(t, MatchesTier("class of 2010", []string{"class 10"}))
}

func TestMatchesTier_EmptyQualification(t *testing.T) {
	assert.False(t, MatchesTier("", DefaultCriteria().QualificationFloor))
	assert.False(t, MatchesTier("   ", DefaultCriteria().QualificationFloor))
}

func TestIsPremierInstitute(t *testing.T) {
	c := DefaultCriteria()

	assert.True(t, c.IsPremierInstitute("IIT Bombay"))
	assert.True(t, c.IsPremierInstitute("NIT Trichy"))
	assert.False(t, c.IsPremierInstitute("Delhi University"))
}

func TestDefaultCriteria_Valid(t *testing.T) {
	c := DefaultCriteria()

	require.NoError(t, c.Validate())
	assert.Equal(t, 21, c.MinAge)
	assert.Equal(t, 24, c.MaxAge)
	assert.Equal(t, 800000.0, c.IncomeCeiling)
	assert.Equal(t, 10, c.MatchLimit)
}

func TestLoadCriteria_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "criteria.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"min_age": 18, "max_age": 28}`), 0644))

	c, err := LoadCriteria(path)
	require.NoError(t, err)

	assert.Equal(t, 18, c.MinAge)
	assert.Equal(t, 28, c.MaxAge)
	assert.Equal(t, 800000.0, c.IncomeCeiling)
	assert.NotEmpty(t, c.QualificationFloor)
}

func TestLoadCriteria_InvalidRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "criteria.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"min_age": 30, "max_age": 20}`), 0644))

	_, err := LoadCriteria(path)
	assert.Error(t, err)
}

func TestLoadCriteria_MissingFile(t *testing.T) {
	_, err := LoadCriteria(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadCriteria_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "criteria.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadCriteria(path)
	assert.Error(t, err)
}
