package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonCatalog = `{
  "personer": ["NA", "OL", "BA", "AL"],
  "base_date": "2024-01-01",
  "ugentlig": {
    "køkken": ["Tør borde af", "Tøm opvaskeren"],
    "badeværelse": ["Gør toilet rent"],
    "overflader": ["Støv af"]
  },
  "månedlig": {
    "køkken": ["Rens ovn"],
    "overflader": ["Vask vinduer", "Tør lister af"]
  }
}`

func TestParse_JSON(t *testing.T) {
	c, err := Parse([]byte(jsonCatalog), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, []string{"NA", "OL", "BA", "AL"}, c.Persons)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), c.BaseDate)
	assert.Equal(t, []string{"ugentlig", "månedlig"}, c.Periods())

	// document order, not alphabetical
	assert.Equal(t, []string{"køkken", "badeværelse", "overflader"}, c.Categories("ugentlig"))
	assert.Equal(t, []string{"Tør borde af", "Tøm opvaskeren"}, c.Tasks("ugentlig", "køkken"))
	assert.Equal(t, []string{"Vask vinduer", "Tør lister af"}, c.Tasks("månedlig", "overflader"))

	assert.Nil(t, c.Categories("årlig"))
	assert.Nil(t, c.Tasks("ugentlig", "have"))
}

func TestParse_YAML(t *testing.T) {
	doc := `
persons: [A, B, C]
base_date: 2024-03-04T00:00:00Z
ugentlig:
  bath: [scrub]
  kitchen: [dishes, floor]
`
	c, err := Parse([]byte(doc), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, c.Persons)
	assert.Equal(t, time.March, c.BaseDate.Month())
	assert.Equal(t, []string{"bath", "kitchen"}, c.Categories("ugentlig"))
}

func TestParse_BadBaseDate(t *testing.T) {
	c, err := Parse([]byte(`{"personer": ["A"], "base_date": "not a date"}`), time.UTC)
	require.NoError(t, err)
	assert.True(t, c.BaseDate.IsZero())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`[1, 2]`), time.UTC)
	assert.Error(t, err)

	_, err = Parse([]byte(`{"personer": {"a": 1}}`), time.UTC)
	assert.Error(t, err)

	_, err = Parse([]byte(`{"ugentlig": {"køkken": {"x": 1}}}`), time.UTC)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opgaver.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonCatalog), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Persons, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
