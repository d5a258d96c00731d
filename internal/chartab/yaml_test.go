package chartab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
tables:
  - family: cnv
    n: 3
    order: 6
    class_sizes: [1, 2, 3]
    rows:
      - symbol: a1
        chars: [1, 1, 1]
      - symbol: a2
        chars: [1, 1, -1]
      - symbol: e
        chars: [2, -1, 0]
        degenerate: true
`

func TestLoadYAML(t *testing.T) {
	tables, err := LoadYAML(strings.NewReader(validYAML))
	require.NoError(t, err)
	require.Len(t, tables, 1)

	tab := tables[0]
	assert.Equal(t, "C3v", tab.Name())
	assert.Equal(t, 6, tab.Order)
	require.Len(t, tab.Rows, 3)
	assert.True(t, tab.Rows[2].Degenerate)
	assert.Equal(t, []int{2, -1, 0}, tab.Rows[2].Chars)
}

func TestLoadYAMLRoundTripsThroughRegistry(t *testing.T) {
	tables, err := LoadYAML(strings.NewReader(validYAML))
	require.NoError(t, err)

	reg := NewRegistry()
	for _, tab := range tables {
		require.NoError(t, reg.Register(tab))
	}
	tab, err := reg.Lookup("cnv", 3)
	require.NoError(t, err)
	assert.Equal(t, "C3v", tab.Name())
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty_document", "tables: []"},
		{"not_yaml", "{{{"},
		{"unknown_field", "tables:\n  - family: cn\n    bogus: 1"},
		{
			"invalid_table",
			`
tables:
  - family: cnv
    n: 3
    order: 7
    class_sizes: [1, 2, 3]
    rows:
      - symbol: a1
        chars: [1, 1, 1]
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			require.Error(t, err)
		})
	}
}
