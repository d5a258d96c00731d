package chartab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryLoads(t *testing.T) {
	reg := Default()
	groups := reg.Groups()
	require.NotEmpty(t, groups)

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name())
	}
	assert.Contains(t, names, "C1")
	assert.Contains(t, names, "C2v")
	assert.Contains(t, names, "C2h")
	assert.Contains(t, names, "C3v")
	assert.Contains(t, names, "D3")
	assert.Contains(t, names, "D2h")
	assert.Contains(t, names, "D4h")
	assert.Contains(t, names, "D6h")
}

func TestBuiltinTableInvariants(t *testing.T) {
	for _, tab := range Default().Groups() {
		t.Run(tab.Name(), func(t *testing.T) {
			require.NoError(t, tab.Validate())

			sum := 0
			for _, size := range tab.ClassSizes {
				sum += size
			}
			assert.Equal(t, tab.Order, sum, "class sizes must sum to the group order")

			for i, c := range tab.Rows[0].Chars {
				assert.Equal(t, 1, c, "totally symmetric row, class %d", i)
			}
			for _, row := range tab.Rows {
				assert.Len(t, row.Chars, len(tab.ClassSizes), "row %s", row.Symbol)
				assert.Equal(t, row.Chars[0] > 1, row.Degenerate, "row %s", row.Symbol)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	reg := Default()

	tab, err := reg.Lookup("dnh", 6)
	require.NoError(t, err)
	assert.Equal(t, "D6h", tab.Name())
	assert.Equal(t, 24, tab.Order)
	assert.Len(t, tab.Rows, 12)
}

func TestLookupUnsupported(t *testing.T) {
	reg := Default()

	_, err := reg.Lookup("dnh", 7)
	require.Error(t, err)
	assert.True(t, IsUnsupportedGroup(err))
	assert.Contains(t, err.Error(), "unsupported point group")
}

func TestLookupName(t *testing.T) {
	reg := Default()

	tab, err := reg.LookupName("D2h", 1)
	require.NoError(t, err)
	assert.Equal(t, 8, tab.Order)

	tab, err = reg.LookupName("dnh", 6)
	require.NoError(t, err)
	assert.Equal(t, "D6h", tab.Name())

	_, err = reg.LookupName("x2y3", 1)
	require.Error(t, err)
	assert.True(t, IsBadGroupName(err))
}

func TestRegisterDuplicate(t *testing.T) {
	reg := Default().Clone()
	tab, err := reg.Lookup("cn", 1)
	require.NoError(t, err)

	err = reg.Register(tab)
	require.Error(t, err)
	var te *TableError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ErrCodeDuplicateTable, te.Code)
}

func TestCloneIsIndependent(t *testing.T) {
	clone := Default().Clone()
	extra := Table{
		Family:     "sn",
		N:          4,
		Order:      4,
		ClassSizes: []int{1, 1, 1, 1},
		Rows: []Row{
			{Symbol: "a", Chars: []int{1, 1, 1, 1}},
			{Symbol: "b", Chars: []int{1, -1, 1, -1}},
		},
	}
	require.NoError(t, clone.Register(extra))

	_, err := clone.Lookup("sn", 4)
	require.NoError(t, err)

	_, err = Default().Lookup("sn", 4)
	require.Error(t, err, "registering into a clone must not touch the default registry")
}

func TestValidateRejectsMalformedTables(t *testing.T) {
	valid := Table{
		Family:     "cnv",
		N:          2,
		Order:      4,
		ClassSizes: []int{1, 1, 1, 1},
		Rows: []Row{
			{Symbol: "a1", Chars: []int{1, 1, 1, 1}},
			{Symbol: "a2", Chars: []int{1, 1, -1, -1}},
		},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Table)
	}{
		{"sizes_do_not_sum_to_order", func(t *Table) { t.Order = 5 }},
		{"zero_class_size", func(t *Table) { t.ClassSizes[0] = 0 }},
		{"row_length_mismatch", func(t *Table) { t.Rows[1].Chars = []int{1, 1} }},
		{"first_row_not_symmetric", func(t *Table) { t.Rows[0].Chars = []int{1, -1, 1, -1}; t.Rows[1].Chars = []int{1, 1, 1, 1} }},
		{"duplicate_symbol", func(t *Table) { t.Rows[1].Symbol = "a1" }},
		{"duplicate_chars", func(t *Table) { t.Rows[1].Chars = []int{1, 1, 1, 1} }},
		{"uppercase_symbol", func(t *Table) { t.Rows[0].Symbol = "A1" }},
		{"wrong_degeneracy_flag", func(t *Table) { t.Rows[1].Degenerate = true }},
		{"no_rows", func(t *Table) { t.Rows = nil }},
		{"bad_family", func(t *Table) { t.Family = "c2v" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := valid.clone()
			tt.mutate(&tab)
			err := tab.Validate()
			require.Error(t, err)
			assert.True(t, IsInvalidTable(err), "want INVALID_TABLE, got %v", err)
		})
	}
}
