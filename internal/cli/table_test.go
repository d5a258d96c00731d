package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableTextGolden(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"table", "D6h"})

	require.NoError(t, cmd.Execute())

	g := goldie.New(t)
	g.Assert(t, "table_d6h", buf.Bytes())
}

func TestTableD2hTextGolden(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"table", "D2h"})

	require.NoError(t, cmd.Execute())

	g := goldie.New(t)
	g.Assert(t, "table_d2h", buf.Bytes())
}

func TestTableJSON(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "table", "D2h")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var info TableInfo
	require.NoError(t, json.Unmarshal(data, &info))
	assert.Equal(t, "D2h", info.Name)
	assert.Equal(t, 8, info.Order)
	require.Len(t, info.Rows, 8)
	assert.Equal(t, "ag", info.Rows[0].Symbol)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1}, info.Rows[0].Chars)
}

func TestTableFamilyTagWithOrder(t *testing.T) {
	out, err := runCommand(t, "table", "dnh", "--order", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "D2h (order 8)")
}

func TestTableUnknownGroup(t *testing.T) {
	out, err := runCommand(t, "table", "D9h")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeUnknownGroup)
	assert.Contains(t, out, "unsupported point group")
}

func TestGroupsListsBuiltins(t *testing.T) {
	out, err := runCommand(t, "groups")
	require.NoError(t, err)
	assert.Contains(t, out, "D6h")
	assert.Contains(t, out, "order 24")
	assert.Contains(t, out, "e2u")
	assert.Contains(t, out, "D2h")
}

func TestGroupsJSON(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "groups")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var infos []GroupInfo
	require.NoError(t, json.Unmarshal(data, &infos))
	require.NotEmpty(t, infos)

	byName := make(map[string]GroupInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}
	d6h, ok := byName["D6h"]
	require.True(t, ok)
	assert.Equal(t, 24, d6h.Order)
	assert.Equal(t, []string{
		"a1g", "a2g", "b1g", "b2g", "e1g", "e2g",
		"a1u", "a2u", "b1u", "b2u", "e1u", "e2u",
	}, d6h.Irreps)
}
