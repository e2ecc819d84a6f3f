package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// nil args would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_Navigate(t *testing.T) {
	out, err := execute(t, "-s", "B2", "-n", "right column,extend-down row")
	require.NoError(t, err)
	assert.Equal(t, "C2:C3 top-left\n", out)
}

func TestRun_DefaultSelection(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "A1\n", out)
}

func TestRun_HiddenExpressions(t *testing.T) {
	out, err := execute(t, "-s", "B2", "-n", "right column,down row",
		"--hidden-columns", "index == 3", "--hidden-rows", "index == 3")
	require.NoError(t, err)
	assert.Equal(t, "D4\n", out)
}

func TestRun_Compact(t *testing.T) {
	out, err := execute(t, "--compact", "-n", "left column,right column,down row")
	require.NoError(t, err)
	assert.Equal(t, "navigations: down row\nA2\n", out)
}

func TestRun_JSON(t *testing.T) {
	out, err := execute(t, "-s", "B2:D4", "-n", "extend-left column", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"selection":"A2:D4","anchor":"bottom-right","navigations":"extend-left column"}`, out)
}

func TestRun_Workbook(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "x"))
	require.NoError(t, f.SetColVisible("Sheet1", "C", false))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "Start", RefersTo: "Sheet1!$B$2"}))
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	out, err := execute(t, "-w", path, "-s", "B2", "-n", "right column")
	require.NoError(t, err)
	assert.Equal(t, "D2\n", out)

	out, err = execute(t, "-w", path, "-s", "Start", "-n", "right column")
	require.NoError(t, err)
	assert.Equal(t, "$D$2\n", out)

	_, err = execute(t, "-w", path, "--sheet", "Missing")
	assert.Error(t, err)
}

func TestRun_Errors(t *testing.T) {
	tests := map[string][]string{
		"bad selection":  {"-s", "A1 top"},
		"bad navigation": {"-n", "sideways column"},
		"bad expression": {"--hidden-columns", "index +"},
		"missing file":   {"-w", filepath.Join(t.TempDir(), "missing.xlsx")},
		"extra argument": {"extra"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}
