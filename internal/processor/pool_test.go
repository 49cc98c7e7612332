package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrato-dev/extrato/internal/statement"
)

func TestProcessAll_CollectsAllValidFiles(t *testing.T) {
	dir := t.TempDir()
	var files []statement.FileInfo
	for _, name := range []string{"Bradesco_a.xls", "Bradesco_b.xls", "Bradesco_c.xls"} {
		files = append(files, writeStatement(t, dir, name, [][]string{
			headerRow,
			{"05/01/24", "Deposito " + name, "", "100,00", "", "100,00"},
		}))
	}

	sets := ProcessAll(files, testConfig())
	require.Len(t, sets, 3)
	for _, set := range sets {
		assert.Len(t, set, 1)
	}
}

func TestProcessAll_OneBadFileDoesNotAbortSiblings(t *testing.T) {
	dir := t.TempDir()

	good := writeStatement(t, dir, "Bradesco_good.xls", [][]string{
		headerRow,
		{"05/01/24", "Deposito", "", "100,00", "", "100,00"},
	})

	// Neither a workbook nor an HTML table.
	badPath := filepath.Join(dir, "Bradesco_bad.xls")
	require.NoError(t, os.WriteFile(badPath, []byte("not a statement"), 0o644))
	bad := statement.FileInfo{Name: "Bradesco_bad.xls", Path: badPath}

	// Valid shape, wrong institution.
	foreign := writeStatement(t, dir, "outro_banco.xls", [][]string{
		headerRow,
		{"05/01/24", "Deposito", "", "100,00", "", "100,00"},
	})

	sets := ProcessAll([]statement.FileInfo{bad, good, foreign}, testConfig())
	require.Len(t, sets, 1)
	assert.Equal(t, "Bradesco_good.xls", sets[0][0].SourceFile)
}

func TestProcessAll_NoFiles(t *testing.T) {
	assert.Empty(t, ProcessAll(nil, testConfig()))
}
