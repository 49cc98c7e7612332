package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/extrato-dev/extrato/internal/config"
	"github.com/extrato-dev/extrato/internal/statement"
)

func validTable() *statement.Table {
	return &statement.Table{
		Columns: []string{"Data", "Historico", "Documento", "Credito", "Debito", "Saldo"},
		Rows: [][]string{
			{"05/01/24", "Dep Din Atm", "", "100,00", "", "100,00"},
		},
	}
}

func TestValidate_Accepts(t *testing.T) {
	cfg := config.Default().Statement
	assert.True(t, Validate(validTable(), "Bradesco_jan.xls", &cfg))
}

func TestValidate_TooFewColumns(t *testing.T) {
	cfg := config.Default().Statement
	table := &statement.Table{
		Columns: []string{"Data", "Historico", "Saldo"},
		Rows:    [][]string{{"05/01/24", "x", "1,00"}},
	}
	assert.False(t, Validate(table, "Bradesco_jan.xls", &cfg))
}

func TestValidate_WrongInstitution(t *testing.T) {
	cfg := config.Default().Statement
	assert.False(t, Validate(validTable(), "itau_jan.xls", &cfg))
}

func TestValidate_MarkerIsCaseInsensitive(t *testing.T) {
	cfg := config.Default().Statement
	assert.True(t, Validate(validTable(), "extrato-bradesco-jan.xls", &cfg))
}

func TestValidate_EmptyTable(t *testing.T) {
	cfg := config.Default().Statement
	table := &statement.Table{Columns: validTable().Columns}
	assert.False(t, Validate(table, "Bradesco_jan.xls", &cfg))
}
