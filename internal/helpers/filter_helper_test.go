package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtletaFiltroSemFiltros(t *testing.T) {
	filtro, fieldErrors := ParseAtletaFiltro("", "")
	assert.Nil(t, filtro)
	assert.Empty(t, fieldErrors)

	filtro, fieldErrors = ParseAtletaFiltro("   ", "  ")
	assert.Nil(t, filtro)
	assert.Empty(t, fieldErrors)
}

func TestParseAtletaFiltroCPFValido(t *testing.T) {
	filtro, fieldErrors := ParseAtletaFiltro("", "12345678901")
	require.Empty(t, fieldErrors)
	require.NotNil(t, filtro)
	assert.Equal(t, "12345678901", filtro.CPF)
	assert.Empty(t, filtro.Nome)
}

func TestParseAtletaFiltroCPFTodosDigitosIguais(t *testing.T) {
	filtro, fieldErrors := ParseAtletaFiltro("", "11111111111")
	assert.Nil(t, filtro)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, []string{"query", "cpf"}, fieldErrors[0].Loc)
	assert.Equal(t, "value_error", fieldErrors[0].Type)
	assert.Contains(t, fieldErrors[0].Msg, "todos os dígitos iguais")
}

func TestParseAtletaFiltroCPFMalformado(t *testing.T) {
	casos := []string{
		"123",
		"1234567890",
		"123456789012",
		"1234567890a",
		"123.456.789-01",
	}

	for _, cpf := range casos {
		filtro, fieldErrors := ParseAtletaFiltro("", cpf)
		assert.Nil(t, filtro, "cpf %q", cpf)
		require.Len(t, fieldErrors, 1, "cpf %q", cpf)
		assert.Equal(t, "string_pattern_mismatch", fieldErrors[0].Type, "cpf %q", cpf)
		assert.Equal(t, []string{"query", "cpf"}, fieldErrors[0].Loc, "cpf %q", cpf)
	}
}

func TestParseAtletaFiltroNome(t *testing.T) {
	filtro, fieldErrors := ParseAtletaFiltro("  João Silva  ", "")
	require.Empty(t, fieldErrors)
	require.NotNil(t, filtro)
	assert.Equal(t, "João Silva", filtro.Nome)
}

func TestParseAtletaFiltroNomeMuitoLongo(t *testing.T) {
	filtro, fieldErrors := ParseAtletaFiltro(strings.Repeat("a", 51), "")
	assert.Nil(t, filtro)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, []string{"query", "nome"}, fieldErrors[0].Loc)
	assert.Equal(t, "string_too_long", fieldErrors[0].Type)

	filtro, fieldErrors = ParseAtletaFiltro(strings.Repeat("a", 50), "")
	assert.Empty(t, fieldErrors)
	assert.NotNil(t, filtro)
}

func TestParseAtletaFiltroCombinado(t *testing.T) {
	filtro, fieldErrors := ParseAtletaFiltro("Maria", "98765432109")
	require.Empty(t, fieldErrors)
	require.NotNil(t, filtro)
	assert.Equal(t, "Maria", filtro.Nome)
	assert.Equal(t, "98765432109", filtro.CPF)
}

func TestParseAtletaFiltroErrosAcumulados(t *testing.T) {
	_, fieldErrors := ParseAtletaFiltro(strings.Repeat("a", 51), "abc")
	assert.Len(t, fieldErrors, 2)
}
