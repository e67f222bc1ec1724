package helpers

import (
	"regexp"
	"strings"
)

type AtletaFiltro struct {
	Nome string
	CPF  string
}

var cpfPattern = regexp.MustCompile(`^\d{11}$`)

// ParseAtletaFiltro validates the optional listing filters. With both
// parameters empty it returns (nil, nil); invalid values produce the field
// error list the handler returns as 422. Name matching downstream is
// case-insensitive but accent-sensitive.
func ParseAtletaFiltro(nome, cpf string) (*AtletaFiltro, []FieldError) {
	nome = strings.TrimSpace(nome)
	cpf = strings.TrimSpace(cpf)

	if nome == "" && cpf == "" {
		return nil, nil
	}

	var fieldErrors []FieldError

	if len([]rune(nome)) > 50 {
		fieldErrors = append(fieldErrors, FieldError{
			Loc:  []string{"query", "nome"},
			Msg:  "tamanho máximo de 50 caracteres",
			Type: "string_too_long",
		})
	}

	if cpf != "" {
		switch {
		case !cpfPattern.MatchString(cpf):
			fieldErrors = append(fieldErrors, FieldError{
				Loc:  []string{"query", "cpf"},
				Msg:  "deve conter exatamente 11 dígitos",
				Type: "string_pattern_mismatch",
			})
		case todosDigitosIguais(cpf):
			fieldErrors = append(fieldErrors, FieldError{
				Loc:  []string{"query", "cpf"},
				Msg:  "CPF não pode ter todos os dígitos iguais",
				Type: "value_error",
			})
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return &AtletaFiltro{Nome: nome, CPF: cpf}, nil
}

func todosDigitosIguais(cpf string) bool {
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			return false
		}
	}
	return true
}
