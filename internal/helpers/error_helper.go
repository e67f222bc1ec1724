package helpers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func RespondWithError(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
}

func RespondWithFieldErrors(c *gin.Context, fieldErrors []FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": fieldErrors})
}

// RespondWithBindingError turns a ShouldBindJSON failure into the itemized
// 422 payload. Malformed JSON or type mismatches carry a single body-level
// entry instead of per-field ones.
func RespondWithBindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		RespondWithFieldErrors(c, []FieldError{{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		}})
		return
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Loc:  fieldErrorLoc(fieldError),
			Msg:  fieldErrorMsg(fieldError),
			Type: "value_error." + fieldError.Tag(),
		})
	}
	RespondWithFieldErrors(c, fieldErrors)
}

func RespondWithInvalidID(c *gin.Context) {
	RespondWithFieldErrors(c, []FieldError{{
		Loc:  []string{"path", "id"},
		Msg:  "id inválido",
		Type: "uuid_parsing",
	}})
}

func fieldErrorLoc(fieldError validator.FieldError) []string {
	loc := []string{"body"}
	namespace := strings.Split(fieldError.Namespace(), ".")
	if len(namespace) > 1 {
		loc = append(loc, namespace[1:]...)
	}
	return loc
}

func fieldErrorMsg(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "campo obrigatório"
	case "max":
		return "tamanho máximo de " + fieldError.Param() + " caracteres"
	case "len":
		return "deve ter exatamente " + fieldError.Param() + " caracteres"
	case "numeric":
		return "deve conter apenas dígitos"
	case "gt":
		return "deve ser maior que " + fieldError.Param()
	default:
		return "valor inválido"
	}
}
