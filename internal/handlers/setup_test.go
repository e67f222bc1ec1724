package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"workout-api/internal/models"
	"workout-api/internal/server"
)

// Each test gets its own named in-memory database; cache=shared keeps every
// pooled connection pointed at the same one.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", sanitizeDBName(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Categoria{}, &models.CentroTreinamento{}, &models.Atleta{}))

	r := gin.New()
	server.SetupRoutes(r, db)
	return r, db
}

func sanitizeDBName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func seedCategoria(t *testing.T, db *gorm.DB, nome string) *models.Categoria {
	t.Helper()
	categoria := &models.Categoria{ID: uuid.New(), Nome: nome}
	require.NoError(t, db.Create(categoria).Error)
	return categoria
}

func seedCentro(t *testing.T, db *gorm.DB, nome string) *models.CentroTreinamento {
	t.Helper()
	centro := &models.CentroTreinamento{
		ID:           uuid.New(),
		Nome:         nome,
		Endereco:     "Rua das Flores, 123",
		Proprietario: "Marcos",
	}
	require.NoError(t, db.Create(centro).Error)
	return centro
}

func seedAtleta(t *testing.T, db *gorm.DB, nome, cpf string, categoria *models.Categoria, centro *models.CentroTreinamento) *models.Atleta {
	t.Helper()
	atleta := &models.Atleta{
		ID:                  uuid.New(),
		Nome:                nome,
		CPF:                 cpf,
		Idade:               25,
		Peso:                75.5,
		Altura:              1.70,
		Sexo:                "M",
		CategoriaID:         categoria.PkID,
		CentroTreinamentoID: centro.PkID,
	}
	require.NoError(t, db.Create(atleta).Error)
	return atleta
}
