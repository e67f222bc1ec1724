package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"workout-api/internal/helpers"
	"workout-api/internal/models"
)

// Reference structs carry only the natural key used for lookup. No length
// cap here: a name that is too long to exist simply fails resolution and
// surfaces as the 400 missing-reference error.
type CategoriaRef struct {
	Nome string `json:"nome" binding:"required"`
}

type CentroTreinamentoRef struct {
	Nome string `json:"nome" binding:"required"`
}

type AtletaRequest struct {
	Nome              string               `json:"nome" binding:"required,max=50"`
	CPF               string               `json:"cpf" binding:"required,len=11,numeric"`
	Idade             int                  `json:"idade" binding:"required,gt=0"`
	Peso              float64              `json:"peso" binding:"required,gt=0"`
	Altura            float64              `json:"altura" binding:"required,gt=0"`
	Sexo              string               `json:"sexo" binding:"required,len=1"`
	Categoria         CategoriaRef         `json:"categoria" binding:"required"`
	CentroTreinamento CentroTreinamentoRef `json:"centro_treinamento" binding:"required"`
}

type AtletaUpdateRequest struct {
	Nome  *string `json:"nome" binding:"omitempty,max=50"`
	Idade *int    `json:"idade" binding:"omitempty,gt=0"`
}

type AtletaResponse struct {
	ID                uuid.UUID            `json:"id"`
	CreatedAt         time.Time            `json:"created_at"`
	Nome              string               `json:"nome"`
	CPF               string               `json:"cpf"`
	Idade             int                  `json:"idade"`
	Peso              float64              `json:"peso"`
	Altura            float64              `json:"altura"`
	Sexo              string               `json:"sexo"`
	Categoria         CategoriaRef         `json:"categoria"`
	CentroTreinamento CentroTreinamentoRef `json:"centro_treinamento"`
}

// AtletaListagemResponse is the flattened projection used by the collection
// endpoint: related entities appear only by name.
type AtletaListagemResponse struct {
	ID                uuid.UUID `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	Nome              string    `json:"nome"`
	CPF               string    `json:"cpf"`
	Categoria         string    `json:"categoria"`
	CentroTreinamento string    `json:"centro_treinamento"`
}

func newAtletaResponse(atleta *models.Atleta) AtletaResponse {
	return AtletaResponse{
		ID:                atleta.ID,
		CreatedAt:         atleta.CreatedAt,
		Nome:              atleta.Nome,
		CPF:               atleta.CPF,
		Idade:             atleta.Idade,
		Peso:              atleta.Peso,
		Altura:            atleta.Altura,
		Sexo:              atleta.Sexo,
		Categoria:         CategoriaRef{Nome: atleta.Categoria.Nome},
		CentroTreinamento: CentroTreinamentoRef{Nome: atleta.CentroTreinamento.Nome},
	}
}

func newAtletaListagemResponse(atleta *models.Atleta) AtletaListagemResponse {
	return AtletaListagemResponse{
		ID:                atleta.ID,
		CreatedAt:         atleta.CreatedAt,
		Nome:              atleta.Nome,
		CPF:               atleta.CPF,
		Categoria:         atleta.Categoria.Nome,
		CentroTreinamento: atleta.CentroTreinamento.Nome,
	}
}

func CreateAtleta(c *gin.Context) {
	var req AtletaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithBindingError(c, err)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Conexão com o banco de dados não encontrada.")
		return
	}
	gormDB := db.(*gorm.DB)

	categoria, found, err := helpers.FindByNome[models.Categoria](gormDB, req.Categoria.Nome)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao consultar a categoria.")
		return
	}
	if !found {
		helpers.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf("A categoria %s não foi encontrada.", req.Categoria.Nome))
		return
	}

	centro, found, err := helpers.FindByNome[models.CentroTreinamento](gormDB, req.CentroTreinamento.Nome)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao consultar o centro de treinamento.")
		return
	}
	if !found {
		helpers.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf("O centro de treinamento %s não foi encontrado.", req.CentroTreinamento.Nome))
		return
	}

	atleta := models.Atleta{
		ID:                  uuid.New(),
		Nome:                req.Nome,
		CPF:                 req.CPF,
		Idade:               req.Idade,
		Peso:                req.Peso,
		Altura:              req.Altura,
		Sexo:                req.Sexo,
		CreatedAt:           time.Now().UTC(),
		CategoriaID:         categoria.PkID,
		CentroTreinamentoID: centro.PkID,
	}

	// Optimistic insert: the unique index on cpf closes the race between
	// concurrent creates, no pre-check.
	if err := gormDB.Create(&atleta).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithError(c, http.StatusSeeOther, fmt.Sprintf("Já existe um atleta cadastrado com o cpf: %s", req.CPF))
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao criar o atleta.")
		return
	}

	atleta.Categoria = *categoria
	atleta.CentroTreinamento = *centro

	c.JSON(http.StatusCreated, newAtletaResponse(&atleta))
}

func ListAtletas(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Conexão com o banco de dados não encontrada.")
		return
	}
	gormDB := db.(*gorm.DB)

	params, fieldErrors := helpers.ParsePaginacaoParams(c)
	if len(fieldErrors) > 0 {
		helpers.RespondWithFieldErrors(c, fieldErrors)
		return
	}

	filtro, fieldErrors := helpers.ParseAtletaFiltro(c.Query("nome"), c.Query("cpf"))
	if len(fieldErrors) > 0 {
		helpers.RespondWithFieldErrors(c, fieldErrors)
		return
	}

	query := gormDB.Model(&models.Atleta{}).Preload("Categoria").Preload("CentroTreinamento")
	if filtro != nil {
		if filtro.CPF != "" {
			query = query.Where("cpf = ?", filtro.CPF)
		}
		if filtro.Nome != "" {
			query = query.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(filtro.Nome)+"%")
		}
	}

	page, err := helpers.Paginar[models.Atleta](query, params)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao consultar os atletas.")
		return
	}

	items := make([]AtletaListagemResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, newAtletaListagemResponse(&page.Items[i]))
	}

	c.JSON(http.StatusOK, helpers.Pagina[AtletaListagemResponse]{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
		Pages: page.Pages,
	})
}

func GetAtleta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithInvalidID(c)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Conexão com o banco de dados não encontrada.")
		return
	}
	gormDB := db.(*gorm.DB)

	var atleta models.Atleta
	if err := gormDB.Preload("Categoria").Preload("CentroTreinamento").Where("id = ?", id).First(&atleta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Atleta não encontrado no id: %s", id))
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao consultar o atleta.")
		return
	}

	c.JSON(http.StatusOK, newAtletaResponse(&atleta))
}

func UpdateAtleta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithInvalidID(c)
		return
	}

	var req AtletaUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithBindingError(c, err)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Conexão com o banco de dados não encontrada.")
		return
	}
	gormDB := db.(*gorm.DB)

	var atleta models.Atleta
	if err := gormDB.Where("id = ?", id).First(&atleta).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Atleta não encontrado no id: %s", id))
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao consultar o atleta.")
		return
	}

	// Only fields present in the payload are touched.
	updates := map[string]interface{}{}
	if req.Nome != nil {
		updates["nome"] = *req.Nome
	}
	if req.Idade != nil {
		updates["idade"] = *req.Idade
	}

	if len(updates) > 0 {
		if err := gormDB.Model(&atleta).Updates(updates).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao atualizar o atleta.")
			return
		}
	}

	if err := gormDB.Preload("Categoria").Preload("CentroTreinamento").Where("pk_id = ?", atleta.PkID).First(&atleta).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao consultar o atleta.")
		return
	}

	c.JSON(http.StatusOK, newAtletaResponse(&atleta))
}

func DeleteAtleta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithInvalidID(c)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Conexão com o banco de dados não encontrada.")
		return
	}
	gormDB := db.(*gorm.DB)

	result := gormDB.Where("id = ?", id).Delete(&models.Atleta{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao deletar o atleta.")
		return
	}

	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Atleta não encontrado no id: %s", id))
		return
	}

	c.Status(http.StatusNoContent)
}
