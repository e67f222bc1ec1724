package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"workout-api/internal/helpers"
	"workout-api/internal/models"
)

type CentroTreinamentoRequest struct {
	Nome         string `json:"nome" binding:"required,max=50"`
	Endereco     string `json:"endereco" binding:"required,max=60"`
	Proprietario string `json:"proprietario" binding:"required,max=30"`
}

func CreateCentroTreinamento(c *gin.Context) {
	var req CentroTreinamentoRequest
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

	centro := models.CentroTreinamento{
		ID:           uuid.New(),
		Nome:         req.Nome,
		Endereco:     req.Endereco,
		Proprietario: req.Proprietario,
	}

	if err := gormDB.Create(&centro).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithError(c, http.StatusSeeOther, fmt.Sprintf("Já existe um centro de treinamento cadastrado com o nome: %s", req.Nome))
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao criar o centro de treinamento.")
		return
	}

	c.JSON(http.StatusCreated, centro)
}

func ListCentrosTreinamento(c *gin.Context) {
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

	page, err := helpers.Paginar[models.CentroTreinamento](gormDB.Model(&models.CentroTreinamento{}), params)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao consultar os centros de treinamento.")
		return
	}

	c.JSON(http.StatusOK, page)
}

func GetCentroTreinamento(c *gin.Context) {
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

	var centro models.CentroTreinamento
	if err := gormDB.Where("id = ?", id).First(&centro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Centro de treinamento não encontrado no id: %s", id))
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao consultar o centro de treinamento.")
		return
	}

	c.JSON(http.StatusOK, centro)
}
