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

type CategoriaRequest struct {
	Nome string `json:"nome" binding:"required,max=10"`
}

func CreateCategoria(c *gin.Context) {
	var req CategoriaRequest
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

	categoria := models.Categoria{
		ID:   uuid.New(),
		Nome: req.Nome,
	}

	if err := gormDB.Create(&categoria).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			helpers.RespondWithError(c, http.StatusSeeOther, fmt.Sprintf("Já existe uma categoria cadastrada com o nome: %s", req.Nome))
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao criar a categoria.")
		return
	}

	c.JSON(http.StatusCreated, categoria)
}

func ListCategorias(c *gin.Context) {
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

	page, err := helpers.Paginar[models.Categoria](gormDB.Model(&models.Categoria{}), params)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao consultar as categorias.")
		return
	}

	c.JSON(http.StatusOK, page)
}

func GetCategoria(c *gin.Context) {
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

	var categoria models.Categoria
	if err := gormDB.Where("id = ?", id).First(&categoria).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, fmt.Sprintf("Categoria não encontrada no id: %s", id))
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Erro ao consultar a categoria.")
		return
	}

	c.JSON(http.StatusOK, categoria)
}
