package models

import (
	"time"

	"github.com/google/uuid"
)

type Atleta struct {
	PkID                uint              `gorm:"primaryKey" json:"-"`
	ID                  uuid.UUID         `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	Nome                string            `gorm:"size:50;not null" json:"nome"`
	CPF                 string            `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	Idade               int               `gorm:"not null" json:"idade"`
	Peso                float64           `gorm:"not null" json:"peso"`
	Altura              float64           `gorm:"not null" json:"altura"`
	Sexo                string            `gorm:"size:1;not null" json:"sexo"`
	CreatedAt           time.Time         `json:"created_at"`
	CategoriaID         uint              `gorm:"not null" json:"-"`
	Categoria           Categoria         `gorm:"foreignKey:CategoriaID" json:"categoria"`
	CentroTreinamentoID uint              `gorm:"not null" json:"-"`
	CentroTreinamento   CentroTreinamento `gorm:"foreignKey:CentroTreinamentoID" json:"centro_treinamento"`
}

func (Atleta) TableName() string {
	return "atletas"
}
