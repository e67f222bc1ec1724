package models

import (
	"github.com/google/uuid"
)

type CentroTreinamento struct {
	PkID         uint      `gorm:"primaryKey" json:"-"`
	ID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	Nome         string    `gorm:"size:50;uniqueIndex;not null" json:"nome"`
	Endereco     string    `gorm:"size:60;not null" json:"endereco"`
	Proprietario string    `gorm:"size:30;not null" json:"proprietario"`
	Atletas      []Atleta  `gorm:"foreignKey:CentroTreinamentoID" json:"-"`
}

func (CentroTreinamento) TableName() string {
	return "centros_treinamento"
}
