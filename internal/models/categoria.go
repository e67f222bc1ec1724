package models

import (
	"time"

	"github.com/google/uuid"
)

type Categoria struct {
	PkID      uint      `gorm:"primaryKey" json:"-"`
	ID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	Nome      string    `gorm:"size:10;uniqueIndex;not null" json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	Atletas   []Atleta  `gorm:"foreignKey:CategoriaID" json:"-"`
}

func (Categoria) TableName() string {
	return "categorias"
}
