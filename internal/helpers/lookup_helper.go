package helpers

import (
	"errors"

	"gorm.io/gorm"
)

// FindByNome resolves an entity referenced by its natural key. The boolean
// reports whether the row exists so handlers can name the missing reference.
func FindByNome[T any](db *gorm.DB, nome string) (*T, bool, error) {
	var entity T
	err := db.Where("nome = ?", nome).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &entity, true, nil
}
