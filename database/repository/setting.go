// database/repository/setting.go
package repository

import (
	"fmt"

	"lansdowne360/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository defines the interface for the category-keyed
// key/value settings store.
type SettingRepository interface {
	// GetCategory returns all key/value pairs under one category.
	// A category with no rows yields an empty map, not an error.
	GetCategory(category string) (map[string]string, error)
	List(category string) ([]models.Setting, error)
	Upsert(category, key, value string) error
	Delete(category, key string) error
}

// GormSettingRepo implements SettingRepository using GORM.
type GormSettingRepo struct {
	db *gorm.DB
}

// NewGormSettingRepo creates a new settings repository.
func NewGormSettingRepo(db *gorm.DB) SettingRepository {
	return &GormSettingRepo{db: db}
}

func (repo *GormSettingRepo) GetCategory(category string) (map[string]string, error) {
	rows, err := repo.List(category)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (repo *GormSettingRepo) List(category string) ([]models.Setting, error) {
	var rows []models.Setting
	if err := repo.db.Where("category = ?", category).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings for category %s: %w", category, err)
	}
	return rows, nil
}

func (repo *GormSettingRepo) Upsert(category, key, value string) error {
	row := models.Setting{Category: category, Key: key, Value: value}
	err := repo.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s/%s: %w", category, key, err)
	}
	return nil
}

func (repo *GormSettingRepo) Delete(category, key string) error {
	result := repo.db.Delete(&models.Setting{}, "category = ? AND key = ?", category, key)
	if result.Error != nil {
		return fmt.Errorf("failed to delete setting %s/%s: %w", category, key, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("setting %s/%s not found", category, key)
	}
	return nil
}
