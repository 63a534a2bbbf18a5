// database/repository/room.go
package repository

import (
	"fmt"

	"lansdowne360/models"

	"gorm.io/gorm"
)

// RoomRepository defines the interface for room content access.
type RoomRepository interface {
	Create(room *models.Room) error
	GetByID(id string) (*models.Room, error)
	List() ([]models.Room, error)
	Update(room *models.Room) error
	Delete(id string) error
}

// GormRoomRepo implements RoomRepository using GORM.
type GormRoomRepo struct {
	db *gorm.DB
}

// NewGormRoomRepo creates a new room repository.
func NewGormRoomRepo(db *gorm.DB) RoomRepository {
	return &GormRoomRepo{db: db}
}

func (repo *GormRoomRepo) Create(room *models.Room) error {
	if err := repo.db.Create(room).Error; err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (repo *GormRoomRepo) GetByID(id string) (*models.Room, error) {
	var room models.Room
	if err := repo.db.First(&room, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch room with id %s: %w", id, err)
	}
	return &room, nil
}

func (repo *GormRoomRepo) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := repo.db.Order("name").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (repo *GormRoomRepo) Update(room *models.Room) error {
	result := repo.db.Model(&models.Room{}).Where("id = ?", room.ID).Updates(room)
	if result.Error != nil {
		return fmt.Errorf("failed to update room with id %s: %w", room.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("room with id %s not found", room.ID)
	}
	return nil
}

func (repo *GormRoomRepo) Delete(id string) error {
	result := repo.db.Delete(&models.Room{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room with id %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("room with id %s not found", id)
	}
	return nil
}
