// database/repository/reservation.go
package repository

import (
	"fmt"

	"lansdowne360/models"

	"gorm.io/gorm"
)

// ReservationRepository defines the interface for reservation ledger access.
type ReservationRepository interface {
	Create(res *models.Reservation) error
	GetByID(id string) (*models.Reservation, error)
	GetByConfirmation(confirmationNumber string) (*models.Reservation, error)
	List(limit, offset int) ([]models.Reservation, error)
	Update(res *models.Reservation) error
	UpdateStatusByConfirmation(confirmationNumber, status string) error
	Delete(id string) error
}

// GormReservationRepo implements ReservationRepository using GORM.
type GormReservationRepo struct {
	db *gorm.DB
}

// NewGormReservationRepo creates a new reservation repository.
func NewGormReservationRepo(db *gorm.DB) ReservationRepository {
	return &GormReservationRepo{db: db}
}

func (repo *GormReservationRepo) Create(res *models.Reservation) error {
	if err := repo.db.Create(res).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (repo *GormReservationRepo) GetByID(id string) (*models.Reservation, error) {
	var res models.Reservation
	if err := repo.db.First(&res, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reservation with id %s: %w", id, err)
	}
	return &res, nil
}

func (repo *GormReservationRepo) GetByConfirmation(confirmationNumber string) (*models.Reservation, error) {
	var res models.Reservation
	err := repo.db.First(&res, "confirmation_number = ?", confirmationNumber).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", confirmationNumber, err)
	}
	return &res, nil
}

func (repo *GormReservationRepo) List(limit, offset int) ([]models.Reservation, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []models.Reservation
	err := repo.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return out, nil
}

func (repo *GormReservationRepo) Update(res *models.Reservation) error {
	result := repo.db.Model(&models.Reservation{}).Where("id = ?", res.ID).Updates(res)
	if result.Error != nil {
		return fmt.Errorf("failed to update reservation with id %s: %w", res.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reservation with id %s not found", res.ID)
	}
	return nil
}

func (repo *GormReservationRepo) UpdateStatusByConfirmation(confirmationNumber, status string) error {
	result := repo.db.Model(&models.Reservation{}).
		Where("confirmation_number = ?", confirmationNumber).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update status for reservation %s: %w", confirmationNumber, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reservation %s not found", confirmationNumber)
	}
	return nil
}

func (repo *GormReservationRepo) Delete(id string) error {
	result := repo.db.Delete(&models.Reservation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reservation with id %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reservation with id %s not found", id)
	}
	return nil
}
