package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"warga-be-svc/internal/models"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a replace-update loses an optimistic concurrency check
var ErrConflict = errors.New("record was modified by another writer")

// ResidentRepository defines the interface for resident data operations
type ResidentRepository interface {
	List() ([]*models.Resident, error)
	Create(resident *models.Resident) error
	Replace(resident *models.Resident, expectedUpdatedAt time.Time) error
	Delete(id uint) error
	BulkCreate(residents []*models.Resident) error
}

// residentRepository implements ResidentRepository
type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository creates a new instance of ResidentRepository
func NewResidentRepository(db *gorm.DB) ResidentRepository {
	return &residentRepository{
		db: db,
	}
}

// List retrieves all residents ordered by block number ascending
func (r *residentRepository) List() ([]*models.Resident, error) {
	var residents []*models.Resident
	if err := r.db.Order("block_number ASC").Find(&residents).Error; err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	return residents, nil
}

// Create inserts a new resident, stamping UpdatedAt
func (r *residentRepository) Create(resident *models.Resident) error {
	now := time.Now()
	resident.CreatedAt = now
	resident.UpdatedAt = now
	if err := r.db.Create(resident).Error; err != nil {
		return fmt.Errorf("failed to create resident: %w", err)
	}
	return nil
}

// Replace performs a full-record update guarded by the caller's last-seen
// UpdatedAt. Zero affected rows means either the record is gone or another
// writer got there first.
func (r *residentRepository) Replace(resident *models.Resident, expectedUpdatedAt time.Time) error {
	resident.UpdatedAt = time.Now()

	result := r.db.Model(&models.Resident{}).
		Where("id = ? AND updated_at = ?", resident.ID, expectedUpdatedAt).
		Select("full_name", "block_number", "whatsapp", "occupancy_status",
			"monthly_dues_paid", "event_dues_amount", "notes", "updated_at").
		Updates(resident)
	if result.Error != nil {
		return fmt.Errorf("failed to update resident: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Resident{}).Where("id = ?", resident.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check resident existence: %w", err)
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}

	return nil
}

// Delete removes a resident by id
func (r *residentRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Resident{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete resident: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkCreate inserts residents in batches inside a single transaction so the
// import is all-or-nothing.
func (r *residentRepository) BulkCreate(residents []*models.Resident) error {
	if len(residents) == 0 {
		return nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(residents, 100).Error; err != nil {
			return fmt.Errorf("failed to create residents: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}
