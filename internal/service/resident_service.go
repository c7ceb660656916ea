package service

import (
	"strings"
	"time"

	"warga-be-svc/internal/models"
	"warga-be-svc/internal/repository"
	"warga-be-svc/internal/validation"
	"warga-be-svc/pkg/logger"
)

// ValidationError carries the itemized messages from a rejected payload so
// handlers can render them next to the offending form.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// ResidentService interface defines resident service methods
type ResidentService interface {
	ListResidents() ([]*models.Resident, error)
	CreateResident(resident *models.Resident) (*models.Resident, error)
	UpdateResident(id uint, resident *models.Resident, expectedUpdatedAt time.Time) (*models.Resident, error)
	DeleteResident(id uint) error
}

// residentService implements ResidentService interface
type residentService struct {
	residentRepo repository.ResidentRepository
	logger       *logger.Logger
}

// NewResidentService creates a new resident service
func NewResidentService(residentRepo repository.ResidentRepository, logger *logger.Logger) ResidentService {
	return &residentService{
		residentRepo: residentRepo,
		logger:       logger,
	}
}

// ListResidents retrieves all residents ordered by block number
func (s *residentService) ListResidents() ([]*models.Resident, error) {
	residents, err := s.residentRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list residents")
		return nil, err
	}

	s.logger.WithField("count", len(residents)).Info("Residents retrieved successfully")
	return residents, nil
}

// CreateResident validates and stores a new resident
func (s *residentService) CreateResident(resident *models.Resident) (*models.Resident, error) {
	if result := validation.ValidateResident(resident); !result.IsValid {
		s.logger.WithField("errors", result.Errors).Info("Resident rejected by validation")
		return nil, &ValidationError{Errors: result.Errors}
	}

	if resident.OccupancyStatus == "" || !models.IsKnownOccupancyStatus(resident.OccupancyStatus) {
		resident.OccupancyStatus = models.StatusMenetap
	}
	if resident.EventDuesAmount < 0 {
		resident.EventDuesAmount = 0
	}

	if err := s.residentRepo.Create(resident); err != nil {
		s.logger.WithError(err).WithField("full_name", resident.FullName).Error("Failed to create resident")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"id":           resident.ID,
		"block_number": resident.BlockNumber,
	}).Info("Resident created successfully")

	return resident, nil
}

// UpdateResident validates and replaces an existing resident. The caller's
// last-seen updated_at guards against overwriting a concurrent edit; a stale
// value surfaces repository.ErrConflict so the caller refreshes.
func (s *residentService) UpdateResident(id uint, resident *models.Resident, expectedUpdatedAt time.Time) (*models.Resident, error) {
	if result := validation.ValidateResident(resident); !result.IsValid {
		s.logger.WithField("errors", result.Errors).Info("Resident update rejected by validation")
		return nil, &ValidationError{Errors: result.Errors}
	}

	resident.ID = id
	if resident.OccupancyStatus == "" || !models.IsKnownOccupancyStatus(resident.OccupancyStatus) {
		resident.OccupancyStatus = models.StatusMenetap
	}
	if resident.EventDuesAmount < 0 {
		resident.EventDuesAmount = 0
	}

	if err := s.residentRepo.Replace(resident, expectedUpdatedAt); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to update resident")
		return nil, err
	}

	s.logger.WithField("id", id).Info("Resident updated successfully")
	return resident, nil
}

// DeleteResident removes a resident by id
func (s *residentService) DeleteResident(id uint) error {
	if err := s.residentRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to delete resident")
		return err
	}

	s.logger.WithField("id", id).Info("Resident deleted successfully")
	return nil
}
