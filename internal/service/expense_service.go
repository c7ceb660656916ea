package service

import (
	"warga-be-svc/internal/models"
	"warga-be-svc/internal/repository"
	"warga-be-svc/internal/validation"
	"warga-be-svc/pkg/logger"
)

// ExpenseService interface defines expense service methods
type ExpenseService interface {
	ListExpenses() ([]*models.Expense, error)
	CreateExpense(expense *models.Expense) (*models.Expense, error)
	DeleteExpense(id uint) error
}

// expenseService implements ExpenseService interface
type expenseService struct {
	expenseRepo repository.ExpenseRepository
	logger      *logger.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// ListExpenses retrieves all expenses ordered by date descending
func (s *expenseService) ListExpenses() ([]*models.Expense, error) {
	expenses, err := s.expenseRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list expenses")
		return nil, err
	}

	s.logger.WithField("count", len(expenses)).Info("Expenses retrieved successfully")
	return expenses, nil
}

// CreateExpense validates and stores a new expense
func (s *expenseService) CreateExpense(expense *models.Expense) (*models.Expense, error) {
	if result := validation.ValidateExpense(expense); !result.IsValid {
		s.logger.WithField("errors", result.Errors).Info("Expense rejected by validation")
		return nil, &ValidationError{Errors: result.Errors}
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		s.logger.WithError(err).WithField("description", expense.Description).Error("Failed to create expense")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"id":     expense.ID,
		"amount": expense.Amount,
	}).Info("Expense created successfully")

	return expense, nil
}

// DeleteExpense removes an expense by id
func (s *expenseService) DeleteExpense(id uint) error {
	if err := s.expenseRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to delete expense")
		return err
	}

	s.logger.WithField("id", id).Info("Expense deleted successfully")
	return nil
}
