package repository

import (
	"fmt"

	"gorm.io/gorm"

	"warga-be-svc/internal/models"
)

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	List() ([]*models.Expense, error)
	Create(expense *models.Expense) error
	Delete(id uint) error
}

// expenseRepository implements ExpenseRepository
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new instance of ExpenseRepository
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// List retrieves all expenses ordered by date descending
func (r *expenseRepository) List() ([]*models.Expense, error) {
	var expenses []*models.Expense
	if err := r.db.Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// Create inserts a new expense
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// Delete removes an expense by id
func (r *expenseRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
