package service

import (
	"time"

	"warga-be-svc/internal/models"
	"warga-be-svc/pkg/logger"
)

// fakeResidentRepo is an in-memory ResidentRepository for service tests
type fakeResidentRepo struct {
	residents []*models.Resident
	bulk      []*models.Resident
	listErr   error
	bulkErr   error
}

func (f *fakeResidentRepo) List() ([]*models.Resident, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.residents, nil
}

func (f *fakeResidentRepo) Create(resident *models.Resident) error {
	f.residents = append(f.residents, resident)
	return nil
}

func (f *fakeResidentRepo) Replace(resident *models.Resident, expectedUpdatedAt time.Time) error {
	return nil
}

func (f *fakeResidentRepo) Delete(id uint) error {
	return nil
}

func (f *fakeResidentRepo) BulkCreate(residents []*models.Resident) error {
	if f.bulkErr != nil {
		return f.bulkErr
	}
	f.bulk = append(f.bulk, residents...)
	return nil
}

// fakeExpenseRepo is an in-memory ExpenseRepository for service tests
type fakeExpenseRepo struct {
	expenses []*models.Expense
	listErr  error
}

func (f *fakeExpenseRepo) List() ([]*models.Expense, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.expenses, nil
}

func (f *fakeExpenseRepo) Create(expense *models.Expense) error {
	f.expenses = append(f.expenses, expense)
	return nil
}

func (f *fakeExpenseRepo) Delete(id uint) error {
	return nil
}

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}
