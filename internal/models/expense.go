package models

import (
	"time"
)

// Expense category values
const (
	CategoryOperasional = "Operasional"
	CategoryAcara       = "Acara"
	CategoryLainnya     = "Lainnya"
)

// ExpenseCategories lists the closed set of expense categories
var ExpenseCategories = []string{
	CategoryOperasional,
	CategoryAcara,
	CategoryLainnya,
}

// IsKnownExpenseCategory reports whether s is a member of the closed category set
func IsKnownExpenseCategory(s string) bool {
	for _, known := range ExpenseCategories {
		if s == known {
			return true
		}
	}
	return false
}

// Expense represents the expenses table
type Expense struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Description string    `json:"description" gorm:"column:description;not null"`
	Amount      int64     `json:"amount" gorm:"column:amount;not null"`
	Date        time.Time `json:"date" gorm:"column:date;not null"`
	Category    string    `json:"category" gorm:"column:category;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName sets the insert table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
