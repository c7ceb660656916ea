package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"warga-be-svc/internal/models"
)

// MaxExpenseAmount is the upper bound accepted for a single expense
const MaxExpenseAmount int64 = 1_000_000_000

var (
	// blockNumberPattern matches unit codes like "A1", "B3-12" or "C2/5":
	// letters, then digits, optionally a / or - separator and more digits.
	blockNumberPattern = regexp.MustCompile(`^[A-Za-z]+[0-9]+([/-][0-9]+)?$`)

	// phonePattern matches Indonesian phone numbers with an optional
	// +62 / 62 / 0 prefix followed by 9-13 digits.
	phonePattern = regexp.MustCompile(`^(\+62|62|0)?[0-9]{9,13}$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "\t", "")
)

// Result carries the outcome of a validation pass. Errors keeps the order in
// which rules were evaluated so the caller can render them as-is.
type Result struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

func (r *Result) addError(msg string) {
	r.IsValid = false
	r.Errors = append(r.Errors, msg)
}

// ValidateResident checks a candidate resident payload. It never panics and
// always returns a result; store-side failures are a separate concern.
func ValidateResident(resident *models.Resident) Result {
	result := Result{IsValid: true}

	if len(strings.TrimSpace(resident.FullName)) < 2 {
		result.addError("Nama lengkap minimal 2 karakter")
	}

	if !blockNumberPattern.MatchString(resident.BlockNumber) {
		result.addError("Blok & nomor rumah harus berformat huruf diikuti angka, misalnya A1 atau B3-12")
	}

	if resident.Whatsapp != "" {
		normalized := phoneSeparators.Replace(resident.Whatsapp)
		if !phonePattern.MatchString(normalized) {
			result.addError("Nomor WhatsApp tidak valid, gunakan format 08xx / +62xx")
		}
	}

	return result
}

// ValidateExpense checks a candidate expense payload
func ValidateExpense(expense *models.Expense) Result {
	result := Result{IsValid: true}

	if len(strings.TrimSpace(expense.Description)) < 3 {
		result.addError("Deskripsi pengeluaran minimal 3 karakter")
	}

	if expense.Amount < 0 || expense.Amount > MaxExpenseAmount {
		result.addError(fmt.Sprintf("Nominal harus antara 0 dan %d", MaxExpenseAmount))
	}

	if strings.TrimSpace(expense.Category) == "" {
		result.addError("Kategori wajib diisi")
	} else if !models.IsKnownExpenseCategory(expense.Category) {
		result.addError("Kategori harus salah satu dari: " + strings.Join(models.ExpenseCategories, ", "))
	}

	if expense.Date.IsZero() {
		result.addError("Tanggal wajib diisi")
	} else if expense.Date.After(time.Now()) {
		result.addError("Tanggal tidak boleh di masa depan")
	}

	return result
}
