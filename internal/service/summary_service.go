package service

import (
	"warga-be-svc/internal/models"
	"warga-be-svc/internal/models/response"
	"warga-be-svc/internal/repository"
	"warga-be-svc/pkg/logger"
)

// SummaryService interface defines financial summary service methods
type SummaryService interface {
	GetFinancialSummary() (*response.FinancialSummaryResponse, error)
	GetOccupancyBreakdown() ([]response.BreakdownItem, error)
	GetPaymentBreakdown() ([]response.PaymentBreakdownRow, error)
}

// summaryService implements SummaryService interface
type summaryService struct {
	residentRepo repository.ResidentRepository
	expenseRepo  repository.ExpenseRepository
	monthlyDue   int64
	logger       *logger.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(residentRepo repository.ResidentRepository, expenseRepo repository.ExpenseRepository, monthlyDue int64, logger *logger.Logger) SummaryService {
	return &summaryService{
		residentRepo: residentRepo,
		expenseRepo:  expenseRepo,
		monthlyDue:   monthlyDue,
		logger:       logger,
	}
}

// GetFinancialSummary recomputes the summary from the current collections.
// Nothing is cached: every call reads fresh and derives fresh.
func (s *summaryService) GetFinancialSummary() (*response.FinancialSummaryResponse, error) {
	residents, err := s.residentRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list residents for summary")
		return nil, err
	}

	expenses, err := s.expenseRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list expenses for summary")
		return nil, err
	}

	summary := BuildFinancialSummary(residents, expenses, s.monthlyDue)

	s.logger.WithFields(map[string]interface{}{
		"total_residents": summary.TotalResidents,
		"balance":         summary.Balance,
	}).Info("Financial summary computed")

	return summary, nil
}

// GetOccupancyBreakdown returns per-status resident counts for charting
func (s *summaryService) GetOccupancyBreakdown() ([]response.BreakdownItem, error) {
	residents, err := s.residentRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list residents for occupancy breakdown")
		return nil, err
	}
	return OccupancyBreakdown(residents), nil
}

// GetPaymentBreakdown returns paid-vs-unpaid counts for both dues types
func (s *summaryService) GetPaymentBreakdown() ([]response.PaymentBreakdownRow, error) {
	residents, err := s.residentRepo.List()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list residents for payment breakdown")
		return nil, err
	}
	return PaymentBreakdown(residents), nil
}

// BuildFinancialSummary derives the summary figures from the given
// collections. Pure function: no I/O, deterministic for the same inputs.
func BuildFinancialSummary(residents []*models.Resident, expenses []*models.Expense, monthlyDue int64) *response.FinancialSummaryResponse {
	var paidCount int64
	var totalEventDues int64
	for _, r := range residents {
		if r.MonthlyDuesPaid {
			paidCount++
		}
		if r.EventDuesAmount > 0 {
			totalEventDues += r.EventDuesAmount
		}
	}

	var totalExpenses int64
	for _, e := range expenses {
		totalExpenses += e.Amount
	}

	totalMonthlyDues := paidCount * monthlyDue

	return &response.FinancialSummaryResponse{
		TotalResidents:   len(residents),
		TotalMonthlyDues: totalMonthlyDues,
		TotalEventDues:   totalEventDues,
		TotalExpenses:    totalExpenses,
		// Balance may be negative; no clamping.
		Balance: totalMonthlyDues + totalEventDues - totalExpenses,
	}
}

// OverflowBucket labels occupancy statuses outside the closed enumeration
const OverflowBucket = "Lainnya"

// OccupancyBreakdown counts residents per occupancy status. Statuses outside
// the closed enumeration land in the overflow bucket; zero-count entries are
// omitted so charts only show populated slices.
func OccupancyBreakdown(residents []*models.Resident) []response.BreakdownItem {
	counts := make(map[string]int, len(models.OccupancyStatuses)+1)
	for _, r := range residents {
		if models.IsKnownOccupancyStatus(r.OccupancyStatus) {
			counts[r.OccupancyStatus]++
		} else {
			counts[OverflowBucket]++
		}
	}

	items := make([]response.BreakdownItem, 0, len(counts))
	for _, status := range models.OccupancyStatuses {
		if counts[status] > 0 {
			items = append(items, response.BreakdownItem{Label: status, Count: counts[status]})
		}
	}
	if counts[OverflowBucket] > 0 {
		items = append(items, response.BreakdownItem{Label: OverflowBucket, Count: counts[OverflowBucket]})
	}

	return items
}

// PaymentBreakdown returns two rows: mandatory monthly dues paid vs unpaid,
// and voluntary event dues contributed vs not.
func PaymentBreakdown(residents []*models.Resident) []response.PaymentBreakdownRow {
	var monthlyPaid, eventPaid int
	for _, r := range residents {
		if r.MonthlyDuesPaid {
			monthlyPaid++
		}
		if r.EventDuesAmount > 0 {
			eventPaid++
		}
	}

	total := len(residents)
	return []response.PaymentBreakdownRow{
		{Label: "Iuran Wajib", Paid: monthlyPaid, Unpaid: total - monthlyPaid},
		{Label: "Iuran Acara", Paid: eventPaid, Unpaid: total - eventPaid},
	}
}
