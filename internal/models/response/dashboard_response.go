package response

// FinancialSummaryResponse represents the derived financial summary figures
type FinancialSummaryResponse struct {
	TotalResidents   int   `json:"total_residents" example:"42"`
	TotalMonthlyDues int64 `json:"total_monthly_dues" example:"250000"`
	TotalEventDues   int64 `json:"total_event_dues" example:"125000"`
	TotalExpenses    int64 `json:"total_expenses" example:"90000"`
	Balance          int64 `json:"balance" example:"285000"`
}

// BreakdownItem represents a single labeled count used for charting
type BreakdownItem struct {
	Label string `json:"label" example:"Menetap"`
	Count int    `json:"count" example:"18"`
}

// PaymentBreakdownRow represents paid-vs-unpaid counts for one dues type
type PaymentBreakdownRow struct {
	Label  string `json:"label" example:"Iuran Wajib"`
	Paid   int    `json:"paid" example:"30"`
	Unpaid int    `json:"unpaid" example:"12"`
}

// AnalysisResponse represents the AI-generated financial analysis text
type AnalysisResponse struct {
	Analysis  string `json:"analysis" example:"**Ringkasan Keuangan**\nSaldo kas saat ini surplus."`
	Generated bool   `json:"generated" example:"true"`
}
