package response

// LoginResponse represents a successful login result
type LoginResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role" example:"admin"`
	ExpiresAt int64  `json:"expires_at" example:"1735689600"`
}

// ImportResponse represents the result of a bulk spreadsheet import
type ImportResponse struct {
	BatchID      string `json:"batch_id"`
	RowsImported int    `json:"rows_imported" example:"24"`
}
