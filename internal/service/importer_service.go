package service

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"warga-be-svc/internal/models"
	"warga-be-svc/internal/models/response"
	"warga-be-svc/internal/repository"
	"warga-be-svc/internal/validation"
	"warga-be-svc/pkg/logger"
)

// TemplateHeaders are the column headers of the import template, in order
var TemplateHeaders = []string{
	"Nama Lengkap",
	"Blok & No. Rumah",
	"No. WA",
	"Status Hunian",
	"Iuran Wajib Bulanan 10.000",
	"Iuran Acara",
	"Catatan",
}

// AliasTable holds the prioritized header aliases tried for each target
// field. Matching is case-sensitive and exact; the first alias present in the
// parsed header row wins. Precedence is deliberately explicit configuration,
// not hidden matching magic.
type AliasTable struct {
	FullName    []string
	BlockNumber []string
	Whatsapp    []string
	Status      []string
	MonthlyDues []string
	EventDues   []string
	Notes       []string
}

// DefaultAliases is the alias table used for imports
var DefaultAliases = AliasTable{
	FullName:    []string{"Nama Lengkap", "Nama", "Nama Warga"},
	BlockNumber: []string{"Blok & No. Rumah", "Blok", "No. Rumah"},
	Whatsapp:    []string{"No. WA", "No WA", "WhatsApp", "No. HP"},
	Status:      []string{"Status Hunian", "Status"},
	MonthlyDues: []string{"Iuran Wajib Bulanan 10.000", "Iuran Wajib", "Iuran Bulanan"},
	EventDues:   []string{"Iuran Acara", "Iuran Sukarela"},
	Notes:       []string{"Catatan", "Keterangan"},
}

// Fallbacks used when no alias for a field matches any header
const (
	defaultFullName    = "Tanpa Nama"
	defaultBlockNumber = "??"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ImporterService defines the interface for spreadsheet import operations
type ImporterService interface {
	ImportResidents(fileContent []byte) (*response.ImportResponse, error)
	BuildTemplate() ([]byte, string, error)
}

// importerService implements ImporterService
type importerService struct {
	residentRepo repository.ResidentRepository
	aliases      AliasTable
	monthlyDue   int64
	logger       *logger.Logger
}

// NewImporterService creates a new instance of ImporterService
func NewImporterService(residentRepo repository.ResidentRepository, monthlyDue int64, logger *logger.Logger) ImporterService {
	return &importerService{
		residentRepo: residentRepo,
		aliases:      DefaultAliases,
		monthlyDue:   monthlyDue,
		logger:       logger,
	}
}

// ImportResidents parses the uploaded workbook and inserts every mapped row
// in one transaction. The operation is atomic: an undecodable file or a store
// failure commits nothing.
func (s *importerService) ImportResidents(fileContent []byte) (*response.ImportResponse, error) {
	residents, err := ParseResidentWorkbook(fileContent, s.aliases, s.monthlyDue)
	if err != nil {
		s.logger.WithError(err).Error("Failed to parse import workbook")
		return nil, err
	}

	batchID := uuid.New().String()

	if err := s.residentRepo.BulkCreate(residents); err != nil {
		s.logger.WithError(err).WithField("batch_id", batchID).Error("Failed to insert imported residents")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"batch_id": batchID,
		"rows":     len(residents),
	}).Info("Residents imported successfully")

	return &response.ImportResponse{
		BatchID:      batchID,
		RowsImported: len(residents),
	}, nil
}

// ParseResidentWorkbook reads the first sheet of an xlsx file into resident
// records. The whole file is decoded before mapping begins; there is no
// streaming. IDs are left unset for the store to assign.
func ParseResidentWorkbook(fileContent []byte, aliases AliasTable, monthlyDue int64) ([]*models.Resident, error) {
	f, err := excelize.OpenReader(bytes.NewReader(fileContent))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	headerIndex := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		if _, exists := headerIndex[header]; !exists {
			headerIndex[header] = i
		}
	}

	nameCol := resolveColumn(headerIndex, aliases.FullName)
	blockCol := resolveColumn(headerIndex, aliases.BlockNumber)
	waCol := resolveColumn(headerIndex, aliases.Whatsapp)
	statusCol := resolveColumn(headerIndex, aliases.Status)
	monthlyCol := resolveColumn(headerIndex, aliases.MonthlyDues)
	eventCol := resolveColumn(headerIndex, aliases.EventDues)
	notesCol := resolveColumn(headerIndex, aliases.Notes)

	now := time.Now()
	var residents []*models.Resident
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		resident := &models.Resident{
			FullName:        validation.SanitizeText(cellOrDefault(row, nameCol, defaultFullName)),
			BlockNumber:     cellOrDefault(row, blockCol, defaultBlockNumber),
			Whatsapp:        cellOrDefault(row, waCol, ""),
			OccupancyStatus: ParseOccupancyStatus(cellOrDefault(row, statusCol, "")),
			MonthlyDuesPaid: ParseMonthlyDuesPaid(cellOrDefault(row, monthlyCol, ""), monthlyDue),
			EventDuesAmount: ParseEventDuesAmount(cellOrDefault(row, eventCol, "")),
			Notes:           validation.SanitizeText(cellOrDefault(row, notesCol, "")),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if resident.FullName == "" {
			resident.FullName = defaultFullName
		}
		residents = append(residents, resident)
	}

	return residents, nil
}

// ParseOccupancyStatus maps a raw status cell onto the closed enumeration by
// substring containment. First match wins; the order matters because a value
// like "Kontrak Kosong" must resolve as a rental, not as vacant.
func ParseOccupancyStatus(raw string) string {
	lowered := strings.ToLower(raw)
	switch {
	case strings.Contains(lowered, "sewa") || strings.Contains(lowered, "kontrak"):
		return models.StatusPenyewa
	case strings.Contains(lowered, "kunjung"):
		return models.StatusKunjungan
	case strings.Contains(lowered, "2026") || strings.Contains(lowered, "kosong"):
		return models.StatusDitempati2026
	default:
		return models.StatusMenetap
	}
}

// ParseMonthlyDuesPaid reports whether a raw dues cell means "paid": it
// contains a paid keyword, or it is the literal amount of the monthly due.
func ParseMonthlyDuesPaid(raw string, monthlyDue int64) bool {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(lowered, "sudah") || strings.Contains(lowered, "lunas") || strings.Contains(lowered, "ok") {
		return true
	}
	return lowered == strconv.FormatInt(monthlyDue, 10)
}

// ParseEventDuesAmount extracts an integer amount from a raw cell like
// "Rp 25.000". Empty or unparseable cells coerce to 0.
func ParseEventDuesAmount(raw string) int64 {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return 0
	}
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return amount
}

// BuildTemplate produces the single-sheet import template with one example row
func (s *importerService) BuildTemplate() ([]byte, string, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close template workbook")
		}
	}()

	sheetName := "Data Warga"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range TemplateHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "G1", headerStyle)
	}

	example := []interface{}{
		"Budi Santoso", "B3-12", "081234567890", models.StatusMenetap, "Sudah", 25000, "Pindahan baru",
	}
	for i, value := range example {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, value)
	}

	for i := 1; i <= len(TemplateHeaders); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 22)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102")
	filename := fmt.Sprintf("template_import_warga_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write template: %w", err)
	}

	return buffer.Bytes(), filename, nil
}

// resolveColumn returns the index of the first alias present in the header
// row, or -1 when none match.
func resolveColumn(headerIndex map[string]int, aliases []string) int {
	for _, alias := range aliases {
		if idx, ok := headerIndex[alias]; ok {
			return idx
		}
	}
	return -1
}

// cellOrDefault reads a cell by column index, falling back when the column
// was never resolved or the row is shorter than the header.
func cellOrDefault(row []string, col int, fallback string) string {
	if col < 0 || col >= len(row) {
		return fallback
	}
	value := strings.TrimSpace(row[col])
	if value == "" {
		return fallback
	}
	return value
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
