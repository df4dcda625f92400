// Package importer reads panel lists from CSV, Excel and DXF files.
// CSV and Excel imports detect the delimiter and map columns by
// case-insensitive header names.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Panels   []model.Panel
	Errors   []string
	Warnings []string
}

// Options sets the defaults applied to imported panels.
type Options struct {
	// Unit is used for rows without a unit column and for DXF coordinates.
	Unit model.Unit
	// Paimaish, in Unit, is applied when the file has no paimaish column.
	// Rows in another unit get it converted.
	Paimaish float64
}

func (o Options) unit() model.Unit {
	if o.Unit.Valid() {
		return o.Unit
	}
	return model.UnitMM
}

// ColumnMapping maps column roles to their indices in the data. -1 means
// the column is absent.
type ColumnMapping struct {
	Label       int
	Width       int
	Height      int
	Quantity    int
	Unit        int
	GlassType   int
	Thickness   int
	Rate        int
	Ops         int
	Paimaish    int
	ExtraMargin int
	TaperWidth  int
	TaperHeight int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":        {"label", "name", "panel", "description", "desc", "piece", "item", "location"},
	"width":        {"width", "w", "length", "len"},
	"height":       {"height", "h"},
	"quantity":     {"quantity", "qty", "count", "pcs", "pieces", "nos"},
	"unit":         {"unit", "units", "uom"},
	"glass_type":   {"type", "glass", "glass type", "glass_type"},
	"thickness":    {"thickness", "thk", "mm thickness"},
	"rate":         {"rate", "price", "rate/sqft", "rate per sqft"},
	"ops":          {"ops", "fabrication", "operations", "work"},
	"paimaish":     {"paimaish", "allowance", "tolerance"},
	"extra_margin": {"extra", "extra margin", "extra_margin", "margin"},
	"taper_width":  {"taper width", "taper_width", "taper w"},
	"taper_height": {"taper height", "taper_height", "taper h"},
}

func (m *ColumnMapping) field(role string) *int {
	switch role {
	case "label":
		return &m.Label
	case "width":
		return &m.Width
	case "height":
		return &m.Height
	case "quantity":
		return &m.Quantity
	case "unit":
		return &m.Unit
	case "glass_type":
		return &m.GlassType
	case "thickness":
		return &m.Thickness
	case "rate":
		return &m.Rate
	case "ops":
		return &m.Ops
	case "paimaish":
		return &m.Paimaish
	case "extra_margin":
		return &m.ExtraMargin
	case "taper_width":
		return &m.TaperWidth
	case "taper_height":
		return &m.TaperHeight
	}
	return nil
}

func emptyMapping() ColumnMapping {
	return ColumnMapping{
		Label: -1, Width: -1, Height: -1, Quantity: -1, Unit: -1,
		GlassType: -1, Thickness: -1, Rate: -1, Ops: -1,
		Paimaish: -1, ExtraMargin: -1, TaperWidth: -1, TaperHeight: -1,
	}
}

// positionalMapping is used when the first row is not a header:
// Label, Width, Height, Quantity, Unit, Type, Thickness, Rate.
func positionalMapping() ColumnMapping {
	m := emptyMapping()
	m.Label, m.Width, m.Height, m.Quantity = 0, 1, 2, 3
	m.Unit, m.GlassType, m.Thickness, m.Rate = 4, 5, 6, 7
	return m
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or a default
// positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := emptyMapping()

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if f := mapping.field(role); f != nil && *f == -1 {
					*f = i
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping(), false
	}
	return mapping, true
}

// parseGlassType converts a glass type string to a model.GlassType.
func parseGlassType(s string) (model.GlassType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clear", "plain", "float":
		return model.GlassClear, true
	case "tinted", "tint":
		return model.GlassTinted, true
	case "tempered", "toughened", "toughen":
		return model.GlassTempered, true
	case "laminated", "lami":
		return model.GlassLaminated, true
	case "reflective":
		return model.GlassReflective, true
	case "patterned", "pattern", "figured":
		return model.GlassPatterned, true
	default:
		return model.GlassClear, false
	}
}

// parseOps splits an operation list such as "cut;drill" or "polish, cut".
// Unknown names are returned separately.
func parseOps(s string) ([]model.FabricationOp, []string) {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ';' || r == ',' || r == '|' || r == '+' || r == ' '
	})
	var ops []model.FabricationOp
	var unknown []string
	for _, f := range fields {
		op := model.FabricationOp(f)
		if op.Valid() {
			ops = append(ops, op)
		} else {
			unknown = append(unknown, f)
		}
	}
	return ops, unknown
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// optFloat parses an optional numeric cell. Empty cells yield def.
func optFloat(row []string, idx int, def float64) (float64, bool) {
	s := getCell(row, idx)
	if s == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// parseRow extracts a Panel from a row using the given column mapping.
// Returns the panel, any error message, and any warning messages.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, panelCount int, opts Options) (model.Panel, string, []string) {
	var warnings []string

	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Panel %d", panelCount+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.Panel{}, fmt.Sprintf("%s: Missing width value", rowLabel), nil
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return model.Panel{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), nil
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return model.Panel{}, fmt.Sprintf("%s: Missing height value", rowLabel), nil
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil {
		return model.Panel{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), nil
	}

	qtyStr := getCell(row, mapping.Quantity)
	if qtyStr == "" {
		return model.Panel{}, fmt.Sprintf("%s: Missing quantity value", rowLabel), nil
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return model.Panel{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), nil
	}

	unit := opts.unit()
	if s := getCell(row, mapping.Unit); s != "" {
		unit, err = model.ParseUnit(s)
		if err != nil {
			return model.Panel{}, fmt.Sprintf("%s: Unknown unit '%s'", rowLabel, s), nil
		}
	}

	p := model.NewPanel(label, width, height, unit, qty)
	defPaimaish, err := model.Convert(opts.Paimaish, opts.unit(), unit)
	if err != nil {
		return model.Panel{}, fmt.Sprintf("%s: %v", rowLabel, err), nil
	}

	if s := getCell(row, mapping.GlassType); s != "" {
		gt, ok := parseGlassType(s)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown glass type '%s', defaulting to clear", rowLabel, s))
		}
		p.GlassType = gt
	}

	thickness, ok := optFloat(row, mapping.Thickness, 0)
	if !ok {
		return model.Panel{}, fmt.Sprintf("%s: Invalid thickness '%s'", rowLabel, getCell(row, mapping.Thickness)), nil
	}
	p.ThicknessMM = thickness

	if s := getCell(row, mapping.Rate); s != "" {
		rate, err := decimal.NewFromString(s)
		if err != nil {
			return model.Panel{}, fmt.Sprintf("%s: Invalid rate '%s'", rowLabel, s), nil
		}
		p.Rate = rate
	}

	if s := getCell(row, mapping.Ops); s != "" {
		ops, unknown := parseOps(s)
		for _, op := range ops {
			p.AddOp(op)
		}
		if len(unknown) > 0 {
			warnings = append(warnings, fmt.Sprintf("%s: Ignored unknown operations: %s", rowLabel, strings.Join(unknown, ", ")))
		}
	}

	if p.Paimaish, ok = optFloat(row, mapping.Paimaish, defPaimaish); !ok {
		return model.Panel{}, fmt.Sprintf("%s: Invalid paimaish '%s'", rowLabel, getCell(row, mapping.Paimaish)), nil
	}
	if p.ExtraMargin, ok = optFloat(row, mapping.ExtraMargin, 0); !ok {
		return model.Panel{}, fmt.Sprintf("%s: Invalid extra margin '%s'", rowLabel, getCell(row, mapping.ExtraMargin)), nil
	}

	tw, okW := optFloat(row, mapping.TaperWidth, 0)
	th, okH := optFloat(row, mapping.TaperHeight, 0)
	if !okW || !okH {
		return model.Panel{}, fmt.Sprintf("%s: Invalid taper size", rowLabel), nil
	}
	if tw != 0 || th != 0 {
		p.SetTaper(true, tw, th)
	}

	if err := p.Validate(); err != nil {
		return model.Panel{}, fmt.Sprintf("%s: %s", rowLabel, validationMessage(err)), nil
	}
	return p, "", warnings
}

// validationMessage drops the generated panel ID from a validation error.
func validationMessage(err error) string {
	var pe *model.PanelError
	if errors.As(err, &pe) {
		return fmt.Sprintf("%s: %v", pe.Field, pe.Err)
	}
	return err.Error()
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports panels from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, opts Options) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	res := ImportCSVFromReader(bytes.NewReader(data), delimiter, opts)
	res.Warnings = append(result.Warnings, res.Warnings...)
	return res
}

// ImportCSVFromReader imports panels from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, opts Options) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil, opts)
}

// ImportExcel imports panels from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string, opts Options) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil, opts)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into panels.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string, opts Options) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Quantity == -1 {
			missing = append(missing, "Quantity")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// An unrecognised header: skip it but keep the positional mapping.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		panel, errMsg, warnings := parseRow(row, mapping, rowLabel, len(result.Panels), opts)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Panels = append(result.Panels, panel)
	}

	return result
}
