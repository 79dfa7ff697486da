package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/util"
)

// Source names used in FileFormatError diagnostics
const (
	SourceCompanyList  = "company list"
	SourceStockProfile = "stock profile"
	SourcePriceHistory = "price history"
)

// header maps trimmed column names to their index.
type header map[string]int

func readHeader(reader *csv.Reader, source string) ([]string, header, error) {
	cols, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, &models.FileFormatError{Source: source, Reason: "empty file, header row required"}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(header, len(cols))
	names := make([]string, len(cols))
	for i, col := range cols {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		names[i] = strings.TrimSpace(col)
		colIdx[names[i]] = i
	}
	return names, colIdx, nil
}

func (h header) require(source string, cols ...string) error {
	for _, col := range cols {
		if _, ok := h[col]; !ok {
			return &models.FileFormatError{Source: source, Reason: "missing required column: " + col}
		}
	}
	return nil
}

// cell returns the trimmed value of a column, or "" when the row is short.
func (h header) cell(record []string, col string) string {
	idx, ok := h[col]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// csvRow is one data row with the file line it starts on.
type csvRow struct {
	line   int
	fields []string
}

// readRecords reads all data rows after the header. Blank lines are skipped
// by encoding/csv, so line numbers come from the reader, not a row counter.
func readRecords(reader *csv.Reader) ([]csvRow, error) {
	var records []csvRow
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		line, _ := reader.FieldPos(0)
		records = append(records, csvRow{line: line, fields: fields})
	}
	return records, nil
}

// ParseCompanyListCSV parses the semicolon-delimited company list into a table
// indexed by Name.
// Required columns: Name, Symbol. Num_Employees is parsed as an integer when present.
// The last data row is a totals footer and is always dropped, whatever it contains.
// A duplicate Name overwrites the earlier row (last write wins).
func ParseCompanyListCSV(r io.Reader) (*models.CompanyList, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	columns, colIdx, err := readHeader(reader, SourceCompanyList)
	if err != nil {
		return nil, err
	}
	if err := colIdx.require(SourceCompanyList, models.ColName, models.ColSymbol); err != nil {
		return nil, err
	}

	records, err := readRecords(reader)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		records = records[:len(records)-1]
	}

	list := models.NewCompanyList(columns)
	for _, rec := range records {
		rowNum := rec.line
		record := rec.fields

		name := colIdx.cell(record, models.ColName)
		if name == "" {
			return nil, &models.FileFormatError{Source: SourceCompanyList, Row: rowNum, Reason: "Name is empty"}
		}

		fields := make(map[string]string, len(columns))
		for _, col := range columns {
			fields[col] = colIdx.cell(record, col)
		}

		var employees int64
		if raw := colIdx.cell(record, models.ColNumEmployees); raw != "" {
			employees, err = strconv.ParseInt(strings.ReplaceAll(raw, ",", ""), 10, 64)
			if err != nil {
				return nil, &models.ParseError{Kind: "integer", Input: raw, Row: rowNum, Column: models.ColNumEmployees}
			}
		}

		list.Put(models.CompanyRecord{
			Name:         name,
			Symbol:       colIdx.cell(record, models.ColSymbol),
			NumEmployees: employees,
			Fields:       fields,
		})
	}

	return list, nil
}

// ParseStockProfileCSV parses the comma-delimited stock profile into a table
// indexed by Symbol.
// Required columns: Symbol, Stake, Market Price, Value, Sector, Industry.
// Values stay raw strings; they are converted when merged.
func ParseStockProfileCSV(r io.Reader) (*models.StockProfiles, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	_, colIdx, err := readHeader(reader, SourceStockProfile)
	if err != nil {
		return nil, err
	}
	err = colIdx.require(SourceStockProfile,
		models.ColSymbol, models.ColStake, models.ColMarketPrice, models.ColValue, models.ColSector, models.ColIndustry)
	if err != nil {
		return nil, err
	}

	records, err := readRecords(reader)
	if err != nil {
		return nil, err
	}

	profiles := models.NewStockProfiles()
	for _, rec := range records {
		record := rec.fields
		symbol := colIdx.cell(record, models.ColSymbol)
		if symbol == "" {
			return nil, &models.FileFormatError{Source: SourceStockProfile, Row: rec.line, Reason: "Symbol is empty"}
		}

		profiles.Put(models.StockProfile{
			Symbol:      symbol,
			Stake:       colIdx.cell(record, models.ColStake),
			MarketPrice: colIdx.cell(record, models.ColMarketPrice),
			Value:       colIdx.cell(record, models.ColValue),
			Sector:      colIdx.cell(record, models.ColSector),
			Industry:    colIdx.cell(record, models.ColIndustry),
		})
	}

	return profiles, nil
}

// ParsePriceHistoryCSV parses one ticker's daily history.
// Required columns: Date, Open, High, Low, Close, Adj Close. Volume is optional.
// Dates are parsed to midnight UTC and the result is sorted by date.
func ParsePriceHistoryCSV(r io.Reader, symbol string) (*models.PriceSeries, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	_, colIdx, err := readHeader(reader, SourcePriceHistory)
	if err != nil {
		return nil, err
	}
	priceCols := []string{models.ColOpen, models.ColHigh, models.ColLow, models.ColClose, models.ColAdjClose}
	if err := colIdx.require(SourcePriceHistory, append([]string{models.ColDate}, priceCols...)...); err != nil {
		return nil, err
	}
	_, hasVolume := colIdx[models.ColVolume]

	records, err := readRecords(reader)
	if err != nil {
		return nil, err
	}

	series := &models.PriceSeries{Symbol: symbol, Points: make([]models.PricePoint, 0, len(records))}
	for _, rec := range records {
		rowNum := rec.line
		record := rec.fields

		dateStr := colIdx.cell(record, models.ColDate)
		date, err := models.ParseFlexibleDate(dateStr)
		if err != nil {
			return nil, &models.ParseError{Kind: "date", Input: dateStr, Row: rowNum, Column: models.ColDate}
		}

		var values [5]float64
		for i, col := range priceCols {
			raw := colIdx.cell(record, col)
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &models.ParseError{Kind: "number", Input: raw, Row: rowNum, Column: col}
			}
			values[i] = v
		}

		p := models.PricePoint{
			Date:     util.TruncateToDay(date),
			Open:     values[0],
			High:     values[1],
			Low:      values[2],
			Close:    values[3],
			AdjClose: values[4],
		}
		if raw := colIdx.cell(record, models.ColVolume); hasVolume && raw != "" {
			vol, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, &models.ParseError{Kind: "integer", Input: raw, Row: rowNum, Column: models.ColVolume}
			}
			p.Volume = vol
		}
		series.Points = append(series.Points, p)
	}

	sort.SliceStable(series.Points, func(i, j int) bool {
		return series.Points[i].Date.Before(series.Points[j].Date)
	})

	return series, nil
}
