package tests

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/repository"
)

const companyListCSV = `Name;Symbol;Num_Employees;Headquarters
Apple Inc.;AAPL;154,000;Cupertino
Bank of America;BAC;213000;Charlotte
Coca-Cola;KO;79100;Atlanta
Total;;446100;
`

const stockProfileCSV = `Symbol,Stake,Market Price,Value,Sector,Industry
AAPL,42.8%,"$137.09","$121,084,096,000.00",Technology,Consumer Electronics
BAC,11.5%,"$30.31","$31,538,558,000.00",Financial Services,Banks
KO,8.9%,"$56.45","$22,580,000,000.00",Consumer Defensive,Beverages
`

func TestParseCompanyListCSV_DropsFooter(t *testing.T) {
	list, err := repository.ParseCompanyListCSV(strings.NewReader(companyListCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Len() != 3 {
		t.Fatalf("expected 3 companies, got %d", list.Len())
	}
	if _, ok := list.Get("Total"); ok {
		t.Error("footer row should not be loaded")
	}

	apple, ok := list.Get("Apple Inc.")
	if !ok {
		t.Fatal("expected Apple Inc. to be loaded")
	}
	if apple.Symbol != "AAPL" || apple.NumEmployees != 154000 {
		t.Errorf("unexpected record: %+v", apple)
	}
	if apple.Fields["Headquarters"] != "Cupertino" {
		t.Errorf("expected pass-through field, got %q", apple.Fields["Headquarters"])
	}
	if got := strings.Join(list.Columns, "|"); got != "Name|Symbol|Num_Employees|Headquarters" {
		t.Errorf("unexpected columns: %s", got)
	}
}

func TestParseCompanyListCSV_LastRowDroppedRegardlessOfContent(t *testing.T) {
	// The last row looks like a normal company; it is still dropped.
	csv := "Name;Symbol\nA;SYM1\nB;SYM2\nC;SYM3\n"
	list, err := repository.ParseCompanyListCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("expected 2 companies, got %d", list.Len())
	}
	if _, ok := list.Get("C"); ok {
		t.Error("expected last row C to be dropped")
	}
}

func TestParseCompanyListCSV_FooterNotParsed(t *testing.T) {
	// A malformed footer must not fail the load since it is never parsed.
	csv := "Name;Symbol;Num_Employees\nA;SYM1;10\nTOTAL;;not-a-number\n"
	list, err := repository.ParseCompanyListCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Len() != 1 {
		t.Fatalf("expected 1 company, got %d", list.Len())
	}
}

func TestParseCompanyListCSV_HeaderOnlyAndFooterOnly(t *testing.T) {
	for _, csv := range []string{"Name;Symbol\n", "Name;Symbol\nTOTAL;\n"} {
		list, err := repository.ParseCompanyListCSV(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Len() != 0 {
			t.Errorf("expected 0 companies, got %d", list.Len())
		}
	}
}

func TestParseCompanyListCSV_DuplicateNameLastWriteWins(t *testing.T) {
	csv := "Name;Symbol\nA;OLD\nB;SYM2\nA;NEW\nFOOTER;\n"
	list, err := repository.ParseCompanyListCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("expected 2 companies, got %d", list.Len())
	}
	a, _ := list.Get("A")
	if a.Symbol != "NEW" {
		t.Errorf("expected last write to win, got symbol %q", a.Symbol)
	}
	records := list.Records()
	if records[0].Name != "A" || records[1].Name != "B" {
		t.Errorf("expected A to keep its first position, got %s, %s", records[0].Name, records[1].Name)
	}
}

func TestParseCompanyListCSV_MissingColumn(t *testing.T) {
	_, err := repository.ParseCompanyListCSV(strings.NewReader("Name;Ticker\nA;SYM1\nF;\n"))
	var fe *models.FileFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FileFormatError, got %v", err)
	}
	if !strings.Contains(err.Error(), "Symbol") {
		t.Errorf("expected error to mention missing column, got: %s", err.Error())
	}
}

func TestParseCompanyListCSV_CommaIsNotDelimiter(t *testing.T) {
	_, err := repository.ParseCompanyListCSV(strings.NewReader("Name,Symbol\nA,SYM1\nF,\n"))
	if err == nil {
		t.Fatal("expected error for comma-delimited company list")
	}
}

func TestParseCompanyListCSV_InvalidEmployees(t *testing.T) {
	csv := "Name;Symbol;Num_Employees\nA;SYM1;many\nF;;\n"
	_, err := repository.ParseCompanyListCSV(strings.NewReader(csv))
	var pe *models.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("expected error to mention row number, got: %s", err.Error())
	}
}

func TestParseCompanyListCSV_ByteOrderMark(t *testing.T) {
	csv := "\ufeffName;Symbol\nA;SYM1\nF;\n"
	list, err := repository.ParseCompanyListCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Len() != 1 {
		t.Fatalf("expected 1 company, got %d", list.Len())
	}
}

func TestParseStockProfileCSV_HappyPath(t *testing.T) {
	profiles, err := repository.ParseStockProfileCSV(strings.NewReader(stockProfileCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profiles.Len() != 3 {
		t.Fatalf("expected 3 profiles, got %d", profiles.Len())
	}
	aapl, ok := profiles.Get("AAPL")
	if !ok {
		t.Fatal("expected AAPL profile")
	}
	if aapl.Stake != "42.8%" || aapl.MarketPrice != "$137.09" || aapl.Value != "$121,084,096,000.00" {
		t.Errorf("expected raw strings, got %+v", aapl)
	}
	if aapl.Sector != "Technology" || aapl.Industry != "Consumer Electronics" {
		t.Errorf("unexpected sector/industry: %+v", aapl)
	}
}

func TestParseStockProfileCSV_KeepsLastRow(t *testing.T) {
	csv := "Symbol,Stake,Market Price,Value,Sector,Industry\nSYM1,5%,$1.00,$100.00,Tech,Software\n"
	profiles, err := repository.ParseStockProfileCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profiles.Len() != 1 {
		t.Fatalf("expected the only row to be kept, got %d", profiles.Len())
	}
}

func TestParseStockProfileCSV_DuplicateSymbolLastWriteWins(t *testing.T) {
	csv := "Symbol,Stake,Market Price,Value,Sector,Industry\nSYM1,5%,$1.00,$100.00,Tech,Software\nSYM1,6%,$2.00,$200.00,Tech,Software\n"
	profiles, err := repository.ParseStockProfileCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profiles.Len() != 1 {
		t.Fatalf("expected 1 profile, got %d", profiles.Len())
	}
	sp, _ := profiles.Get("SYM1")
	if sp.Stake != "6%" {
		t.Errorf("expected last write to win, got %q", sp.Stake)
	}
}

func TestParseStockProfileCSV_MissingColumn(t *testing.T) {
	csv := "Symbol,Stake,Value,Sector,Industry\nSYM1,5%,$100.00,Tech,Software\n"
	_, err := repository.ParseStockProfileCSV(strings.NewReader(csv))
	var fe *models.FileFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FileFormatError, got %v", err)
	}
	if !strings.Contains(err.Error(), "Market Price") {
		t.Errorf("expected error to mention Market Price, got: %s", err.Error())
	}
}

func TestParseStockProfileCSV_EmptySymbol(t *testing.T) {
	csv := "Symbol,Stake,Market Price,Value,Sector,Industry\nSYM1,5%,$1.00,$100.00,Tech,Software\n,5%,$1.00,$100.00,Tech,Software\n"
	_, err := repository.ParseStockProfileCSV(strings.NewReader(csv))
	if err == nil {
		t.Fatal("expected error for empty symbol")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("expected error to mention row number, got: %s", err.Error())
	}
}

func TestParseStockProfileCSV_EmptyFile(t *testing.T) {
	_, err := repository.ParseStockProfileCSV(strings.NewReader(""))
	var fe *models.FileFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FileFormatError, got %v", err)
	}
}

const priceHistoryCSV = `Date,Open,High,Low,Close,Adj Close,Volume
2021-01-05,128.89,131.74,128.43,131.01,130.25,97664900
2021-01-04,133.52,133.61,126.76,129.41,128.66,143301900
2021-01-06,127.72,131.05,126.38,126.60,125.86,155088000
`

func TestParsePriceHistoryCSV_SortsByDate(t *testing.T) {
	series, err := repository.ParsePriceHistoryCSV(strings.NewReader(priceHistoryCSV), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %q", series.Symbol)
	}
	if len(series.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series.Points))
	}
	for i := 1; i < len(series.Points); i++ {
		if !series.Points[i-1].Date.Before(series.Points[i].Date) {
			t.Fatalf("points not in chronological order at %d", i)
		}
	}

	first := series.Points[0]
	if !first.Date.Equal(time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected first date 2021-01-04, got %s", first.Date)
	}
	if first.Open != 133.52 || first.High != 133.61 || first.Low != 126.76 || first.Close != 129.41 || first.AdjClose != 128.66 {
		t.Errorf("unexpected first point: %+v", first)
	}
	if first.Volume != 143301900 {
		t.Errorf("expected volume 143301900, got %d", first.Volume)
	}
}

func TestParsePriceHistoryCSV_VolumeOptional(t *testing.T) {
	csv := "Date,Open,High,Low,Close,Adj Close\n2021-01-04,1,2,0.5,1.5,1.4\n"
	series, err := repository.ParsePriceHistoryCSV(strings.NewReader(csv), "X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Points) != 1 || series.Points[0].Volume != 0 {
		t.Errorf("unexpected series: %+v", series.Points)
	}
}

func TestParsePriceHistoryCSV_ExactColumnNames(t *testing.T) {
	csv := "Date,Open,High,Low,Close,AdjClose\n2021-01-04,1,2,0.5,1.5,1.4\n"
	_, err := repository.ParsePriceHistoryCSV(strings.NewReader(csv), "X")
	var fe *models.FileFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FileFormatError, got %v", err)
	}
	if !strings.Contains(err.Error(), "Adj Close") {
		t.Errorf("expected error to mention Adj Close, got: %s", err.Error())
	}
}

func TestParsePriceHistoryCSV_BadValues(t *testing.T) {
	testCases := []struct {
		name   string
		row    string
		column string
	}{
		{"bad date", "04/01/2021,1,2,0.5,1.5,1.4", "Date"},
		{"bad number", "2021-01-04,1,two,0.5,1.5,1.4", "High"},
		{"null value", "2021-01-04,1,2,0.5,null,1.4", "Close"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			csv := "Date,Open,High,Low,Close,Adj Close\n2021-01-05,1,2,0.5,1.5,1.4\n" + tc.row + "\n"
			_, err := repository.ParsePriceHistoryCSV(strings.NewReader(csv), "X")
			var pe *models.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.Row != 3 || pe.Column != tc.column {
				t.Errorf("expected row 3 column %s, got row %d column %s", tc.column, pe.Row, pe.Column)
			}
		})
	}
}

func TestParseCompanyListCSV_ErrorReportsFileLine(t *testing.T) {
	// blank lines are skipped by the reader but still count as file lines
	csv := "Name;Symbol;Num_Employees\n\nA;SYM1;10\n\nB;SYM2;abc\nF;;\n"
	_, err := repository.ParseCompanyListCSV(strings.NewReader(csv))
	var pe *models.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Row != 5 {
		t.Errorf("expected row 5, got %d (%s)", pe.Row, err.Error())
	}
}

func TestParseStockProfileCSV_ErrorReportsFileLineAfterMultilineField(t *testing.T) {
	csv := "Symbol,Stake,Market Price,Value,Sector,Industry\n" +
		"SYM1,5%,$1.00,$100.00,Tech,\"Software\nand Services\"\n" +
		",5%,$1.00,$100.00,Tech,Software\n"
	_, err := repository.ParseStockProfileCSV(strings.NewReader(csv))
	var fe *models.FileFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FileFormatError, got %v", err)
	}
	if fe.Row != 4 {
		t.Errorf("expected row 4, got %d (%s)", fe.Row, err.Error())
	}
}

func TestParsePriceHistoryCSV_ErrorReportsFileLine(t *testing.T) {
	csv := "Date,Open,High,Low,Close,Adj Close\n2021-01-04,1,2,0.5,1.5,1.4\n\n\n2021-01-05,1,x,0.5,1.5,1.4\n"
	_, err := repository.ParsePriceHistoryCSV(strings.NewReader(csv), "X")
	var pe *models.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Row != 5 || pe.Column != models.ColHigh {
		t.Errorf("expected row 5 column High, got row %d column %s", pe.Row, pe.Column)
	}
}
