package models

// Column names of the company list source (semicolon-delimited).
const (
	ColName         = "Name"
	ColSymbol       = "Symbol"
	ColNumEmployees = "Num_Employees"
)

// Column names of the stock profile source (comma-delimited).
const (
	ColStake       = "Stake"
	ColMarketPrice = "Market Price"
	ColValue       = "Value"
	ColSector      = "Sector"
	ColIndustry    = "Industry"
)

// CompanyRecord is one row of the company list, keyed by Name.
// Fields holds every column of the row as read, including Name and Symbol.
type CompanyRecord struct {
	Name         string            `json:"name"`
	Symbol       string            `json:"symbol"`
	NumEmployees int64             `json:"num_employees"`
	Fields       map[string]string `json:"fields"`
}

// CompanyList is the company list table indexed by Name, in file order.
type CompanyList struct {
	Columns []string
	keys    []string
	rows    map[string]CompanyRecord
}

// NewCompanyList creates an empty table with the given header columns
func NewCompanyList(columns []string) *CompanyList {
	return &CompanyList{
		Columns: columns,
		rows:    make(map[string]CompanyRecord),
	}
}

// Put stores a record under its Name. A duplicate Name overwrites the earlier
// record but keeps the position of the first occurrence.
func (l *CompanyList) Put(rec CompanyRecord) {
	if _, exists := l.rows[rec.Name]; !exists {
		l.keys = append(l.keys, rec.Name)
	}
	l.rows[rec.Name] = rec
}

// Get returns the record for a company name
func (l *CompanyList) Get(name string) (CompanyRecord, bool) {
	rec, ok := l.rows[name]
	return rec, ok
}

// Len returns the number of distinct companies
func (l *CompanyList) Len() int { return len(l.keys) }

// Records returns the records in table order
func (l *CompanyList) Records() []CompanyRecord {
	out := make([]CompanyRecord, 0, len(l.keys))
	for _, k := range l.keys {
		out = append(out, l.rows[k])
	}
	return out
}

// StockProfile is one row of the stock profile table, keyed by Symbol.
// Stake, MarketPrice and Value are kept as the raw source strings.
type StockProfile struct {
	Symbol      string `json:"symbol"`
	Stake       string `json:"stake"`
	MarketPrice string `json:"market_price"`
	Value       string `json:"value"`
	Sector      string `json:"sector"`
	Industry    string `json:"industry"`
}

// StockProfiles is the stock profile table indexed by Symbol, in file order.
type StockProfiles struct {
	keys []string
	rows map[string]StockProfile
}

// NewStockProfiles creates an empty profile table
func NewStockProfiles() *StockProfiles {
	return &StockProfiles{rows: make(map[string]StockProfile)}
}

// Put stores a profile under its Symbol, last write wins.
func (p *StockProfiles) Put(sp StockProfile) {
	if _, exists := p.rows[sp.Symbol]; !exists {
		p.keys = append(p.keys, sp.Symbol)
	}
	p.rows[sp.Symbol] = sp
}

// Get returns the profile for a symbol
func (p *StockProfiles) Get(symbol string) (StockProfile, bool) {
	sp, ok := p.rows[symbol]
	return sp, ok
}

// Len returns the number of distinct symbols
func (p *StockProfiles) Len() int { return len(p.keys) }

// Profiles returns the profiles in table order
func (p *StockProfiles) Profiles() []StockProfile {
	out := make([]StockProfile, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, p.rows[k])
	}
	return out
}

// MergedProfile is a company joined with its stock profile on Symbol, keyed by
// Name. Stake is a signed fraction (0.05 for "5%"), MarketPrice and Value are
// plain dollar amounts.
type MergedProfile struct {
	Name         string            `json:"name"`
	Symbol       string            `json:"symbol"`
	NumEmployees int64             `json:"num_employees"`
	Stake        float64           `json:"stake"`
	MarketPrice  float64           `json:"market_price"`
	Value        float64           `json:"value"`
	Sector       string            `json:"sector"`
	Industry     string            `json:"industry"`
	Fields       map[string]string `json:"fields,omitempty"`
}

// MergedProfiles is the merged table in company list order.
type MergedProfiles struct {
	Rows  []MergedProfile
	index map[string]int
}

// NewMergedProfiles builds the table from rows already in order.
// Rows are indexed by Name; a later duplicate Name replaces the earlier row in place.
func NewMergedProfiles(rows []MergedProfile) *MergedProfiles {
	m := &MergedProfiles{index: make(map[string]int, len(rows))}
	for _, r := range rows {
		if i, ok := m.index[r.Name]; ok {
			m.Rows[i] = r
			continue
		}
		m.index[r.Name] = len(m.Rows)
		m.Rows = append(m.Rows, r)
	}
	return m
}

// Get returns the merged row for a company name
func (m *MergedProfiles) Get(name string) (MergedProfile, bool) {
	i, ok := m.index[name]
	if !ok {
		return MergedProfile{}, false
	}
	return m.Rows[i], true
}

// BySymbol returns the merged row for a ticker symbol
func (m *MergedProfiles) BySymbol(symbol string) (MergedProfile, bool) {
	for _, r := range m.Rows {
		if r.Symbol == symbol {
			return r, true
		}
	}
	return MergedProfile{}, false
}

// Len returns the number of merged rows
func (m *MergedProfiles) Len() int { return len(m.Rows) }

// SectorGroup is one (category value, holding count) pair of an aggregation.
type SectorGroup struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
	TotalStake float64 `json:"total_stake"`
}
