package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/epeers/holdings/internal/models"
)

// ErrTickerNotFound is returned when no price history exists for a ticker
var ErrTickerNotFound = errors.New("ticker not found")

// SourceIdentity identifies the current content of a file: path, modification
// time and size. A rewritten file gets a new identity.
func SourceIdentity(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size()), nil
}

// LoadCompanyList reads the company list file at path
func LoadCompanyList(path string) (*models.CompanyList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open company list: %w", err)
	}
	defer f.Close()

	list, err := ParseCompanyListCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// LoadStockProfiles reads the stock profile file at path
func LoadStockProfiles(path string) (*models.StockProfiles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stock profile: %w", err)
	}
	defer f.Close()

	profiles, err := ParseStockProfileCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return profiles, nil
}

// FilePriceRepository reads per-ticker price histories from a directory,
// one "<TICKER>.csv" file per ticker.
type FilePriceRepository struct {
	dir string
}

// NewFilePriceRepository creates a new FilePriceRepository
func NewFilePriceRepository(dir string) *FilePriceRepository {
	return &FilePriceRepository{dir: dir}
}

// Tickers lists the tickers that have a history file, sorted
func (r *FilePriceRepository) Tickers(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list price directory: %w", err)
	}

	var tickers []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		tickers = append(tickers, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(tickers)
	return tickers, nil
}

func (r *FilePriceRepository) path(ticker string) (string, error) {
	// ticker becomes a file name; reject anything that could leave the directory
	if ticker == "" || strings.ContainsAny(ticker, `/\`) || strings.Contains(ticker, "..") {
		return "", ErrTickerNotFound
	}
	return filepath.Join(r.dir, ticker+".csv"), nil
}

// Identity returns the cache identity of a ticker's history file
func (r *FilePriceRepository) Identity(ctx context.Context, ticker string) (string, error) {
	p, err := r.path(ticker)
	if err != nil {
		return "", err
	}
	id, err := SourceIdentity(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrTickerNotFound
	}
	return id, err
}

// LoadSeries parses the history file of a ticker
func (r *FilePriceRepository) LoadSeries(ctx context.Context, ticker string) (*models.PriceSeries, error) {
	p, err := r.path(ticker)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrTickerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open price history: %w", err)
	}
	defer f.Close()

	series, err := ParsePriceHistoryCSV(f, ticker)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return series, nil
}
