package cache

import (
	"sync"
	"time"

	"github.com/epeers/holdings/internal/models"
)

// MemoryCache holds parsed source tables and price series in memory.
// Entries are stored under a key (file path or ticker) together with the
// identity of the source they were parsed from; a lookup with a different
// identity misses, so a rewritten source is never served stale.
// Cached values are shared between requests and must not be mutated.
type MemoryCache struct {
	series    map[string]seriesEntry
	companies map[string]companyEntry
	profiles  map[string]profileEntry
	seriesMu  sync.RWMutex
	tableMu   sync.RWMutex
	clearedAt time.Time
}

type seriesEntry struct {
	identity string
	data     *models.PriceSeries
}

type companyEntry struct {
	identity string
	data     *models.CompanyList
}

type profileEntry struct {
	identity string
	data     *models.StockProfiles
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		series:    make(map[string]seriesEntry),
		companies: make(map[string]companyEntry),
		profiles:  make(map[string]profileEntry),
	}
}

// GetSeries retrieves a cached series if it was loaded from the same source identity
func (c *MemoryCache) GetSeries(ticker, identity string) (*models.PriceSeries, bool) {
	c.seriesMu.RLock()
	defer c.seriesMu.RUnlock()

	entry, exists := c.series[ticker]
	if !exists || entry.identity != identity {
		return nil, false
	}
	return entry.data, true
}

// SetSeries caches a series, replacing any entry of an older identity
func (c *MemoryCache) SetSeries(ticker, identity string, data *models.PriceSeries) {
	c.seriesMu.Lock()
	defer c.seriesMu.Unlock()

	c.series[ticker] = seriesEntry{identity: identity, data: data}
}

// InvalidateSeries removes a ticker's series from the cache
func (c *MemoryCache) InvalidateSeries(ticker string) {
	c.seriesMu.Lock()
	defer c.seriesMu.Unlock()

	delete(c.series, ticker)
}

// GetCompanyList retrieves a cached company list
func (c *MemoryCache) GetCompanyList(path, identity string) (*models.CompanyList, bool) {
	c.tableMu.RLock()
	defer c.tableMu.RUnlock()

	entry, exists := c.companies[path]
	if !exists || entry.identity != identity {
		return nil, false
	}
	return entry.data, true
}

// SetCompanyList caches a company list
func (c *MemoryCache) SetCompanyList(path, identity string, data *models.CompanyList) {
	c.tableMu.Lock()
	defer c.tableMu.Unlock()

	c.companies[path] = companyEntry{identity: identity, data: data}
}

// GetStockProfiles retrieves a cached stock profile table
func (c *MemoryCache) GetStockProfiles(path, identity string) (*models.StockProfiles, bool) {
	c.tableMu.RLock()
	defer c.tableMu.RUnlock()

	entry, exists := c.profiles[path]
	if !exists || entry.identity != identity {
		return nil, false
	}
	return entry.data, true
}

// SetStockProfiles caches a stock profile table
func (c *MemoryCache) SetStockProfiles(path, identity string, data *models.StockProfiles) {
	c.tableMu.Lock()
	defer c.tableMu.Unlock()

	c.profiles[path] = profileEntry{identity: identity, data: data}
}

// Stats reports how many entries the cache holds
func (c *MemoryCache) Stats() models.CacheStats {
	c.seriesMu.RLock()
	n := len(c.series)
	cleared := c.clearedAt
	c.seriesMu.RUnlock()

	c.tableMu.RLock()
	t := len(c.companies) + len(c.profiles)
	c.tableMu.RUnlock()

	return models.CacheStats{Series: n, Tables: t, ClearedAt: cleared}
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.seriesMu.Lock()
	c.series = make(map[string]seriesEntry)
	c.clearedAt = time.Now()
	c.seriesMu.Unlock()

	c.tableMu.Lock()
	c.companies = make(map[string]companyEntry)
	c.profiles = make(map[string]profileEntry)
	c.tableMu.Unlock()
}
