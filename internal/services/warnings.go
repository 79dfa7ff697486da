package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/epeers/holdings/internal/models"
)

type warningContextKey struct{}

// WarningCollector gathers the non-fatal issues of one request: symbols
// dropped from the merge, empty date ranges, untracked tickers.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []models.Warning
}

// NewWarningContext returns a context carrying a fresh WarningCollector and
// the collector itself, for the handler to read once the services return.
func NewWarningContext(ctx context.Context) (context.Context, *WarningCollector) {
	wc := &WarningCollector{}
	return context.WithValue(ctx, warningContextKey{}, wc), wc
}

// AddWarning records w on the collector in ctx, if there is one.
func AddWarning(ctx context.Context, w models.Warning) {
	wc, ok := ctx.Value(warningContextKey{}).(*WarningCollector)
	if !ok || wc == nil {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.warnings = append(wc.warnings, w)
}

// AddWarningf is AddWarning with a formatted message.
func AddWarningf(ctx context.Context, code models.WarningCode, format string, args ...interface{}) {
	AddWarning(ctx, models.Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// GetWarnings returns a copy of the collected warnings, in insertion order.
func (wc *WarningCollector) GetWarnings() []models.Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if len(wc.warnings) == 0 {
		return nil
	}
	out := make([]models.Warning, len(wc.warnings))
	copy(out, wc.warnings)
	return out
}

// HasCode reports whether a warning with code was collected.
func (wc *WarningCollector) HasCode(code models.WarningCode) bool {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	for _, w := range wc.warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
