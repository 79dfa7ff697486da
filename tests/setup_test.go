package tests

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/epeers/holdings/internal/cache"
	"github.com/epeers/holdings/internal/handlers"
	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/repository"
	"github.com/epeers/holdings/internal/services"
	"github.com/gin-gonic/gin"
)

// Company list fixture: A;SYM1, B;SYM2 and a totals footer.
const scenarioCompanyCSV = "Name;Symbol;Num_Employees\nA;SYM1;100\nB;SYM2;200\nFOOTER;;300\n"

// Stock profile fixture: SYM1 matches A, SYM3 has no company.
const scenarioProfileCSV = "Symbol,Stake,Market Price,Value,Sector,Industry\n" +
	"SYM1,5%,$10.00,$100.00,Technology,Software\n" +
	"SYM3,1%,$1.00,$1.00,Energy,Oil\n"

// writeFile writes content to dir/name and returns the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// newProfileService writes both holdings files to a temp dir and returns a
// service reading them.
func newProfileService(t *testing.T, companyCSV, profileCSV string, policy services.MergePolicy) (*services.ProfileService, string, string) {
	t.Helper()
	dir := t.TempDir()
	companyPath := writeFile(t, dir, "Company List.csv", companyCSV)
	profilePath := writeFile(t, dir, "Stock Profile.csv", profileCSV)
	svc := services.NewProfileService(cache.NewMemoryCache(), companyPath, profilePath, policy)
	return svc, companyPath, profilePath
}

// mergedFixture builds a merged table from rows without touching files.
func mergedFixture(rows ...models.MergedProfile) *models.MergedProfiles {
	return models.NewMergedProfiles(rows)
}

// priceCSV renders a price history file with one row per date; all prices
// of a row equal base plus the row index.
func priceCSV(base float64, dates ...string) string {
	out := "Date,Open,High,Low,Close,Adj Close,Volume\n"
	for i, d := range dates {
		v := base + float64(i)
		out += d + "," + ftoa(v) + "," + ftoa(v+1) + "," + ftoa(v-1) + "," + ftoa(v+0.5) + "," + ftoa(v+0.25) + ",1000\n"
	}
	return out
}

// newTestRouter wires the full API over temp files.
func newTestRouter(t *testing.T, companyCSV, profileCSV string, prices map[string]string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	companyPath := writeFile(t, dir, "Company List.csv", companyCSV)
	profilePath := writeFile(t, dir, "Stock Profile.csv", profileCSV)
	priceDir := filepath.Join(dir, "stocks")
	if err := os.MkdirAll(priceDir, 0o755); err != nil {
		t.Fatalf("failed to create price dir: %v", err)
	}
	for ticker, content := range prices {
		writeFile(t, priceDir, ticker+".csv", content)
	}

	memCache := cache.NewMemoryCache()
	profileSvc := services.NewProfileService(memCache, companyPath, profilePath, services.MergePolicyWarn)
	pricingSvc := services.NewPricingService(repository.NewFilePriceRepository(priceDir), memCache)

	router := gin.New()
	handlers.RegisterRoutes(router,
		handlers.NewProfileHandler(profileSvc),
		handlers.NewPriceHandler(pricingSvc),
		handlers.NewAdminHandler(memCache),
	)
	return router
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
