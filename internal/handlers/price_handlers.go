package handlers

import (
	"net/http"
	"strings"

	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/services"
	"github.com/gin-gonic/gin"
)

// PriceHandler handles the price history endpoints
type PriceHandler struct {
	pricingSvc *services.PricingService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(pricingSvc *services.PricingService) *PriceHandler {
	return &PriceHandler{
		pricingSvc: pricingSvc,
	}
}

// ListTickers handles GET /tickers
// @Summary List tickers
// @Description Tickers that have a price history
// @Tags prices
// @Produce json
// @Success 200 {object} models.TickersResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /tickers [get]
func (h *PriceHandler) ListTickers(c *gin.Context) {
	tickers, err := h.pricingSvc.Tickers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	// Return empty array if no tickers
	if tickers == nil {
		tickers = []string{}
	}

	c.JSON(http.StatusOK, models.TickersResponse{Tickers: tickers})
}

// Trend handles GET /prices
// @Summary Compare price trends
// @Description One price column for several tickers over an optional date range
// @Tags prices
// @Produce json
// @Param tickers query string true "Comma separated tickers"
// @Param field query string false "Open, High, Low, Close or Adj Close" default(Close)
// @Param start_date query string false "Start date (YYYY-MM-DD), inclusive"
// @Param end_date query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} models.PriceTrendResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /prices [get]
func (h *PriceHandler) Trend(c *gin.Context) {
	var req models.PriceTrendRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	var tickers []string
	for _, t := range strings.Split(req.Tickers, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tickers = append(tickers, t)
		}
	}
	if len(tickers) == 0 {
		badRequest(c, "tickers must list at least one ticker")
		return
	}

	start, err := optionalDate(req.StartDate)
	if err != nil {
		badRequest(c, "start_date must be in YYYY-MM-DD format")
		return
	}
	end, err := optionalDate(req.EndDate)
	if err != nil {
		badRequest(c, "end_date must be in YYYY-MM-DD format")
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	series, err := h.pricingSvc.Trend(ctx, tickers, req.Field, start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	field, _ := services.ResolvePriceField(req.Field)
	c.JSON(http.StatusOK, models.PriceTrendResponse{
		Field:    field,
		Series:   series,
		Warnings: wc.GetWarnings(),
	})
}

// Candlestick handles GET /candlestick/:ticker
// @Summary Candlestick data for one ticker
// @Description Prices within an inclusive date range, plus the same points on a numeric date axis (days since 1970-01-01)
// @Tags prices
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Param start_date query string false "Start date (YYYY-MM-DD), inclusive"
// @Param end_date query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} models.CandlestickResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /candlestick/{ticker} [get]
func (h *PriceHandler) Candlestick(c *gin.Context) {
	ticker := c.Param("ticker")

	var req models.CandlestickRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	start, err := optionalDate(req.StartDate)
	if err != nil {
		badRequest(c, "start_date must be in YYYY-MM-DD format")
		return
	}
	// A date-only end_date stays at midnight: the end day's point is dated midnight too.
	end, err := optionalDate(req.EndDate)
	if err != nil {
		badRequest(c, "end_date must be in YYYY-MM-DD format")
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	filtered, from, to, err := h.pricingSvc.Range(ctx, ticker, start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CandlestickResponse{
		Symbol:     filtered.Symbol,
		StartDate:  from.Format(models.DateFormat),
		EndDate:    to.Format(models.DateFormat),
		DataPoints: len(filtered.Points),
		Prices:     filtered.Points,
		Candles:    services.ToCandles(filtered.Points),
		Warnings:   wc.GetWarnings(),
	})
}
