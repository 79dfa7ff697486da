package handlers

import (
	"net/http"

	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/services"
	"github.com/epeers/holdings/internal/util"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles the holdings table endpoints
type ProfileHandler struct {
	profileSvc *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileSvc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileSvc: profileSvc,
	}
}

// ListCompanies handles GET /companies
// @Summary List companies
// @Description Complete company list, totals footer excluded
// @Tags holdings
// @Produce json
// @Success 200 {object} models.CompanyListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /companies [get]
func (h *ProfileHandler) ListCompanies(c *gin.Context) {
	list, err := h.profileSvc.CompanyList(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CompanyListResponse{
		Columns:   list.Columns,
		Count:     list.Len(),
		Companies: list.Records(),
	})
}

// ListProfiles handles GET /profiles
// @Summary List merged holdings
// @Description Company list joined with stock profiles on symbol, with numeric stake, price and value
// @Tags holdings
// @Produce json
// @Success 200 {object} models.ProfilesResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	ctx, wc := services.NewWarningContext(c.Request.Context())

	merged, err := h.profileSvc.Merged(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProfilesResponse{
		Count:    merged.Len(),
		Profiles: toProfileDTOs(merged.Rows),
		Warnings: wc.GetWarnings(),
	})
}

// Allocation handles GET /allocation
// @Summary Holdings per sector or industry
// @Description Number of holdings per distinct category value, with summed value and stake
// @Tags holdings
// @Produce json
// @Param category query string false "Sector or Industry" default(Sector)
// @Param sort query string false "none, count or name" default(none)
// @Success 200 {object} models.AllocationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /allocation [get]
func (h *ProfileHandler) Allocation(c *gin.Context) {
	var req models.AllocationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	groups, err := h.profileSvc.Allocation(ctx, req.Category, req.Sort)
	if err != nil {
		writeError(c, err)
		return
	}

	category, _ := services.ResolveCategory(req.Category)
	c.JSON(http.StatusOK, models.AllocationResponse{
		Category: category,
		Groups:   groups,
		Warnings: wc.GetWarnings(),
	})
}

// TopHoldings handles GET /top
// @Summary Largest holdings
// @Description Top N holdings by a numeric field, descending
// @Tags holdings
// @Produce json
// @Param field query string false "Value, Stake, Market Price or Num_Employees" default(Value)
// @Param n query int false "Number of holdings" default(10)
// @Success 200 {object} models.TopHoldingsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /top [get]
func (h *ProfileHandler) TopHoldings(c *gin.Context) {
	var req models.TopHoldingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	rows, err := h.profileSvc.TopHoldings(ctx, req.Field, req.N)
	if err != nil {
		writeError(c, err)
		return
	}

	field, _ := services.ResolveRankField(req.Field)
	c.JSON(http.StatusOK, models.TopHoldingsResponse{
		Field:    field,
		N:        req.N,
		Holdings: toProfileDTOs(rows),
		Warnings: wc.GetWarnings(),
	})
}

func toProfileDTOs(rows []models.MergedProfile) []models.ProfileDTO {
	out := make([]models.ProfileDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.ProfileDTO{
			MergedProfile:      r,
			StakeDisplay:       util.FormatPercent(r.Stake),
			MarketPriceDisplay: util.FormatUSD(r.MarketPrice),
			ValueDisplay:       util.FormatUSD(r.Value),
		})
	}
	return out
}
