package api

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bayouhomes/server/config"
	"bayouhomes/server/internal/database"
	"bayouhomes/server/internal/investment"
	"bayouhomes/server/internal/models"
	"bayouhomes/server/internal/valuation"
)

type Handler struct {
	store     *database.Store
	engine    *valuation.Engine
	estimator *investment.Estimator
	tables    *config.RateTables
	logger    *logrus.Logger
}

func NewHandler(store *database.Store, cfg *config.Config, tables *config.RateTables, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if tables == nil {
		tables = config.DefaultRateTables()
	}

	engine := valuation.NewEngine(store, store, valuation.Params{
		MaxComparables:          cfg.Valuation.MaxComparables,
		RegionalAvgPricePerSqft: cfg.Valuation.RegionalAvgPricePerSqft,
		RegionalDefaultValue:    cfg.Valuation.RegionalDefaultValue,
	}, logger)

	estimator := investment.NewEstimator(tables,
		cfg.Costs.HoustonPermitFloors, cfg.Costs.FlatPermitFloor, logger)

	return &Handler{
		store:     store,
		engine:    engine,
		estimator: estimator,
		tables:    tables,
		logger:    logger,
	}
}

// Valuate handles POST /api/valuation.
func (h *Handler) Valuate(c *gin.Context) {
	var req models.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse valuation request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.engine.Valuate(c.Request.Context(), req.Subject())
	if err != nil {
		h.logger.WithError(err).Error("Valuation failed")
		switch {
		case errors.Is(err, valuation.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, valuation.ErrDataUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute valuation"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ProjectInvestment handles POST /api/investment.
func (h *Handler) ProjectInvestment(c *gin.Context) {
	var req models.InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse investment request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	costs, costWarnings, err := h.estimator.EstimateCosts(
		req.LandValue, req.BuildingSqft, req.ProjectType, req.QualityTier)
	if err != nil {
		h.respondInvestmentError(c, err)
		return
	}

	roi, roiWarnings, err := investment.Project(
		h.tables, costs, req.ProjectedRevenue, req.DurationMonths, req.ProjectType)
	if err != nil {
		h.respondInvestmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.InvestmentResponse{
		Costs:    costs,
		ROI:      roi,
		Timeline: investment.PhaseSchedule(req.DurationMonths),
		Warnings: append(costWarnings, roiWarnings...),
	})
}

func (h *Handler) respondInvestmentError(c *gin.Context, err error) {
	h.logger.WithError(err).Error("Investment projection failed")
	if errors.Is(err, investment.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute projection"})
}

// UpsertListings handles POST /api/listings: a single-batch write into the
// listing store.
func (h *Handler) UpsertListings(c *gin.Context) {
	var listings []models.ComparableSale
	if err := c.ShouldBindJSON(&listings); err != nil {
		h.logger.WithError(err).Error("Failed to parse listings batch")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.store.UpsertListings(c.Request.Context(), listings); err != nil {
		h.logger.WithError(err).Error("Failed to upsert listings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store listings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"count":  len(listings),
	})
}

// Health handles GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
