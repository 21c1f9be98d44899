package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/transgraos/fretelog/internal/period"
	"github.com/transgraos/fretelog/internal/repository/mongodb"
	"github.com/transgraos/fretelog/internal/service/ledger"
)

// APIHandler exposes the derived freight views over HTTP.
type APIHandler struct {
	ledgerSvc *ledger.Service
	repo      mongodb.Repository
	logger    *zap.Logger
}

// NewAPIHandler constructs the HTTP handler adapter.
func NewAPIHandler(ledgerSvc *ledger.Service, repo mongodb.Repository, logger *zap.Logger) *APIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{ledgerSvc: ledgerSvc, repo: repo, logger: logger}
}

// ListFreights serves the filtered, paged freight listing.
func (h *APIHandler) ListFreights(c *gin.Context) {
	query := ledger.ListQuery{
		Search:      c.Query("busca"),
		Category:    c.Query("categoria"),
		Granularity: period.ParseGranularity(c.Query("granularidade")),
		Period:      c.Query("periodo"),
		Page:        queryInt(c, "pagina", 1),
		PageSize:    queryInt(c, "por_pagina", 20),
	}

	// Optional previous filtering state lets clients get the page-1 reset
	// on filter transitions without tracking it themselves.
	if raw, ok := c.GetQuery("filtro_anterior"); ok {
		was := raw == "true" || raw == "1"
		query.WasFiltering = &was
	}

	result, err := h.ledgerSvc.List(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("freight listing failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"erro": "falha ao consultar fretes"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AvailableFreights serves the freights eligible for a new payment batch.
func (h *APIHandler) AvailableFreights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fretes": h.ledgerSvc.Available()})
}

// Summary serves the aggregated totals of one period.
func (h *APIHandler) Summary(c *gin.Context) {
	granularity := period.ParseGranularity(c.Query("granularidade"))
	summary := h.ledgerSvc.Summary(granularity, c.Query("periodo"))
	c.JSON(http.StatusOK, summary)
}

// Costs serves the cost entries of the selected period.
func (h *APIHandler) Costs(c *gin.Context) {
	granularity := period.ParseGranularity(c.Query("granularidade"))
	c.JSON(http.StatusOK, gin.H{"custos": h.ledgerSvc.CostsInPeriod(granularity, c.Query("periodo"))})
}

// Periods serves the derived period keys and labels for a granularity.
func (h *APIHandler) Periods(c *gin.Context) {
	granularity := period.ParseGranularity(c.Query("granularidade"))
	c.JSON(http.StatusOK, gin.H{"periodos": h.ledgerSvc.Periods(granularity)})
}

// EligibleFarms serves the farms whose harvest is still open.
func (h *APIHandler) EligibleFarms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fazendas": h.ledgerSvc.EligibleFarms()})
}

// Refresh forces a snapshot refresh from the upstream API.
func (h *APIHandler) Refresh(c *gin.Context) {
	if err := h.ledgerSvc.Refresh(c.Request.Context()); err != nil {
		h.logger.Warn("refresh completed with errors", zap.Error(err))
		c.JSON(http.StatusPartialContent, gin.H{"aviso": "atualização parcial", "erro": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Closings serves the most recent persisted period closings.
func (h *APIHandler) Closings(c *gin.Context) {
	limit := int64(queryInt(c, "limite", 30))

	snapshots, err := h.repo.ListClosingSnapshots(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list closings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "falha ao consultar fechamentos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fechamentos": snapshots})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
