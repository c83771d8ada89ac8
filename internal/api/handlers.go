package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"seo_tracker/internal/domain"
)

const (
	defaultMetricsDays = 30

	msgURLAndNameRequired = "URL and name are required"
	msgWebsiteDeleted     = "Website deleted successfully"
	msgAuditCompleted     = "Audit completed successfully"
)

type WebsiteService interface {
	List(ctx context.Context) ([]domain.Website, error)
	Create(ctx context.Context, url, name string) (*domain.Website, error)
	Delete(ctx context.Context, id int64) error
	Metrics(ctx context.Context, id int64, days int) ([]domain.SEOMetric, error)
}

type AuditService interface {
	Run(ctx context.Context, websiteID int64) (*domain.AuditResult, error)
	History(ctx context.Context, websiteID int64) ([]domain.AuditResult, error)
}

type Handler struct {
	websites WebsiteService
	audits   AuditService
}

func NewHandler(websites WebsiteService, audits AuditService) *Handler {
	return &Handler{websites: websites, audits: audits}
}

type createWebsiteRequest struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

type metricResponse struct {
	Date        string  `json:"date"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	CTR         float64 `json:"ctr"`
	Position    float64 `json:"position"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type auditResponse struct {
	Message string             `json:"message"`
	Results domain.AuditScores `json:"results"`
}

func (h *Handler) ListWebsites(c *gin.Context) {
	websites, err := h.websites.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if websites == nil {
		websites = []domain.Website{}
	}
	c.JSON(http.StatusOK, websites)
}

func (h *Handler) CreateWebsite(c *gin.Context) {
	var req createWebsiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: msgURLAndNameRequired})
		return
	}

	website, err := h.websites.Create(c.Request.Context(), req.URL, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, website)
}

func (h *Handler) DeleteWebsite(c *gin.Context) {
	id, ok := websiteID(c)
	if !ok {
		return
	}

	if err := h.websites.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: msgWebsiteDeleted})
}

func (h *Handler) GetMetrics(c *gin.Context) {
	id, ok := websiteID(c)
	if !ok {
		return
	}

	days, err := strconv.Atoi(c.Query("days"))
	if err != nil {
		days = defaultMetricsDays
	}

	rows, err := h.websites.Metrics(c.Request.Context(), id, days)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]metricResponse, 0, len(rows))
	for _, m := range rows {
		resp = append(resp, metricResponse{
			Date:        m.Date.Format(time.DateOnly),
			Clicks:      m.Clicks,
			Impressions: m.Impressions,
			CTR:         m.CTR,
			Position:    m.Position,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RunAudit(c *gin.Context) {
	id, ok := websiteID(c)
	if !ok {
		return
	}

	result, err := h.audits.Run(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, auditResponse{
		Message: msgAuditCompleted,
		Results: result.AuditScores,
	})
}

func (h *Handler) ListAudits(c *gin.Context) {
	id, ok := websiteID(c)
	if !ok {
		return
	}

	history, err := h.audits.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if history == nil {
		history = []domain.AuditResult{}
	}
	c.JSON(http.StatusOK, history)
}

// websiteID parses the :id path segment. Anything that is not a positive
// integer cannot name a website and is answered with 404.
func websiteID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, errorResponse{Error: msgWebsiteNotFound})
		return 0, false
	}
	return id, true
}
