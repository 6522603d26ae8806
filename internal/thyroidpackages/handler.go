package thyroidpackages

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

// List responds with a bare array, cheapest package first.
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to list thyroid packages", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list thyroid packages"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type createReq struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required"`
	OriginalPrice   float64 `json:"originalPrice"`
	TestsIncluded   string  `json:"tests_included"`
	Description     string  `json:"description"`
	ReportTime      string  `json:"report_time"`
	SampleType      string  `json:"sample_type"`
	FastingRequired string  `json:"fasting_required"`
	Popular         bool    `json:"popular"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), CreateInput{
		Name:            req.Name,
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		TestsIncluded:   req.TestsIncluded,
		Description:     req.Description,
		ReportTime:      req.ReportTime,
		SampleType:      req.SampleType,
		FastingRequired: req.FastingRequired,
		Popular:         req.Popular,
	})
	if err != nil {
		zap.S().Errorw("failed to create thyroid package", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create thyroid package"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

type updateReq struct {
	Name            *string  `json:"name"`
	Price           *float64 `json:"price"`
	OriginalPrice   *float64 `json:"originalPrice"`
	TestsIncluded   *string  `json:"tests_included"`
	Description     *string  `json:"description"`
	ReportTime      *string  `json:"report_time"`
	SampleType      *string  `json:"sample_type"`
	FastingRequired *string  `json:"fasting_required"`
	Popular         *bool    `json:"popular"`
}

func (h *Handler) Update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.repo.Update(c.Request.Context(), id, UpdateInput{
		Name:            req.Name,
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		TestsIncluded:   req.TestsIncluded,
		Description:     req.Description,
		ReportTime:      req.ReportTime,
		SampleType:      req.SampleType,
		FastingRequired: req.FastingRequired,
		Popular:         req.Popular,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "thyroid package not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	ok, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		zap.S().Errorw("failed to delete thyroid package", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete thyroid package"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "thyroid package not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
