package bloodtests

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

// List responds with a bare array; the test catalog page binds directly to
// the response body.
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to list blood tests", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blood tests"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type createReq struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
	SampleType  string   `json:"sampleType"`
	Fasting     string   `json:"fasting"`
	ReportTime  string   `json:"reportTime"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	t, err := h.repo.Create(c.Request.Context(), CreateInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		SampleType:  req.SampleType,
		Fasting:     req.Fasting,
		ReportTime:  req.ReportTime,
	})
	if err != nil {
		zap.S().Errorw("failed to create blood test", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create blood test"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

type updateReq struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	ImageURL    *string  `json:"imageUrl"`
	SampleType  *string  `json:"sampleType"`
	Fasting     *string  `json:"fasting"`
	ReportTime  *string  `json:"reportTime"`
}

// Update applies a partial body and returns the full updated record, which
// the catalog merges into its list by id.
func (h *Handler) Update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t, err := h.repo.Update(c.Request.Context(), id, UpdateInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		SampleType:  req.SampleType,
		Fasting:     req.Fasting,
		ReportTime:  req.ReportTime,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blood test not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	ok, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		zap.S().Errorw("failed to delete blood test", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete blood test"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "blood test not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
