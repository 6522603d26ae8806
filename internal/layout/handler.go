package layout

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImageListHandler serves both /sliders and /background-images.
type ImageListHandler struct {
	repo *ImageListRepo
	name string
}

func NewImageListHandler(repo *ImageListRepo, name string) *ImageListHandler {
	return &ImageListHandler{repo: repo, name: name}
}

func (h *ImageListHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to list "+h.name, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list " + h.name})
		return
	}
	c.JSON(http.StatusOK, items)
}

type imageItemReq struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	AltText  string `json:"altText"`
	Order    int    `json:"order"`
}

func (h *ImageListHandler) Create(c *gin.Context) {
	var req imageItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	s, err := h.repo.Create(c.Request.Context(), req.ImageURL, req.AltText, req.Order)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

type imageItemUpdateReq struct {
	ImageURL *string `json:"imageUrl"`
	AltText  *string `json:"altText"`
	Order    *int    `json:"order"`
}

func (h *ImageListHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req imageItemUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	s, err := h.repo.Update(c.Request.Context(), id, req.ImageURL, req.AltText, req.Order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *ImageListHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	ok, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil || !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type reorderItem struct {
	ID    int64 `json:"id" binding:"required"`
	Order int   `json:"order"`
}

type reorderReq struct {
	Items []reorderItem `json:"items" binding:"required"`
}

// Reorder persists a full new ordering. The next List returns the list in
// exactly this order; the server, not the client, owns ordering.
func (h *ImageListHandler) Reorder(c *gin.Context) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	orders := make(map[int64]int, len(req.Items))
	for _, it := range req.Items {
		orders[it.ID] = it.Order
	}
	if err := h.repo.Reorder(c.Request.Context(), orders); err != nil {
		zap.S().Errorw("failed to reorder "+h.name, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reorder"})
		return
	}

	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list " + h.name})
		return
	}
	c.JSON(http.StatusOK, items)
}

type MenuHandler struct {
	repo *MenuRepo
}

func NewMenuHandler(repo *MenuRepo) *MenuHandler {
	return &MenuHandler{repo: repo}
}

func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to list menu items", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type menuItemReq struct {
	Title string `json:"title" binding:"required"`
	Path  string `json:"path" binding:"required"`
	Order int    `json:"order"`
}

func (h *MenuHandler) Create(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.repo.Create(c.Request.Context(), req.Title, req.Path, req.Order)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

type menuItemUpdateReq struct {
	Title *string `json:"title"`
	Path  *string `json:"path"`
	Order *int    `json:"order"`
}

func (h *MenuHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req menuItemUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.repo.Update(c.Request.Context(), id, req.Title, req.Path, req.Order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MenuHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	ok, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil || !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *MenuHandler) Reorder(c *gin.Context) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	orders := make(map[int64]int, len(req.Items))
	for _, it := range req.Items {
		orders[it.ID] = it.Order
	}
	if err := h.repo.Reorder(c.Request.Context(), orders); err != nil {
		zap.S().Errorw("failed to reorder menu items", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reorder"})
		return
	}

	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}
