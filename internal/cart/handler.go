package cart

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thybackend/internal/auth"
	"thybackend/internal/domain/cart"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Get(c *gin.Context) {
	crt, err := h.repo.GetCart(c.Request.Context(), auth.UserID(c))
	if err != nil {
		zap.S().Errorw("failed to load cart", "user_id", auth.UserID(c), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, crt)
}

type addReq struct {
	ItemID   int64   `json:"itemId" binding:"required"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Add merges the item into the cart and responds with the whole updated
// cart; the client replaces its state with the body.
func (h *Handler) Add(c *gin.Context) {
	userID := auth.UserID(c)

	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := h.repo.AddItem(c.Request.Context(), userID, cart.Item{
		ItemID:   req.ItemID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		zap.S().Errorw("failed to add cart item", "user_id", userID, "item_id", req.ItemID, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to add item"})
		return
	}

	h.respondWithCart(c, userID)
}

func (h *Handler) Remove(c *gin.Context) {
	userID := auth.UserID(c)
	itemID, _ := strconv.ParseInt(c.Param("itemId"), 10, 64)

	if err := h.repo.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		zap.S().Errorw("failed to remove cart item", "user_id", userID, "item_id", itemID, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to remove item"})
		return
	}

	h.respondWithCart(c, userID)
}

func (h *Handler) Clear(c *gin.Context) {
	userID := auth.UserID(c)

	if err := h.repo.Clear(c.Request.Context(), userID); err != nil {
		zap.S().Errorw("failed to clear cart", "user_id", userID, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, cart.Empty())
}

func (h *Handler) respondWithCart(c *gin.Context, userID int64) {
	crt, err := h.repo.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, crt)
}
