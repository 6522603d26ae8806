package offers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thybackend/internal/domain/offer"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) ListOffers(c *gin.Context) {
	items, err := h.repo.ListOffers(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to list offers", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list offers"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type offerReq struct {
	Title       string   `json:"title" binding:"required"`
	Discount    string   `json:"discount"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	ValidTill   string   `json:"validTill"`
	Popularity  string   `json:"popularity"`
}

func (h *Handler) CreateOffer(c *gin.Context) {
	var req offerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Features == nil {
		req.Features = []string{}
	}
	o, err := h.repo.CreateOffer(c.Request.Context(), offer.Offer{
		Title: req.Title, Discount: req.Discount, Description: req.Description,
		Features: req.Features, ValidTill: req.ValidTill, Popularity: req.Popularity,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create offer"})
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *Handler) DeleteOffer(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	ok, err := h.repo.DeleteOffer(c.Request.Context(), id)
	if err != nil || !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type referralReq struct {
	ReferrerEmail string `json:"referrerEmail" binding:"required,email"`
	ReferrerPhone string `json:"referrerPhone"`
	FriendEmail   string `json:"friendEmail" binding:"required,email"`
	FriendPhone   string `json:"friendPhone"`
}

func (h *Handler) CreateReferral(c *gin.Context) {
	var req referralReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	rf, err := h.repo.CreateReferral(c.Request.Context(), offer.Referral{
		ReferrerEmail: req.ReferrerEmail, ReferrerPhone: req.ReferrerPhone,
		FriendEmail: req.FriendEmail, FriendPhone: req.FriendPhone,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to submit referral"})
		return
	}
	c.JSON(http.StatusCreated, rf)
}

func (h *Handler) ListReferrals(c *gin.Context) {
	items, err := h.repo.ListReferrals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list referrals"})
		return
	}
	c.JSON(http.StatusOK, items)
}
