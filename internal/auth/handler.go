package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thybackend/internal/config"
	"thybackend/internal/domain/user"
	"thybackend/internal/mail"
	"thybackend/internal/util"
)

type Dependencies struct {
	Cfg    config.Config
	JWT    *JWTManager
	Users  *UserRepo
	Tokens *TokenRepo
	Mailer mail.Mailer
}

type Handler struct {
	deps Dependencies
}

func NewHandler(d Dependencies) *Handler {
	return &Handler{deps: d}
}

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type forgotReq struct {
	Email string `json:"email" binding:"required,email"`
}

type resetReq struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	pwHash, err := HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password hash failed"})
		return
	}

	u, err := h.deps.Users.Create(c.Request.Context(), req.Email, pwHash, req.Name, req.Phone)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":   true,
		"user": sanitizeUser(u),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	u, err := h.deps.Users.ByEmail(c.Request.Context(), req.Email)
	if err != nil || !u.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if !CheckPassword(u.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	access, accessExp, _ := h.deps.JWT.SignAccess(u.ID, u.Role)
	refresh, refreshExp, _ := h.deps.JWT.SignRefresh(u.ID, u.Role)
	_ = h.deps.Tokens.StoreRefresh(c.Request.Context(), u.ID, HashToken(refresh), refreshExp)

	// The website stores "token" in local storage and sends it as the
	// bearer on every call.
	c.JSON(http.StatusOK, gin.H{
		"user":          sanitizeUser(u),
		"token":         access,
		"access_exp":    accessExp,
		"refresh_token": refresh,
		"refresh_exp":   refreshExp,
	})
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.deps.JWT.ParseRefresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	ok, err := h.deps.Tokens.RefreshIsValid(c.Request.Context(), claims.UserID, HashToken(req.RefreshToken))
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token expired or revoked"})
		return
	}
	_ = h.deps.Tokens.RevokeRefresh(c.Request.Context(), claims.UserID, HashToken(req.RefreshToken))

	access, accessExp, _ := h.deps.JWT.SignAccess(claims.UserID, claims.Role)
	newRefresh, refreshExp, _ := h.deps.JWT.SignRefresh(claims.UserID, claims.Role)
	_ = h.deps.Tokens.StoreRefresh(c.Request.Context(), claims.UserID, HashToken(newRefresh), refreshExp)

	c.JSON(http.StatusOK, gin.H{
		"token":         access,
		"access_exp":    accessExp,
		"refresh_token": newRefresh,
		"refresh_exp":   refreshExp,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims, err := h.deps.JWT.ParseRefresh(req.RefreshToken)
	if err == nil {
		_ = h.deps.Tokens.RevokeRefresh(c.Request.Context(), claims.UserID, HashToken(req.RefreshToken))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ForgotPassword mails a reset link. Always responds ok so the endpoint
// does not reveal which emails exist.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	u, err := h.deps.Users.ByEmail(c.Request.Context(), req.Email)
	if err != nil || !u.IsActive {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	token, err := util.RandomToken(32)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	expiresAt := time.Now().Add(time.Duration(h.deps.Cfg.ResetTokenTTLMin) * time.Minute)
	if err := h.deps.Tokens.CreateReset(c.Request.Context(), u.ID, HashToken(token), expiresAt); err != nil {
		zap.S().Errorw("failed to store reset token", "user_id", u.ID, "err", err)
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	link := h.deps.Cfg.AppBaseURL + h.deps.Cfg.ResetPath + "/" + token
	body := "We received a request to reset your password.\r\n\r\n" +
		"Open this link to choose a new one: " + link + "\r\n\r\n" +
		"The link expires at " + expiresAt.Format(time.RFC1123) + ". " +
		"If you didn't request this, ignore this email."
	if err := h.deps.Mailer.Send(u.Email, "Reset your password", body); err != nil {
		// mail failure never fails the request
		zap.S().Warnw("reset mail not sent", "user_id", u.ID, "err", err)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ResetPassword consumes the token from the mailed link.
func (h *Handler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok, err := h.deps.Tokens.ConsumeReset(c.Request.Context(), HashToken(token))
	if err != nil || !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired reset link"})
		return
	}

	newHash, err := HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password hash failed"})
		return
	}
	if err := h.deps.Users.UpdatePassword(c.Request.Context(), userID, newHash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "password update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.deps.Users.ByID(c.Request.Context(), UserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, sanitizeUser(u))
}

func sanitizeUser(u user.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"phone":      u.Phone,
		"role":       u.Role,
		"is_active":  u.IsActive,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}
