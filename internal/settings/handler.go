package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thybackend/internal/domain/settings"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

var defaultSiteSettings = settings.SiteSettings{
	WebsiteName: "Thyrocare",
	LogoURL:     "/placeholder.svg",
}

// defaultCompanyProfile is served until an admin saves their own; the
// profile page destructures every field, so none may be left nil.
func defaultCompanyProfile() settings.CompanyProfile {
	return settings.CompanyProfile{
		CompanyName:    "Thyrocare Technologies Limited",
		Tagline:        "Think Thyroid, Think Thyrocare",
		Certifications: []string{"NABL Accredited", "ISO 9001:2015", "CAP Certified"},
		About:          "A fully automated diagnostic laboratory network focused on preventive health care, processing samples from collection centres across the country.",
		Mission:        "To make preventive health checkups affordable and accessible to everyone.",
		Vision:         "A disease-free world through early detection.",
		Stats: []settings.ProfileStat{
			{Label: "Tests Processed Daily", Value: "200,000+"},
			{Label: "Collection Centres", Value: "3,000+"},
			{Label: "Cities Served", Value: "600+"},
			{Label: "Years of Service", Value: "25+"},
		},
		Services: []settings.ProfileService{
			{
				Category:    "Thyroid Function",
				Description: "Complete thyroid profiling from screening to monitoring.",
				Tests:       []string{"T3", "T4", "TSH", "Anti-TPO"},
			},
			{
				Category:    "Preventive Packages",
				Description: "Whole-body checkup bundles with home sample collection.",
				Tests:       []string{"Aarogyam Basic", "Aarogyam Advanced"},
			},
		},
		Leadership: []settings.ProfileLeader{
			{Name: "Dr. A. Velumani", Title: "Founder", Bio: "Built the laboratory network from a single Mumbai lab.", Image: "/placeholder.svg"},
		},
		Contact: settings.ProfileContact{
			Address: "D-37/1, TTC MIDC, Turbhe,\nNavi Mumbai - 400703",
			Phone:   "+91 22 3090 0000",
			Email:   "info@thyrocare.com",
			Hours:   "Mon - Sat: 7:00 AM - 9:00 PM\nSun: 7:00 AM - 5:00 PM",
		},
	}
}

func (h *Handler) GetCompanyProfile(c *gin.Context) {
	p, found, err := h.repo.GetCompanyProfile(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to load company profile", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load company profile"})
		return
	}
	if !found {
		p = defaultCompanyProfile()
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) PutCompanyProfile(c *gin.Context) {
	var p settings.CompanyProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.repo.PutCompanyProfile(c.Request.Context(), p); err != nil {
		zap.S().Errorw("failed to save company profile", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save company profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) GetBusinessContact(c *gin.Context) {
	bc, _, err := h.repo.GetBusinessContact(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to load business contact", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load business contact"})
		return
	}
	c.JSON(http.StatusOK, bc)
}

func (h *Handler) PutBusinessContact(c *gin.Context) {
	var bc settings.BusinessContact
	if err := c.ShouldBindJSON(&bc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.repo.PutBusinessContact(c.Request.Context(), bc); err != nil {
		zap.S().Errorw("failed to save business contact", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save business contact"})
		return
	}
	c.JSON(http.StatusOK, bc)
}

func (h *Handler) GetSiteSettings(c *gin.Context) {
	s, found, err := h.repo.GetSiteSettings(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to load site settings", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load site settings"})
		return
	}
	if !found {
		s = defaultSiteSettings
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) PutSiteSettings(c *gin.Context) {
	var s settings.SiteSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.repo.PutSiteSettings(c.Request.Context(), s); err != nil {
		zap.S().Errorw("failed to save site settings", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save site settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}
