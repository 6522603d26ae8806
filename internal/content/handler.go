package content

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"thybackend/internal/domain/content"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

// Defaults served until the admin saves the singletons for the first time.
var defaultBanner = content.Banner{
	Subtitle:          "Test and you can Trust",
	PrimaryButtonText: "Book a Package",
	PrimaryButtonLink: "/book-consultation",
}

var defaultAbout = content.About{
	Title:    "Expert Medical Care",
	Features: []string{"24/7 Available", "Safe & Secure", "Expert Doctors", "Quality Care"},
}

func (h *Handler) GetBanner(c *gin.Context) {
	b, found, err := h.repo.GetBanner(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to load banner", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load banner"})
		return
	}
	if !found {
		b = defaultBanner
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) PutBanner(c *gin.Context) {
	var b content.Banner
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.repo.PutBanner(c.Request.Context(), b); err != nil {
		zap.S().Errorw("failed to save banner", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save banner"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) GetAbout(c *gin.Context) {
	a, found, err := h.repo.GetAbout(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to load about section", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load about section"})
		return
	}
	if !found {
		a = defaultAbout
	}
	if a.Features == nil {
		a.Features = []string{}
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) PutAbout(c *gin.Context) {
	var a content.About
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if a.Features == nil {
		a.Features = []string{}
	}
	if err := h.repo.PutAbout(c.Request.Context(), a); err != nil {
		zap.S().Errorw("failed to save about section", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save about section"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) ListTestimonials(c *gin.Context) {
	items, err := h.repo.ListTestimonials(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list testimonials"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type testimonialReq struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	ImageURL string `json:"imageUrl"`
}

func (h *Handler) CreateTestimonial(c *gin.Context) {
	var req testimonialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := h.repo.CreateTestimonial(c.Request.Context(), content.Testimonial{
		Name: req.Name, Role: req.Role, Company: req.Company,
		Content: req.Content, Rating: req.Rating, ImageURL: req.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create testimonial"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

type testimonialUpdateReq struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Company  *string `json:"company"`
	Content  *string `json:"content"`
	Rating   *int    `json:"rating"`
	ImageURL *string `json:"imageUrl"`
}

func (h *Handler) UpdateTestimonial(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req testimonialUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := h.repo.UpdateTestimonial(c.Request.Context(), id,
		req.Name, req.Role, req.Company, req.Content, req.Rating, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "testimonial not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTestimonial(c *gin.Context) {
	h.deleteByID(c, h.repo.DeleteTestimonial, "testimonial")
}

func (h *Handler) ListFAQs(c *gin.Context) {
	items, err := h.repo.ListFAQs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list faqs"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type faqReq struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

func (h *Handler) CreateFAQ(c *gin.Context) {
	var req faqReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	f, err := h.repo.CreateFAQ(c.Request.Context(), content.FAQ{
		Question: req.Question, Answer: req.Answer, Category: req.Category,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create faq"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

type faqUpdateReq struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
	Category *string `json:"category"`
}

func (h *Handler) UpdateFAQ(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req faqUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	f, err := h.repo.UpdateFAQ(c.Request.Context(), id, req.Question, req.Answer, req.Category)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "faq not found"})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *Handler) DeleteFAQ(c *gin.Context) {
	h.deleteByID(c, h.repo.DeleteFAQ, "faq")
}

func (h *Handler) ListBlogs(c *gin.Context) {
	items, err := h.repo.ListBlogs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blog posts"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type blogReq struct {
	Title       string   `json:"title" binding:"required"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publishDate"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

func (h *Handler) CreateBlog(c *gin.Context) {
	var req blogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}
	b, err := h.repo.CreateBlog(c.Request.Context(), content.BlogPost{
		Title: req.Title, Excerpt: req.Excerpt, Content: req.Content,
		Author: req.Author, PublishDate: req.PublishDate, Category: req.Category,
		ImageURL: req.ImageURL, Tags: req.Tags,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create blog post"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

type blogUpdateReq struct {
	Title       *string  `json:"title"`
	Excerpt     *string  `json:"excerpt"`
	Content     *string  `json:"content"`
	Author      *string  `json:"author"`
	PublishDate *string  `json:"publishDate"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

func (h *Handler) UpdateBlog(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var req blogUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	b, err := h.repo.UpdateBlog(c.Request.Context(), id,
		req.Title, req.Excerpt, req.Content, req.Author,
		req.PublishDate, req.Category, req.ImageURL, req.Tags)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) DeleteBlog(c *gin.Context) {
	h.deleteByID(c, h.repo.DeleteBlog, "blog post")
}

// Consultations are the lead-capture submissions: created by any public
// booking dialog, read and deleted only from the admin console.

func (h *Handler) ListConsultations(c *gin.Context) {
	items, err := h.repo.ListConsultations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list consultations"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type consultationReq struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Description string   `json:"description"`
	Files       []string `json:"files"`
}

func (h *Handler) CreateConsultation(c *gin.Context) {
	var req consultationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Files == nil {
		req.Files = []string{}
	}
	s, err := h.repo.CreateConsultation(c.Request.Context(), content.Consultation{
		Name: req.Name, Email: req.Email, Address: req.Address,
		Phone: req.Phone, Description: req.Description, Files: req.Files,
	})
	if err != nil {
		zap.S().Errorw("failed to store consultation", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to submit consultation"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *Handler) DeleteConsultation(c *gin.Context) {
	h.deleteByID(c, h.repo.DeleteConsultation, "consultation")
}

type contactReq struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) CreateContactMessage(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	m, err := h.repo.CreateContactMessage(c.Request.Context(), content.ContactMessage{
		Name: req.Name, Phone: req.Phone, Email: req.Email,
		Subject: req.Subject, Message: req.Message,
	})
	if err != nil {
		zap.S().Errorw("failed to store contact message", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListContactMessages(c *gin.Context) {
	items, err := h.repo.ListContactMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contact messages"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) DeleteContactMessage(c *gin.Context) {
	h.deleteByID(c, h.repo.DeleteContactMessage, "contact message")
}

func (h *Handler) deleteByID(c *gin.Context, del func(ctx context.Context, id int64) (bool, error), what string) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	ok, err := del(c.Request.Context(), id)
	if err != nil {
		zap.S().Errorw("failed to delete "+what, "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete " + what})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
