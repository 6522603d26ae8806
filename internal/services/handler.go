package services

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"thybackend/internal/domain/service"
	"thybackend/internal/uploads"
	"thybackend/internal/util"
)

type Handler struct {
	repo           *Repo
	files          *uploads.Store
	currencySymbol string
}

func NewHandler(repo *Repo, files *uploads.Store, currencySymbol string) *Handler {
	return &Handler{repo: repo, files: files, currencySymbol: currencySymbol}
}

// List responds with the {"services": [...]} envelope the storefront
// normalizer looks for first.
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to list services", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": h.withDisplayPrice(items)})
}

func (h *Handler) Get(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	s, err := h.repo.ByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	s.DisplayPrice = util.FormatPrice(h.currencySymbol, s.Price)
	c.JSON(http.StatusOK, s)
}

// Create accepts the admin form as multipart so a package file can ride
// along. The response carries the refreshed full collection, which the
// admin console adopts wholesale.
func (h *Handler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}

	in := CreateInput{
		Title:               formValue(form.Value, "title"),
		Description:         formValue(form.Value, "description"),
		DetailedDescription: formValue(form.Value, "detailedDescription"),
		Price:               cast.ToFloat64(formValue(form.Value, "price")),
		Duration:            formValue(form.Value, "duration"),
		Rating:              cast.ToFloat32(formValue(form.Value, "rating")),
		Patients:            cast.ToInt(formValue(form.Value, "patients")),
		IsPopular:           cast.ToBool(formValue(form.Value, "isPopular")),
		Category:            formValue(form.Value, "category"),
		Image:               formValue(form.Value, "image"),
		ImageAlt:            formValue(form.Value, "imageAlt"),
		AdditionalImages:    formArray(form.Value, "additionalImages"),
		Features:            formArray(form.Value, "features"),
		Requirements:        formArray(form.Value, "requirements"),
	}
	if in.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if fhs := form.File["packageFile"]; len(fhs) > 0 {
		url, err := h.files.Save(c, fhs[0])
		if err != nil {
			zap.S().Errorw("package file upload failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
			return
		}
		in.PackageFileURL = url
	}

	if _, err := h.repo.Create(c.Request.Context(), in); err != nil {
		zap.S().Errorw("failed to create service", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create service"})
		return
	}

	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"services": h.withDisplayPrice(items)})
}

func (h *Handler) Update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}

	in := UpdateInput{
		Title:               formOpt(form.Value, "title"),
		Description:         formOpt(form.Value, "description"),
		DetailedDescription: formOpt(form.Value, "detailedDescription"),
		Duration:            formOpt(form.Value, "duration"),
		Category:            formOpt(form.Value, "category"),
		Image:               formOpt(form.Value, "image"),
		ImageAlt:            formOpt(form.Value, "imageAlt"),
		AdditionalImages:    formArrayOpt(form.Value, "additionalImages"),
		Features:            formArrayOpt(form.Value, "features"),
		Requirements:        formArrayOpt(form.Value, "requirements"),
	}
	if v := formOpt(form.Value, "price"); v != nil {
		p := cast.ToFloat64(*v)
		in.Price = &p
	}
	if v := formOpt(form.Value, "rating"); v != nil {
		r := cast.ToFloat32(*v)
		in.Rating = &r
	}
	if v := formOpt(form.Value, "patients"); v != nil {
		n := cast.ToInt(*v)
		in.Patients = &n
	}
	if v := formOpt(form.Value, "isPopular"); v != nil {
		b := cast.ToBool(*v)
		in.IsPopular = &b
	}

	if fhs := form.File["packageFile"]; len(fhs) > 0 {
		url, err := h.files.Save(c, fhs[0])
		if err != nil {
			zap.S().Errorw("package file upload failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
			return
		}
		in.PackageFileURL = &url
	}

	s, err := h.repo.Update(c.Request.Context(), id, in)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	s.DisplayPrice = util.FormatPrice(h.currencySymbol, s.Price)
	c.JSON(http.StatusOK, s)
}

func (h *Handler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	s, err := h.repo.ByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	ok, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil || !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}
	// orphaned package file goes with the record
	_ = h.files.Remove(s.PackageFileURL)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) withDisplayPrice(items []service.Service) []service.Service {
	for i := range items {
		items[i].DisplayPrice = util.FormatPrice(h.currencySymbol, items[i].Price)
	}
	return items
}

func formValue(values map[string][]string, key string) string {
	if vs := values[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func formOpt(values map[string][]string, key string) *string {
	if vs := values[key]; len(vs) > 0 {
		return &vs[0]
	}
	return nil
}

// formArray gathers repeated fields the admin form posts as key[0], key[1],
// ... with plain repeated keys accepted too.
func formArray(values map[string][]string, key string) []string {
	out := append([]string{}, values[key]...)
	for i := 0; ; i++ {
		vs, ok := values[fmt.Sprintf("%s[%d]", key, i)]
		if !ok {
			break
		}
		out = append(out, vs...)
	}
	return out
}

// formArrayOpt returns nil when the field is entirely absent, so partial
// updates leave the stored list untouched.
func formArrayOpt(values map[string][]string, key string) []string {
	if _, ok := values[key]; ok {
		return formArray(values, key)
	}
	if _, ok := values[key+"[0]"]; ok {
		return formArray(values, key)
	}
	return nil
}
