package orders

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"thybackend/internal/auth"
	cartrepo "thybackend/internal/cart"
	"thybackend/internal/domain/order"
	"thybackend/internal/uploads"
)

type Handler struct {
	repo  *Repo
	carts *cartrepo.Repo
	files *uploads.Store
}

func NewHandler(repo *Repo, carts *cartrepo.Repo, files *uploads.Store) *Handler {
	return &Handler{repo: repo, carts: carts, files: files}
}

// Book creates an order from the multipart booking form, snapshotting the
// caller's current cart. The cart itself is left alone; the website clears
// it explicitly after a successful booking.
func (h *Handler) Book(c *gin.Context) {
	userID := auth.UserID(c)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}
	get := func(key string) string {
		if vs := form.Value[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	crt, err := h.carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		zap.S().Errorw("failed to load cart for booking", "user_id", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	if len(crt.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	o := order.Order{
		UserID:          userID,
		Pincode:         get("pincode"),
		FullName:        get("fullName"),
		NoOfPersons:     cast.ToInt(get("noOfPersons")),
		Age:             get("age"),
		Gender:          get("gender"),
		Mobile:          get("mobile"),
		Email:           get("email"),
		Address:         get("address"),
		AppointmentDate: get("appointmentDate"),
		AppointmentTime: get("appointmentTime"),
		WantsHardCopy:   cast.ToBool(get("wantsHardCopy")),
		PaymentID:       get("paymentId"),
		Items:           crt.Items,
		TotalAmount:     crt.TotalAmount,
	}
	if o.NoOfPersons <= 0 {
		o.NoOfPersons = 1
	}
	if o.PaymentID == "" {
		o.PaymentID = fmt.Sprintf("temp_%d", time.Now().UnixMilli())
	}

	if fhs := form.File["prescriptionFile"]; len(fhs) > 0 {
		url, err := h.files.Save(c, fhs[0])
		if err != nil {
			zap.S().Errorw("prescription upload failed", "user_id", userID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
			return
		}
		o.PrescriptionURL = url
	}

	created, err := h.repo.Create(c.Request.Context(), o)
	if err != nil {
		zap.S().Errorw("failed to create order", "user_id", userID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to book order"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		zap.S().Errorw("failed to list orders", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, items)
}
