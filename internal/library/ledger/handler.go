package ledger

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"LMS-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/members/me/borrowed", h.ListBorrowed)
	r.GET("/members/me/reserved", h.ListReserved)
	r.GET("/members/me/payments", h.ListPayments)
	r.GET("/members/me/payments/export", h.ExportPayments)
}

func (h *Handler) ListBorrowed(c *gin.Context) {
	memberID := auth.MemberID(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	res, err := h.svc.ActiveBorrows(c.Request.Context(), memberID)
	if err != nil {
		log.Printf("[ERROR] list borrowed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load borrowed books"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListReserved(c *gin.Context) {
	memberID := auth.MemberID(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	res, err := h.svc.ActiveReservations(c.Request.Context(), memberID)
	if err != nil {
		log.Printf("[ERROR] list reserved: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reserved books"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListPayments(c *gin.Context) {
	memberID := auth.MemberID(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	res, err := h.svc.Payments(c.Request.Context(), memberID)
	if err != nil {
		log.Printf("[ERROR] list payments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payment history"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ExportPayments godoc
// @Summary 支払い履歴のCSVダウンロード（CP932）
// @Tags members
// @Produce text/csv
// @Success 200
// @Router /members/me/payments/export [get]
func (h *Handler) ExportPayments(c *gin.Context) {
	memberID := auth.MemberID(c)
	if memberID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	records, err := h.svc.Payments(c.Request.Context(), memberID)
	if err != nil {
		log.Printf("[ERROR] export payments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payment history"})
		return
	}

	c.Header("Content-Type", "text/csv; charset=Shift_JIS")
	c.Header("Content-Disposition", `attachment; filename="payments.csv"`)
	c.Status(http.StatusOK)
	if err := WritePaymentsCSV(c.Writer, records); err != nil {
		log.Printf("[ERROR] write payments csv: %v", err)
	}
}
