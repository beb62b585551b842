package lifecycle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"LMS-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

// RegisterRoutes: 利用者向けのライフサイクル操作と集計
func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.POST("/books/:book_id/borrow", h.Borrow)
	r.POST("/books/:book_id/reserve", h.Reserve)
	r.POST("/books/:book_id/return", h.Return)
	r.POST("/books/:book_id/cancel-reservation", h.CancelReservation)
	r.GET("/members/me/stats", h.Stats)
}

// RegisterLibrarianRoutes: 司書専用の返却処理
func RegisterLibrarianRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.POST("/books/:book_id/mark-returned", h.MarkReturned)
}

// ---------- handlers ----------

// Borrow godoc
// @Summary 貸出（daysは省略時14日）
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param book_id path string true "book id"
// @Param body body BorrowRequest false "options"
// @Success 201 {object} BorrowResponse
// @Router /books/{book_id}/borrow [post]
func (h *Handler) Borrow(c *gin.Context) {
	var req BorrowRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody(CodeInvalidArgument, "invalid json"))
			return
		}
	}

	days := DefaultBorrowDays
	if req.Days != nil {
		days = *req.Days
	}

	res, err := h.svc.Borrow(c.Request.Context(), c.Param("book_id"), auth.MemberID(c), days)
	if err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Reserve godoc
// @Summary 予約
// @Tags lifecycle
// @Produce json
// @Param book_id path string true "book id"
// @Success 201 {object} ReserveResponse
// @Router /books/{book_id}/reserve [post]
func (h *Handler) Reserve(c *gin.Context) {
	res, err := h.svc.Reserve(c.Request.Context(), c.Param("book_id"), auth.MemberID(c))
	if err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Return godoc
// @Summary 返却（延滞金があれば精算して支払い履歴へ）
// @Tags lifecycle
// @Produce json
// @Param book_id path string true "book id"
// @Success 200 {object} ReturnResponse
// @Router /books/{book_id}/return [post]
func (h *Handler) Return(c *gin.Context) {
	res, err := h.svc.Return(c.Request.Context(), c.Param("book_id"), auth.MemberID(c))
	if err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) CancelReservation(c *gin.Context) {
	if err := h.svc.CancelReservation(c.Request.Context(), c.Param("book_id"), auth.MemberID(c)); err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkReturned godoc
// @Summary 司書による返却処理（台帳は更新しない）
// @Tags lifecycle
// @Produce json
// @Param book_id path string true "book id"
// @Success 204
// @Router /books/{book_id}/mark-returned [post]
func (h *Handler) MarkReturned(c *gin.Context) {
	if err := h.svc.MarkReturned(c.Request.Context(), c.Param("book_id")); err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats godoc
// @Summary 利用者の貸出集計（貸出数・返却期限間近・延滞金）
// @Tags members
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /members/me/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	res, err := h.svc.Stats(c.Request.Context(), auth.MemberID(c))
	if err != nil {
		c.JSON(ToHTTPStatus(err), errorFromErr(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// ---------- helpers ----------

type errorDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorBody(code Code, msg string) errorDTO {
	var e errorDTO
	e.Error.Code = code
	e.Error.Message = msg
	return e
}

func errorFromErr(err error) errorDTO {
	var msg string
	var code Code = CodeInternal
	if api, ok := err.(*APIError); ok {
		code, msg = api.Code, api.Message
	} else {
		msg = err.Error()
	}
	return errorBody(code, msg)
}
