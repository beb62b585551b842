package books

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

// RegisterRoutes: 認証済みなら誰でも使える読み取り系
func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/books", h.ListBooks)
	r.GET("/books/:book_id", h.GetBook)
}

// RegisterLibrarianRoutes: 司書専用の登録・削除
func RegisterLibrarianRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.POST("/books", h.CreateBooks)
	r.DELETE("/books/:book_id", h.DeleteBook)
}

// CreateBooks godoc
// @Summary 蔵書登録（count冊分のコピーを作成）
// @Tags books
// @Accept json
// @Produce json
// @Param body body CreateBooksRequest true "book"
// @Success 201 {array} BookResponse
// @Router /books [post]
func (h *Handler) CreateBooks(c *gin.Context) {
	var req CreateBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiErr(CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListBooks godoc
// @Summary 蔵書一覧（status で絞り込み可能）
// @Tags books
// @Produce json
// @Param status query string false "available | borrowed | reserved"
// @Success 200 {array} BookResponse
// @Router /books [get]
func (h *Handler) ListBooks(c *gin.Context) {
	f := ListFilter{Status: Status(c.Query("status"))}
	res, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetBook(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), c.Param("book_id"))
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteBook godoc
// @Summary 蔵書削除（貸出中は不可）
// @Tags books
// @Produce json
// @Param book_id path string true "book id"
// @Success 204
// @Router /books/{book_id} [delete]
func (h *Handler) DeleteBook(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("book_id")); err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------- helpers ----------

type errDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func apiErr(code Code, msg string) errDTO {
	var e errDTO
	e.Error.Code = code
	e.Error.Message = msg
	return e
}

func apiErrFrom(err error) errDTO {
	var api *APIError
	if errors.As(err, &api) {
		return apiErr(api.Code, api.Message)
	}
	return apiErr(CodeInternal, err.Error())
}
