package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bookfinder-backend/internal/domains/book"
	"bookfinder-backend/internal/shared/apierror"
	"bookfinder-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// GetByAuthor handles GET /book?authorId=<int>.
func (h *BookHandler) GetByAuthor(c *gin.Context) {
	raw := c.Query("authorId")
	if raw == "" {
		response.ErrorKind(c, apierror.InvalidParameter, "authorId must not be null")
		return
	}

	authorID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.ErrorKind(c, apierror.InvalidParameter, "authorId must be an integer")
		return
	}

	books, err := h.service.GetByAuthor(c.Request.Context(), authorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, books)
}

// GetByKeyword handles GET /book/search?keyword=<string>.
func (h *BookHandler) GetByKeyword(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		response.ErrorKind(c, apierror.InvalidParameter, "keyword must not be empty")
		return
	}

	books, err := h.service.GetByKeyword(c.Request.Context(), keyword)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, books)
}

// Register handles POST /book.
func (h *BookHandler) Register(c *gin.Context) {
	var req book.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorKind(c, apierror.InvalidField, "")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorKind(c, apierror.InvalidField, err.Error())
		return
	}

	registered, err := h.service.Register(c.Request.Context(), req.ToModel())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, registered)
}

// Update handles PUT /book.
func (h *BookHandler) Update(c *gin.Context) {
	var req book.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorKind(c, apierror.InvalidField, "")
		return
	}

	if err := req.ValidateUpdate(); err != nil {
		response.ErrorKind(c, apierror.InvalidField, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), req.ToModel())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, updated)
}
