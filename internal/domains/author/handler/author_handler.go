package handler

import (
	"github.com/gin-gonic/gin"

	"bookfinder-backend/internal/domains/author"
	"bookfinder-backend/internal/shared/apierror"
	"bookfinder-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Register handles POST /author.
func (h *AuthorHandler) Register(c *gin.Context) {
	var req author.AuthorRequest
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

// Update handles PUT /author.
func (h *AuthorHandler) Update(c *gin.Context) {
	var req author.AuthorRequest
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
