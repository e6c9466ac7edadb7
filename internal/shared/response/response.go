package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookfinder-backend/internal/shared/apierror"
	"bookfinder-backend/pkg/logger"
)

// OK writes the payload as-is with status 200. Successful responses carry the
// bare record, no envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error renders a classified error as the standard {status, error, message,
// path} body. Anything that is not an *apierror.Error should never reach this
// point; it is logged and collapsed into DbAccess so the client still gets a
// well-formed body.
func Error(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		logger.Error("unclassified error reached the response layer", err)
		apiErr = apierror.Wrap(apierror.DbAccess, "", err)
	}

	body := apierror.NewResponse(apiErr.Kind, apiErr.Message, c.Request.URL.Path)
	c.AbortWithStatusJSON(body.Status, body)
}

// ErrorKind renders an error body for a kind raised directly in the handler
// layer (binding and validation failures).
func ErrorKind(c *gin.Context, kind apierror.Kind, message string) {
	body := apierror.NewResponse(kind, message, c.Request.URL.Path)
	c.AbortWithStatusJSON(body.Status, body)
}
