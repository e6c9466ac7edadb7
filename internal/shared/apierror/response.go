package apierror

import "net/http"

// Response is the JSON error body returned to clients. The status is fixed by
// the kind, error carries the standard reason phrase for that status, and the
// request path is echoed verbatim.
type Response struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// NewResponse maps a kind, an optional message and the request path to the
// response body. Pure function: no side effects and no failure modes.
func NewResponse(kind Kind, message, path string) Response {
	status := kind.HTTPStatus()
	if message == "" {
		message = kind.DefaultMessage()
	}
	return Response{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
		Path:    path,
	}
}
