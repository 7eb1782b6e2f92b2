package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/apperr"
	"go.uber.org/zap"
)

const unexpectedDetail = "An unexpected error occurred"

// ErrorBody is the envelope for every 4xx/5xx response.
type ErrorBody struct {
	Detail    string `json:"detail"`
	ErrorType string `json:"error_type,omitempty"`
}

// OK sends a 200 response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail aborts with {detail}.
func Fail(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, ErrorBody{Detail: detail})
}

// FailTyped aborts with {detail, error_type}.
func FailTyped(c *gin.Context, code int, detail, errorType string) {
	c.AbortWithStatusJSON(code, ErrorBody{Detail: detail, ErrorType: errorType})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, detail string) {
	Fail(c, http.StatusBadRequest, detail)
}

// PayloadTooLarge sends a 413 error response.
func PayloadTooLarge(c *gin.Context, detail string) {
	Fail(c, http.StatusRequestEntityTooLarge, detail)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	Fail(c, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// InternalError sends a 500 with a caller-chosen detail. The cause is only logged.
func InternalError(c *gin.Context, log *zap.Logger, detail string, err error) {
	log.Error(detail, zap.Error(err), zap.String("path", c.Request.URL.Path))
	Fail(c, http.StatusInternalServerError, detail)
}

// Error maps err onto the envelope: classified application errors become 400
// with their type name, everything else a generic 500.
func Error(c *gin.Context, log *zap.Logger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindUnknown {
		log.Error("unexpected error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		FailTyped(c, http.StatusInternalServerError, unexpectedDetail, kind.TypeName())
		return
	}

	if kind == apperr.KindValidation {
		log.Error("validation error", zap.Error(err))
	} else {
		log.Error("application error", zap.Error(err), zap.String("error_type", kind.TypeName()))
	}
	FailTyped(c, http.StatusBadRequest, err.Error(), kind.TypeName())
}
