package http

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/i18n"
	"github.com/guttosm/catalog-service/internal/middleware"
)

// Response DTO pool for reducing allocations.
var successResponsePool = sync.Pool{
	New: func() interface{} {
		return &dto.SuccessResponse{}
	},
}

// getSuccessResponse retrieves a SuccessResponse from the pool.
func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

// putSuccessResponse returns a SuccessResponse to the pool.
func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

// ResponseBuilder writes the JSON envelope used by every API endpoint.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in a pooled SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so the response can go back to the pool.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends a localized error response with the given status code.
// err, when set, is attached to the context so the error handler logs it.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode,
		dto.NewError(dto.ErrCodeFromStatus(statusCode), message).WithRequestID(middleware.GetRequestID(b.c)))
}

// Fail hands err to the error handler middleware, which maps it to a response.
func (b *ResponseBuilder) Fail(err error) {
	_ = b.c.Error(err)
	b.c.Abort()
}

// Translate localizes key for the current request.
func (b *ResponseBuilder) Translate(key string) string {
	return i18n.GetTranslator().Translate(key, i18n.GetLocale(b.c))
}

// Validator is implemented by request types that can validate themselves.
type Validator interface {
	Validate() error
}

// BindJSONAndValidate decodes the request body into T and validates it if
// T implements Validator. Decoding errors wrap ErrInvalidRequestBody.
func BindJSONAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequestBody, err)
	}
	if validator, ok := any(&req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// BindQueryAndValidate is BindJSONAndValidate for query parameters.
func BindQueryAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequestBody, err)
	}
	if validator, ok := any(&req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}
