package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/catalog-service/internal/circuitbreaker"
	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/i18n"
	"github.com/guttosm/catalog-service/internal/middleware"
	"github.com/guttosm/catalog-service/internal/order"
	"github.com/guttosm/catalog-service/internal/service"
)

var (
	// ErrInvalidRequestBody wraps body and query decoding failures.
	ErrInvalidRequestBody = errors.New("invalid request body")
	// ErrExportLogDisabled is returned when the export log has no store.
	ErrExportLogDisabled = errors.New("export log disabled")
)

// errorMappings translates domain errors into API responses.
func errorMappings() []middleware.ErrorMapping {
	return []middleware.ErrorMapping{
		{Err: service.ErrOrderNotFound, Status: http.StatusNotFound, Code: dto.ErrCodeOrderNotFound, MessageKey: i18n.ErrKeyOrderNotFound},
		{Err: order.ErrUnknownProduct, Status: http.StatusNotFound, Code: dto.ErrCodeProductNotFound, MessageKey: i18n.ErrKeyProductNotFound},
		{Err: dto.ErrMissingQuantity, Status: http.StatusBadRequest, Code: dto.ErrCodeInvalidRequest, MessageKey: i18n.ErrKeyValidationQuantity},
		{Err: dto.ErrInvalidChannel, Status: http.StatusBadRequest, Code: dto.ErrCodeInvalidRequest, MessageKey: i18n.ErrKeyValidationChannel},
		{Err: ErrInvalidRequestBody, Status: http.StatusBadRequest, Code: dto.ErrCodeInvalidRequest, MessageKey: i18n.ErrKeyInvalidRequestBody},
		{Err: ErrExportLogDisabled, Status: http.StatusServiceUnavailable, Code: dto.ErrCodeUnavailable, MessageKey: i18n.ErrKeyExportLogUnavailable},
		{Err: circuitbreaker.ErrCircuitOpen, Status: http.StatusServiceUnavailable, Code: dto.ErrCodeUnavailable, MessageKey: i18n.ErrKeyExportLogUnavailable},
		{Err: errExportDelivery, Status: http.StatusInternalServerError, Code: dto.ErrCodeInternal, MessageKey: i18n.ErrKeyExportFailed},
		{Err: context.DeadlineExceeded, Status: http.StatusGatewayTimeout, Code: dto.ErrCodeTimeout, MessageKey: i18n.ErrKeyTimeout},
	}
}
