// Package i18n translates user-facing API messages. English and Spanish are
// supported; English is the fallback.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the fallback locale.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header carrying language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator resolves message keys per locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator with the built-in messages.
func NewTranslator() *Translator {
	return &Translator{messages: messages}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language from Accept-Language,
// ignoring region subtags and quality weights.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	t := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		lang, _, _ := strings.Cut(part, ";")
		lang, _, _ = strings.Cut(strings.TrimSpace(lang), "-")
		lang = strings.ToLower(lang)
		if t.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

var messages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:       "Invalid request",
		ErrKeyInvalidRequestBody:   "Invalid request body",
		ErrKeyInternalError:        "An unexpected error occurred",
		ErrKeyAPIKeyRequired:       "API key is required",
		ErrKeyInvalidAPIKey:        "Invalid API key",
		ErrKeyNotFound:             "Not found",
		ErrKeyOrderNotFound:        "Order not found or expired",
		ErrKeyProductNotFound:      "Product not found in catalog",
		ErrKeyRateLimitExceeded:    "Too many requests, please try again later",
		ErrKeyExportFailed:         "The order could not be exported",
		ErrKeyExportLogUnavailable: "Export log is not available",
		ErrKeyValidationQuantity:   "quantity: field is required",
		ErrKeyValidationChannel:    "channel: must be csv or whatsapp",
		ErrKeyTimeout:              "Request timed out",

		SuccessKeyOrderCreated:    "Order created",
		SuccessKeyQuantityUpdated: "Quantity updated",
		SuccessKeyQuantityCleared: "Quantity below the minimum of 5 units, item removed",
	},
	"es": {
		ErrKeyInvalidRequest:       "Solicitud inválida",
		ErrKeyInvalidRequestBody:   "Cuerpo de la solicitud inválido",
		ErrKeyInternalError:        "Ocurrió un error inesperado",
		ErrKeyAPIKeyRequired:       "Se requiere una clave de API",
		ErrKeyInvalidAPIKey:        "Clave de API inválida",
		ErrKeyNotFound:             "No encontrado",
		ErrKeyOrderNotFound:        "Pedido no encontrado o vencido",
		ErrKeyProductNotFound:      "Producto no encontrado en el catálogo",
		ErrKeyRateLimitExceeded:    "Demasiadas solicitudes, intente nuevamente más tarde",
		ErrKeyExportFailed:         "No se pudo exportar el pedido",
		ErrKeyExportLogUnavailable: "El registro de exportaciones no está disponible",
		ErrKeyValidationQuantity:   "quantity: el campo es obligatorio",
		ErrKeyValidationChannel:    "channel: debe ser csv o whatsapp",
		ErrKeyTimeout:              "La solicitud excedió el tiempo de espera",

		SuccessKeyOrderCreated:    "Pedido creado",
		SuccessKeyQuantityUpdated: "Cantidad actualizada",
		SuccessKeyQuantityCleared: "Cantidad menor al mínimo de 5 unidades, producto quitado",
	},
}
