package http

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/export"
)

// errExportDelivery marks failures while writing an export to the client.
var errExportDelivery = errors.New("export delivery failed")

// responseSink delivers exports over an HTTP response. Files are streamed
// as attachments; URLs are captured for the handler to redirect to or
// return as JSON.
type responseSink struct {
	c   *gin.Context
	url string
}

func newResponseSink(c *gin.Context) *responseSink {
	return &responseSink{c: c}
}

// WriteFile sends data as a download named name.
func (s *responseSink) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.c.Writer.Written() {
		return fmt.Errorf("%w: response already written", errExportDelivery)
	}

	s.c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	s.c.Header("Cache-Control", "no-store")
	s.c.Data(http.StatusOK, export.CSVContentType, data)
	return nil
}

// OpenURL records url.
func (s *responseSink) OpenURL(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.url = url
	return nil
}

// URL returns the last URL handed to OpenURL.
func (s *responseSink) URL() string {
	return s.url
}

var _ export.Sink = (*responseSink)(nil)
