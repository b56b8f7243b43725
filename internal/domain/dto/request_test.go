package dto

import (
	"encoding/json"
	"testing"

	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetQuantityRequest_Decode(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantRaw   string
		wantValid bool
		wantErr   bool
	}{
		{name: "string quantity", body: `{"quantity":"10"}`, wantRaw: "10", wantValid: true},
		{name: "numeric quantity", body: `{"quantity":25}`, wantRaw: "25", wantValid: true},
		{name: "decimal quantity kept verbatim", body: `{"quantity":7.9}`, wantRaw: "7.9", wantValid: true},
		{name: "free text", body: `{"quantity":"doce"}`, wantRaw: "doce", wantValid: true},
		{name: "empty string", body: `{"quantity":""}`, wantRaw: "", wantValid: true},
		{name: "null", body: `{"quantity":null}`, wantRaw: "", wantValid: false},
		{name: "missing", body: `{}`, wantRaw: "", wantValid: false},
		{name: "boolean rejected", body: `{"quantity":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SetQuantityRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantRaw, req.Raw())
			if tt.wantValid {
				assert.NoError(t, req.Validate())
			} else {
				assert.Equal(t, ErrMissingQuantity, req.Validate())
			}
		})
	}
}

func TestListExportsQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   ListExportsQuery
		wantErr error
	}{
		{name: "no channel", query: ListExportsQuery{}},
		{name: "csv", query: ListExportsQuery{Channel: "csv"}},
		{name: "whatsapp", query: ListExportsQuery{Channel: "whatsapp"}},
		{name: "unknown channel", query: ListExportsQuery{Channel: "email"}, wantErr: ErrInvalidChannel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	q := ListExportsQuery{OrderID: "o-1", Channel: "csv", Limit: 5, Skip: 10}
	assert.Equal(t, model.ExportQueryOptions{OrderID: "o-1", Channel: model.ExportChannelCSV, Limit: 5, Skip: 10}, q.Options())
}

func TestWhatsAppExportQuery_ShouldRedirect(t *testing.T) {
	for raw, want := range map[string]bool{"": false, "1": true, "true": true, "false": false, "yes": false} {
		q := WhatsAppExportQuery{Redirect: raw}
		assert.Equal(t, want, q.ShouldRedirect(), raw)
	}
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "quantity: field is required", ErrMissingQuantity.Error())
}
