package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/utils"
	"github.com/MKhiriev/go-circuit-records/models"
)

// maxJSONBodySize caps JSON request bodies.
const maxJSONBodySize = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// writeJSON writes data with status and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

func societyQuery(r *http.Request) (models.Society, error) {
	society, err := models.ParseSociety(r.URL.Query().Get("society"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidQueryParameter, err)
	}
	return society, nil
}

// timeQuery parses an optional RFC 3339 or YYYY-MM-DD query value.
func timeQuery(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	ts, err := models.ParseTimestamp(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidQueryParameter, name, err)
	}
	return &ts.Time, nil
}
