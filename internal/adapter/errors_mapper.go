package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-circuit-records/internal/app"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail, reason := errorBody(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		switch reason {
		case app.ReasonInvalidCredentials:
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, detail)
		case app.ReasonTokenExpired:
			return errors.Join(ErrUnauthorized, ErrTokenExpired)
		}
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}

// errorBody extracts detail and reason from a JSON error body. Bodies that
// are not JSON (proxies, plain-text errors) are returned verbatim as detail.
func errorBody(resp *resty.Response) (string, string) {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
		return body.Detail, body.Reason
	}

	raw := strings.TrimSpace(string(resp.Body()))
	if raw == "" {
		raw = http.StatusText(resp.StatusCode())
	}

	return raw, ""
}
