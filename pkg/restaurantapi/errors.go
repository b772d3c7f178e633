package restaurantapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the backend with a human-readable
// detail pulled out of whatever error shape the backend produced.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// extractDetail turns a backend error payload into a displayable string.
// The backend may send {"detail": "msg"}, a list of field-level
// validation errors {"detail": [{"loc": [...], "msg": "..."}]}, a
// {"message": ...} wrapper, or something opaque. None of these may make
// the caller fail.
func extractDetail(body []byte, statusCode int) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return http.StatusText(statusCode)
	}

	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
		Err     string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return trimmed
	}

	if len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil {
			return detail
		}

		var fieldErrors []struct {
			Loc []interface{} `json:"loc"`
			Msg string        `json:"msg"`
		}
		if err := json.Unmarshal(payload.Detail, &fieldErrors); err == nil && len(fieldErrors) > 0 {
			parts := make([]string, 0, len(fieldErrors))
			for _, fe := range fieldErrors {
				if len(fe.Loc) > 0 {
					locs := make([]string, 0, len(fe.Loc))
					for _, l := range fe.Loc {
						locs = append(locs, fmt.Sprint(l))
					}
					parts = append(parts, strings.Join(locs, ".")+": "+fe.Msg)
				} else {
					parts = append(parts, fe.Msg)
				}
			}
			return strings.Join(parts, " | ")
		}
	}

	if payload.Message != "" {
		return payload.Message
	}
	if payload.Err != "" {
		return payload.Err
	}

	return trimmed
}
