package riot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"
)

// APIError carries the upstream HTTP status and the upstream-supplied
// message when one was present in the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot api error %d: %s", e.StatusCode, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	// Riot error bodies look like {"status":{"message":"...","status_code":404}}.
	var payload struct {
		Status struct {
			Message string `json:"message"`
		} `json:"status"`
	}

	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Status.Message
	}
	if message == "" {
		message = fmt.Sprintf("Riot API error %d", status)
	}

	return &APIError{StatusCode: status, Message: message}
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == fasthttp.StatusNotFound
}

func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == fasthttp.StatusTooManyRequests
}
