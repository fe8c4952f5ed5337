package api

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
)

// APIError represents an API error response
type APIError struct {
	Name       string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Name, e.Message)
}

// ErrorName is the server's machine-readable error name, empty when the
// body carried none.
func (e *APIError) ErrorName() string { return e.Name }

// HTTPStatus is the response status code.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

// ServerMessage is the human text the server sent alongside the name.
func (e *APIError) ServerMessage() string { return e.Message }

// ParseError parses an error response from the API
func ParseError(resp *resty.Response) error {
	statusCode := resp.StatusCode()

	var errResp ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil && (errResp.Name != "" || errResp.Message != "") {
		return &APIError{
			Name:       errResp.Name,
			Message:    errResp.Message,
			StatusCode: statusCode,
		}
	}

	return &APIError{
		Message:    resp.Status(),
		StatusCode: statusCode,
	}
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized checks if error is due to missing/invalid authentication
func IsUnauthorized(err error) bool {
	return statusOf(err) == 401
}

// IsForbidden checks if error is due to insufficient permissions
func IsForbidden(err error) bool {
	return statusOf(err) == 403
}

// IsNotFound checks if error is due to resource not found
func IsNotFound(err error) bool {
	return statusOf(err) == 404
}

// IsServerError checks if error is due to server error (5xx)
func IsServerError(err error) bool {
	return statusOf(err) >= 500
}

// CheckResponse checks if response is successful and returns error if not
func CheckResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return ParseError(resp)
	}

	return nil
}

// decode checks the response and unmarshals a successful body into target
func decode(resp *resty.Response, err error, target interface{}) error {
	if err := CheckResponse(resp, err); err != nil {
		return err
	}
	if target == nil || len(resp.Body()) == 0 {
		return nil
	}
	return json.Unmarshal(resp.Body(), target)
}
