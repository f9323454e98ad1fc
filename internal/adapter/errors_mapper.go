package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/asset-tracker/models"
	"github.com/go-resty/resty/v2"
)

// ResponseError carries the decoded error payload of a failed request.
// It unwraps to one of the sentinel errors of this package.
type ResponseError struct {
	StatusCode int
	Body       models.ErrorResponse

	// Kind is the sentinel the error unwraps to.
	Kind error
}

func (e *ResponseError) Error() string {
	msg := e.Body.Error
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if len(e.Body.Errors) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}

	fields := make([]string, 0, len(e.Body.Errors))
	for _, fe := range e.Body.Errors {
		fields = append(fields, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, msg, strings.Join(fields, "; "))
}

func (e *ResponseError) Unwrap() error {
	return e.Kind
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Error == "" {
		body = models.ErrorResponse{Error: strings.TrimSpace(string(resp.Body()))}
	}

	var kind error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	case http.StatusForbidden:
		kind = ErrForbidden
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusInternalServerError:
		kind = ErrInternalServerError
	default:
		if body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body.Error)
	}

	return &ResponseError{StatusCode: resp.StatusCode(), Body: body, Kind: kind}
}
