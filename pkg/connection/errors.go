package connection

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/notion-sdk/notion-go/pkg/constants"
)

// APIError is the error object returned by the API with a non-2xx status.
// It matches constants.ErrAPI with errors.Is.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: status %d: %s", constants.ErrAPI, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s: %s", constants.ErrAPI, e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return constants.ErrAPI
}

// parseAPIError reads an error object. Bodies that are not error objects, an
// HTML page from a proxy for example, become the message.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	object, err := jsonparser.GetString(body, "object")
	if err != nil || object != "error" {
		apiErr.Message = string(body)
		return apiErr
	}

	apiErr.Code, _ = jsonparser.GetString(body, "code")
	apiErr.Message, _ = jsonparser.GetString(body, "message")
	apiErr.RequestID, _ = jsonparser.GetString(body, "request_id")
	return apiErr
}
