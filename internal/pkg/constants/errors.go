package constants

import "net/http"

// CodedError is an error that knows which HTTP status it should surface as.
// Services wrap these with fmt.Errorf("...: %w", err) and the api error
// handler unwraps the chain to find the code.
type CodedError struct {
	code int
	text string
}

func NewCodedError(code int, text string) *CodedError {
	return &CodedError{code: code, text: text}
}

func (e *CodedError) Error() string { return e.text }

func (e *CodedError) Code() int { return e.code }

var (
	// ErrSourceUnavailable: a required source file cannot be opened or read.
	ErrSourceUnavailable = NewCodedError(http.StatusBadGateway, "source unavailable")
	// ErrDataFormat: required schema columns are missing from a source.
	ErrDataFormat = NewCodedError(http.StatusBadGateway, "source data format invalid")

	ErrBadRequest = NewCodedError(http.StatusBadRequest, "bad request")
)
