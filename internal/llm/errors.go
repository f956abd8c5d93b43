package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// Every request is made once. These errors describe why that one attempt
// failed, and the question source turns any of them into a failed fetch.

// ErrRateLimit is an HTTP 429 from the named provider.
type ErrRateLimit struct {
	Provider string
	Err      error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("%s: rate limited: %v", providerLabel(e.Provider), e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers transport failures, 5xx responses and any
// API error that is not a rate limit. Err may be nil.
type ErrProviderUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrProviderUnavailable) Error() string {
	msg := providerLabel(e.Provider) + " provider unavailable"
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse means the output did not match the requested schema.
// Content is kept for the audit log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded means the model stopped at the token limit, so the
// question set is cut off. Limit is the request's MaxTokens, 0 if unset.
type ErrMaxTokensExceeded struct {
	Limit   int
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("LLM response truncated at %d tokens", e.Limit)
	}
	return "LLM response truncated: max tokens exceeded"
}

func providerLabel(name string) string {
	if name == "" {
		return "LLM"
	}
	return name
}

// mapAPIError classifies a failed SDK call. Each SDK exposes the HTTP
// status on its own error type.
func mapAPIError(provider string, err error) error {
	status := 0
	var anthropicErr *anthropic.Error
	var openaiErr *openai.APIError
	var geminiErr genai.APIError
	var geminiErrPtr *genai.APIError
	switch {
	case errors.As(err, &anthropicErr):
		status = anthropicErr.StatusCode
	case errors.As(err, &openaiErr):
		status = openaiErr.HTTPStatusCode
	case errors.As(err, &geminiErr):
		status = geminiErr.Code
	case errors.As(err, &geminiErrPtr):
		status = geminiErrPtr.Code
	}
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Provider: provider, Err: err}
	}
	return &ErrProviderUnavailable{Provider: provider, Err: err}
}
