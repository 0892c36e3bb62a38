package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Kind classifies a failed model call.
type Kind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable Kind = iota
	// KindRateLimited is a 429 from the provider.
	KindRateLimited
	// KindRejected is any other 4xx: a bad key, an unknown model or a
	// malformed request. Sending it again will not help.
	KindRejected
	// KindInvalidResponse means the reply did not parse or did not match
	// the requested schema.
	KindInvalidResponse
	// KindTruncated means generation stopped at MaxTokens before the
	// structured reply was complete.
	KindTruncated
)

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrUnavailable     = errors.New("llm provider unavailable")
	ErrRateLimited     = errors.New("llm rate limited")
	ErrRejected        = errors.New("llm request rejected")
	ErrInvalidResponse = errors.New("invalid llm response")
	ErrTruncated       = errors.New("llm response truncated at max tokens")
)

func (k Kind) sentinel() error {
	switch k {
	case KindRateLimited:
		return ErrRateLimited
	case KindRejected:
		return ErrRejected
	case KindInvalidResponse:
		return ErrInvalidResponse
	case KindTruncated:
		return ErrTruncated
	default:
		return ErrUnavailable
	}
}

// Error is what providers return when the model call itself fails.
type Error struct {
	Kind Kind

	// RetryAfter is the wait the provider asked for, when it said.
	RetryAfter time.Duration

	// Content is the reply that failed, for KindInvalidResponse and
	// KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.RetryAfter > 0 {
		msg = fmt.Sprintf("%s (retry after %s)", msg, e.RetryAfter)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind.sentinel() }

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func unavailable(err error) *Error {
	return &Error{Kind: KindUnavailable, Err: err}
}

func invalidResponse(content json.RawMessage, err error) *Error {
	return &Error{Kind: KindInvalidResponse, Content: content, Err: err}
}

func truncated(content json.RawMessage) *Error {
	return &Error{Kind: KindTruncated, Content: content}
}

// fromStatus classifies an SDK error by the HTTP status it carried.
// A zero status means the request never got an answer.
func fromStatus(status int, header http.Header, err error) *Error {
	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, RetryAfter: retryAfter(header), Err: err}
	case status >= 400 && status < 500:
		return &Error{Kind: KindRejected, Err: err}
	default:
		return unavailable(err)
	}
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
