package generation

import "errors"

// Kind names the classified outcome of a generation call.
type Kind string

// Failure classifications. KindNone is the classification of a successful
// result; KindUnknown covers errors that do not wrap a package sentinel
// (which indicates a bug in the client, not a new failure mode).
const (
	KindNone               Kind = ""
	KindMissingCredential  Kind = "missing_credential"
	KindTransportExhausted Kind = "transport_exhausted"
	KindMalformedResponse  Kind = "malformed_response"
	KindParseError         Kind = "parse_error"
	KindUnknown            Kind = "unknown"
)

// Result is the outcome of one logical generation call. Exactly one of
// Text and Err is meaningful: a successful call carries the generated text
// and a nil Err, a failed call carries a classified error and empty text.
type Result struct {
	Text string
	Err  error
}

// Success builds a successful Result carrying the generated text.
func Success(text string) Result {
	return Result{Text: text}
}

// Failure builds a failed Result. err must wrap one of the package's
// sentinel errors so the failure stays classifiable.
func Failure(err error) Result {
	return Result{Err: err}
}

// OK reports whether the call produced generated text.
func (r Result) OK() bool {
	return r.Err == nil
}

// Kind classifies the result by the sentinel its error wraps.
func (r Result) Kind() Kind {
	switch {
	case r.Err == nil:
		return KindNone
	case errors.Is(r.Err, ErrMissingCredential):
		return KindMissingCredential
	case errors.Is(r.Err, ErrTransportExhausted):
		return KindTransportExhausted
	case errors.Is(r.Err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(r.Err, ErrParseError):
		return KindParseError
	default:
		return KindUnknown
	}
}
