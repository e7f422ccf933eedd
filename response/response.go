// Package response holds the canned responses a fake server replies with.
//
// Every value is built through New or one of the named status constructors
// and is immutable afterwards: test code can hand the same Response to any
// number of goroutines without coordination.
package response

// Headers represents a collection of HTTP headers for a canned response.
type Headers map[string]string

// clone copies the headers so two responses never share backing storage.
func (h Headers) clone() Headers {
	c := make(Headers, len(h))
	for k, v := range h {
		c[k] = v
	}

	return c
}

// Response represents a canned HTTP response with a status code, a body and
// headers. The body is either a string or a map-like value; it is stored
// exactly as given, nothing is serialized here.
type Response struct {
	code    StatusCode
	body    any
	headers Headers
}

// Option configures a Response while it is being built.
//
// Options stand in for the optional body and headers arguments of the
// constructors: with no options the body is an empty string and the headers
// are empty.
type Option func(*Response)

// WithBody sets the response body.
func WithBody(body any) Option {
	return func(r *Response) {
		r.body = body
	}
}

// WithHeaders copies the given headers into the response.
func WithHeaders(headers Headers) Option {
	return func(r *Response) {
		for k, v := range headers {
			r.headers[k] = v
		}
	}
}

// WithHeader sets a single header on the response.
func WithHeader(key, value string) Option {
	return func(r *Response) {
		r.headers[key] = value
	}
}

// New creates a Response with the given status code.
//
// Any code is accepted as is. HTTP semantics are not checked.
func New(code StatusCode, opts ...Option) Response {
	res := Response{
		code:    code,
		body:    "",
		headers: make(Headers),
	}

	for _, opt := range opts {
		opt(&res)
	}

	return res
}

// Code returns the status code.
func (r Response) Code() StatusCode {
	return r.code
}

// Body returns the body exactly as it was given to the constructor.
func (r Response) Body() any {
	return r.body
}

// Headers returns a copy of the headers. Mutating the copy does not touch
// the response.
func (r Response) Headers() Headers {
	return r.headers.clone()
}

const defaultBody = `{"message": "This is a default response from FakeServer"}`

// Default returns the response served when the caller configured nothing
// else: a 200 with a small JSON body.
func Default() Response {
	return New(StatusOk, WithBody(defaultBody))
}
