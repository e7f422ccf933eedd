package response

import (
	"github.com/Murilinho145SG/fakeserver/log"
)

// entry binds a snake_case reason phrase to its status code. The slices
// below fix the catalog order that All4xx, All5xx and FromName rely on.
type entry struct {
	name string
	code StatusCode
}

var (
	entries2xx = []entry{
		{"ok", StatusOk},
		{"created", StatusCreated},
		{"accepted", StatusAccepted},
		{"non_authoritative_information", StatusNonAuthoritativeInformation},
		{"no_content", StatusNoContent},
		{"reset_content", StatusResetContent},
		{"partial_content", StatusPartialContent},
		{"multi_status", StatusMultiStatus},
		{"already_reported", StatusAlreadyReported},
		{"im_used", StatusIMUsed},
	}

	entries4xx = []entry{
		{"bad_request", StatusBadRequest},
		{"unauthorized", StatusUnauthorized},
		{"payment_required", StatusPaymentRequired},
		{"forbidden", StatusForbidden},
		{"not_found", StatusNotFound},
		{"method_not_allowed", StatusMethodNotAllowed},
		{"not_acceptable", StatusNotAcceptable},
		{"proxy_authentication_required", StatusProxyAuthenticationRequired},
		{"request_timeout", StatusRequestTimeout},
		{"conflict", StatusConflict},
		{"gone", StatusGone},
		{"length_required", StatusLengthRequired},
		{"precondition_failed", StatusPreconditionFailed},
		{"payload_too_large", StatusPayloadTooLarge},
		{"uri_too_long", StatusURITooLong},
		{"unsupported_media_type", StatusUnsupportedMediaType},
		{"expectation_failed", StatusExpectationFailed},
		{"im_a_teapot", StatusImATeapot},
		{"misdirected_request", StatusMisdirectedRequest},
		{"unprocessable_entity", StatusUnprocessableEntity},
		{"locked", StatusLocked},
		{"failed_dependency", StatusFailedDependency},
		{"upgrade_required", StatusUpgradeRequired},
		{"precondition_required", StatusPreconditionRequired},
		{"too_many_requests", StatusTooManyRequests},
		{"request_header_fields_too_large", StatusRequestHeaderFieldsTooLarge},
		{"unavailable_for_legal_reasons", StatusUnavailableForLegalReasons},
	}

	entries5xx = []entry{
		{"internal_server_error", StatusInternalServerError},
		{"not_implemented", StatusNotImplemented},
		{"bad_gateway", StatusBadGateway},
		{"service_unavailable", StatusServiceUnavailable},
		{"gateway_timeout", StatusGatewayTimeout},
		{"http_version_not_supported", StatusHTTPVersionNotSupported},
		{"variant_also_negotiates", StatusVariantAlsoNegotiates},
		{"insufficient_storage", StatusInsufficientStorage},
		{"loop_detected", StatusLoopDetected},
		{"not_extended", StatusNotExtended},
		{"network_authentication_required", StatusNetworkAuthenticationRequired},
	}
)

// 2xx constructors

func Ok(opts ...Option) Response { return New(StatusOk, opts...) }

func Created(opts ...Option) Response { return New(StatusCreated, opts...) }

func Accepted(opts ...Option) Response { return New(StatusAccepted, opts...) }

func NonAuthoritativeInformation(opts ...Option) Response {
	return New(StatusNonAuthoritativeInformation, opts...)
}

func NoContent(opts ...Option) Response { return New(StatusNoContent, opts...) }

func ResetContent(opts ...Option) Response { return New(StatusResetContent, opts...) }

func PartialContent(opts ...Option) Response { return New(StatusPartialContent, opts...) }

func MultiStatus(opts ...Option) Response { return New(StatusMultiStatus, opts...) }

func AlreadyReported(opts ...Option) Response { return New(StatusAlreadyReported, opts...) }

func IMUsed(opts ...Option) Response { return New(StatusIMUsed, opts...) }

// 4xx constructors

func BadRequest(opts ...Option) Response { return New(StatusBadRequest, opts...) }

func Unauthorized(opts ...Option) Response { return New(StatusUnauthorized, opts...) }

func PaymentRequired(opts ...Option) Response { return New(StatusPaymentRequired, opts...) }

func Forbidden(opts ...Option) Response { return New(StatusForbidden, opts...) }

func NotFound(opts ...Option) Response { return New(StatusNotFound, opts...) }

func MethodNotAllowed(opts ...Option) Response { return New(StatusMethodNotAllowed, opts...) }

func NotAcceptable(opts ...Option) Response { return New(StatusNotAcceptable, opts...) }

func ProxyAuthenticationRequired(opts ...Option) Response {
	return New(StatusProxyAuthenticationRequired, opts...)
}

func RequestTimeout(opts ...Option) Response { return New(StatusRequestTimeout, opts...) }

func Conflict(opts ...Option) Response { return New(StatusConflict, opts...) }

func Gone(opts ...Option) Response { return New(StatusGone, opts...) }

func LengthRequired(opts ...Option) Response { return New(StatusLengthRequired, opts...) }

func PreconditionFailed(opts ...Option) Response { return New(StatusPreconditionFailed, opts...) }

func PayloadTooLarge(opts ...Option) Response { return New(StatusPayloadTooLarge, opts...) }

func URITooLong(opts ...Option) Response { return New(StatusURITooLong, opts...) }

func UnsupportedMediaType(opts ...Option) Response {
	return New(StatusUnsupportedMediaType, opts...)
}

func ExpectationFailed(opts ...Option) Response { return New(StatusExpectationFailed, opts...) }

func ImATeapot(opts ...Option) Response { return New(StatusImATeapot, opts...) }

func MisdirectedRequest(opts ...Option) Response { return New(StatusMisdirectedRequest, opts...) }

func UnprocessableEntity(opts ...Option) Response {
	return New(StatusUnprocessableEntity, opts...)
}

func Locked(opts ...Option) Response { return New(StatusLocked, opts...) }

func FailedDependency(opts ...Option) Response { return New(StatusFailedDependency, opts...) }

func UpgradeRequired(opts ...Option) Response { return New(StatusUpgradeRequired, opts...) }

func PreconditionRequired(opts ...Option) Response {
	return New(StatusPreconditionRequired, opts...)
}

func TooManyRequests(opts ...Option) Response { return New(StatusTooManyRequests, opts...) }

func RequestHeaderFieldsTooLarge(opts ...Option) Response {
	return New(StatusRequestHeaderFieldsTooLarge, opts...)
}

func UnavailableForLegalReasons(opts ...Option) Response {
	return New(StatusUnavailableForLegalReasons, opts...)
}

// 5xx constructors

func InternalServerError(opts ...Option) Response {
	return New(StatusInternalServerError, opts...)
}

func NotImplemented(opts ...Option) Response { return New(StatusNotImplemented, opts...) }

func BadGateway(opts ...Option) Response { return New(StatusBadGateway, opts...) }

func ServiceUnavailable(opts ...Option) Response { return New(StatusServiceUnavailable, opts...) }

func GatewayTimeout(opts ...Option) Response { return New(StatusGatewayTimeout, opts...) }

func HTTPVersionNotSupported(opts ...Option) Response {
	return New(StatusHTTPVersionNotSupported, opts...)
}

func VariantAlsoNegotiates(opts ...Option) Response {
	return New(StatusVariantAlsoNegotiates, opts...)
}

func InsufficientStorage(opts ...Option) Response {
	return New(StatusInsufficientStorage, opts...)
}

func LoopDetected(opts ...Option) Response { return New(StatusLoopDetected, opts...) }

func NotExtended(opts ...Option) Response { return New(StatusNotExtended, opts...) }

func NetworkAuthenticationRequired(opts ...Option) Response {
	return New(StatusNetworkAuthenticationRequired, opts...)
}

func all(entries []entry) []Response {
	out := make([]Response, len(entries))
	for i, e := range entries {
		out[i] = New(e.code)
	}

	return out
}

// All4xx returns one default-constructed Response per client error code in
// the catalog, in catalog order.
func All4xx() []Response {
	return all(entries4xx)
}

// All5xx returns one default-constructed Response per server error code in
// the catalog, in catalog order.
func All5xx() []Response {
	return all(entries5xx)
}

// FromName builds a Response from the snake_case reason phrase of a catalog
// entry (e.g. "not_found").
//
// An unknown name logs a warning and falls back to Default.
func FromName(name string, opts ...Option) Response {
	for _, entries := range [][]entry{entries2xx, entries4xx, entries5xx} {
		for _, e := range entries {
			if e.name == name {
				return New(e.code, opts...)
			}
		}
	}

	log.Warn("Unknown status name", name)
	return Default()
}
