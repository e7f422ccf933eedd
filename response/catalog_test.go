package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var constructors = []struct {
	name string
	fn   func(...Option) Response
	code StatusCode
}{
	{"ok", Ok, 200},
	{"created", Created, 201},
	{"accepted", Accepted, 202},
	{"non_authoritative_information", NonAuthoritativeInformation, 203},
	{"no_content", NoContent, 204},
	{"reset_content", ResetContent, 205},
	{"partial_content", PartialContent, 206},
	{"multi_status", MultiStatus, 207},
	{"already_reported", AlreadyReported, 208},
	{"im_used", IMUsed, 226},
	{"bad_request", BadRequest, 400},
	{"unauthorized", Unauthorized, 401},
	{"payment_required", PaymentRequired, 402},
	{"forbidden", Forbidden, 403},
	{"not_found", NotFound, 404},
	{"method_not_allowed", MethodNotAllowed, 405},
	{"not_acceptable", NotAcceptable, 406},
	{"proxy_authentication_required", ProxyAuthenticationRequired, 407},
	{"request_timeout", RequestTimeout, 408},
	{"conflict", Conflict, 409},
	{"gone", Gone, 410},
	{"length_required", LengthRequired, 411},
	{"precondition_failed", PreconditionFailed, 412},
	{"payload_too_large", PayloadTooLarge, 413},
	{"uri_too_long", URITooLong, 414},
	{"unsupported_media_type", UnsupportedMediaType, 415},
	{"expectation_failed", ExpectationFailed, 417},
	{"im_a_teapot", ImATeapot, 418},
	{"misdirected_request", MisdirectedRequest, 421},
	{"unprocessable_entity", UnprocessableEntity, 422},
	{"locked", Locked, 423},
	{"failed_dependency", FailedDependency, 424},
	{"upgrade_required", UpgradeRequired, 426},
	{"precondition_required", PreconditionRequired, 428},
	{"too_many_requests", TooManyRequests, 429},
	{"request_header_fields_too_large", RequestHeaderFieldsTooLarge, 431},
	{"unavailable_for_legal_reasons", UnavailableForLegalReasons, 451},
	{"internal_server_error", InternalServerError, 500},
	{"not_implemented", NotImplemented, 501},
	{"bad_gateway", BadGateway, 502},
	{"service_unavailable", ServiceUnavailable, 503},
	{"gateway_timeout", GatewayTimeout, 504},
	{"http_version_not_supported", HTTPVersionNotSupported, 505},
	{"variant_also_negotiates", VariantAlsoNegotiates, 506},
	{"insufficient_storage", InsufficientStorage, 507},
	{"loop_detected", LoopDetected, 508},
	{"not_extended", NotExtended, 510},
	{"network_authentication_required", NetworkAuthenticationRequired, 511},
}

func TestConstructors(t *testing.T) {
	for _, c := range constructors {
		t.Run(c.name, func(t *testing.T) {
			res := c.fn()
			assert.Equal(t, c.code, res.Code())
			assert.Equal(t, "", res.Body())
			assert.Empty(t, res.Headers())

			res = c.fn(WithBody("body"), WithHeader("X-Trace", "1"))
			assert.Equal(t, c.code, res.Code())
			assert.Equal(t, "body", res.Body())
			assert.Equal(t, Headers{"X-Trace": "1"}, res.Headers())
		})
	}
}

func TestAll4xx(t *testing.T) {
	want := []StatusCode{
		400, 401, 402, 403, 404, 405, 406, 407, 408, 409, 410, 411, 412,
		413, 414, 415, 417, 418, 421, 422, 423, 424, 426, 428, 429, 431, 451,
	}

	got := All4xx()
	assert.Equal(t, 27, len(got))
	for i, res := range got {
		assert.Equal(t, want[i], res.Code())
		assert.Equal(t, "", res.Body())
		assert.Empty(t, res.Headers())
	}
}

func TestAll5xx(t *testing.T) {
	want := []StatusCode{500, 501, 502, 503, 504, 505, 506, 507, 508, 510, 511}

	got := All5xx()
	assert.Equal(t, 11, len(got))
	for i, res := range got {
		assert.Equal(t, want[i], res.Code())
		assert.Equal(t, "", res.Body())
		assert.Empty(t, res.Headers())
	}
}

func TestAllIndependence(t *testing.T) {
	// Two calls must not hand out views of the same backing values.
	a := All5xx()
	b := All5xx()
	assert.Equal(t, a, b)

	h := a[0].Headers()
	h["X-Trace"] = "1"
	assert.Empty(t, b[0].Headers())
}

func TestFromName(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		for _, c := range constructors {
			res := FromName(c.name)
			assert.Equal(t, c.code, res.Code())
		}
	})

	t.Run("With options", func(t *testing.T) {
		res := FromName("not_found", WithBody("missing"), WithHeaders(Headers{"X-Trace": "1"}))
		assert.Equal(t, StatusNotFound, res.Code())
		assert.Equal(t, "missing", res.Body())
		assert.Equal(t, Headers{"X-Trace": "1"}, res.Headers())
	})

	t.Run("Unknown name falls back to default", func(t *testing.T) {
		res := FromName("teapot_found")
		assert.Equal(t, Default(), res)
	})
}
