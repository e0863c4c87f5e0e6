package contentrange

import (
	"net/http"

	"github.com/pkg/errors"
)

// HeaderName is the canonical name of the Content-Range response header.
const HeaderName = "Content-Range"

// ParseHeader decodes the Content-Range header of an HTTP response
// header map. An absent header is reported as a malformed header.
func ParseHeader(h http.Header) (ContentRange, error) {
	value := h.Get(HeaderName)
	if value == "" {
		return nil, errors.Wrap(ErrMalformed, "header not present")
	}
	return Parse(value)
}
