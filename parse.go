package contentrange

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Unit token plus its single-space separator, per RFC 7233 section 4.2.
// No other units are recognized.
const bytesPrefix = "bytes "

// ErrMalformed is returned by Parse for any input that does not match
// the Content-Range grammar. Callers can test for it with errors.Is
// (or pkg/errors Cause); the wrap text only locates the failure.
var ErrMalformed = errors.New("malformed Content-Range header")

// Parse decodes the value of a Content-Range response header, e.g.
// "bytes 0-9/30".
//
// The grammar is strict: the unit must be the literal "bytes" followed
// by a single space, and no other whitespace is tolerated anywhere.
// Valid forms are "bytes first-last/total", "bytes first-last/*" and
// "bytes */total".
func Parse(header string) (ContentRange, error) {
	if !strings.HasPrefix(header, bytesPrefix) {
		return nil, errors.Wrap(ErrMalformed, "missing 'bytes ' unit prefix")
	}

	rangeSpec, lengthSpec, found := strings.Cut(header[len(bytesPrefix):], "/")
	if !found {
		return nil, errors.Wrap(ErrMalformed, "missing '/' separator")
	}

	if rangeSpec == "*" {
		// Unsatisfied range: only the total is reported. "*/*" would
		// convey nothing at all and is rejected.
		if lengthSpec == "*" {
			return nil, errors.Wrap(ErrMalformed, "range and length both unknown")
		}
		completeLength, err := parseUint(lengthSpec, "complete length")
		if err != nil {
			return nil, err
		}
		return Unsatisfied{CompleteLength: completeLength}, nil
	}

	firstStr, lastStr, found := strings.Cut(rangeSpec, "-")
	if !found {
		return nil, errors.Wrap(ErrMalformed, "missing '-' in byte range")
	}

	firstByte, err := parseUint(firstStr, "first byte")
	if err != nil {
		return nil, err
	}
	lastByte, err := parseUint(lastStr, "last byte")
	if err != nil {
		return nil, err
	}
	if firstByte > lastByte {
		return nil, errors.Wrapf(ErrMalformed, "inverted byte range %d-%d", firstByte, lastByte)
	}

	if lengthSpec == "*" {
		return UnboundBytes{FirstByte: firstByte, LastByte: lastByte}, nil
	}

	completeLength, err := parseUint(lengthSpec, "complete length")
	if err != nil {
		return nil, err
	}
	if lastByte >= completeLength {
		return nil, errors.Wrapf(ErrMalformed, "complete length %d does not exceed last byte %d", completeLength, lastByte)
	}

	return Bytes{FirstByte: firstByte, LastByte: lastByte, CompleteLength: completeLength}, nil
}

// ParseBytes is Parse for header values held as raw bytes.
func ParseBytes(header []byte) (ContentRange, error) {
	return Parse(string(header))
}

// ParseLegacy is the legacy total form of Parse: instead of returning
// an error it returns Unknown for any input Parse would reject.
//
// Deprecated: use Parse, which signals failure explicitly.
func ParseLegacy(header string) ContentRange {
	result, err := Parse(header)
	if err != nil {
		return Unknown{}
	}
	return result
}

// parseUint parses an unsigned 64-bit decimal field. strconv rejects
// everything the grammar does: empty fields, signs, non-digit
// characters and overflow.
func parseUint(s string, field string) (uint64, error) {
	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "bad %s %q", field, s)
	}
	return value, nil
}
