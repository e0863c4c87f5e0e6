// Package contentrange decodes the value of an HTTP Content-Range
// response header into a typed representation, for clients and proxies
// that resume partial downloads, validate range responses, or report
// total resource size.
package contentrange

// ContentRange is the decoded value of a Content-Range response header.
// It is one of Bytes, UnboundBytes, Unsatisfied or Unknown.
type ContentRange interface {
	isContentRange()
}

// Bytes is a fully specified satisfied range (status 206): bytes
// FirstByte through LastByte inclusive, out of a resource of
// CompleteLength bytes.
type Bytes struct {
	// FirstByte is the offset of the first byte in the range (starting at 0).
	FirstByte uint64

	// LastByte is the offset of the last byte in the range, inclusive.
	LastByte uint64

	// CompleteLength is the total size of the resource.
	CompleteLength uint64
}

// UnboundBytes is a satisfied range (status 206) whose total resource
// length the server reported as unknown ("*").
type UnboundBytes struct {
	FirstByte uint64
	LastByte  uint64
}

// Unsatisfied reports that the requested range could not be satisfied
// (status 416); only the total resource length is known.
type Unsatisfied struct {
	CompleteLength uint64
}

// Unknown is the legacy sentinel for a header that looks like
// Content-Range but could not be parsed. Only ParseLegacy returns it;
// Parse signals failure through its error instead.
type Unknown struct{}

func (Bytes) isContentRange()        {}
func (UnboundBytes) isContentRange() {}
func (Unsatisfied) isContentRange()  {}
func (Unknown) isContentRange()      {}

// Length returns the number of bytes the range covers.
func (b Bytes) Length() uint64 {
	return b.LastByte - b.FirstByte + 1
}

// Length returns the number of bytes the range covers.
func (u UnboundBytes) Length() uint64 {
	return u.LastByte - u.FirstByte + 1
}
