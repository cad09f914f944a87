package http

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// readBufferSize caps the request head at a single read. Heads larger than
// this are silently truncated; the codec never loops for more bytes.
const readBufferSize = 1024

// ErrInvalidEncoding reports a request buffer that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("request is not valid UTF-8")

// Request is one parsed request cycle.
//
// An empty Method is the sentinel for "no request parsed": the peer closed
// the connection or the first line did not form a request line. Header keys
// are stored raw, without case folding; duplicate header lines overwrite.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string

	// ResponseCode is the status actually sent back, recorded for logging.
	ResponseCode Status
}

// ReadRequest reads one request head from r.
//
// It performs exactly one read into a fixed-size buffer. A zero-byte read or
// an empty buffer yields the sentinel request. A malformed first line (not
// exactly three space-separated tokens) also yields the sentinel rather than
// an error. Header lines that do not split on a colon are skipped; values
// are trimmed of surrounding whitespace. The version token is parsed but
// discarded.
func ReadRequest(r io.Reader) (*Request, error) {
	req := &Request{Headers: make(map[string]string)}

	buf := make([]byte, readBufferSize)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read request: %w", err)
	}
	if n == 0 {
		return req, nil
	}

	if !utf8.Valid(buf[:n]) {
		return nil, ErrInvalidEncoding
	}

	raw := strings.TrimRight(string(buf[:n]), "\x00")
	if raw == "" {
		return req, nil
	}

	lines := strings.Split(raw, "\n")

	first := strings.TrimSuffix(lines[0], "\r")
	words := strings.Split(first, " ")
	if len(words) != 3 {
		return req, nil
	}

	req.Method = words[0]
	req.Path = words[1]
	// words[2] is the protocol version; no validation or negotiation.

	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		req.Headers[parts[0]] = strings.TrimSpace(parts[1])
	}

	return req, nil
}
