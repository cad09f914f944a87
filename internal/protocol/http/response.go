package http

import (
	"bufio"
	"fmt"
	"io"
)

// bytesPerChunk is the fixed chunk size for response bodies.
const bytesPerChunk = 500

// responseHeaders are sent with every response. Emission order follows map
// iteration and is not part of the contract.
var responseHeaders = map[string]string{
	"Connection":        "keep-alive",
	"Transfer-Encoding": "chunked",
}

// WriteResponse writes a complete response to w: the status line, the fixed
// header set, and the body framed with chunked transfer-encoding. The body
// is always chunked regardless of size; an empty body emits only the
// terminal zero-size marker. The stream is flushed after the terminal
// marker and any write or flush failure propagates to the caller.
//
// The response head uses bare LF line endings while the chunk framing uses
// CRLF, matching the wire format this server has always produced.
func WriteResponse(w io.Writer, status Status, body []byte) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "HTTP/1.1 %s", status); err != nil {
		return fmt.Errorf("write status line: %w", err)
	}
	for name, value := range responseHeaders {
		if _, err := fmt.Fprintf(bw, "\n%s: %s", name, value); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if _, err := bw.WriteString("\n\n"); err != nil {
		return fmt.Errorf("write head terminator: %w", err)
	}

	for offset := 0; offset < len(body); offset += bytesPerChunk {
		end := offset + bytesPerChunk
		if end > len(body) {
			end = len(body)
		}
		chunk := body[offset:end]

		if _, err := fmt.Fprintf(bw, "%x\r\n", len(chunk)); err != nil {
			return fmt.Errorf("write chunk size: %w", err)
		}
		if _, err := bw.Write(chunk); err != nil {
			return fmt.Errorf("write chunk: %w", err)
		}
		if _, err := bw.WriteString("\r\n"); err != nil {
			return fmt.Errorf("write chunk terminator: %w", err)
		}
	}

	if _, err := bw.WriteString("0\r\n\r\n"); err != nil {
		return fmt.Errorf("write final chunk: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush response: %w", err)
	}

	return nil
}
