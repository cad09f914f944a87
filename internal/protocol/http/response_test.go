package http

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splitResponse separates the head from the chunked body at the blank line.
func splitResponse(t *testing.T, raw string) (head string, body string) {
	t.Helper()
	idx := strings.Index(raw, "\n\n")
	require.GreaterOrEqual(t, idx, 0, "response has no head terminator")
	return raw[:idx], raw[idx+2:]
}

// dechunk reassembles a chunked body, checking the framing as it goes.
// It returns the payload and the sum of the declared chunk sizes.
func dechunk(t *testing.T, body string) (string, int) {
	t.Helper()

	var payload strings.Builder
	declared := 0
	for {
		idx := strings.Index(body, "\r\n")
		require.GreaterOrEqual(t, idx, 0, "chunk size line not terminated")

		size, err := strconv.ParseInt(body[:idx], 16, 32)
		require.NoError(t, err, "chunk size %q is not hex", body[:idx])
		body = body[idx+2:]

		if size == 0 {
			require.Equal(t, "\r\n", body, "terminal chunk not followed by CRLF")
			return payload.String(), declared
		}

		require.GreaterOrEqual(t, len(body), int(size)+2, "chunk shorter than declared")
		payload.WriteString(body[:size])
		declared += int(size)
		require.Equal(t, "\r\n", body[size:size+2], "chunk data not terminated")
		body = body[size+2:]
	}
}

func TestWriteResponse(t *testing.T) {
	t.Run("WritesStatusLineAndFixedHeaders", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteResponse(&buf, StatusOK, nil))

		head, _ := splitResponse(t, buf.String())
		assert.True(t, strings.HasPrefix(head, "HTTP/1.1 200 OK"))
		// Header order follows map iteration, so match each line on its own.
		assert.Contains(t, head, "\nConnection: keep-alive")
		assert.Contains(t, head, "\nTransfer-Encoding: chunked")
	})

	t.Run("EmptyBodyEmitsOnlyTerminalMarker", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteResponse(&buf, StatusNotFound, nil))

		_, body := splitResponse(t, buf.String())
		assert.Equal(t, "0\r\n\r\n", body)
	})

	t.Run("SmallBodyFitsOneChunk", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteResponse(&buf, StatusOK, []byte("hi")))

		_, body := splitResponse(t, buf.String())
		assert.Equal(t, "2\r\nhi\r\n0\r\n\r\n", body)
	})

	t.Run("LargeBodySplitsIntoFixedChunks", func(t *testing.T) {
		payload := bytes.Repeat([]byte("x"), 1200)

		var buf bytes.Buffer
		require.NoError(t, WriteResponse(&buf, StatusOK, payload))

		_, body := splitResponse(t, buf.String())
		assert.True(t, strings.HasPrefix(body, "1f4\r\n"), "first chunk size should be 500 in lowercase hex")

		got, declared := dechunk(t, body)
		assert.Equal(t, string(payload), got)
		assert.Equal(t, len(payload), declared)
	})

	t.Run("ExactMultipleEmitsOnlyFullChunks", func(t *testing.T) {
		payload := bytes.Repeat([]byte("y"), 1000)

		var buf bytes.Buffer
		require.NoError(t, WriteResponse(&buf, StatusOK, payload))

		_, body := splitResponse(t, buf.String())
		got, declared := dechunk(t, body)
		assert.Equal(t, string(payload), got)
		assert.Equal(t, 1000, declared)
		// Two full chunks and the terminal marker, nothing in between.
		assert.Equal(t, 2, strings.Count(body, "1f4\r\n"))
		assert.True(t, strings.HasSuffix(body, "\r\n0\r\n\r\n"))
	})

	t.Run("BodyBytesArePreservedExactly", func(t *testing.T) {
		payload := []byte{0x00, 0x01, 0xff, 'a', '\r', '\n', 0x7f}

		var buf bytes.Buffer
		require.NoError(t, WriteResponse(&buf, StatusOK, payload))

		_, body := splitResponse(t, buf.String())
		got, _ := dechunk(t, body)
		assert.Equal(t, payload, []byte(got))
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "200 OK", StatusOK.String())
	assert.Equal(t, "400 Bad Request", StatusBadRequest.String())
	assert.Equal(t, "404 Not Found", StatusNotFound.String())
	assert.Equal(t, "501 Not Implemented", StatusNotImplemented.String())
}
