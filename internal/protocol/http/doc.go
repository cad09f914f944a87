// Package http implements the wire codec for the server's HTTP/1.1 subset:
// decoding a request head from a single fixed-size read and encoding
// responses with chunked transfer framing.
//
// The codec is deliberately hand-rolled; it does not aim for HTTP/1.1
// completeness. See the decode and encode functions for the exact subset.
package http
