package server

import (
	"context"
	"errors"
	"net"

	"shttpd/internal/logger"
	httpproto "shttpd/internal/protocol/http"
	"shttpd/internal/resolver"
)

// retrievalMethod is the only method served. Matching is exact and
// case-sensitive.
const retrievalMethod = "GET"

type conn struct {
	server *Server
	conn   net.Conn
}

// serve runs the request loop for one connection: read a request, dispatch,
// respond, log, repeat. A fresh Request is parsed for every cycle; nothing
// survives between cycles except the connection itself. The loop ends on
// the empty-method sentinel or a transport failure.
func (c *conn) serve(ctx context.Context) {
	defer c.conn.Close()
	logger.Debug("New connection from %s", c.conn.RemoteAddr())

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		req, err := httpproto.ReadRequest(c.conn)
		if err != nil {
			if !errors.Is(err, httpproto.ErrInvalidEncoding) {
				logger.Error("Got error: %v", err)
				return
			}
			// The head was unreadable but the transport is fine: answer 400
			// and keep the connection open for the next request.
			if err := httpproto.WriteResponse(c.conn, httpproto.StatusBadRequest, nil); err != nil {
				logger.Error("Got error: %v", err)
				return
			}
			continue
		}

		if req.Method == "" {
			// Sentinel: the peer closed or stopped speaking HTTP.
			return
		}

		if err := c.dispatch(ctx, req); err != nil {
			logger.Error("Got error: %v", err)
			return
		}

		logger.Info("%-6s %-35s %s", req.Method, req.Path, req.ResponseCode)
	}
}

// dispatch routes a parsed request and writes the response, recording the
// sent status on the request. A returned error means the transport failed
// and the connection must close; per-request failures are translated into
// HTTP statuses instead.
func (c *conn) dispatch(ctx context.Context, req *httpproto.Request) error {
	if req.Method != retrievalMethod {
		return c.respond(req, httpproto.StatusNotImplemented, []byte("Not Implemented"))
	}

	res, err := c.server.resolver.Resolve(ctx, req.Path)
	if err != nil {
		return err
	}

	switch res.Kind {
	case resolver.KindFile, resolver.KindDirectory:
		return c.respond(req, httpproto.StatusOK, res.Body)
	default:
		return c.respond(req, httpproto.StatusNotFound, []byte("Not Found"))
	}
}

func (c *conn) respond(req *httpproto.Request, status httpproto.Status, body []byte) error {
	if err := httpproto.WriteResponse(c.conn, status, body); err != nil {
		return err
	}
	req.ResponseCode = status
	return nil
}
