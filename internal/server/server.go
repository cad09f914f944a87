package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"shttpd/internal/logger"
	"shttpd/internal/resolver"
	"shttpd/pkg/config"
)

// Server serves HTTP/1.1 requests from the filesystem over raw TCP.
type Server struct {
	bindAddress string
	resolver    *resolver.Resolver

	// mu guards listener, which Serve publishes after binding while Addr
	// and Stop may be called from other goroutines.
	mu       sync.Mutex
	listener net.Listener
}

// New creates a server from the given configuration.
func New(cfg *config.Config) *Server {
	return &Server{
		bindAddress: cfg.Server.BindAddress,
		resolver:    resolver.New(cfg.Server.Root),
	}
}

// Serve binds the configured address and accepts connections until the
// context is cancelled or Stop is called. Each connection is served on its
// own goroutine; there is no cap on concurrent connections.
func (s *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bindAddress)
	if err != nil {
		return fmt.Errorf("failed to start listener: %w", err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	if addr, ok := listener.Addr().(*net.TCPAddr); ok {
		logger.Info("Starting http server on %s:%d", addr.IP, addr.Port)
	}
	logger.Info("Serving filesystem root %s", s.resolver.Root())

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		tcpConn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				// Stop() closed the listener out from under us.
				return nil
			}
			logger.Debug("Error accepting connection: %v", err)
			continue
		}

		conn := s.newConn(tcpConn)
		go conn.serve(ctx)
	}
}

func (s *Server) newConn(tcpConn net.Conn) *conn {
	return &conn{
		server: s,
		conn:   tcpConn,
	}
}

// Addr returns the bound listener address, or nil before Serve has bound it.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop closes the listener, unblocking Serve.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}
