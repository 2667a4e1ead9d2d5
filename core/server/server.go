// Package server exposes the converter over a small JSON HTTP API.
//
//	POST /api/convert  {"type":"text|html","data":"..."}
//	POST /api/paste    {"text/html":"...","text/plain":"..."}
//	GET  /healthz
//
// Both POST endpoints answer {"markdown","path","already_markdown"}.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gaurav-prasanna/pastemark/core"
	"github.com/gaurav-prasanna/pastemark/core/clipboard"
	"github.com/gaurav-prasanna/pastemark/core/convert"
)

const (
	msgEmptyInput  = "Please enter some text."
	msgInvalidBody = "Request body must be a JSON object."

	// Bodies are bounded in bytes before the character ceiling is checked.
	// UTF-8 needs at most 4 bytes per character, plus room for JSON framing.
	maxBytesPerChar   = 4
	bodyOverhead      = 64 << 10
	unboundedBodySize = 32 << 20
)

// Options configures a Server.
type Options struct {
	// MaxInputChars rejects longer input with 413; 0 disables the check.
	MaxInputChars   int
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

// Server serves conversion requests.
type Server struct {
	conv    *convert.Converter
	capture *clipboard.Capture
	opts    Options
	log     *slog.Logger
	handler http.Handler
}

// New builds a Server around conv. Paste payloads are captured with capture.
func New(conv *convert.Converter, capture *clipboard.Capture, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 15 * time.Second
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{conv: conv, capture: capture, opts: opts, log: opts.Logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/convert", s.handleConvert)
	mux.HandleFunc("POST /api/paste", s.handlePaste)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.handler = securityHeaders(loggingHandler(s.log, mux))
	return s
}

// Handler returns the HTTP handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		ReadTimeout:       s.opts.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var in core.InputData
	if !s.decode(w, r, &in) {
		return
	}
	s.respond(w, in)
}

func (s *Server) handlePaste(w http.ResponseWriter, r *http.Request) {
	var payload clipboard.Payload
	if !s.decode(w, r, &payload) {
		return
	}

	in, ok := s.capture.FromPaste(payload)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgEmptyInput})
		return
	}
	s.respond(w, in)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

// decode reads a bounded JSON body into v, answering the request itself
// when that fails.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes())

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: s.tooLargeMessage()})
			return false
		}
		s.log.Debug("rejecting request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
		return false
	}
	return true
}

// respond enforces the input rules, converts in and writes the result.
func (s *Server) respond(w http.ResponseWriter, in core.InputData) {
	if err := core.CheckInput(in.Data, s.opts.MaxInputChars); err != nil {
		switch {
		case errors.Is(err, core.ErrInputTooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: s.tooLargeMessage()})
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgEmptyInput})
		}
		return
	}

	writeJSON(w, http.StatusOK, s.conv.Result(in))
}

func (s *Server) maxBodyBytes() int64 {
	if s.opts.MaxInputChars <= 0 {
		return unboundedBodySize
	}
	return int64(s.opts.MaxInputChars)*maxBytesPerChar + bodyOverhead
}

func (s *Server) tooLargeMessage() string {
	return fmt.Sprintf("Text exceeds %s characters limit.", groupDigits(s.opts.MaxInputChars))
}

// groupDigits formats n with comma thousands separators.
func groupDigits(n int) string {
	digits := strconv.Itoa(n)
	if len(digits) <= 3 {
		return digits
	}
	var out []byte
	lead := len(digits) % 3
	if lead > 0 {
		out = append(out, digits[:lead]...)
	}
	for i := lead; i < len(digits); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
