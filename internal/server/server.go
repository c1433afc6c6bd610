// Package server exposes the declaration analyzer over HTTP/3.
package server

import (
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	http3 "github.com/quic-go/quic-go/http3"
	"golang.org/x/sync/singleflight"

	"github.com/orizon-lang/declcheck/internal/cli"
	"github.com/orizon-lang/declcheck/internal/pipeline"
	"github.com/orizon-lang/declcheck/internal/report"
)

// VersionHeader carries the server's tool version on every response.
const VersionHeader = "X-Declcheck-Version"

// maxSourceBytes bounds the request body.
const maxSourceBytes = 1 << 20

// AnalyzeRequest is the body of POST /v1/analyze.
type AnalyzeRequest struct {
	Filename string `json:"filename"`
	Source   string `json:"source"`
	Tokens   bool   `json:"tokens"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Handler serves the analysis API.
type Handler struct {
	opts   pipeline.Options
	logger *cli.Logger
	group  singleflight.Group
	mux    *http.ServeMux
}

// NewHandler returns a handler analysing with opts. logger may be nil.
func NewHandler(opts pipeline.Options, logger *cli.Logger) *Handler {
	h := &Handler{opts: opts, logger: logger, mux: http.NewServeMux()}
	h.mux.HandleFunc("POST /v1/analyze", h.analyze)
	h.mux.HandleFunc("GET /v1/version", h.version)
	h.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(VersionHeader, cli.Version)
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSourceBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	v, _, shared := h.group.Do(h.key(req), func() (interface{}, error) {
		rep := pipeline.Run(req.Filename, req.Source, h.opts)
		return report.FromReport(rep, req.Tokens), nil
	})
	res := v.(report.Result)

	if h.logger != nil {
		h.logger.Debug("analyze %q (%d bytes) passed=%v shared=%v", req.Filename, len(req.Source), res.Passed, shared)
	}
	writeJSON(w, http.StatusOK, res)
}

// key identifies requests whose results are interchangeable. The filename is
// part of it because positions in diagnostics carry it.
func (h *Handler) key(req AnalyzeRequest) string {
	sum := sha256.Sum256([]byte(req.Source))
	return strconv.FormatBool(h.opts.Policy.AllowIntegerWidening) + ":" +
		strconv.FormatBool(req.Tokens) + ":" + strconv.Quote(req.Filename) + ":" +
		hex.EncodeToString(sum[:])
}

func (h *Handler) version(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, cli.GetVersionInfo())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Server wraps the http3.Server lifecycle.
type Server struct {
	srv   *http3.Server
	pc    net.PacketConn
	addr  string
	close func() error
}

// New creates a server bound to addr with the given TLS config and handler.
func New(addr string, tlsCfg *tls.Config, h http.Handler) *Server {
	s := &http3.Server{Addr: addr, TLSConfig: tlsCfg, Handler: h}
	return &Server{srv: s, addr: addr}
}

// Start begins serving HTTP/3 and returns the bound address. An addr ending
// in ":0" picks an ephemeral UDP port.
func (s *Server) Start() (string, error) {
	var err error
	s.pc, err = net.ListenPacket("udp", s.addr)
	if err != nil {
		return "", err
	}
	realAddr := s.pc.LocalAddr().String()
	done := make(chan struct{})
	go func() {
		_ = s.srv.Serve(s.pc)
		close(done)
	}()
	s.close = func() error {
		err := s.srv.Close()
		_ = s.pc.Close()
		select {
		case <-done:
		case <-time.After(time.Second):
		}
		return err
	}
	return realAddr, nil
}

// Stop stops the server.
func (s *Server) Stop() error {
	if s.close != nil {
		return s.close()
	}
	return nil
}
