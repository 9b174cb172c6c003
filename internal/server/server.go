package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/example/go-fry-tts/internal/audio"
	"github.com/example/go-fry-tts/internal/config"
	"github.com/example/go-fry-tts/internal/pronounce"
	"github.com/example/go-fry-tts/internal/synth"
	"github.com/example/go-fry-tts/internal/text"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Normalizer tags and rewrites raw text.
type Normalizer interface {
	Tag(input string) []text.Token
	Rewrite(tok text.Token) string
	Normalize(input string) string
}

// Pronouncer looks words up in a pronunciation dictionary.
type Pronouncer interface {
	Lookup(word string) ([]pronounce.Sound, bool)
	PronounceText(text string) []pronounce.Pronunciation
}

// Synthesizer voices normalized text, emitting PCM chunk by chunk.
type Synthesizer interface {
	Format() audio.Format
	Stream(ctx context.Context, normalized string, emit func(pcm []int16) error) error
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes   int
	workers        int
	requestTimeout time.Duration
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		maxTextBytes:   4096,
		workers:        2,
		requestTimeout: 30 * time.Second,
		logger:         slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes for POST bodies.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithWorkers sets the maximum number of concurrent synthesis calls.
// Zero or less disables throttling.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRequestTimeout sets the per-request synthesis deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

type handler struct {
	norm  Normalizer
	dict  Pronouncer
	synth Synthesizer
	opts  options
	sem   chan struct{} // semaphore for worker pool
	log   *slog.Logger
}

// NewHandler returns an http.Handler that serves /health, POST /normalize,
// GET /pronounce and POST /synth.
func NewHandler(norm Normalizer, dict Pronouncer, syn Synthesizer, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		norm:  norm,
		dict:  dict,
		synth: syn,
		opts:  opts,
		log:   opts.logger,
	}
	if opts.workers > 0 {
		h.sem = make(chan struct{}, opts.workers)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/normalize", h.handleNormalize)
	mux.HandleFunc("/pronounce", h.handlePronounce)
	mux.HandleFunc("/synth", h.handleSynth)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: "ok", Version: buildVersion()})
}

type textRequest struct {
	Text string `json:"text"`
}

// bodyOverhead is the room left in a request body for JSON syntax and the
// non-text fields.
const bodyOverhead = 1024

// maxBodyBytes bounds a request body carrying up to maxText bytes of text.
// A text byte takes at most six bytes once JSON-escaped ("\u00XX").
func maxBodyBytes(maxText int) int64 {
	return int64(maxText)*6 + bodyOverhead
}

// decodeText reads a {"text": ...} body, enforcing the method and size limit.
// It writes the error response itself and reports whether the caller may go on.
func (h *handler) decodeText(w http.ResponseWriter, r *http.Request, dst any, textOf func() string) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes(h.opts.maxTextBytes))
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}

	raw := textOf()
	if raw == "" {
		writeError(w, http.StatusBadRequest, "text field is required")
		return false
	}

	if len(raw) > h.opts.maxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return false
	}

	return true
}

type spokenToken struct {
	Raw      string        `json:"raw"`
	Category text.Category `json:"category"`
	Spoken   string        `json:"spoken"`
}

type normalizeResponse struct {
	Text   string        `json:"text"`
	Tokens []spokenToken `json:"tokens"`
}

func (h *handler) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !h.decodeText(w, r, &req, func() string { return req.Text }) {
		return
	}

	input, err := text.CleanInput(req.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens := h.norm.Tag(input)
	resp := normalizeResponse{Tokens: make([]spokenToken, 0, len(tokens))}
	spoken := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		s := h.norm.Rewrite(tok)
		spoken = append(spoken, s)
		resp.Tokens = append(resp.Tokens, spokenToken{Raw: tok.Raw, Category: tok.Category, Spoken: s})
	}
	resp.Text = strings.Join(spoken, " ")

	writeJSON(w, http.StatusOK, resp)
}

type lookupResponse struct {
	Word   string            `json:"word"`
	Sounds []pronounce.Sound `json:"sounds"`
}

func (h *handler) handlePronounce(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	switch {
	case q.Get("word") != "":
		word := q.Get("word")
		sounds, ok := h.dict.Lookup(word)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no pronunciation for %q", word))
			return
		}
		writeJSON(w, http.StatusOK, lookupResponse{Word: word, Sounds: sounds})
	case q.Get("text") != "":
		if len(q.Get("text")) > h.opts.maxTextBytes {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
			return
		}
		writeJSON(w, http.StatusOK, h.dict.PronounceText(q.Get("text")))
	default:
		writeError(w, http.StatusBadRequest, "word or text query parameter is required")
	}
}

type synthRequest struct {
	Text string `json:"text"`
	// Raw skips normalization and spells the text as given.
	Raw    bool `json:"raw"`
	Stream bool `json:"stream"`
}

func (h *handler) handleSynth(w http.ResponseWriter, r *http.Request) {
	var req synthRequest
	if !h.decodeText(w, r, &req, func() string { return req.Text }) {
		return
	}

	input, err := text.CleanInput(req.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.Raw {
		input = h.norm.Normalize(input)
	}

	// Acquire a worker slot, honouring context cancellation while waiting.
	if h.sem != nil {
		select {
		case h.sem <- struct{}{}:
		case <-r.Context().Done():
			writeError(w, http.StatusServiceUnavailable, "request cancelled while waiting for worker")
			return
		}
		defer func() { <-h.sem }()
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.requestTimeout)
	defer cancel()

	if req.Stream {
		h.streamSynth(ctx, w, r, input)
		return
	}

	start := time.Now()
	var pcm []int16
	err = h.synth.Stream(ctx, input, func(chunk []int16) error {
		pcm = append(pcm, chunk...)
		return nil
	})
	durationMS := time.Since(start).Milliseconds()
	if err != nil {
		h.writeSynthError(w, r, err, len(req.Text), durationMS)
		return
	}

	wav, err := audio.EncodePCM16(pcm, h.synth.Format())
	if err != nil {
		h.writeSynthError(w, r, err, len(req.Text), durationMS)
		return
	}

	h.log.InfoContext(r.Context(), "synthesis complete",
		slog.Int("text_len", len(req.Text)),
		slog.Int("samples", len(pcm)),
		slog.Int64("duration_ms", durationMS),
		slog.Int("wav_bytes", len(wav)),
	)

	w.Header().Set("Content-Type", "audio/wav")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(wav)
}

// streamSynth writes a streaming WAV header followed by each chunk's PCM as
// soon as it is rendered. Errors after the header can only be logged.
func (h *handler) streamSynth(ctx context.Context, w http.ResponseWriter, r *http.Request, input string) {
	flusher, _ := w.(http.Flusher)
	start := time.Now()
	headerSent := false
	samples := 0

	err := h.synth.Stream(ctx, input, func(pcm []int16) error {
		if !headerSent {
			w.Header().Set("Content-Type", "audio/wav")
			w.WriteHeader(http.StatusOK)
			if _, err := audio.WriteWAVHeaderStreaming(w, h.synth.Format()); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
			headerSent = true
		}
		if _, err := audio.WritePCM16Samples(w, pcm); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
		samples += len(pcm)
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	durationMS := time.Since(start).Milliseconds()

	if err != nil {
		if !headerSent {
			h.writeSynthError(w, r, err, len(input), durationMS)
			return
		}
		h.log.ErrorContext(r.Context(), "synthesis stream aborted",
			slog.Int("samples", samples),
			slog.Int64("duration_ms", durationMS),
			slog.String("error", err.Error()),
		)
		return
	}

	h.log.InfoContext(r.Context(), "synthesis stream complete",
		slog.Int("text_len", len(input)),
		slog.Int("samples", samples),
		slog.Int64("duration_ms", durationMS),
	)
}

func (h *handler) writeSynthError(w http.ResponseWriter, r *http.Request, err error, textLen int, durationMS int64) {
	attrs := []slog.Attr{
		slog.Int("text_len", textLen),
		slog.Int64("duration_ms", durationMS),
		slog.String("error", err.Error()),
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		h.log.LogAttrs(r.Context(), slog.LevelWarn, "synthesis timed out", attrs...)
		writeError(w, http.StatusGatewayTimeout, "synthesis timed out")
	case errors.Is(err, synth.ErrNothingToSynthesize):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, synth.ErrUnsupportedLetter):
		h.log.LogAttrs(r.Context(), slog.LevelWarn, "synthesis rejected", attrs...)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.LogAttrs(r.Context(), slog.LevelError, "synthesis failed", attrs...)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server wires handler into net/http.Server with graceful shutdown
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful shutdown.
type Server struct {
	cfg             config.Config
	synth           *synth.Synthesizer
	log             *slog.Logger
	shutdownTimeout time.Duration
}

// New returns a Server for cfg. A nil syn is built from cfg on Start.
func New(cfg config.Config, syn *synth.Synthesizer) *Server {
	shutdown := 30 * time.Second
	if cfg.Server.ShutdownTimeout > 0 {
		shutdown = time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	}
	return &Server{
		cfg:             cfg,
		synth:           syn,
		log:             slog.Default(),
		shutdownTimeout: shutdown,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// WithLogger sets the logger used by the server and its handlers.
func (s *Server) WithLogger(l *slog.Logger) *Server {
	s.log = l
	return s
}

func (s *Server) Start(ctx context.Context) error {
	syn := s.synth
	if syn == nil {
		var err error
		syn, err = synth.NewFromConfig(s.cfg, s.log)
		if err != nil {
			return fmt.Errorf("initialize synthesizer: %w", err)
		}
	}

	h := NewHandler(
		text.New(text.WithLogger(s.log)),
		pronounce.Default(),
		syn,
		WithWorkers(s.cfg.Server.Workers),
		WithMaxTextBytes(s.cfg.Server.MaxTextBytes),
		WithRequestTimeout(time.Duration(s.cfg.Server.RequestTimeout)*time.Second),
		WithLogger(s.log),
	)

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.log.Info("server listening", slog.String("addr", s.cfg.Server.ListenAddr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}

// Health is the body served by /health.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ProbeHTTP queries /health on a running fry server at addr and returns its
// report. Anything other than a 200 with status "ok" is an error.
func ProbeHTTP(ctx context.Context, addr string) (Health, error) {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+addr+"/health", nil)
	if err != nil {
		return Health{}, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Health{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Health{}, fmt.Errorf("unexpected health status: %s", resp.Status)
	}

	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Health{}, fmt.Errorf("decode health response: %w", err)
	}
	if h.Status != "ok" {
		return h, fmt.Errorf("server reports status %q", h.Status)
	}
	return h, nil
}
