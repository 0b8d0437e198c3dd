package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"recapper/article"
	"recapper/recap"
	"recapper/text"
)

// SummarizeRequest carries either a URL or raw text. Lang is only used with
// Text; when empty the language is detected.
type SummarizeRequest struct {
	URL      string  `json:"url,omitempty"`
	Text     string  `json:"text,omitempty"`
	Lang     string  `json:"lang,omitempty"`
	Fraction float64 `json:"fraction,omitempty"`
	Top      int     `json:"top,omitempty"`
	TopTerms string  `json:"top_terms,omitempty"`
	Table    bool    `json:"table,omitempty"`
}

// MaxRequestBytes caps the size of a summarize request body.
const MaxRequestBytes = 4 << 20

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Input string `json:"input,omitempty"`
	Help  string `json:"help,omitempty"`
}

// Handler runs summarization requests against a tagger registry and an
// article fetcher.
type Handler struct {
	registry     *text.Registry
	fetcher      recap.ArticleFetcher
	fetchTimeout time.Duration
	helpContact  string
	logger       *zap.Logger
}

func NewHandler(registry *text.Registry, fetcher recap.ArticleFetcher, fetchTimeout time.Duration, helpContact string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		registry:     registry,
		fetcher:      fetcher,
		fetchTimeout: fetchTimeout,
		helpContact:  helpContact,
		logger:       logger,
	}
}

func (h *Handler) SummarizeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	hasURL := strings.TrimSpace(req.URL) != ""
	hasText := strings.TrimSpace(req.Text) != ""
	if hasURL == hasText {
		http.Error(w, "exactly one of url or text is required", http.StatusBadRequest)
		return
	}

	mode, ok := recap.ParseTopTermsMode(req.TopTerms)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown top_terms mode %q", req.TopTerms), http.StatusBadRequest)
		return
	}
	fraction := req.Fraction
	if fraction == 0 {
		fraction = recap.DefaultFraction
	}

	opts := []recap.Option{recap.WithTopTerms(mode), recap.WithLogger(h.logger)}

	var (
		s   *recap.Summarizer
		err error
	)
	if hasURL {
		s, err = h.fromURL(r.Context(), req.URL, opts)
	} else {
		s, err = h.fromText(req.Text, req.Lang, opts)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := s.Process(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	if _, err := s.Summarize(fraction); err != nil {
		h.writeError(w, err)
		return
	}
	report, err := s.Info(req.Top, req.Table)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) fromURL(ctx context.Context, rawURL string, opts []recap.Option) (*recap.Summarizer, error) {
	if h.fetcher == nil {
		return nil, &recap.Error{Kind: recap.KindFetch, Op: "fetch", Input: rawURL, Err: errors.New("url fetching is disabled")}
	}
	if h.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.fetchTimeout)
		defer cancel()
	}
	return recap.FromURL(ctx, strings.TrimSpace(rawURL), h.fetcher, h.registry, opts...)
}

func (h *Handler) fromText(doc, lang string, opts []recap.Option) (*recap.Summarizer, error) {
	if lang == "" {
		lang = article.DetectLanguage("", doc)
	}
	tagger, err := h.registry.Lookup(lang)
	if err != nil {
		return nil, &recap.Error{Kind: recap.KindUnsupportedLanguage, Op: "new", Input: lang, Err: err}
	}
	return recap.New(doc, tagger, opts...)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error(), Help: h.helpContact}

	status := http.StatusInternalServerError
	var recapErr *recap.Error
	if errors.As(err, &recapErr) {
		resp.Kind = recapErr.Kind.String()
		resp.Input = recapErr.Input
		status = statusFor(recapErr.Kind)
	}

	h.logger.Warn("summarize_failed",
		zap.Error(err),
		zap.String("input", resp.Input),
		zap.Int("status", status),
	)
	writeJSON(w, status, resp)
}

func statusFor(kind recap.Kind) int {
	switch kind {
	case recap.KindInvalidInput, recap.KindInvalidURL:
		return http.StatusBadRequest
	case recap.KindUnsupportedLanguage, recap.KindProcessing:
		return http.StatusUnprocessableEntity
	case recap.KindFetch:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
