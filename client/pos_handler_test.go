package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recapper/text"
)

func TestPOSClientTag(t *testing.T) {
	var gotReq posTagRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tag" || r.Method != http.MethodPost {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tokens":[
			{"text":"Gatti","pos":"NOUN","lemma":"gatto","is_stop":false},
			{"text":"e","pos":"CCONJ","lemma":"e","is_stop":true}
		]}`))
	}))
	defer srv.Close()

	c := NewPosClient(srv.URL+"/", "it_core_news_sm", time.Second)
	tokens, err := c.Tag(context.Background(), "Gatti e cani")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotReq.Model != "it_core_news_sm" || gotReq.Text != "Gatti e cani" {
		t.Errorf("unexpected request: %+v", gotReq)
	}
	want := []text.Token{
		{Text: "Gatti", POS: text.POSNoun, Lemma: "gatto"},
		{Text: "e", POS: text.POSCConj, Lemma: "e", IsStop: true},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: expected %+v, got %+v", i, want[i], tokens[i])
		}
	}
}

func TestPOSClientSkipsBlankSentences(t *testing.T) {
	c := NewPosClient("http://127.0.0.1:0", "en_core_web_sm", time.Second)
	tokens, err := c.Tag(context.Background(), "  ")
	if err != nil || tokens != nil {
		t.Errorf("expected no request for blank sentence, got %v, %v", tokens, err)
	}
}

func TestPOSClientErrors(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		wantMsg string
	}{
		{
			"BadStatus",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model not loaded", http.StatusServiceUnavailable)
			},
			"status 503",
		},
		{
			"BadBody",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			"failed to decode response",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			_, err := NewPosClient(srv.URL, "en_core_web_sm", time.Second).Tag(context.Background(), "Dogs run")
			if err == nil || !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("expected error containing %q, got %v", tc.wantMsg, err)
			}
		})
	}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry("http://tagger", map[string]string{"en": "en_core_web_sm"}, 0)

	tagger, err := r.Lookup("en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c, ok := tagger.(*POSClient); !ok || c.Model != "en_core_web_sm" {
		t.Errorf("unexpected tagger: %#v", tagger)
	}
	if _, err := r.Lookup("it"); !errors.Is(err, text.ErrUnsupportedLanguage) {
		t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
	}
}
