package article

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidURL         = errors.New("invalid URL")
	ErrUnsupportedArticle = errors.New("unsupported article")
)

// Article is the readable part of a web page.
type Article struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Language  string    `json:"language"`
	Authors   []string  `json:"authors"`
	Summary   string    `json:"summary"`
	SiteName  string    `json:"site_name"`
	FetchedAt time.Time `json:"fetched_at"`
}

// FetchError wraps any failure that happens after the URL was accepted.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Cache stores fetched articles by URL.
type Cache interface {
	Get(url string) (*Article, bool, error)
	Put(a *Article) error
}
