package article

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"mvdan.cc/xurls/v2"
)

var (
	urlPattern     = xurls.Strict()
	allowedSchemes = []string{"http", "https"}
)

// ValidateURL accepts raw only if the whole string is a single URL with an
// http(s) scheme and a host.
func ValidateURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || urlPattern.FindString(raw) != raw {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Host == "" || !slices.Contains(allowedSchemes, strings.ToLower(u.Scheme)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return u, nil
}
