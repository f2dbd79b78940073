package acquire

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnsupportedSource indicates a URL whose host is not on the allow-list.
// Validation happens before any network activity.
var ErrUnsupportedSource = errors.New("unsupported source host")

// allowedHosts is the fixed set of remote hosts the tool will download from.
var allowedHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
	"youtu.be":        true,
}

// Source is a validated remote video reference.
type Source struct {
	URL string
}

// ParseSource validates a remote URL against the allow-list and returns a
// Source ready for acquisition.
func ParseSource(rawURL string) (Source, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Source{}, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return Source{}, fmt.Errorf("invalid URL %q: expected http or https scheme", rawURL)
	}

	if !allowedHosts[strings.ToLower(u.Hostname())] {
		return Source{}, fmt.Errorf("%w: %s", ErrUnsupportedSource, u.Hostname())
	}

	return Source{URL: rawURL}, nil
}

// forbidden holds the characters stripped from remote titles before they
// are used as file names.
const forbidden = `/\:*?"<>|`

// SanitizeTitle turns a remote-reported title into a filesystem-safe file
// stem: disallowed characters are stripped and whitespace runs collapse to
// a single space.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if strings.ContainsRune(forbidden, r) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
