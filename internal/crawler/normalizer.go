package crawler

import (
	"net/url"
	"path"
	"strings"
)

// imageExtensions are path suffixes that identify image resources.
// Anchors pointing at images are useless for both text analysis and
// further link discovery, so they are rejected during normalization.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".svg":  true,
	".webp": true,
}

// Normalize canonicalizes an anchor href into an absolute URL string.
// It strips any fragment, lowercases the scheme and host, and treats the
// empty path and "/" as the same URL.
//
// The second return value is false when the href is rejected: malformed,
// non-http(s) (which also covers relative links, mailto: and javascript:),
// pointing at an image, or already present in the caller-supplied visited
// set. visited may be nil. Rejection is silent; no error is surfaced.
func Normalize(href string, visited map[string]bool) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}

	u.Fragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}
	u.Host = strings.ToLower(u.Host)

	if u.Path == "" {
		u.Path = "/"
	}
	if imageExtensions[strings.ToLower(path.Ext(u.Path))] {
		return "", false
	}

	canonical := u.String()
	if visited[canonical] {
		return "", false
	}
	return canonical, true
}
