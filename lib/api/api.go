package api

import (
	"net/url"
	"strings"
)

// Build API URL for given base URL and path.
func BuildURL(baseURL string, path string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Build API URL for given base URL, path and query.
// Empty queries add nothing to the URL.
func BuildURLWithQuery(baseURL string, path string, query url.Values) string {
	u := BuildURL(baseURL, path)
	if len(query) == 0 {
		return u
	}
	return u + "?" + query.Encode()
}
