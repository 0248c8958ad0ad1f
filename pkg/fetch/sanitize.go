package fetch

import (
	"net/url"
	"strings"
)

// trackingParams lists query parameters stripped from every URL before it
// enters the graph. Tracking noise otherwise splinters source identity and
// defeats the (url, hash) evidence key.
var trackingParams = map[string]bool{
	"fbclid":  true,
	"gclid":   true,
	"msclkid": true,
	"mc_cid":  true,
	"mc_eid":  true,
	"igshid":  true,
	"ref":     true,
	"ref_src": true,
	"source":  true,
	"s_kwcid": true,
	"_hsenc":  true,
	"_hsmi":   true,
	"vero_id": true,
	"yclid":   true,
	"twclid":  true,
}

// SanitizeURL returns the canonical form of a URL: lowercased host, no
// www prefix, no fragment, tracking parameters removed, trailing slash
// trimmed. Unparseable input is returned trimmed but otherwise untouched.
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	u.Host = strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	u.Fragment = ""

	q := u.Query()
	for param := range q {
		if trackingParams[param] || strings.HasPrefix(param, "utm_") {
			q.Del(param)
		}
	}
	u.RawQuery = q.Encode()
	u.Path = strings.TrimSuffix(u.Path, "/")

	return u.String()
}

// Host returns the lowercased host of a URL, empty when unparseable.
func Host(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(u.Host, "www."))
}
