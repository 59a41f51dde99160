package leave

import "strings"

// ImageResolver turns stored photo references into URLs a browser can load.
type ImageResolver struct {
	BaseOrigin  string
	Placeholder string
}

// Resolve picks raw, then cached, then the placeholder. Absolute http(s)
// URLs pass through; anything else is joined onto BaseOrigin.
func (r ImageResolver) Resolve(raw, cached string) string {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		ref = strings.TrimSpace(cached)
	}
	if ref == "" {
		return r.Placeholder
	}
	if isAbsoluteURL(ref) {
		return ref
	}
	if r.BaseOrigin == "" {
		return ref
	}
	return strings.TrimRight(r.BaseOrigin, "/") + "/" + strings.TrimLeft(ref, "/")
}

func isAbsoluteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
