package catalog

import (
	"net/url"
	"strings"

	"shopgrid/internal/domain"
)

// ImageResolver turns a product's image reference into a displayable URL or path
type ImageResolver struct {
	BaseURL string
}

// NewImageResolver creates a resolver rooted at baseURL. An empty base leaves references untouched.
func NewImageResolver(baseURL string) ImageResolver {
	return ImageResolver{BaseURL: strings.TrimSpace(baseURL)}
}

// URL returns the image location for p. Absolute references pass through.
func (r ImageResolver) URL(p domain.Product) string {
	ref := strings.TrimSpace(p.Image)
	if ref == "" {
		return ""
	}
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	if r.BaseURL == "" {
		return ref
	}
	joined, err := url.JoinPath(r.BaseURL, ref)
	if err != nil {
		return strings.TrimRight(r.BaseURL, "/") + "/" + strings.TrimLeft(ref, "/")
	}
	return joined
}
