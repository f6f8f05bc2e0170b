package sanity

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fikanova/portfolio/internal/domain"
)

// Image delivery goes through the store's CDN. An asset reference like
// "image-abc123-800x600-jpg" maps to
// https://cdn.sanity.io/images/<project>/<dataset>/abc123-800x600.jpg.

const defaultQuality = 75

// ImageURL resolves an image reference to a CDN URL with width and quality
// parameters. Direct URLs (fallback data, external hosts) pass through with
// the same parameters appended where the host supports them. An unresolvable
// image yields "" so callers can substitute a local placeholder.
func (c *Client) ImageURL(img domain.Image, width int) string {
	if direct := img.URL(); direct != "" {
		return sizedURL(direct, width)
	}
	if img.Asset.Ref == "" {
		return ""
	}

	parts := strings.Split(img.Asset.Ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return ""
	}
	base := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		c.projectID, c.dataset, parts[1], parts[2], parts[3])
	return sizedURL(base, width)
}

func sizedURL(raw string, width int) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	switch {
	case strings.Contains(u.Host, "cdn.sanity.io"):
		q := u.Query()
		q.Set("w", strconv.Itoa(width))
		q.Set("q", strconv.Itoa(defaultQuality))
		q.Set("auto", "format")
		u.RawQuery = q.Encode()
	case strings.Contains(u.Host, "unsplash.com"):
		q := u.Query()
		q.Set("w", strconv.Itoa(width))
		q.Set("q", strconv.Itoa(defaultQuality))
		u.RawQuery = q.Encode()
	}
	return u.String()
}
