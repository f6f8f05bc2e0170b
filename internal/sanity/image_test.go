package sanity

import (
	"testing"
	"time"

	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/domain"
	"github.com/stretchr/testify/assert"
)

func imageClient() *Client {
	return NewClient(&config.Config{
		SanityProjectID:  "testproj",
		SanityDataset:    "production",
		SanityAPIVersion: "2024-01-01",
		SanityTimeout:    time.Second,
	})
}

func TestImageURLFromAssetRef(t *testing.T) {
	c := imageClient()

	img := domain.Image{Asset: domain.ImageAsset{Ref: "image-abc123-800x600-jpg"}}
	got := c.ImageURL(img, 1200)

	assert.Contains(t, got, "https://cdn.sanity.io/images/testproj/production/abc123-800x600.jpg")
	assert.Contains(t, got, "w=1200")
	assert.Contains(t, got, "q=75")
	assert.Contains(t, got, "auto=format")
}

func TestImageURLPassesThroughDirectURLs(t *testing.T) {
	c := imageClient()

	t.Run("local path is untouched", func(t *testing.T) {
		img := domain.Image{Direct: "/static/img/bruce-headshot.jpg"}
		assert.Equal(t, "/static/img/bruce-headshot.jpg", c.ImageURL(img, 800))
	})

	t.Run("unsplash gets sizing parameters", func(t *testing.T) {
		img := domain.Image{Direct: "https://images.unsplash.com/photo-1?auto=format"}
		got := c.ImageURL(img, 800)
		assert.Contains(t, got, "w=800")
		assert.Contains(t, got, "q=75")
	})
}

func TestImageURLUnresolvable(t *testing.T) {
	c := imageClient()

	assert.Empty(t, c.ImageURL(domain.Image{}, 800))
	assert.Empty(t, c.ImageURL(domain.Image{Asset: domain.ImageAsset{Ref: "file-abc-pdf"}}, 800))
}
