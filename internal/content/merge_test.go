package content

import (
	"testing"

	"github.com/fikanova/portfolio/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMergeProfile(t *testing.T) {
	fallback := domain.Profile{
		Name:   "Fallback Name",
		Title:  "Fallback Title",
		Bio:    "Fallback bio.",
		Skills: []string{"Fallback Skill"},
		PortraitImage: domain.Image{
			Direct: "/static/img/fallback.jpg",
		},
	}

	t.Run("empty live record takes every default", func(t *testing.T) {
		out := mergeProfile(domain.Profile{}, fallback)
		assert.Equal(t, fallback, out)
	})

	t.Run("filled live fields always win", func(t *testing.T) {
		live := domain.Profile{
			Name:          "Live Name",
			PortraitImage: domain.Image{Direct: "https://cdn.example.com/live.jpg"},
		}
		out := mergeProfile(live, fallback)

		assert.Equal(t, "Live Name", out.Name)
		assert.Equal(t, "https://cdn.example.com/live.jpg", out.PortraitImage.URL())
		assert.Equal(t, "Fallback Title", out.Title)
		assert.Equal(t, []string{"Fallback Skill"}, out.Skills)
	})
}

func TestMergeContactSettings(t *testing.T) {
	fallback := domain.ContactSettings{
		Email:              "fallback@example.com",
		Phone:              "+000",
		Location:           "Fallback City",
		AvailabilityStatus: "Available",
	}

	live := domain.ContactSettings{Phone: "+254 700 000 000"}
	out := mergeContactSettings(live, fallback)

	assert.Equal(t, "+254 700 000 000", out.Phone)
	assert.Equal(t, "fallback@example.com", out.Email)
	assert.Equal(t, "Fallback City", out.Location)
	assert.Equal(t, "Available", out.AvailabilityStatus)
}
