package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// The content store owns these entities; the application only ever holds
// read-only, possibly-stale copies fetched per render. JSON tags follow the
// store's field names so query results decode directly.

// Profile is the site owner's biography. At most one instance is current.
type Profile struct {
	ID            string       `json:"_id"`
	Name          string       `json:"name"`
	Title         string       `json:"title"`
	Bio           string       `json:"bio"`
	PortraitImage Image        `json:"portraitImage"`
	Interests     []string     `json:"interests"`
	Skills        []string     `json:"skills"`
	Hobbies       []Hobby      `json:"hobbies"`
	Education     []Education  `json:"education"`
	CVFile        string       `json:"cvFile"`
	SocialLinks   []SocialLink `json:"socialLinks"`
}

type Hobby struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ContactSettings is a singleton edited field-by-field by the content owner,
// which is why its fallback handling merges rather than replaces. See
// content.mergeContactSettings.
type ContactSettings struct {
	ID                 string `json:"_id"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Location           string `json:"location"`
	AvailabilityStatus string `json:"availabilityStatus"`
}

// Experience is one entry in the work history, rendered in explicit order.
type Experience struct {
	ID          string   `json:"_id"`
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Location    string   `json:"location"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Highlights  []string `json:"highlights"`
	Order       int      `json:"order"`
}

// Project is a case study addressed by its URL-safe slug.
type Project struct {
	ID          string          `json:"_id"`
	Title       string          `json:"title"`
	Slug        Slug            `json:"slug"`
	CoverImage  Image           `json:"coverImage"`
	Gallery     []Image         `json:"gallery"`
	Category    string          `json:"category"`
	ClientName  string          `json:"clientName"`
	ProjectDate string          `json:"projectDate"`
	Role        string          `json:"role"`
	Description []RichTextBlock `json:"description"`
	Challenge   string          `json:"challenge"`
	Solution    string          `json:"solution"`
	Impact      []string        `json:"impact"`
	Tags        []string        `json:"tags"`
	ProjectLink string          `json:"projectLink"`
}

// ServicePackage describes one service offering. Price is free text; it may
// hold a quote placeholder rather than a number.
type ServicePackage struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	IsPopular   bool     `json:"isPopular"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

// Slug is the page-addressing key of a project. The store serializes it as
// {"current": "..."} while fallback data uses a bare string; both decode.
type Slug struct {
	Current string `json:"current"`
}

func (s *Slug) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &s.Current)
	}
	type alias Slug
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	s.Current = a.Current
	return nil
}

func (s Slug) String() string { return s.Current }

// Image is a content-store image reference. The store returns an asset
// object; fallback data carries a direct URL string. Both decode, and URL()
// prefers whichever is present.
type Image struct {
	Direct string
	Asset  ImageAsset
}

type ImageAsset struct {
	Ref string `json:"_ref"`
	URL string `json:"url"`
}

func (i *Image) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &i.Direct)
	}
	var obj struct {
		Asset ImageAsset `json:"asset"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	i.Asset = obj.Asset
	return nil
}

// URL returns the directly-usable address of the image, or "" when only an
// unresolved asset reference is available.
func (i Image) URL() string {
	if i.Direct != "" {
		return i.Direct
	}
	return i.Asset.URL
}

func (i Image) IsZero() bool {
	return i.Direct == "" && i.Asset.Ref == "" && i.Asset.URL == ""
}

// RichTextBlock is the minimal shape of the store's portable-text blocks
// needed to extract readable paragraphs.
type RichTextBlock struct {
	Type     string `json:"_type"`
	Children []struct {
		Text string `json:"text"`
	} `json:"children"`
}

// Paragraphs flattens rich-text blocks into plain paragraph strings,
// skipping anything that is not a text block.
func Paragraphs(blocks []RichTextBlock) []string {
	var out []string
	for _, b := range blocks {
		if b.Type != "" && b.Type != "block" {
			continue
		}
		var sb strings.Builder
		for _, c := range b.Children {
			sb.WriteString(c.Text)
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			out = append(out, text)
		}
	}
	return out
}
