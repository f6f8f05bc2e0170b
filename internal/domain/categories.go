package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Service categories accepted by the contact form and used to group
// projects and service packages. The values are the content store's enum
// values; the display names are the editor-facing titles.
const (
	CategoryConstruction   = "construction"
	CategoryGIS            = "gis"
	CategoryAIData         = "ai-data"
	CategoryMAndE          = "m-and-e"
	CategorySustainability = "sustainability"
	CategoryConsultancy    = "consultancy"
	CategoryOther          = "other"
)

// ServiceCategories lists every accepted category value, in display order.
var ServiceCategories = []string{
	CategoryConstruction,
	CategoryGIS,
	CategoryAIData,
	CategoryMAndE,
	CategorySustainability,
	CategoryConsultancy,
	CategoryOther,
}

var categoryTitles = map[string]string{
	CategoryConstruction:   "Construction & Infrastructure",
	CategoryGIS:            "GIS & Spatial Intelligence",
	CategoryAIData:         "AI Training Data & QA",
	CategoryMAndE:          "Monitoring & Evaluation",
	CategorySustainability: "Sustainability Projects",
	CategoryConsultancy:    "Consultancy",
	CategoryOther:          "Other",
}

var titleCaser = cases.Title(language.English)

// IsServiceCategory reports whether value is one of the accepted categories.
func IsServiceCategory(value string) bool {
	_, ok := categoryTitles[value]
	return ok
}

// CategoryTitle returns the display name for a category value. Unknown
// values get a best-effort title-cased rendering so stale content never
// breaks a page.
func CategoryTitle(value string) string {
	if title, ok := categoryTitles[value]; ok {
		return title
	}
	return titleCaser.String(strings.ReplaceAll(value, "-", " "))
}
