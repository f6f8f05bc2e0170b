package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Site holds the static site identity: branding, navigation, social links
// and the contact details shown when the content store has nothing better.
// It is read from site.yaml at the repository root.
type Site struct {
	Name        string `mapstructure:"name"`
	Tagline     string `mapstructure:"tagline"`
	Description string `mapstructure:"description"`

	Contact SiteContact `mapstructure:"contact"`
	Socials SiteSocials `mapstructure:"socials"`
	Nav     []NavLink   `mapstructure:"nav"`
	Footer  SiteFooter  `mapstructure:"footer"`
}

type SiteContact struct {
	Email              string `mapstructure:"email"`
	Phone              string `mapstructure:"phone"`
	Location           string `mapstructure:"location"`
	AvailabilityStatus string `mapstructure:"availability_status"`
}

type SiteSocials struct {
	LinkedIn string `mapstructure:"linkedin"`
	WhatsApp string `mapstructure:"whatsapp"`
}

type NavLink struct {
	Label string `mapstructure:"label"`
	Href  string `mapstructure:"href"`
}

type SiteFooter struct {
	Credit    string `mapstructure:"credit"`
	CreditURL string `mapstructure:"credit_url"`
}

// LoadSite reads site.yaml from the given directories. A missing file is not
// an error; the built-in defaults describe the site well enough to boot.
func LoadSite(paths ...string) (*Site, error) {
	v := viper.New()
	v.SetConfigName("site")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setSiteDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read site config: %w", err)
		}
	}

	var site Site
	if err := v.Unmarshal(&site); err != nil {
		return nil, fmt.Errorf("unmarshal site config: %w", err)
	}
	return &site, nil
}

func setSiteDefaults(v *viper.Viper) {
	v.SetDefault("name", "Bruce Odhiambo")
	v.SetDefault("tagline", "Construction Manager's Portfolio")
	v.SetDefault("description", "Portfolio of Bruce Odhiambo - Construction Manager & GIS Specialist")

	v.SetDefault("contact.email", "cmbruce1015@gmail.com")
	v.SetDefault("contact.phone", "(+254) 0741058917")
	v.SetDefault("contact.location", "Munich, Germany / Nairobi, Kenya")
	v.SetDefault("contact.availability_status", "Open to Opportunities")

	v.SetDefault("socials.linkedin", "https://www.linkedin.com/in/bruce-odhiambo-8614b5175/")
	v.SetDefault("socials.whatsapp", "https://wa.me/254741058917")

	v.SetDefault("nav", []map[string]any{
		{"label": "Projects", "href": "/projects"},
		{"label": "Services", "href": "/services"},
		{"label": "Experience", "href": "/experience"},
		{"label": "About", "href": "/about"},
		{"label": "Contact", "href": "/contact"},
	})

	v.SetDefault("footer.credit", "Fikanova")
	v.SetDefault("footer.credit_url", "https://fikanova.co.ke/")
}
