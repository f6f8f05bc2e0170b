package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/content"
	"github.com/fikanova/portfolio/internal/domain"
	"github.com/fikanova/portfolio/internal/sanity"
	"github.com/fikanova/portfolio/internal/storage"
	"github.com/fikanova/portfolio/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// fallbackCVPath is the bundled CV served when the profile carries no live
// document URL.
const fallbackCVPath = "BO_CV.pdf"

// fallbackPortrait is the bundled headshot used when no portrait resolves.
const fallbackPortrait = "/static/img/bruce-headshot.jpg"

// PageHandler serves every content page. All content flows through the
// resolver, so a dead content store degrades to fallback data instead of
// error pages.
type PageHandler struct {
	resolver *content.Resolver
	images   *sanity.Client
	site     *config.Site
	assets   storage.AssetStore
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(resolver *content.Resolver, images *sanity.Client, site *config.Site, assets storage.AssetStore) *PageHandler {
	return &PageHandler{
		resolver: resolver,
		images:   images,
		site:     site,
		assets:   assets,
	}
}

// HomeGet renders the landing page (GET /).
func (h *PageHandler) HomeGet(c echo.Context) error {
	ctx := c.Request().Context()

	services := h.resolver.ServicePackages(ctx)
	if len(services) > 3 {
		services = services[:3]
	}

	data := pages.HomeData{
		Profile:  h.resolver.Profile(ctx),
		Featured: h.projectCards(h.resolver.FeaturedProjects(ctx)),
		Services: services,
	}
	return renderPage(c, http.StatusOK, "", h.site, pages.Home(data))
}

// AboutGet renders the profile page (GET /about).
func (h *PageHandler) AboutGet(c echo.Context) error {
	ctx := c.Request().Context()
	profile := h.resolver.Profile(ctx)

	portrait := h.images.ImageURL(profile.PortraitImage, 800)
	if portrait == "" {
		portrait = fallbackPortrait
	}

	data := pages.AboutData{
		Profile:     profile,
		PortraitURL: portrait,
		CVURL:       "/cv",
	}
	return renderPage(c, http.StatusOK, "About", h.site, pages.About(data))
}

// ProjectsGet renders the project index (GET /projects).
func (h *PageHandler) ProjectsGet(c echo.Context) error {
	ctx := c.Request().Context()
	data := pages.ProjectsData{
		Cards: h.projectCards(h.resolver.Projects(ctx)),
	}
	return renderPage(c, http.StatusOK, "Projects", h.site, pages.Projects(data))
}

// ProjectDetailGet renders one case study (GET /projects/:slug). An unknown
// slug is an expected outcome and renders the designed 404 page.
func (h *PageHandler) ProjectDetailGet(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	project, err := h.resolver.ProjectBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return h.renderNotFound(c, "The project you are looking for does not exist or is no longer published.")
		}
		slog.Error("Failed to load project", "slug", slug, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	gallery := make([]string, 0, len(project.Gallery))
	for _, img := range project.Gallery {
		if url := h.images.ImageURL(img, 1200); url != "" {
			gallery = append(gallery, url)
		}
	}

	data := pages.ProjectDetailData{
		Project:     project,
		CoverURL:    h.images.ImageURL(project.CoverImage, 1600),
		GalleryURLs: gallery,
	}
	return renderPage(c, http.StatusOK, project.Title, h.site, pages.ProjectDetail(data))
}

// ExperienceGet renders the work history (GET /experience).
func (h *PageHandler) ExperienceGet(c echo.Context) error {
	entries := h.resolver.Experience(c.Request().Context())
	return renderPage(c, http.StatusOK, "Experience", h.site, pages.Experience(entries))
}

// ServicesGet renders the service packages (GET /services).
func (h *PageHandler) ServicesGet(c echo.Context) error {
	packages := h.resolver.ServicePackages(c.Request().Context())
	return renderPage(c, http.StatusOK, "Services", h.site, pages.Services(packages))
}

// CVGet serves the CV (GET /cv). A live document URL on the profile wins;
// otherwise the bundled fallback PDF streams from the asset store.
func (h *PageHandler) CVGet(c echo.Context) error {
	ctx := c.Request().Context()
	profile := h.resolver.Profile(ctx)

	if strings.HasPrefix(profile.CVFile, "http://") || strings.HasPrefix(profile.CVFile, "https://") {
		return c.Redirect(http.StatusFound, profile.CVFile)
	}

	rc, err := h.assets.Open(ctx, fallbackCVPath)
	if err != nil {
		slog.Error("Fallback CV missing from asset store", "path", fallbackCVPath, "error", err)
		return echo.NewHTTPError(http.StatusNotFound)
	}
	defer rc.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="BO_CV.pdf"`)
	return c.Stream(http.StatusOK, "application/pdf", rc)
}

// NotFoundGet renders the designed 404 page for unroutable paths.
func (h *PageHandler) NotFoundGet(c echo.Context) error {
	return h.renderNotFound(c, "")
}

func (h *PageHandler) renderNotFound(c echo.Context, message string) error {
	return renderPage(c, http.StatusNotFound, "Not Found", h.site, pages.NotFound(message))
}

// projectCards builds teaser view models with resolved cover URLs.
func (h *PageHandler) projectCards(projects []domain.Project) []pages.ProjectCard {
	cards := make([]pages.ProjectCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, pages.ProjectCard{
			Title:    p.Title,
			Slug:     p.Slug.Current,
			Category: p.Category,
			CoverURL: h.images.ImageURL(p.CoverImage, 800),
		})
	}
	return cards
}
