package content

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fikanova/portfolio/internal/domain"
	"github.com/fikanova/portfolio/internal/sanity"
)

// Source is the slice of the content-store client the resolver needs. The
// concrete implementation is *sanity.Client; tests substitute fakes.
type Source interface {
	Query(ctx context.Context, groq string, params map[string]string, out any) error
}

// Resolver answers every page-level content query. It never returns an
// error to the rendering layer: a failed or empty query is absorbed into
// the statically embedded fallback dataset (logged for operability), and
// only the designed not-found state of a slug lookup surfaces to callers.
//
// Results are cached for the revalidation window, so repeat renders within
// the window observe the identical payload. Callers must treat returned
// values as read-only.
type Resolver struct {
	source Source
	ttl    time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry

	// now is a test seam for the revalidation clock.
	now func() time.Time
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// NewResolver creates a resolver over the given source. ttl is the
// revalidation window; zero disables caching.
func NewResolver(source Source, ttl time.Duration) *Resolver {
	return &Resolver{
		source: source,
		ttl:    ttl,
		cache:  make(map[string]cacheEntry),
		now:    time.Now,
	}
}

func (r *Resolver) cached(key string) (any, bool) {
	if r.ttl <= 0 {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.cache[key]
	if !ok || r.now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (r *Resolver) store(key string, value any) {
	if r.ttl <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[key] = cacheEntry{value: value, expires: r.now().Add(r.ttl)}
}

// Profile resolves the owner's biography singleton.
func (r *Resolver) Profile(ctx context.Context) domain.Profile {
	return resolveSingleton(ctx, r, "profile", sanity.QueryProfile, fallbackProfile, mergeProfile)
}

// ContactSettings resolves the contact-details singleton. The content owner
// edits it incrementally, so individual fields may be absent; any missing
// field takes the static default.
func (r *Resolver) ContactSettings(ctx context.Context) domain.ContactSettings {
	return resolveSingleton(ctx, r, "contactSettings", sanity.QueryContactSettings, fallbackContactSettings, mergeContactSettings)
}

// Experience resolves the ordered work history.
func (r *Resolver) Experience(ctx context.Context) []domain.Experience {
	return resolveCollection(ctx, r, "experience", sanity.QueryAllExperience, fallbackExperience)
}

// Projects resolves all case studies, newest first.
func (r *Resolver) Projects(ctx context.Context) []domain.Project {
	return resolveCollection(ctx, r, "projects", sanity.QueryAllProjects, fallbackProjects)
}

// FeaturedProjects resolves the capped home-page selection.
func (r *Resolver) FeaturedProjects(ctx context.Context) []domain.Project {
	return resolveCollection(ctx, r, "featuredProjects", sanity.QueryFeaturedProjects, fallbackProjects)
}

// ServicePackages resolves the service offerings.
func (r *Resolver) ServicePackages(ctx context.Context) []domain.ServicePackage {
	return resolveCollection(ctx, r, "servicePackages", sanity.QueryAllServicePackages, fallbackServicePackages)
}

// projectLookup caches both outcomes of a slug lookup so a missing slug is
// not re-queried within the revalidation window.
type projectLookup struct {
	project domain.Project
	found   bool
}

// ProjectBySlug resolves a single case study by its slug. A missing result
// is the designed not-found state, signalled as domain.ErrNotFound; it is
// never an exception and never a fallback substitution. A failing store is
// still consulted against the fallback dataset so the degraded site stays
// navigable end to end.
func (r *Resolver) ProjectBySlug(ctx context.Context, slug string) (domain.Project, error) {
	key := "project:" + slug
	if v, ok := r.cached(key); ok {
		lookup := v.(projectLookup)
		if !lookup.found {
			return domain.Project{}, domain.ErrNotFound
		}
		return lookup.project, nil
	}

	var live domain.Project
	err := r.source.Query(ctx, sanity.QueryProjectBySlug, map[string]string{"slug": slug}, &live)
	if err != nil {
		slog.Warn("project lookup failed, consulting fallback dataset", "slug", slug, "error", err)
		for _, p := range fallbackProjects {
			if p.Slug.Current == slug {
				live = p
				break
			}
		}
	}

	lookup := projectLookup{project: live, found: live.ID != ""}
	r.store(key, lookup)
	if !lookup.found {
		return domain.Project{}, domain.ErrNotFound
	}
	return live, nil
}

// resolveSingleton fetches a singleton entity and merges the live partial
// over the fallback default, field by field.
func resolveSingleton[T any](ctx context.Context, r *Resolver, key, groq string, fallback T, merge func(live, fallback T) T) T {
	if v, ok := r.cached(key); ok {
		return v.(T)
	}

	var live T
	if err := r.source.Query(ctx, groq, nil, &live); err != nil {
		slog.Warn("content query failed, serving fallback", "query", key, "error", err)
		live = fallback
	} else {
		live = merge(live, fallback)
	}

	r.store(key, live)
	return live
}

// resolveCollection fetches a collection entity. An empty result means "not
// yet populated" and is indistinguishable from a failure: both substitute
// the whole fallback slice, with no per-item merge.
func resolveCollection[T any](ctx context.Context, r *Resolver, key, groq string, fallback []T) []T {
	if v, ok := r.cached(key); ok {
		return v.([]T)
	}

	var live []T
	err := r.source.Query(ctx, groq, nil, &live)
	switch {
	case err != nil:
		slog.Warn("content query failed, serving fallback", "query", key, "error", err)
		live = fallback
	case len(live) == 0:
		slog.Info("content collection empty, serving fallback", "query", key)
		live = fallback
	}

	r.store(key, live)
	return live
}
