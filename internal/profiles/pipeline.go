package profiles

import (
	"errors"
	"fmt"

	"github.com/kingrea/wtlaunch/internal/logbook"
)

// Resolver turns an optional override into the settings.json path.
type Resolver interface {
	Resolve(override string) string
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(override string) string

// Resolve calls f(override).
func (f ResolverFunc) Resolve(override string) string { return f(override) }

// Outcome is what a load hands to the presentation layer. Profiles is never
// nil; Err is a *LoadError when the load failed.
type Outcome struct {
	Path     string
	Profiles []Profile
	Cached   bool
	Err      error
}

// Pipeline wires path resolution, parsing, selection and caching together.
// It sends exactly one notification per load attempt; cache hits send none.
// A nil Cache disables caching. Fields must not change once loads may run
// concurrently.
type Pipeline struct {
	Override string
	Resolver Resolver
	Order    Order
	Options  SelectOptions
	Cache    *Cache
	Notifier logbook.Notifier
}

// SettingsPath returns the resolved settings.json location.
func (p *Pipeline) SettingsPath() string {
	if p.Resolver == nil {
		return p.Override
	}
	return p.Resolver.Resolve(p.Override)
}

// Key returns the cache key for the current path and order.
func (p *Pipeline) Key() CacheKey {
	return CacheKey{Path: p.SettingsPath(), Order: p.Order}
}

// Load returns the ordered profiles, serving from cache when possible.
func (p *Pipeline) Load() Outcome {
	key := p.Key()
	cache := p.cache()
	list, cached, err := cache.GetOrLoad(key, func() ([]Profile, error) {
		raw, err := LoadSettings(key.Path)
		if err != nil {
			return nil, err
		}
		return SelectWith(raw, key.Order, p.Options), nil
	})
	out := Outcome{Path: key.Path, Profiles: list, Cached: cached, Err: err}
	if !cached {
		p.notify(loadNotification(out))
	}
	return out
}

// Reload drops the cached entry for the current key and loads again.
func (p *Pipeline) Reload() Outcome {
	p.cache().Invalidate(p.Key())
	return p.Load()
}

func (p *Pipeline) cache() *Cache {
	if p.Cache == nil {
		return NewCache()
	}
	return p.Cache
}

func (p *Pipeline) notify(n logbook.Notification) {
	if p.Notifier != nil {
		p.Notifier.Notify(n)
	}
}

func loadNotification(out Outcome) logbook.Notification {
	if out.Err == nil {
		return logbook.Notification{
			Style:   logbook.StyleSuccess,
			Title:   "Profiles loaded",
			Message: fmt.Sprintf("Found %d Windows Terminal profiles", len(out.Profiles)),
		}
	}
	n := logbook.Notification{Style: logbook.StyleFailure, Level: logbook.LevelError}
	var le *LoadError
	if !errors.As(out.Err, &le) {
		n.Title = "Error loading profiles"
		n.Message = out.Err.Error()
		return n
	}
	switch le.Kind {
	case KindNotFound:
		n.Level = logbook.LevelWarn
		n.Title = "Settings file not found"
		n.Message = fmt.Sprintf("Windows Terminal settings file not found at: %s", out.Path)
	case KindSchema:
		n.Level = logbook.LevelWarn
		n.Title = "Invalid settings format"
		n.Message = "Could not find profiles in Windows Terminal settings"
	default:
		n.Title = "Error loading profiles"
		if le.Err != nil {
			n.Message = le.Err.Error()
		} else {
			n.Message = le.Kind.String()
		}
	}
	return n
}
