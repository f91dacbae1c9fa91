package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg and the problems found.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.App.Addr = strings.TrimSpace(out.App.Addr)
	out.App.SiteName = strings.TrimSpace(out.App.SiteName)
	out.Jobs.Source = strings.TrimSpace(out.Jobs.Source)
	out.Bookmarks.Backend = strings.ToLower(strings.TrimSpace(out.Bookmarks.Backend))
	out.Log.Level = strings.ToLower(strings.TrimSpace(out.Log.Level))
	out.Log.Format = strings.ToLower(strings.TrimSpace(out.Log.Format))

	if len(out.Skills) > 0 {
		skills := make(map[string][]string, len(out.Skills))
		for cat, labels := range out.Skills {
			cat = strings.TrimSpace(cat)
			if cat == "" {
				res.addErr("skills: category name cannot be empty")
				continue
			}
			labels = trimList(labels)
			if len(labels) != 5 {
				res.addWarn("skills[%q] has %d labels; the details page expects 5", cat, len(labels))
			}
			skills[cat] = labels
		}
		out.Skills = skills
	}

	// ---- Validation rules ----

	if out.App.Addr == "" {
		res.addErr("app.addr is required")
	}
	if out.App.SiteName == "" {
		res.addWarn("app.site_name is empty; page titles will end with a bare dash")
	}

	if out.Jobs.Source == "" {
		res.addErr("jobs.source is required")
	}
	if out.Jobs.PageSize <= 0 {
		res.addErr("jobs.page_size must be > 0")
	} else if out.Jobs.PageSize > 100 {
		res.addWarn("jobs.page_size is large (%d); list pages may get slow to render", out.Jobs.PageSize)
	}
	if out.Jobs.RelatedLimit <= 0 {
		res.addErr("jobs.related_limit must be > 0")
	}

	if out.Cache.TTLSeconds < 0 {
		res.addErr("cache.ttl_seconds must be >= 0")
	}
	if out.Cache.RefreshSeconds < 0 {
		res.addErr("cache.refresh_seconds must be >= 0")
	} else if out.Cache.RefreshSeconds > 0 && out.Cache.RefreshSeconds < 10 {
		res.addWarn("cache.refresh_seconds is very low (%d) and may hammer the jobs source.", out.Cache.RefreshSeconds)
	}

	if out.Upstream.RequestsPerSec <= 0 {
		res.addErr("upstream.requests_per_sec must be > 0")
	}
	if out.Upstream.Burst <= 0 {
		res.addErr("upstream.burst must be > 0")
	}
	if out.Upstream.TimeoutSeconds <= 0 {
		res.addErr("upstream.timeout_seconds must be > 0")
	}

	switch out.Bookmarks.Backend {
	case "noop", "sqlite":
	default:
		res.addErr("bookmarks.backend must be noop or sqlite (got %q)", out.Bookmarks.Backend)
	}

	switch out.Log.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		res.addErr("log.level %q is not a known level", out.Log.Level)
	}
	switch out.Log.Format {
	case "text", "json":
	default:
		res.addErr("log.format must be text or json (got %q)", out.Log.Format)
	}

	return out, res
}
