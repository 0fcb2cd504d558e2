package services

import (
	"poi-viewer/internal/domain"
	"poi-viewer/internal/ports"
	"strings"
)

// LocaleResolver turns the runtime language preference into a LocaleTag.
type LocaleResolver struct {
	source ports.LanguageSource
}

func NewLocaleResolver(source ports.LanguageSource) *LocaleResolver {
	return &LocaleResolver{source: source}
}

// Resolve reads the preference once per call; the viewer calls it at startup only.
func (r *LocaleResolver) Resolve() domain.LocaleTag {
	if r == nil || r.source == nil {
		return domain.DefaultLocale
	}
	return ResolveLocale(r.source.Language())
}

// ResolveLocale extracts the primary language subtag from values such as
// "ko-KR", "ko_KR.UTF-8" or "en". Unrecognized and empty values yield the default.
func ResolveLocale(raw string) domain.LocaleTag {
	primary := primarySubtag(raw)
	if primary == "" {
		return domain.DefaultLocale
	}

	tag := domain.LocaleTag(primary)
	if !tag.Recognized() {
		return domain.DefaultLocale
	}
	return tag
}

func primarySubtag(raw string) string {
	s := strings.TrimSpace(raw)
	// POSIX locale names carry an encoding and a modifier: ko_KR.UTF-8@euro
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	// Taken verbatim: no canonicalization ("kor") and no guessing ("und-KR").
	first, _, _ := strings.Cut(s, "-")
	return strings.ToLower(first)
}
