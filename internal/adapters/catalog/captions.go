// Package catalog holds the fixed bilingual display strings of the viewer.
//
// Captions are looked up by (category, locale) instead of being translated at
// runtime; unknown locales fall back to English.
package catalog

import (
	"fmt"
	"poi-viewer/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	KeyEmpty   = "markers.empty"
	KeyLoading = "markers.loading"
	KeyHelp    = "help.keys"
)

func captionKey(c domain.Category) string { return "caption." + string(c) }
func modeKey(c domain.Category) string    { return "mode." + string(c) }

var messages = map[domain.LocaleTag]map[string]string{
	domain.LocaleKorean: {
		captionKey(domain.CategoryTrending):   "인스타그램 해시태그 기반 지금 뜨는 장소들!",
		captionKey(domain.CategoryEssentials): "당장 필요한 장소 (화장실, 편의점 등)를 찾을 수 있어요.",
		captionKey(domain.CategoryRoutes):     "여행 루트로 코스 따라가기!",
		modeKey(domain.CategoryTrending):      "🔥 지금 인기",
		modeKey(domain.CategoryEssentials):    "🧻 필수 장소",
		modeKey(domain.CategoryRoutes):        "🎯 추천 루트",
		KeyEmpty:                              "표시할 장소가 없어요.",
		KeyLoading:                            "불러오는 중…",
		KeyHelp:                               "1/2/3 모드 선택 · ←/→ 이동 · r 새로고침 · q 종료",
	},
	domain.LocaleEnglish: {
		captionKey(domain.CategoryTrending):   "Trending places based on Instagram!",
		captionKey(domain.CategoryEssentials): "Find essentials like toilets and convenience stores.",
		captionKey(domain.CategoryRoutes):     "Follow suggested travel routes!",
		modeKey(domain.CategoryTrending):      "🔥 Trending now",
		modeKey(domain.CategoryEssentials):    "🧻 Essentials",
		modeKey(domain.CategoryRoutes):        "🎯 Suggested routes",
		KeyEmpty:                              "No places to show.",
		KeyLoading:                            "Loading…",
		KeyHelp:                               "1/2/3 select mode · ←/→ move · r refresh · q quit",
	},
}

// Captions resolves display strings for a locale.
type Captions struct {
	cat *catalog.Builder
}

func New() (*Captions, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for locale, msgs := range messages {
		tag, err := language.Parse(string(locale))
		if err != nil {
			return nil, fmt.Errorf("captions: parse locale %q: %w", locale, err)
		}
		for key, value := range msgs {
			if err := b.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("captions: set %s/%s: %w", locale, key, err)
			}
		}
	}
	return &Captions{cat: b}, nil
}

// MustNew is New for package-level wiring where the fixed table cannot fail.
func MustNew() *Captions {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Captions) printer(locale domain.LocaleTag) *message.Printer {
	if !locale.Recognized() {
		locale = domain.DefaultLocale
	}
	return message.NewPrinter(language.Make(string(locale)), message.Catalog(c.cat))
}

// Text returns the message stored under key.
func (c *Captions) Text(key string, locale domain.LocaleTag) string {
	return c.printer(locale).Sprintf(key)
}

// Caption is the one-line description shown under the map for a mode.
func (c *Captions) Caption(category domain.Category, locale domain.LocaleTag) string {
	return c.Text(captionKey(category), locale)
}

// ModeLabel is the button label of a mode.
func (c *Captions) ModeLabel(category domain.Category, locale domain.LocaleTag) string {
	return c.Text(modeKey(category), locale)
}
