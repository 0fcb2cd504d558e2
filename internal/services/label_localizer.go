package services

import (
	"context"
	"errors"
	"fmt"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/obs"
	"poi-viewer/internal/ports"
	"strings"

	"github.com/rs/zerolog"
)

// LabelLocalizer translates display strings and never fails: whenever the
// translator cannot produce a usable result the input text is returned as is.
// Every call is a single independent attempt; nothing is cached.
type LabelLocalizer struct {
	translator ports.Translator
}

// NewLabelLocalizer accepts a nil translator, in which case Localize is the identity.
func NewLabelLocalizer(translator ports.Translator) *LabelLocalizer {
	return &LabelLocalizer{translator: translator}
}

func (l *LabelLocalizer) Localize(ctx context.Context, text string, target domain.LocaleTag) (out string) {
	if l == nil || l.translator == nil || strings.TrimSpace(text) == "" {
		return text
	}

	var err error
	defer obs.Time(ctx, "label.localize")(&err)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localize: translator panic: %v", r)
			out = text
		}
	}()

	var translated string
	translated, err = l.translator.Translate(ctx, text, target)
	if err == nil && strings.TrimSpace(translated) == "" {
		err = errors.New("localize: empty translation")
	}
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("target", string(target)).Msg("translation failed, showing original")
		return text
	}

	return translated
}
