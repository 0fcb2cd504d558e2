package render

import (
	"poi-viewer/internal/adapters/catalog"
	"poi-viewer/internal/domain"

	"github.com/rs/zerolog"
)

// LogRenderer is the headless rendering surface: one log line per snapshot.
type LogRenderer struct {
	logger   zerolog.Logger
	captions *catalog.Captions
}

func NewLogRenderer(logger zerolog.Logger, captions *catalog.Captions) *LogRenderer {
	return &LogRenderer{logger: logger, captions: captions}
}

func (r *LogRenderer) Render(s domain.ViewSnapshot) {
	popups := make([]string, 0, len(s.Markers))
	for _, m := range s.Markers {
		popups = append(popups, m.PopupText())
	}

	r.logger.Info().
		Str("center", s.Coordinate.String()).
		Str("mode", string(s.Category)).
		Str("locale", string(s.Locale)).
		Int("markers", len(s.Markers)).
		Strs("popups", popups).
		Str("caption", r.captions.Caption(s.Category, s.Locale)).
		Msg("view updated")
}
