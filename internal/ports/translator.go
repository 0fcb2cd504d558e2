package ports

import (
	"context"
	"poi-viewer/internal/domain"
)

// Contract for an external text translation service.
type Translator interface {
	Translate(ctx context.Context, text string, target domain.LocaleTag) (string, error)
}
