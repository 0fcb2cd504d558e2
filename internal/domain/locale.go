package domain

// Two-letter language code understood by the viewer.
type LocaleTag string

const (
	LocaleEnglish LocaleTag = "en"
	LocaleKorean  LocaleTag = "ko"
)

// DefaultLocale is used whenever detection yields nothing recognized.
const DefaultLocale = LocaleEnglish

// Recognized reports whether captions exist for the tag.
func (t LocaleTag) Recognized() bool {
	switch t {
	case LocaleEnglish, LocaleKorean:
		return true
	}
	return false
}
