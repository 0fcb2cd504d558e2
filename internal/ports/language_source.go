package ports

// Reports the runtime's preferred language, e.g. "ko-KR". Empty when unknown.
type LanguageSource interface {
	Language() string
}
