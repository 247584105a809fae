package config

const (
	LangEN = "en"
	LangES = "es"
)

// IsSupportedLanguage reports whether czmate ships messages for lang.
func IsSupportedLanguage(lang string) bool {
	switch lang {
	case LangEN, LangES:
		return true
	default:
		return false
	}
}

// GetLocaleConfig falls back to English for unsupported languages.
func GetLocaleConfig(lang string) string {
	if IsSupportedLanguage(lang) {
		return lang
	}
	return LangEN
}
