package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
	lang     string
}

// NewTranslations loads the embedded message files. When localesDir is not
// empty, active.*.toml files found there are loaded on top and may override
// the embedded messages.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	embedded, err := fs.Glob(localeFS, "locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded locales: %w", err)
	}
	for _, file := range embedded {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	if localesDir != "" {
		files, err := fs.Glob(os.DirFS(localesDir), "active.*.toml")
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(filepath.Join(localesDir, file)); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	t := &Translations{bundle: bundle}
	if err := t.SetLanguage(defaultLang); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			t.lang = lang
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

// Language returns the active language tag.
func (t *Translations) Language() string {
	return t.lang
}

func (t *Translations) GetMessage(messageID string, count int, templateData interface{}) string {
	cfg := &i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	}
	if count > 0 {
		cfg.PluralCount = count
	}

	localized, err := t.localize.Localize(cfg)
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}
