// Package dispatch maps recognized text prefixes to address-book
// operations: the command parser, the handlers, the interactive loop, and
// the translation bundle for user-facing strings.
package dispatch

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tartampluch/go-contactbook/internal/config"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves user-facing message keys for one language.
// Command synonyms are not translated here: every language's synonyms are
// always recognized by the parser.
type Translator struct {
	localizer *i18n.Localizer
}

// NewTranslator loads the embedded locale files and builds a localizer for
// lang, falling back to English for missing keys.
func NewTranslator(lang string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return &Translator{}
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
	}

	if lang == "" {
		lang = config.DefaultLanguage
	}
	slog.Debug(config.MsgTransReady,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyLang, lang,
	)
	return &Translator{
		localizer: i18n.NewLocalizer(bundle, lang, config.DefaultLanguage),
	}
}

// Msg translates a key without template data.
func (t *Translator) Msg(key string) string {
	return t.MsgData(key, nil)
}

// MsgData translates a key with template data, returning the key itself
// when no translation exists so output stays readable.
func (t *Translator) MsgData(key string, data map[string]any) string {
	if t.localizer == nil {
		return key
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
