// Package i18n resolves the messages of every error rotini reports.
//
// Messages live in JSON locale files embedded into the binary (locales/en.json is the
// reference set, every other language must provide exactly the same keys). The
// process-wide bundle returned by Default drives all errors; switch languages with
//
//	i18n.Default().SetDefaultLanguage(language.German)
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/napalu/rotini/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrDefaultLanguageNotFound            = errors.New("default " + ErrLanguageNotFound.Error())
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

type Bundle struct {
	mu             sync.RWMutex
	defaultLang    language.Tag
	translations   map[language.Tag]map[string]string
	catalog        *catalog.Builder
	printers       map[language.Tag]*message.Printer
	validatedLangs map[language.Tag]struct{}
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the process-wide bundle
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle loaded with the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:    language.English,
		translations:   make(map[language.Tag]map[string]string),
		catalog:        catalog.NewBuilder(),
		printers:       make(map[language.Tag]*message.Printer),
		validatedLangs: make(map[language.Tag]struct{}),
	}
}

func NewBundleWithFS(fs embed.FS, dirPrefix string) (*Bundle, error) {
	b := NewEmptyBundle()

	if err := b.loadEmbeddedWithFS(fs, dirPrefix); err != nil {
		return nil, err
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	b.validatedLangs[b.defaultLang] = struct{}{}

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	b.mu.RLock()
	defaultLang := b.defaultLang
	b.mu.RUnlock()

	return b.TL(defaultLang, key, args...)
}

// TL returns the translation for the given language and key
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if p, exists := b.printers[lang]; exists {
		return p.Sprintf(key, args...)
	}

	if p := b.printers[b.defaultLang]; p != nil {
		return p.Sprintf(key, args...)
	}

	return key
}

// Message returns the unformatted message stored for key in the default language,
// falling back to English and finally to the key itself
func (b *Bundle) Message(key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.translations[b.defaultLang][key]; ok {
		return msg
	}
	if msg, ok := b.translations[language.English][key]; ok {
		return msg
	}

	return key
}

// AddLanguage adds a new language to the bundle or updates existing language if it exists
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing := b.translations[lang]
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	original := b.translations[lang]
	b.translations[lang] = merged

	// only new non-default languages are checked against the reference key set
	var errs []error
	if lang != b.defaultLang && original == nil {
		errs = b.validateLanguage(lang)
	}

	if len(errs) > 0 {
		if original == nil {
			delete(b.translations, lang)
		} else {
			b.translations[lang] = original
		}
		return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errs)
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			delete(merged, key)
			b.translations[lang] = merged
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.validatedLangs[lang] = struct{}{}

	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]

	return exists
}

// Languages returns a list of supported languages
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}

	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, exists := b.translations[lang]
	if !exists {
		return false
	}

	_, exists = translations[key]

	return exists
}

// SetDefaultLanguage sets the language messages are resolved in. Unknown languages are ignored
// and reported through the returned error.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.translations[lang]; !exists {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.defaultLang = lang

	return nil
}

// GetDefaultLanguage returns the language messages are currently resolved in
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// MatchLanguage returns the supported language closest to the given BCP 47 tag
func (b *Bundle) MatchLanguage(tag string) (language.Tag, error) {
	requested, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %s", ErrLanguageNotFound, tag)
	}

	supported := b.Languages()
	_, index, confidence := language.NewMatcher(supported).Match(requested)
	if confidence == language.No {
		return language.Und, fmt.Errorf("%w: %s", ErrLanguageNotFound, tag)
	}

	return supported[index], nil
}

func (b *Bundle) loadEmbeddedWithFS(fs embed.FS, dirPrefix string) error {
	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return err
	}

	// the default language goes first so the others can be checked against it
	langEntries := make([]types.KeyValue[language.Tag, string], 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		lang := strings.TrimSuffix(entry.Name(), ".json")
		parsedLang, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		if parsedLang != b.defaultLang {
			langEntries = append(langEntries, types.KeyValue[language.Tag, string]{
				Key:   parsedLang,
				Value: filepath.Join(dirPrefix, entry.Name()),
			})
		} else if err := b.processLangFile(fs, parsedLang, filepath.Join(dirPrefix, entry.Name())); err != nil {
			return err
		}
	}

	for _, langEntry := range langEntries {
		if err := b.processLangFile(fs, langEntry.Key, langEntry.Value); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) processLangFile(fs embed.FS, lang language.Tag, path string) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return err
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var errs []error

	translations, exists := b.translations[lang]
	if !exists {
		return []error{fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)}
	}

	if len(translations) == 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	defaultTranslations, exists := b.translations[b.defaultLang]
	if !exists {
		return append(errs, fmt.Errorf("%w: %s", ErrDefaultLanguageNotFound, b.defaultLang))
	}

	for key := range defaultTranslations {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}

	for key := range translations {
		if _, exists := defaultTranslations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errs
}
