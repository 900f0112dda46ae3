// Package i18n holds the message catalogs used to render glap errors.
//
// A Bundle maps language tags to flat key/value translations. The default bundle is
// loaded from the embedded locales directory; callers may add languages at runtime
// or build their own bundle from any fs.FS.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/napalu/glap/types"

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
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle is a set of translations keyed by language. It is safe for concurrent use.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the process-wide bundle built from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle loaded from the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without translations. English is the default language.
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dir. The English file is loaded
// first so the other languages can be checked against its key set.
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := NewEmptyBundle()

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	pending := make([]types.KeyValue[language.Tag, string], 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		kv := types.KeyValue[language.Tag, string]{Key: tag, Value: path.Join(dir, entry.Name())}
		if tag == b.defaultLang {
			pending = append([]types.KeyValue[language.Tag, string]{kv}, pending...)
		} else {
			pending = append(pending, kv)
		}
	}

	if len(pending) == 0 || pending[0].Key != b.defaultLang {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	for _, kv := range pending {
		if err := b.loadFile(fsys, kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// T returns the translation of key in the default language, formatted with args
func (b *Bundle) T(key string, args ...any) string {
	return b.TL(b.DefaultLanguage(), key, args...)
}

// TL returns the translation of key in lang, falling back to the default language
func (b *Bundle) TL(lang language.Tag, key string, args ...any) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, ok := b.printers[lang]; ok {
		return p.Sprintf(key, args...)
	}
	if p, ok := b.printers[b.defaultLang]; ok {
		return p.Sprintf(key, args...)
	}
	if len(args) > 0 {
		return fmt.Sprintf(key, args...)
	}

	return key
}

// Lookup returns the unformatted message for key in lang, falling back to the
// default language and then to English.
func (b *Bundle) Lookup(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, tag := range []language.Tag{lang, b.defaultLang, language.English} {
		if msg, ok := b.translations[tag][key]; ok {
			return msg, true
		}
	}

	return "", false
}

// AddLanguage adds translations for lang, merging with any that already exist.
// A new non-default language must carry exactly the default language's key set.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	original, existed := b.translations[lang]
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}
	b.translations[lang] = merged

	if !existed && lang != b.defaultLang {
		if errs := b.validateLanguage(lang); len(errs) > 0 {
			delete(b.translations, lang)
			return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			if existed {
				b.translations[lang] = original
			} else {
				delete(b.translations, lang)
			}
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))

	return nil
}

// Match returns the best supported language for the given BCP 47 strings
// (for example the value of LANG or Accept-Language).
func (b *Bundle) Match(preferred ...string) language.Tag {
	supported := b.Languages()
	if len(supported) == 0 {
		return b.DefaultLanguage()
	}

	// the matcher returns its first entry when nothing matches
	def := b.DefaultLanguage()
	ordered := append([]language.Tag{def}, supported...)
	tags := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		// strip encodings such as de_DE.UTF-8
		p = strings.ReplaceAll(strings.SplitN(p, ".", 2)[0], "_", "-")
		if t, err := language.Parse(p); err == nil {
			tags = append(tags, t)
		}
	}
	_, idx, conf := language.NewMatcher(ordered).Match(tags...)
	if conf == language.No {
		return def
	}

	return ordered[idx]
}

// HasLanguage reports whether lang has translations
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.translations[lang]
	return ok
}

// Languages returns the supported languages sorted by tag
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

// HasKey reports whether key is translated in lang
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.translations[lang][key]
	return ok
}

// DefaultLanguage returns the language used by T
func (b *Bundle) DefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

// SetDefaultLanguage sets the language used by T. Languages without translations are rejected.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.translations[lang]; !ok {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.defaultLang = lang

	return nil
}

func (b *Bundle) loadFile(fsys fs.FS, lang language.Tag, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return b.AddLanguage(lang, translations)
}

// validateLanguage must be called with the write lock held
func (b *Bundle) validateLanguage(lang language.Tag) []error {
	translations := b.translations[lang]
	if len(translations) == 0 {
		return []error{fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)}
	}

	reference, ok := b.translations[b.defaultLang]
	if !ok {
		return []error{fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)}
	}

	var errs []error
	for key := range reference {
		if _, ok := translations[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}
	for key := range translations {
		if _, ok := reference[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })

	return errs
}
