package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error whose message is looked up by key
type TranslatableError interface {
	error
	Key() string
	Args() []any
	Unwrap() error
	WithArgs(args ...any) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
	SetProvider(provider MessageProvider)
}

// MessageProvider returns the unformatted message for a key
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider on top of a Bundle
type BundleMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewBundleMessageProvider returns a provider following the bundle's default language
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle, lang: language.Und}
}

// NewBundleMessageProviderFor returns a provider pinned to lang
func NewBundleMessageProviderFor(bundle *Bundle, lang language.Tag) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle, lang: lang}
}

// GetMessage returns the message for key, or key itself when no language has it
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p == nil || p.bundle == nil {
		return key
	}

	lang := p.lang
	if lang == language.Und {
		lang = p.bundle.DefaultLanguage()
	}
	if msg, ok := p.bundle.Lookup(lang, key); ok {
		return msg
	}

	return key
}

// TrError is a translatable error with optional format arguments and a wrapped cause.
//
// Example usage:
//
//	var ErrNotFound = NewError("glap.error.bad_command")
//	err := ErrNotFound.WithArgs("x").Wrap(cause)
//	errors.Is(err, ErrNotFound) // true
type TrError struct {
	// sentinel shared by all copies, used by errors.Is
	sentinel error
	key      string
	args     []any
	wrapped  error
	provider MessageProvider
}

// NewError creates a translatable error using the default provider
func NewError(key string) *TrError {
	return NewErrorWithProvider(key, getDefaultProvider())
}

// NewErrorWithProvider creates a translatable error using provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
		provider: provider,
	}
}

// Error returns the translated message, formatted with args if provided
func (e *TrError) Error() string {
	msg := e.provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...any) TranslatableError {
	c := *e
	c.args = args
	return &c
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	c := *e
	c.wrapped = err
	return &c
}

// Is implements errors.Is by comparing sentinels
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []any {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// SetProvider replaces the provider used to render the message
func (e *TrError) SetProvider(provider MessageProvider) {
	e.provider = provider
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider sets the provider used by errors created afterwards with NewError
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

// DefaultMessageProvider returns the provider used by NewError
func DefaultMessageProvider() MessageProvider {
	return getDefaultProvider()
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}
	return defaultProvider
}
