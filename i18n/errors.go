package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support. It implements both the TranslatableError interface
// and the standard error interface.
//
// Example usage:
//
//	err := NewError("rotini.error.argument.name")
//	err = err.WithArgs("field", "value")
//	err = err.Wrap(originalError)
type TrError struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	// The translation key
	key string
	// Optional format arguments
	args []interface{}
	// Optional wrapped error
	wrapped error
	// Resolves key to a message; nil means the package default
	messageProvider MessageProvider
}

// BundleMessageProvider implements MessageProvider using a bundle. Messages follow the
// bundle's current default language.
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a new provider with a bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

// GetMessage returns the message for the given key from the bundle
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	return p.bundle.Message(key)
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// NewErrorWithProvider creates a new translatable error with a key and specific provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	return &TrError{
		sentinel:        errors.New(key),
		key:             key,
		messageProvider: provider,
	}
}

// Error returns the message, formatted with args if provided
func (e *TrError) Error() string {
	msg := e.provider().GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel || target == e
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

func (e *TrError) provider() MessageProvider {
	if e.messageProvider != nil {
		return e.messageProvider
	}

	return getDefaultProvider()
}

// Message resolves key through the default provider without formatting
func Message(key string) string {
	return getDefaultProvider().GetMessage(key)
}

// Package-level provider management
var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider allows users to set their own provider. Passing nil restores the
// bundle-backed provider.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
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
