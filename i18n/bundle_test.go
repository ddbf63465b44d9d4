package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const contextKey = "rotini.msg.context"

func TestNewBundle_LoadsEmbeddedLocales(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	assert.Equal(t, []language.Tag{language.German, language.English}, bundle.Languages())
	assert.Equal(t, language.English, bundle.GetDefaultLanguage())
	assert.True(t, bundle.HasKey(language.German, contextKey))
	assert.False(t, bundle.HasKey(language.French, contextKey))
	assert.Equal(t, "Context", bundle.Message(contextKey))
	assert.Equal(t, "Kontext", bundle.TL(language.German, contextKey))
}

func TestBundle_SetDefaultLanguage(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	require.NoError(t, bundle.SetDefaultLanguage(language.German))
	assert.Equal(t, "Kontext", bundle.Message(contextKey))
	assert.Equal(t, "Kontext", bundle.T(contextKey))

	err = bundle.SetDefaultLanguage(language.Japanese)
	assert.ErrorIs(t, err, ErrLanguageNotFound)
	assert.Equal(t, language.German, bundle.GetDefaultLanguage())
}

func TestBundle_MessageFallsBack(t *testing.T) {
	bundle := NewEmptyBundle()
	require.NoError(t, bundle.AddLanguage(language.English, map[string]string{"greeting": "hello"}))

	assert.Equal(t, "hello", bundle.Message("greeting"))
	assert.Equal(t, "missing.key", bundle.Message("missing.key"))
	assert.Equal(t, "hello", bundle.TL(language.Spanish, "greeting"))
}

func TestBundle_AddLanguageValidatesKeys(t *testing.T) {
	bundle := NewEmptyBundle()
	require.NoError(t, bundle.AddLanguage(language.English, map[string]string{"a": "A", "b": "B"}))

	err := bundle.AddLanguage(language.French, map[string]string{"a": "A", "c": "C"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTranslations)
	assert.Contains(t, err.Error(), "missing key")
	assert.Contains(t, err.Error(), "extra key")
	assert.False(t, bundle.HasLanguage(language.French))

	require.NoError(t, bundle.AddLanguage(language.French, map[string]string{"a": "à", "b": "bé"}))
	assert.Equal(t, "bé", bundle.TL(language.French, "b"))

	// updates to an existing language are merged
	require.NoError(t, bundle.AddLanguage(language.French, map[string]string{"a": "ah"}))
	assert.Equal(t, "ah", bundle.TL(language.French, "a"))
	assert.Equal(t, "bé", bundle.TL(language.French, "b"))
}

func TestBundle_MatchLanguage(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	tests := []struct {
		tag     string
		want    language.Tag
		wantErr bool
	}{
		{"de", language.German, false},
		{"de-CH", language.German, false},
		{"en-GB", language.English, false},
		{"not a tag!", language.Und, true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := bundle.MatchLanguage(tt.tag)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrLanguageNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrError(t *testing.T) {
	provider := staticProvider{"greet": "hello %s", "plain": "plain message"}
	sentinel := NewErrorWithProvider("greet", provider)

	err := sentinel.WithArgs("world")
	assert.Equal(t, "hello world", err.Error())
	assert.Equal(t, "greet", err.Key())
	assert.Equal(t, []interface{}{"world"}, err.Args())
	assert.True(t, errors.Is(err, sentinel))

	cause := errors.New("disk full")
	wrapped := NewErrorWithProvider("plain", provider).Wrap(cause)
	assert.Equal(t, "plain message: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
	assert.False(t, errors.Is(wrapped, sentinel))
}

func TestDefaultMessageProvider(t *testing.T) {
	t.Cleanup(func() { SetDefaultMessageProvider(nil) })

	err := NewError("custom.key")
	assert.Equal(t, "custom.key", err.Error())

	SetDefaultMessageProvider(staticProvider{"custom.key": "from provider"})
	assert.Equal(t, "from provider", err.Error())
	assert.Equal(t, "from provider", Message("custom.key"))

	SetDefaultMessageProvider(nil)
	assert.Equal(t, "Context", Message(contextKey))
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	for _, lang := range bundle.Languages() {
		assert.Empty(t, bundle.validateLanguage(lang), lang.String())
	}
}

type staticProvider map[string]string

func (p staticProvider) GetMessage(key string) string {
	if msg, ok := p[key]; ok {
		return msg
	}
	return key
}
