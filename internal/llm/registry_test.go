package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registryTestProvider struct{}

func (registryTestProvider) GenerateContent(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (registryTestProvider) GetProviderName() string { return "registry-test" }

func TestRegistryResolvesRegisteredProvider(t *testing.T) {
	RegisterProvider("registry-test", func() (Provider, error) {
		return registryTestProvider{}, nil
	})

	p, err := NewProvider("registry-test")
	require.NoError(t, err)
	assert.Equal(t, "registry-test", p.GetProviderName())
}

func TestRegistryUnknownProvider(t *testing.T) {
	_, err := NewProvider("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

func TestRegistryFactoryErrorPropagates(t *testing.T) {
	RegisterProvider("registry-broken", func() (Provider, error) {
		return nil, errors.New("missing api key")
	})

	_, err := NewProvider("registry-broken")
	assert.EqualError(t, err, "missing api key")
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &ProviderError{Provider: "gemini", Code: ErrCodeServiceDown, Message: "upstream failed", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "gemini error")
	assert.Contains(t, err.Error(), "connection reset")
}
