package swap

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownProvider is returned when a provider tag is not part of the
// supported set.
var ErrUnknownProvider = errors.New("unknown swap provider")

// Provider tags the third party that executes an order.
type Provider string

const (
	ProviderChangeNow    Provider = "changenow"
	ProviderChangelly    Provider = "changelly"
	ProviderExolix       Provider = "exolix"
	ProviderLetsExchange Provider = "letsexchange"
	ProviderStealthEx    Provider = "stealthex"
	ProviderSwapuz       Provider = "swapuz"
	ProviderQuickEx      Provider = "quickex"
)

var providers = []Provider{
	ProviderChangeNow,
	ProviderChangelly,
	ProviderExolix,
	ProviderLetsExchange,
	ProviderStealthEx,
	ProviderSwapuz,
	ProviderQuickEx,
}

// Providers returns every supported provider.
func Providers() []Provider {
	return slices.Clone(providers)
}

// ParseProvider resolves a provider tag, ignoring case and surrounding spaces.
func ParseProvider(tag string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(tag)))
	if !slices.Contains(providers, p) {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, tag)
	}

	return p, nil
}
