package domain

import "strings"

var placeholderCredentials = map[string]struct{}{
	"your_rapidapi_key_here":   {},
	"your_adzuna_app_id_here":  {},
	"your_adzuna_app_key_here": {},
	"your_api_key_here":        {},
}

// ProviderCredentials holds optional API credentials for one job source
type ProviderCredentials struct {
	APIKey string
	AppID  string
	AppKey string
}

// UsableCredential reports whether v is set and not a template placeholder
func UsableCredential(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	_, placeholder := placeholderCredentials[strings.ToLower(v)]
	return !placeholder
}

// HasAPIKey reports whether a usable API key is present
func (c ProviderCredentials) HasAPIKey() bool {
	return UsableCredential(c.APIKey)
}

// HasAppPair reports whether both app id and app key are usable
func (c ProviderCredentials) HasAppPair() bool {
	return UsableCredential(c.AppID) && UsableCredential(c.AppKey)
}
