// Package common contains constants and helpers shared by the client layers.
package common

const (
	// SessionHeaderName carries the ephemeral session identifier on every
	// request to the remote service.
	SessionHeaderName = "X-Session-ID"

	// LocalePreferenceKey is the fixed preference-storage key holding the
	// user's locale.
	LocalePreferenceKey = "lang"
)
