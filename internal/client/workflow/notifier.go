package workflow

import "context"

// Notifier shows a blocking message to the user and returns once it has
// been dismissed.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// Translator resolves UI text keys against the active locale.
type Translator interface {
	T(key string) string
}
