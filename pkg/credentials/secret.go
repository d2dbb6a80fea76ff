package credentials

import "log/slog"

const redacted = "******"

// Secret holds a sensitive string that must not leak into logs or error
// messages.
type Secret string

// Reveal returns the raw value.
func (s Secret) Reveal() string { return string(s) }

func (s Secret) String() string { return redacted }

func (s Secret) GoString() string { return redacted }

func (s Secret) LogValue() slog.Value { return slog.StringValue(redacted) }

// IsZero reports whether the secret is empty.
func (s Secret) IsZero() bool { return s == "" }
