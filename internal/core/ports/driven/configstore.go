package driven

// ConfigStore holds settings as flat dot-separated keys such as
// "search.page_size". Typed getters return the zero value for missing keys
// and for values of another type.
type ConfigStore interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (any, bool)

	GetString(key string) string

	// GetInt truncates floating point values.
	GetInt(key string) int

	// GetFloat converts integer values.
	GetFloat(key string) float64

	// Set stores a value. File-backed stores persist it immediately.
	Set(key string, value any) error

	// Save persists the current values.
	Save() error

	// Load replaces the current values with what is in storage.
	Load() error

	// Path identifies the backing storage.
	Path() string
}
