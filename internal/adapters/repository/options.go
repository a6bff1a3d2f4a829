package repository

// Option applies a configuration option to the SQLiteStore.
type Option func(*SQLiteStore)

// WithPath sets the SQLite database path. Use ":memory:" for an
// ephemeral store.
func WithPath(path string) Option {
	return func(s *SQLiteStore) {
		if path != "" {
			s.path = path
		}
	}
}
