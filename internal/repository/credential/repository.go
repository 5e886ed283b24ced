package credential

// Repository persists the admin session token across process restarts.
// The token is opaque; it is stored on login, attached to admin-scoped
// requests, and removed only by an explicit clear.
type Repository interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}
