package contract

// Provider bundles the storage-backend repositories behind one polymorphic
// surface. Exactly one implementation is constructed at process start (remote
// relational backend, or the local fallback store when no remote connection
// is configured) and injected into every consuming component. The choice is
// never re-evaluated: a failed remote call at runtime stays a failed call.
type Provider interface {
	Notes() NoteRepository
	Categories() CategoryRepository
	Users() UserRepository

	// Name identifies the active backend ("remote" or "local") for logging.
	Name() string
}
