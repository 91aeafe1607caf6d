package ports

// EditorOpener opens a repository folder in the user's editor
type EditorOpener interface {
	// Open opens path. A non-empty preferred editor wins over the
	// environment and platform defaults.
	Open(path string, preferred string) error
}
