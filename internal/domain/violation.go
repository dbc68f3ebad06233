package domain

// Violation describes one rule failure for one entry.
type Violation struct {
	Kind        Kind
	Path        string
	Filesystems []Filesystem
	Message     string
}

// String returns the human-readable message.
func (v Violation) String() string {
	return v.Message
}
