// Package fs provides filesystem adapters that implement walker interfaces.
package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"

	"github.com/eykd/dircompat-go/internal/walker"
)

// ErrNotADirectory is returned when the path to check is missing or is not a directory.
var ErrNotADirectory = errors.New("isn't a directory")

// OSTree implements walker.Tree using os.ReadDir. Entries are classified
// from the directory listing itself; links are never followed.
type OSTree struct{}

// ReadDirImpl lists a directory.
func (OSTree) ReadDirImpl(path string) ([]walker.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", path, err)
	}
	out := make([]walker.DirEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, walker.DirEntry{Name: e.Name(), Kind: kindOf(e.Type())})
	}
	return out, nil
}

// ReadDir delegates to ReadDirImpl.
func (t OSTree) ReadDir(path string) ([]walker.DirEntry, error) {
	return t.ReadDirImpl(path)
}

func kindOf(mode iofs.FileMode) walker.EntryKind {
	switch {
	case mode&iofs.ModeSymlink != 0:
		return walker.KindSymlink
	case mode.IsDir():
		return walker.KindDir
	default:
		return walker.KindFile
	}
}

// ValidateRoot returns ErrNotADirectory unless path exists and is a
// directory. A symlink to a directory is accepted as a root.
func ValidateRoot(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s %w", path, ErrNotADirectory)
	}
	return nil
}
