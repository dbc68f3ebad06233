// Package report renders walk results as a JSON document and writes it to
// a file shared safely between concurrent runs.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/eykd/dircompat-go/internal/domain"
	"github.com/eykd/dircompat-go/internal/lock"
	"github.com/eykd/dircompat-go/internal/walker"
)

// LockTimeout bounds how long Write waits for another writer.
const LockTimeout = 10 * time.Second

// Violation is the JSON form of a domain.Violation.
type Violation struct {
	Kind        string   `json:"kind"`
	Path        string   `json:"path"`
	Filesystems []string `json:"filesystems"`
	Message     string   `json:"message"`
}

// Summary holds the counts of one run.
type Summary struct {
	Directories int `json:"directories"`
	Files       int `json:"files"`
	Violations  int `json:"violations"`
}

// Document is the full JSON report.
type Document struct {
	Directory   string      `json:"directory"`
	Filesystems []string    `json:"filesystems"`
	Summary     Summary     `json:"summary"`
	Violations  []Violation `json:"violations"`
}

// New builds a Document from a walk result.
func New(directory string, fss []domain.Filesystem, res *walker.Result) Document {
	doc := Document{
		Directory:   directory,
		Filesystems: fsNames(fss),
		Violations:  make([]Violation, 0, len(res.Violations)),
		Summary: Summary{
			Directories: res.Directories,
			Files:       res.Files,
			Violations:  len(res.Violations),
		},
	}
	for _, v := range res.Violations {
		doc.Violations = append(doc.Violations, Violation{
			Kind:        string(v.Kind),
			Path:        v.Path,
			Filesystems: fsNames(v.Filesystems),
			Message:     v.Message,
		})
	}
	return doc
}

func fsNames(fss []domain.Filesystem) []string {
	out := make([]string, len(fss))
	for i, fs := range fss {
		out[i] = string(fs)
	}
	return out
}

// Encode writes the document as indented JSON.
func (d Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Write stores the document at path. Writers are serialized through an
// advisory lock at path+".lock", and the file is replaced atomically so
// readers never see a partial report.
func Write(ctx context.Context, path string, doc Document) error {
	ctx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()

	l := lock.NewFromPath(path + ".lock")
	if err := l.Acquire(ctx); err != nil {
		return fmt.Errorf("locking report %s: %w", path, err)
	}
	defer l.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := doc.Encode(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing report %s: %w", path, err)
	}
	return nil
}
