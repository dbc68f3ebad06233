// Package walker traverses a directory tree and applies resolved naming
// rules to every entry it finds.
package walker

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/eykd/dircompat-go/internal/domain"
)

// EntryKind classifies a directory entry without following links.
type EntryKind int

const (
	// KindFile is any entry that is neither a directory nor a symlink.
	KindFile EntryKind = iota
	// KindDir is a directory.
	KindDir
	// KindSymlink is a symbolic link, whatever it points to.
	KindSymlink
)

// DirEntry is one name in a directory listing.
type DirEntry struct {
	Name string
	Kind EntryKind
}

// Tree abstracts reading directory listings.
type Tree interface {
	ReadDir(path string) ([]DirEntry, error)
}

// Excluder decides whether an entry is left out of the walk. rel is the
// slash-separated path relative to the walk root.
type Excluder interface {
	Excluded(rel string, isDir bool) bool
}

// Result holds everything observed during one walk.
type Result struct {
	Violations  []domain.Violation
	Directories int
	Files       int
}

// Walker applies check groups to a directory tree.
type Walker struct {
	tree     Tree
	excluder Excluder
	logger   logrus.FieldLogger
}

// Option configures a Walker.
type Option func(*Walker)

// WithExcluder skips entries the excluder matches.
func WithExcluder(e Excluder) Option {
	return func(w *Walker) { w.excluder = e }
}

// WithLogger sets the logger used to report skipped entries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(w *Walker) { w.logger = l }
}

// New creates a Walker reading from tree.
func New(tree Tree, opts ...Option) *Walker {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	w := &Walker{tree: tree, logger: discard}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk checks the root's own name, then every entry below it. Symlinks and
// directories that cannot be read are skipped without being counted.
// The only error returned is the context's.
func (w *Walker) Walk(ctx context.Context, root string, groups []domain.Group) (*Result, error) {
	root = filepath.Clean(root)
	res := &Result{}

	parent, name := filepath.Split(root)
	if name != "" {
		w.check(name, parent, domain.Siblings{}, groups, res)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := w.tree.ReadDir(root)
	if err != nil {
		w.skip(root, err)
		return res, nil
	}
	if err := w.visit(ctx, root, "", entries, groups, res); err != nil {
		return nil, err
	}
	return res, nil
}

type pendingDir struct {
	path    string
	rel     string
	entries []DirEntry
}

// visit checks every entry of one directory, then descends into its
// subdirectories in listing order.
func (w *Walker) visit(ctx context.Context, dir, rel string, entries []DirEntry, groups []domain.Group, res *Result) error {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	listing := domain.NewListing(names)

	var subdirs []pendingDir
	for i, e := range entries {
		childPath := domain.Entry{Name: e.Name, Dir: dir}.Path()
		if e.Kind == KindSymlink {
			w.logger.WithField("path", childPath).Debug("skipping symlink")
			continue
		}
		childRel := path.Join(rel, e.Name)
		if w.excluder != nil && w.excluder.Excluded(childRel, e.Kind == KindDir) {
			w.logger.WithField("path", childPath).Debug("skipping excluded entry")
			continue
		}

		var children []DirEntry
		if e.Kind == KindDir {
			if err := ctx.Err(); err != nil {
				return err
			}
			var err error
			children, err = w.tree.ReadDir(childPath)
			if err != nil {
				w.skip(childPath, err)
				continue
			}
		}

		w.check(e.Name, dir, listing.Siblings(i), groups, res)

		if e.Kind == KindDir {
			res.Directories++
			subdirs = append(subdirs, pendingDir{path: childPath, rel: childRel, entries: children})
		} else {
			res.Files++
		}
	}

	for _, sd := range subdirs {
		if err := w.visit(ctx, sd.path, sd.rel, sd.entries, groups, res); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) check(name, dir string, siblings domain.Siblings, groups []domain.Group, res *Result) {
	for _, g := range groups {
		if v, ok := g.Check(name, dir, siblings); ok {
			res.Violations = append(res.Violations, v)
		}
	}
}

func (w *Walker) skip(p string, err error) {
	if errors.Is(err, fs.ErrPermission) {
		w.logger.WithField("path", p).Debug("permission denied, skipping")
		return
	}
	w.logger.WithField("path", p).WithError(err).Warn("cannot read directory, skipping")
}
