package cmd

import (
	"context"

	"github.com/eykd/dircompat-go/internal/domain"
	"github.com/eykd/dircompat-go/internal/exclude"
	"github.com/eykd/dircompat-go/internal/fs"
	"github.com/eykd/dircompat-go/internal/walker"
)

// walkChecker implements Checker by walking a real directory tree.
type walkChecker struct {
	tree     walker.Tree
	validate func(path string) error
}

// NewWalkChecker returns a Checker backed by the operating system's filesystem.
func NewWalkChecker() Checker {
	return &walkChecker{tree: fs.OSTree{}, validate: fs.ValidateRoot}
}

func (c *walkChecker) Check(ctx context.Context, req CheckRequest) (*CheckResult, error) {
	if err := c.validate(req.Directory); err != nil {
		return nil, err
	}

	matcher, err := exclude.New(req.Exclude)
	if err != nil {
		return nil, err
	}

	opts := []walker.Option{walker.WithExcluder(matcher)}
	if req.Logger != nil {
		opts = append(opts, walker.WithLogger(req.Logger))
		req.Logger.WithField("directory", req.Directory).
			WithField("filesystems", domain.JoinFilesystems(req.Filesystems)).
			WithField("exclude", matcher.Len()).
			Debug("starting check")
	}

	res, err := walker.New(c.tree, opts...).Walk(ctx, req.Directory, domain.Resolve(req.Filesystems))
	if err != nil {
		return nil, err
	}

	return &CheckResult{
		Directory:   req.Directory,
		Filesystems: req.Filesystems,
		Walk:        res,
	}, nil
}
