package compiler

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/domain/artifact"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/paths"
	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/types"
	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// DescriptorPattern matches package descriptors one level below the root
var DescriptorPattern = path.Join("*", paths.DescriptorFile)

// Discover parses the descriptor of every package directory under root, in
// name order. Descriptors that cannot be read or declare an unknown type
// are left out.
func (c *Compiler) Discover(ctx context.Context, root string) ([]*types.Descriptor, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read package root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("package root is not a directory: %s", root)
	}

	matches, err := doublestar.Glob(os.DirFS(root), DescriptorPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate packages: %w", err)
	}

	found := make([]*types.Descriptor, 0, len(matches))
	for _, match := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := filepath.Join(root, filepath.FromSlash(match))
		d, err := c.parser.ParseFile(p, "")
		if err != nil {
			c.logger.Debug("Skipping unreadable descriptor", zap.String("path", p), zap.Error(err))
			continue
		}
		if !d.Kind.Valid() {
			c.logger.Debug("Skipping unrecognized package type",
				zap.String("path", p),
				zap.String("type", d.DeclaredType),
			)
			continue
		}
		found = append(found, d)
	}
	return found, nil
}

// Clean removes artifacts from the build tree whose package no longer
// exists under root. With all set every artifact is removed.
func (c *Compiler) Clean(ctx context.Context, root string, all bool) ([]string, error) {
	var keep func(string) bool
	if !all {
		found, err := c.Discover(ctx, root)
		if err != nil {
			return nil, err
		}
		live := make(map[string]struct{}, len(found))
		for _, d := range found {
			live[d.ClassName] = struct{}{}
		}
		keep = func(className string) bool {
			_, ok := live[className]
			return ok
		}
	}

	appsDir := paths.BuildPath(c.opts.BuildRoot).AppsDir()
	removed, err := artifact.Clean(ctx, appsDir, keep)
	if err != nil {
		return nil, err
	}
	for _, p := range removed {
		c.logger.Info("Removed stale artifact", zap.String("path", p))
	}
	return removed, nil
}
