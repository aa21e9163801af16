package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/AgentOS/compiler/internal/shared/paths"
	"github.com/charlievieth/fastwalk"
)

// Clean removes compiler artifacts directly under appsDir whose class name
// keep rejects. A nil keep removes every artifact. Files that are not
// compiler artifacts are never touched. The removed paths are returned
// sorted.
func Clean(ctx context.Context, appsDir string, keep func(className string) bool) ([]string, error) {
	if _, err := os.Stat(appsDir); os.IsNotExist(err) {
		return nil, nil
	}

	var (
		mu    sync.Mutex
		stale []string
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, appsDir, func(p string, d os.DirEntry, err error) error {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || p == appsDir {
			return nil
		}
		if d.IsDir() {
			return filepath.SkipDir
		}

		className, _, ok := paths.ClassNameOf(strings.TrimSuffix(d.Name(), GzipExt))
		if !ok {
			return nil
		}
		if keep != nil && keep(className) {
			return nil
		}

		mu.Lock()
		stale = append(stale, p)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("clean failed: %w", err)
	}

	sort.Strings(stale)
	for _, p := range stale {
		if err := os.Remove(p); err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	return stale, nil
}
