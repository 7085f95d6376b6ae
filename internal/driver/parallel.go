package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sillyfmt/internal/observ"
	"sillyfmt/internal/source"
)

// FileResult is the outcome for one path of ParseFiles. Exactly one of
// Result and Err is set.
type FileResult struct {
	Path   string
	Result *ParseResult
	Err    error
}

// ExpandPaths replaces every directory in paths with the regular files under
// it, sorted, skipping dot-files and dot-directories. Plain files keep their
// position.
func ExpandPaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			// ошибку загрузки сообщит сам файл
			out = append(out, p)
			continue
		}
		var files []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != p && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
		// Сортируем для детерминированного порядка
		sort.Strings(files)
		out = append(out, files...)
	}
	return out, nil
}

// ParseFiles loads paths (directories expanded) into one FileSet and parses
// them in parallel. Results keep the order of the expanded paths. The error
// is only for cancellation or a failed directory walk; unreadable files are
// reported in their FileResult.
func ParseFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ExpandPaths(paths)
	if err != nil {
		return nil, nil, err
	}

	// FileSet не потокобезопасен на запись: загружаем всё заранее
	fileSet := source.NewFileSet()
	loaded := make([]*source.File, len(files))
	timers := make([]*phases, len(files))
	results := make([]FileResult, len(files))
	for i, path := range files {
		results[i].Path = path
		timers[i] = newPhases(path, opts)
		stop := timers[i].track(observ.PhaseLoad)
		loaded[i], results[i].Err = loadFile(fileSet, path, opts)
		stop()
		if results[i].Err != nil {
			log.Warningf("%s", results[i].Err)
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i := range files {
		if loaded[i] == nil {
			continue
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// индекс i уникален для горутины, мьютекс не нужен
			results[i].Result = parseLoaded(fileSet, loaded[i], timers[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	for _, ph := range timers {
		opts.Timer.Merge(ph.timer)
	}
	log.Infof("parsed %d files with %d workers", len(files), jobs)
	return fileSet, results, nil
}
