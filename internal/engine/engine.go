package engine

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ivlev/viewanimator/internal/catalog"
	"github.com/ivlev/viewanimator/internal/config"
	"github.com/ivlev/viewanimator/internal/preview"
	"github.com/ivlev/viewanimator/internal/source"
	"github.com/ivlev/viewanimator/internal/system"
	"golang.org/x/sync/errgroup"
)

// SnapshotProject writes the initial and final pose of every catalog entry
// as PNG files.
type SnapshotProject struct {
	Params   config.PreviewParams
	Source   source.Source // nil draws a QR placeholder per entry
	Renderer *preview.Renderer
	Logger   *log.Logger
}

func NewSnapshotProject(params config.PreviewParams, src source.Source, logger *log.Logger) *SnapshotProject {
	if logger == nil {
		logger = log.Default()
	}
	return &SnapshotProject{
		Params:   params,
		Source:   src,
		Renderer: preview.NewRenderer(params.Width, params.Height),
		Logger:   logger,
	}
}

// Run renders all snapshots and returns the written paths in sorted order.
// The first failure cancels the remaining work.
func (p *SnapshotProject) Run(ctx context.Context, entries []catalog.Entry) ([]string, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("nothing to render")
	}
	if err := checkFileNames(entries); err != nil {
		return nil, err
	}
	if err := system.EnsureDir(p.Params.OutputDir); err != nil {
		return nil, err
	}

	startTime := time.Now()

	var shared image.Image
	if p.Source != nil {
		page := p.Params.Page
		if page < 0 || page >= p.Source.PageCount() {
			return nil, fmt.Errorf("page %d out of range, source has %d", page, p.Source.PageCount())
		}
		img, err := p.Source.RenderPage(page, p.Params.DPI)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", page, err)
		}
		shared = img
	}

	workers := p.Params.Workers
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	paths := make([]string, 0, len(entries)*2)
	results := make(chan string, len(entries)*2)

	for _, entry := range entries {
		for _, pose := range []preview.Pose{preview.Initial, preview.Final} {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				img := shared
				if img == nil {
					var err error
					img, err = p.placeholder(entry)
					if err != nil {
						return err
					}
				}
				path, err := p.snapshot(img, entry, pose)
				if err != nil {
					return fmt.Errorf("%s %s: %w", entry.Name, pose, err)
				}
				p.Logger.Debug("snapshot written", "animation", entry.Name, "pose", pose, "path", path)
				results <- path
				return nil
			})
		}
	}

	err := g.Wait()
	close(results)
	for path := range results {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	if err != nil {
		return paths, err
	}

	p.Logger.Info("snapshots ready", "count", len(paths), "dir", p.Params.OutputDir,
		"elapsed", time.Since(startTime).Round(time.Millisecond))
	return paths, nil
}

func (p *SnapshotProject) placeholder(entry catalog.Entry) (image.Image, error) {
	size := p.Params.Width
	if p.Params.Height < size {
		size = p.Params.Height
	}
	return source.NewQRSource(entry.Animation.String(), size/2).RenderPage(0, p.Params.DPI)
}

func (p *SnapshotProject) snapshot(img image.Image, entry catalog.Entry, pose preview.Pose) (string, error) {
	canvas, err := p.Renderer.RenderPose(img, entry.Animation, pose)
	if err != nil {
		return "", err
	}
	defer p.Renderer.Release(canvas)

	path := filepath.Join(p.Params.OutputDir, SnapshotName(entry.Name, pose))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, canvas); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode png: %w", err)
	}
	return path, f.Close()
}

// checkFileNames rejects entries whose names clean up to the same file.
func checkFileNames(entries []catalog.Entry) error {
	owner := make(map[string]string, len(entries))
	for _, e := range entries {
		file := SnapshotName(e.Name, preview.Initial)
		if prev, ok := owner[file]; ok {
			return fmt.Errorf("animations %q and %q would both be written to %s", prev, e.Name, file)
		}
		owner[file] = e.Name
	}
	return nil
}

// SnapshotName builds the file name for one pose of an entry.
func SnapshotName(name string, pose preview.Pose) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf("%s_%s.png", clean, pose)
}
