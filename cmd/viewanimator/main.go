package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ivlev/viewanimator/internal/animation"
	"github.com/ivlev/viewanimator/internal/catalog"
	"github.com/ivlev/viewanimator/internal/config"
	"github.com/ivlev/viewanimator/internal/engine"
	"github.com/ivlev/viewanimator/internal/source"
	"github.com/ivlev/viewanimator/internal/system"
)

type options struct {
	configPath  string
	catalogPath string
	catalogDir  string
	name        string
	save        bool
	count       int
	seed        int64
	input       string
	page        int
	dpi         int
	out         string
	width       int
	height      int
	workers     int
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML with offset, max_zoom_scale, max_rotation_angle")
	flag.StringVar(&opts.catalogPath, "catalog", "", "YAML catalog of animations (\"latest\" picks the newest in -catalog-dir)")
	flag.StringVar(&opts.catalogDir, "catalog-dir", "catalogs", "Directory for saved catalogs")
	flag.StringVar(&opts.name, "name", "", "Only use the catalog entry with this name")
	flag.BoolVar(&opts.save, "save", false, "Save randomly generated animations as a catalog in -catalog-dir")
	flag.IntVar(&opts.count, "count", 3, "How many random animations to generate when no catalog is given")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed (0 = current time)")
	flag.StringVar(&opts.input, "input", "", "PDF, image or image directory to preview (empty: newest file in input/, else a QR placeholder)")
	flag.IntVar(&opts.page, "page", 0, "Page or image index of the input")
	flag.IntVar(&opts.dpi, "dpi", 150, "DPI for PDF input")
	flag.StringVar(&opts.out, "out", "", "Directory for initial/final pose snapshots (empty: no snapshots)")
	flag.IntVar(&opts.width, "width", 640, "Snapshot width")
	flag.IntVar(&opts.height, "height", 480, "Snapshot height")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "Parallel snapshot renders")
	verbose := flag.Bool("verbose", false, "Debug logging")

	flag.Parse()

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	if err := run(context.Background(), opts, logger); err != nil {
		logger.Error("viewanimator", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, logger *log.Logger) error {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	logger.Debug("bounds", "offset", cfg.Offset, "max_zoom_scale", cfg.MaxZoomScale, "max_rotation_angle", cfg.MaxRotationAngle)

	entries, err := loadEntries(opts, cfg, logger)
	if err != nil {
		return err
	}

	if opts.catalogPath == "" && opts.save {
		if err := system.EnsureDir(opts.catalogDir); err != nil {
			return err
		}
		path := catalog.GeneratePath(opts.catalogDir)
		if err := catalog.Write(&catalog.Catalog{Version: "1.0", Animations: entries}, path); err != nil {
			return fmt.Errorf("failed to save catalog: %w", err)
		}
		logger.Info("catalog saved", "path", path)
	}

	for _, e := range entries {
		fmt.Printf("%-16s %-22s initial=%v final=%v\n", e.Name, e.Animation, e.Animation.InitialTransform(), e.Animation.FinalTransform())
	}

	if opts.out == "" {
		return nil
	}

	// Without -input try the newest file in input/, otherwise draw a QR placeholder
	inputPath := opts.input
	if inputPath == "" {
		if latest, err := system.FindLatest("input", system.PreviewInputExtensions...); err == nil {
			inputPath = latest
			logger.Info("input selected", "path", inputPath)
		}
	}

	var src source.Source
	if inputPath != "" {
		src, err = source.Open(inputPath)
		if err != nil {
			return err
		}
		defer src.Close()
	}

	params := config.PreviewParams{
		Width:     opts.width,
		Height:    opts.height,
		DPI:       opts.dpi,
		Page:      opts.page,
		Workers:   opts.workers,
		OutputDir: opts.out,
	}

	_, err = engine.NewSnapshotProject(params, src, logger).Run(ctx, entries)
	return err
}

func loadEntries(opts options, cfg config.Config, logger *log.Logger) ([]catalog.Entry, error) {
	catalogPath := opts.catalogPath
	if catalogPath == "latest" {
		latest, err := catalog.FindLatest(opts.catalogDir)
		if err != nil {
			return nil, err
		}
		catalogPath = latest
	}

	if catalogPath != "" {
		c, err := catalog.Read(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", catalogPath, err)
		}
		logger.Info("catalog loaded", "path", catalogPath, "animations", len(c.Animations))

		if opts.name == "" {
			return c.Animations, nil
		}
		a, ok := c.Lookup(opts.name)
		if !ok {
			return nil, fmt.Errorf("no animation named %q in %s", opts.name, catalogPath)
		}
		return []catalog.Entry{{Name: opts.name, Animation: a}}, nil
	}

	if opts.name != "" {
		return nil, fmt.Errorf("-name needs -catalog")
	}
	if opts.count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", opts.count)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("random animations", "count", opts.count, "seed", seed)

	r := rand.New(rand.NewSource(seed))
	entries := make([]catalog.Entry, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		a, ok := animation.Random(r, cfg).(animation.Type)
		if !ok {
			return nil, fmt.Errorf("unexpected animation implementation")
		}
		entries = append(entries, catalog.Entry{Name: fmt.Sprintf("random_%d", i+1), Animation: a})
	}
	return entries, nil
}
