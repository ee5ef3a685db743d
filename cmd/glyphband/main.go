// Command glyphband compiles font outlines into band-indexed drawing data
// and manages the on-disk cache.
//
// Usage:
//
//	glyphband [flags] build|info|verify <font>
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"reflect"

	"github.com/gogpu/glyphband"
	"github.com/gogpu/glyphband/cache"
	"github.com/gogpu/glyphband/outline"
)

// cacheDirEnv overrides the default cache directory.
const cacheDirEnv = "GLYPHBAND_CACHE_DIR"

func main() {
	var (
		cacheDir = flag.String("cache", os.Getenv(cacheDirEnv), "cache directory (default $"+cacheDirEnv+" or the user cache directory)")
		workers  = flag.Int("workers", 0, "compiler workers (0 = GOMAXPROCS)")
		source   = flag.String("source", "sfnt", "outline source: sfnt or gotext")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: glyphband [flags] build|info|verify <font>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("glyphband: ")

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	cmd, fontPath := flag.Arg(0), flag.Arg(1)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	glyphband.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := glyphband.DefaultConfig()
	cfg.Workers = *workers
	compiler, err := glyphband.NewCompiler(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var open cache.SourceFunc
	switch *source {
	case "sfnt":
		open = cache.SFNT(outline.WithCubicConversion(0))
	case "gotext":
		open = cache.GoText(outline.WithCubicConversion(0))
	default:
		log.Fatalf("unknown source %q", *source)
	}

	fc, err := cache.New(*cacheDir, cache.WithCompiler(compiler), cache.WithSource(open))
	if err != nil {
		log.Fatal(err)
	}

	switch cmd {
	case "build":
		err = build(fc, fontPath)
	case "info":
		err = info(fc, fontPath)
	case "verify":
		err = verify(fc, compiler, open, fontPath)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// load returns the compiled font and its key. A failed cache write is
// reported but does not fail the command.
func load(fc *cache.FontCache, fontPath string) (*glyphband.FontDrawingData, cache.Key, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, cache.Key{}, err
	}
	key := cache.NewKey(fontPath, data)
	d, err := fc.LoadFontData(fontPath, data)
	var werr *cache.WriteError
	if errors.As(err, &werr) {
		log.Printf("warning: %v", werr)
		err = nil
	}
	return d, key, err
}

func build(fc *cache.FontCache, fontPath string) error {
	d, key, err := load(fc, fontPath)
	if err != nil {
		return err
	}
	s := fc.Stats()
	how := "built"
	if s.FileHits > 0 {
		how = "loaded"
	}
	fmt.Printf("%s %d glyphs: %s\n", how, d.NumGlyphs, fc.Path(key))
	return nil
}

func info(fc *cache.FontCache, fontPath string) error {
	d, key, err := load(fc, fontPath)
	if err != nil {
		return err
	}
	s := d.Stats()
	fmt.Printf("font:          %s\n", fontPath)
	fmt.Printf("units per em:  %v\n", d.UnitsPerEm)
	fmt.Printf("glyphs:        %d\n", s.Glyphs)
	fmt.Printf("empty glyphs:  %d\n", s.EmptyGlyphs)
	fmt.Printf("curves:        %d (%d contour starts)\n", s.Curves, s.Sentinels)
	fmt.Printf("band entries:  %d horizontal, %d vertical\n", s.HorEntries, s.VerEntries)
	fmt.Printf("cache file:    %s\n", fc.Path(key))
	return nil
}

// verify checks the cache file of a font against a fresh compile.
func verify(fc *cache.FontCache, compiler *glyphband.Compiler, open cache.SourceFunc, fontPath string) error {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return err
	}
	key := cache.NewKey(fontPath, data)
	path := fc.Path(key)

	cached, err := cache.ReadFile(path, key)
	if err != nil {
		return fmt.Errorf("cache file %s: %w", path, err)
	}

	src, err := open(data)
	if err != nil {
		return err
	}
	fresh, err := compiler.Compile(src)
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(cached, fresh) {
		return fmt.Errorf("cache file %s differs from a fresh compile", path)
	}
	fmt.Printf("ok %s\n", path)
	return nil
}
