// Command framecrop crops two-player screenshots to their framed play fields
// and writes the results as PNG files.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"board-cropper/internal/app"
	"board-cropper/internal/config"
	"board-cropper/internal/frame"
	"board-cropper/internal/frame/cvmask"
	pcbimage "board-cropper/internal/image"
	"board-cropper/internal/version"
)

const appName = "framecrop"

// options controls one run over an image.
type options struct {
	band    string // "blue", "red" or "both"
	outDir  string
	profile bool
	params  frame.Params
}

func main() {
	imagePath := flag.String("image", "", "Path to screenshot (PNG, JPEG, WebP, GIF, TIFF or BMP)")
	band := flag.String("band", "both", "Frame band: blue (1P), red (2P) or both")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	debug := flag.Bool("debug", false, "Also write the mask and an annotated overlay")
	profile := flag.Bool("profile", false, "Print mask density statistics")
	watchDir := flag.String("watch", "", "Watch a directory and crop new screenshots")
	configPath := flag.String("config", "", "Path to TOML config file")
	useOpenCV := flag.Bool("opencv", false, "Build color masks with OpenCV")
	verbose := flag.Bool("v", false, "Log cropping decisions")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String(appName))
		return
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if *imagePath == "" && *watchDir == "" {
		fmt.Println("Usage: framecrop -image <path> [-band blue|red|both] [-out dir] [-debug] [-profile]")
		fmt.Println("       framecrop -watch <dir> [-band blue|red|both] [-out dir] [-debug]")
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *useOpenCV {
		cfg.Crop.MaskBuilder = config.MaskOpenCV
	}
	if *debug {
		cfg.Crop.Debug = true
	}

	params := cfg.Crop.Params()
	if *verbose {
		params = params.WithLogger(log.Default())
	}
	if cfg.Crop.MaskBuilder == config.MaskOpenCV {
		params = params.WithMaskBuilder(cvmask.Builder{})
	}

	opts := options{
		band:    strings.ToLower(*band),
		outDir:  cfg.Output.Dir,
		profile: *profile,
		params:  params,
	}
	if err := opts.check(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *watchDir != "" {
		if err := watch(*watchDir, opts); err != nil && err != context.Canceled {
			fmt.Fprintf(os.Stderr, "Watch failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*imagePath, opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func (o options) check() error {
	if o.band != "both" {
		if _, err := frame.ParseBand(o.band); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(o.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// watch crops every screenshot that appears in dir until interrupted.
func watch(dir string, opts options) error {
	w, err := app.NewWatcher(dir, 500*time.Millisecond)
	if err != nil {
		return err
	}
	defer w.Close()

	w.OnImage(func(path string) {
		if err := run(path, opts); err != nil {
			log.Printf("Watch: %s: %v", path, err)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Watch: waiting for screenshots in %s", dir)
	return w.Run(ctx)
}

// run crops one image and writes its outputs. Per-region failures are
// reported but only an unreadable image or an unwritable output is an error.
func run(path string, opts options) error {
	img, err := pcbimage.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	fmt.Printf("%s: %dx%d pixels\n", filepath.Base(path), img.Bounds().Dx(), img.Bounds().Dy())

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	results := make(map[frame.Region]frame.RegionResult)

	if opts.band == "both" {
		crop := frame.CropBothPlayers(img, opts.params)
		for _, region := range frame.Regions {
			results[region] = crop.Get(region)
		}
	} else {
		band, _ := frame.ParseBand(opts.band)
		r, err := frame.CropForBand(img, band, opts.params)
		region := frame.RegionPlayer1
		if band == frame.BandRed {
			region = frame.RegionPlayer2
		}
		results[region] = frame.RegionResult{Result: r, Err: err}
	}

	for _, region := range frame.Regions {
		rr, ok := results[region]
		if !ok {
			continue
		}
		if !rr.OK() {
			fmt.Printf("  %-4s failed: %v\n", region, rr.Err)
			continue
		}
		if err := writeRegion(opts.outDir, base, rr.Result); err != nil {
			return err
		}
	}

	if opts.profile {
		printProfiles(img, opts)
	}
	return nil
}

func writeRegion(dir, base string, r *frame.CropResult) error {
	b := r.Bounds
	fmt.Printf("  %-4s %dx%d -> %dx%d (left %d, right %d, top %d, bottom %d, top trim %d)\n",
		r.Region, r.Info.OriginalSize.X, r.Info.OriginalSize.Y, r.Info.CroppedSize.X, r.Info.CroppedSize.Y,
		b.Left, b.Right, b.Top, b.Bottom, r.Info.AdditionalTopCrop)

	name := fmt.Sprintf("%s_%s", base, r.Region)
	if err := pcbimage.SavePNG(filepath.Join(dir, name+".png"), r.Image); err != nil {
		return err
	}
	if r.Debug == nil {
		return nil
	}
	if err := pcbimage.SavePNG(filepath.Join(dir, name+"_mask.png"), r.Debug.Mask); err != nil {
		return err
	}
	return pcbimage.SavePNG(filepath.Join(dir, name+"_overlay.png"), r.Debug.Overlay)
}

// printProfiles reports the mask density of each requested band.
func printProfiles(img *image.RGBA, opts options) {
	bands := []frame.Band{frame.BandBlue, frame.BandRed}
	if opts.band != "both" {
		band, _ := frame.ParseBand(opts.band)
		bands = []frame.Band{band}
	}

	builder := opts.params.MaskBuilder
	if builder == nil {
		builder = frame.PixelMaskBuilder{}
	}
	for _, band := range bands {
		mask, err := builder.Build(img, band)
		if err != nil {
			fmt.Printf("  %s profile failed: %v\n", band, err)
			continue
		}
		p := frame.NewProfile(mask)
		cols, rows := p.FrameLines(opts.params.MinRatio)
		cs, rs := p.ColumnStats(), p.RowStats()
		fmt.Printf("  %s coverage %.4f\n", band, p.Coverage())
		fmt.Printf("    columns: mean %.4f stddev %.4f max %.4f at x=%d, %d above %.2f\n",
			cs.Mean, cs.StdDev, cs.Max, cs.ArgMax, len(cols), opts.params.MinRatio)
		fmt.Printf("    rows:    mean %.4f stddev %.4f max %.4f at y=%d, %d above %.2f\n",
			rs.Mean, rs.StdDev, rs.Max, rs.ArgMax, len(rows), opts.params.MinRatio)
	}
}
