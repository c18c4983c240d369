// Package main provides the entry point for the board reader: it crops a
// two-player screenshot down to the play field and classifies every cell.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"board-cropper/internal/cells"
	"board-cropper/internal/config"
	"board-cropper/internal/frame"
	"board-cropper/internal/frame/cvmask"
	pcbimage "board-cropper/internal/image"
	"board-cropper/internal/pipeline"
	"board-cropper/internal/version"
)

const appName = "board-cropper"

func main() {
	imagePath := flag.String("image", "", "Path to screenshot (PNG, JPEG, WebP, GIF, TIFF or BMP)")
	modelPath := flag.String("model", "", "Path to ONNX cell classifier (overrides config)")
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

	if *imagePath == "" {
		fmt.Println("Usage: board-cropper -image <path> [-model model.onnx] [-config file.toml] [-opencv] [-v]")
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
	if *modelPath != "" {
		cfg.Classifier.Model = *modelPath
	}
	if *useOpenCV {
		cfg.Crop.MaskBuilder = config.MaskOpenCV
	}
	if cfg.Classifier.Model == "" {
		fmt.Fprintf(os.Stderr, "No classifier model given (use -model or classifier.model)\n")
		os.Exit(1)
	}

	img, err := pcbimage.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded image: %dx%d pixels\n", img.Bounds().Dx(), img.Bounds().Dy())

	classifier, err := cells.NewONNXClassifier(cfg.Classifier.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load classifier: %v\n", err)
		os.Exit(1)
	}
	defer classifier.Close()
	classifier.InputName = cfg.Classifier.InputName
	classifier.OutputName = cfg.Classifier.OutputName

	reader := pipeline.Reader{
		Params:     frameParams(cfg, *verbose),
		Grid:       cfg.Grid.Grid(),
		Classifier: classifier,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := reader.Read(ctx, img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Read failed: %v\n", err)
		os.Exit(1)
	}

	for _, region := range frame.Regions {
		r := result.Crop.Get(region)
		if r.OK() {
			b := r.Result.Bounds
			fmt.Printf("%-4s %dx%d (left %d, right %d, top %d, bottom %d)\n",
				region, r.Result.Image.Bounds().Dx(), r.Result.Image.Bounds().Dy(), b.Left, b.Right, b.Top, b.Bottom)
		} else {
			fmt.Printf("%-4s failed: %v\n", region, r.Err)
		}
	}
	if !result.Cropped() {
		fmt.Println("Play field not found, classified the uncropped image")
	}

	if result.Field == nil {
		for i, l := range result.Labels {
			fmt.Printf("cell %d: %s\n", i, l)
		}
		return
	}
	fmt.Printf("\nDigits:   %s\n", result.Field.Digits())
	fmt.Printf("Notation: %s\n\n", result.Field.Notation())
	fmt.Print(result.Field.String())
}

// frameParams builds crop parameters from cfg.
func frameParams(cfg config.Config, verbose bool) frame.Params {
	p := cfg.Crop.Params()
	if verbose {
		p = p.WithLogger(log.Default())
	}
	if cfg.Crop.MaskBuilder == config.MaskOpenCV {
		p = p.WithMaskBuilder(cvmask.Builder{})
	}
	return p
}
