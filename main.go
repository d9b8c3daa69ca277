// =======================
// main.go
// =======================

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"plot3d/config"
	"plot3d/logging"
	"plot3d/raster"
	"plot3d/server"
	"plot3d/term"
	"plot3d/window"
)

func main() {
	mode := flag.String("mode", "term", "Viewer: term, window, png or serve")
	cfgPath := flag.String("config", "", "YAML config file")
	out := flag.String("out", "plot.png", "Output file for -mode png")
	width := flag.Int("width", 800, "Canvas width for -mode png")
	height := flag.Int("height", 800, "Canvas height for -mode png")
	rx := flag.Float64("rx", 0, "Initial rotation about X, degrees")
	ry := flag.Float64("ry", 0, "Initial rotation about Y, degrees")
	scale := flag.Float64("scale", 0, "Initial zoom factor")
	port := flag.Int("port", 0, "Port for -mode serve")
	level := flag.String("loglevel", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config %s: %v\n", *cfgPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags given explicitly win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rx":
			cfg.Camera.RotationX = *rx
		case "ry":
			cfg.Camera.RotationY = *ry
		case "scale":
			cfg.Camera.ScaleFactor = *scale
		case "port":
			cfg.Server.Port = *port
		case "loglevel":
			cfg.Log.Level = *level
		}
	})
	cfg.Camera = cfg.Camera.Normalized()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Dir:     cfg.Log.Dir,
		Console: *mode != "term",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "term":
		err = term.Run(cfg, log)
	case "window":
		err = window.Run(cfg, log)
	case "png":
		err = writePNG(cfg, *out, *width, *height, log)
	case "serve":
		err = serve(cfg, log)
	default:
		log.Close()
		fmt.Fprintf(os.Stderr, "Unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
	log.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s error: %v\n", *mode, err)
		os.Exit(1)
	}
}

func writePNG(cfg *config.Config, path string, width, height int, log logging.Logger) error {
	canvas, n := raster.Snapshot(cfg.Scene(), cfg.Camera, width, height)
	if n == 0 {
		return fmt.Errorf("nothing to draw on a %dx%d canvas", width, height)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Infof("wrote %s (%dx%d, %d lines, camera %+v)", path, width, height, n, cfg.Camera)
	return nil
}

func serve(cfg *config.Config, log logging.Logger) error {
	s := server.New(cfg, log)

	errc := make(chan error, 1)
	go func() {
		errc <- s.Listen(cfg.Server.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errc:
		return err
	case <-quit:
	}

	log.Infof("shutting down web viewer")
	return s.Shutdown()
}
