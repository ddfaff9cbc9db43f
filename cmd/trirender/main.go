// Command trirender renders a TOML scene of triangles to an image file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/gogpu/softrast"
)

func main() {
	var (
		scene   = flag.String("scene", "scene.toml", "scene file")
		output  = flag.String("output", "out.png", "output file (.png, .jpg or .bmp)")
		verbose = flag.Bool("v", false, "log rasterizer activity")
	)
	flag.Parse()

	if *verbose {
		softrast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	data, err := os.ReadFile(*scene)
	if err != nil {
		log.Fatalf("Failed to read scene: %v", err)
	}
	sc, err := ParseScene(data)
	if err != nil {
		log.Fatalf("Invalid scene %s: %v", *scene, err)
	}

	s, err := sc.Render(filepath.Dir(*scene), loadTexture)
	if s == nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err != nil {
		// Batches that could be drawn were; report and still save.
		log.Printf("Scene rendered with errors: %v", err)
	}

	if err := imgio.Save(*output, s.ToImage(), encoderFor(*output)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Scene saved to %s (%dx%d)\n", *output, s.Width(), s.Height())
}

func encoderFor(path string) imgio.Encoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(95)
	case ".bmp":
		return imgio.BMPEncoder()
	}
	return imgio.PNGEncoder()
}
