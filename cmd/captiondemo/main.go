// Command captiondemo composites text captions onto an image and writes the
// result as WebP.
//
//	captiondemo -input photo.jpg -preset "Open Graph" -text "Hello@600,300" -output card.webp
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/caption"
	"github.com/gogpu/caption/layout"
	"github.com/gogpu/caption/overlay"
)

// textFlags collects repeated -text values.
type textFlags []string

func (f *textFlags) String() string { return strings.Join(*f, ", ") }

func (f *textFlags) Set(v string) error {
	*f = append(*f, v)
	return nil
}

// jsonOverlay is one entry of the -overlays file.
type jsonOverlay struct {
	Text     string   `json:"text"`
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	FontSize float64  `json:"fontSize"`
	Color    string   `json:"color"`
	Font     string   `json:"font"`
}

func main() {
	var (
		input    = flag.String("input", "", "source image (png, jpeg, gif, webp, bmp, tiff)")
		output   = flag.String("output", "caption.webp", "output file")
		preset   = flag.String("preset", "", "canvas preset label, e.g. \"Twitter Post\"")
		width    = flag.Int("width", 0, "canvas width (overrides the image size)")
		height   = flag.Int("height", 0, "canvas height (overrides the image size)")
		overlays = flag.String("overlays", "", "JSON file with an array of overlays")
		font     = flag.String("font", overlay.DefaultFont, "font family for -text overlays ("+strings.Join(overlay.Families, ", ")+")")
		size     = flag.Float64("size", overlay.DefaultFontSize, "font size for -text overlays")
		color    = flag.String("color", overlay.DefaultColor, "hex color for -text overlays")
		guides   = flag.Bool("guides", true, "draw guide boxes around overlays")
		drag     = flag.String("drag", "", "simulate a drag \"x1,y1:x2,y2\" in canvas pixels")
		listP    = flag.Bool("presets", false, "list presets and exit")
		verbose  = flag.Bool("v", false, "verbose logging")
		texts    textFlags
	)
	flag.Var(&texts, "text", "overlay \"TEXT\" or \"TEXT@X,Y\" (repeatable)")
	flag.Parse()

	if *listP {
		for _, p := range caption.Presets {
			fmt.Println(p)
		}
		return
	}
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		caption.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ed, err := caption.New(caption.WithGuides(*guides))
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}
	defer func() { _ = ed.Close() }()

	if err := ed.LoadImageFile(*input); err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}
	if *preset != "" {
		p, ok := caption.LookupPreset(*preset)
		if !ok {
			log.Fatalf("Unknown preset %q (see -presets)", *preset)
		}
		if err := ed.SelectPreset(p); err != nil {
			log.Fatalf("Failed to select preset: %v", err)
		}
	}
	if *width > 0 || *height > 0 {
		w, h := ed.Size()
		if *width > 0 {
			w = *width
		}
		if *height > 0 {
			h = *height
		}
		if err := ed.SetSize(w, h); err != nil {
			log.Fatalf("Failed to resize canvas: %v", err)
		}
	}

	w, h := ed.Size()
	center := layout.Pt(float64(w)/2, float64(h)/2)
	for _, t := range texts {
		o := parseText(t, center)
		o.FontSize, o.Color, o.Font = *size, *color, *font
		ed.AddOverlay(o)
	}
	if *overlays != "" {
		if err := loadOverlays(*overlays, ed); err != nil {
			log.Fatalf("Failed to load overlays: %v", err)
		}
	}
	if *drag != "" {
		if err := simulateDrag(*drag, ed); err != nil {
			log.Fatalf("Bad -drag %q: %v", *drag, err)
		}
	}

	data, err := ed.Export()
	if err != nil {
		log.Fatalf("Failed to export: %v", err)
	}
	if err := os.WriteFile(*output, data, 0o600); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	w, h = ed.Size()
	log.Printf("Saved %s (%dx%d, %d overlays, %d bytes)\n", *output, w, h, len(ed.Overlays()), len(data))
}

// parseText reads "TEXT" or "TEXT@X,Y". A suffix after the last '@' that is
// not a position stays part of the text, so "@handle" is a plain caption.
// Without a position the overlay is placed at center.
func parseText(s string, center layout.Point) overlay.Overlay {
	o := overlay.Default(center)
	o.Text = s

	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return o
	}
	p, err := parsePoint(s[i+1:])
	if err != nil {
		return o
	}
	o.Text, o.X, o.Y = s[:i], p.X, p.Y
	return o
}

func parsePoint(s string) (layout.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return layout.Point{}, fmt.Errorf("want X,Y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return layout.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return layout.Point{}, err
	}
	return layout.Pt(x, y), nil
}

func loadOverlays(path string, ed *caption.Editor) error {
	// #nosec G304 -- path is a command line argument
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var items []jsonOverlay
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	w, h := ed.Size()
	for _, it := range items {
		o := overlay.Default(layout.Pt(float64(w)/2, float64(h)/2))
		if it.Text != "" {
			o.Text = it.Text
		}
		if it.X != nil {
			o.X = *it.X
		}
		if it.Y != nil {
			o.Y = *it.Y
		}
		o.FontSize, o.Color, o.Font = it.FontSize, it.Color, it.Font
		ed.AddOverlay(o)
	}
	return nil
}

// simulateDrag presses at the first point, moves to the second and releases.
func simulateDrag(s string, ed *caption.Editor) error {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("want x1,y1:x2,y2")
	}
	p0, err := parsePoint(from)
	if err != nil {
		return err
	}
	p1, err := parsePoint(to)
	if err != nil {
		return err
	}
	if !ed.PointerDown(p0) {
		log.Printf("No overlay at %v, nothing dragged\n", p0)
		return nil
	}
	ed.PointerMove(p1)
	ed.PointerUp()
	return nil
}
