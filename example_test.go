package caption_test

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/gogpu/caption"
	"github.com/gogpu/caption/fonts"
	"github.com/gogpu/caption/overlay"
)

func Example() {
	fr, err := fonts.NewResolver(fonts.WithSystemFonts(false))
	if err != nil {
		log.Fatal(err)
	}
	defer fr.Close()

	ed, err := caption.New(caption.WithFonts(fr))
	if err != nil {
		log.Fatal(err)
	}
	defer ed.Close()

	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	if err := ed.SetImage(img); err != nil {
		log.Fatal(err)
	}

	p, _ := caption.LookupPreset("Instagram Square")
	if err := ed.SelectPreset(p); err != nil {
		log.Fatal(err)
	}

	o := ed.AddText()
	if err := ed.UpdateOverlay(o.ID, overlay.SetText("Hello")); err != nil {
		log.Fatal(err)
	}

	data, err := ed.Export()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ed.IsPresetSelected(p), string(data[8:12]))
	// Output: true WEBP
}
