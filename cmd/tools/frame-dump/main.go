// Command frame-dump extracts frames from a flat binary frame file and
// writes them out as grayscale images, optionally with heatmap plots.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/banshee-data/datakit/rawframe"
)

func main() {
	in := flag.String("in", "", "input raw frame file")
	rows := flag.Int("rows", 0, "frame height")
	cols := flag.Int("cols", 0, "frame width")
	typ := flag.String("type", "uint16", "element type (int8..int64, uint8..uint64, float32, float64)")
	framesArg := flag.String("frames", "", "comma-separated frame indices (default: all frames)")
	outdir := flag.String("outdir", ".", "output directory")
	format := flag.String("format", "png", "image format extension (png, jpg, tiff, bmp)")
	heatmap := flag.Bool("heatmap", false, "also write a heatmap plot per frame")
	flag.Parse()

	if *in == "" || *rows <= 0 || *cols <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	et, err := rawframe.ParseElemType(*typ)
	if err != nil {
		log.Fatal(err)
	}

	var indices []int
	if *framesArg != "" {
		for _, tok := range strings.Split(*framesArg, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				log.Fatalf("bad frame index %q: %v", tok, err)
			}
			indices = append(indices, n)
		}
	}

	count, stack := rawframe.Read(*in, *rows, *cols, et, indices)
	if count == 0 {
		log.Fatalf("no frames read from %s", *in)
	}

	if err := os.MkdirAll(*outdir, 0755); err != nil {
		log.Fatal(err)
	}

	base := strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
	for i := 0; i < count; i++ {
		name := filepath.Join(*outdir, fmt.Sprintf("%s-%03d.%s", base, i, *format))
		if err := rawframe.SaveImage(stack.Frame(i), name); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", name)

		if *heatmap {
			hname := filepath.Join(*outdir, fmt.Sprintf("%s-%03d-heat.png", base, i))
			if err := rawframe.SaveHeatmap(stack.Frame(i), hname, fmt.Sprintf("%s frame %d", base, i)); err != nil {
				log.Fatal(err)
			}
			log.Printf("wrote %s", hname)
		}
	}
	log.Printf("%d frames of %dx%d %s", count, *rows, *cols, et)
}
