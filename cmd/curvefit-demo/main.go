// Command curvefit-demo fits a handful of worked scenarios and writes a
// PNG for each one, so the fitted curve can be inspected against the
// original samples by eye.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/curvefit"
	"github.com/gogpu/curvefit/render"
)

func main() {
	var (
		outDir  = flag.String("out", ".", "directory to write PNGs into")
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		verbose = flag.Bool("v", false, "enable debug logging from the curvefit package")
	)
	flag.Parse()

	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		curvefit.SetLogger(slog.New(handler).With("cmd", "curvefit-demo"))
	}

	for _, scn := range scenarios() {
		res, err := curvefit.Fit(scn.points, 2, scn.errorThreshold, scn.corners)
		if err != nil {
			log.Fatalf("%s: Fit() error: %v", scn.name, err)
		}
		log.Printf("%s: %d point(s) -> %d segment(s)", scn.name, len(scn.points)/2, res.SegmentCount())

		canvas, err := render.DrawFit(res, scn.points, scn.corners, *width, *height, scn.name, render.DefaultPalette)
		if err != nil {
			log.Fatalf("%s: DrawFit() error: %v", scn.name, err)
		}

		path := filepath.Join(*outDir, scn.name+".png")
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("%s: create %s: %v", scn.name, path, err)
		}
		if err := canvas.EncodePNG(f); err != nil {
			f.Close()
			log.Fatalf("%s: encode PNG: %v", scn.name, err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("%s: close %s: %v", scn.name, path, err)
		}
		fmt.Println(path)
	}
}

type scenario struct {
	name           string
	points         []float64
	errorThreshold float64
	corners        []int
}

func scenarios() []scenario {
	return []scenario{
		{name: "two-points", points: []float64{0, 0, 120, 40}, errorThreshold: 0.5},
		{name: "straight-line", points: linePoints(5, 0, 0, 400, 0), errorThreshold: 0.5},
		{name: "quarter-circle", points: arcPoints(33, 0, math.Pi/2, 150), errorThreshold: 1.5},
		{name: "half-circle", points: arcPoints(65, 0, math.Pi, 150), errorThreshold: 1.5},
		{name: "l-shape-corner", points: lShapePoints(11, 200), errorThreshold: 0.5, corners: []int{0, 10, 20}},
	}
}

func linePoints(n int, x0, y0, x1, y1 float64) []float64 {
	pts := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts = append(pts, x0+(x1-x0)*t, y0+(y1-y0)*t)
	}
	return pts
}

func arcPoints(n int, startAngle, endAngle, radius float64) []float64 {
	pts := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		theta := startAngle + (endAngle-startAngle)*float64(i)/float64(n-1)
		pts = append(pts, radius*math.Cos(theta), radius*math.Sin(theta))
	}
	return pts
}

func lShapePoints(legLen int, size float64) []float64 {
	step := size / float64(legLen-1)
	pts := make([]float64, 0, (2*legLen-1)*2)
	for i := 0; i < legLen; i++ {
		pts = append(pts, float64(i)*step, 0)
	}
	for i := 1; i < legLen; i++ {
		pts = append(pts, size, float64(i)*step)
	}
	return pts
}
