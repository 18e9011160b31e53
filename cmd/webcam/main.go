// Command webcam blurs live camera or video frames, optionally only the
// faces found by a Haar cascade.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"time"

	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-blur/config"
	"github.com/nvr-ai/go-blur/images/cv"
	"github.com/nvr-ai/go-blur/images/kernels"
	"github.com/nvr-ai/go-blur/profiler"
)

func main() {
	var (
		deviceID   int
		videoPath  string
		cascade    string
		configPath string
		radius     float64
		edge       string
		parallel   bool
		showWindow bool
		report     time.Duration
	)
	flag.IntVar(&deviceID, "device", 0, "Video capture device ID")
	flag.StringVar(&videoPath, "video", "", "Read frames from a video file instead of a device")
	flag.StringVar(&cascade, "cascade", "", "Haar cascade XML; when set only detections are blurred")
	flag.StringVar(&configPath, "config", "", "YAML preset file")
	flag.Float64Var(&radius, "radius", 8, "Blur radius")
	flag.StringVar(&edge, "edge", "duplicate", "Edge mode: none, duplicate, wrap, mirror")
	flag.BoolVar(&parallel, "parallel", true, "Split scanlines across goroutines")
	flag.BoolVar(&showWindow, "show-window", true, "Show the blurred frames in a window")
	flag.DurationVar(&report, "report", 2*time.Second, "Profiler report interval")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}
	// Flags win over the preset only when given explicitly.
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	useFlag := func(name string) bool { return configPath == "" || explicit[name] }
	if useFlag("radius") {
		cfg.Blur.Radius = radius
	}
	if useFlag("edge") {
		cfg.Blur.Edge = edge
	}
	if useFlag("parallel") {
		cfg.Blur.Parallel = parallel
	}
	opt, err := cfg.Blur.Options()
	if err != nil {
		log.Fatalf("Invalid blur settings: %v", err)
	}
	opt.Pool = &kernels.Pool{}

	var capture *gocv.VideoCapture
	if videoPath != "" {
		capture, err = gocv.OpenVideoCapture(videoPath)
	} else {
		capture, err = gocv.OpenVideoCapture(deviceID)
	}
	if err != nil {
		log.Fatalf("Error opening video capture: %v", err)
	}
	defer capture.Close()

	var classifier *gocv.CascadeClassifier
	if cascade != "" {
		c := gocv.NewCascadeClassifier()
		defer c.Close()
		if !c.Load(cascade) {
			log.Fatalf("Error reading cascade file: %s", cascade)
		}
		classifier = &c
	}

	var window *gocv.Window
	if showWindow {
		window = gocv.NewWindow("Blur")
		defer window.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	prof := profiler.New(profiler.Options{ReportInterval: report})
	prof.Start(ctx)
	defer prof.Stop()

	img := gocv.NewMat()
	defer img.Close()

	fmt.Printf("Blurring frames with radius %g (%s edges)\n", opt.XRadius, opt.Edge)
	for ctx.Err() == nil {
		if ok := capture.Read(&img); !ok {
			fmt.Printf("End of input\n")
			return
		}
		if img.Empty() {
			continue
		}

		done := prof.StartOperation("frame")
		out, faces, err := blurFrame(img, classifier, opt)
		done()
		if err != nil {
			log.Printf("Frame skipped: %v", err)
			continue
		}
		prof.RecordMetric("regions", float64(faces))

		if window != nil {
			window.IMShow(out)
			window.WaitKey(1)
		}
		out.Close()
	}
}

// blurFrame blurs the whole frame, or only the detected regions when a
// classifier is given. The returned Mat must be closed.
func blurFrame(img gocv.Mat, classifier *gocv.CascadeClassifier, opt kernels.Options) (gocv.Mat, int, error) {
	if classifier == nil {
		out, err := cv.Blur(img, opt)
		return out, 0, err
	}

	rects := classifier.DetectMultiScale(img)
	buf, err := cv.MatToBuffer(img)
	if err != nil {
		return gocv.NewMat(), 0, err
	}
	if len(rects) == 0 {
		out, err := cv.BufferToMat(buf)
		return out, 0, err
	}
	blurred, err := kernels.BlurRegions(buf, padRects(rects, 8), opt)
	if err != nil {
		return gocv.NewMat(), 0, err
	}
	out, err := cv.BufferToMat(blurred)
	opt.Pool.Put(blurred)
	return out, len(rects), err
}

// padRects grows each detection so the blur covers the hairline and chin.
func padRects(rects []image.Rectangle, pad int) []image.Rectangle {
	out := make([]image.Rectangle, len(rects))
	for i, r := range rects {
		out[i] = r.Inset(-pad)
	}
	return out
}
