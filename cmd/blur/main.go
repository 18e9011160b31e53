// Command blur applies the box-approximated Gaussian blur to image files.
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-blur/config"
	"github.com/nvr-ai/go-blur/images"
	"github.com/nvr-ai/go-blur/images/kernels"
	"github.com/nvr-ai/go-blur/profiler"
	"github.com/nvr-ai/go-blur/util"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("blur: %v", err)
	}
}

// flags holds the parsed command line.
type flags struct {
	input, output string
	configPath    string
	envPath       string
	regions       string
	verbose       bool
	profile       bool

	radius, xRadius, yRadius float64
	channels, edge, method   string
	directionalX             bool
	directionalY             bool
	parallel                 bool
	maxSize                  int
	quality                  int
}

func parseFlags(args []string) (*flags, map[string]bool, error) {
	f := &flags{}
	fs := flag.NewFlagSet("blur", flag.ContinueOnError)
	fs.StringVar(&f.input, "input", "", "Input image file or directory")
	fs.StringVar(&f.output, "output", "", "Output image file or directory")
	fs.StringVar(&f.configPath, "config", "", "YAML preset file")
	fs.StringVar(&f.envPath, "env", ".env", "Optional .env file with BLUR_* overrides")
	fs.StringVar(&f.regions, "regions", "", "Only blur these regions: x1,y1,x2,y2;x1,y1,x2,y2")
	fs.BoolVar(&f.verbose, "v", false, "Log blur plans at debug level")
	fs.BoolVar(&f.profile, "profile", false, "Log timing statistics when done")
	fs.Float64Var(&f.radius, "radius", 3, "Blur radius (standard deviation) for both axes")
	fs.Float64Var(&f.xRadius, "x-radius", 0, "Horizontal radius; signed when -directional-x")
	fs.Float64Var(&f.yRadius, "y-radius", 0, "Vertical radius; signed when -directional-y")
	fs.StringVar(&f.channels, "channels", "RGBA", "Channels to blur (letters R, G, B, A)")
	fs.StringVar(&f.edge, "edge", "duplicate", "Edge mode: none, duplicate, wrap, mirror")
	fs.StringVar(&f.method, "method", "svg", "Radius method: svg, variance")
	fs.BoolVar(&f.directionalX, "directional-x", false, "One-sided horizontal streak; negative radius streaks left")
	fs.BoolVar(&f.directionalY, "directional-y", false, "One-sided vertical streak; negative radius streaks up")
	fs.BoolVar(&f.parallel, "parallel", false, "Split scanlines across goroutines")
	fs.IntVar(&f.maxSize, "max-size", 0, "Shrink inputs larger than this on either side (0 keeps size)")
	fs.IntVar(&f.quality, "quality", images.DefaultQuality, "JPEG/WebP quality")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// loadConfig layers the preset file, the environment and explicit flags.
func loadConfig(f *flags, set map[string]bool) (*config.Config, error) {
	if err := config.LoadEnv(f.envPath); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	b := &cfg.Blur
	if set["radius"] {
		b.Radius = f.radius
	}
	if set["x-radius"] {
		b.XRadius = &f.xRadius
	}
	if set["y-radius"] {
		b.YRadius = &f.yRadius
	}
	if set["channels"] {
		b.Channels = f.channels
	}
	if set["edge"] {
		b.Edge = f.edge
	}
	if set["method"] {
		b.Method = f.method
	}
	if set["directional-x"] {
		b.DirectionalX = f.directionalX
	}
	if set["directional-y"] {
		b.DirectionalY = f.directionalY
	}
	if set["parallel"] {
		b.Parallel = f.parallel
	}
	if set["max-size"] {
		cfg.Output.MaxSize = f.maxSize
	}
	if set["quality"] {
		cfg.Output.Quality = f.quality
	}
	return cfg, nil
}

func run(args []string, stdout io.Writer) error {
	f, set, err := parseFlags(args)
	if err != nil {
		return err
	}
	if f.input == "" || f.output == "" {
		return errors.New("-input and -output are required")
	}
	if f.verbose {
		kernels.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer kernels.SetLogger(nil)
	}

	cfg, err := loadConfig(f, set)
	if err != nil {
		return err
	}
	opt, err := cfg.Blur.Options()
	if err != nil {
		return err
	}
	opt.Pool = &kernels.Pool{}

	rects, err := images.ParseRects(f.regions)
	if err != nil {
		return err
	}

	prof := profiler.New(profiler.Options{})
	p := &processor{opt: opt, regions: images.Rectangles(rects), out: cfg.Output, prof: prof, stdout: stdout}

	info, err := os.Stat(f.input)
	if err != nil {
		return errors.Wrap(err, "input")
	}
	if !info.IsDir() {
		err = p.file(f.input, f.output)
	} else {
		err = p.directory(f.input, f.output)
	}
	if err != nil {
		return err
	}
	if f.profile {
		prof.Report()
	}
	return nil
}

// processor blurs files with one configuration.
type processor struct {
	opt     kernels.Options
	regions []image.Rectangle
	out     config.OutputConfig
	prof    *profiler.Profiler
	stdout  io.Writer
}

func (p *processor) directory(in, out string) error {
	files, err := util.LoadDirectoryImageFiles(in)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.Errorf("no images found in %s", in)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	for _, file := range files {
		dst := filepath.Join(out, filepath.Base(file.Path))
		if err := p.encoded(file.Data, dst); err != nil {
			return errors.Wrap(err, file.Path)
		}
	}
	fmt.Fprintf(p.stdout, "Blurred %d images into %s\n", len(files), out)
	return nil
}

func (p *processor) file(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	return p.encoded(data, out)
}

func (p *processor) encoded(data []byte, out string) error {
	stop := p.prof.StartOperation("decode")
	img, _, err := images.Decode(data)
	stop()
	if err != nil {
		return err
	}
	if p.out.MaxSize > 0 {
		img = images.Fit(img, p.out.MaxSize, p.out.MaxSize)
	}
	buf := images.ToPixelBuffer(img)

	start := time.Now()
	var result *kernels.PixelBuffer
	if len(p.regions) > 0 {
		result, err = kernels.BlurRegions(buf, p.regions, p.opt)
	} else {
		result, err = kernels.Blur(buf, p.opt)
	}
	if err != nil {
		return err
	}
	took := time.Since(start)
	p.prof.RecordDuration("blur", took)
	p.prof.RecordMetric("megapixels", float64(buf.Width*buf.Height)/1e6)

	stop = p.prof.StartOperation("encode")
	err = images.WriteFile(out, images.FromPixelBuffer(result), p.out.Quality)
	stop()
	if result != buf {
		p.opt.Pool.Put(result)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(p.stdout, "%s: %dx%d blurred in %v\n", out, buf.Width, buf.Height, took.Truncate(time.Microsecond))
	return nil
}
