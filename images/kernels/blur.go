package kernels

import "log/slog"

// Direction selects the axes that use a one-sided directional box instead
// of a Gaussian approximation.
type Direction struct {
	X bool
	Y bool
}

// Options configures a blur call. The zero value blurs all four channels
// with duplicated edges, the SVG radius method, symmetric axes
// and no parallelism.
type Options struct {
	XRadius float64 // Horizontal radius (standard deviation). Signed when Directional.X.
	YRadius float64 // Vertical radius (standard deviation). Signed when Directional.Y.

	Channels    ChannelMask  // Channels to blur; zero means AllChannels.
	Edge        EdgeMode     // Edge extension policy for both axes.
	Method      RadiusMethod // Radius decomposition for symmetric axes.
	Directional Direction    // Per-axis directional (motion) blur.

	Pool     *Pool // Optional scratch buffer pool.
	Parallel bool  // Split scanlines of each pass across goroutines.
}

// Plan is the validated box decomposition for both axes.
type Plan struct {
	X AxisRadius
	Y AxisRadius
}

// channels returns the effective mask.
func (o Options) channels() ChannelMask {
	if o.Channels&AllChannels == 0 {
		return AllChannels
	}
	return o.Channels & AllChannels
}

// Plan validates the options and computes the three boxes per axis.
func (o Options) Plan() (Plan, error) {
	if !o.Edge.Valid() {
		return Plan{}, invalidConfig("unknown edge mode %d", int(o.Edge))
	}
	if o.Channels&^AllChannels != 0 {
		return Plan{}, invalidConfig("channel mask %#x has undefined bits", uint8(o.Channels))
	}
	planner, err := o.Method.Planner()
	if err != nil {
		return Plan{}, err
	}
	x, err := PlanAxis(o.XRadius, planner, o.Directional.X)
	if err != nil {
		return Plan{}, err
	}
	y, err := PlanAxis(o.YRadius, planner, o.Directional.Y)
	if err != nil {
		return Plan{}, err
	}
	return Plan{X: x, Y: y}, nil
}

// job is one blur invocation. slots is a two-slot arena: slot 0 is the
// caller's input and slot 1 the scratch buffer; cur names the slot holding
// the latest output. Passes never move buffers, they only flip cur.
type job struct {
	slots    [2]*PixelBuffer
	cur      int
	plan     Plan
	mask     ChannelMask
	edge     EdgeMode
	parallel bool
	passes   int
}

func newJob(input, scratch *PixelBuffer, plan Plan, o Options) *job {
	return &job{
		slots:    [2]*PixelBuffer{input, scratch},
		plan:     plan,
		mask:     o.channels(),
		edge:     o.Edge,
		parallel: o.Parallel,
	}
}

// run applies x1, y1, x2, y2, x3, y3. Boxes on one axis must stay in order
// since each consumes the previous box's output.
func (j *job) run() {
	for i := 0; i < 3; i++ {
		j.step(j.plan.X[i], false)
		j.step(j.plan.Y[i], true)
	}
}

func (j *job) step(r BoxRadius, vertical bool) {
	src, dst := j.slots[j.cur], j.slots[1-j.cur]
	if !boxPass(src.Pix, dst.Pix, src.Width, src.Height, r, vertical, j.edge, j.mask, j.parallel) {
		return
	}
	j.cur = 1 - j.cur
	j.passes++
}

// finish returns the terminal buffer. Channels excluded from the mask were
// never written to slot 0, so when the result lives in the scratch slot they
// are restored from there.
func (j *job) finish() *PixelBuffer {
	if !j.mask.All() && j.cur == 1 {
		copyChannels(j.slots[1].Pix, j.slots[0].Pix, j.mask)
		Logger().Debug("kernels: restored unblurred channels", slog.String("channels", (AllChannels&^j.mask).String()))
	}
	return j.slots[j.cur]
}

// Blur applies an approximate Gaussian blur (three box filters per axis) to
// buf and returns the result.
//
// buf is used as working storage: the result may be buf itself or a second
// buffer of the same shape, and when it is not buf the contents of buf are
// unspecified afterwards. Channels excluded from opt.Channels are bit-exact
// copies of the input in the result.
//
// Errors wrap ErrInvalidBuffer or ErrInvalidConfiguration.
func Blur(buf *PixelBuffer, opt Options) (*PixelBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	plan, err := opt.Plan()
	if err != nil {
		return nil, err
	}

	log := Logger()
	log.Debug("kernels: blur plan",
		slog.Int("width", buf.Width),
		slog.Int("height", buf.Height),
		slog.Any("x", plan.X),
		slog.Any("y", plan.Y),
		slog.String("channels", opt.channels().String()),
		slog.String("edge", opt.Edge.String()),
	)

	if buf.Empty() || (plan.X.Disabled() && plan.Y.Disabled()) {
		return buf, nil
	}

	scratch := opt.Pool.Get(buf.Width, buf.Height)
	j := newJob(buf, scratch, plan, opt)
	j.run()
	out := j.finish()
	if out == buf {
		opt.Pool.Put(scratch)
	}
	log.Debug("kernels: blur done", slog.Int("passes", j.passes), slog.Bool("in_place", out == buf))
	return out, nil
}

// GaussianBlur blurs all channels of buf with the same radius on both axes
// and duplicated edges.
func GaussianBlur(buf *PixelBuffer, radius float64) (*PixelBuffer, error) {
	return Blur(buf, Options{XRadius: radius, YRadius: radius})
}
