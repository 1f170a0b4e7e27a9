package orbit

// Controller applies orientation to the scene each frame and handles zoom.
type Controller struct {
	state *State
	globe Transform

	background Transform
	parallax   float32
}

// Option configures a Controller.
type Option func(*Controller)

// WithBackground rotates bg alongside the globe at parallax times its
// angles. A parallax of 0 leaves the background fixed.
func WithBackground(bg Transform, parallax float32) Option {
	return func(c *Controller) {
		c.background = bg
		c.parallax = parallax
	}
}

// NewController creates a controller that writes orientation onto globe.
func NewController(state *State, globe Transform, opts ...Option) *Controller {
	c := &Controller{state: state, globe: globe}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wheel zooms by one ZoomStep. Negative deltaY moves the camera closer,
// floored at MinZoom; anything else moves it away, capped at MaxZoom.
// Without a camera it does nothing.
func (c *Controller) Wheel(deltaY float32) {
	cam := c.state.Camera
	if cam == nil {
		return
	}
	l := c.state.Limits

	d := cam.Distance()
	if deltaY < 0 {
		d = max(l.MinZoom, d-l.ZoomStep)
	} else {
		d = min(l.MaxZoom, d+l.ZoomStep)
	}
	cam.SetDistance(d)
}

// ApplyFrame assigns the current pitch and yaw to the globe (and the scaled
// angles to the background). Assignment rather than accumulation makes
// repeated calls idempotent.
func (c *Controller) ApplyFrame() {
	o := c.state.Orientation
	c.globe.SetRotation(o.Pitch, o.Yaw)

	if c.background != nil && c.parallax != 0 {
		c.background.SetRotation(o.Pitch*c.parallax, o.Yaw*c.parallax)
	}
}
