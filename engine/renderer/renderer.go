package renderer

import (
	"errors"
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/rs/zerolog"
)

var (
	// ErrNoSurface is returned when the window has no surface to render into.
	ErrNoSurface = errors.New("renderer: window has no render surface")

	// ErrSurfaceNotConfigured is returned when a frame is drawn before the surface has a non-zero size.
	ErrSurfaceNotConfigured = errors.New("renderer: surface not configured")

	// ErrClosed is returned by Render after Close.
	ErrClosed = errors.New("renderer: closed")
)

// Renderer presents wireframe line lists through a single WebGPU line pipeline.
// Render is called from the render goroutine; Resize may arrive from the window thread.
type Renderer interface {
	// Render uploads the camera uniform and line vertices, then draws and presents one frame.
	// An empty line list still clears the screen.
	//
	// Parameters:
	//   - uniform: the camera uniform for this frame
	//   - lines: line list vertices, two per segment
	//
	// Returns:
	//   - error: ErrClosed after Close, ErrSurfaceNotConfigured before the first non-zero Resize, or a GPU error
	Render(uniform camera.GPUCameraUniform, lines []model.GPULineVertex) error

	// Resize reconfigures the surface and depth target. Zero sizes are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode switches between VSync and uncapped presentation. Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Close releases every GPU resource. Safe to call more than once.
	Close()
}

type renderer struct {
	mu      *sync.Mutex
	backend rendererBackend
	log     zerolog.Logger
	closed  bool

	width  int
	height int

	presentMode          *PresentMode
	sampleCount          MSAASampleCount
	clearColor           wgpu.Color
	forceFallbackAdapter bool
}

var _ Renderer = &renderer{}

// NewRenderer creates a line Renderer for the given window's surface and configures it to the window size.
//
// Parameters:
//   - win: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the ready renderer
//   - error: ErrNoSurface when the window has no surface, or a GPU setup error
func NewRenderer(win window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		sampleCount: MSAA4x,
		clearColor:  wgpu.Color{R: 0.08, G: 0.09, B: 0.11, A: 1.0},
	}
	for _, opt := range options {
		opt(r)
	}

	descriptor := win.SurfaceDescriptor()
	if descriptor == nil {
		return nil, ErrNoSurface
	}

	backend, err := newWGPURendererBackend(descriptor, r.forceFallbackAdapter, r.sampleCount, r.clearColor)
	if err != nil {
		return nil, err
	}
	r.backend = backend

	if r.presentMode != nil {
		r.backend.SetPresentMode(*r.presentMode)
	}
	r.Resize(win.Width(), win.Height())

	r.log.Info().
		Int("width", win.Width()).
		Int("height", win.Height()).
		Uint32("msaa", uint32(r.sampleCount)).
		Msg("renderer ready")
	return r, nil
}

func (r *renderer) Render(uniform camera.GPUCameraUniform, lines []model.GPULineVertex) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	r.backend.WriteCamera(uniform.Marshal())
	if err := r.backend.WriteLines(common.SliceToBytes(lines)); err != nil {
		return err
	}
	return r.backend.DrawFrame(uint32(len(lines)))
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || width <= 0 || height <= 0 {
		return
	}
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		r.log.Error().Err(err).Int("width", width).Int("height", height).Msg("surface configure failed")
		return
	}
	r.width, r.height = width, height
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.backend.Release()
}
