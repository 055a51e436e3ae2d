package window

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing, pointer capture and device input for a first-person view.
// Callbacks run on the thread that calls ProcessMessages.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events. Repeats are not reported.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseMoveCallback sets the callback for pointer movement while the cursor is captured.
	//
	// Parameters:
	//   - callback: function receiving the pointer x, y position
	SetMouseMoveCallback(callback func(x, y int32))

	// SetGamepadCallback sets the callback receiving the polled gamepad state once per
	// message loop iteration, or nil when no gamepad is connected.
	//
	// Parameters:
	//   - callback: function receiving the gamepad state
	SetGamepadCallback(callback func(state *common.GamepadState))

	// SetGamepadConnectCallback sets the callback for gamepad connect and disconnect events.
	//
	// Parameters:
	//   - callback: function receiving true on connect and false on disconnect
	SetGamepadConnectCallback(callback func(connected bool))

	// GamepadConnected reports whether a standard-mapping gamepad was present at the last poll.
	//
	// Returns:
	//   - bool: true if a gamepad is connected
	GamepadConnected() bool

	// SetCaptureCallback sets the callback for cursor capture changes.
	//
	// Parameters:
	//   - callback: function receiving the new capture state
	SetCaptureCallback(callback func(captured bool))

	// SetCursorCaptured hides and locks the cursor for relative look, or releases it.
	// Escape releases a captured cursor and a left click captures it again.
	// Must be called on the window thread.
	//
	// Parameters:
	//   - captured: true to capture
	SetCursorCaptured(captured bool)

	// CursorCaptured reports whether the cursor is captured.
	//
	// Returns:
	//   - bool: true if captured
	CursorCaptured() bool

	// SetTitle changes the title bar text. Safe to call from any goroutine.
	//
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Polls the gamepad and calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title string

	minWidth  int
	minHeight int
	width     int
	height    int

	captureOnStart bool
	captured       atomic.Bool
	padConnected   atomic.Bool

	// pendingTitle is applied on the window thread.
	titleMu      sync.Mutex
	pendingTitle *string

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate         func()
	onResize         func(width, height int)
	onKeyDown        func(keyCode uint32)
	onKeyUp          func(keyCode uint32)
	onMouseMove      func(x, y int32)
	onGamepad        func(state *common.GamepadState)
	onGamepadConnect func(connected bool)
	onCapture        func(captured bool)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a Window. Must be called from the main goroutine,
// which then runs ProcessMessages.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "oxy-fps",
		minWidth:  320,
		minHeight: 240,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	w.padConnected.Store(platformPollGamepad(w) != nil)
	if w.captureOnStart {
		w.SetCursorCaptured(true)
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y int32)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SetGamepadCallback(callback func(state *common.GamepadState)) {
	w.onGamepad = callback
}

func (w *engineWindow) SetGamepadConnectCallback(callback func(connected bool)) {
	w.onGamepadConnect = callback
}

func (w *engineWindow) GamepadConnected() bool {
	return w.padConnected.Load()
}

func (w *engineWindow) SetCaptureCallback(callback func(captured bool)) {
	w.onCapture = callback
}

func (w *engineWindow) SetCursorCaptured(captured bool) {
	if w.captured.Swap(captured) == captured {
		return
	}
	platformSetCursorCaptured(w, captured)
	if w.onCapture != nil {
		w.onCapture(captured)
	}
}

func (w *engineWindow) CursorCaptured() bool {
	return w.captured.Load()
}

func (w *engineWindow) SetTitle(title string) {
	w.titleMu.Lock()
	defer w.titleMu.Unlock()
	w.pendingTitle = &title
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		w.titleMu.Lock()
		if t := w.pendingTitle; t != nil {
			w.pendingTitle = nil
			platformSetTitle(w, *t)
		}
		w.titleMu.Unlock()

		state := platformPollGamepad(w)
		w.padConnected.Store(state != nil)
		if w.onGamepad != nil {
			w.onGamepad(state)
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
