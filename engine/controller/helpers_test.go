package controller

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/camera"
	"github.com/Carmen-Shannon/oxy-fps/engine/collision"
	"github.com/Carmen-Shannon/oxy-fps/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeWorld answers downward casts with a floor and every other cast with an
// optional obstacle at a fixed distance.
type fakeWorld struct {
	mu sync.Mutex
	// floor returns the floor height under (x, z); nil means no floor.
	floor       func(x, z float32) float32
	floorNormal mgl32.Vec3
	obstacle    float32
	casts       int
}

func flatWorld() *fakeWorld {
	return &fakeWorld{
		floor:       func(_, _ float32) float32 { return 0 },
		floorNormal: mgl32.Vec3{0, 1, 0},
	}
}

func (w *fakeWorld) Cast(origin, direction mgl32.Vec3) []collision.Hit {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.casts++
	dir := direction.Normalize()
	if dir.Y() < -0.999 {
		if w.floor == nil {
			return nil
		}
		d := origin.Y() - w.floor(origin.X(), origin.Z())
		if d < 0 {
			return nil
		}
		return []collision.Hit{{Distance: d, Normal: w.floorNormal, Owner: 1}}
	}
	if w.obstacle > 0 {
		return []collision.Hit{{Distance: w.obstacle, Normal: dir.Mul(-1), Owner: 2}}
	}
	return nil
}

func (w *fakeWorld) castCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.casts
}

// keys is a Source whose held keys and look delta the test sets between frames.
type keys struct {
	held map[uint32]bool
	look [2]float32
}

func newKeys() *keys {
	return &keys{held: make(map[uint32]bool)}
}

func (k *keys) press(codes ...uint32) {
	for _, c := range codes {
		k.held[c] = true
	}
}

func (k *keys) release(codes ...uint32) {
	for _, c := range codes {
		delete(k.held, c)
	}
}

func (k *keys) Snapshot() input.Snapshot {
	held := make(map[uint32]bool, len(k.held))
	for c := range k.held {
		held[c] = true
	}
	s := input.Snapshot{Held: held, LookDX: k.look[0], LookDY: k.look[1]}
	k.look = [2]float32{}
	return s
}

// rig wires a controller standing on a world, stepping frames of frameMs.
type rig struct {
	ctrl    Controller
	cam     camera.Camera
	world   *fakeWorld
	keys    *keys
	counts  *Counters
	now     float64
	frameMs float64
}

func newRig(world *fakeWorld, tuning Tuning, spawn mgl32.Vec3) *rig {
	r := &rig{
		cam:     camera.NewCamera(),
		world:   world,
		keys:    newKeys(),
		counts:  &Counters{},
		frameMs: 16,
	}
	ctrl, err := New(r.cam, world, r.keys,
		WithTuning(tuning),
		WithSpawn(spawn),
		WithObserver(r.counts),
	)
	if err != nil {
		panic(err)
	}
	r.ctrl = ctrl
	r.ctrl.Update(r.now)
	return r
}

func (r *rig) step(frames int) {
	for i := 0; i < frames; i++ {
		r.now += r.frameMs
		r.ctrl.Update(r.now)
	}
}

var (
	keyForward = uint32(common.KeyW)
	keySprint  = uint32(common.KeyLeftShift)
	keyJump    = uint32(common.KeySpace)
)
