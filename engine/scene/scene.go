package scene

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-fps/engine/collision"
	"github.com/Carmen-Shannon/oxy-fps/engine/game_object"
	"github.com/Carmen-Shannon/oxy-fps/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene manages a registry of GameObjects and answers ray queries against the
// subset tagged solid. It is the collision provider the character controller
// moves against and the geometry source for the wireframe presenter.
// Thread-safe for concurrent access.
type Scene interface {
	collision.Provider

	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Count returns the number of GameObjects in the registry.
	//
	// Returns:
	//   - int: count of registered GameObjects
	Count() int

	// Add adds a GameObject to the scene. Objects without an ID are assigned the next free one.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes a GameObject from the registry by ID.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes all objects from the scene.
	Clear()

	// Solids returns the enabled solid objects that carry a Model, ordered by ID.
	//
	// Returns:
	//   - []game_object.GameObject: the solid geometry set
	Solids() []game_object.GameObject

	// Wireframe appends the world space edges of every enabled object with a Model to dst.
	//
	// Parameters:
	//   - dst: the slice to append to
	//   - color: RGBA color for the edges
	//
	// Returns:
	//   - []model.GPULineVertex: dst with two vertices per edge appended
	Wireframe(dst []model.GPULineVertex, color [4]float32) []model.GPULineVertex
}

type scene struct {
	mu       *sync.RWMutex
	name     string
	registry map[uint64]game_object.GameObject
	nextID   uint64
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new empty Scene.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:       &sync.RWMutex{},
		name:     name,
		registry: make(map[uint64]game_object.GameObject),
		nextID:   1,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(obj)
	return obj.ID()
}

// add registers obj. Caller must hold s.mu write lock.
func (s *scene) add(obj game_object.GameObject) {
	if obj.ID() == 0 {
		obj.SetID(atomic.AddUint64(&s.nextID, 1) - 1)
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	s.registry[obj.ID()] = obj
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
}

func (s *scene) Solids() []game_object.GameObject {
	s.mu.RLock()
	solids := make([]game_object.GameObject, 0, len(s.registry))
	for _, obj := range s.registry {
		if obj.Enabled() && obj.Solid() && obj.Model() != nil {
			solids = append(solids, obj)
		}
	}
	s.mu.RUnlock()

	sort.Slice(solids, func(i, j int) bool { return solids[i].ID() < solids[j].ID() })
	return solids
}

func (s *scene) Cast(origin, direction mgl32.Vec3) []collision.Hit {
	if direction.Len() == 0 {
		return nil
	}
	ray := collision.Ray{Origin: origin, Direction: direction.Normalize()}

	var hits []collision.Hit
	for _, obj := range s.Solids() {
		hits = castObject(hits, ray, obj)
	}
	collision.SortHits(hits)
	return hits
}

// castObject appends every triangle hit of obj to hits. The ray is carried into model
// space without renormalizing, so the hit parameter is still a world space distance.
func castObject(hits []collision.Hit, ray collision.Ray, obj game_object.GameObject) []collision.Hit {
	mdl := obj.Model()
	scale := obj.Scale()
	maxScale := max(abs(scale[0]), abs(scale[1]), abs(scale[2]))
	if !collision.RaySphere(ray, obj.Position(), mdl.BoundingRadius()*maxScale) {
		return hits
	}

	inv := obj.InverseModelMatrix()
	local := collision.Ray{
		Origin:    mgl32.TransformCoordinate(ray.Origin, inv),
		Direction: mgl32.TransformNormal(ray.Direction, inv),
	}
	normalMat := obj.NormalMatrix()

	for i := 0; i < mdl.TriangleCount(); i++ {
		a, b, c := mdl.Triangle(i)
		t, ok := collision.RayTriangle(local, a, b, c)
		if !ok {
			continue
		}
		n := collision.TriangleNormal(a, b, c)
		if n.Len() == 0 {
			continue
		}
		n = normalMat.Mul3x1(n).Normalize()
		if n.Dot(ray.Direction) > 0 {
			n = n.Mul(-1)
		}
		hits = append(hits, collision.Hit{Distance: t, Normal: n, Owner: collision.ObjectID(obj.ID())})
	}
	return hits
}

func (s *scene) Wireframe(dst []model.GPULineVertex, color [4]float32) []model.GPULineVertex {
	s.mu.RLock()
	objs := make([]game_object.GameObject, 0, len(s.registry))
	for _, obj := range s.registry {
		if obj.Enabled() && obj.Model() != nil {
			objs = append(objs, obj)
		}
	}
	s.mu.RUnlock()

	for _, obj := range objs {
		dst = model.AppendLineVertices(dst, obj.Model().Edges(), obj.ModelMatrix(), color)
	}
	return dst
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
