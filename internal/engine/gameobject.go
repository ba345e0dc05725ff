package engine

import (
	"errors"
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees: X pitch, Y yaw
	Scale    rl.Vector3
}

// Forward returns the unit vector the transform faces. Yaw 0 looks down +Z,
// positive pitch looks up.
func (t Transform) Forward() rl.Vector3 {
	return DirectionFromAngles(t.Rotation.Y, t.Rotation.X)
}

// DirectionFromAngles converts yaw/pitch in degrees into a unit direction.
func DirectionFromAngles(yawDeg, pitchDeg float32) rl.Vector3 {
	yaw := float64(yawDeg) * math.Pi / 180
	pitch := float64(pitchDeg) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Sin(yaw) * math.Cos(pitch)),
		Y: float32(math.Sin(pitch)),
		Z: float32(math.Cos(yaw) * math.Cos(pitch)),
	}
}

type GameObject struct {
	ID         uuid.UUID
	Name       string
	Tags       []string
	Layer      int
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		ID:     uuid.New(),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component on g assignable to T.
func GetComponent[T any](g *GameObject) T {
	found, _ := findComponent[T](g)
	return found
}

// GetComponentInChildren searches g first, then its active descendants
// depth-first.
func GetComponentInChildren[T any](g *GameObject) T {
	found, _ := findInChildren[T](g)
	return found
}

func findComponent[T any](g *GameObject) (T, bool) {
	var zero T
	if g == nil {
		return zero, false
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

func findInChildren[T any](g *GameObject) (T, bool) {
	if found, ok := findComponent[T](g); ok {
		return found, true
	}
	var zero T
	if g == nil {
		return zero, false
	}
	for _, child := range g.Children {
		if !child.Active {
			continue
		}
		if found, ok := findInChildren[T](child); ok {
			return found, true
		}
	}
	return zero, false
}

// Init initializes every component, then the children. Errors from all
// components are collected so a broken prefab reports everything at once.
func (g *GameObject) Init() error {
	if g.started {
		return nil
	}
	var errs []error
	for _, c := range g.components {
		if err := c.Init(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", g.Name, err))
		}
	}
	for _, child := range g.Children {
		if err := child.Init(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	g.started = true
	return nil
}

func (g *GameObject) Tick(deltaTime float32) {
	if !g.Active || !g.started {
		return
	}
	for _, c := range g.components {
		c.Tick(deltaTime)
	}
	for _, child := range g.Children {
		child.Tick(deltaTime)
	}
}

func (g *GameObject) Shutdown() {
	if !g.started {
		return
	}
	for _, child := range g.Children {
		child.Shutdown()
	}
	for _, c := range g.components {
		c.Shutdown()
	}
	g.started = false
}

func (g *GameObject) Started() bool {
	return g.started
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	child.setScene(g.Scene)
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// FindChild returns the direct child with the given name.
func (g *GameObject) FindChild(name string) *GameObject {
	for _, c := range g.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Walk visits g and all descendants depth-first.
func (g *GameObject) Walk(fn func(*GameObject)) {
	fn(g)
	for _, c := range g.Children {
		c.Walk(fn)
	}
}

func (g *GameObject) setScene(s *Scene) {
	g.Walk(func(o *GameObject) { o.Scene = s })
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	// Rotate by parent rotation (X then Y then Z)
	rotX := rl.MatrixRotateX(parentRot.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(parentRot.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(parentRot.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	rotated := rl.Vector3Transform(scaled, rotMatrix)
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
