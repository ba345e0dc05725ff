package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Component is the unit of behaviour attached to a GameObject. The driver
// loop calls Init once, Tick every simulation step, and Shutdown when the
// owner leaves the scene.
type Component interface {
	Init() error
	Tick(deltaTime float32)
	Shutdown()
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// AimProvider is implemented by components that own the aim ray, usually
// the camera rig. Weapons fire along it.
type AimProvider interface {
	AimOrigin() rl.Vector3
	AimDirection() rl.Vector3
}

// YawProvider exposes the camera yaw (degrees) that movement input is
// relative to.
type YawProvider interface {
	OrientationYaw() float32
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Init() error { return nil }

func (b *BaseComponent) Tick(deltaTime float32) {}

func (b *BaseComponent) Shutdown() {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
