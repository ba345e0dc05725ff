package components

import (
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable {
		return NewCamera()
	})
}

// Camera renders from the nearest AimProvider on its object or an
// ancestor, so the view and the aim ray always agree.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
	}
}

// TypeName implements engine.Serializable
func (c *Camera) TypeName() string {
	return "Camera"
}

// Serialize implements engine.Serializable
func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"type":   "Camera",
		"fov":    c.FOV,
		"near":   c.Near,
		"far":    c.Far,
		"isMain": c.IsMain,
	}
}

// Deserialize implements engine.Serializable
func (c *Camera) Deserialize(data map[string]any) {
	if f, ok := engine.PropFloat(data, "fov"); ok {
		c.FOV = f
	}
	if n, ok := engine.PropFloat(data, "near"); ok {
		c.Near = n
	}
	if f, ok := engine.PropFloat(data, "far"); ok {
		c.Far = f
	}
	if m, ok := data["isMain"].(bool); ok {
		c.IsMain = m
	}
}

// GetRaylibCamera places the eye at the aim origin looking along the aim
// direction. Without an AimProvider it falls back to the object's own
// position and facing.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	var aim engine.AimProvider
	for obj := g; obj != nil; obj = obj.Parent {
		if a := engine.GetComponent[engine.AimProvider](obj); a != nil {
			aim = a
			break
		}
	}

	var eyePos, dir rl.Vector3
	if aim != nil {
		eyePos = aim.AimOrigin()
		dir = aim.AimDirection()
	} else {
		eyePos = g.WorldPosition()
		rot := g.WorldRotation()
		dir = engine.DirectionFromAngles(rot.Y, rot.X)
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, dir),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
