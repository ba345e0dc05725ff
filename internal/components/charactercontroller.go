package components

import (
	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("CharacterController", func() engine.Serializable {
		return NewCharacterController()
	})
}

// Mover applies a displacement to a character and reports the velocity it
// actually achieved.
type Mover interface {
	Move(motion rl.Vector3, deltaTime float32) rl.Vector3
	Velocity() rl.Vector3
	FootprintRadius() float32
}

// CharacterController moves a box-shaped character through static box
// colliders with push-out and stair stepping. The owner's position is the
// feet pivot; Center lifts the collision box above it.
type CharacterController struct {
	engine.BaseComponent

	Height        float32 // Total height of the box
	Radius        float32 // Half-width of the box
	StepHeight    float32 // Max height of steps to climb
	Center        rl.Vector3
	CollisionMask engine.LayerMask

	// World supplies the colliders to resolve against. Nothing collides
	// when it is nil.
	World engine.ColliderSource

	velocity      rl.Vector3
	collidedBelow bool
}

// TypeName implements engine.Serializable
func (c *CharacterController) TypeName() string {
	return "CharacterController"
}

// NewCharacterController creates a new character controller with defaults
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Height:        1.8,
		Radius:        0.4,
		StepHeight:    0.4,
		Center:        rl.Vector3{Y: 0.9},
		CollisionMask: engine.AllLayers,
	}
}

// Serialize implements engine.Serializable
func (c *CharacterController) Serialize() map[string]any {
	return map[string]any{
		"type":       "CharacterController",
		"height":     c.Height,
		"radius":     c.Radius,
		"stepHeight": c.StepHeight,
		"center":     []float32{c.Center.X, c.Center.Y, c.Center.Z},
	}
}

// Deserialize implements engine.Serializable
func (c *CharacterController) Deserialize(data map[string]any) {
	if v, ok := engine.PropFloat(data, "height"); ok {
		c.Height = v
		c.Center.Y = v / 2
	}
	if v, ok := engine.PropFloat(data, "radius"); ok {
		c.Radius = v
	}
	if v, ok := engine.PropFloat(data, "stepHeight"); ok {
		c.StepHeight = v
	}
	if v, ok := engine.PropVector3(data, "center"); ok {
		c.Center = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}
}

// Move moves the character by the given motion vector, handling collisions
// and steps. Returns the actual displacement after collision resolution.
func (c *CharacterController) Move(motion rl.Vector3, deltaTime float32) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	c.collidedBelow = false

	var colliders []*engine.GameObject
	if c.World != nil {
		colliders = c.World.GetCollidableObjects()
	}

	originalPos := g.Transform.Position

	if len(colliders) == 0 {
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	} else {
		// Horizontal first so stepping can lift the character before the
		// vertical pass settles it.
		horizontalMotion := rl.Vector3{X: motion.X, Y: 0, Z: motion.Z}
		if horizontalMotion.X != 0 || horizontalMotion.Z != 0 {
			c.moveWithCollision(g, horizontalMotion, colliders)
		}
		verticalMotion := rl.Vector3{X: 0, Y: motion.Y, Z: 0}
		if verticalMotion.Y != 0 {
			c.moveWithCollision(g, verticalMotion, colliders)
		}
	}

	actualMotion := rl.Vector3Subtract(g.Transform.Position, originalPos)
	if deltaTime > 0 {
		c.velocity = rl.Vector3Scale(actualMotion, 1/deltaTime)
	}
	return actualMotion
}

// FootprintRadius is the horizontal half-extent of the collision box.
func (c *CharacterController) FootprintRadius() float32 {
	return c.Radius
}

// Velocity returns the velocity achieved by the last Move.
func (c *CharacterController) Velocity() rl.Vector3 {
	return c.velocity
}

// CollidedBelow reports whether the last Move was stopped by something
// underneath.
func (c *CharacterController) CollidedBelow() bool {
	return c.collidedBelow
}

func (c *CharacterController) bounds(pos rl.Vector3) (min, max rl.Vector3) {
	center := rl.Vector3Add(pos, c.Center)
	half := rl.Vector3{X: c.Radius, Y: c.Height / 2, Z: c.Radius}
	return rl.Vector3Subtract(center, half), rl.Vector3Add(center, half)
}

// moveWithCollision attempts to move and handles collision/stepping
func (c *CharacterController) moveWithCollision(g *engine.GameObject, motion rl.Vector3, colliders []*engine.GameObject) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	charMin, charMax := c.bounds(g.Transform.Position)

	for _, other := range colliders {
		if other == g || !other.Active || !c.CollisionMask.Contains(other.Layer) {
			continue
		}

		// Other characters and kinematic movers don't block
		rb := engine.GetComponent[*Rigidbody](other)
		if rb != nil && rb.IsKinematic {
			continue
		}

		boxCol := engine.GetComponent[*BoxCollider](other)
		if boxCol == nil || boxCol.IsTrigger {
			continue
		}

		staticMin, staticMax := boxCol.Bounds()
		if !aabbOverlap(charMin, charMax, staticMin, staticMax) {
			continue
		}

		pushOut := calculatePushOut(charMin, charMax, staticMin, staticMax)

		isHorizontalCollision := (pushOut.X != 0 || pushOut.Z != 0) && pushOut.Y == 0
		if isHorizontalCollision && motion.Y == 0 {
			stepHeight := staticMax.Y - charMin.Y
			if stepHeight > 0 && stepHeight <= c.StepHeight {
				testPos := g.Transform.Position
				testPos.Y += stepHeight + 0.01
				testMin, testMax := c.bounds(testPos)
				if !aabbOverlap(testMin, testMax, staticMin, staticMax) {
					g.Transform.Position = testPos
					c.collidedBelow = true
					charMin, charMax = c.bounds(g.Transform.Position)
					continue
				}
			}
		}

		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		charMin, charMax = c.bounds(g.Transform.Position)

		if pushOut.Y > 0 {
			c.collidedBelow = true
		}
	}
}

// Helper: check if two AABBs overlap. Touching counts so a resting
// character stays in contact with the floor.
func aabbOverlap(aMin, aMax, bMin, bMax rl.Vector3) bool {
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y &&
		aMin.Z <= bMax.Z && aMax.Z >= bMin.Z
}

// Helper: calculate minimum push-out vector between two AABBs
func calculatePushOut(aMin, aMax, bMin, bMax rl.Vector3) rl.Vector3 {
	overlapX1 := aMax.X - bMin.X // A pushing left
	overlapX2 := bMax.X - aMin.X // A pushing right
	overlapY1 := aMax.Y - bMin.Y // A pushing down
	overlapY2 := bMax.Y - aMin.Y // A pushing up
	overlapZ1 := aMax.Z - bMin.Z // A pushing back
	overlapZ2 := bMax.Z - aMin.Z // A pushing forward

	var pushX, pushY, pushZ float32

	if overlapX1 < overlapX2 {
		pushX = -overlapX1
	} else {
		pushX = overlapX2
	}

	if overlapY1 < overlapY2 {
		pushY = -overlapY1
	} else {
		pushY = overlapY2
	}

	if overlapZ1 < overlapZ2 {
		pushZ = -overlapZ1
	} else {
		pushZ = overlapZ2
	}

	absX, absY, absZ := absf(pushX), absf(pushY), absf(pushZ)

	if absX <= absY && absX <= absZ {
		return rl.Vector3{X: pushX}
	} else if absY <= absX && absY <= absZ {
		return rl.Vector3{Y: pushY}
	}
	return rl.Vector3{Z: pushZ}
}
