package engine

import (
	"errors"
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type countingComponent struct {
	BaseComponent
	inits, ticks, shutdowns int
	initErr                 error
}

func (c *countingComponent) Init() error {
	c.inits++
	return c.initErr
}

func (c *countingComponent) Tick(deltaTime float32) { c.ticks++ }

func (c *countingComponent) Shutdown() { c.shutdowns++ }

type markerComponent struct {
	BaseComponent
	label string
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %+v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")

	if obj1.ID == obj2.ID {
		t.Error("GameObjects should have unique IDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"enemy", "target"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}
	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}
	if parent.FindChild("Child") != child {
		t.Error("FindChild should return the added child")
	}

	parent.RemoveChild(child)
	if len(parent.Children) != 0 {
		t.Errorf("Expected 0 children, got %d", len(parent.Children))
	}
	if child.Parent != nil {
		t.Error("Child.Parent should be cleared")
	}
}

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	marker := &markerComponent{label: "root"}
	obj.AddComponent(&countingComponent{})
	obj.AddComponent(marker)

	if got := GetComponent[*markerComponent](obj); got != marker {
		t.Errorf("Expected marker component, got %v", got)
	}
	if marker.GetGameObject() != obj {
		t.Error("AddComponent should set the owner")
	}
	if got := GetComponent[*markerComponent](nil); got != nil {
		t.Error("GetComponent on nil object should return nil")
	}
}

func TestGetComponentInChildren(t *testing.T) {
	root := NewGameObject("Root")
	mid := NewGameObject("Mid")
	leaf := NewGameObject("Leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	marker := &markerComponent{label: "leaf"}
	leaf.AddComponent(marker)

	if got := GetComponentInChildren[*markerComponent](root); got != marker {
		t.Errorf("Expected leaf marker, got %v", got)
	}

	own := &markerComponent{label: "root"}
	root.AddComponent(own)
	if got := GetComponentInChildren[*markerComponent](root); got != own {
		t.Error("Component on the object itself should win over children")
	}

	root.components = nil
	mid.Active = false
	if got := GetComponentInChildren[*markerComponent](root); got != nil {
		t.Error("Inactive children should be skipped")
	}
}

func TestGameObjectLifecycle(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	pc := &countingComponent{}
	cc := &countingComponent{}
	parent.AddComponent(pc)
	child.AddComponent(cc)
	parent.AddChild(child)

	if err := parent.Init(); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	parent.Tick(0.016)
	parent.Tick(0.016)
	parent.Shutdown()

	if pc.inits != 1 || cc.inits != 1 {
		t.Errorf("Expected one init each, got %d and %d", pc.inits, cc.inits)
	}
	if pc.ticks != 2 || cc.ticks != 2 {
		t.Errorf("Expected two ticks each, got %d and %d", pc.ticks, cc.ticks)
	}
	if pc.shutdowns != 1 || cc.shutdowns != 1 {
		t.Errorf("Expected one shutdown each, got %d and %d", pc.shutdowns, cc.shutdowns)
	}
}

func TestGameObjectInitFailureBlocksTick(t *testing.T) {
	sentinel := errors.New("boom")
	obj := NewGameObject("Broken")
	bad := &countingComponent{initErr: sentinel}
	obj.AddComponent(bad)

	err := obj.Init()
	if !errors.Is(err, sentinel) {
		t.Fatalf("Expected wrapped sentinel, got %v", err)
	}

	obj.Tick(0.016)
	if bad.ticks != 0 {
		t.Error("Object that failed Init should not tick")
	}
}

func TestWorldPositionFollowsParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: 0}
	parent.Transform.Rotation = rl.Vector3{Y: 90}
	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 0, Y: 1, Z: 2}
	parent.AddChild(child)

	pos := child.WorldPosition()
	if math.Abs(float64(pos.Y-1)) > 1e-4 {
		t.Errorf("Expected Y 1, got %f", pos.Y)
	}
	dist := rl.Vector3Distance(pos, rl.Vector3{X: 10, Y: 1, Z: 0})
	if math.Abs(float64(dist-2)) > 1e-4 {
		t.Errorf("Expected child 2 units from parent pivot, got %f", dist)
	}
}

func TestDirectionFromAngles(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float32
		want       rl.Vector3
	}{
		{"forward", 0, 0, rl.Vector3{Z: 1}},
		{"right", 90, 0, rl.Vector3{X: 1}},
		{"back", 180, 0, rl.Vector3{Z: -1}},
		{"up", 0, 90, rl.Vector3{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DirectionFromAngles(tt.yaw, tt.pitch)
			if rl.Vector3Distance(got, tt.want) > 1e-5 {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
