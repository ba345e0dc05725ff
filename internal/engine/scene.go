package engine

import (
	"errors"

	"github.com/google/uuid"
)

// Scene holds root GameObjects. Children are reached through their parent
// but are indexed by ID as well.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	idMap       map[uuid.UUID]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		idMap:       make(map[uuid.UUID]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.idMap == nil {
		s.idMap = make(map[uuid.UUID]*GameObject)
	}
	g.setScene(s)
	g.Walk(func(o *GameObject) { s.idMap[o.ID] = o })
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject detaches g and its descendants from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	g.Walk(func(o *GameObject) {
		delete(s.idMap, o.ID)
		o.Scene = nil
	})
}

func (s *Scene) FindByID(id uuid.UUID) *GameObject {
	return s.idMap[id]
}

func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	for _, root := range s.GameObjects {
		root.Walk(func(o *GameObject) {
			if found == nil && o.Name == name {
				found = o
			}
		})
	}
	return found
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, root := range s.GameObjects {
		root.Walk(func(o *GameObject) {
			if o.HasTag(tag) {
				result = append(result, o)
			}
		})
	}
	return result
}

// Init initializes every root object. All failures are returned joined.
func (s *Scene) Init() error {
	var errs []error
	for _, g := range s.GameObjects {
		if err := g.Init(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Scene) Tick(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Tick(deltaTime)
	}
}

func (s *Scene) Shutdown() {
	for _, g := range s.GameObjects {
		g.Shutdown()
	}
}
