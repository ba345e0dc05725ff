package world

import (
	"encoding/json"
	"fmt"
	"os"

	"tpshooter/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string           `json:"name"`
	Tags       []string         `json:"tags,omitempty"`
	Layer      int              `json:"layer,omitempty"`
	Inactive   bool             `json:"inactive,omitempty"`
	Position   [3]float32       `json:"position"`
	Rotation   [3]float32       `json:"rotation"`
	Scale      [3]float32       `json:"scale"`
	Components []map[string]any `json:"components,omitempty"`
	Children   []ObjectDef      `json:"children,omitempty"`
}

// --- Loading ---

// LoadScene reads a scene file and adds its objects to the world.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	if err := w.LoadSceneData(data); err != nil {
		return fmt.Errorf("scene %s: %w", path, err)
	}
	return nil
}

// LoadSceneData decodes a scene document. Component entries name a
// registered type under "type"; the remaining keys are its props. Nothing
// is added when any object fails to build.
func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, def := range sf.Objects {
		g, err := buildObject(def)
		if err != nil {
			return err
		}
		objects = append(objects, g)
	}

	if sf.Name != "" {
		w.Scene.Name = sf.Name
	}
	for _, g := range objects {
		if err := w.Add(g); err != nil {
			return err
		}
	}
	return nil
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Layer = def.Layer
	g.Active = !def.Inactive
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = vec3(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec3(def.Scale)
	}

	for i, props := range def.Components {
		typ, _ := props["type"].(string)
		if typ == "" {
			return nil, fmt.Errorf("object %q: component %d has no type", def.Name, i)
		}
		c, err := engine.CreateComponent(typ, props)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", def.Name, err)
		}
		g.AddComponent(c)
	}

	for _, childDef := range def.Children {
		child, err := buildObject(childDef)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Saving ---

// SaveScene writes every scene object except the player to path, with the
// components' current serialized state.
func (w *World) SaveScene(path string) error {
	data, err := json.MarshalIndent(w.SceneFile(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// SceneFile snapshots the scene in its file form.
func (w *World) SceneFile() SceneFile {
	sf := SceneFile{Name: w.Scene.Name}
	for _, g := range w.Scene.GameObjects {
		// Skip player (code-managed)
		if w.Player != nil && g == w.Player.Object {
			continue
		}
		sf.Objects = append(sf.Objects, objectDef(g))
	}
	return sf
}

func objectDef(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Layer:    g.Layer,
		Inactive: !g.Active,
		Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
		Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
		Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
	}
	for _, c := range g.Components() {
		s, ok := c.(engine.Serializable)
		if !ok {
			continue
		}
		props := s.Serialize()
		props["type"] = s.TypeName()
		def.Components = append(def.Components, props)
	}
	for _, child := range g.Children {
		def.Children = append(def.Children, objectDef(child))
	}
	return def
}
