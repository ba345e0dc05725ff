package world

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"tpshooter/internal/components"
	"tpshooter/internal/config"
	"tpshooter/internal/engine"
	"tpshooter/internal/scripts"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const tick = float32(1.0 / 60)

const rangeScene = `{
  "name": "TestRange",
  "objects": [
    {
      "name": "Floor", "layer": 1,
      "position": [0, -0.5, 0], "rotation": [0, 0, 0], "scale": [1, 1, 1],
      "components": [{ "type": "BoxCollider", "size": [40, 1, 40] }]
    },
    {
      "name": "Target", "tags": ["target"], "layer": 3,
      "position": [0, 1.6, 10], "rotation": [0, 0, 0], "scale": [1, 1, 1],
      "components": [
        { "type": "BoxCollider", "size": [1, 1, 0.3] },
        { "type": "Health", "max": 100 },
        { "type": "Respawner", "delay": 3 }
      ]
    }
  ]
}`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func targetHealth(w *World, name string) *components.Health {
	g := w.Scene.FindByName(name)
	if g == nil {
		return nil
	}
	return w.TargetHealth()[g.ID]
}

func newTestWorld(t *testing.T) (*World, *Player) {
	t.Helper()
	w := New(quietLogger())
	if err := w.LoadSceneData([]byte(rangeScene)); err != nil {
		t.Fatalf("LoadSceneData failed: %v", err)
	}
	p, err := w.SpawnPlayer(config.Default())
	if err != nil {
		t.Fatalf("SpawnPlayer failed: %v", err)
	}
	p.Weapon.Rand = rand.New(rand.NewPCG(1, 2))
	if err := w.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(w.Shutdown)
	return w, p
}

func run(w *World, seconds float32) {
	for i := 0; i < int(seconds/tick+0.5); i++ {
		w.Tick(tick)
	}
}

func TestLoadSceneData(t *testing.T) {
	w := New(quietLogger())
	if err := w.LoadSceneData([]byte(rangeScene)); err != nil {
		t.Fatalf("LoadSceneData failed: %v", err)
	}
	if w.Scene.Name != "TestRange" {
		t.Errorf("scene name = %q, want TestRange", w.Scene.Name)
	}
	if got := len(w.Scene.GameObjects); got != 2 {
		t.Errorf("objects = %d, want 2", got)
	}
	if got := w.Physics.Len(); got != 2 {
		t.Errorf("colliders = %d, want 2", got)
	}
	target := w.Scene.FindByName("Target")
	if target == nil || target.Layer != 3 || !target.HasTag(TargetTag) {
		t.Fatalf("target not loaded as expected: %+v", target)
	}
	if h := targetHealth(w, "Target"); h == nil || h.Max() != 100 {
		t.Errorf("target health = %v, want max 100", h)
	}
}

func TestLoadSceneDataErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad json", `{"objects": [`, "parse scene"},
		{"missing type", `{"objects": [{"name": "A", "components": [{"size": [1, 1, 1]}]}]}`, "has no type"},
		{"unknown type", `{"objects": [{"name": "A", "components": [{"type": "Teleporter"}]}]}`, "unknown component type"},
		{"bad child", `{"objects": [{"name": "A", "children": [{"name": "B", "components": [{"type": "Nope"}]}]}]}`, "Nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(quietLogger())
			err := w.LoadSceneData([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
			if len(w.Scene.GameObjects) != 0 {
				t.Errorf("partial scene added %d objects", len(w.Scene.GameObjects))
			}
		})
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	w := New(quietLogger())
	if err := w.LoadScene(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing scene file")
	}
}

func TestSpawnPlayerWiring(t *testing.T) {
	w, p := newTestWorld(t)

	if p.Locomotion.Physics != w.Physics || p.Controller.World != w.Physics {
		t.Error("movement components not wired to the physics world")
	}
	if p.Weapon.Physics != w.Physics || p.Weapon.Scheduler != w.Scheduler {
		t.Error("weapon not wired")
	}
	if p.Shooter.Scheduler != w.Scheduler {
		t.Error("shooter not wired")
	}
	if p.Weapon.AmmoInClip() != 30 || p.Weapon.ReserveAmmo() != 90 {
		t.Errorf("ammo = %d/%d, want 30/90", p.Weapon.AmmoInClip(), p.Weapon.ReserveAmmo())
	}
	if p.Object.Layer != config.Default().Layers.Player {
		t.Errorf("player layer = %d", p.Object.Layer)
	}

	if _, err := w.SpawnPlayer(config.Default()); !errors.Is(err, ErrPlayerExists) {
		t.Errorf("second spawn err = %v, want ErrPlayerExists", err)
	}
}

func TestSpawnPlayerBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Player.FireMode = "burst"
	if _, err := New(quietLogger()).SpawnPlayer(cfg); err == nil {
		t.Error("expected error for unknown fire mode")
	}

	cfg = config.Default()
	cfg.Player.Weapon = "railgun"
	if _, err := New(quietLogger()).SpawnPlayer(cfg); err == nil {
		t.Error("expected error for unknown loadout")
	}
}

func TestPlayerStandsOnFloor(t *testing.T) {
	w, p := newTestWorld(t)
	run(w, 1)

	if !p.Locomotion.Grounded() {
		t.Error("player should be grounded on the floor")
	}
	if y := p.Object.Transform.Position.Y; y < -0.01 || y > 0.01 {
		t.Errorf("player Y = %v, want ~0", y)
	}
}

func TestPlayerWalksForward(t *testing.T) {
	w, p := newTestWorld(t)
	run(w, 0.2)

	startZ := p.Object.Transform.Position.Z
	p.Locomotion.SetMoveInput(rl.Vector2{Y: 1})
	run(w, 1)

	if moved := p.Object.Transform.Position.Z - startZ; moved < 2 {
		t.Errorf("moved %v along Z in 1s, want about walk speed", moved)
	}
}

func TestShootTargetUntilRespawn(t *testing.T) {
	w, p := newTestWorld(t)
	stats := TrackWeapon(p.Weapon)
	target := targetHealth(w, "Target")
	respawner := engine.GetComponent[*scripts.Respawner](w.Scene.FindByName("Target"))

	var killed bool
	target.OnKilled.AddListener(func(components.HealthEvent) { killed = true })

	for i := 0; i < 5; i++ {
		shot, ok := p.Weapon.FireWeapon()
		if !ok || !shot.Damaged {
			t.Fatalf("shot %d did not damage the target: %+v", i, shot)
		}
	}
	if !killed || !target.Dead() {
		t.Fatalf("target should be dead, health %d", target.Current())
	}
	if !respawner.Pending() {
		t.Fatal("respawn should be scheduled")
	}
	if stats.Shots != 5 || stats.Hits != 5 || stats.Kills != 1 {
		t.Errorf("stats = %+v, want 5 shots 5 hits 1 kill", *stats)
	}

	run(w, 3.1)
	if target.Dead() || target.Current() != target.Max() {
		t.Errorf("target not revived: dead=%v health=%d", target.Dead(), target.Current())
	}
}

func TestHoldTriggerFiresAtRate(t *testing.T) {
	w, p := newTestWorld(t)
	stats := TrackWeapon(p.Weapon)

	p.Shooter.SetTrigger(true)
	run(w, 1)
	p.Shooter.SetTrigger(false)

	// fire rate 0.1s
	if stats.Shots < 9 || stats.Shots > 11 {
		t.Errorf("shots in 1s = %d, want about 10", stats.Shots)
	}
	if p.Weapon.AmmoInClip() != 30-stats.Shots {
		t.Errorf("clip = %d after %d shots", p.Weapon.AmmoInClip(), stats.Shots)
	}

	if !p.Shooter.RequestReload() {
		t.Fatal("reload refused")
	}
	run(w, 1.1)
	if p.Weapon.AmmoInClip() != 30 || stats.Reloads != 1 {
		t.Errorf("after reload clip = %d reloads = %d", p.Weapon.AmmoInClip(), stats.Reloads)
	}
}

func TestSaveSceneRoundTrip(t *testing.T) {
	w, p := newTestWorld(t)
	p.Weapon.FireWeapon()

	path := filepath.Join(t.TempDir(), "scene.json")
	if err := w.SaveScene(path); err != nil {
		t.Fatalf("SaveScene failed: %v", err)
	}

	loaded := New(quietLogger())
	if err := loaded.LoadScene(path); err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}
	if loaded.Scene.FindByName("Player") != nil {
		t.Error("player should not be saved")
	}
	h := targetHealth(loaded, "Target")
	if h == nil || h.Current() != 80 || h.Max() != 100 {
		t.Errorf("saved target health = %v, want 80/100", h)
	}
}

func TestAddAfterInit(t *testing.T) {
	w, _ := newTestWorld(t)
	if err := w.LoadSceneData([]byte(`{"objects": [{"name": "Late", "tags": ["target"], "components": [
		{"type": "BoxCollider", "size": [1, 1, 1]}, {"type": "Health", "max": 10}, {"type": "Respawner"}]}]}`)); err != nil {
		t.Fatalf("late load failed: %v", err)
	}
	late := w.Scene.FindByName("Late")
	if !late.Started() {
		t.Error("object added after Init should be started")
	}
	if len(w.Targets()) != 2 {
		t.Errorf("targets = %d, want 2", len(w.Targets()))
	}

	w.Remove(late)
	if w.Scene.FindByName("Late") != nil || w.Physics.Len() != 2 {
		t.Error("removed object still present")
	}
}

func TestStatsAccuracy(t *testing.T) {
	s := &Stats{}
	if s.Accuracy() != 0 {
		t.Error("empty accuracy should be 0")
	}
	s.Shots, s.Hits = 4, 3
	if s.Accuracy() != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", s.Accuracy())
	}
}

func TestTargetHealthKeepsDuplicateNames(t *testing.T) {
	w := New(quietLogger())
	err := w.LoadSceneData([]byte(`{"objects": [
  {"name": "Dummy", "tags": ["target"], "components": [{"type": "Health", "max": 50}]},
  {"name": "Dummy", "tags": ["target"], "components": [{"type": "Health", "max": 70}]}
]}`))
	if err != nil {
		t.Fatalf("LoadSceneData failed: %v", err)
	}

	health := w.TargetHealth()
	if len(health) != 2 {
		t.Fatalf("target health entries = %d, want 2", len(health))
	}
	for _, g := range w.Targets() {
		if health[g.ID] == nil {
			t.Errorf("no health for target %s", g.ID)
		}
	}
}
