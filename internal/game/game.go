package game

import (
	"fmt"
	"log/slog"
	"time"

	"tpshooter/internal/audio"
	"tpshooter/internal/components"
	"tpshooter/internal/config"
	"tpshooter/internal/engine"
	"tpshooter/internal/weapon"
	"tpshooter/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	tracerLifetime = 0.12
	maxTracers     = 32
)

type tracer struct {
	from, to rl.Vector3
	hit      bool
	age      float32
}

// Game is the interactive sandbox: it feeds keyboard and mouse to the
// player prefab, steps the world at a fixed rate and draws colliders.
type Game struct {
	Config *config.Config
	World  *world.World
	Player *world.Player
	Cues   *audio.CuePlayer
	Stats  *world.Stats
	Logger *slog.Logger

	DebugMode bool
	Muted     bool

	sink        audio.Sink
	unbindCues  func()
	step        float32
	accumulator float32
	tracers     []tracer

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New loads the scene and spawns the player. Audio falls back to silence
// when no output device can be opened.
func New(cfg *config.Config, scenePath string, logger *slog.Logger) (*Game, error) {
	w := world.New(logger)
	if err := w.LoadScene(scenePath); err != nil {
		return nil, err
	}
	p, err := w.SpawnPlayer(cfg)
	if err != nil {
		return nil, err
	}

	var sink audio.Sink = audio.NopSink{}
	if oto, err := audio.NewOtoSink(); err != nil {
		logger.Warn("audio disabled", "error", err)
	} else {
		sink = oto
	}
	return newGame(cfg, w, p, sink, logger), nil
}

func newGame(cfg *config.Config, w *world.World, p *world.Player, sink audio.Sink, logger *slog.Logger) *Game {
	g := &Game{
		Config: cfg,
		World:  w,
		Player: p,
		Cues:   audio.NewCuePlayer(sink),
		Stats:  world.TrackWeapon(p.Weapon),
		Logger: logger,
		sink:   sink,
		step:   1 / float32(cfg.TickRate),
	}
	g.Cues.Logger = logger
	g.unbindCues = g.Cues.Bind(p.Weapon)
	p.Weapon.OnFired.AddListener(g.addTracer)
	return g
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "Shooting Range")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	if err := g.World.Init(); err != nil {
		return err
	}
	defer g.World.Shutdown()
	if closer, ok := g.sink.(interface{ Close() }); ok {
		defer closer.Close()
	}
	// Detach before the sink closes so shutdown never plays into it.
	defer g.unbindCues()

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
	return nil
}

// Update applies this frame's input and runs as many fixed ticks as the
// frame time covers.
func (g *Game) Update(deltaTime float32) {
	updateStart := time.Now()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	ReadInput().Apply(g.Player)
	g.Advance(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// Advance steps the world in fixed increments and returns how many ticks
// ran. Long frames are capped so a stall does not snowball.
func (g *Game) Advance(deltaTime float32) int {
	g.accumulator += min(deltaTime, 0.25)
	ticks := 0
	for g.accumulator >= g.step {
		g.World.Tick(g.step)
		g.accumulator -= g.step
		ticks++
	}
	g.ageTracers(deltaTime)
	g.updateListener()
	return ticks
}

func (g *Game) updateListener() {
	cam := g.Player.Camera.GetRaylibCamera()
	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	g.Cues.Listener = audio.Listener{
		Position: cam.Position,
		Forward:  forward,
		Right:    rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.Up)),
	}
}

func (g *Game) addTracer(shot weapon.Shot) {
	end := shot.Point
	if !shot.Hit {
		end = rl.Vector3Add(shot.Origin, rl.Vector3Scale(shot.Direction, g.Player.Weapon.Data.Range))
	}
	from := g.Player.Muzzle.WorldPosition()
	g.tracers = append(g.tracers, tracer{from: from, to: end, hit: shot.Hit})
	if len(g.tracers) > maxTracers {
		g.tracers = g.tracers[len(g.tracers)-maxTracers:]
	}
}

func (g *Game) ageTracers(deltaTime float32) {
	live := g.tracers[:0]
	for _, t := range g.tracers {
		t.age += deltaTime
		if t.age < tracerLifetime {
			live = append(live, t)
		}
	}
	g.tracers = live
}

func (g *Game) Draw() {
	camera := g.Player.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.drawScene()
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) drawScene() {
	rl.DrawGrid(40, 1)
	for _, root := range g.World.Scene.GameObjects {
		root.Walk(g.drawObject)
	}

	p := g.Player.Object.Transform.Position
	rl.DrawCapsule(
		rl.Vector3{X: p.X, Y: p.Y + 0.4, Z: p.Z},
		rl.Vector3{X: p.X, Y: p.Y + 1.4, Z: p.Z},
		0.4, 8, 4, rl.SkyBlue)
	rl.DrawSphere(g.Player.Muzzle.WorldPosition(), 0.05, rl.Yellow)

	for _, t := range g.tracers {
		color := rl.Orange
		if t.hit {
			color = rl.Red
		}
		rl.DrawLine3D(t.from, t.to, color)
	}
}

func (g *Game) drawObject(obj *engine.GameObject) {
	if !obj.Active {
		return
	}
	color := rl.LightGray
	if h := engine.GetComponent[*components.Health](obj); h != nil {
		color = healthColor(h)
	}

	if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
		center, size := box.GetCenter(), box.GetWorldSize()
		rl.DrawCubeV(center, size, color)
		rl.DrawCubeWiresV(center, size, rl.DarkGray)
	}
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		rl.DrawSphere(sphere.GetCenter(), sphere.Radius, color)
	}
}

func healthColor(h *components.Health) rl.Color {
	if h.Dead() {
		return rl.DarkGray
	}
	t := h.Ratio()
	lerp := func(a, b uint8) uint8 { return uint8(float32(a) + (float32(b)-float32(a))*t) }
	return rl.NewColor(lerp(rl.Red.R, rl.Green.R), lerp(rl.Red.G, rl.Green.G), lerp(rl.Red.B, rl.Green.B), 255)
}

func (g *Game) DrawUI() {
	w := g.Player.Weapon
	h := g.Player.Health
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	rl.DrawText("WASD move, Shift run, Space jump, LMB fire, RMB aim, R reload", 10, 10, 20, rl.LightGray)
	rl.DrawFPS(10, 35)

	// Crosshair sized by the current spread
	cx, cy := int32(screenW/2), int32(screenH/2)
	gap := int32(4 + w.Spread().Effective()*4)
	rl.DrawLine(cx-gap-8, cy, cx-gap, cy, rl.White)
	rl.DrawLine(cx+gap, cy, cx+gap+8, cy, rl.White)
	rl.DrawLine(cx, cy-gap-8, cx, cy-gap, rl.White)
	rl.DrawLine(cx, cy+gap, cx, cy+gap+8, rl.White)

	panelY := screenH - 110
	gui.Label(rl.Rectangle{X: 20, Y: panelY, Width: 200, Height: 20}, fmt.Sprintf("%s  %d / %d", w.Data.Name, w.AmmoInClip(), w.ReserveAmmo()))
	gui.ProgressBar(rl.Rectangle{X: 20, Y: panelY + 24, Width: 200, Height: 16}, "", "",
		float32(w.AmmoInClip()), 0, float32(w.Data.AmmoPerClip))
	gui.Label(rl.Rectangle{X: 20, Y: panelY + 46, Width: 200, Height: 20}, fmt.Sprintf("HP %d / %d", h.Current(), h.Max()))
	gui.ProgressBar(rl.Rectangle{X: 20, Y: panelY + 70, Width: 200, Height: 16}, "", "",
		h.Ratio(), 0, 1)
	if g.Player.Shooter.Reloading() {
		gui.Label(rl.Rectangle{X: (screenW - 100) / 2, Y: screenH/2 + 30, Width: 100, Height: 20}, "RELOADING")
	}

	statsX := screenW - 230
	gui.Label(rl.Rectangle{X: statsX, Y: 10, Width: 220, Height: 20},
		fmt.Sprintf("Shots %d  Hits %d  Kills %d", g.Stats.Shots, g.Stats.Hits, g.Stats.Kills))
	gui.Label(rl.Rectangle{X: statsX, Y: 30, Width: 220, Height: 20},
		fmt.Sprintf("Accuracy %.0f%%", g.Stats.Accuracy()*100))

	look := g.Player.Look
	look.Settings.Sensitivity = gui.Slider(rl.Rectangle{X: statsX + 80, Y: 55, Width: 120, Height: 16},
		"Sensitivity", fmt.Sprintf("%.2f", look.Settings.Sensitivity), look.Settings.Sensitivity, 0.25, 2)
	muted := gui.CheckBox(rl.Rectangle{X: statsX + 80, Y: 78, Width: 16, Height: 16}, "Mute", g.Muted)
	if muted != g.Muted {
		g.Muted = muted
		g.setMuted(muted)
	}

	if g.DebugMode {
		pos := g.Player.Object.Transform.Position
		rl.DrawText(fmt.Sprintf("Pos: (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z), 10, 60, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Yaw %.1f Pitch %.1f Grounded %v", look.Yaw(), look.Pitch(), g.Player.Locomotion.Grounded()), 10, 80, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Spread %.2f", w.Spread().Effective()), 10, 100, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, 125, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, 145, 16, rl.Green)
	}
}

func (g *Game) setMuted(muted bool) {
	if muted {
		g.Cues.Sink = audio.NopSink{}
		return
	}
	g.Cues.Sink = g.sink
}
