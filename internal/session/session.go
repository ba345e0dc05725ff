// Package session drives a world headlessly through a scripted sequence of
// player inputs and reports what happened.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"tpshooter/internal/components"
	"tpshooter/internal/config"
	"tpshooter/internal/game"
	"tpshooter/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Phase holds one input for Duration seconds. Jump and Reload are edges
// and only apply on the phase's first tick.
type Phase struct {
	Name     string
	Duration float32
	Input    game.Input
}

// DefaultScript walks, jumps, sweeps the camera and back, empties most of
// a clip at the center target, reloads, keeps firing, then idles long
// enough for targets to respawn.
func DefaultScript() []Phase {
	return []Phase{
		{Name: "settle", Duration: 0.5},
		{Name: "walk", Duration: 1, Input: game.Input{Move: rl.Vector2{Y: 1}}},
		{Name: "jump", Duration: 1.6, Input: game.Input{Jump: true}},
		{Name: "sweep-right", Duration: 0.5, Input: game.Input{Look: rl.Vector2{X: 0.5}, Device: components.DeviceAnalog}},
		{Name: "sweep-left", Duration: 0.5, Input: game.Input{Look: rl.Vector2{X: -0.5}, Device: components.DeviceAnalog}},
		{Name: "aim-fire", Duration: 2, Input: game.Input{Trigger: true, Aim: true}},
		{Name: "reload", Duration: 1.2, Input: game.Input{Reload: true}},
		{Name: "hip-fire", Duration: 1.5, Input: game.Input{Trigger: true, Sprint: true}},
		{Name: "idle", Duration: 4},
	}
}

// TargetResult is a target's state when the session ended.
type TargetResult struct {
	ID      uuid.UUID
	Name    string
	Health  int
	Max     int
	Dead    bool
	Damaged bool
}

type Result struct {
	Seed     uint64
	Ticks    int
	Stats    world.Stats
	Clip     int
	Reserve  int
	Position rl.Vector3
	Targets  []TargetResult
	World    *world.World
}

// Options configure a run. Scene is a file path; SceneData, when set,
// takes precedence.
type Options struct {
	Config    *config.Config
	Scene     string
	SceneData []byte
	Script    []Phase
	Seed      uint64
	Logger    *slog.Logger
}

// Run builds a fresh world and plays the script through it. It stops early
// when ctx is cancelled.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("seed", opts.Seed)
	script := opts.Script
	if script == nil {
		script = DefaultScript()
	}

	w := world.New(logger)
	var err error
	if opts.SceneData != nil {
		err = w.LoadSceneData(opts.SceneData)
	} else {
		err = w.LoadScene(opts.Scene)
	}
	if err != nil {
		return nil, err
	}
	p, err := w.SpawnPlayer(opts.Config)
	if err != nil {
		return nil, err
	}
	p.Weapon.Rand = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	// Damage is recorded as it happens so a respawn does not hide it.
	damaged := make(map[uuid.UUID]bool)
	for id, h := range w.TargetHealth() {
		h.OnDamaged.AddListener(func(components.HealthEvent) { damaged[id] = true })
	}
	stats := world.TrackWeapon(p.Weapon)

	if err := w.Init(); err != nil {
		return nil, err
	}
	defer w.Shutdown()

	step := 1 / float32(opts.Config.TickRate)
	res := &Result{Seed: opts.Seed, World: w}
	for _, phase := range script {
		ticks := int(phase.Duration/step + 0.5)
		logger.Debug("phase", "name", phase.Name, "ticks", ticks)
		for i := 0; i < ticks; i++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("phase %s: %w", phase.Name, err)
			}
			in := phase.Input
			if i > 0 {
				in.Jump = false
				in.Reload = false
			}
			in.Apply(p)
			w.Tick(step)
			res.Ticks++
		}
	}

	res.Stats = *stats
	res.Clip = p.Weapon.AmmoInClip()
	res.Reserve = p.Weapon.ReserveAmmo()
	res.Position = p.Object.Transform.Position
	health := w.TargetHealth()
	for _, t := range w.Targets() {
		h, ok := health[t.ID]
		if !ok {
			continue
		}
		res.Targets = append(res.Targets, TargetResult{
			ID:      t.ID,
			Name:    t.Name,
			Health:  h.Current(),
			Max:     h.Max(),
			Dead:    h.Dead(),
			Damaged: damaged[t.ID],
		})
	}
	slices.SortStableFunc(res.Targets, func(a, b TargetResult) int {
		return strings.Compare(a.Name, b.Name)
	})
	logger.Info("session finished",
		"ticks", res.Ticks,
		"shots", res.Stats.Shots,
		"hits", res.Stats.Hits,
		"kills", res.Stats.Kills)
	return res, nil
}
