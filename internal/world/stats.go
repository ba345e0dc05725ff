package world

import "tpshooter/internal/weapon"

// Stats tallies what a weapon did over a session.
type Stats struct {
	Shots   int
	Hits    int
	Kills   int
	Damage  int
	Reloads int
	Dry     int // trigger pulls on an empty clip
}

// Accuracy is the fraction of shots that connected.
func (s *Stats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

// TrackWeapon subscribes a fresh Stats to w's notifications.
func TrackWeapon(w weapon.Weapon) *Stats {
	s := &Stats{}
	ev := w.Notifications()
	damage := w.Loadout().Damage
	ev.OnFired.AddListener(func(shot weapon.Shot) {
		s.Shots++
		if shot.Damaged {
			s.Hits++
			s.Damage += damage
		}
		if shot.Killed {
			s.Kills++
		}
	})
	ev.OnReloaded.AddListener(func(int) { s.Reloads++ })
	ev.OnOutOfAmmo.AddListener(func() { s.Dry++ })
	return s
}
