package sim

import (
	"time"

	"github.com/pkg/errors"

	"lifesim/model"
	"lifesim/rules"
	"lifesim/utils"
)

// Simulation coordinates the grid, the rule engine and the generation
// clock. It owns the living cell count as an explicit field, updated
// transactionally as part of every generation transition, and applies the
// optional revive perturbation and extinction restart policy.
//
// A Simulation is not safe for concurrent use: the grid is exclusively
// owned by the caller driving Tick, and any external mutation (e.g. a UI
// toggling cells) must be serialized relative to it.
type Simulation struct {
	cfg    utils.Config
	grid   *model.Grid
	engine *rules.Engine
	clock  *Clock
	policy *RestartPolicy
	rng    *utils.RNG
	init   model.Initializer

	living     int
	generation int
	stagnant   int
}

// New validates the configuration and builds a simulation seeded through
// init.
func New(cfg utils.Config, init model.Initializer) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[New] invalid config")
	}

	grid, err := model.NewGrid(cfg.Rows, cfg.Cols, init)
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to build grid")
	}

	clock, err := NewClock(cfg.GenerationInterval(), cfg.StrictTiming)
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to build clock")
	}

	return &Simulation{
		cfg:    cfg,
		grid:   grid,
		engine: rules.NewEngine(),
		clock:  clock,
		policy: &RestartPolicy{Pause: cfg.RestartPause()},
		rng:    utils.NewRNG(cfg.Seed),
		init:   init,
		living: grid.CountLivingCells(),
	}, nil
}

// Grid exposes the simulation's grid for observation and seeding.
func (s *Simulation) Grid() *model.Grid {
	return s.grid
}

// Generation returns the number of generation transitions applied so far.
func (s *Simulation) Generation() int {
	return s.generation
}

// LivingCells returns the living cell count after the latest transition.
func (s *Simulation) LivingCells() int {
	return s.living
}

// SyncLivingCells recounts the grid after an external mutation (e.g. a
// click-to-toggle collaborator) so the restart policy sees fresh numbers.
func (s *Simulation) SyncLivingCells() int {
	s.living = s.grid.CountLivingCells()
	return s.living
}

// Tick records one scheduling frame. It reports whether a generation
// transition was applied. When the board is extinct and auto-restart is
// enabled, the grid does not advance; instead it is fully reseeded once
// the restart pause has elapsed.
func (s *Simulation) Tick(now time.Time) (bool, error) {
	fired, err := s.clock.Tick(now)
	if err != nil {
		return false, errors.Wrap(err, "[Tick] clock rejected timestamp")
	}
	if !fired {
		return false, nil
	}

	if s.living == 0 && s.cfg.AutoRestart {
		if s.policy.ShouldReseed(now, s.living) {
			s.reseed()
		}
		return false, nil
	}

	s.living = s.engine.Step(s.grid)
	if p := s.cfg.ReviveProbability; p > 0 {
		s.living += s.engine.Revive(s.grid, p, s.rng)
	}
	s.generation++

	s.refreshStagnation()
	return true, nil
}

func (s *Simulation) reseed() {
	s.grid.Reseed(s.init)
	s.living = s.grid.CountLivingCells()
	s.policy.Reset()
	s.stagnant = 0
}

// refreshStagnation tracks repeated board states and injects random life
// once the configured threshold of stagnant generations is reached.
func (s *Simulation) refreshStagnation() {
	if s.cfg.StagnationThreshold <= 0 {
		return
	}

	// Compare against prior generations before recording the current one.
	if s.grid.IsStagnant() {
		s.stagnant++
	} else {
		s.stagnant = 0
	}
	s.grid.UpdateHistory()

	if s.stagnant >= s.cfg.StagnationThreshold && s.cfg.InjectionCount > 0 {
		s.grid.InjectRandomLife(s.cfg.InjectionCount, s.rng)
		s.living = s.grid.CountLivingCells()
		s.stagnant = 0
	}
}
