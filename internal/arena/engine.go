package arena

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"cell-arena/internal/core"
	rng "cell-arena/pkg/core"
)

// Engine runs one arena: it owns the RNG, world, rule systems and the run
// lifecycle, and satisfies core.Sim for the drivers.
type Engine struct {
	name   string
	cfg    Config
	logger *slog.Logger

	clock *core.PausableClock
	gate  *core.FrameGate

	rng     *rng.RNG
	world   *World
	systems *Systems

	state  core.RunState
	roster []core.Participant
	target int
	seed   string
	result *Result
	ticks  int

	observer func(Outcome)
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger for run lifecycle records.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the time source. The engine wraps it so it can freeze
// while paused.
func WithClock(c core.Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = core.NewPausableClock(c)
		}
	}
}

// WithOutcomeObserver registers a callback for every contact that changed
// the arena. It runs synchronously inside Update.
func WithOutcomeObserver(fn func(Outcome)) Option {
	return func(e *Engine) { e.observer = fn }
}

// WithName overrides the name reported to the HUD.
func WithName(name string) Option {
	return func(e *Engine) { e.name = name }
}

// New constructs an engine in the ready state.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		name:   "arena",
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		target: max(1, cfg.TargetCount),
		seed:   cfg.Seed,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = core.NewPausableClock(core.NewWallClock())
	}
	e.gate = core.NewFrameGate(cfg.Params.FrameCap)
	e.rng = rng.NewRNG(cfg.Seed)
	e.world = NewWorld(&e.cfg, e.rng)
	e.systems = NewSystems(e.world, e.rng, &e.cfg)
	e.systems.OnOutcome = e.observer
	return e
}

// Apply runs further options on an engine built elsewhere, such as by a
// registered preset factory. It has no effect once a run has started.
func (e *Engine) Apply(opts ...Option) {
	if e.state != core.StateReady {
		return
	}
	for _, opt := range opts {
		opt(e)
	}
	e.systems.OnOutcome = e.observer
}

// Name returns the preset name.
func (e *Engine) Name() string { return e.name }

// Size returns the arena dimensions in pixels.
func (e *Engine) Size() core.Size { return core.Size{W: e.cfg.Width, H: e.cfg.Height} }

// State returns the lifecycle state.
func (e *Engine) State() core.RunState { return e.state }

// Clock returns the engine's pausable clock.
func (e *Engine) Clock() core.Clock { return e.clock }

// Config returns a copy of the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// World exposes the arena for rendering. Callers must treat it as read-only.
func (e *Engine) World() *World { return e.world }

// Start begins a run with the given participants. It does nothing while a
// run is in progress. An empty seed draws a time-based one.
func (e *Engine) Start(roster []core.Participant, target int, seed string) {
	if e.state == core.StateRunning {
		return
	}
	e.clock.Resume()

	e.roster = append(e.roster[:0], roster...)
	e.target = max(1, target)
	e.seed = seed
	e.result = nil
	e.ticks = 0

	e.rng.SetSeed(seed)
	now := e.clock.Now()
	e.world.SetRoster(e.roster)
	e.world.Initialize(now)
	e.systems.SetTargetCount(e.target)
	e.systems.Reset(now)
	e.gate.SetCap(e.cfg.Params.FrameCap)
	e.gate.Prime(now)
	e.state = core.StateRunning

	e.logger.Info("run started",
		"participants", len(e.roster),
		"target", e.target,
		"seed", seedLabel(seed),
		"rng_seed", e.rng.Seed(),
	)
}

// TogglePause switches between running and paused. The engine clock stops
// while paused so buffs and the time limit are preserved.
func (e *Engine) TogglePause() {
	switch e.state {
	case core.StateRunning:
		e.clock.Pause()
		e.state = core.StatePaused
	case core.StatePaused:
		e.clock.Resume()
		e.gate.Prime(e.clock.Now())
		e.state = core.StateRunning
	}
}

// Restart stops the current run and starts a new one with the last roster,
// target and seed. It does nothing before the first Start.
func (e *Engine) Restart() {
	if e.state == core.StateReady {
		return
	}
	e.logger.Info("run restarted", "seed", seedLabel(e.seed))
	e.Stop()
	e.Start(e.roster, e.target, e.seed)
}

// Stop ends the run without declaring winners.
func (e *Engine) Stop() {
	e.clock.Resume()
	e.state = core.StateEnded
}

// Tick updates the engine at its own clock's current time.
func (e *Engine) Tick() {
	e.Update(e.clock.Now())
}

// Update advances the run to now. Ticks are ignored unless running and are
// dropped when they arrive faster than the frame cap.
func (e *Engine) Update(now time.Duration) {
	if e.state != core.StateRunning {
		return
	}
	if !e.gate.Allow(now) {
		return
	}
	e.ticks++
	e.world.Update(now)
	e.systems.Update(now)

	if res, ended := CheckEnd(e.world, e.target, e.cfg.Params.TimeLimit, now); ended {
		e.finish(res, now)
	}
}

func (e *Engine) finish(res Result, now time.Duration) {
	e.state = core.StateEnded
	e.result = &res
	e.systems.AddEvent(Event{
		Kind:    EventWinner,
		Message: winnerMessage(res),
		Value:   float64(len(res.Winners)),
	}, now)

	labels := make([]string, len(res.Winners))
	for i, w := range res.Winners {
		labels[i] = w.Label
	}
	e.logger.Info("run ended",
		"result", string(res.Type),
		"winners", labels,
		"elapsed", e.world.Elapsed(now),
		"ticks", e.ticks,
	)
}

func winnerMessage(res Result) string {
	switch res.Type {
	case ResultTargetReached:
		return fmt.Sprintf("target reached: %d survivor(s)", len(res.Winners))
	case ResultTimeLimit:
		return fmt.Sprintf("time up: top %d win", len(res.Winners))
	}
	return "no survivors"
}

// Info summarises the run at the engine clock's current time. Remaining is
// -1 when there is no time limit.
type Info struct {
	State        core.RunState
	Survivors    int
	Participants int
	Items        int
	Target       int
	Elapsed      time.Duration
	Remaining    time.Duration
	Seed         string
	Ticks        int
}

// Info reports the current run summary.
func (e *Engine) Info() Info {
	now := e.clock.Now()
	if e.result != nil {
		now = e.result.EndedAt
	}
	info := Info{
		State:        e.state,
		Survivors:    e.world.SurvivorCount(),
		Participants: len(e.world.cells),
		Items:        len(e.world.items),
		Target:       e.target,
		Remaining:    -1,
		Seed:         e.seed,
		Ticks:        e.ticks,
	}
	if e.state != core.StateReady {
		info.Elapsed = e.world.Elapsed(now)
		info.Remaining = e.world.Remaining(now)
	}
	return info
}

// Events returns the event log, newest first.
func (e *Engine) Events() []Event { return e.systems.Events() }

// Winners returns the final result once the run has ended, or the current
// standings otherwise.
func (e *Engine) Winners() Result {
	if e.result != nil {
		return *e.result
	}
	return Standings(e.world, e.target, e.clock.Now())
}

// Result returns the final result and whether the run ended on its own.
func (e *Engine) Result() (Result, bool) {
	if e.result == nil {
		return Result{}, false
	}
	return *e.result, true
}

// ParticipantStats returns one entry per cell in spawn order.
func (e *Engine) ParticipantStats() []CellView {
	return views(e.world.cells, e.clock.Now())
}

// ItemView is a read-only copy of an item.
type ItemView struct {
	ID        string
	Kind      ItemKind
	X, Y      float64
	Radius    float64
	ExpiresAt time.Duration
}

// Snapshot is a deep copy of everything a HUD or report needs.
type Snapshot struct {
	Info   Info
	Cells  []CellView
	Items  []ItemView
	Events []Event
	Result *Result
}

// Snapshot copies the engine state. It shares nothing with the engine.
func (e *Engine) Snapshot() Snapshot {
	now := e.clock.Now()
	snap := Snapshot{
		Info:   e.Info(),
		Cells:  views(e.world.cells, now),
		Items:  make([]ItemView, len(e.world.items)),
		Events: e.systems.Events(),
	}
	for i, it := range e.world.items {
		snap.Items[i] = ItemView{
			ID:        it.ID,
			Kind:      it.Kind,
			X:         it.Pos.X,
			Y:         it.Pos.Y,
			Radius:    it.Radius,
			ExpiresAt: it.ExpiresAt,
		}
	}
	if e.result != nil {
		res := *e.result
		res.Winners = append([]CellView(nil), res.Winners...)
		snap.Result = &res
	}
	return snap
}

// seedLabel renders an empty seed the way reports show it.
func seedLabel(seed string) string {
	if seed == "" {
		return TimeBasedSeed
	}
	return seed
}
