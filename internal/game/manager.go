// Package game implements the quadpong simulation: players, paddles and
// balls in a square arena, collision resolution, goal scoring and the match
// state machine. It draws through the Surface interface and never touches
// a terminal directly.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quadpong/internal/config"
	"github.com/vovakirdan/quadpong/internal/core"
)

// State is the match state.
type State int

const (
	StateInitializing State = iota
	StateReady
	StateRunning
	StateWinner
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateWinner:
		return "winner"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// PlayerSource provides the current player roster on demand.
type PlayerSource interface {
	Players() []config.PlayerConfig
}

// Options tune a Manager. The zero value is usable.
type Options struct {
	Logger *log.Logger
	Seed   int64            // 0 seeds from the clock
	Clock  func() time.Time // Used for settings changes; defaults to time.Now
}

// rotationAngles are the tilt steps applied on a ball-paddle hit.
var rotationAngles = []float64{15, 45}

// Manager owns every entity of a match and advances the simulation.
// It is not safe for concurrent use; drive it from a single goroutine.
type Manager struct {
	cfg    config.GameConfig
	source PlayerSource
	col    Collaborators
	logger *log.Logger
	clock  func() time.Time
	rng    *rand.Rand

	ids   IDGenerator
	sched Scheduler
	keys  *core.KeyState
	slots *SlotPool

	state       State
	listenStart bool
	err         error
	lastFrame   time.Time
	frames      int

	players []*Player
	fillers []*Player
	paddles []*Paddle
	balls   []*Ball
	winners []*Player
}

// New validates its inputs, builds the first session from source and enters
// Initializing. A missing collaborator or an invalid config is fatal.
func New(cfg config.GameConfig, source PlayerSource, col Collaborators, opts Options) (*Manager, error) {
	if err := col.validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("%w: player source", ErrMissingCollaborator)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Manager{
		cfg:    cfg,
		source: source,
		col:    col,
		logger: logger,
		clock:  clock,
		rng:    rand.New(rand.NewSource(seed)),
		keys:   core.NewKeyState(),
		slots:  NewSlotPool(),
	}
	col.Surface.SetTextStyle(TextStyle{Font: "monospace", Align: AlignCenter})

	if err := m.initializeGame(clock()); err != nil {
		return nil, err
	}
	return m, nil
}

// Keys returns the input state the host feeds key presses into.
func (m *Manager) Keys() *core.KeyState {
	return m.keys
}

// State returns the current game state.
func (m *Manager) State() State {
	return m.state
}

// Err returns the error that stopped the manager, if any.
func (m *Manager) Err() error {
	return m.err
}

// Frames returns the number of simulation frames run so far.
func (m *Manager) Frames() int {
	return m.frames
}

// Config returns the configuration the manager was built with.
func (m *Manager) Config() config.GameConfig {
	return m.cfg
}

// Scheduler returns the manager's callback scheduler.
func (m *Manager) Scheduler() *Scheduler {
	return &m.sched
}

// ListeningForStart reports whether the start key is currently handled.
func (m *Manager) ListeningForStart() bool {
	return m.listenStart
}

// OnSettingsChange rebuilds the session from the current roster.
// It is meant to be subscribed to the settings store.
func (m *Manager) OnSettingsChange() {
	if m.state == StateStopped {
		return
	}
	if err := m.initializeGame(m.clock()); err != nil {
		m.fail(err)
	}
}

// Stop halts the simulation for good. Pending callbacks are discarded.
func (m *Manager) Stop() {
	if m.state == StateStopped {
		return
	}
	m.sched.Invalidate()
	m.listenStart = false
	m.state = StateStopped
	m.logger.Info("stopped")
}

func (m *Manager) fail(err error) {
	m.err = err
	m.logger.Error("session failed", "error", err)
	m.Stop()
}

// maxFrameLag is how many frame intervals the simulation may fall behind
// before it stops catching up and resynchronizes with the clock.
const maxFrameLag = 4

// Update is called on every host refresh. It fires due callbacks, applies
// input and, once a frame interval has elapsed since the last frame, runs
// one simulation frame. It reports whether a frame ran.
func (m *Manager) Update(now time.Time) bool {
	if m.state == StateStopped {
		return false
	}

	m.sched.Run(now)
	m.handleInput(now, m.keys.Poll())

	if m.state == StateStopped {
		return false
	}
	interval := m.cfg.Timing.FrameInterval()
	switch elapsed := now.Sub(m.lastFrame); {
	case m.lastFrame.IsZero(), elapsed > maxFrameLag*interval:
		m.lastFrame = now
	case elapsed < interval:
		return false
	default:
		// Advance by whole intervals so refresh jitter does not drop frames
		m.lastFrame = m.lastFrame.Add(interval)
	}
	m.frame(now)
	m.frames++
	return true
}

// initializeGame tears down the current session and builds a new one.
func (m *Manager) initializeGame(now time.Time) error {
	dropped := m.sched.Pending()
	m.sched.Invalidate()
	if dropped > 0 {
		m.logger.Debug("dropped stale callbacks", "count", dropped)
	}

	for _, p := range m.paddles {
		p.Detach()
	}
	m.keys.Reset()
	m.listenStart = false

	m.col.Loading.Show()
	m.state = StateInitializing
	m.col.Confetti.Stop()
	m.slots.Clear()
	m.winners = nil
	m.col.Rotator.ResetRotation()

	if err := m.createPlayers(); err != nil {
		return err
	}
	m.createPaddles()
	m.createBalls(now)

	m.col.Scoreboard.Clear()
	for _, p := range m.players {
		m.col.Scoreboard.Create(p.id, p.name, p.color, p.score)
	}

	m.sched.After(now, m.cfg.Timing.InitDelay, m.enterReady)
	m.logger.Info("initializing", "players", len(m.players), "paddles", len(m.paddles), "balls", len(m.balls))
	return nil
}

func (m *Manager) createPlayers() error {
	roster := m.source.Players()
	players := make([]*Player, 0, len(roster))
	for i, pc := range roster {
		p, err := newPlayer(m.ids.NextPlayer(), pc, i < m.cfg.Gameplay.MaxPlayers, m.rng, m.col.Audio)
		if err != nil {
			return err
		}
		players = append(players, p)
	}
	m.players = players

	m.fillers = nil
	if len(players) == 0 {
		for i := range Sides {
			p, err := newPlayer(m.ids.NextPlayer(), config.DefaultPlayer(i), i < m.cfg.Gameplay.MaxPlayers, m.rng, m.col.Audio)
			if err != nil {
				return err
			}
			m.fillers = append(m.fillers, p)
		}
	}
	return nil
}

// owners returns the players that occupy paddles and balls.
func (m *Manager) owners() []*Player {
	if len(m.players) == 0 {
		return m.fillers
	}
	return m.players
}

// createPaddles binds one paddle per side, cycling through the owners.
func (m *Manager) createPaddles() {
	owners := m.owners()
	paddles := make([]*Paddle, 0, len(Sides))
	for i, side := range Sides {
		owner := owners[i%len(owners)]
		paddles = append(paddles, newPaddle(m.ids.NextPaddle(), owner, side, m.cfg.Arena, m.cfg.Paddle))
	}
	m.paddles = paddles
}

// createBalls gives every owner one ball.
func (m *Manager) createBalls(now time.Time) {
	owners := m.owners()
	balls := make([]*Ball, 0, len(owners))
	for _, owner := range owners {
		balls = append(balls, newBall(m.ids.NextBall(), owner, m.slots, m.cfg.Arena, m.cfg.Ball,
			m.cfg.Timing.SpawnDelay, &m.sched, m.rng, now))
	}
	m.balls = balls
}

func (m *Manager) enterReady() {
	m.state = StateReady
	m.col.Loading.Close()
	m.listenStart = true
	m.logger.Info("ready")
}

func (m *Manager) startRunning() {
	m.listenStart = false
	m.state = StateRunning
	m.logger.Info("running")
}

// handleInput routes key edges to the start key and the paddles.
func (m *Manager) handleInput(now time.Time, edges []core.KeyEdge) {
	for _, e := range edges {
		if e.Down && e.Key == m.cfg.Gameplay.StartKey && m.listenStart {
			switch m.state {
			case StateReady:
				m.startRunning()
			case StateWinner:
				m.restart(now)
			}
			continue
		}
		for _, p := range m.paddles {
			p.HandleKey(e)
		}
	}
}

// frame runs one simulation step for the current state and draws it.
func (m *Manager) frame(now time.Time) {
	m.col.Surface.Clear()

	switch m.state {
	case StateInitializing:
		return
	case StateReady:
		for _, p := range m.paddles {
			p.Move()
		}
		m.draw()
		m.drawReady()
	case StateRunning:
		m.step(now)
		m.draw()
	case StateWinner:
		m.draw()
		m.drawWinners()
	}
}

// step advances a running match by one frame.
func (m *Manager) step(now time.Time) {
	for _, p := range m.paddles {
		p.Move()
	}
	for _, b := range m.balls {
		b.Move()
		if side, out := b.OutOfBounds(); out {
			m.updatePlayerScores(b, side)
			b.Reset(now)
		}
	}

	if winners := m.checkWinners(); len(winners) > 0 {
		m.handleWinners(winners)
	}
	m.resolveCollisions()
}

// paddleAt returns the paddle defending a side.
func (m *Manager) paddleAt(side Side) *Paddle {
	for _, p := range m.paddles {
		if p.side == side {
			return p
		}
	}
	return nil
}

// updatePlayerScores attributes a goal. A ball leaving through its own
// owner's side costs that owner its point value; any other goal rewards
// every player except the one who conceded. Players that cannot win keep
// their score.
func (m *Manager) updatePlayerScores(ball *Ball, side Side) {
	paddle := m.paddleAt(side)
	if paddle == nil {
		return
	}
	conceding := paddle.player.id
	owner := ball.player.id

	if conceding == owner {
		if ball.player.canWin {
			ball.player.AddScore(-ball.pointValue)
		}
	} else {
		for _, p := range m.players {
			if p.id != conceding && p.canWin {
				p.AddScore(ball.pointValue)
			}
		}
	}

	for _, p := range m.players {
		m.col.Scoreboard.UpdateScore(p.id, p.score)
	}
	m.logger.Info("goal", "ball", ball.id, "owner", ball.player.name, "side", side, "conceded", paddle.player.name)
}

// checkWinners returns every eligible player at or above the winning score.
func (m *Manager) checkWinners() []*Player {
	var winners []*Player
	for _, p := range m.players {
		if p.canWin && p.score >= m.cfg.Gameplay.WinningScore {
			winners = append(winners, p)
		}
	}
	return winners
}

func (m *Manager) handleWinners(winners []*Player) {
	m.winners = winners
	m.state = StateWinner
	m.listenStart = true
	m.col.Confetti.Start()

	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.name
	}
	m.logger.Info("winner", "players", names)
}

// resolveCollisions handles every ball pair and every ball-paddle pair.
func (m *Manager) resolveCollisions() {
	for _, p := range m.paddles {
		p.colliding = false
	}

	for i := 0; i < len(m.balls); i++ {
		for j := i + 1; j < len(m.balls); j++ {
			a, b := m.balls[i], m.balls[j]
			if IsCollision(a, b) {
				SolveBallBallCollision(a, b)
			}
		}
	}

	for _, b := range m.balls {
		for _, p := range m.paddles {
			if !IsCollision(b, p) {
				continue
			}
			p.colliding = true
			SolveBallPaddleCollision(b, p)
			b.player.PlayAudio()
			m.col.Rotator.Rotate(m.randomRotation())
		}
	}
}

func (m *Manager) randomRotation() Rotation {
	return Rotation{
		Degrees: rotationAngles[m.rng.Intn(len(rotationAngles))],
		X:       m.rng.Float64(),
		Y:       m.rng.Float64(),
		Z:       m.rng.Float64(),
	}
}

// restart starts a new match with the same entities.
// Paddles keep their positions.
func (m *Manager) restart(now time.Time) {
	m.winners = nil
	m.col.Confetti.Stop()
	m.col.Rotator.ResetRotation()

	for _, p := range m.players {
		p.ResetScore()
		m.col.Scoreboard.UpdateScore(p.id, p.score)
	}
	for _, b := range m.balls {
		b.Reset(now)
	}

	m.state = StateReady
	m.listenStart = true
	m.logger.Info("restarted")
}
