package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/twinlane/internal/agent"
	"github.com/avolkov/twinlane/internal/core"
	"github.com/avolkov/twinlane/internal/game"
	"github.com/avolkov/twinlane/internal/storage"
)

// Model is the Bubble Tea model hosting a game session. Input events are
// applied to the simulation immediately as they arrive; tick messages carry
// the timestamps that drive the variable-delta step.
type Model struct {
	game       *game.Game
	trainer    *agent.Trainer // Non-nil in watch mode: the agent steers
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model for a human-controlled session.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return newModel(g, nil, store, cfg)
}

// NewWatchModel creates a model where the trainer's agent steers the
// vehicles while the human watches (and may still pause or quit).
func NewWatchModel(g *game.Game, tr *agent.Trainer, store *storage.Store, cfg core.RuntimeConfig) Model {
	return newModel(g, tr, store, cfg)
}

func newModel(g *game.Game, tr *agent.Trainer, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      g,
		trainer:   tr,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions take effect immediately
// rather than being queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.trainer != nil {
		// Watch mode: lane toggles belong to the agent, pause/restart stay
		// with the human.
		if action == core.ActionToggleLeft || action == core.ActionToggleRight {
			return m, nil
		}
	}

	if action != core.ActionNone {
		m.game.HandleAction(action)
		m.gameState = m.game.State()
		if !m.gameState.GameOver {
			m.scoreSaved = false
		}
	}

	return m, nil
}

// handleMouse maps pointer presses to lane toggles by screen half.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.trainer != nil {
		return m, nil
	}
	if action := m.keyMapper.MapMouse(msg, m.config.ScreenW); action != core.ActionNone {
		m.game.HandleAction(action)
	}
	return m, nil
}

// handleResize processes window resize events. Only the screen buffer
// changes; the simulation keeps its own arena units.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation to the frame timestamp.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.trainer != nil {
		m.trainer.Advance(now)
	} else {
		m.game.Step(now)
	}
	m.gameState = m.game.State()

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.gameState.Score)
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Pointer toggles by screen half
	)

	_, err := p.Run()
	return err
}
