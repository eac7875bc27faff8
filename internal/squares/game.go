package squares

import (
	"context"
	"fmt"
	"time"

	"github.com/TheBitDrifter/ledger"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Game wires the colored squares table to a screen, a keypad and a sound
// device, and drives it one frame at a time.
type Game struct {
	screen   tcell.Screen
	table    *ledger.Table
	renderer *Renderer
	keys     *Keypad
	logger   *zap.Logger
	frames   int
}

// NewGame builds the table, registers the six systems and spawns the first
// wave of squares.
func NewGame(cfg Config, screen tcell.Screen, sound Sound, logger *zap.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	table, err := ledger.Factory.NewTable(cfg.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to create game table: %w", err)
	}

	n := cfg.Table.MaxEntities
	g := &Game{
		screen:   screen,
		table:    table,
		renderer: NewRenderer(screen, n),
		keys:     &Keypad{},
		logger:   logger,
	}

	table.AddSystem(SysMovement, NewMovement(table, n))
	table.AddSystem(SysRotation, NewRotation(table, n))
	table.AddSystem(SysVisibility, NewVisibility(table, g.keys, n))
	table.AddSystem(SysScaling, NewScaling(table, g.keys, n))
	table.AddSystem(SysAnimation, NewAnimationSystem(table, n))
	table.AddSystem(SysEntityManager, NewEntityManager(table, g.renderer, g.keys, sound, logger))
	table.Init()

	SpawnWave(table, g.renderer)
	logger.Info("game ready", zap.Int("max_entities", n), zap.Int("squares", table.Len()))
	return g, nil
}

func (g *Game) Table() *ledger.Table { return g.table }
func (g *Game) Renderer() *Renderer  { return g.renderer }
func (g *Game) Keys() *Keypad        { return g.keys }
func (g *Game) Frames() int          { return g.frames }

// Frame runs one update of every active system, draws the result and forgets
// the keys pressed during the frame.
func (g *Game) Frame() {
	g.table.Update()
	g.renderer.Draw(g.status())
	g.keys.Flush()
	g.frames++
}

func (g *Game) status() string {
	return fmt.Sprintf("squares %d/%d  [a]dd [↑]red [↓]clear [←]rotating [→]freeze [l]ight [r]scale [q]uit",
		g.table.Len(), g.table.Config().MaxEntities)
}

// HandleEvent feeds ev to the keypad. It returns false when the player quits.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
		return true
	}
	return g.keys.HandleEvent(ev)
}

// Run polls screen events and runs a frame every frameTime until the player
// quits or ctx is done.
func (g *Game) Run(ctx context.Context, frameTime time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !g.HandleEvent(ev) {
				g.logger.Info("player quit", zap.Int("frames", g.frames))
				return nil
			}
		case <-ticker.C:
			g.Frame()
		}
	}
}

// Close destroys the table, which frees every sprite.
func (g *Game) Close() {
	g.table.Close()
}
