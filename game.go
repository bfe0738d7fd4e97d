package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/goldpiece/config"
	"github.com/milk9111/goldpiece/logging"
	"github.com/milk9111/goldpiece/session"
)

type Game struct {
	session *session.Session
	width   int
	height  int

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	summary *widget.Text
}

func NewGame(s *session.Session, cfg config.Settings) *Game {
	g := &Game{
		session: s,
		width:   cfg.WindowWidth,
		height:  cfg.WindowHeight,
	}
	if g.width <= 0 || g.height <= 0 {
		g.width, g.height = 1280, 720
	}
	g.pauseUI, g.summary = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.summary.Label = summaryText(g.session)
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Persistence.Reset(g.session.World); err != nil {
			logging.For("game").Error().Err(err).Msg("reset savegame")
		} else {
			logging.For("game").Info().Msg("level pieces reset")
		}
	}

	g.session.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
