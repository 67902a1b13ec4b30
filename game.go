package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/motion/script"
	"github.com/milk9111/motion/transition"
	"github.com/milk9111/motion/tuning"
	"github.com/milk9111/motion/tween"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game is the showcase: three widget screens swapped by a transition
// orchestrator, with a second tween engine driving per-widget hover and
// press effects.
type Game struct {
	screens map[string]*Screen
	order   []string

	orchestrator *transition.Orchestrator
	effects      *tween.Engine

	kind     transition.Kind
	spec     tuning.Spec
	timeline *script.Timeline
	watcher  *tuning.Watcher
	overlay  *ebiten.Image
}

func NewGame(scriptPath string, watch bool) (*Game, error) {
	spec, err := tuning.Load()
	if err != nil {
		log.Printf("failed to load motion tuning, using defaults: %v", err)
		spec = tuning.Default()
	}

	g := &Game{
		screens:      map[string]*Screen{},
		orchestrator: transition.NewOrchestrator(tween.NewEngine()),
		effects:      tween.NewEngine(),
		overlay: func() *ebiten.Image {
			img := ebiten.NewImage(1, 1)
			img.Fill(color.Black)
			return img
		}(),
	}

	for _, def := range screenDefs() {
		s := newScreen(def, g.effects, g.requestTransition)
		g.screens[def.name] = s
		g.order = append(g.order, def.name)
	}

	g.applySpec(spec)
	g.orchestrator.SetContent(g.screens[g.order[0]])

	if scriptPath != "" {
		src, err := os.ReadFile(scriptPath)
		if err != nil {
			return nil, fmt.Errorf("read timeline script %s: %w", scriptPath, err)
		}
		tl, err := script.Load(src)
		if err != nil {
			return nil, err
		}
		g.timeline = tl
	}

	if watch {
		w, err := tuning.NewWatcher("tuning")
		if err != nil {
			log.Printf("failed to watch tuning dir, live reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.effects.CancelAll()
}

func (g *Game) applySpec(spec tuning.Spec) {
	g.spec = spec
	g.kind = spec.DefaultKind()
	g.orchestrator.SetDefaultTransition(g.kind)
	g.orchestrator.SetTransitionDuration(spec.TransitionDuration)
	g.orchestrator.SetSlideDistance(spec.SlideDistance)
}

func (g *Game) pollTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case spec, ok := <-g.watcher.Specs:
		if !ok {
			g.watcher = nil
			return
		}
		log.Printf("motion tuning reloaded")
		g.applySpec(spec)
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("tuning watcher: %v", err)
		}
	default:
	}
}

// requestTransition is handed to every screen's nav buttons.
func (g *Game) requestTransition(target string) {
	s, ok := g.screens[target]
	if !ok {
		log.Printf("unknown screen %q", target)
		return
	}
	g.orchestrator.TransitionToKind(s, g.kind)
}

// Stage implementation for scripted timelines.

func (g *Game) IsTransitioning() bool {
	return g.orchestrator.IsTransitioning()
}

func (g *Game) TransitionToNamed(name string, kind transition.Kind, duration float64) bool {
	s, ok := g.screens[name]
	if !ok {
		return false
	}
	g.orchestrator.TransitionToTimed(s, kind, duration)
	return true
}

func (g *Game) SetNamed(name string) bool {
	s, ok := g.screens[name]
	if !ok {
		return false
	}
	g.orchestrator.SetContent(s)
	return true
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	g.pollTuning()
	g.handleInput()

	if g.timeline != nil {
		g.timeline.Tick(dt, g)
	}

	g.effects.Step(dt)
	g.orchestrator.Tick(dt)

	if s, ok := g.orchestrator.CurrentContent().(*Screen); ok && s != nil {
		s.Update()
	}
	if s, ok := g.orchestrator.NextContent().(*Screen); ok && s != nil {
		s.Update()
	}
	return nil
}

var kindKeys = []struct {
	key  ebiten.Key
	kind transition.Kind
}{
	{ebiten.KeyF, transition.Fade},
	{ebiten.KeyL, transition.SlideLeft},
	{ebiten.KeyR, transition.SlideRight},
	{ebiten.KeyZ, transition.Zoom},
	{ebiten.KeyB, transition.FadeToBlack},
	{ebiten.KeyN, transition.None},
}

func (g *Game) handleInput() {
	for _, kk := range kindKeys {
		if inpututil.IsKeyJustPressed(kk.key) {
			g.kind = kk.kind
			g.orchestrator.SetDefaultTransition(kk.kind)
		}
	}

	screenKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	for i, key := range screenKeys {
		if i < len(g.order) && inpututil.IsKeyJustPressed(key) {
			g.requestTransition(g.order[i])
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xff})

	if s, ok := g.orchestrator.CurrentContent().(*Screen); ok && s != nil {
		g.drawScreen(screen, s, g.orchestrator.CurrentOpacity(), g.orchestrator.CurrentOffset(), g.orchestrator.CurrentScale())
	}
	if s, ok := g.orchestrator.NextContent().(*Screen); ok && s != nil {
		g.drawScreen(screen, s, g.orchestrator.NextOpacity(), g.orchestrator.NextOffset(), g.orchestrator.NextScale())
	}
	g.drawOverlay(screen, g.orchestrator.OverlayOpacity())

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.0f  kind: %s  transitioning: %v\n1/2/3 switch screen  F/L/R/Z/B/N pick transition",
		ebiten.ActualFPS(), g.kind, g.orchestrator.IsTransitioning()))
}

// drawScreen composites one offscreen screen buffer using the
// orchestrator's animated opacity, horizontal offset and center scale.
func (g *Game) drawScreen(dst *ebiten.Image, s *Screen, opacity, offset, scale float64) {
	if opacity <= 0 {
		return
	}
	s.Render()

	sc := scale * s.Scale()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Translate(-baseWidth/2, -baseHeight/2)
	op.GeoM.Scale(sc, sc)
	op.GeoM.Translate(baseWidth/2+offset, baseHeight/2)
	var cm ebiten.ColorM
	cm.Scale(1, 1, 1, opacity)
	op.ColorM = cm
	dst.DrawImage(s.Buffer(), op)
}

func (g *Game) drawOverlay(dst *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	w, h := dst.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	var cm ebiten.ColorM
	cm.Scale(1, 1, 1, alpha)
	op.ColorM = cm
	dst.DrawImage(g.overlay, op)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
