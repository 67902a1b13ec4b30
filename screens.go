package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/motion/tween"
)

type navDef struct {
	label  string
	target string
}

type screenDef struct {
	name     string
	title    string
	subtitle string
	bg       color.NRGBA
	accent   color.NRGBA
	nav      []navDef
}

func screenDefs() []screenDef {
	return []screenDef{
		{
			name:     "menu",
			title:    "Menu",
			subtitle: "pick a destination, or press F/L/R/Z/B to change the transition",
			bg:       color.NRGBA{R: 0x1c, G: 0x24, B: 0x33, A: 0xff},
			accent:   color.NRGBA{R: 0x4f, G: 0x9d, B: 0xde, A: 0xff},
			nav: []navDef{
				{label: "Library", target: "library"},
				{label: "Settings", target: "settings"},
			},
		},
		{
			name:     "library",
			title:    "Library",
			subtitle: "hover a button to see the scale effect",
			bg:       color.NRGBA{R: 0x24, G: 0x1c, B: 0x2e, A: 0xff},
			accent:   color.NRGBA{R: 0xc3, G: 0x6f, B: 0xd1, A: 0xff},
			nav: []navDef{
				{label: "Menu", target: "menu"},
				{label: "Settings", target: "settings"},
			},
		},
		{
			name:     "settings",
			title:    "Settings",
			subtitle: "edit tuning/motion.yaml with -watch for live reload",
			bg:       color.NRGBA{R: 0x1c, G: 0x2e, B: 0x24, A: 0xff},
			accent:   color.NRGBA{R: 0x6f, G: 0xd1, B: 0x8f, A: 0xff},
			nav: []navDef{
				{label: "Menu", target: "menu"},
				{label: "Library", target: "library"},
			},
		},
	}
}

// Screen is one swappable piece of showcase content: an ebitenui widget
// tree rendered to an offscreen buffer, plus a couple of floats animated
// by the effects engine.
type Screen struct {
	name    string
	ui      *ebitenui.UI
	buf     *ebiten.Image
	bg      color.NRGBA
	accent  *ebiten.Image
	effects *tween.Engine

	// scale is nudged by hover/press on the screen's buttons; the
	// compositor multiplies it into the transition scale.
	scale  float64
	hScale tween.Handle

	// pulse sweeps 0..1 forever, driving the accent bar width.
	pulse float64
}

// newScreen builds the widget tree for def. Buttons use colored
// nine-slices and the built-in basic font so no theme assets are needed.
func newScreen(def screenDef, effects *tween.Engine, nav func(target string)) *Screen {
	s := &Screen{
		name:    def.name,
		buf:     ebiten.NewImage(baseWidth, baseHeight),
		bg:      def.bg,
		effects: effects,
		scale:   1,
	}
	s.accent = ebiten.NewImage(1, 1)
	s.accent.Fill(def.accent)

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 120})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x3a, A: 0xff})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gray := color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb8, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	title := widget.NewText(
		widget.TextOpts.Text(def.title, &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	subtitle := widget.NewText(
		widget.TextOpts.Text(def.subtitle, &face, gray),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(subtitle)

	for _, nd := range def.nav {
		nd := nd
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(nd.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
				widget.WidgetOpts.MinSize(200, 32),
				widget.WidgetOpts.CursorEnterHandler(func(args *widget.WidgetCursorEnterEventArgs) {
					s.hover(true)
				}),
				widget.WidgetOpts.CursorExitHandler(func(args *widget.WidgetCursorExitEventArgs) {
					s.hover(false)
				}),
				widget.WidgetOpts.MouseButtonPressedHandler(func(args *widget.WidgetMouseButtonPressedEventArgs) {
					s.press(true)
				}),
				widget.WidgetOpts.MouseButtonReleasedHandler(func(args *widget.WidgetMouseButtonReleasedEventArgs) {
					s.press(false)
				}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				nav(nd.target)
			}),
		)
		panel.AddChild(btn)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	s.ui = &ebitenui.UI{Container: root}

	effects.ScheduleLoop(0, 1, 1.4, tween.QuadInOut, func(v float64) { s.pulse = v })

	return s
}

// hover and press replace the running scale animation so a mid-flight
// reversal picks up from the current value instead of snapping.

func (s *Screen) hover(on bool) {
	s.effects.Cancel(s.hScale)
	s.hScale = s.effects.ScaleHover(on, s.scale, func(v float64) { s.scale = v })
}

func (s *Screen) press(on bool) {
	s.effects.Cancel(s.hScale)
	s.hScale = s.effects.ScalePress(on, s.scale, func(v float64) { s.scale = v })
}

func (s *Screen) Update() {
	s.ui.Update()
}

// Render redraws the widget tree and the accent sweep into the offscreen
// buffer.
func (s *Screen) Render() {
	s.buf.Fill(s.bg)
	s.ui.Draw(s.buf)

	w := s.pulse * baseWidth
	if w > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, 4)
		op.GeoM.Translate(0, baseHeight-4)
		s.buf.DrawImage(s.accent, op)
	}
}

func (s *Screen) Buffer() *ebiten.Image {
	return s.buf
}

func (s *Screen) Scale() float64 {
	return s.scale
}
