package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lixenwraith/inputmap/input"
	"github.com/lixenwraith/inputmap/window"
)

type action uint8

const (
	moveUp action = iota
	moveDown
	moveLeft
	moveRight
	lookLeft
	lookRight
	zoomIn
	zoomOut
	capture
	release
)

const (
	screenW   = 640
	screenH   = 480
	moveSpeed = 4
	lookSpeed = 0.05
)

func bindings() []input.Binding[action] {
	return []input.Binding[action]{
		input.NewBinding(moveUp, input.KeyCode(input.KeyW), input.LeftStickUp),
		input.NewBinding(moveDown, input.KeyCode(input.KeyS), input.LeftStickDown),
		input.NewBinding(moveLeft, input.KeyCode(input.KeyA), input.LeftStickLeft),
		input.NewBinding(moveRight, input.KeyCode(input.KeyD), input.LeftStickRight),
		input.NewBinding(lookLeft, input.MouseMoveLeft, input.RightStickLeft),
		input.NewBinding(lookRight, input.MouseMoveRight, input.RightStickRight),
		input.NewBinding(zoomIn, input.ScrollUp, input.RightTriggerAxis),
		input.NewBinding(zoomOut, input.ScrollDown, input.LeftTriggerAxis),
		input.NewBinding(capture, input.MouseButtonCode(input.MouseButtonLeft)),
		input.NewBinding(release, input.KeyCode(input.KeyEscape), input.GamepadButtonCode(input.GamepadSelect)),
	}
}

type game struct {
	m   *input.Map[action]
	src *window.Source

	pos      mgl32.Vec2
	heading  float32
	zoom     float32
	captured bool
}

func (g *game) Update() error {
	g.m.Poll(g.src)

	if g.m.Pressed(capture) {
		g.captured = true
	}
	if g.m.Pressed(release) {
		g.captured = false
		g.src.ReleaseCursor()
	}

	x, y := g.m.DirMaxLen1(moveRight, moveLeft, moveUp, moveDown)
	forward := mgl32.Rotate2D(g.heading).Mul2x1(mgl32.Vec2{x, -y})
	g.pos = g.pos.Add(forward.Mul(moveSpeed))

	if g.captured {
		look := g.m.Axis(lookRight, lookLeft)
		g.heading += clamp(look, -1, 1) * lookSpeed
	}

	g.zoom += 0.05 * g.m.Axis(zoomIn, zoomOut)
	g.zoom = clamp(g.zoom, 0.25, 4)

	if g.captured {
		g.m.ResetFrameRecenter()
	} else {
		g.m.ResetFrame()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 20, B: 30, A: 255})

	cx, cy := float32(screenW/2), float32(screenH/2)
	size := 12 * g.zoom
	vector.DrawFilledRect(screen, cx-size/2, cy-size/2, size, size, color.RGBA{R: 100, G: 255, B: 100, A: 255}, false)

	tip := mgl32.Rotate2D(g.heading).Mul2x1(mgl32.Vec2{0, -size * 2})
	vector.StrokeLine(screen, cx, cy, cx+tip.X(), cy+tip.Y(), 2, color.RGBA{R: 255, G: 255, B: 100, A: 255}, false)

	mx, my := g.m.MousePos()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"WASD/stick move, click to capture mouse, Esc to release\npos (%.0f, %.0f) heading %.0f deg zoom %.2f\ncursor (%.0f, %.0f) captured %v",
		g.pos.X(), g.pos.Y(), float64(g.heading)*180/math.Pi, g.zoom, mx, my, g.captured))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func clamp(v, lo, hi float32) float32 {
	return mgl32.Clamp(v, lo, hi)
}

func main() {
	debug := flag.Bool("debug", false, "log to stderr")
	flag.Parse()

	logger := zap.NewNop()
	if *debug {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			log.Fatal(err)
		}
	}
	defer logger.Sync()

	src := window.NewSource(window.WithLogger(logger))
	m, err := input.New(bindings(),
		input.WithLogger(logger),
		input.WithMouseScale(0.1),
		input.WithRecenterer(src))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("window-test")
	if err := ebiten.RunGame(&game{m: m, src: src, zoom: 1}); err != nil {
		log.Fatal(err)
	}
}
