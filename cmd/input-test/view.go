package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/inputmap/input"
)

const (
	barWidth = 20
	logLines = 8
)

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200)).Background(tcell.NewRGBColor(40, 40, 60)).Bold(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 180, 180))
	styleActive = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 255, 100))
	styleDim    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 90, 110))
	styleStatus = tcell.StyleDefault.Foreground(tcell.NewRGBColor(140, 140, 160))
)

// view renders the action table and an event log
type view struct {
	screen tcell.Screen
	status string
	log    []string
}

func (v *view) addLog(s string) {
	if len(v.log) >= logLines {
		copy(v.log, v.log[1:])
		v.log = v.log[:logLines-1]
	}
	v.log = append(v.log, s)
}

func (v *view) draw(m *input.Map[action]) {
	v.screen.Clear()
	w, h := v.screen.Size()

	v.text(0, 0, padRight(" Input Test - Esc, Ctrl+Q or Ctrl+C to quit", w), styleTitle)

	y := 2
	for _, a := range allActions() {
		s := m.Strength(a)
		style := styleDim
		if m.Pressing(a) {
			style = styleActive
		}
		if m.Pressed(a) {
			v.addLog(fmt.Sprintf("PRESSED  %-8s %.2f", a, s))
		}
		if m.Released(a) {
			v.addLog(fmt.Sprintf("RELEASED %s", a))
		}
		v.text(1, y, fmt.Sprintf("%-9s %s %5.2f  %s", a, bar(s), s, bindList(m.CodesFor(a), m.ChordsFor(a))), style)
		y++
	}

	y++
	dx, dy := m.DirMaxLen1(actRight, actLeft, actUp, actDown)
	mx, my := m.MousePos()
	v.text(1, y, fmt.Sprintf("dir (%+.2f, %+.2f)   mouse (%.0f, %.0f)", dx, dy, mx, my), styleText)
	y++
	if code, ok := m.RecentlyPressed(); ok {
		v.addLog("raw " + code.String())
	}
	if t := m.TextTyped(); t != "" {
		v.addLog(fmt.Sprintf("TEXT %q", t))
	}

	y++
	for _, entry := range v.log {
		if y >= h-2 {
			break
		}
		v.text(1, y, entry, styleText)
		y++
	}

	v.text(1, h-1, padRight(v.status, w-1), styleStatus)
	v.screen.Show()
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func bar(s float32) string {
	if s > 1 {
		s = 1
	}
	n := int(s * barWidth)
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", barWidth-n) + "]"
}

func bindList(codes []input.Code, chords []input.Chord) string {
	names := make([]string, 0, len(codes)+len(chords))
	for _, c := range codes {
		names = append(names, c.String())
	}
	for _, ch := range chords {
		names = append(names, ch.String())
	}
	return strings.Join(names, " ")
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
