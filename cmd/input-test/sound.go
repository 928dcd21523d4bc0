package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// clicker plays a short tone when an action is pressed
type clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func newClicker() *clicker {
	return &clicker{mixer: &beep.Mixer{}}
}

// init opens the audio device; failure leaves the clicker silent
func (c *clicker) init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// click plays a tone at freq scaled by strength
func (c *clicker) click(freq float64, strength float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	tone := beep.Take(sampleRate.N(60*time.Millisecond), newToneGenerator(sampleRate, freq, float64(strength)))
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

func (c *clicker) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// toneGenerator is a sine with a fast attack
type toneGenerator struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
}

func newToneGenerator(sr beep.SampleRate, freq, gain float64) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq, gain: gain}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0)
		s := 0.2 * g.gain * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
