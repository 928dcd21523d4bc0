package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/inputmap/gamepad"
	"github.com/lixenwraith/inputmap/input"
	"github.com/lixenwraith/inputmap/keywatch"
	"github.com/lixenwraith/inputmap/terminal"
)

type action uint8

const (
	actUp action = iota
	actDown
	actLeft
	actRight
	actJump
	actFire
	actZoomIn
	actZoomOut
	actQuit
	actionCount
)

var actionNames = [actionCount]string{"up", "down", "left", "right", "jump", "fire", "zoom_in", "zoom_out", "quit"}

func (a action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", a)
}

func allActions() []action {
	list := make([]action, actionCount)
	for i := range list {
		list[i] = action(i)
	}
	return list
}

func defaultBindings() []input.Binding[action] {
	return []input.Binding[action]{
		input.NewBinding(actUp, input.KeyCode(input.KeyW), input.KeyCode(input.KeyArrowUp), input.LeftStickUp, input.GamepadButtonCode(input.GamepadDPadUp)),
		input.NewBinding(actDown, input.KeyCode(input.KeyS), input.KeyCode(input.KeyArrowDown), input.LeftStickDown, input.GamepadButtonCode(input.GamepadDPadDown)),
		input.NewBinding(actLeft, input.KeyCode(input.KeyA), input.KeyCode(input.KeyArrowLeft), input.LeftStickLeft, input.GamepadButtonCode(input.GamepadDPadLeft)),
		input.NewBinding(actRight, input.KeyCode(input.KeyD), input.KeyCode(input.KeyArrowRight), input.LeftStickRight, input.GamepadButtonCode(input.GamepadDPadRight)),
		input.NewBinding(actJump, input.KeyCode(input.KeySpace), input.GamepadButtonCode(input.GamepadSouth)),
		input.NewBinding(actFire, input.MouseButtonCode(input.MouseButtonLeft), input.RightTriggerAxis),
		input.NewBinding(actZoomIn, input.ScrollUp, input.GamepadButtonCode(input.GamepadRightBumper)),
		input.NewBinding(actZoomOut, input.ScrollDown, input.GamepadButtonCode(input.GamepadLeftBumper)),
		input.NewBinding(actQuit, input.KeyCode(input.KeyEscape), input.GamepadButtonCode(input.GamepadStart)).
			WithChord(input.KeyCode(input.KeyControlLeft), input.KeyCode(input.KeyQ)),
	}
}

const frameTime = time.Second / 60

func main() {
	configPath := flag.String("config", "", "binding file (.toml, .yaml) watched for changes")
	debug := flag.Bool("debug", false, "write debug logs to "+logDir)
	pads := flag.Bool("gamepads", true, "read evdev gamepads")
	sound := flag.Bool("sound", false, "play a tone on jump and fire")
	hold := flag.Duration("hold", terminal.DefaultHoldTimeout, "terminal key hold timeout")
	flag.Parse()

	log, closer := setupLogging(*debug)
	if closer != nil {
		defer closer.Close()
	}
	defer log.Sync()

	if err := run(log, *configPath, *pads, *sound, *hold); err != nil {
		log.Error("input-test failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "input-test: %v\n", err)
		os.Exit(1)
	}
}

func run(log *zap.Logger, configPath string, pads, sound bool, hold time.Duration) error {
	names := input.ActionNames(allActions()...)

	m, err := input.New(defaultBindings(), input.WithLogger(log))
	if err != nil {
		return err
	}

	var watcher *keywatch.Watcher[action]
	if configPath != "" {
		watcher, err = keywatch.New(configPath, names, keywatch.WithLogger(log), keywatch.WithInitialLoad())
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	sources := make([]input.Source, 0, 2)
	var manager *gamepad.Manager
	if pads {
		manager, err = gamepad.Scan(gamepad.WithLogger(log))
		if err != nil {
			log.Warn("gamepads unavailable", zap.Error(err))
		} else {
			defer manager.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	src := terminal.NewSource(screen, terminal.WithLogger(log), terminal.WithHoldTimeout(hold))
	if err := src.Start(); err != nil {
		return err
	}
	defer src.Stop()
	sources = append(sources, src)
	if manager != nil {
		sources = append(sources, manager)
	}

	clk := newClicker()
	if sound {
		if err := clk.init(); err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		}
		defer clk.close()
	}

	ui := &view{screen: screen}
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for range ticker.C {
		m.Poll(sources...)

		if watcher != nil {
			select {
			case cfg := <-watcher.Configs():
				if err := m.ApplyConfig(cfg); err != nil {
					ui.status = "config rejected: " + err.Error()
				} else {
					ui.status = "config applied"
				}
			case err := <-watcher.Errors():
				ui.status = "config error: " + firstLine(err.Error())
			default:
			}
		}

		if m.Pressed(actQuit) || src.Interrupted() {
			return nil
		}
		if m.Pressed(actJump) {
			clk.click(440, 1)
		}
		if m.Pressed(actFire) {
			clk.click(660, m.Strength(actFire))
		}

		ui.draw(m)
		m.ResetFrame()
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
