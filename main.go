package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/iburimskiy/screensaver/internal/config"
	"github.com/iburimskiy/screensaver/internal/effect"
	"github.com/iburimskiy/screensaver/internal/game"
	"github.com/iburimskiy/screensaver/internal/loop"
	"github.com/iburimskiy/screensaver/internal/screensaver"
	"github.com/iburimskiy/screensaver/internal/sound"
	"github.com/iburimskiy/screensaver/internal/terminal"
)

const envPrefix = "SCREENSAVER"

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return buildCLI().ParseAndRun(ctx, os.Args[1:])
}

func buildCLI() *ffcli.Command {
	rootFlagSet := flag.NewFlagSet("screensaver", flag.ExitOnError)
	timeoutMs := rootFlagSet.Int64("timeout", config.DefaultTimeout.Milliseconds(), "Idle time in milliseconds before the screensaver starts")
	mode := rootFlagSet.String("mode", "", "Effect to show: starWarp, pipes, toasters or dvdLogo (default random)")
	seed := rootFlagSet.Int64("seed", 0, "Random seed for the effects (0 = time-based)")
	withSound := rootFlagSet.Bool("sound", false, "Play a chime when the screensaver starts")
	rootFlagSet.String("config", "", "Config file with one 'flag value' per line")

	options := func() (config.Options, error) {
		if *mode != "" {
			if _, ok := effect.ParseMode(*mode); !ok {
				return config.Options{}, fmt.Errorf("unknown mode %q, run 'screensaver modes' for the list", *mode)
			}
		}
		return config.Options{
			Timeout: config.TimeoutFromMillis(*timeoutMs),
			Mode:    *mode,
			Seed:    *seed,
			Sound:   *withSound,
		}, nil
	}

	// Window command
	windowFlagSet := flag.NewFlagSet("screensaver window", flag.ExitOnError)
	fullscreen := windowFlagSet.Bool("fullscreen", false, "Start in fullscreen")
	width := windowFlagSet.Int("width", config.WindowWidth, "Window width")
	height := windowFlagSet.Int("height", config.WindowHeight, "Window height")

	execWindow := func(_ context.Context, _ []string) error {
		opts, err := options()
		if err != nil {
			return err
		}
		return runWindow(opts, windowConfig{fullscreen: *fullscreen, width: *width, height: *height})
	}

	windowCmd := &ffcli.Command{
		Name:       "window",
		ShortUsage: "screensaver [flags] window [flags]",
		ShortHelp:  "Run in a desktop window (default)",
		FlagSet:    windowFlagSet,
		Options:    []ff.Option{ff.WithEnvVarPrefix(envPrefix)},
		Exec:       execWindow,
	}

	// Terminal command
	termCmd := &ffcli.Command{
		Name:       "term",
		ShortUsage: "screensaver [flags] term",
		ShortHelp:  "Run inside the terminal",
		Exec: func(ctx context.Context, _ []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			return runTerminal(ctx, opts)
		},
	}

	// Modes command
	modesCmd := &ffcli.Command{
		Name:       "modes",
		ShortUsage: "screensaver modes",
		ShortHelp:  "List the available effects",
		Exec: func(_ context.Context, _ []string) error {
			for _, m := range effect.Modes {
				fmt.Println(m)
			}
			return nil
		},
	}

	// Root command
	return &ffcli.Command{
		ShortUsage: "screensaver [flags] <subcommand>",
		ShortHelp:  "An idle screensaver with four effects",
		LongHelp: "Controls:\n  Esc             Start now, or dismiss\n  Any other input Dismiss and restart the idle timer\n" +
			"  Ctrl+Q / Ctrl+C Quit (window / terminal)\n\nEvery flag can also be set through SCREENSAVER_<FLAG> variables.",
		FlagSet:     rootFlagSet,
		Options:     []ff.Option{ff.WithEnvVarPrefix(envPrefix), ff.WithConfigFileFlag("config"), ff.WithConfigFileParser(ff.PlainParser)},
		Subcommands: []*ffcli.Command{windowCmd, termCmd, modesCmd},
		Exec:        execWindow,
	}
}

// observers returns the optional activation hooks selected by opts.
func observers(opts config.Options) []screensaver.Observer {
	if !opts.Sound {
		return nil
	}
	chime := sound.NewChime()
	if !chime.Enabled() {
		return nil
	}
	return []screensaver.Observer{chime}
}

type windowConfig struct {
	fullscreen    bool
	width, height int
}

func runWindow(opts config.Options, wc windowConfig) error {
	l := loop.New(time.Now())
	g := game.NewGame(l, wc.width, wc.height)

	c, err := screensaver.New(g, l, opts, observers(opts)...)
	if err != nil {
		showError(err)
		return err
	}
	defer c.Close()
	g.Attach(c)

	ebiten.SetWindowSize(wc.width, wc.height)
	ebiten.SetWindowTitle("Screensaver - Esc: start/stop, Ctrl+Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(wc.fullscreen)
	ebiten.SetTPS(config.IdleTPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		showError(err)
		return err
	}
	return nil
}

// showError reports a fatal error in a dialog.
func showError(err error) {
	if dlgErr := zenity.Error(err.Error(), zenity.Title("Screensaver"), zenity.ErrorIcon); dlgErr != nil {
		log.Printf("[Screensaver] error dialog failed: %v", dlgErr)
	}
}

func runTerminal(ctx context.Context, opts config.Options) error {
	screen, err := terminal.Open()
	if err != nil {
		return err
	}

	// Log lines would tear the screen; hold them until it is released.
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer func() {
		screen.Fini()
		log.SetOutput(os.Stderr)
		os.Stderr.Write(logs.Bytes())
	}()

	h := terminal.NewHost(screen)
	l := loop.New(time.Now())
	c, err := screensaver.New(h, l, opts, observers(opts)...)
	if err != nil {
		return err
	}
	defer c.Close()

	return h.Run(ctx, l, c)
}
