package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/janpfeifer/GoKlondike/internal/config"
	"github.com/janpfeifer/GoKlondike/internal/console"
	"github.com/janpfeifer/GoKlondike/internal/game"
	"github.com/pterm/pterm"
	"k8s.io/klog/v2"
)

var (
	flagConfig = flag.String("config", "", "Optional config file (yaml, toml or json)")
	flagSeed   = flag.Int64("seed", 0, "Shuffle seed; overrides the config. 0 picks a random one")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "klondike: %v\n", err)
		os.Exit(1)
	}
	if *flagSeed != 0 {
		cfg.Seed = *flagSeed
	}
	if !cfg.Colour {
		pterm.DisableColor()
	}

	if err := setupLogging(flag.CommandLine, cfg.Verbosity); err != nil {
		fmt.Fprintf(os.Stderr, "klondike: %v\n", err)
		os.Exit(1)
	}
	klog.SetOutput(os.Stderr)
	defer klog.Flush()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	klog.V(1).Infof("Klondike %s, seed %d", game.Version, seed)
	g := game.New(rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = console.NewSession(g, os.Stdin, os.Stdout, cfg).Run(ctx)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stdout)
		return
	}
	if err != nil {
		klog.Errorf("Session ended: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}
