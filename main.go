package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/nstehr/indigo/agent"
	"github.com/nstehr/indigo/config"
	"github.com/nstehr/indigo/history"
	"github.com/nstehr/indigo/ipc"
	"github.com/nstehr/indigo/logging"
	"github.com/nstehr/indigo/navigation"
	"github.com/nstehr/indigo/rules"
	"github.com/nstehr/indigo/strategy"
	"github.com/spf13/pflag"
)

const banner = `
██╗███╗   ██╗██████╗ ██╗ ██████╗  ██████╗
██║████╗  ██║██╔══██╗██║██╔════╝ ██╔═══██╗
██║██╔██╗ ██║██║  ██║██║██║  ███╗██║   ██║
██║██║╚██╗██║██║  ██║██║██║   ██║██║   ██║
██║██║ ╚████║██████╔╝██║╚██████╔╝╚██████╔╝
╚═╝╚═╝  ╚═══╝╚═════╝ ╚═╝ ╚═════╝  ╚═════╝

Funnel-Strategy Turn Planner`

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		slog.Error("indigo failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags()
	if err := fs.Parse(args); err != nil {
		return err
	}
	configDir, err := fs.GetString("config-dir")
	if err != nil {
		return err
	}
	if err := config.Load(configDir); err != nil {
		return err
	}
	if err := config.BindFlags(fs); err != nil {
		return err
	}

	closeLog, err := logging.Setup(config.GetString("logLevel"), config.GetString("logFile"))
	if err != nil {
		return err
	}
	defer closeLog()

	// stdout belongs to the engine
	fmt.Fprintln(os.Stderr, banner)

	seed := config.GetUint64("seed")
	if seed == 0 {
		if seed, err = strategy.NewSeed(); err != nil {
			return err
		}
	}
	settings := config.Strategy()
	slog.Info("starting indigo",
		"seed", seed,
		"decisionTurn", settings.DecisionTurn,
		"spawnThreshold", settings.SpawnThreshold,
		"rowPatterns", settings.RowPatterns,
	)

	var rec history.Recorder = history.Nop{}
	if config.GetBool("history.enabled") {
		store, err := history.Open(config.GetString("history.path"))
		if err != nil {
			slog.Warn("match history disabled", "error", err)
		} else {
			rec = store
		}
	}
	defer func() {
		if err := rec.Close(); err != nil {
			slog.Warn("closing history", "error", err)
		}
	}()

	engine, err := rules.NewEngine(rules.CompileStrategy(settings))
	if err != nil {
		return err
	}
	slog.Debug("rules compiled", "order", engine.Rules())

	st := strategy.New(settings, navigation.Pathfinder{})
	conn := ipc.NewConnection(os.Stdin, os.Stdout)
	a := agent.New(conn, engine, st, st.NewSession(seed), rec)
	a.Register()
	conn.ReadLoop()

	slog.Info("shutting down")
	return nil
}
