package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/server"
)

var CLI struct {
	Addr   string `short:"a" default:":7777" help:"Address to bind the server to"`
	Config string `short:"c" help:"Path to a YAML rules file (defaults apply when omitted)"`
	Seed   int64  `short:"s" help:"Shoe seed for reproducible sessions (0 uses the clock)"`
	Debug  bool   `short:"d" help:"Dump every table event to stdout"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logger := log.Default()
	if CLI.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	rules := config.Default()
	if CLI.Config != "" {
		loaded, err := config.Load(CLI.Config)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			ctx.Exit(1)
		}
		rules = loaded
	}

	s := server.NewServer(server.Options{
		Rules:  rules,
		Seed:   CLI.Seed,
		Debug:  CLI.Debug,
		Logger: logger,
	})

	if err := s.Start(CLI.Addr); err != nil {
		logger.Fatal("server failed", "err", err)
	}
}
