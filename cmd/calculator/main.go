package main

import (
	"log/slog"
	"os"

	"precisecalc/internal/app"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		if err := app.Usage(); err != nil {
			slog.Error("usage failed", "error", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := app.LoadCfg()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	a := app.New(cfg)
	if err := a.Run(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
