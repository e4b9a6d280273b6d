/*
Vizue is a toolkit of scene-editor automation pipelines: it imports mesh
directories as assets, spawns assets into a level, plots geocoded datasets
as colored actors and prepares sample data for plotting.

The import, spawn and plot commands run against the in-memory preview host;
a live editor bridge supplies its own host.Host and drives the pipeline
packages directly.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbaudains/vizue/editor/config"
	"github.com/peterbaudains/vizue/editor/core"
	"github.com/peterbaudains/vizue/editor/dataprep"
	"github.com/peterbaudains/vizue/editor/host/memory"
	"github.com/peterbaudains/vizue/editor/importer"
	"github.com/peterbaudains/vizue/editor/plot"
	"github.com/peterbaudains/vizue/editor/spawner"
)

const usage = `usage: vizue <import|spawn|plot|prepare> <config.toml>`

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	command, configPath := os.Args[1], os.Args[2]

	cfg, err := config.Load(configPath)
	if err != nil {
		core.LogFatal(err.Error())
	}

	switch command {
	case "import":
		err = runImport(cfg)
	case "spawn":
		err = runSpawn(cfg)
	case "plot":
		err = runPlot(cfg)
	case "prepare":
		err = runPrepare(cfg)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		core.LogFatal(err.Error())
	}
}

func runImport(cfg *config.Config) error {
	im, err := importer.NewImporter(cfg.ImporterConfig(), memory.New())
	if err != nil {
		return err
	}
	if !cfg.Importer.Watch {
		return im.Run()
	}

	watcher, err := importer.NewWatcher(im)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		<-sigCh
		cancel()
	}()

	core.LogInfo("watching %s for mesh files", cfg.Importer.SourceDir)
	if err := watcher.Watch(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func runSpawn(cfg *config.Config) error {
	sp, err := spawner.NewSpawner(cfg.SpawnerConfig(), memory.New())
	if err != nil {
		return err
	}
	return sp.Run()
}

func runPlot(cfg *config.Config) error {
	h := memory.New()
	// The preview host starts empty; seed the parent material the coloring
	// step expects to find.
	base := cfg.Plot.BaseMaterialPath
	if base == "" {
		base = plot.DefaultBaseMaterialPath
	}
	h.RegisterAsset(base)

	p, err := plot.NewPlotter(cfg.PlotConfig(), h)
	if err != nil {
		return err
	}
	if err := p.Run(); err != nil {
		return err
	}
	core.LogInfo("preview host spawned %d actor(s)", len(h.Actors()))
	return nil
}

func runPrepare(cfg *config.Config) error {
	p, err := dataprep.NewPreparer(cfg.PrepareConfig(), nil, nil)
	if err != nil {
		return err
	}
	_, err = p.Run()
	return err
}
