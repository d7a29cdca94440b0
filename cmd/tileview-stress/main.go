package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tileview/world"
)

func main() {
	cfg := world.DefaultConfig()

	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	interval := flag.Duration("interval", 0, "Time between frames; 0 runs frames back to back.")
	seed := flag.Uint64("seed", 0, "Seed for grid generation and the input walk; 0 picks a random one.")
	width := flag.Uint("width", uint(cfg.MapSize.X), "Grid width in tiles.")
	height := flag.Uint("height", uint(cfg.MapSize.Y), "Grid height in tiles.")
	flag.Parse()

	cfg.MapSize.X = uint32(*width)
	cfg.MapSize.Y = uint32(*height)

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(*seed, *seed))

	log.Println("Starting tile view stress test...")

	report := &Report{
		Duration: *duration,
		Interval: *interval,
		Width:    cfg.MapSize.X,
		Height:   cfg.MapSize.Y,
		Seed:     *seed,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	genStart := time.Now()
	w, err := world.New(cfg, rng)
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}
	report.GenerationTime = time.Since(genStart)
	log.Printf("Generated %dx%d grid in %s\n", cfg.MapSize.X, cfg.MapSize.Y, report.GenerationTime)

	scheduler := world.NewScheduler(w)
	scheduler.SetGizmos(world.NewGizmos())
	world.RegisterDefaultSystems(scheduler, cfg)
	input := newRandomWalk(rng, 120)

	log.Printf("Running frames for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	if *interval > 0 {
		if err := scheduler.Run(ctx, *interval, input); err != nil {
			log.Fatalf("Frame failed: %v", err)
		}
	} else {
		runUncapped(ctx, scheduler, input)
	}

	report.TotalTime = time.Since(startTime)
	stats := scheduler.GetStats()
	report.TotalFrames = stats.FrameCount
	report.Systems = stats.Systems
	report.UpdateTime = stats.Frame
	runtime.ReadMemStats(&report.MemStatsEnd)

	if p, err := w.Player(); err == nil {
		report.FinalPlayer = fmt.Sprintf("(%.1f, %.1f) frame %d", p.Translation.X, p.Translation.Y, p.AnimationIndex)
	}
	if c, err := w.Camera(); err == nil {
		report.FinalCamera = fmt.Sprintf("(%.1f, %.1f)", c.Translation.X, c.Translation.Y)
	}

	log.Println("Stress run finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func runUncapped(ctx context.Context, scheduler *world.Scheduler, input world.InputSource) {
	timer := world.NewFrameTimer()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			if err := scheduler.Once(timer.DeltaTime(), input.Pressed()); err != nil {
				log.Fatalf("Frame failed: %v", err)
			}
		}
	}
}
