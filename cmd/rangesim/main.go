// Command rangesim plays a scripted shooting-range session headlessly and
// prints per-target health and weapon stats. Several seeds can run at once.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"tpshooter/internal/config"
	"tpshooter/internal/session"

	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "assets/config/game.yaml", "game config")
	scenePath := flag.String("scene", "assets/scenes/range.json", "scene file")
	runs := flag.Int("runs", 1, "number of sessions to run concurrently")
	seed := flag.Uint64("seed", 1, "seed of the first session; later sessions add their index")
	savePath := flag.String("save", "", "write the first session's final scene here")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]*session.Result, *runs)
	g, ctx := errgroup.WithContext(ctx)
	for i := range results {
		g.Go(func() error {
			res, err := session.Run(ctx, session.Options{
				Config: cfg,
				Scene:  *scenePath,
				Seed:   *seed + uint64(i),
				Logger: logger,
			})
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("range session failed", "error", err)
		os.Exit(1)
	}

	report(os.Stdout, results)

	if *savePath != "" {
		if err := results[0].World.SaveScene(*savePath); err != nil {
			logger.Error("save scene", "error", err)
			os.Exit(1)
		}
		logger.Info("scene saved", "path", *savePath)
	}
}

func report(out io.Writer, results []*session.Result) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "SEED\tSHOTS\tHITS\tKILLS\tACCURACY\tRELOADS\tDRY\tCLIP\tRESERVE")
	for _, r := range results {
		s := r.Stats
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.0f%%\t%d\t%d\t%d\t%d\n",
			r.Seed, s.Shots, s.Hits, s.Kills, s.Accuracy()*100, s.Reloads, s.Dry, r.Clip, r.Reserve)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "SEED\tTARGET\tHEALTH\tSTATE")
	for _, r := range results {
		for _, t := range r.Targets {
			state := "untouched"
			switch {
			case t.Dead:
				state = "dead"
			case t.Damaged:
				state = "damaged"
			}
			fmt.Fprintf(tw, "%d\t%s\t%d/%d\t%s\n", r.Seed, t.Name, t.Health, t.Max, state)
		}
	}
}
