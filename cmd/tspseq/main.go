// Command tspseq runs one end-to-end sequencing job: ingest nodes from CSV,
// build a naive and a greedy seed route, improve the better seed with
// Local Search, Simulated Annealing, and (only when a positive time budget
// is set) ALNS, print a summary, and write a JSON iteration trace and a
// bounds file into the output directory.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/ptbdnr/tspseq/alns"
	"github.com/ptbdnr/tspseq/anneal"
	"github.com/ptbdnr/tspseq/bounds"
	"github.com/ptbdnr/tspseq/callback"
	"github.com/ptbdnr/tspseq/construct"
	"github.com/ptbdnr/tspseq/distance"
	"github.com/ptbdnr/tspseq/internal/config"
	"github.com/ptbdnr/tspseq/internal/ingest"
	"github.com/ptbdnr/tspseq/internal/logging"
	"github.com/ptbdnr/tspseq/internal/report"
	"github.com/ptbdnr/tspseq/localsearch"
	"github.com/ptbdnr/tspseq/node"
	"github.com/ptbdnr/tspseq/route"
	"github.com/ptbdnr/tspseq/termination"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		color.Red("tspseq: %v", err)
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	f, err := os.Open(cfg.NodesFilepath)
	if err != nil {
		return fmt.Errorf("opening nodes file: %w", err)
	}
	defer f.Close()

	allNodes, err := ingest.Parse(f, logger)
	if err != nil {
		return fmt.Errorf("parsing nodes: %w", err)
	}
	if len(allNodes) < 3 {
		return fmt.Errorf("need at least one intermediate node between the two depots")
	}

	start, end, intermediates := splitDepots(allNodes)
	dist := distance.New(start.ID(), end.ID())
	ev := route.NewEvaluator(dist, allNodes)

	naive, err := construct.Naive(start, end, intermediates)
	if err != nil {
		return fmt.Errorf("building naive seed: %w", err)
	}
	greedy, err := construct.Greedy(dist, start, end, intermediates)
	if err != nil {
		return fmt.Errorf("building greedy seed: %w", err)
	}

	seeds := []route.Route{naive, greedy}
	seed := naive
	if ev.Objective(greedy) < ev.Objective(naive) {
		seed = greedy
	}

	journal := callback.NewJournal()
	gate := termination.NewGate(
		termination.WithMaxIterations(cfg.MaxIterations),
		termination.WithMaxDuration(cfg.MaxDuration()),
	)

	best, bestValue := localsearch.NewImprover(ev, cfg.Seed, journal).Optimise(seed, gate)

	saImprover := anneal.NewImprover(ev, anneal.Params{
		T0:    cfg.SAInitialTemp,
		Alpha: cfg.SACoolingRate,
		TMin:  cfg.SAMinTemp,
	}, cfg.Seed, journal)
	saGate := termination.NewGate(
		termination.WithMaxIterations(cfg.MaxIterations),
		termination.WithMaxDuration(cfg.MaxDuration()),
	)
	if saBest, saValue := saImprover.Optimise(best, saGate); saValue < bestValue {
		best, bestValue = saBest, saValue
	}

	if d := cfg.MaxDuration(); d > 0 {
		engine := alns.NewEngine(ev, dist, cfg.Seed, journal, alns.Params{
			DegreeOfDestruction: cfg.ALNSDegreeOfDestruction,
			LookbackWindow:      cfg.ALNSLookbackPeriod,
		})
		if alnsBest, alnsValue := engine.Optimise(best, d); alnsValue < bestValue {
			best, bestValue = alnsBest, alnsValue
		}
	}

	summary := report.FormatRoute(ev, best)
	if err := report.WriteSummary(os.Stdout, summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	color.Green("best objective: %.2f", summary.Objective)

	if err := writeOutputs(cfg, ev, dist, allNodes, seeds, journal); err != nil {
		return err
	}

	return nil
}

func writeOutputs(cfg config.Config, ev *route.Evaluator, dist *distance.Cache, allNodes []node.Node, seeds []route.Route, journal *callback.Journal) error {
	boundsPath := filepath.Join(cfg.OutputDir, "bounds.txt")
	boundsFile, err := os.Create(boundsPath)
	if err != nil {
		return fmt.Errorf("creating bounds file: %w", err)
	}
	defer boundsFile.Close()

	upper := bounds.Upper(ev, seeds)
	_, _, intermediates := splitDepots(allNodes)
	lower := bounds.Lower(dist, intermediates)
	if err := report.WriteBounds(boundsFile, upper, lower); err != nil {
		return fmt.Errorf("writing bounds file: %w", err)
	}

	iterPath := filepath.Join(cfg.OutputDir, "iterations.json")
	iterFile, err := os.Create(iterPath)
	if err != nil {
		return fmt.Errorf("creating iterations file: %w", err)
	}
	defer iterFile.Close()

	return report.WriteIterations(iterFile, journal)
}

// splitDepots partitions a full node set (sorted or not) into the start
// depot (id 0), the end depot (id n+1, the maximum id present), and the
// intermediate nodes.
func splitDepots(all []node.Node) (start, end node.Node, intermediates []node.Node) {
	maxID := all[0].ID()
	for _, n := range all {
		if n.ID() > maxID {
			maxID = n.ID()
		}
	}
	for _, n := range all {
		switch n.ID() {
		case 0:
			start = n
		case maxID:
			end = n
		default:
			intermediates = append(intermediates, n)
		}
	}

	return start, end, intermediates
}
