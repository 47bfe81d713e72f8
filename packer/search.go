package packer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"autoPallet/models"
)

type Options struct {
	// Concurrency bounds how many pallet orientations are packed at once.
	Concurrency int
	// MaxCandidates truncates the ranked layer heights per orientation, 0 means all.
	MaxCandidates int
	Logger        *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

type orientationRun struct {
	pallet     models.Pallet
	candidates []models.LayerCandidate
	results    []models.PackingResult
}

// Search packs every pallet orientation and returns the best utilization
// found. Orientations run in parallel but the winner only depends on
// utilization and enumeration order.
func Search(ctx context.Context, pallet models.Pallet, boxes []models.BoxType, opts Options) (models.Solution, error) {
	if err := pallet.Validate(); err != nil {
		return models.Solution{}, err
	}
	if err := models.ValidateCatalog(boxes); err != nil {
		return models.Solution{}, err
	}

	log := opts.logger()
	sol := models.Solution{RunID: uuid.NewString(), Pallet: pallet}
	orients := PalletOrientations(pallet)
	runs := make([]orientationRun, len(orients))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, p := range orients {
		i, p := i, p
		g.Go(func() error {
			cands := PlanLayerHeights(boxes, p.Height)
			if opts.MaxCandidates > 0 && len(cands) > opts.MaxCandidates {
				cands = cands[:opts.MaxCandidates]
			}
			results, err := packAttempts(gctx, boxes, p, cands)
			if err != nil {
				return err
			}
			for j, r := range results {
				log.Debug("packed attempt",
					"run_id", sol.RunID,
					"pallet", p,
					"layer_height", cands[j].Height,
					"placed", len(r.Placements),
					"utilization", r.Utilization)
			}
			runs[i] = orientationRun{pallet: p, candidates: cands, results: results}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Solution{}, err
	}

	sol.Oriented = pallet
	sol.Result = emptyResult(boxes)
	for _, run := range runs {
		for j, r := range run.results {
			sol.Candidates = append(sol.Candidates, models.CandidateReport{
				Orientation: models.Orientation(run.pallet),
				LayerHeight: run.candidates[j].Height,
				Score:       run.candidates[j].Score,
				Layers:      len(r.Layers),
				Placed:      len(r.Placements),
				Utilization: r.Utilization,
			})
		}
		if i := pickBest(run.results); i >= 0 && run.results[i].Utilization > sol.Result.Utilization {
			sol.Result = run.results[i]
			sol.Oriented = run.pallet
		}
	}

	log.Info("search finished",
		"run_id", sol.RunID,
		"orientations", len(orients),
		"attempts", len(sol.Candidates),
		"placed", len(sol.Result.Placements),
		"utilization", sol.Result.Utilization)
	return sol, nil
}
