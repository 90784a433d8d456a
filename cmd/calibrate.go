package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/ability"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/calibrate"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/irt"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/store"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Recalibrate item parameters from the review log",
	Long: "Runs batch EM calibration over every logged review, re-estimating\n" +
		"each item's discrimination, difficulty, and optional guessing floor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		repo := s.EventRepo()
		obs, err := repo.ReviewObservations(ctx)
		if err != nil {
			return err
		}
		if len(obs) == 0 {
			fmt.Println("No reviews logged yet; nothing to calibrate.")
			return nil
		}

		learners, items, responses := indexObservations(obs)

		estimator := ability.NewEstimator(cfg.Ability, nil)
		calibrator := calibrate.New(cfg.Calibration, estimator)

		result, err := calibrator.Run(ctx, len(learners), seedItems(items), responses)
		if err != nil {
			return err
		}

		fmt.Printf("Calibrated %d items from %d responses by %d learners (%d iterations, converged=%v)\n",
			len(result.Items), len(responses), len(learners), result.Iterations, result.Converged)
		for i, item := range result.Items {
			fmt.Printf("  %-20s a=%.3f b=%+.3f c=%.3f\n",
				items[i], item.Discrimination, item.Difficulty, item.Guessing)
		}

		return repo.AppendCalibration(ctx, store.CalibrationEventData{
			LearnerCount:   len(learners),
			ItemCount:      len(items),
			ResponseCount:  len(responses),
			Iterations:     result.Iterations,
			Converged:      result.Converged,
			ThreeParameter: cfg.Calibration.ThreeParameter,
		})
	},
}

// seedItems builds neutral starting parameters for every item: unit
// discrimination at median difficulty, no guessing floor.
func seedItems(ids []string) []irt.ItemParameter {
	items := make([]irt.ItemParameter, len(ids))
	for i, id := range ids {
		items[i] = irt.ItemParameter{ID: id, Discrimination: 1, Difficulty: 0}
	}
	return items
}

// indexObservations maps learner and item IDs to dense indices and
// projects the log into the calibration response format. IDs are sorted
// so two runs over the same log produce identical indexing.
func indexObservations(obs []store.ReviewObservation) (learners, items []string, responses []calibrate.Response) {
	learnerIdx := make(map[string]int)
	itemIdx := make(map[string]int)
	for _, o := range obs {
		if _, ok := learnerIdx[o.LearnerID]; !ok {
			learnerIdx[o.LearnerID] = 0
			learners = append(learners, o.LearnerID)
		}
		if _, ok := itemIdx[o.ItemID]; !ok {
			itemIdx[o.ItemID] = 0
			items = append(items, o.ItemID)
		}
	}
	sort.Strings(learners)
	sort.Strings(items)
	for i, id := range learners {
		learnerIdx[id] = i
	}
	for i, id := range items {
		itemIdx[id] = i
	}

	responses = make([]calibrate.Response, 0, len(obs))
	for _, o := range obs {
		responses = append(responses, calibrate.Response{
			Learner: learnerIdx[o.LearnerID],
			Item:    itemIdx[o.ItemID],
			Correct: o.Correct,
		})
	}
	return learners, items, responses
}
