package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/dimension"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/engine"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/mastery"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/spacedrep"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a learner's scheduling statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")
		if learnerID == "" {
			return fmt.Errorf("--learner is required")
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

		snap, err := s.SnapshotRepo().Latest(cmd.Context(), learnerID)
		if err != nil {
			return err
		}
		if snap == nil {
			fmt.Println("No snapshot found for learner", learnerID)
			return nil
		}

		ls, warnings, err := engine.Import(snap.Data)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			fmt.Println("warning:", w)
		}

		fmt.Printf("Learner %s (band %s), snapshot at %s\n\n",
			learnerID, ls.Band, snap.Timestamp.Format("2006-01-02 15:04"))

		fmt.Println("Ability estimates:")
		for _, d := range dimension.All() {
			est := ls.Abilities[d]
			flag := ""
			if est.Flagged {
				flag = " (low confidence)"
			}
			fmt.Printf("  %-12s θ=%+.2f ±%.2f%s\n", d, est.Theta, est.StdErr, flag)
		}

		states := map[spacedrep.State]int{}
		for _, rec := range ls.Memory {
			states[rec.State]++
		}
		fmt.Println("\nMemory states:")
		for _, st := range []spacedrep.State{spacedrep.StateNew, spacedrep.StateLearning, spacedrep.StateReview, spacedrep.StateRelearning} {
			if states[st] > 0 {
				fmt.Printf("  %-12s %d\n", st, states[st])
			}
		}

		stages := map[mastery.Stage]int{}
		for _, rec := range ls.Mastery {
			stages[rec.Stage]++
		}
		fmt.Println("\nMastery stages:")
		for st := mastery.StageUnknown; st <= mastery.StageAutomatic; st++ {
			if stages[st] > 0 {
				fmt.Printf("  stage %d      %d\n", int(st), stages[st])
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("learner", "", "Learner ID to report on")
}
