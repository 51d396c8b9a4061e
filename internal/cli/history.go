package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/notation"
	"github.com/SeamusWaldron/cubelet/internal/render"
	"github.com/SeamusWaldron/cubelet/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged scrambles",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one logged scramble and the state it produced",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged scramble",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of scrambles to list (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, repo, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	total, err := repo.Count()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No scrambles logged yet.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tSOURCE\tOUTCOME\tMOVES\tSCRAMBLE")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%s\n",
			r.ScrambleID[:8],
			r.StartedAt.Local().Format(time.DateTime),
			r.Source,
			r.Outcome,
			r.Issued(), r.Planned,
			notation.Format(r.Moves))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nShowing %d of %d scrambles.\n", len(runs), total)
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, repo, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := findRun(repo, args[0])
	if err != nil {
		return err
	}

	state, err := cubelet.ApplyMoves(cubelet.InitialState(), run.Moves)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble %s\n", run.ScrambleID)
	fmt.Fprintf(out, "Started:  %s\n", run.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "Duration: %s\n", run.Duration().Round(time.Millisecond))
	fmt.Fprintf(out, "Outcome:  %s (%d of %d moves)\n", run.Outcome, run.Issued(), run.Planned)
	fmt.Fprintf(out, "Moves:    %s\n", notation.Format(run.Moves))
	fmt.Fprintf(out, "Axis:     %s\n\n", run.Sequence())
	fmt.Fprint(out, render.Net(state, plain))
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Summary(state))
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, repo, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := findRun(repo, args[0])
	if err != nil {
		return err
	}
	if err := repo.Delete(run.ScrambleID); err != nil {
		return err
	}
	logger.Info("scramble deleted", zap.String("id", run.ScrambleID))
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", run.ScrambleID)
	return nil
}

// findRun resolves a full ID or the 8-character prefix shown by history.
func findRun(repo *storage.ScrambleRepository, id string) (*storage.ScrambleRun, error) {
	run, err := repo.Get(id)
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	runs, err := repo.List(0)
	if err != nil {
		return nil, err
	}
	var match *storage.ScrambleRun
	for i := range runs {
		if len(id) >= 4 && len(runs[i].ScrambleID) >= len(id) && runs[i].ScrambleID[:len(id)] == id {
			if match != nil {
				return nil, fmt.Errorf("scramble id %q is ambiguous", id)
			}
			match = &runs[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("scramble %q: %w", id, storage.ErrNotFound)
	}
	return match, nil
}
