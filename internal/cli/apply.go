package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/notation"
	"github.com/SeamusWaldron/cubelet/internal/render"
)

var applyDescribe bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves>...",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a move sequence to a solved cube and print the result.

Moves may be written in face notation (R U R' U2) or axis notation
(X+ Y-'), mixed freely. Arguments are joined, so quoting is optional.

Examples:
  cubelet apply "R U R' U'"
  cubelet apply X+ Y+ X+\' Y+\'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVarP(&applyDescribe, "describe", "d", false, "Describe each move in words")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := notation.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}

	state, err := cubelet.ApplyMoves(cubelet.InitialState(), moves)
	if err != nil {
		return err
	}
	logger.Debug("applied sequence", zapMoves(moves)...)

	out := cmd.OutOrStdout()
	if applyDescribe {
		for i, m := range moves {
			fmt.Fprintf(out, "%2d  %-4s %-3s %s\n", i+1, m, notation.Format([]cubelet.Move{m}), notation.Describe(m))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprint(out, render.Net(state, plain))
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Summary(state))
	return nil
}
