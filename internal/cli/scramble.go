package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/notation"
	"github.com/SeamusWaldron/cubelet/internal/recorder"
	"github.com/SeamusWaldron/cubelet/internal/render"
	"github.com/SeamusWaldron/cubelet/internal/storage"
)

var (
	scrambleLength    int
	scrambleSeed      uint64
	scrambleAnimate   bool
	scrambleNoHistory bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Scramble a solved cube and print the result",
	Long: `Run one scramble to completion without the interactive view.

Moves are issued one per tick, exactly as in the play view. With --animate
each tick waits for the configured frame interval and the move is printed
as it happens. Ctrl+C stops the scramble where it is; the partial run is
logged as cancelled.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVar(&scrambleAnimate, "animate", false, "Wait one frame interval between moves")
	scrambleCmd.Flags().BoolVar(&scrambleNoHistory, "no-history", false, "Do not log the scramble")
}

func runScramble(cmd *cobra.Command, args []string) error {
	length := cfg.Scramble.Length
	if scrambleLength > 0 {
		length = scrambleLength
	}

	opts := []cubelet.Option{
		cubelet.WithScrambleLength(length),
		cubelet.WithLogger(logger),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, cubelet.WithSeed(scrambleSeed))
	}
	seq := cubelet.NewSequencer(opts...)

	var repo *storage.ScrambleRepository
	if !scrambleNoHistory {
		db, r, err := openHistory()
		if err != nil {
			return err
		}
		defer db.Close()
		repo = r
	}
	rec := recorder.New(seq, repo, "scramble", logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	if scrambleAnimate {
		n := 0
		seq.OnMove(func(m cubelet.Move) {
			n++
			fmt.Fprintf(out, "%2d  %-4s %s\n", n, m, notation.Describe(m))
		})
	}

	rec.Scramble()
	if err := drive(ctx, seq, scrambleAnimate); err != nil {
		seq.Cancel()
		fmt.Fprintln(out, "Scramble interrupted.")
	}

	moves := seq.LastScramble()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Scramble: %s\n", notation.Format(moves))
	fmt.Fprintf(out, "Axis:     %s\n", cubelet.FormatMoves(moves))
	fmt.Fprintln(out)
	fmt.Fprint(out, render.Net(seq.State(), plain))
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Summary(seq.State()))

	if err := rec.Err(); err != nil {
		return err
	}
	if id := rec.LastID(); id != "" {
		fmt.Fprintf(out, "Logged as %s\n", id)
	}
	return nil
}

// drive ticks seq until its scramble finishes or ctx is done.
func drive(ctx context.Context, seq *cubelet.Sequencer, animate bool) error {
	if !animate {
		for seq.IsScrambling() {
			if err := ctx.Err(); err != nil {
				return err
			}
			seq.Tick()
		}
		return nil
	}

	ticker := time.NewTicker(cfg.Scramble.FrameInterval)
	defer ticker.Stop()
	for seq.IsScrambling() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			seq.Tick()
		}
	}
	return nil
}
