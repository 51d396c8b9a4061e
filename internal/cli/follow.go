package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/ble"
)

var followScanTimeout time.Duration

var followCmd = &cobra.Command{
	Use:   "follow",
	Short: "Mirror a GoCube smart cube in the interactive view",
	Long: `Scan for a GoCube over Bluetooth, connect to the first one found and
mirror its face turns onto the model. The play view shortcuts stay
available; scrambling pauses mirroring until the scramble ends.

Make sure the cube is awake (rotate a face) and not connected to a phone.`,
	Args: cobra.NoArgs,
	RunE: runFollow,
}

func init() {
	rootCmd.AddCommand(followCmd)
	followCmd.Flags().DurationVar(&followScanTimeout, "scan-timeout", 5*time.Second, "How long to scan for cubes")
}

func runFollow(cmd *cobra.Command, args []string) error {
	client, err := ble.NewClient(logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Scanning for GoCube devices...")
	results, err := client.Scan(cmd.Context(), followScanTimeout)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no GoCube found within %s", followScanTimeout)
	}
	target := results[0]
	logger.Info("cube found", zap.String("name", target.Name), zap.Int16("rssi", target.RSSI))

	db, repo, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	seq := cubelet.NewSequencer(
		cubelet.WithScrambleLength(cfg.Scramble.Length),
		cubelet.WithLogger(logger),
	)
	model := newPlayModel(seq, repo, cfg.Scramble.FrameInterval, "follow")
	model.client = client
	model.target = &target

	p := tea.NewProgram(model, tea.WithAltScreen())
	client.OnMoves(func(moves []cubelet.Move) {
		p.Send(bleMovesMsg{moves: moves})
	})
	defer client.Disconnect()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
