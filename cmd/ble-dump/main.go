// BLE frame dump - prints every GoCube notification with its decoded moves.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/ble"
	"github.com/SeamusWaldron/cubelet/internal/notation"
	"github.com/SeamusWaldron/cubelet/internal/protocol"
	"github.com/SeamusWaldron/cubelet/internal/render"
)

func main() {
	timeout := flag.Duration("scan", 10*time.Second, "scan timeout")
	debug := flag.Bool("debug", false, "log dropped frames")
	flag.Parse()

	logger := zap.NewNop()
	if *debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	fmt.Println("GoCube BLE Frame Dump")
	fmt.Println("=====================")
	fmt.Println()
	fmt.Println("Rotate a face to wake the cube. Press Ctrl+C to stop.")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := ble.NewClient(logger)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		fmt.Println("Try: System Settings > Privacy & Security > Bluetooth")
		os.Exit(1)
	}

	results, err := client.Scan(ctx, *timeout)
	if err != nil {
		fmt.Printf("ERROR: scan failed: %v\n", err)
		os.Exit(1)
	}
	if len(results) == 0 {
		fmt.Println("No GoCube found.")
		os.Exit(1)
	}
	for _, r := range results {
		fmt.Printf("Found %s (%s, RSSI %d)\n", r.Name, r.Address.String(), r.RSSI)
	}

	state := cubelet.InitialState()
	client.OnMessage(func(msg *protocol.Message) {
		fmt.Printf("[%s] %-11s %s\n",
			time.Now().Format("15:04:05.000"),
			protocol.MessageTypeName(msg.Type),
			hex.EncodeToString(msg.Payload))
	})
	client.OnMoves(func(moves []cubelet.Move) {
		for _, m := range moves {
			state = cubelet.MustApply(state, m)
			fmt.Printf("             move %-4s %-3s %s\n", m, notation.Format([]cubelet.Move{m}), notation.Describe(m))
		}
		fmt.Printf("             %s\n", render.Summary(state))
	})

	if err := client.Connect(results[0]); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
	defer client.Disconnect()
	fmt.Printf("Connected to %s\n\n", client.DeviceName())

	<-ctx.Done()
	fmt.Println()
	fmt.Println("Final state:")
	fmt.Print(render.Net(state, true))
}
