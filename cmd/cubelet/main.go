// cubelet - a 3x3x3 twisty puzzle simulator for the terminal.
package main

import (
	"github.com/SeamusWaldron/cubelet/internal/cli"
)

func main() {
	cli.Execute()
}
