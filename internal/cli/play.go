package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/ble"
	"github.com/SeamusWaldron/cubelet/internal/notation"
	"github.com/SeamusWaldron/cubelet/internal/recorder"
	"github.com/SeamusWaldron/cubelet/internal/render"
	"github.com/SeamusWaldron/cubelet/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube view",
	Long: `Open an interactive view of the cube.

Scrambles animate one move per frame. Keyboard shortcuts:
  s         - Scramble
  r / 0     - Reset to solved (stops a running scramble)
  c         - Stop a running scramble where it is
  R L U D F B - Turn a face clockwise (shift + letter)
  '         - Make the next face turn counter-clockwise
  q / Esc   - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	scrambleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type tickMsg time.Time
type bleConnectedMsg struct{ name string }
type bleMovesMsg struct{ moves []cubelet.Move }
type bleErrorMsg struct{ err error }

const recentMoves = 16

// playModel drives a Sequencer from frame ticks and keyboard input.
type playModel struct {
	seq      *cubelet.Sequencer
	rec      *recorder.Recorder
	interval time.Duration
	plain    bool

	// BLE, follow mode only
	client     *ble.Client
	target     *ble.ScanResult
	deviceName string
	connected  bool

	prime    bool
	recent   []cubelet.Move
	lastSave *storage.ScrambleRun
	err      error
	quitting bool
}

func newPlayModel(seq *cubelet.Sequencer, repo *storage.ScrambleRepository, interval time.Duration, source string) *playModel {
	m := &playModel{
		seq:      seq,
		interval: interval,
		plain:    plain,
	}
	m.rec = recorder.New(seq, repo, source, logger)
	m.rec.OnSaved(func(r *storage.ScrambleRun) { m.lastSave = r })
	seq.OnMove(m.pushMove)
	return m
}

func (m *playModel) pushMove(mv cubelet.Move) {
	m.recent = append(m.recent, mv)
	if len(m.recent) > recentMoves {
		m.recent = m.recent[len(m.recent)-recentMoves:]
	}
}

func (m *playModel) Init() tea.Cmd {
	if m.client != nil && m.target != nil {
		return tea.Batch(m.tickCmd(), m.connectBLE())
	}
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) connectBLE() tea.Cmd {
	client, target := m.client, *m.target
	return func() tea.Msg {
		if err := client.Connect(target); err != nil {
			return bleErrorMsg{err: fmt.Errorf("connection failed: %w", err)}
		}
		return bleConnectedMsg{name: client.DeviceName()}
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case tickMsg:
		// One scramble move per frame.
		m.seq.Tick()
		return m, m.tickCmd()

	case bleConnectedMsg:
		m.connected = true
		m.deviceName = msg.name
		m.err = nil

	case bleErrorMsg:
		m.err = msg.err

	case bleMovesMsg:
		for _, mv := range msg.moves {
			if err := m.seq.Apply(mv); err != nil {
				m.err = err
				break
			}
		}
	}
	return m, nil
}

func (m *playModel) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.seq.Cancel()
		if m.client != nil {
			m.client.Disconnect()
		}
		return tea.Quit

	case "s":
		m.err = nil
		m.rec.Scramble()

	case "r", "0":
		m.err = nil
		m.prime = false
		m.seq.Reset()
		m.recent = nil

	case "c":
		m.seq.Cancel()

	case "'":
		m.prime = !m.prime

	case "R", "L", "U", "D", "F", "B":
		fm := notation.FaceMove{Face: notation.Face(key), Turn: notation.TurnCW}
		if m.prime {
			fm.Turn = notation.TurnCCW
			m.prime = false
		}
		m.err = m.applyFace(fm)
	}
	return nil
}

func (m *playModel) applyFace(fm notation.FaceMove) error {
	moves, err := fm.Moves()
	if err != nil {
		return err
	}
	for _, mv := range moves {
		if err := m.seq.Apply(mv); err != nil {
			if errors.Is(err, cubelet.ErrScrambling) {
				return errors.New("scramble in progress - press c to stop or r to reset")
			}
			return err
		}
	}
	return nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	state := m.seq.State()

	b.WriteString(titleStyle.Render("cubelet"))
	b.WriteString("\n")

	if m.client != nil {
		status := "Connecting..."
		if m.connected {
			status = fmt.Sprintf("Following %s", m.deviceName)
			if bat := m.client.Battery(); bat >= 0 {
				status += fmt.Sprintf(" | Battery: %d%%", bat)
			}
		}
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.seq.IsScrambling():
		done := m.seq.ScrambleLength() - m.seq.MovesRemaining()
		b.WriteString(scrambleStyle.Render(fmt.Sprintf("SCRAMBLING %d/%d", done, m.seq.ScrambleLength())))
	case state.IsSolved():
		b.WriteString(solvedStyle.Render("SOLVED"))
	default:
		b.WriteString(statusStyle.Render(render.Summary(state)))
	}
	b.WriteString("\n\n")

	b.WriteString(render.Net(state, m.plain))
	b.WriteString("\n")

	if len(m.recent) > 0 {
		b.WriteString("Moves: ")
		b.WriteString(moveStyle.Render(notation.Format(m.recent)))
		b.WriteString("\n")
	}
	if m.prime {
		b.WriteString(statusStyle.Render("next turn: counter-clockwise"))
		b.WriteString("\n")
	}
	if m.lastSave != nil {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Last scramble %s after %d moves", m.lastSave.Outcome, m.lastSave.Issued())))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	if err := m.rec.Err(); err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("History: %v", err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s: scramble | r/0: reset | c: stop | R L U D F B: turn | ': prime | q: quit"))
	b.WriteString("\n")
	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	db, repo, err := openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	seq := cubelet.NewSequencer(
		cubelet.WithScrambleLength(cfg.Scramble.Length),
		cubelet.WithLogger(logger),
	)
	model := newPlayModel(seq, repo, cfg.Scramble.FrameInterval, "play")

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
