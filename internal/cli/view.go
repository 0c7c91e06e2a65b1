package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
	"github.com/matzehuels/asciidag/pkg/pipeline"
)

// Viewer styles
var (
	viewHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	viewFooterStyle   = lipgloss.NewStyle().Foreground(colorDim)
	viewSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	viewNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	viewDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// viewChrome is the number of terminal rows used by the header and footer.
const viewChrome = 4

// viewModes is the order the m key cycles through.
var viewModes = []dag.RenderMode{dag.ModeAuto, dag.ModeVertical, dag.ModeHorizontal}

// viewCommand creates the view command.
func (c *CLI) viewCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a rendered graph in the terminal",
		Long: `View renders a graph and opens it in a scrollable full-screen viewer.

Keys: arrows/hjkl scroll, m cycles the render mode, n toggles the node
table, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) {
				return errors.New(errors.ErrCodeUnsupported, "view needs an interactive terminal")
			}
			g, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				m, err := dag.ParseRenderMode(mode)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInvalidMode, err, "invalid mode")
				}
				g.SetRenderMode(m)
			}

			p := tea.NewProgram(newViewModel(g, args[0]), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "initial render mode: auto, vertical, horizontal")
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)
	return cmd
}

// =============================================================================
// viewModel - Scrollable diagram viewer
// =============================================================================

// viewModel is the bubbletea model for the graph viewer.
type viewModel struct {
	g    *dag.DAG
	name string
	mode dag.RenderMode

	lines []string
	top   int // first visible diagram line
	left  int // first visible diagram column

	width  int
	height int

	showNodes bool
	cursor    int // selected row in the node table
}

func newViewModel(g *dag.DAG, name string) viewModel {
	m := viewModel{g: g, name: name, mode: g.Mode(), width: 80, height: 24}
	m.render()
	return m
}

// render redraws the diagram for the current mode and clamps the scroll
// position to the new size.
func (m *viewModel) render() {
	text := strings.TrimRight(pipeline.RenderText(m.g, m.mode), "\n")
	m.lines = strings.Split(text, "\n")
	m.top = clamp(m.top, 0, m.maxTop())
	m.left = clamp(m.left, 0, m.maxLeft())
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.showNodes {
				m.cursor = clamp(m.cursor-1, 0, m.g.NodeCount()-1)
			} else {
				m.top = clamp(m.top-1, 0, m.maxTop())
			}
		case "down", "j":
			if m.showNodes {
				m.cursor = clamp(m.cursor+1, 0, m.g.NodeCount()-1)
			} else {
				m.top = clamp(m.top+1, 0, m.maxTop())
			}
		case "left", "h":
			m.left = clamp(m.left-4, 0, m.maxLeft())
		case "right", "l":
			m.left = clamp(m.left+4, 0, m.maxLeft())
		case "pgup":
			m.top = clamp(m.top-m.bodyHeight(), 0, m.maxTop())
		case "pgdown", " ":
			m.top = clamp(m.top+m.bodyHeight(), 0, m.maxTop())
		case "g", "home":
			m.top, m.left = 0, 0
		case "G", "end":
			m.top = m.maxTop()
		case "m":
			m.mode = nextMode(m.mode)
			m.render()
		case "n", "tab":
			m.showNodes = !m.showNodes
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.top = clamp(m.top, 0, m.maxTop())
		m.left = clamp(m.left, 0, m.maxLeft())
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s  %s", m.name, viewDimStyle.Render(fmt.Sprintf(
		"%d nodes  %d edges  mode %s", m.g.NodeCount(), m.g.EdgeCount(), m.mode)))
	b.WriteString(viewHeaderStyle.Render(header))
	b.WriteString("\n\n")

	if m.showNodes {
		b.WriteString(m.nodeTable())
	} else {
		end := min(m.top+m.bodyHeight(), len(m.lines))
		for _, line := range m.lines[m.top:end] {
			b.WriteString(sliceColumns(line, m.left, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(viewFooterStyle.Render(fmt.Sprintf(
		"↑/↓/←/→ scroll  m mode  n nodes  q quit  [%d/%d]", min(m.top+1, len(m.lines)), len(m.lines))))
	return b.String()
}

// nodeTable lists the nodes around the cursor with their neighbours.
func (m viewModel) nodeTable() string {
	nodes := m.g.Nodes()
	height := max(m.bodyHeight()-4, 1)
	start := clamp(m.cursor-height/2, 0, max(len(nodes)-height, 0))
	end := min(start+height, len(nodes))

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		n := nodes[i]
		label := n.Label
		if m.g.IsAutoCreated(n.ID) {
			label = "(placeholder)"
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(n.ID), 10),
			label,
			joinUints(m.g.ParentIDs(n.ID)),
			joinUints(m.g.ChildIDs(n.ID)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Label", "Parents", "Children").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if start+row == m.cursor {
				return viewSelectedStyle
			}
			return viewNormalStyle
		})
	return t.Render() + "\n"
}

func (m viewModel) bodyHeight() int {
	return max(m.height-viewChrome, 1)
}

func (m viewModel) maxTop() int {
	return max(len(m.lines)-m.bodyHeight(), 0)
}

func (m viewModel) maxLeft() int {
	widest := 0
	for _, line := range m.lines {
		widest = max(widest, len([]rune(line)))
	}
	return max(widest-m.width, 0)
}

// =============================================================================
// Helpers
// =============================================================================

func nextMode(mode dag.RenderMode) dag.RenderMode {
	for i, v := range viewModes {
		if v == mode {
			return viewModes[(i+1)%len(viewModes)]
		}
	}
	return dag.ModeAuto
}

// sliceColumns returns at most width runes of line starting at rune left.
func sliceColumns(line string, left, width int) string {
	r := []rune(line)
	if left >= len(r) {
		return ""
	}
	r = r[left:]
	if width > 0 && len(r) > width {
		r = r[:width]
	}
	return string(r)
}

func joinUints(ids []uint) string {
	if len(ids) == 0 {
		return "—"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ", ")
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
