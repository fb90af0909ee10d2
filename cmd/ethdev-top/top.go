package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ethdev"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewState int

const (
	stateTable viewState = iota
	stateDetail
	stateSearch
)

type topModel struct {
	err      error
	interval time.Duration
	snaps    []portSnapshot
	xstats   []ethdev.XStat
	search   textinput.Model
	selected int
	state    viewState
}

func newTopModel(interval time.Duration) *topModel {
	ti := textinput.New()
	ti.Placeholder = "device name, e.g. net_ring0"
	ti.Prompt = "find port: "
	ti.Width = 40
	return &topModel{interval: interval, search: ti}
}

type tickMsg time.Time

type statsMsg struct {
	snaps []portSnapshot
}

type xstatsMsg struct {
	err    error
	xstats []ethdev.XStat
}

func (m *topModel) Init() tea.Cmd {
	return tea.Batch(refreshStats, m.tick())
}

func (m *topModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func refreshStats() tea.Msg {
	return statsMsg{snaps: snapshotPorts()}
}

func refreshXStats(id uint16) tea.Cmd {
	return func() tea.Msg {
		port, err := ethdev.NewPort(id)
		if err != nil {
			return xstatsMsg{err: err}
		}
		xstats, err := port.XStats()
		return xstatsMsg{err: err, xstats: xstats}
	}
}

func (m *topModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateSearch {
			return m.updateSearch(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.snaps)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateTable && len(m.snaps) > 0 {
				m.state = stateDetail
				return m, refreshXStats(m.snaps[m.selected].Port)
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateTable
				m.xstats = nil
			}
			m.err = nil

		case "r":
			if len(m.snaps) > 0 {
				if port, err := ethdev.NewPort(m.snaps[m.selected].Port); err == nil {
					if err := port.StatsReset(); err != nil {
						m.err = err
					}
				}
				return m, refreshStats
			}

		case "/":
			if m.state == stateTable {
				m.state = stateSearch
				m.search.SetValue("")
				m.search.Focus()
			}
		}

	case tickMsg:
		cmds := []tea.Cmd{refreshStats, m.tick()}
		if m.state == stateDetail && m.selected < len(m.snaps) {
			cmds = append(cmds, refreshXStats(m.snaps[m.selected].Port))
		}
		return m, tea.Batch(cmds...)

	case statsMsg:
		m.snaps = msg.snaps
		if len(m.snaps) == 0 {
			m.selected = 0
			if m.state == stateDetail {
				m.state = stateTable
				m.xstats = nil
			}
		} else if m.selected >= len(m.snaps) {
			m.selected = len(m.snaps) - 1
		}

	case xstatsMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateTable
			return m, nil
		}
		m.xstats = msg.xstats
	}

	return m, nil
}

func (m *topModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = stateTable
		m.search.Blur()
		return m, nil

	case "enter":
		name := m.search.Value()
		m.state = stateTable
		m.search.Blur()
		if name == "" {
			return m, nil
		}
		port, err := ethdev.PortByName(name)
		if err != nil {
			m.err = err
			return m, nil
		}
		for i, snap := range m.snaps {
			if snap.Port == port.ID() {
				m.selected = i
				m.err = nil
				break
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *topModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ethdev top"))
	fmt.Fprintf(&b, " %d port(s), refresh %s\n\n", len(m.snaps), m.interval)

	if m.state == stateDetail {
		m.viewDetail(&b)
	} else {
		m.viewTable(&b)
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	return b.String()
}

func (m *topModel) viewTable(b *strings.Builder) {
	if len(m.snaps) == 0 {
		b.WriteString("No ports attached.\n\n")
		b.WriteString(helpStyle.Render("q quit"))
		return
	}

	header := fmt.Sprintf("  %-5s %-16s %-9s %11s %11s %13s %13s %9s %7s %7s",
		"PORT", "NAME", "LINK", "RX-PKTS", "TX-PKTS", "RX-BYTES", "TX-BYTES", "RX-MISS", "RX-ERR", "TX-ERR")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for i, snap := range m.snaps {
		row := formatRow(snap)
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.state == stateSearch {
		b.WriteString(m.search.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter jump to port • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ select • enter xstats • r reset stats • / find by name • q quit"))
	}
}

func formatRow(snap portSnapshot) string {
	link := "down"
	if snap.LinkUp {
		link = fmt.Sprintf("up/%d", snap.SpeedMbps)
	}
	return fmt.Sprintf("%-5d %-16s %-9s %11d %11d %13d %13d %9d %7d %7d",
		snap.Port, snap.Name, link,
		snap.RxPackets, snap.TxPackets, snap.RxBytes, snap.TxBytes,
		snap.RxMissed, snap.RxErrors, snap.TxErrors)
}

func (m *topModel) viewDetail(b *strings.Builder) {
	if m.selected >= len(m.snaps) {
		b.WriteString("Port detached.\n\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
		return
	}
	snap := m.snaps[m.selected]

	fmt.Fprintf(b, "Extended stats for port %d", snap.Port)
	if snap.Name != "" {
		fmt.Fprintf(b, " (%s)", snap.Name)
	}
	b.WriteString("\n\n")

	if len(m.xstats) == 0 {
		b.WriteString("No extended stats reported.\n")
	}
	zeros := 0
	for _, xs := range m.xstats {
		if xs.Value == 0 {
			zeros++
			continue
		}
		fmt.Fprintf(b, "  %-48s %14d\n", xs.Name, xs.Value)
	}
	if zeros > 0 {
		fmt.Fprintf(b, "  %s\n", helpStyle.Render(fmt.Sprintf("(%d zero counters hidden)", zeros)))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc back • q quit"))
}
