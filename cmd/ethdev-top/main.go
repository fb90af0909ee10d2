package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/ethdev"
	"github.com/wippyai/ethdev/eal"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to environment config file")
		interval   = flag.Duration("interval", time.Second, "Stats refresh interval")
		jsonOut    = flag.Bool("json", false, "Print one snapshot as JSON and exit")
		verbose    = flag.Bool("v", false, "Verbose library logging to stderr")
	)
	flag.Parse()

	if err := run(*configFile, *interval, *jsonOut, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, interval time.Duration, jsonOut, verbose bool) error {
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer log.Sync()
		ethdev.SetLogger(log)
		eal.SetLogger(log)
	}

	var opts eal.Options
	if configFile != "" {
		loaded, err := eal.Load(configFile)
		if err != nil {
			return err
		}
		opts = loaded
	}

	if _, err := eal.Init(opts); err != nil {
		return fmt.Errorf("init environment: %w", err)
	}
	defer func() {
		if err := eal.Cleanup(); err != nil {
			fmt.Fprintf(os.Stderr, "cleanup: %v\n", err)
		}
	}()

	// Pipelines and scripts get a machine-readable snapshot instead of
	// the live view.
	if jsonOut || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printSnapshot()
	}

	p := tea.NewProgram(newTopModel(interval), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func printSnapshot() error {
	out, err := json.MarshalIndent(snapshotPorts(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

type portSnapshot struct {
	Port      uint16 `json:"port"`
	Name      string `json:"name,omitempty"`
	Driver    string `json:"driver,omitempty"`
	MAC       string `json:"mac,omitempty"`
	LinkUp    bool   `json:"link_up"`
	SpeedMbps uint32 `json:"speed_mbps"`
	RxPackets uint64 `json:"rx_packets"`
	TxPackets uint64 `json:"tx_packets"`
	RxBytes   uint64 `json:"rx_bytes"`
	TxBytes   uint64 `json:"tx_bytes"`
	RxMissed  uint64 `json:"rx_missed"`
	RxErrors  uint64 `json:"rx_errors"`
	TxErrors  uint64 `json:"tx_errors"`
	RxNombuf  uint64 `json:"rx_nombuf"`
}

// snapshotPorts reads every attached port. Per-port read failures leave
// the affected fields zero rather than dropping the port.
func snapshotPorts() []portSnapshot {
	ports := ethdev.Ports()
	snaps := make([]portSnapshot, 0, len(ports))
	for _, port := range ports {
		snap := portSnapshot{Port: port.ID()}
		snap.Name, _ = port.Name()
		snap.Driver, _ = port.DriverName()
		if mac, err := port.MACAddr(); err == nil {
			snap.MAC = mac.String()
		}
		if link, err := port.Link(); err == nil {
			snap.LinkUp = link.Up()
			snap.SpeedMbps = link.Speed
		}
		if stats, err := port.Stats(); err == nil {
			snap.RxPackets = stats.IPackets
			snap.TxPackets = stats.OPackets
			snap.RxBytes = stats.IBytes
			snap.TxBytes = stats.OBytes
			snap.RxMissed = stats.IMissed
			snap.RxErrors = stats.IErrors
			snap.TxErrors = stats.OErrors
			snap.RxNombuf = stats.RxNombuf
		}
		snaps = append(snaps, snap)
	}
	return snaps
}
