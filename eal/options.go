package eal

import "strconv"

// Options selects the environment the native layer initializes with.
// The zero value is valid and leaves every choice to driver defaults.
type Options struct {
	// Cores is the lcore list, e.g. "0-3" or "0,2,4" (-l).
	Cores string `mapstructure:"cores"`
	// MemChannels is the number of memory channels (-n), 0 to omit.
	MemChannels int `mapstructure:"mem-channels"`
	// MemoryMB preallocates hugepage memory in megabytes (-m), 0 to omit.
	MemoryMB int `mapstructure:"memory-mb"`
	// HugeDir overrides the hugepage mount point (--huge-dir).
	HugeDir string `mapstructure:"huge-dir"`
	// FilePrefix isolates this process's hugepage files (--file-prefix).
	// Load defaults it to "ethdev" when the file omits it.
	FilePrefix string `mapstructure:"file-prefix"`
	// PCIAllow restricts probing to these PCI addresses (-a, repeatable).
	PCIAllow []string `mapstructure:"pci-allow"`
	// PCIBlock skips probing these PCI addresses (-b, repeatable).
	PCIBlock []string `mapstructure:"pci-block"`
	// VDevs declares virtual devices, e.g. "net_ring0" (--vdev, repeatable).
	VDevs []string `mapstructure:"vdevs"`
	// IOVAMode forces "va" or "pa" addressing (--iova-mode).
	IOVAMode string `mapstructure:"iova-mode"`
	// LogLevel sets native log levels, e.g. "lib.eal:debug" (--log-level).
	LogLevel string `mapstructure:"log-level"`
	// NoPCI disables PCI bus probing entirely (--no-pci).
	NoPCI bool `mapstructure:"no-pci"`
	// InMemory avoids shared hugepage files (--in-memory).
	InMemory bool `mapstructure:"in-memory"`
	// NoHuge runs on anonymous memory instead of hugepages (--no-huge).
	NoHuge bool `mapstructure:"no-huge"`
}

// Args renders the options as a native argument vector, without argv[0].
// Output order is fixed, so equal Options always produce equal vectors.
func (o Options) Args() []string {
	var args []string
	if o.Cores != "" {
		args = append(args, "-l", o.Cores)
	}
	if o.MemChannels > 0 {
		args = append(args, "-n", strconv.Itoa(o.MemChannels))
	}
	if o.MemoryMB > 0 {
		args = append(args, "-m", strconv.Itoa(o.MemoryMB))
	}
	for _, addr := range o.PCIAllow {
		args = append(args, "-a", addr)
	}
	for _, addr := range o.PCIBlock {
		args = append(args, "-b", addr)
	}
	for _, vdev := range o.VDevs {
		args = append(args, "--vdev", vdev)
	}
	if o.HugeDir != "" {
		args = append(args, "--huge-dir", o.HugeDir)
	}
	if o.FilePrefix != "" {
		args = append(args, "--file-prefix", o.FilePrefix)
	}
	if o.IOVAMode != "" {
		args = append(args, "--iova-mode", o.IOVAMode)
	}
	if o.LogLevel != "" {
		args = append(args, "--log-level", o.LogLevel)
	}
	if o.NoPCI {
		args = append(args, "--no-pci")
	}
	if o.InMemory {
		args = append(args, "--in-memory")
	}
	if o.NoHuge {
		args = append(args, "--no-huge")
	}
	return args
}
