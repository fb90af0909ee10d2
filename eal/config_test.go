package eal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/ethdev/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "eal.yaml", `
cores: 0-3
mem-channels: 4
pci-allow:
  - 0000:3b:00.0
in-memory: true
`)

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Cores != "0-3" {
		t.Errorf("Cores = %q, expected %q", opts.Cores, "0-3")
	}
	if opts.MemChannels != 4 {
		t.Errorf("MemChannels = %d, expected 4", opts.MemChannels)
	}
	if len(opts.PCIAllow) != 1 || opts.PCIAllow[0] != "0000:3b:00.0" {
		t.Errorf("PCIAllow = %v, expected one PCI address", opts.PCIAllow)
	}
	if !opts.InMemory {
		t.Error("InMemory = false, expected true")
	}
	if opts.FilePrefix != "ethdev" {
		t.Errorf("FilePrefix = %q, expected default %q", opts.FilePrefix, "ethdev")
	}
}

func TestLoad_FilePrefixKept(t *testing.T) {
	path := writeConfig(t, "eal.yaml", "file-prefix: capture\n")

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.FilePrefix != "capture" {
		t.Errorf("FilePrefix = %q, expected %q", opts.FilePrefix, "capture")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "eal.yaml", "cores: 0-3\n")
	t.Setenv("ETHDEV_CORES", "4-7")

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Cores != "4-7" {
		t.Errorf("Cores = %q, expected env override %q", opts.Cores, "4-7")
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if kind := err.(*errors.Error).Kind; kind != errors.KindBadArgument {
		t.Errorf("kind = %s, expected %s", kind, errors.KindBadArgument)
	}
}
