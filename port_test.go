package ethdev

import (
	"bytes"
	"net"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/wippyai/ethdev/abi"
	"github.com/wippyai/ethdev/errors"
	"github.com/wippyai/ethdev/internal/driver"
)

// fakeDriver starts from the inactive table and overrides what each test
// needs.
func fakeDriver(t *testing.T, mutate func(*driver.API)) {
	t.Helper()
	api := *driver.Get()
	mutate(&api)
	t.Cleanup(driver.Set(api))
}

func TestCountAndPorts(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.EthDevCount = func() uint16 { return 2 }
		api.EthDevIsValid = func(port uint16) int32 {
			if port == 1 || port == 3 {
				return 1
			}
			return 0
		}
	})

	if got := Count(); got != 2 {
		t.Fatalf("Count = %d, expected 2", got)
	}
	ports := Ports()
	if len(ports) != 2 {
		t.Fatalf("Ports returned %d entries, expected 2", len(ports))
	}
	if ports[0].ID() != 1 || ports[1].ID() != 3 {
		t.Errorf("port ids = %d,%d, expected 1,3", ports[0].ID(), ports[1].ID())
	}
}

func TestNewPort(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.EthDevIsValid = func(port uint16) int32 {
			if port == 0 {
				return 1
			}
			return 0
		}
	})

	if _, err := NewPort(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := NewPort(7)
	if err == nil {
		t.Fatal("expected error for detached port, got nil")
	}
	e, ok := err.(*errors.Error)
	if !ok {
		t.Fatalf("error type %T, expected *errors.Error", err)
	}
	if e.Kind != errors.KindInvalidPort {
		t.Errorf("kind = %s, expected %s", e.Kind, errors.KindInvalidPort)
	}
}

func TestPortStats(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.EthStatsGet = func(port uint16, stats *abi.EthStats) int32 {
			stats.IPackets = 100
			stats.OPackets = 50
			stats.IMissed = 3
			stats.QIPackets[0] = 60
			return 0
		}
	})

	stats, err := Port{}.Stats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.IPackets != 100 || stats.OPackets != 50 || stats.IMissed != 3 {
		t.Errorf("stats = %d/%d/%d, expected 100/50/3", stats.IPackets, stats.OPackets, stats.IMissed)
	}
	if stats.QIPackets[0] != 60 {
		t.Errorf("QIPackets[0] = %d, expected 60", stats.QIPackets[0])
	}
}

func TestPortStats_Error(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.EthStatsGet = func(uint16, *abi.EthStats) int32 { return -int32(unix.ENODEV) }
	})

	_, err := Port{}.Stats()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	e := err.(*errors.Error)
	if e.Kind != errors.KindNegativeReturn {
		t.Errorf("kind = %s, expected %s", e.Kind, errors.KindNegativeReturn)
	}
	if e.Errno() != unix.ENODEV {
		t.Errorf("errno = %v, expected ENODEV", e.Errno())
	}
}

func TestPortName(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.EthDevGetNameByPort = func(port uint16, name []byte) int32 {
			copy(name, "net_ring0\x00")
			return 0
		}
	})

	name, err := Port{}.Name()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "net_ring0" {
		t.Errorf("Name = %q, expected %q", name, "net_ring0")
	}
}

func TestPortByName(t *testing.T) {
	var received []byte
	fakeDriver(t, func(api *driver.API) {
		api.EthDevGetPortByName = func(name []byte, port *uint16) int32 {
			received = append([]byte(nil), name...)
			*port = 3
			return 0
		}
	})

	p, err := PortByName("0000:3b:00.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID() != 3 {
		t.Errorf("port id = %d, expected 3", p.ID())
	}
	if !bytes.Equal(received, []byte("0000:3b:00.0\x00")) {
		t.Errorf("driver received %q, expected NUL-terminated name", received)
	}
}

func TestPortByName_EmbeddedNUL(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.EthDevGetPortByName = func([]byte, *uint16) int32 {
			t.Fatal("driver called with unencodable name")
			return 0
		}
	})

	_, err := PortByName("bad\x00name")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if kind := err.(*errors.Error).Kind; kind != errors.KindEmbeddedNUL {
		t.Errorf("kind = %s, expected %s", kind, errors.KindEmbeddedNUL)
	}
}

func TestPortMACAddr(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.EthMACAddrGet = func(port uint16, addr *abi.EtherAddr) int32 {
			addr.AddrBytes = [abi.EtherAddrLen]uint8{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
			return 0
		}
	})

	mac, err := Port{}.MACAddr()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := net.HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	if !bytes.Equal(mac, want) {
		t.Errorf("MACAddr = %s, expected %s", mac, want)
	}
}

func TestPortDriverName(t *testing.T) {
	name := []byte("net_ice\x00")
	fakeDriver(t, func(api *driver.API) {
		api.EthDevInfoGet = func(port uint16, info *abi.EthDevInfo) int32 {
			info.DriverName = unsafe.Pointer(&name[0])
			info.MaxRxQueues = 64
			return 0
		}
	})

	got, err := Port{}.DriverName()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "net_ice" {
		t.Errorf("DriverName = %q, expected %q", got, "net_ice")
	}
}

func TestPortSocketID(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.EthDevSocketID = func(port uint16) int32 {
			if port == 0 {
				return 1
			}
			return -int32(unix.EINVAL)
		}
	})

	id, err := Port{}.SocketID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1 {
		t.Errorf("SocketID = %d, expected 1", id)
	}

	if _, err := (Port{id: 9}).SocketID(); err == nil {
		t.Fatal("expected error for detached port, got nil")
	}
}

func TestPortLifecycle(t *testing.T) {
	var started bool
	fakeDriver(t, func(api *driver.API) {
		api.EthDevStart = func(uint16) int32 { started = true; return 0 }
		api.EthDevStop = func(uint16) int32 { started = false; return 0 }
		api.EthDevReset = func(uint16) int32 { return 0 }
		api.EthDevClose = func(uint16) int32 { return -int32(unix.EBUSY) }
	})

	p := Port{}
	if err := p.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !started {
		t.Error("Start did not reach the driver")
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if started {
		t.Error("Stop did not reach the driver")
	}
	if err := p.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if err := p.Close(); err == nil {
		t.Fatal("expected Close to surface EBUSY, got nil")
	}
}

func TestPortPromiscuous(t *testing.T) {
	var mode int32
	fakeDriver(t, func(api *driver.API) {
		api.EthPromiscuousEnable = func(uint16) int32 { mode = 1; return 0 }
		api.EthPromiscuousDisable = func(uint16) int32 { mode = 0; return 0 }
		api.EthPromiscuousGet = func(uint16) int32 { return mode }
	})

	p := Port{}
	if err := p.SetPromiscuous(true); err != nil {
		t.Fatalf("SetPromiscuous(true): %v", err)
	}
	on, err := p.Promiscuous()
	if err != nil {
		t.Fatalf("Promiscuous: %v", err)
	}
	if !on {
		t.Error("Promiscuous = false after enable")
	}

	if err := p.SetPromiscuous(false); err != nil {
		t.Fatalf("SetPromiscuous(false): %v", err)
	}
	on, err = p.Promiscuous()
	if err != nil {
		t.Fatalf("Promiscuous: %v", err)
	}
	if on {
		t.Error("Promiscuous = true after disable")
	}
}

func TestPortMTU(t *testing.T) {
	mtu := uint16(1500)
	fakeDriver(t, func(api *driver.API) {
		api.EthDevSetMTU = func(_ uint16, m uint16) int32 {
			if m > 9000 {
				return -int32(unix.EINVAL)
			}
			mtu = m
			return 0
		}
		api.EthDevGetMTU = func(_ uint16, out *uint16) int32 {
			*out = mtu
			return 0
		}
	})

	p := Port{}
	if err := p.SetMTU(9000); err != nil {
		t.Fatalf("SetMTU: %v", err)
	}
	got, err := p.MTU()
	if err != nil {
		t.Fatalf("MTU: %v", err)
	}
	if got != 9000 {
		t.Errorf("MTU = %d, expected 9000", got)
	}

	err = p.SetMTU(9500)
	if err == nil {
		t.Fatal("expected error for oversized MTU, got nil")
	}
	if errno := err.(*errors.Error).Errno(); errno != unix.EINVAL {
		t.Errorf("errno = %v, expected EINVAL", errno)
	}
}

func TestPortLink(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.EthLinkGetNowait = func(port uint16, link *abi.EthLink) int32 {
			link.Speed = 25000
			link.Flags = 0x7
			return 0
		}
	})

	link, err := Port{}.Link()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.Speed != 25000 {
		t.Errorf("Speed = %d, expected 25000", link.Speed)
	}
	if !link.Up() || !link.FullDuplex() || !link.Autoneg() {
		t.Errorf("flags = %#x: Up=%v FullDuplex=%v Autoneg=%v, expected all true",
			link.Flags, link.Up(), link.FullDuplex(), link.Autoneg())
	}
}
