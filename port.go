package ethdev

import (
	"net"

	"go.uber.org/zap"

	"github.com/wippyai/ethdev/abi"
	"github.com/wippyai/ethdev/errors"
	"github.com/wippyai/ethdev/ffi"
	"github.com/wippyai/ethdev/internal/driver"
)

// Port identifies one ethernet device. The zero value names port 0;
// obtain validated instances from NewPort, Ports, or PortByName.
type Port struct {
	id uint16
}

// NewPort returns the port with the given id, or KindInvalidPort when no
// device is attached under it.
func NewPort(id uint16) (Port, error) {
	if !Valid(id) {
		return Port{}, errors.InvalidPort("ethdev.NewPort", id)
	}
	return Port{id: id}, nil
}

// ID returns the numeric port id.
func (p Port) ID() uint16 { return p.id }

// Count returns the number of ethernet devices currently attached.
func Count() uint16 {
	return driver.Get().EthDevCount()
}

// Valid reports whether a device is attached under the given port id.
func Valid(port uint16) bool {
	return driver.Get().EthDevIsValid(port) == 1
}

// Ports returns every attached port in id order. Detached ids are
// skipped, so the ids need not be contiguous.
func Ports() []Port {
	avail := Count()
	ports := make([]Port, 0, avail)
	for id := uint16(0); id < abi.MaxEthPorts && uint16(len(ports)) < avail; id++ {
		if Valid(id) {
			ports = append(ports, Port{id: id})
		}
	}
	return ports
}

// PortByName resolves a device name (PCI address or vdev name) to its
// port.
func PortByName(name string) (Port, error) {
	cname, err := ffi.CString(name)
	if err != nil {
		return Port{}, err
	}
	var id uint16
	rc := driver.Get().EthDevGetPortByName(cname, &id)
	if err := ffi.Check(rc, negErr("rte_eth_dev_get_port_by_name")); err != nil {
		return Port{}, err
	}
	return Port{id: id}, nil
}

// negErr defers error construction to the failure path.
func negErr(op string) func(int32) error {
	return func(code int32) error { return errors.NegativeReturn(op, code) }
}

// Stats returns the device's basic counters.
func (p Port) Stats() (abi.EthStats, error) {
	stats := abi.NewEthStats()
	if err := ffi.Check(driver.Get().EthStatsGet(p.id, &stats), negErr("rte_eth_stats_get")); err != nil {
		return abi.EthStats{}, err
	}
	return stats, nil
}

// StatsReset zeroes the device's basic counters.
func (p Port) StatsReset() error {
	return ffi.Check(driver.Get().EthStatsReset(p.id), negErr("rte_eth_stats_reset"))
}

// DevInfo returns the device's capability report.
func (p Port) DevInfo() (abi.EthDevInfo, error) {
	info := abi.NewEthDevInfo()
	if err := ffi.Check(driver.Get().EthDevInfoGet(p.id, &info), negErr("rte_eth_dev_info_get")); err != nil {
		return abi.EthDevInfo{}, err
	}
	return info, nil
}

// DriverName reports the native driver bound to the device.
func (p Port) DriverName() (string, error) {
	info, err := p.DevInfo()
	if err != nil {
		return "", err
	}
	return ffi.GoString(info.DriverName), nil
}

// MACAddr returns the device's primary ethernet address.
func (p Port) MACAddr() (net.HardwareAddr, error) {
	addr := abi.NewEtherAddr()
	if err := ffi.Check(driver.Get().EthMACAddrGet(p.id, &addr), negErr("rte_eth_macaddr_get")); err != nil {
		return nil, err
	}
	return net.HardwareAddr(append([]byte(nil), addr.AddrBytes[:]...)), nil
}

// Name returns the device name the port was attached under.
func (p Port) Name() (string, error) {
	var buf [abi.NameMaxLen]byte
	if err := ffi.Check(driver.Get().EthDevGetNameByPort(p.id, buf[:]), negErr("rte_eth_dev_get_name_by_port")); err != nil {
		return "", err
	}
	return ffi.BytesToString(buf[:]), nil
}

// SocketID returns the NUMA node the device sits on.
func (p Port) SocketID() (uint32, error) {
	return ffi.Uint32(driver.Get().EthDevSocketID(p.id), negErr("rte_eth_dev_socket_id"))
}

// Start begins packet processing on the device.
func (p Port) Start() error {
	if err := ffi.Check(driver.Get().EthDevStart(p.id), negErr("rte_eth_dev_start")); err != nil {
		return err
	}
	Logger().Debug("port started", zap.Uint16("port", p.id))
	return nil
}

// Stop halts packet processing. The device keeps its configuration and
// can be started again.
func (p Port) Stop() error {
	if err := ffi.Check(driver.Get().EthDevStop(p.id), negErr("rte_eth_dev_stop")); err != nil {
		return err
	}
	Logger().Debug("port stopped", zap.Uint16("port", p.id))
	return nil
}

// Reset puts the device back into its post-attach state. The caller must
// reconfigure and restart it afterwards.
func (p Port) Reset() error {
	if err := ffi.Check(driver.Get().EthDevReset(p.id), negErr("rte_eth_dev_reset")); err != nil {
		return err
	}
	Logger().Debug("port reset", zap.Uint16("port", p.id))
	return nil
}

// Close releases the device. The port id becomes invalid.
func (p Port) Close() error {
	if err := ffi.Check(driver.Get().EthDevClose(p.id), negErr("rte_eth_dev_close")); err != nil {
		return err
	}
	Logger().Debug("port closed", zap.Uint16("port", p.id))
	return nil
}

// SetPromiscuous switches promiscuous receive mode.
func (p Port) SetPromiscuous(on bool) error {
	d := driver.Get()
	if on {
		return ffi.Check(d.EthPromiscuousEnable(p.id), negErr("rte_eth_promiscuous_enable"))
	}
	return ffi.Check(d.EthPromiscuousDisable(p.id), negErr("rte_eth_promiscuous_disable"))
}

// Promiscuous reports whether promiscuous receive mode is on.
func (p Port) Promiscuous() (bool, error) {
	v, err := ffi.Uint32(driver.Get().EthPromiscuousGet(p.id), negErr("rte_eth_promiscuous_get"))
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// SetMTU changes the device MTU.
func (p Port) SetMTU(mtu uint16) error {
	return ffi.Check(driver.Get().EthDevSetMTU(p.id, mtu), negErr("rte_eth_dev_set_mtu"))
}

// MTU returns the configured device MTU.
func (p Port) MTU() (uint16, error) {
	var mtu uint16
	if err := ffi.Check(driver.Get().EthDevGetMTU(p.id, &mtu), negErr("rte_eth_dev_get_mtu")); err != nil {
		return 0, err
	}
	return mtu, nil
}

// Link reads the device's link state without waiting for negotiation to
// settle.
func (p Port) Link() (abi.EthLink, error) {
	link := abi.NewEthLink()
	if err := ffi.Check(driver.Get().EthLinkGetNowait(p.id, &link), negErr("rte_eth_link_get_nowait")); err != nil {
		return abi.EthLink{}, err
	}
	return link, nil
}
