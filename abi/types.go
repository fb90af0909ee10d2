package abi

import "unsafe"

// Native array bounds, from the driver's compile-time configuration.
const (
	// QueueStatCntrs is the number of per-queue statistic slots in
	// EthStats (RTE_ETHDEV_QUEUE_STAT_CNTRS).
	QueueStatCntrs = 16

	// EtherAddrLen is the octet length of an ethernet address
	// (RTE_ETHER_ADDR_LEN).
	EtherAddrLen = 6

	// NameMaxLen bounds device name buffers (RTE_ETH_NAME_MAX_LEN).
	NameMaxLen = 64

	// XStatsNameSize bounds extended statistic names
	// (RTE_ETH_XSTATS_NAME_SIZE).
	XStatsNameSize = 64

	// MaxEthPorts bounds port id iteration (RTE_MAX_ETHPORTS).
	MaxEthPorts = 32
)

// Mempool is an opaque handle to a native struct rte_mempool. The Go side
// never dereferences it; it only carries the pointer between calls.
type Mempool struct {
	_ [1]byte
}

// EtherAddr mirrors struct rte_ether_addr.
type EtherAddr struct {
	AddrBytes [EtherAddrLen]uint8
}

// NewEtherAddr returns a zeroed EtherAddr ready to pass to the driver.
func NewEtherAddr() EtherAddr {
	return EtherAddr{
		AddrBytes: [EtherAddrLen]uint8{},
	}
}

// EthStats mirrors struct rte_eth_stats: aggregate and per-queue device
// counters. Queue slots past the device's configured queue count stay
// zero.
type EthStats struct {
	IPackets uint64 // received
	OPackets uint64 // transmitted
	IBytes   uint64
	OBytes   uint64
	IMissed  uint64 // dropped by hardware before reaching software
	IErrors  uint64
	OErrors  uint64
	RxNombuf uint64 // receive buffer allocation failures

	QIPackets [QueueStatCntrs]uint64
	QOPackets [QueueStatCntrs]uint64
	QIBytes   [QueueStatCntrs]uint64
	QOBytes   [QueueStatCntrs]uint64
	QErrors   [QueueStatCntrs]uint64
}

// NewEthStats returns a zeroed EthStats ready to pass to the driver.
func NewEthStats() EthStats {
	return EthStats{
		IPackets:  0,
		OPackets:  0,
		IBytes:    0,
		OBytes:    0,
		IMissed:   0,
		IErrors:   0,
		OErrors:   0,
		RxNombuf:  0,
		QIPackets: [QueueStatCntrs]uint64{},
		QOPackets: [QueueStatCntrs]uint64{},
		QIBytes:   [QueueStatCntrs]uint64{},
		QOBytes:   [QueueStatCntrs]uint64{},
		QErrors:   [QueueStatCntrs]uint64{},
	}
}

// EthLink mirrors struct rte_eth_link. The native declaration is a union
// over one 64-bit atomic word; the zero-width leading field reproduces
// the union's 8-byte alignment so the driver's atomic store lands on an
// aligned address.
type EthLink struct {
	_     [0]uint64
	Speed uint32 // Mbps, RTE_ETH_SPEED_NUM_* domain
	Flags uint16 // bit 0 duplex, bit 1 autoneg, bit 2 status
	_     [2]byte
}

// NewEthLink returns a zeroed EthLink ready to pass to the driver.
func NewEthLink() EthLink {
	return EthLink{
		Speed: 0,
		Flags: 0,
	}
}

// FullDuplex reports whether the link runs full duplex.
func (l EthLink) FullDuplex() bool { return l.Flags&0x1 != 0 }

// Autoneg reports whether the link speed was negotiated.
func (l EthLink) Autoneg() bool { return l.Flags&0x2 != 0 }

// Up reports whether the link is up.
func (l EthLink) Up() bool { return l.Flags&0x4 != 0 }

// EthThresh mirrors struct rte_eth_thresh: prefetch, host, and writeback
// ring threshold registers.
type EthThresh struct {
	PThresh uint8
	HThresh uint8
	WThresh uint8
}

// NewEthThresh returns a zeroed EthThresh.
func NewEthThresh() EthThresh {
	return EthThresh{
		PThresh: 0,
		HThresh: 0,
		WThresh: 0,
	}
}

// EthDescLim mirrors struct rte_eth_desc_lim: descriptor count limits
// for one queue direction.
type EthDescLim struct {
	NbMax       uint16
	NbMin       uint16
	NbAlign     uint16
	NbSegMax    uint16 // max segments per whole packet
	NbMTUSegMax uint16 // max segments per non-TSO packet
}

// NewEthDescLim returns a zeroed EthDescLim.
func NewEthDescLim() EthDescLim {
	return EthDescLim{
		NbMax:       0,
		NbMin:       0,
		NbAlign:     0,
		NbSegMax:    0,
		NbMTUSegMax: 0,
	}
}

// EthPortConf mirrors struct rte_eth_dev_portconf: the driver's
// recommended sizing for one queue direction.
type EthPortConf struct {
	BurstSize uint16
	RingSize  uint16
	NbQueues  uint16
}

// NewEthPortConf returns a zeroed EthPortConf.
func NewEthPortConf() EthPortConf {
	return EthPortConf{
		BurstSize: 0,
		RingSize:  0,
		NbQueues:  0,
	}
}

// EthSwitchInfo mirrors struct rte_eth_switch_info. Name points at
// driver-owned text; decode it with ffi.GoString.
type EthSwitchInfo struct {
	Name     unsafe.Pointer
	DomainID uint16
	PortID   uint16
	RxDomain uint16
}

// NewEthSwitchInfo returns a zeroed EthSwitchInfo.
func NewEthSwitchInfo() EthSwitchInfo {
	return EthSwitchInfo{
		Name:     nil,
		DomainID: 0,
		PortID:   0,
		RxDomain: 0,
	}
}

// EthRxSegCapa mirrors struct rte_eth_rxseg_capa. Capa carries the
// native uint32 bit-field group in its low byte; the unit's remaining
// bits are padding.
type EthRxSegCapa struct {
	Capa     uint8
	MaxNSeg  uint16
	Reserved uint16
	_        [2]byte
}

// NewEthRxSegCapa returns a zeroed EthRxSegCapa.
func NewEthRxSegCapa() EthRxSegCapa {
	return EthRxSegCapa{
		Capa:     0,
		MaxNSeg:  0,
		Reserved: 0,
	}
}

// MultiPools reports whether scattered receive may spread one packet
// across mempools.
func (c EthRxSegCapa) MultiPools() bool { return c.Capa&0x1 != 0 }

// OffsetAllowed reports whether segment descriptions may carry offsets.
func (c EthRxSegCapa) OffsetAllowed() bool { return c.Capa&0x2 != 0 }

// OffsetAlignLog2 returns the required segment offset alignment as a
// power of two.
func (c EthRxSegCapa) OffsetAlignLog2() uint8 { return (c.Capa >> 2) & 0xf }

// EthErrHandleMode mirrors enum rte_eth_err_handle_mode: how the device
// recovers from fatal errors.
type EthErrHandleMode int32

const (
	ErrHandleModeNone      EthErrHandleMode = 0 // no recovery support
	ErrHandleModePassive   EthErrHandleMode = 1 // application drives recovery
	ErrHandleModeProactive EthErrHandleMode = 2 // driver recovers by itself
)

// NewEthErrHandleMode returns the zero mode.
func NewEthErrHandleMode() EthErrHandleMode {
	return ErrHandleModeNone
}

// EthXStat mirrors struct rte_eth_xstat: one extended statistic value
// keyed by its position in the device's name table.
type EthXStat struct {
	ID    uint64
	Value uint64
}

// NewEthXStat returns a zeroed EthXStat.
func NewEthXStat() EthXStat {
	return EthXStat{
		ID:    0,
		Value: 0,
	}
}

// EthXStatName mirrors struct rte_eth_xstat_name: a fixed-size,
// NUL-terminated statistic name.
type EthXStatName struct {
	Name [XStatsNameSize]byte
}

// NewEthXStatName returns a zeroed EthXStatName.
func NewEthXStatName() EthXStatName {
	return EthXStatName{
		Name: [XStatsNameSize]byte{},
	}
}
