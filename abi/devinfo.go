package abi

import "unsafe"

// EthRxConf mirrors struct rte_eth_rxconf: receive queue configuration,
// as reported back in EthDevInfo.DefaultRxConf.
type EthRxConf struct {
	RxThresh        EthThresh
	RxFreeThresh    uint16
	RxDropEn        uint8
	RxDeferredStart uint8
	RxNSeg          uint16
	ShareGroup      uint16 // shared Rx queue group in the switch domain
	ShareQID        uint16
	Offloads        uint64
	RxSeg           unsafe.Pointer // union rte_eth_rxseg *
	RxMempools      unsafe.Pointer // struct rte_mempool **
	RxNMempool      uint16
	Reserved64s     [2]uint64
	ReservedPtrs    [2]unsafe.Pointer
}

// NewEthRxConf returns a zeroed EthRxConf.
func NewEthRxConf() EthRxConf {
	return EthRxConf{
		RxThresh:        NewEthThresh(),
		RxFreeThresh:    0,
		RxDropEn:        0,
		RxDeferredStart: 0,
		RxNSeg:          0,
		ShareGroup:      0,
		ShareQID:        0,
		Offloads:        0,
		RxSeg:           nil,
		RxMempools:      nil,
		RxNMempool:      0,
		Reserved64s:     [2]uint64{},
		ReservedPtrs:    [2]unsafe.Pointer{},
	}
}

// EthTxConf mirrors struct rte_eth_txconf: transmit queue configuration,
// as reported back in EthDevInfo.DefaultTxConf.
type EthTxConf struct {
	TxThresh        EthThresh
	TxRSThresh      uint16 // RS bit interval on transmit descriptors
	TxFreeThresh    uint16
	TxDeferredStart uint8
	Offloads        uint64
	Reserved64s     [2]uint64
	ReservedPtrs    [2]unsafe.Pointer
}

// NewEthTxConf returns a zeroed EthTxConf.
func NewEthTxConf() EthTxConf {
	return EthTxConf{
		TxThresh:        NewEthThresh(),
		TxRSThresh:      0,
		TxFreeThresh:    0,
		TxDeferredStart: 0,
		Offloads:        0,
		Reserved64s:     [2]uint64{},
		ReservedPtrs:    [2]unsafe.Pointer{},
	}
}

// EthDevInfo mirrors struct rte_eth_dev_info: the device's capability
// report. Device, DriverName, and DevFlags point at driver-owned memory
// valid while the device stays attached.
type EthDevInfo struct {
	Device              unsafe.Pointer // struct rte_device *
	DriverName          unsafe.Pointer // const char *
	IfIndex             uint32         // bound host interface, 0 if none
	MinMTU              uint16
	MaxMTU              uint16
	DevFlags            unsafe.Pointer // const uint32_t *
	MinRxBufSize        uint32
	MaxRxPktLen         uint32
	MaxLroPktSize       uint32
	MaxRxQueues         uint16
	MaxTxQueues         uint16
	MaxMacAddrs         uint32
	MaxHashMacAddrs     uint32
	MaxVFs              uint16
	MaxVmdqPools        uint16
	RxSegCapa           EthRxSegCapa
	RxOffloadCapa       uint64
	TxOffloadCapa       uint64
	RxQueueOffloadCapa  uint64
	TxQueueOffloadCapa  uint64
	RetaSize            uint16
	HashKeySize         uint8
	FlowTypeRSSOffloads uint64
	DefaultRxConf       EthRxConf
	DefaultTxConf       EthTxConf
	VmdqQueueBase       uint16
	VmdqQueueNum        uint16
	VmdqPoolBase        uint16
	RxDescLim           EthDescLim
	TxDescLim           EthDescLim
	SpeedCapa           uint32
	NbRxQueues          uint16
	NbTxQueues          uint16
	MaxRxMempools       uint16
	DefaultRxPortConf   EthPortConf
	DefaultTxPortConf   EthPortConf
	DevCapa             uint64
	SwitchInfo          EthSwitchInfo
	ErrHandleMode       EthErrHandleMode
	Reserved64s         [2]uint64
	ReservedPtrs        [2]unsafe.Pointer
}

// NewEthDevInfo returns a zeroed EthDevInfo ready to pass to the driver.
// Nested structs come from their own factories.
func NewEthDevInfo() EthDevInfo {
	return EthDevInfo{
		Device:              nil,
		DriverName:          nil,
		IfIndex:             0,
		MinMTU:              0,
		MaxMTU:              0,
		DevFlags:            nil,
		MinRxBufSize:        0,
		MaxRxPktLen:         0,
		MaxLroPktSize:       0,
		MaxRxQueues:         0,
		MaxTxQueues:         0,
		MaxMacAddrs:         0,
		MaxHashMacAddrs:     0,
		MaxVFs:              0,
		MaxVmdqPools:        0,
		RxSegCapa:           NewEthRxSegCapa(),
		RxOffloadCapa:       0,
		TxOffloadCapa:       0,
		RxQueueOffloadCapa:  0,
		TxQueueOffloadCapa:  0,
		RetaSize:            0,
		HashKeySize:         0,
		FlowTypeRSSOffloads: 0,
		DefaultRxConf:       NewEthRxConf(),
		DefaultTxConf:       NewEthTxConf(),
		VmdqQueueBase:       0,
		VmdqQueueNum:        0,
		VmdqPoolBase:        0,
		RxDescLim:           NewEthDescLim(),
		TxDescLim:           NewEthDescLim(),
		SpeedCapa:           0,
		NbRxQueues:          0,
		NbTxQueues:          0,
		MaxRxMempools:       0,
		DefaultRxPortConf:   NewEthPortConf(),
		DefaultTxPortConf:   NewEthPortConf(),
		DevCapa:             0,
		SwitchInfo:          NewEthSwitchInfo(),
		ErrHandleMode:       NewEthErrHandleMode(),
		Reserved64s:         [2]uint64{},
		ReservedPtrs:        [2]unsafe.Pointer{},
	}
}
