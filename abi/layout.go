package abi

import "unsafe"

// Native struct sizes on LP64 targets.
const (
	SizeofEtherAddr     = 6
	SizeofEthStats      = 704
	SizeofEthLink       = 8
	SizeofEthThresh     = 3
	SizeofEthDescLim    = 10
	SizeofEthPortConf   = 6
	SizeofEthSwitchInfo = 16
	SizeofEthRxSegCapa  = 8
	SizeofEthRxConf     = 80
	SizeofEthTxConf     = 56
	SizeofEthDevInfo    = 376
	SizeofEthXStat      = 16
	SizeofEthXStatName  = 64
)

// Size pins. A mirror that drifts from its native size fails to compile.
var (
	_ [SizeofEtherAddr]byte     = [unsafe.Sizeof(EtherAddr{})]byte{}
	_ [SizeofEthStats]byte      = [unsafe.Sizeof(EthStats{})]byte{}
	_ [SizeofEthLink]byte       = [unsafe.Sizeof(EthLink{})]byte{}
	_ [SizeofEthThresh]byte     = [unsafe.Sizeof(EthThresh{})]byte{}
	_ [SizeofEthDescLim]byte    = [unsafe.Sizeof(EthDescLim{})]byte{}
	_ [SizeofEthPortConf]byte   = [unsafe.Sizeof(EthPortConf{})]byte{}
	_ [SizeofEthSwitchInfo]byte = [unsafe.Sizeof(EthSwitchInfo{})]byte{}
	_ [SizeofEthRxSegCapa]byte  = [unsafe.Sizeof(EthRxSegCapa{})]byte{}
	_ [SizeofEthRxConf]byte     = [unsafe.Sizeof(EthRxConf{})]byte{}
	_ [SizeofEthTxConf]byte     = [unsafe.Sizeof(EthTxConf{})]byte{}
	_ [SizeofEthDevInfo]byte    = [unsafe.Sizeof(EthDevInfo{})]byte{}
	_ [SizeofEthXStat]byte      = [unsafe.Sizeof(EthXStat{})]byte{}
	_ [SizeofEthXStatName]byte  = [unsafe.Sizeof(EthXStatName{})]byte{}
)

// The driver stores EthLink through a 64-bit atomic; the mirror must
// carry the union's alignment, not just its size.
var _ [8]byte = [unsafe.Alignof(EthLink{})]byte{}

// Offset pins for every field that follows implicit padding, plus the
// nested aggregates.
var (
	_ [2]byte = [unsafe.Offsetof(EthRxSegCapa{}.MaxNSeg)]byte{}
	_ [4]byte = [unsafe.Offsetof(EthLink{}.Flags)]byte{}

	_ [4]byte  = [unsafe.Offsetof(EthRxConf{}.RxFreeThresh)]byte{}
	_ [16]byte = [unsafe.Offsetof(EthRxConf{}.Offloads)]byte{}
	_ [24]byte = [unsafe.Offsetof(EthRxConf{}.RxSeg)]byte{}
	_ [40]byte = [unsafe.Offsetof(EthRxConf{}.RxNMempool)]byte{}
	_ [48]byte = [unsafe.Offsetof(EthRxConf{}.Reserved64s)]byte{}
	_ [64]byte = [unsafe.Offsetof(EthRxConf{}.ReservedPtrs)]byte{}

	_ [4]byte  = [unsafe.Offsetof(EthTxConf{}.TxRSThresh)]byte{}
	_ [16]byte = [unsafe.Offsetof(EthTxConf{}.Offloads)]byte{}
	_ [24]byte = [unsafe.Offsetof(EthTxConf{}.Reserved64s)]byte{}
	_ [40]byte = [unsafe.Offsetof(EthTxConf{}.ReservedPtrs)]byte{}

	_ [24]byte  = [unsafe.Offsetof(EthDevInfo{}.DevFlags)]byte{}
	_ [60]byte  = [unsafe.Offsetof(EthDevInfo{}.RxSegCapa)]byte{}
	_ [72]byte  = [unsafe.Offsetof(EthDevInfo{}.RxOffloadCapa)]byte{}
	_ [112]byte = [unsafe.Offsetof(EthDevInfo{}.FlowTypeRSSOffloads)]byte{}
	_ [120]byte = [unsafe.Offsetof(EthDevInfo{}.DefaultRxConf)]byte{}
	_ [200]byte = [unsafe.Offsetof(EthDevInfo{}.DefaultTxConf)]byte{}
	_ [262]byte = [unsafe.Offsetof(EthDevInfo{}.RxDescLim)]byte{}
	_ [284]byte = [unsafe.Offsetof(EthDevInfo{}.SpeedCapa)]byte{}
	_ [294]byte = [unsafe.Offsetof(EthDevInfo{}.DefaultRxPortConf)]byte{}
	_ [312]byte = [unsafe.Offsetof(EthDevInfo{}.DevCapa)]byte{}
	_ [320]byte = [unsafe.Offsetof(EthDevInfo{}.SwitchInfo)]byte{}
	_ [336]byte = [unsafe.Offsetof(EthDevInfo{}.ErrHandleMode)]byte{}
	_ [344]byte = [unsafe.Offsetof(EthDevInfo{}.Reserved64s)]byte{}
	_ [360]byte = [unsafe.Offsetof(EthDevInfo{}.ReservedPtrs)]byte{}
)
