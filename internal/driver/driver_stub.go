//go:build !dpdk

package driver

import (
	"golang.org/x/sys/unix"

	"github.com/wippyai/ethdev/abi"
)

// errNotSup is what the native library reports for operations the target
// cannot perform.
var errNotSup = -int32(unix.ENOTSUP)

// native builds the call table for binaries linked without the driver.
// Count and lookup calls report an empty system; everything else reports
// ENOTSUP the way an unsupported device would.
func native() API {
	return API{
		EthDevCount:         func() uint16 { return 0 },
		EthDevIsValid:       func(uint16) int32 { return 0 },
		EthDevSocketID:      func(uint16) int32 { return errNotSup },
		EthDevGetNameByPort: func(uint16, []byte) int32 { return errNotSup },
		EthDevGetPortByName: func([]byte, *uint16) int32 { return errNotSup },

		EthDevStart: func(uint16) int32 { return errNotSup },
		EthDevStop:  func(uint16) int32 { return errNotSup },
		EthDevReset: func(uint16) int32 { return errNotSup },
		EthDevClose: func(uint16) int32 { return errNotSup },

		EthStatsGet:      func(uint16, *abi.EthStats) int32 { return errNotSup },
		EthStatsReset:    func(uint16) int32 { return errNotSup },
		EthDevInfoGet:    func(uint16, *abi.EthDevInfo) int32 { return errNotSup },
		EthMACAddrGet:    func(uint16, *abi.EtherAddr) int32 { return errNotSup },
		EthLinkGetNowait: func(uint16, *abi.EthLink) int32 { return errNotSup },

		EthPromiscuousEnable:  func(uint16) int32 { return errNotSup },
		EthPromiscuousDisable: func(uint16) int32 { return errNotSup },
		EthPromiscuousGet:     func(uint16) int32 { return errNotSup },

		EthDevSetMTU: func(uint16, uint16) int32 { return errNotSup },
		EthDevGetMTU: func(uint16, *uint16) int32 { return errNotSup },

		EthXStatsGet:      func(uint16, []abi.EthXStat) int32 { return errNotSup },
		EthXStatsGetNames: func(uint16, []abi.EthXStatName) int32 { return errNotSup },

		PktmbufPoolCreate: func([]byte, uint32, uint32, uint16, int32) *abi.Mempool { return nil },
		MempoolLookup:     func([]byte) *abi.Mempool { return nil },
		MempoolFree:       func(*abi.Mempool) {},
		MempoolAvailCount: func(*abi.Mempool) uint32 { return 0 },
		MempoolInUseCount: func(*abi.Mempool) uint32 { return 0 },

		EALInit:         func([][]byte) int32 { return errNotSup },
		EALCleanup:      func() int32 { return 0 },
		EALHasHugepages: func() int32 { return 0 },
		EALLcoreCount:   func() uint32 { return 0 },
	}
}
