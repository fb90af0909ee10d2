// Package driver is the seam between the binding and the native
// packet-processing library. Every native call goes through one function
// table, so builds without the dpdk tag and tests can swap the whole
// native surface at once.
package driver

import (
	"sync/atomic"

	"github.com/wippyai/ethdev/abi"
)

// API is the native call surface. Name buffers are NUL-terminated byte
// strings (ffi.CString output) that must outlive the call; struct
// out-params are abi mirrors the callee fills in place. Integer returns
// follow the native convention: negative values are errno codes.
type API struct {
	EthDevCount         func() uint16
	EthDevIsValid       func(port uint16) int32
	EthDevSocketID      func(port uint16) int32
	EthDevGetNameByPort func(port uint16, name []byte) int32
	EthDevGetPortByName func(name []byte, port *uint16) int32

	EthDevStart func(port uint16) int32
	EthDevStop  func(port uint16) int32
	EthDevReset func(port uint16) int32
	EthDevClose func(port uint16) int32

	EthStatsGet      func(port uint16, stats *abi.EthStats) int32
	EthStatsReset    func(port uint16) int32
	EthDevInfoGet    func(port uint16, info *abi.EthDevInfo) int32
	EthMACAddrGet    func(port uint16, addr *abi.EtherAddr) int32
	EthLinkGetNowait func(port uint16, link *abi.EthLink) int32

	EthPromiscuousEnable  func(port uint16) int32
	EthPromiscuousDisable func(port uint16) int32
	EthPromiscuousGet     func(port uint16) int32

	EthDevSetMTU func(port uint16, mtu uint16) int32
	EthDevGetMTU func(port uint16, mtu *uint16) int32

	// An empty slice queries the required table length.
	EthXStatsGet      func(port uint16, stats []abi.EthXStat) int32
	EthXStatsGetNames func(port uint16, names []abi.EthXStatName) int32

	PktmbufPoolCreate func(name []byte, n, cacheSize uint32, dataRoomSize uint16, socketID int32) *abi.Mempool
	MempoolLookup     func(name []byte) *abi.Mempool
	MempoolFree       func(mp *abi.Mempool)
	MempoolAvailCount func(mp *abi.Mempool) uint32
	MempoolInUseCount func(mp *abi.Mempool) uint32

	EALInit         func(args [][]byte) int32
	EALCleanup      func() int32
	EALHasHugepages func() int32
	EALLcoreCount   func() uint32
}

var current atomic.Pointer[API]

func init() {
	api := native()
	current.Store(&api)
}

// Get returns the active native call table.
func Get() *API {
	return current.Load()
}

// Set replaces the native call table and returns a function that puts
// the previous table back. Intended for tests.
func Set(api API) (restore func()) {
	prev := current.Swap(&api)
	return func() { current.Store(prev) }
}
