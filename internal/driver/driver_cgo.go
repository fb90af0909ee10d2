//go:build dpdk

package driver

/*
#cgo pkg-config: libdpdk

#include <stdlib.h>

#include <rte_eal.h>
#include <rte_ethdev.h>
#include <rte_lcore.h>
#include <rte_mbuf.h>
#include <rte_mempool.h>
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/ethdev/abi"
)

// native builds the call table over the linked driver. The abi mirrors
// are byte-compatible with the native structs, so out-params cast
// straight through.
func native() API {
	return API{
		EthDevCount: func() uint16 {
			return uint16(C.rte_eth_dev_count_avail())
		},
		EthDevIsValid: func(port uint16) int32 {
			return int32(C.rte_eth_dev_is_valid_port(C.uint16_t(port)))
		},
		EthDevSocketID: func(port uint16) int32 {
			return int32(C.rte_eth_dev_socket_id(C.uint16_t(port)))
		},
		EthDevGetNameByPort: func(port uint16, name []byte) int32 {
			return int32(C.rte_eth_dev_get_name_by_port(C.uint16_t(port),
				(*C.char)(unsafe.Pointer(&name[0]))))
		},
		EthDevGetPortByName: func(name []byte, port *uint16) int32 {
			return int32(C.rte_eth_dev_get_port_by_name(
				(*C.char)(unsafe.Pointer(&name[0])), (*C.uint16_t)(port)))
		},

		EthDevStart: func(port uint16) int32 {
			return int32(C.rte_eth_dev_start(C.uint16_t(port)))
		},
		EthDevStop: func(port uint16) int32 {
			return int32(C.rte_eth_dev_stop(C.uint16_t(port)))
		},
		EthDevReset: func(port uint16) int32 {
			return int32(C.rte_eth_dev_reset(C.uint16_t(port)))
		},
		EthDevClose: func(port uint16) int32 {
			return int32(C.rte_eth_dev_close(C.uint16_t(port)))
		},

		EthStatsGet: func(port uint16, stats *abi.EthStats) int32 {
			return int32(C.rte_eth_stats_get(C.uint16_t(port),
				(*C.struct_rte_eth_stats)(unsafe.Pointer(stats))))
		},
		EthStatsReset: func(port uint16) int32 {
			return int32(C.rte_eth_stats_reset(C.uint16_t(port)))
		},
		EthDevInfoGet: func(port uint16, info *abi.EthDevInfo) int32 {
			return int32(C.rte_eth_dev_info_get(C.uint16_t(port),
				(*C.struct_rte_eth_dev_info)(unsafe.Pointer(info))))
		},
		EthMACAddrGet: func(port uint16, addr *abi.EtherAddr) int32 {
			return int32(C.rte_eth_macaddr_get(C.uint16_t(port),
				(*C.struct_rte_ether_addr)(unsafe.Pointer(addr))))
		},
		EthLinkGetNowait: func(port uint16, link *abi.EthLink) int32 {
			return int32(C.rte_eth_link_get_nowait(C.uint16_t(port),
				(*C.struct_rte_eth_link)(unsafe.Pointer(link))))
		},

		EthPromiscuousEnable: func(port uint16) int32 {
			return int32(C.rte_eth_promiscuous_enable(C.uint16_t(port)))
		},
		EthPromiscuousDisable: func(port uint16) int32 {
			return int32(C.rte_eth_promiscuous_disable(C.uint16_t(port)))
		},
		EthPromiscuousGet: func(port uint16) int32 {
			return int32(C.rte_eth_promiscuous_get(C.uint16_t(port)))
		},

		EthDevSetMTU: func(port uint16, mtu uint16) int32 {
			return int32(C.rte_eth_dev_set_mtu(C.uint16_t(port), C.uint16_t(mtu)))
		},
		EthDevGetMTU: func(port uint16, mtu *uint16) int32 {
			return int32(C.rte_eth_dev_get_mtu(C.uint16_t(port), (*C.uint16_t)(mtu)))
		},

		EthXStatsGet: func(port uint16, stats []abi.EthXStat) int32 {
			var p *C.struct_rte_eth_xstat
			if len(stats) > 0 {
				p = (*C.struct_rte_eth_xstat)(unsafe.Pointer(&stats[0]))
			}
			return int32(C.rte_eth_xstats_get(C.uint16_t(port), p, C.uint(len(stats))))
		},
		EthXStatsGetNames: func(port uint16, names []abi.EthXStatName) int32 {
			var p *C.struct_rte_eth_xstat_name
			if len(names) > 0 {
				p = (*C.struct_rte_eth_xstat_name)(unsafe.Pointer(&names[0]))
			}
			return int32(C.rte_eth_xstats_get_names(C.uint16_t(port), p, C.uint(len(names))))
		},

		PktmbufPoolCreate: func(name []byte, n, cacheSize uint32, dataRoomSize uint16, socketID int32) *abi.Mempool {
			mp := C.rte_pktmbuf_pool_create((*C.char)(unsafe.Pointer(&name[0])),
				C.uint(n), C.uint(cacheSize), 0, C.uint16_t(dataRoomSize), C.int(socketID))
			return (*abi.Mempool)(unsafe.Pointer(mp))
		},
		MempoolLookup: func(name []byte) *abi.Mempool {
			mp := C.rte_mempool_lookup((*C.char)(unsafe.Pointer(&name[0])))
			return (*abi.Mempool)(unsafe.Pointer(mp))
		},
		MempoolFree: func(mp *abi.Mempool) {
			C.rte_mempool_free((*C.struct_rte_mempool)(unsafe.Pointer(mp)))
		},
		MempoolAvailCount: func(mp *abi.Mempool) uint32 {
			return uint32(C.rte_mempool_avail_count((*C.struct_rte_mempool)(unsafe.Pointer(mp))))
		},
		MempoolInUseCount: func(mp *abi.Mempool) uint32 {
			return uint32(C.rte_mempool_in_use_count((*C.struct_rte_mempool)(unsafe.Pointer(mp))))
		},

		EALInit: func(args [][]byte) int32 {
			// The native side keeps argv for the process lifetime, so the
			// vector and its strings live in C memory and are never freed.
			argv := (**C.char)(C.calloc(C.size_t(len(args)+1),
				C.size_t(unsafe.Sizeof((*C.char)(nil)))))
			vec := unsafe.Slice(argv, len(args)+1)
			for i, a := range args {
				vec[i] = (*C.char)(C.CBytes(a))
			}
			return int32(C.rte_eal_init(C.int(len(args)), argv))
		},
		EALCleanup: func() int32 {
			return int32(C.rte_eal_cleanup())
		},
		EALHasHugepages: func() int32 {
			return int32(C.rte_eal_has_hugepages())
		},
		EALLcoreCount: func() uint32 {
			return uint32(C.rte_lcore_count())
		},
	}
}
