// Package abi declares byte-exact Go mirrors of the native driver
// structures that cross the boundary, plus factories that build them
// zero-initialized.
//
// Every mirror reproduces the native declaration's field order, widths,
// and padding on LP64 targets. layout.go pins each struct's size, and
// the offset of every field that follows implicit padding, at compile
// time:
//
//	Mirror          Native struct              Size
//	--------------  -------------------------  ----
//	EtherAddr       rte_ether_addr                6
//	EthStats        rte_eth_stats               704
//	EthLink         rte_eth_link                  8
//	EthThresh       rte_eth_thresh                3
//	EthDescLim      rte_eth_desc_lim             10
//	EthPortConf     rte_eth_dev_portconf          6
//	EthSwitchInfo   rte_eth_switch_info          16
//	EthRxSegCapa    rte_eth_rxseg_capa            8
//	EthRxConf       rte_eth_rxconf               80
//	EthTxConf       rte_eth_txconf               56
//	EthDevInfo      rte_eth_dev_info            376
//	EthXStat        rte_eth_xstat                16
//	EthXStatName    rte_eth_xstat_name           64
//
// A factory names every field of its struct explicitly. When a native
// release adds or widens a field, the mirror must change, which breaks
// the factory and the layout pins instead of silently truncating writes
// from the driver.
//
// Pointer-typed fields (device handles, driver-owned strings) stay
// unsafe.Pointer; decoding them is the ffi package's job.
package abi
