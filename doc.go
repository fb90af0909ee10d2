// Package ethdev provides a Go binding for DPDK ethernet device control.
//
// This library sits between application code and the native driver's C
// ABI. It converts the driver's raw return conventions (nullable
// pointers, negative errno integers, NUL-terminated strings) into Go
// values and errors, and keeps every struct that crosses the boundary
// byte-compatible with its native declaration.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	ethdev/              Root package with the port control API
//	├── eal/             Environment abstraction layer init, config, lcores
//	├── mempool/         Packet buffer pool creation and lookup
//	├── abi/             Byte-exact native struct mirrors and factories
//	├── ffi/             Boundary conversions: text and raw result bridges
//	├── filter/          WebAssembly packet filters over device frames
//	├── pdump/           Packet capture writing and frame summaries
//	├── metrics/         Prometheus collector over port statistics
//	├── errors/          Structured error types for debugging
//	└── internal/driver/ The native call table (cgo with the dpdk tag,
//	                     stub without it)
//
// # Quick Start
//
// Initialize the runtime, then operate on ports:
//
//	if _, err := eal.Init(eal.Options{Cores: "0-3"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer eal.Cleanup()
//
//	for _, port := range ethdev.Ports() {
//	    stats, err := port.Stats()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("port %d: %d rx packets\n", port.ID(), stats.IPackets)
//	}
//
// # Build Modes
//
// Binaries built with the dpdk tag link the native driver through cgo
// (pkg-config: libdpdk). Without the tag, a stub driver reports an empty
// system and ENOTSUP, which keeps application code and tests buildable on
// machines without the native library.
//
// # Thread Safety
//
// The root port API and eal are safe for concurrent use; the native
// driver serializes control-path calls internally. mempool.Pool and
// filter.Filter are NOT thread-safe and should be used by a single
// goroutine, or access must be synchronized.
//
// # Ownership
//
// Pointers returned by create-style calls (mempool.CreatePktPool) are
// owned by the caller and must be released with Free. Pointers from
// lookup-style calls stay owned by the driver. Strings the driver hands
// out (driver names, switch names) are decoded by copy immediately, so
// no Go value ever aliases native memory past the call that produced it.
package ethdev
