// Package mempool manages native packet buffer pools.
//
// CreatePktPool returns an owned pool the caller must Free. Lookup
// returns a borrowed handle whose lifetime belongs to whoever created
// the pool. A Pool is not safe for concurrent use with its own Free.
package mempool

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/ethdev/abi"
	"github.com/wippyai/ethdev/errors"
	"github.com/wippyai/ethdev/ffi"
	"github.com/wippyai/ethdev/internal/driver"
)

// Pool wraps a native packet buffer pool handle.
type Pool struct {
	mp    *abi.Mempool
	name  string
	owned bool
}

// CreatePktPool allocates a new packet buffer pool. n is the element
// count, cacheSize the per-lcore cache size, dataRoomSize the per-buffer
// payload size, socketID the NUMA node or -1 for any. The returned pool
// is owned by the caller and must be released with Free.
func CreatePktPool(name string, n, cacheSize uint32, dataRoomSize uint16, socketID int32) (*Pool, error) {
	cname, err := ffi.CString(name)
	if err != nil {
		return nil, err
	}
	mp, err := ffi.Ptr(driver.Get().PktmbufPoolCreate(cname, n, cacheSize, dataRoomSize, socketID),
		func(*abi.Mempool) error { return errors.NullPointer("rte_pktmbuf_pool_create") })
	if err != nil {
		return nil, err
	}
	Logger().Debug("pool created",
		zap.String("name", name),
		zap.Uint32("n", n),
		zap.Int32("socket", socketID))
	return &Pool{mp: mp, name: name, owned: true}, nil
}

// Lookup finds an existing pool by name. The returned handle is
// borrowed: the creator keeps ownership, and Free fails on it.
func Lookup(name string) (*Pool, error) {
	cname, err := ffi.CString(name)
	if err != nil {
		return nil, err
	}
	p, err := ffi.Pointer(unsafe.Pointer(driver.Get().MempoolLookup(cname)),
		func(unsafe.Pointer) error { return errors.NullPointer("rte_mempool_lookup") })
	if err != nil {
		return nil, err
	}
	return &Pool{mp: (*abi.Mempool)(p), name: name}, nil
}

// Name returns the name the pool was attached under.
func (p *Pool) Name() string { return p.name }

// Owned reports whether this handle owns the native pool.
func (p *Pool) Owned() bool { return p.owned }

// Handle exposes the native pointer for call sites that feed it back to
// the driver.
func (p *Pool) Handle() (*abi.Mempool, error) {
	if p.mp == nil {
		return nil, errors.Closed("mempool.Handle", "pool")
	}
	return p.mp, nil
}

// AvailCount returns the number of free elements in the pool.
func (p *Pool) AvailCount() (uint32, error) {
	if p.mp == nil {
		return 0, errors.Closed("rte_mempool_avail_count", "pool")
	}
	return driver.Get().MempoolAvailCount(p.mp), nil
}

// InUseCount returns the number of elements currently allocated from the
// pool.
func (p *Pool) InUseCount() (uint32, error) {
	if p.mp == nil {
		return 0, errors.Closed("rte_mempool_in_use_count", "pool")
	}
	return driver.Get().MempoolInUseCount(p.mp), nil
}

// Free releases the native pool. Only the owning handle may free it;
// borrowed handles fail with KindBadArgument. Methods called after Free
// report KindClosed; a second Free is a no-op.
func (p *Pool) Free() error {
	if p.mp == nil {
		return nil
	}
	if !p.owned {
		return errors.BadArgument("mempool.Free", "handle is borrowed, the creator owns the pool")
	}
	driver.Get().MempoolFree(p.mp)
	p.mp = nil
	Logger().Debug("pool freed", zap.String("name", p.name))
	return nil
}
