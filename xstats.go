package ethdev

import (
	"fmt"

	"github.com/wippyai/ethdev/abi"
	"github.com/wippyai/ethdev/errors"
	"github.com/wippyai/ethdev/ffi"
	"github.com/wippyai/ethdev/internal/driver"
)

// XStat is one extended statistic: a driver-defined counter and its
// value.
type XStat struct {
	Name  string
	Value uint64
}

// XStats retrieves the device's extended statistics. Each table takes
// two native calls: an empty query sizes it, a second call fills it. A
// table that grows between the two calls fails with KindExhausted rather
// than returning a torn read.
func (p Port) XStats() ([]XStat, error) {
	d := driver.Get()

	n, err := ffi.Uint32(d.EthXStatsGet(p.id, nil), negErr("rte_eth_xstats_get"))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	stats := make([]abi.EthXStat, n)
	filled, err := ffi.Uint32(d.EthXStatsGet(p.id, stats), negErr("rte_eth_xstats_get"))
	if err != nil {
		return nil, err
	}
	if filled > n {
		return nil, errors.Exhausted("rte_eth_xstats_get",
			fmt.Sprintf("device reports %d entries, table holds %d", filled, n))
	}

	names := make([]abi.EthXStatName, n)
	got, err := ffi.Uint32(d.EthXStatsGetNames(p.id, names), negErr("rte_eth_xstats_get_names"))
	if err != nil {
		return nil, err
	}
	if got > n {
		return nil, errors.Exhausted("rte_eth_xstats_get_names",
			fmt.Sprintf("device reports %d names, table holds %d", got, n))
	}

	out := make([]XStat, 0, filled)
	for _, s := range stats[:filled] {
		x := XStat{Value: s.Value}
		if s.ID < uint64(got) {
			x.Name = ffi.BytesToString(names[s.ID].Name[:])
		}
		out = append(out, x)
	}
	return out, nil
}
