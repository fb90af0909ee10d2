// Package eal initializes and tears down the native runtime environment:
// hugepage memory, logical cores, and device probing.
package eal

import (
	"go.uber.org/zap"

	"github.com/wippyai/ethdev/errors"
	"github.com/wippyai/ethdev/ffi"
	"github.com/wippyai/ethdev/internal/driver"
)

// Init starts the native environment. It returns the number of arguments
// the native parser consumed. Init must run before any port or mempool
// call, and the environment initializes at most once per process.
func Init(opts Options) (int, error) {
	return InitWithArgs(append([]string{"ethdev"}, opts.Args()...))
}

// InitWithArgs passes a raw argument vector through, argv[0] included.
func InitWithArgs(argv []string) (int, error) {
	cargs := make([][]byte, 0, len(argv))
	for _, arg := range argv {
		carg, err := ffi.CString(arg)
		if err != nil {
			return 0, err
		}
		cargs = append(cargs, carg)
	}
	n, err := ffi.Uint32(driver.Get().EALInit(cargs), negErr("rte_eal_init"))
	if err != nil {
		return 0, err
	}
	Logger().Info("environment initialized",
		zap.Strings("argv", argv),
		zap.Uint32("parsed", n))
	return int(n), nil
}

// Cleanup releases hugepages and other native resources. Call it once at
// process shutdown, after every port is closed.
func Cleanup() error {
	return ffi.Check(driver.Get().EALCleanup(), negErr("rte_eal_cleanup"))
}

// HasHugePages reports whether the environment runs on hugepage memory.
func HasHugePages() bool {
	return driver.Get().EALHasHugepages() != 0
}

// LcoreCount returns the number of logical cores available to the
// environment.
func LcoreCount() uint32 {
	return driver.Get().EALLcoreCount()
}

// negErr defers error construction to the failure path.
func negErr(op string) func(int32) error {
	return func(code int32) error { return errors.NegativeReturn(op, code) }
}
