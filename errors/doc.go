// Package errors provides structured error types for the ethdev binding.
//
// Errors are categorized by Op (the native function or boundary operation
// that failed) and Kind (error category). The Error type carries the raw
// native return code and a cause chain; negative driver returns keep their
// errno as the cause, so errors.Is(err, unix.EINVAL) works across the
// boundary.
//
// Use the Builder for structured error construction:
//
//	err := errors.New("rte_eth_dev_configure", errors.KindNegativeReturn).
//		Code(-22).
//		Detail("nb_rx_queues exceeds device limit").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NullPointer("rte_mempool_lookup")
//	err := errors.NegativeReturn("rte_eth_dev_start", rc)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
