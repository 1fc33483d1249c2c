package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate reports a block or transaction that is already confirmed.
	ErrDuplicate = errors.New("duplicate")
	// ErrNotFound reports a well-formed absence of the fetch target.
	ErrNotFound = errors.New("not found")
	// ErrUnspent reports an existing confirmed output without a spend.
	ErrUnspent = fmt.Errorf("unspent output: %w", ErrNotFound)
	// ErrUnknownOutput reports an output reference no confirmed transaction has.
	ErrUnknownOutput = fmt.Errorf("unknown output: %w", ErrNotFound)
	// ErrUnsupportedAddressType reports an address encoding the index cannot serve.
	ErrUnsupportedAddressType = errors.New("unsupported address type")
	// ErrOperationFailed wraps failures of the underlying store.
	ErrOperationFailed = errors.New("operation failed")
	// ErrServiceStopped is returned once the engine has been stopped.
	ErrServiceStopped = errors.New("service stopped")
	// ErrLockUnavailable reports that another process holds the storage directory.
	ErrLockUnavailable = errors.New("storage directory lock unavailable")
	// ErrCorruptRecord reports a stored value with an impossible layout.
	ErrCorruptRecord = errors.New("corrupt record")
)

// OperationFailed wraps an underlying store error so that callers can match
// ErrOperationFailed while keeping the cause.
func OperationFailed(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrOperationFailed, err)
}
