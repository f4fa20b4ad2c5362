package memory

import "errors"

// Sentinel errors raised by the memory substrate. Callers compare with
// errors.Is rather than type-asserting, since every Bank variant wraps these
// with its own context (which bank, which index).
var (
	// ErrReadOnly is raised writing to a Rom, or loading a Rom a second time.
	ErrReadOnly = errors.New("memory: read-only")

	// ErrMirroringConfig is raised building a MirroredRam whose mirror count
	// is not a power of two, or does not divide the bank size.
	ErrMirroringConfig = errors.New("memory: invalid mirroring configuration")

	// ErrUnmappedAddress is raised when a Mapper has no Bank for an address
	// and the integrator has disabled the all-zero pseudo-Bank fallback.
	ErrUnmappedAddress = errors.New("memory: unmapped address")
)
