package dp

import "errors"

// Build-time sentinel errors, surfaced by Builder.Build before any
// computation happens.
var (
	// ErrNoTypeSet indicates that neither Simple nor Correlated was chosen.
	ErrNoTypeSet = errors.New("dp: a type of dynamic program must be chosen")
	// ErrNoTimeLimitSet indicates a missing time limit.
	ErrNoTimeLimitSet = errors.New("dp: a time limit must be set")
	// ErrNoKernelsSet indicates that no kernels were provided.
	ErrNoKernelsSet = errors.New("dp: kernels must be set")
	// ErrSingleKernelForCorrelated indicates a correlated program given a
	// single kernel; a correlated program needs one kernel per direction.
	ErrSingleKernelForCorrelated = errors.New("dp: a correlated program takes multiple kernels, not a single one")
	// ErrMultipleKernelsForSimple indicates a simple program given a
	// per-direction kernel family.
	ErrMultipleKernelsForSimple = errors.New("dp: a simple program takes labelled kernels, not a direction family")
	// ErrWrongSizeOfFieldTypes indicates field-type rows whose dimensions
	// are not (2T+1)×(2T+1).
	ErrWrongSizeOfFieldTypes = errors.New("dp: field types must be of same size as the program table")
	// ErrBarrierOutOfRange indicates a barrier outside [−T, +T]².
	ErrBarrierOutOfRange = errors.New("dp: barriers must be inside the time limit range")
	// ErrUnknownFieldType indicates a field-type label with no kernel
	// assigned to it.
	ErrUnknownFieldType = errors.New("dp: field type without an assigned kernel")
	// ErrNoDirKernelSet indicates a correlated program without a direction kernel.
	ErrNoDirKernelSet = errors.New("dp: a correlated program requires a direction kernel")
	// ErrDirectionMismatch indicates a kernel family whose size differs
	// from the direction kernel's class count.
	ErrDirectionMismatch = errors.New("dp: kernel family size must match direction kernel classes")
)

// Pool access errors.
var (
	// ErrRequiresSingleProgram indicates a single-program operation invoked
	// on a pool holding multiple programs.
	ErrRequiresSingleProgram = errors.New("dp: operation requires a single dynamic program")
	// ErrRequiresMultiplePrograms indicates a multi-variant operation
	// invoked on a pool holding a single program.
	ErrRequiresMultiplePrograms = errors.New("dp: operation requires multiple dynamic programs")
	// ErrVariantOutOfRange indicates a variant index outside the pool.
	ErrVariantOutOfRange = errors.New("dp: variant index out of range")
)
