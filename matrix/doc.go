// Package matrix provides the dense weight-matrix primitive backing the
// topology and schedule packages. Dense is a concrete, row-major matrix
// of float64 values stored in a flat slice for performance and cache
// friendliness.
//
// The package intentionally offers no generic graph abstraction: the
// topologies built on top of it never exceed a few thousand nodes and
// every operation they need is matrix-local. What it does offer, beyond
// element access, are the row/column helpers those layers lean on:
//
//   - Row views and row/column sums (Row, RowSum, ColSum)
//   - Non-zero scans per row/column and in total (NonZeroInRow,
//     NonZeroInCol, NonZeroCount)
//   - Stochastic construction helpers (FillCirculant, NormalizeRows)
//   - Exact element-wise comparison (Equal)
//
// Guarantees:
//
//   - Deterministic: no randomness, no global state, fixed loop orders.
//   - Fail-fast: sentinel errors (ErrInvalidDimensions,
//     ErrIndexOutOfBounds, ErrDimensionMismatch, ErrZeroRowSum) surfaced
//     via errors.Is; no panics at runtime.
//   - Documented algorithmic complexity per method.
package matrix
