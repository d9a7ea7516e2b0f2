package toggle

const (
	// MaxLineLen is the largest line (in bytes, excluding the terminator)
	// an operation will transform. Longer selected lines are rejected with
	// LineTooLongError before anything is written.
	MaxLineLen = 1 << 20 // 1,048,576 bytes

	// MaxBatchLines caps the number of entries accepted by the batch
	// operations. Batches beyond the cap are rejected with
	// ErrInvalidLineRange.
	MaxBatchLines = 128

	// IndentWidth is the fixed indentation unit, in spaces, added by
	// IndentLine and removed (at most) by UnindentLine.
	IndentWidth = 4
)
