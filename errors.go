package bigint

import "errors"

// ErrDivideByZero is the panic value used by Int.Div and Int.Mod when
// the divisor is zero. The nat-level div/mod treat a zero divisor as a
// programming error instead (a debug-gated panic with a plain string).
var ErrDivideByZero = errors.New("bigint: division by zero")
