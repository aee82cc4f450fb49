package bigint

// debug gates precondition assertions for programming errors (a zero
// divisor in nat.div/nat.mod, sub with lhs < rhs) that are otherwise
// left unchecked. Output buffer sizes are not asserted. Release builds of this package are expected
// to flip this to false and let the Go compiler dead-code-eliminate the
// checks; it is left on unconditionally here since there is no
// build-tag plumbing in this repository for a "release" mode, and the
// checks are cheap.
const debug = true
