/*
Package bigint implements arbitrary-precision signed integer arithmetic.

Magnitudes are stored little-endian as slices of 32-bit limbs (a Word).
All arithmetic operations — Add, Sub, Mul, Div, Mod, Cmp — operate
directly on these limb slices; there is no floating-point mantissa and
no dependency on math/big.

The zero value for an Int corresponds to 0. New values can be declared
in the usual way and denote 0 without further initialization:

    var x Int // x is an Int of value 0

Setters, numeric operations and predicates are represented as methods of
the form:

    func (z *Int) SetV(v V) *Int                 // z = v
    func (z *Int) Unary(x *Int) *Int             // z = unary x
    func (z *Int) Binary(x, y *Int) *Int         // z = x binary y
    func (x *Int) Pred() P                       // p = pred(x)

For unary and binary operations, the result is the receiver (named z);
if it aliases one of the operands x or y, that is safe and its storage
may be reused. For instance, given three *Int values a, b and c:

    c.Add(a, b)

computes a + b and stores the result in c, overwriting whatever value
c held before. Operations permit aliasing of parameters, so it is fine
to write

    sum.Add(sum, x)

to accumulate values x into sum without extra allocation.

Division (Div) truncates toward zero; the remainder (Mod) takes the
sign of the dividend. These are truncated-division semantics, not
flooring or Euclidean division — see DESIGN.md for the rationale.

Package-internal limb arithmetic is unexported: callers only ever see
Int. This mirrors how math/big keeps its nat type private behind Int,
Float and Rat.
*/
package bigint
