/*
Package bigint implements arbitrary-precision signed integers.

# Representation

[Int] is a sign-magnitude integer:

  - Sign: one of [Negative], [Zero] or [Positive].
    Zero is a distinguished sign, so an Int is zero if and only if its sign is [Zero].
  - Limbs: the magnitude, stored least significant limb first.
    Every limb is in [0, [Base]), where Base = 100,
    so that each limb holds exactly [LimbDigits] = 2 decimal digits.
    The most significant limb is never zero.

The small base keeps the rounding error of floating-point FFT multiplication
far below 0.5 for any realistic operand size,
and makes decimal conversion a matter of regrouping digits.

# Value semantics

Every operation computes its result into freshly allocated limbs,
so an Int never shares storage with another Int.
Methods named XAssign replace the receiver with the result of X,
which makes self-referential calls such as x.SubAssign(x) safe.
The zero value of Int is the number 0.

Int is not safe for concurrent mutation;
concurrent reads of the same value are fine.

# Operations

  - Addition and subtraction propagate carries and borrows limb by limb.
  - Multiplication is delegated to a [Multiplier],
    which convolves the limb vectors with a complex FFT,
    an exact NTT for very large operands,
    or the schoolbook method for short operands,
    depending on its [Parameters].
  - Division is schoolbook long division in base 100.
    The quotient rounds toward zero and the remainder has the sign of the dividend.
  - [GCD] is the Euclidean algorithm on absolute values.
  - [Pow] is exponentiation by repeated squaring.

# Errors

Failures wrap one of [ErrMalformedInput], [ErrDivisionByZero] or [ErrNegativeExponent],
and can be tested with errors.Is.
A failed operation never modifies its receiver.
*/
package bigint
