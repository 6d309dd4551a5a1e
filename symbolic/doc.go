// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package symbolic implements a small canonical algebra over rational
constants, real-valued variables, and a fixed set of arithmetic and
transcendental functions.

It plays the role of the "expression oracle" that the xadd package treats
as an external collaborator: xadd never inspects the internal shape of an
Expr, it only calls String, Linear, FreeVars, Substitute, Eval, Simplify,
AsConstant, AsVar, IsZero and the handful of constructors in this package
(Add, Sub, Mul, ...). A different
algebra backend could be substituted by implementing the same surface.

Expressions are kept in a canonical sum-of-monomials form so that two
expressions that are algebraically equal after expansion produce the same
String output, which is what lets the node store hash-cons leaves
correctly (invariant 1 in the xadd package documentation).
*/
package symbolic
