// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// JacobianPoint is an element of the group in Jacobian projective
// coordinates (X, Y, Z), representing the affine point (X/Z^2, Y/Z^3). The
// point at infinity is represented by Z == 0. It is the coordinate system
// all curve arithmetic in curve.go is carried out in to avoid the field
// inversions that affine addition would otherwise require.
type JacobianPoint struct {
	X, Y, Z FieldVal
}

// ToAffine converts p to affine coordinates in place, setting Z to 1.
func (p *JacobianPoint) ToAffine() {
	if p.Z.IsZero() {
		p.X.SetInt(0)
		p.Y.SetInt(0)
		return
	}
	if p.Z.Equals(fieldOne) {
		return
	}

	var zInv, zInvSq FieldVal
	zInv.Set(&p.Z).Inverse()
	zInvSq.SquareVal(&zInv)
	p.X.Mul(&zInvSq)
	p.Y.Mul(&zInvSq).Mul(&zInv)
	p.Z.SetInt(1)
}

// IsInfinity reports whether p is the point at infinity.
func (p *JacobianPoint) IsInfinity() bool {
	return (p.X.IsZero() && p.Y.IsZero()) || p.Z.IsZero()
}

// AddNonConst sets result = p1 + p2. Named to match the reference API;
// "NonConst" signals, as in the original, that the implementation is not
// constant time (true here since FieldVal is math/big backed).
func AddNonConst(p1, p2, result *JacobianPoint) {
	addJacobian(&p1.X, &p1.Y, &p1.Z, &p2.X, &p2.Y, &p2.Z, &result.X, &result.Y, &result.Z)
}

// DoubleNonConst sets result = 2*p.
func DoubleNonConst(p, result *JacobianPoint) {
	doubleJacobian(&p.X, &p.Y, &p.Z, &result.X, &result.Y, &result.Z)
}

// scalarMultJacobian sets result = k*point using a straightforward
// double-and-add. The reference implementation accelerates ScalarBaseMult
// with a precomputed comb of the generator; that precomputed table is large
// hard-coded data not present in this tree's lineage, so base multiplication
// here shares the same generic code path as arbitrary-point multiplication.
// Correctness is identical; only the constant-factor speed differs.
func scalarMultJacobian(k *ModNScalar, point, result *JacobianPoint) {
	scalarMultGeneric(k, point, result)
}

// ScalarMultNonConst is the exported form of scalarMultJacobian.
func ScalarMultNonConst(k *ModNScalar, point, result *JacobianPoint) {
	scalarMultJacobian(k, point, result)
}

// scalarBaseMultJacobian sets result = k*G.
func scalarBaseMultJacobian(k *ModNScalar, result *JacobianPoint) {
	var g JacobianPoint
	bigAffineToJacobian(curveParams.Gx, curveParams.Gy, &g)
	scalarMultGeneric(k, &g, result)
}

// ScalarBaseMultNonConst is the exported form of scalarBaseMultJacobian.
func ScalarBaseMultNonConst(k *ModNScalar, result *JacobianPoint) {
	scalarBaseMultJacobian(k, result)
}

// scalarMultGeneric implements k*point via double-and-add over the 256 bits
// of k, most significant bit first.
func scalarMultGeneric(k *ModNScalar, point, result *JacobianPoint) {
	var acc JacobianPoint
	acc.Z.SetInt(0) // start at the point at infinity

	kBytes := k.Bytes()
	for _, b := range kBytes {
		for bit := 7; bit >= 0; bit-- {
			var doubled JacobianPoint
			DoubleNonConst(&acc, &doubled)
			acc = doubled
			if (b>>uint(bit))&1 == 1 {
				var sum JacobianPoint
				AddNonConst(&acc, point, &sum)
				acc = sum
			}
		}
	}
	*result = acc
}

// isOnCurve reports whether the affine coordinates (x, y) satisfy the curve
// equation y^2 = x^3 + 7 over the field.
func isOnCurve(x, y *FieldVal) bool {
	var y2, x3 FieldVal
	y2.SquareVal(y)
	x3.SquareVal(x).Mul(x)
	x3.Add(new(FieldVal).SetInt(7))
	return y2.Equals(&x3)
}

// DecompressY attempts to compute a y coordinate for the given x coordinate
// such that (x, y) lies on the curve and y has the oddness specified by
// odd. It reports false when x does not correspond to a point on the curve.
func DecompressY(x *FieldVal, odd bool, y *FieldVal) bool {
	// y^2 = x^3 + 7
	var rhs FieldVal
	rhs.SquareVal(x).Mul(x)
	rhs.Add(new(FieldVal).SetInt(7))

	// Since p = 3 (mod 4), a square root (if one exists) is rhs^((p+1)/4).
	candidate := fieldSqrt(&rhs)
	if candidate == nil {
		return false
	}

	var check FieldVal
	check.SquareVal(candidate)
	if !check.Equals(&rhs) {
		return false
	}

	if candidate.IsOddBit() == 1 != odd {
		candidate.Negate(1).Normalize()
	}
	y.Set(candidate)
	return true
}

// fieldSqrtExponent is (p+1)/4, precomputed since the field prime is fixed.
var fieldSqrtExponent = func() *big.Int {
	exp := new(big.Int).Add(fieldPrimeBig, big.NewInt(1))
	return exp.Rsh(exp, 2)
}()

// fieldSqrt returns a square root of val mod p, or nil if val is not a
// quadratic residue. It relies on p ≡ 3 (mod 4), which holds for the
// secp256k1 field prime, so the root is simply val^((p+1)/4) mod p.
func fieldSqrt(val *FieldVal) *FieldVal {
	valBytes := val.Bytes()
	base := new(big.Int).SetBytes(valBytes[:])
	result := new(big.Int).Exp(base, fieldSqrtExponent, fieldPrimeBig)

	var out [32]byte
	resultBytes := result.Bytes()
	copy(out[32-len(resultBytes):], resultBytes)

	var root FieldVal
	root.SetBytes(&out)
	return &root
}
