package linkage

import "math/big"

// Value is an exact integer result. Values are computed in arbitrary
// precision; IsInt64 tells the caller whether the value fits the normal
// int64 output width or must be reported through its decimal String form.
//
// The zero Value is 0.
type Value struct {
	n *big.Int
}

// NewValue returns v as a Value.
func NewValue(v int64) Value {
	return Value{n: big.NewInt(v)}
}

// Product multiplies factors without any intermediate truncation. The empty
// product is 1.
func Product(factors ...int64) Value {
	p := big.NewInt(1)
	var f big.Int
	for _, v := range factors {
		p.Mul(p, f.SetInt64(v))
	}
	return Value{n: p}
}

func (v Value) int() *big.Int {
	if v.n == nil {
		return new(big.Int)
	}
	return v.n
}

// IsInt64 reports whether v lies within the int64 range. The check is done
// on the exact value.
func (v Value) IsInt64() bool { return v.int().IsInt64() }

// Int64 returns v and true if it fits in an int64, and 0 and false otherwise.
func (v Value) Int64() (int64, bool) {
	n := v.int()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// Big returns a copy of v as a *big.Int.
func (v Value) Big() *big.Int { return new(big.Int).Set(v.int()) }

// Cmp compares v and w and returns -1, 0 or +1.
func (v Value) Cmp(w Value) int { return v.int().Cmp(w.int()) }

// String returns the exact decimal representation of v.
func (v Value) String() string { return v.int().String() }

// MarshalJSON encodes v as a JSON number with every digit preserved.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}
