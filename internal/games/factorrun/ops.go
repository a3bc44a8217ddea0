package factorrun

import (
	"fmt"
	"strconv"
)

// OpKind is the arithmetic a gate applies to the ball count.
type OpKind int

const (
	OpMultiply OpKind = iota
	OpDivide
)

// Op is a gate operation such as "*2" or "/2".
type Op struct {
	Kind   OpKind
	Factor int
}

// ParseOp parses "*k" or "/k" with an integer k >= 2.
func ParseOp(s string) (Op, error) {
	if len(s) < 2 {
		return Op{}, fmt.Errorf("factorrun: invalid operation %q", s)
	}

	var kind OpKind
	switch s[0] {
	case '*':
		kind = OpMultiply
	case '/':
		kind = OpDivide
	default:
		return Op{}, fmt.Errorf("factorrun: invalid operation %q", s)
	}

	k, err := strconv.Atoi(s[1:])
	if err != nil || k < 2 {
		return Op{}, fmt.Errorf("factorrun: invalid factor in operation %q", s)
	}
	return Op{Kind: kind, Factor: k}, nil
}

// Apply returns the ball count after the operation.
// Multiplication saturates at maxBalls, division floors and never goes below 1.
func (o Op) Apply(count, maxBalls int) int {
	switch o.Kind {
	case OpMultiply:
		if count > maxBalls/o.Factor {
			return maxBalls
		}
		return min(count*o.Factor, maxBalls)
	default:
		return max(1, count/o.Factor)
	}
}

// String returns the config form of the operation ("*2").
func (o Op) String() string {
	if o.Kind == OpMultiply {
		return "*" + strconv.Itoa(o.Factor)
	}
	return "/" + strconv.Itoa(o.Factor)
}

// Label returns the on-screen form of the operation ("×2").
func (o Op) Label() string {
	if o.Kind == OpMultiply {
		return "×" + strconv.Itoa(o.Factor)
	}
	return "÷" + strconv.Itoa(o.Factor)
}
