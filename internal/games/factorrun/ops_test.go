package factorrun

import "testing"

func TestParseOp(t *testing.T) {
	tests := []struct {
		in      string
		want    Op
		wantErr bool
	}{
		{"*2", Op{Kind: OpMultiply, Factor: 2}, false},
		{"*3", Op{Kind: OpMultiply, Factor: 3}, false},
		{"/2", Op{Kind: OpDivide, Factor: 2}, false},
		{"/10", Op{Kind: OpDivide, Factor: 10}, false},
		{"", Op{}, true},
		{"*", Op{}, true},
		{"+2", Op{}, true},
		{"*1", Op{}, true},
		{"/abc", Op{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseOp(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseOp(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseOp(%q) = %+v, expected %+v", tc.in, got, tc.want)
			}
			if !tc.wantErr && got.String() != tc.in {
				t.Errorf("String() = %q, expected %q", got.String(), tc.in)
			}
		})
	}
}

func TestOpApply(t *testing.T) {
	const maxBalls = 100000

	tests := []struct {
		name     string
		op       string
		count    int
		expected int
	}{
		{"one times three", "*3", 1, 3},
		{"five halved floors", "/2", 5, 2},
		{"one halved stays one", "/2", 1, 1},
		{"three thirds", "/3", 3, 1},
		{"doubling", "*2", 21, 42},
		{"saturates at max", "*2", 60000, maxBalls},
		{"exact max", "*2", 50000, maxBalls},
		{"max stays max", "*3", maxBalls, maxBalls},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			op, err := ParseOp(tc.op)
			if err != nil {
				t.Fatal(err)
			}
			if got := op.Apply(tc.count, maxBalls); got != tc.expected {
				t.Errorf("%s applied to %d = %d, expected %d", tc.op, tc.count, got, tc.expected)
			}
		})
	}
}

func TestDivideNeverBelowOne(t *testing.T) {
	for factor := 2; factor <= 5; factor++ {
		op := Op{Kind: OpDivide, Factor: factor}
		for count := 1; count <= 50; count++ {
			if got := op.Apply(count, 100000); got < 1 {
				t.Fatalf("/%d applied to %d = %d, must be >= 1", factor, count, got)
			}
		}
	}
}

func TestOpLabel(t *testing.T) {
	if got := (Op{Kind: OpMultiply, Factor: 2}).Label(); got != "×2" {
		t.Errorf("Label() = %q, expected ×2", got)
	}
	if got := (Op{Kind: OpDivide, Factor: 2}).Label(); got != "÷2" {
		t.Errorf("Label() = %q, expected ÷2", got)
	}
}
