package bitvec_test

import (
	"fmt"

	"github.com/katalvlaran/xorsolve/bitvec"
)

// ExampleVector_Xor shows two toggle operations cancelling on a shared bit.
func ExampleVector_Xor() {
	op0 := bitvec.FromIndices(4, 0, 1)
	op1 := bitvec.FromIndices(4, 1, 3)

	state := bitvec.New(4)
	state.Xor(op0)
	state.Xor(op1)

	fmt.Println(state, state.PopCount())
	// Output:
	// 1001 2
}
