package lowbits_test

import (
	"fmt"

	"github.com/eehongzhijun/lowbits"
)

// Example walks a value through the full set of bit operations, rendering
// the word after each step.
func Example() {
	n := uint32(0x0A)
	fmt.Printf("0x%X=\n", n)
	fmt.Println(lowbits.Bin(n))

	n = lowbits.Set(n, 2)
	fmt.Printf("bit set 2 -> 0x%X=\n", n)
	fmt.Println(lowbits.Bin(n))

	n = lowbits.Clear(n, 2)
	fmt.Printf("bit clear 2 -> 0x%X=\n", n)
	fmt.Println(lowbits.Bin(n))

	n = lowbits.Toggle(n, 2)
	fmt.Printf("bit toggle 2 -> 0x%X=\n", n)
	fmt.Println(lowbits.Bin(n))

	fmt.Printf("bit check 1 -> %v\n", lowbits.Check(n, 1))

	n = lowbits.SetTo(n, 2, false)
	fmt.Printf("bit set 2 to 0 -> 0x%X=\n", n)
	fmt.Println(lowbits.Bin(n))

	// Output:
	// 0xA=
	// 00000000000000000000000000001010
	// bit set 2 -> 0xE=
	// 00000000000000000000000000001110
	// bit clear 2 -> 0xA=
	// 00000000000000000000000000001010
	// bit toggle 2 -> 0xE=
	// 00000000000000000000000000001110
	// bit check 1 -> true
	// bit set 2 to 0 -> 0xA=
	// 00000000000000000000000000001010
}

func ExampleBin() {
	fmt.Println(lowbits.Bin(10))
	// Output: 00000000000000000000000000001010
}

func ExampleSetTo() {
	n := lowbits.SetTo(0, 31, true)
	fmt.Printf("0x%X\n", n)
	// Output: 0x80000000
}
