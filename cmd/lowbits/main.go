// Command lowbits runs the package demonstrations from the terminal: one
// named demo per routine, selected by argument instead of editing code.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/eehongzhijun/lowbits"
	"github.com/eehongzhijun/lowbits/hexconv"
	"github.com/eehongzhijun/lowbits/layout"
	"github.com/eehongzhijun/lowbits/mathx"
	"github.com/eehongzhijun/lowbits/mem"
	"github.com/eehongzhijun/lowbits/textutil"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		printUsage(out)
		return fmt.Errorf("missing demo name")
	}

	switch args[0] {
	case "bits":
		return demoBits(out)
	case "bin":
		return demoBin(args[1:], out)
	case "hex2dec":
		return demoHex2Dec(args[1:], out)
	case "dec2hex":
		return demoDec2Hex(args[1:], out)
	case "layout":
		return demoLayout(out)
	case "mem":
		return demoMem(out)
	case "coins":
		return demoCoins(args[1:], out)
	case "gcd":
		return demoGCD(args[1:], out)
	case "tokens":
		return demoTokens(args[1:], out)
	default:
		printUsage(out)
		return fmt.Errorf("unknown demo: %s", args[0])
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "usage: lowbits <demo> [args]")
	fmt.Fprintln(out, "demos: bits, bin <n>, hex2dec <hex>, dec2hex <n>, layout, mem, coins <amount>, gcd <a> <b>, tokens <text> <delims>")
}

func demoBits(out io.Writer) error {
	n := uint32(0x0A)
	fmt.Fprintf(out, "0x%X=\n", n)
	if err := lowbits.FprintBin(out, n); err != nil {
		return err
	}

	n = lowbits.Set(n, 2)
	fmt.Fprintf(out, "set(2) -> 0x%X=\n", n)
	if err := lowbits.FprintBin(out, n); err != nil {
		return err
	}

	n = lowbits.Clear(n, 2)
	fmt.Fprintf(out, "clear(2) -> 0x%X=\n", n)
	if err := lowbits.FprintBin(out, n); err != nil {
		return err
	}

	n = lowbits.Toggle(n, 2)
	fmt.Fprintf(out, "toggle(2) -> 0x%X=\n", n)
	if err := lowbits.FprintBin(out, n); err != nil {
		return err
	}

	fmt.Fprintf(out, "check(1) -> %v\n", lowbits.Check(n, 1))

	n = lowbits.SetTo(n, 2, false)
	fmt.Fprintf(out, "setTo(2, 0) -> 0x%X=\n", n)
	return lowbits.FprintBin(out, n)
}

func demoBin(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("bin: expected one decimal value")
	}
	v, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("bin: %w", err)
	}
	return lowbits.FprintBin(out, uint32(v))
}

func demoHex2Dec(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("hex2dec: expected one hex value")
	}
	v, err := hexconv.Parse(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "output:%d\n", v)
	return err
}

func demoDec2Hex(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("dec2hex: expected one decimal value")
	}
	v, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("dec2hex: %w", err)
	}
	_, err = fmt.Fprintf(out, "output:%s\n", hexconv.Format(int32(v)))
	return err
}

// demoLayout walks the three 2D shapes over the same cell values and
// prints each one, plus the shape helpers.
func demoLayout(out io.Writer) error {
	grid, err := layout.GridOf(3, 5, []int{
		0, 1, 1, 0, 1,
		1, 1, 1, 1, 1,
		1, 0, 0, 1, 0,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "size=%d\n", grid.Count())
	fmt.Fprintf(out, "row_size=%d\n", grid.Rows())
	fmt.Fprintf(out, "col_size=%d\n", grid.Cols())

	fmt.Fprintln(out, "contiguous grid:")
	if err := grid.Fprint(out, "%d"); err != nil {
		return err
	}

	rows := layout.NewRowPtrs[int](3, 5)
	if err := rows.CopyFromGrid(grid); err != nil {
		return err
	}
	fmt.Fprintln(out, "row pointers (copied row by row):")
	if err := rows.Fprint(out, "%d"); err != nil {
		return err
	}

	flat := make([]int, grid.Count())
	for r := 0; r < grid.Rows(); r++ {
		copy(flat[r*grid.Cols():], grid.Row(r))
	}
	view, err := layout.ViewOf(flat, grid.Cols())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "view over flat slice:")
	return view.Fprint(out, "%d")
}

// demoMem reproduces the memset pitfall and the memcpy/memmove overlap
// transcript.
func demoMem(out io.Writer) error {
	arr := make([]int32, 10)

	mem.SetBytes(arr, 1)
	fmt.Fprintln(out, "byte-wise fill with 1:")
	if err := layout.Fprint(out, "%d", arr); err != nil {
		return err
	}
	if err := layout.Fprint(out, "%08x", arr); err != nil {
		return err
	}

	mem.Set(arr, 1)
	fmt.Fprintln(out, "element-wise fill with 1:")
	if err := layout.Fprint(out, "%d", arr); err != nil {
		return err
	}

	a := []byte{'a', 'b', 'c', 'd', 'e', 'f', 0, 0, 0, 0}
	b := make([]byte, len(a))
	mem.Move(b, a)

	mem.Copy(a[2:5], a[0:3])
	fmt.Fprintln(out, "forward copy, dst after src:")
	if err := layout.Fprint(out, "%c", a[:6]); err != nil {
		return err
	}

	mem.Move(b[2:5], b[0:3])
	fmt.Fprintln(out, "move, dst after src:")
	return layout.Fprint(out, "%c", b[:6])
}

func demoCoins(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("coins: expected one amount")
	}
	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("coins: %w", err)
	}
	n, ok := mathx.MinCoins(amount, []int{1, 5, 11})
	if !ok {
		return fmt.Errorf("coins: amount %d not reachable", amount)
	}
	_, err = fmt.Fprintf(out, "coins(%d)=%d\n", amount, n)
	return err
}

func demoGCD(args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("gcd: expected two values")
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("gcd: %w", err)
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("gcd: %w", err)
	}
	fmt.Fprintf(out, "gcd=%d\n", mathx.GCD(a, b))
	_, err = fmt.Fprintf(out, "lcm=%d\n", mathx.LCM(a, b))
	return err
}

func demoTokens(args []string, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("tokens: expected text and delimiters")
	}
	for _, tok := range textutil.TokenizeLower(args[0], args[1]) {
		if _, err := fmt.Fprintf(out, "token=%s\n", tok); err != nil {
			return err
		}
	}
	return nil
}
