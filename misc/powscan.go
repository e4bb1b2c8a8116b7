package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	intpow "github.com/varasto/intpow"
)

// Scratch tool for poking at power overflow boundaries. It was used to sanity
// check the exponent limits baked into the checked paths (things like 34!
// being the last factorial that fits a U128, or (-2)^127 landing exactly on
// MinI128) before they were frozen into the tests. Kept with the repository
// because it's still the quickest way to eyeball a boundary when tweaking the
// ladder code.

const usage = `Power boundary scanner

Usage: powscan limits <base>
       powscan pow <base> <exp>
       powscan fact <max-n>`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	cmd := os.Args[1]

	switch cmd {
	case "limits":
		base, err := strconv.ParseInt(os.Args[2], 10, 64)
		if err != nil {
			return err
		}
		return scanLimits(base)

	case "pow":
		if len(os.Args) < 4 {
			fmt.Println(usage)
			return fmt.Errorf("missing args")
		}
		baseStr := os.Args[2]
		exp, err := strconv.ParseUint(os.Args[3], 10, 32)
		if err != nil {
			return err
		}
		return showPow(baseStr, uint(exp))

	case "fact":
		maxN, err := strconv.ParseUint(os.Args[2], 10, 64)
		if err != nil {
			return err
		}
		return scanFactorials(maxN)

	default:
		return fmt.Errorf("command must be limits, pow, fact")
	}
}

// scanLimits walks the exponent up for every kind until the checked path
// reports overflow, printing the largest safe exponent per kind.
func scanLimits(base int64) error {
	type limit struct {
		Kind    string
		LastExp int
		Value   string
	}
	var limits []limit

	scan := func(k intpow.Kind, safe func(exp int) (string, bool)) {
		last, val := -1, ""
		for exp := 0; exp <= 256; exp++ {
			v, ok := safe(exp)
			if !ok {
				break
			}
			last, val = exp, v
		}
		limits = append(limits, limit{Kind: k.String(), LastExp: last, Value: val})
	}

	scan(intpow.KindInt8, func(exp int) (string, bool) {
		v, ok := intpow.PowOK(int8(base), exp)
		return fmt.Sprint(v), ok
	})
	scan(intpow.KindInt16, func(exp int) (string, bool) {
		v, ok := intpow.PowOK(int16(base), exp)
		return fmt.Sprint(v), ok
	})
	scan(intpow.KindInt32, func(exp int) (string, bool) {
		v, ok := intpow.PowOK(int32(base), exp)
		return fmt.Sprint(v), ok
	})
	scan(intpow.KindInt64, func(exp int) (string, bool) {
		v, ok := intpow.PowOK(base, exp)
		return fmt.Sprint(v), ok
	})
	scan(intpow.KindInt128, func(exp int) (string, bool) {
		v, ok := intpow.I128From64(base).PowOK(uint(exp))
		return v.String(), ok
	})

	if base >= 0 {
		scan(intpow.KindUint8, func(exp int) (string, bool) {
			v, ok := intpow.PowOK(uint8(base), exp)
			return fmt.Sprint(v), ok
		})
		scan(intpow.KindUint16, func(exp int) (string, bool) {
			v, ok := intpow.PowOK(uint16(base), exp)
			return fmt.Sprint(v), ok
		})
		scan(intpow.KindUint32, func(exp int) (string, bool) {
			v, ok := intpow.PowOK(uint32(base), exp)
			return fmt.Sprint(v), ok
		})
		scan(intpow.KindUint64, func(exp int) (string, bool) {
			v, ok := intpow.PowOK(uint64(base), exp)
			return fmt.Sprint(v), ok
		})
		scan(intpow.KindUint128, func(exp int) (string, bool) {
			v, ok := intpow.U128From64(uint64(base)).PowOK(uint(exp))
			return v.String(), ok
		})
	}

	spew.Dump(limits)
	return nil
}

func showPow(baseStr string, exp uint) error {
	base, acc, err := intpow.U128FromString(baseStr)
	if err != nil {
		return err
	}
	if !acc {
		return fmt.Errorf("base %s out of u128 range", baseStr)
	}

	wrapped := base.Pow(exp)
	smart := base.SmartPow(exp)
	checked, cerr := base.PowChecked(exp)

	fmt.Printf("%s^%d (wrap)  == %s\n", base, exp, wrapped)
	fmt.Printf("%s^%d (smart) == %s\n", base, exp, smart)
	if cerr != nil {
		fmt.Printf("%s^%d (checked) overflows: %v\n", base, exp, cerr)
	} else {
		fmt.Printf("%s^%d (checked) == %s\n", base, exp, checked)
	}

	hi, lo := wrapped.Raw()
	fmt.Printf("raw: U128{hi: %#x, lo: %#x}\n", hi, lo)
	return nil
}

func scanFactorials(maxN uint64) error {
	for n := uint64(0); n <= maxN; n++ {
		v, ok := intpow.FactorialU128(n)
		if !ok {
			fmt.Printf("%d! does not fit a u128 (big: %s)\n", n, intpow.Factorial(n))
			continue
		}
		fmt.Printf("%d! == %s\n", n, v)
	}
	return nil
}
