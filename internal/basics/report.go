package basics

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Report writes the fixed basics demonstration to w
func Report(w io.Writer) error {
	const n = 10
	fact, err := FactorialIter(n)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Factorial of %d = %s\n", n, humanize.Comma(int64(fact)))

	carry, sum := Add3BitsBool(false, false, true)
	fmt.Fprintf(w, "0+0+1 = (carry %t, sum %t)\n", carry, sum)

	c8, s8, err := Add3BitsUint8(1, 0, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "1+0+1 = (carry %d, sum %d)\n", c8, s8)

	const celsius float32 = 10
	fmt.Fprintf(w, "Temp in C: %g\tTemp in F: %g\n", celsius, CelsiusToFahrenheit(celsius))

	values := []float64{100, 20.5, 49.5, 30}
	avg, err := Average(values...)
	if err != nil {
		return err
	}
	lo, hi, err := MinMax(values...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Values %v: average %g, min %g, max %g\n", values, avg, lo, hi)
	return err
}
