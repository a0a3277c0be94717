// Package basics holds the small arithmetic helpers shown by the basics
// subcommand.
package basics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBits is returned when three "bits" add up to more than 3
var ErrInvalidBits = errors.New("invalid parameters")

// maxFactorialInput is the largest n whose factorial fits in a uint64
const maxFactorialInput = 20

// FactorialIter computes n! iteratively. FactorialIter(0) is 0.
func FactorialIter(n uint32) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	if n > maxFactorialInput {
		return 0, fmt.Errorf("factorial of %d overflows uint64", n)
	}

	result := uint64(n)
	for i := uint64(1); i < uint64(n); i++ {
		result *= i
	}
	return result, nil
}

// Add3BitsBool adds three single-bit values and returns (carry, sum)
func Add3BitsBool(a, b, c bool) (carry, sum bool) {
	total := boolToInt(a) + boolToInt(b) + boolToInt(c)
	return total >= 2, total%2 == 1
}

// Add3BitsUint8 adds three bits given as 0/1 bytes and returns (carry, sum)
func Add3BitsUint8(a, b, c uint8) (carry, sum uint8, err error) {
	total := int(a) + int(b) + int(c)
	if total > 3 {
		return 0, 0, fmt.Errorf("%w: %d+%d+%d", ErrInvalidBits, a, b, c)
	}
	if total >= 2 {
		carry = 1
	}
	if total%2 == 1 {
		sum = 1
	}
	return carry, sum, nil
}

// CelsiusToFahrenheit converts a temperature
func CelsiusToFahrenheit(celsius float32) float32 {
	return 1.8*celsius + 32
}

// Average returns the arithmetic mean of values
func Average(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("average of no values")
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// MinMax returns the smallest and largest of values
func MinMax(values ...float64) (minimum, maximum float64, err error) {
	if len(values) == 0 {
		return 0, 0, errors.New("min/max of no values")
	}
	minimum, maximum = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		minimum = math.Min(minimum, v)
		maximum = math.Max(maximum, v)
	}
	return minimum, maximum, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
