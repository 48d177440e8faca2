package humanid

import (
	"fmt"
	"time"
)

// SuffixFunc produces the optional trailing part of an identifier. An empty
// return value means no suffix part is appended. Failures are the caller's
// problem: Generate never recovers a panicking SuffixFunc.
type SuffixFunc func() string

// Number returns a zero-padded three-digit decimal suffix, "000" through "999".
func Number() string {
	return fmt.Sprintf("%03d", intn(1000))
}

// Number4 returns a zero-padded four-digit decimal suffix, "0000" through "9999".
func Number4() string {
	return fmt.Sprintf("%04d", intn(10000))
}

// Hex returns a two-digit lowercase hexadecimal suffix, "00" through "ff".
func Hex() string {
	return fmt.Sprintf("%02x", intn(256))
}

// Timestamp returns the last four decimal digits of the current millisecond
// epoch time, without zero padding.
func Timestamp() string {
	return fmt.Sprintf("%d", time.Now().UnixMilli()%10000)
}

// Letter returns a single lowercase letter, "a" through "z".
func Letter() string {
	return string(rune('a' + intn(26)))
}
