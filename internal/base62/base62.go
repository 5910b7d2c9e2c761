// Package base62 encodes unsigned integers using the alphabet 0-9A-Za-z.
package base62

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Encode returns the base-62 representation of n. The result never contains
// '+', '/', '-' or '_', so it is disjoint from base-64 style alphabets on
// those characters.
func Encode(n uint64) string {
	if n == 0 {
		return "0"
	}
	// 11 digits cover the full uint64 range.
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = alphabet[n%62]
		n /= 62
	}
	return string(buf[i:])
}
