package common

// WipeByteArray overwrites b with zeros so secrets such as typed passwords
// do not linger in memory. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
