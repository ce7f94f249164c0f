//go:build !amd64

package simd

func commonPrefixLen(a, b []byte) int {
	return commonPrefixLenChunks(a, b, 8)
}
