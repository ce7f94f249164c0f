//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// hasAVX2 indicates whether the CPU supports AVX2 (256-bit SIMD). When
// true, wider machine words carry more comparison work per loop iteration
// even in the portable SWAR fallback path, since the CPU's wider load/ALU
// ports make 16-byte-at-a-time XOR-compare cheap relative to its 8-byte
// counterpart.
var hasAVX2 = cpu.X86.HasAVX2

func commonPrefixLen(a, b []byte) int {
	if hasAVX2 && len(a) >= 16 {
		return commonPrefixLenChunks(a, b, 16)
	}
	return commonPrefixLenChunks(a, b, 8)
}
