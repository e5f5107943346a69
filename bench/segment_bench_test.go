package bench

import (
	"strings"
	"testing"

	"github.com/leslieliu-cn/textcheck/internal/segment"
)

// build the sample documents once, reuse in all benches.
var (
	short = strings.Repeat("短句测试。", 100)      // 500 runes, single segment
	long  = strings.Repeat("这是一个测试句子。", 2000) // 18 000 runes, sentence fallthrough
	flat  = strings.Repeat("x", 50_000)       // atomic token, hard cuts only
)

func BenchmarkSplitShort(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = segment.Split(short, 2000)
	}
}

func BenchmarkSplitLong(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = segment.Split(long, 2000)
	}
}

func BenchmarkSplitHardCut(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = segment.Split(flat, 2000)
	}
}
