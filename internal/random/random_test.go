package random_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ffnet/internal/random"
)

const testSeed = 0x5eed5eed5eed5eed

func TestUint64_ReferenceSequence(t *testing.T) {
	g := random.New(testSeed)

	want := []uint64{2913088907571453634, 672759199187159405, 9213735149741967689}
	for i, w := range want {
		assert.Equal(t, w, g.Uint64(), "draw %d", i)
	}
}

func TestUint64_SmallSeed(t *testing.T) {
	g := random.New(42)

	assert.Equal(t, uint64(0x152a), g.Uint64())
	assert.Equal(t, uint64(0xa8020), g.Uint64())
	assert.Equal(t, uint64(0x54a9560), g.Uint64())
	assert.Equal(t, uint64(0x2a002802a), g.Uint64())
}

func TestUint64_StateCarriesIntoHighWord(t *testing.T) {
	g := random.New(testSeed)
	hi, lo := g.State()
	assert.Zero(t, hi)
	assert.Equal(t, uint64(testSeed), lo)

	g.Uint64()
	hi, _ = g.State()
	assert.NotZero(t, hi)
}

func TestNew_ZeroSeed(t *testing.T) {
	g := random.New(0)

	assert.Equal(t, uint64(9639038808666919851), g.Uint64())
	assert.NotZero(t, g.Uint64())
}

func TestDefault_Shared(t *testing.T) {
	assert.Same(t, random.Default(), random.Default())
}

func TestUint64_Concurrent(t *testing.T) {
	g := random.New(testSeed)
	ref := random.New(testSeed)

	const workers, draws = 8, 100
	seen := make(chan uint64, workers*draws)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < draws; i++ {
				seen <- g.Uint64()
			}
		}()
	}
	wg.Wait()
	close(seen)

	want := make(map[uint64]int)
	for i := 0; i < workers*draws; i++ {
		want[ref.Uint64()]++
	}
	got := make(map[uint64]int)
	for v := range seen {
		got[v]++
	}
	assert.Equal(t, want, got)
}

// TestShuffle_Fixed shuffles 0..9 with a fixed seed.
func TestShuffle_Fixed(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := random.Shuffle(random.New(testSeed), s)

	assert.Equal(t, []int{2, 8, 4, 0, 9, 7, 3, 6, 5, 1}, got)

	sorted := append([]int(nil), got...)
	sort.Ints(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
}

func TestShuffle_SmallSeed(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, []int{1, 3, 4, 7, 8, 6, 2, 5, 9, 0}, random.Shuffle(random.New(42), s))
}

func TestShuffle_PreservesMultiset(t *testing.T) {
	g := random.New(20261014)

	for n := 0; n <= 33; n++ {
		s := make([]string, n)
		for i := range s {
			s[i] = string(rune('a' + i%5))
		}
		want := append([]string(nil), s...)

		got := random.Shuffle(g, s)
		require.Len(t, got, n)
		assert.ElementsMatch(t, want, got)
	}
}

func TestShuffle_TrivialLengthsDrawNothing(t *testing.T) {
	g := random.New(testSeed)

	assert.Empty(t, random.Shuffle(g, []int{}))
	assert.Equal(t, []int{7}, random.Shuffle(g, []int{7}))

	// No draws consumed: the next draw is still the first of the sequence.
	assert.Equal(t, uint64(2913088907571453634), g.Uint64())
}

// TestShuffle_NoFixedPoints checks that every element moves,
// since each position is swapped with a strictly lower one.
func TestShuffle_NoFixedPoints(t *testing.T) {
	g := random.New(testSeed)

	for trial := 0; trial < 50; trial++ {
		s := []int{0, 1, 2, 3, 4, 5, 6, 7}
		random.Shuffle(g, s)
		for i, v := range s {
			assert.NotEqual(t, i, v, "trial %d", trial)
		}
	}
}
