package frame

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quasarhq/tabular/pkg/errors"
)

// testFrame builds a frame directly, bypassing Load, so view behavior is
// tested in isolation.
func testFrame(rows [][]float64, columns ...string) *Frame {
	return &Frame{delimiter: ",", columns: columns, rows: rows}
}

func sequentialFrame(n int) *Frame {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(i), float64(i * 10)}
	}
	return testFrame(rows, "a", "b")
}

func TestHeadTail(t *testing.T) {
	f := sequentialFrame(10)

	t.Run("head returns first rows in order", func(t *testing.T) {
		head := f.Head(3)
		assert.Equal(t, [][]float64{{0, 0}, {1, 10}, {2, 20}}, head)
	})

	t.Run("tail returns last rows in order", func(t *testing.T) {
		tail := f.Tail(3)
		assert.Equal(t, [][]float64{{7, 70}, {8, 80}, {9, 90}}, tail)
	})

	t.Run("n larger than row count clamps", func(t *testing.T) {
		assert.Len(t, f.Head(100), 10)
		assert.Len(t, f.Tail(100), 10)
	})

	t.Run("n zero uses default", func(t *testing.T) {
		assert.Len(t, f.Head(0), 5)
		assert.Len(t, f.Tail(0), 5)
	})
}

func TestViewsCopyRows(t *testing.T) {
	f := sequentialFrame(4)

	head := f.Head(1)
	head[0][0] = 999

	again := f.Head(1)
	assert.Equal(t, 0.0, again[0][0], "mutating a view must not touch the frame")
}

func TestFeatureNamesCopy(t *testing.T) {
	f := sequentialFrame(2)

	names := f.FeatureNames()
	names[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, f.FeatureNames())
}

func TestSample(t *testing.T) {
	f := sequentialFrame(7)

	t.Run("indices stay in range", func(t *testing.T) {
		indices, err := f.SampleIndices(1000, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		for _, idx := range indices {
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 7)
		}
	})

	t.Run("fixed seed is reproducible", func(t *testing.T) {
		first, err := f.Sample(10, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		second, err := f.Sample(10, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("n zero uses default", func(t *testing.T) {
		sample, err := f.Sample(0, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Len(t, sample, 5)
	})

	t.Run("empty frame cannot be sampled", func(t *testing.T) {
		empty := testFrame(nil, "a")
		_, err := empty.Sample(3, nil)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeView))
	})
}

func TestDescribeRequiresDetailedMode(t *testing.T) {
	f := sequentialFrame(3)

	_, err := f.Describe()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeView))
}

func TestDescribeEmptyFrame(t *testing.T) {
	f := testFrame(nil, "a", "b")
	f.detailed = true

	_, err := f.Describe()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeView))
}

func TestDuplicateColumns(t *testing.T) {
	t.Run("no duplicates", func(t *testing.T) {
		f := testFrame(nil, "a", "b", "c")
		assert.Empty(t, f.DuplicateColumns())
	})

	t.Run("reports each duplicate once", func(t *testing.T) {
		f := testFrame(nil, "a", "b", "a", "a", "b")
		assert.Equal(t, []string{"a", "b"}, f.DuplicateColumns())
	})
}

func TestConcurrentReads(t *testing.T) {
	f := sequentialFrame(100)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = f.Head(10)
				_ = f.Tail(10)
				_ = f.FeatureNames()
				_, _, _ = f.Size()
			}
		}()
	}
	wg.Wait()
}
