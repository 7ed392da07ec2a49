package simplicial_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/phom/simplicial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle returns the closed 2-simplex {0,1,2} appended vertices first.
func triangle() *simplicial.Complex {
	c := simplicial.New()
	c.Append(0)
	c.Append(1)
	c.Append(2)
	c.Append(0, 1)
	c.Append(1, 2)
	c.Append(0, 2)
	c.Append(0, 1, 2)

	return c
}

// TestAppend_IndicesAndDimensions checks stable indices and per-dimension lists.
func TestAppend_IndicesAndDimensions(t *testing.T) {
	c := triangle()

	assert.Equal(t, 7, c.Len())
	assert.Equal(t, 2, c.MaxDimension())
	assert.Equal(t, []int{3, 3, 1}, c.CountByDimension())
	assert.Equal(t, []int{3, 4, 5}, c.SimplicesOfDimension(1))
	assert.Equal(t, []int{6}, c.SimplicesOfDimension(2))
	assert.Empty(t, c.SimplicesOfDimension(3), "out-of-range dimension yields empty")
	assert.Empty(t, c.SimplicesOfDimension(-1))
	assert.Equal(t, 3, c.NumVertices())
}

// TestAppend_SortsVertices ensures the arena stores the canonical ascending order.
func TestAppend_SortsVertices(t *testing.T) {
	c := simplicial.New()
	in := []int{5, 2, 9}
	i := c.Append(in...)

	assert.Equal(t, []int{2, 5, 9}, c.Simplex(i))
	assert.Equal(t, []int{5, 2, 9}, in, "caller slice must not be reordered")
	assert.Equal(t, 2, c.Dimension(i))
	assert.Equal(t, 10, c.NumVertices())
}

// TestZeroValueComplex verifies the zero value behaves like New().
func TestZeroValueComplex(t *testing.T) {
	var c simplicial.Complex
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, -1, c.MaxDimension())
	assert.Equal(t, 0, c.NumVertices())

	c.Append(0)
	assert.Equal(t, 1, c.NumVertices())
}

// TestFacesOf checks face order (omitted position ascending).
func TestFacesOf(t *testing.T) {
	c := triangle()

	assert.Empty(t, c.FacesOf(0), "vertices have no faces")
	assert.Equal(t, []int{1, 0}, c.FacesOf(3), "{0,1} → omit 0 gives {1}, omit 1 gives {0}")
	// {0,1,2}: omit 0 → {1,2}=4, omit 1 → {0,2}=5, omit 2 → {0,1}=3
	assert.Equal(t, []int{4, 5, 3}, c.FacesOf(6))
}

// TestFacesOf_FacesAppendedLater ensures lazy resolution tolerates cofaces before faces.
func TestFacesOf_FacesAppendedLater(t *testing.T) {
	c := simplicial.New()
	e := c.Append(0, 1)
	v0 := c.Append(0)
	v1 := c.Append(1)

	assert.Equal(t, []int{v1, v0}, c.FacesOf(e))
}

// TestFacesOf_Missing records -1 for an absent face.
func TestFacesOf_Missing(t *testing.T) {
	c := simplicial.New()
	c.Append(0)
	e := c.Append(0, 1)

	assert.Equal(t, []int{-1, 0}, c.FacesOf(e))
}

// TestAppend_FrozenPanics verifies the complex is read-only after face resolution.
func TestAppend_FrozenPanics(t *testing.T) {
	c := triangle()
	c.Freeze()

	assert.Panics(t, func() { c.Append(3) })
}

// TestLookup finds simplices regardless of vertex order.
func TestLookup(t *testing.T) {
	c := triangle()

	idx, ok := c.Lookup(2, 0, 1)
	require.True(t, ok)
	assert.Equal(t, 6, idx)

	_, ok = c.Lookup(0, 3)
	assert.False(t, ok)
}

// TestConcurrentReads exercises the once-guarded face resolution from many goroutines.
func TestConcurrentReads(t *testing.T) {
	c := triangle()
	const readers = 32

	var wg sync.WaitGroup
	got := make([][]int, readers)
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			got[r] = c.FacesOf(6)
		}(r)
	}
	wg.Wait()

	for r := 0; r < readers; r++ {
		assert.Equal(t, []int{4, 5, 3}, got[r])
	}
}

// TestValidate covers every violation class and the happy path.
func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		build  func() *simplicial.Complex
		reason simplicial.Reason
		ok     bool
	}{
		{"Closed", triangle, 0, true},
		{"Empty", simplicial.New, 0, true},
		{"MissingFace", func() *simplicial.Complex {
			c := simplicial.New()
			c.Append(0)
			c.Append(1)
			c.Append(0, 1, 2)
			return c
		}, simplicial.ReasonMissingFace, false},
		{"Duplicate", func() *simplicial.Complex {
			c := simplicial.New()
			c.Append(0)
			c.Append(0)
			return c
		}, simplicial.ReasonDuplicate, false},
		{"RepeatedVertex", func() *simplicial.Complex {
			c := simplicial.New()
			c.Append(1)
			c.Append(1, 1)
			return c
		}, simplicial.ReasonBadVertex, false},
		{"NegativeVertex", func() *simplicial.Complex {
			c := simplicial.New()
			c.Append(-1)
			return c
		}, simplicial.ReasonBadVertex, false},
		{"EmptySimplex", func() *simplicial.Complex {
			c := simplicial.New()
			c.Append()
			return c
		}, simplicial.ReasonEmptySimplex, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := simplicial.Validate(tc.build())
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, simplicial.ErrInvalidComplex)
			var ice *simplicial.InvalidComplexError
			require.True(t, errors.As(err, &ice))
			assert.Equal(t, tc.reason, ice.Reason)
			assert.NotEmpty(t, ice.Error())
		})
	}
}

// TestValidate_MissingFaceReportsFace checks the reported face vertices.
func TestValidate_MissingFaceReportsFace(t *testing.T) {
	c := simplicial.New()
	c.Append(0)
	c.Append(1)
	c.Append(0, 1)

	var ice *simplicial.InvalidComplexError
	err := simplicial.Validate(func() *simplicial.Complex {
		c.Append(2)
		c.Append(1, 2)
		c.Append(0, 1, 2) // {0,2} absent
		return c
	}())
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, []int{0, 2}, ice.Face)
	assert.Equal(t, 5, ice.Index)
}
