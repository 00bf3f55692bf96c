package collection_test

import (
	"testing"

	"github.com/atelierhq/atelier/pkg/collection"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	doubled := collection.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
}

func TestFilter(t *testing.T) {
	evens := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, evens)
}

func TestGroupBy(t *testing.T) {
	groups := collection.GroupBy([]int{1, 2, 3, 4, 5}, func(n int) int { return n % 2 })
	assert.Equal(t, []int{2, 4}, groups[0])
	assert.Equal(t, []int{1, 3, 5}, groups[1])
}

func TestSortByIsStable(t *testing.T) {
	type row struct {
		id  int
		qty int
	}
	in := []row{{1, 5}, {2, 7}, {3, 5}, {4, 7}}

	sorted := collection.SortBy(in, func(a, b row) bool { return a.qty > b.qty })

	// Equal quantities keep their input order.
	assert.Equal(t, []row{{2, 7}, {4, 7}, {1, 5}, {3, 5}}, sorted)
	// Input is untouched.
	assert.Equal(t, []row{{1, 5}, {2, 7}, {3, 5}, {4, 7}}, in)
}

func TestTake(t *testing.T) {
	assert.Equal(t, []int{1, 2}, collection.Take([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1, 2, 3}, collection.Take([]int{1, 2, 3}, 10))
	assert.Nil(t, collection.Take([]int{1, 2, 3}, -1))
}

func TestSum(t *testing.T) {
	total := collection.Sum([]float64{1.5, 2.5, 3}, func(v float64) float64 { return v })
	assert.InDelta(t, 7.0, total, 1e-9)
}

func TestKeyBy(t *testing.T) {
	type item struct {
		ID   uint
		Name string
	}
	m := collection.KeyBy([]item{{1, "a"}, {2, "b"}}, func(i item) uint { return i.ID })
	assert.Equal(t, "a", m[1].Name)
	assert.Equal(t, "b", m[2].Name)
}
