package core

import (
	"sort"
	"testing"

	qt "github.com/frankban/quicktest"
)

func sorted(v []int) []int {
	out := append([]int(nil), v...)
	sort.Ints(out)
	return out
}

func TestTopologyNeighbors(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		testName string
		n        int
		columns  int
		index    int
		want     []int
	}{{
		testName: "top-left corner",
		n:        100,
		columns:  10,
		index:    0,
		want:     []int{1, 10},
	}, {
		testName: "top-right corner",
		n:        100,
		columns:  10,
		index:    9,
		want:     []int{8, 19},
	}, {
		testName: "interior",
		n:        100,
		columns:  10,
		index:    55,
		want:     []int{45, 54, 56, 65},
	}, {
		testName: "bottom-left corner",
		n:        100,
		columns:  10,
		index:    90,
		want:     []int{80, 91},
	}, {
		testName: "left edge does not wrap to previous row",
		n:        100,
		columns:  10,
		index:    20,
		want:     []int{10, 21, 30},
	}, {
		testName: "partial row last cell",
		n:        95,
		columns:  10,
		index:    94,
		want:     []int{84, 93},
	}, {
		testName: "partial row first cell",
		n:        95,
		columns:  10,
		index:    90,
		want:     []int{80, 91},
	}, {
		testName: "above the gap in the partial row",
		n:        95,
		columns:  10,
		index:    85,
		want:     []int{75, 84, 86},
	}, {
		testName: "two by two",
		n:        4,
		columns:  2,
		index:    0,
		want:     []int{1, 2},
	}, {
		testName: "single column",
		n:        3,
		columns:  1,
		index:    1,
		want:     []int{0, 2},
	}, {
		testName: "single individual",
		n:        1,
		columns:  10,
		index:    0,
		want:     nil,
	}}
	for _, test := range tests {
		c.Run(test.testName, func(c *qt.C) {
			topo := NewTopology(test.n, test.columns)
			got := sorted(topo.Neighbors(test.index))
			c.Assert(got, qt.DeepEquals, test.want)
		})
	}
}

func TestTopologyNeighborsStayInBounds(t *testing.T) {
	c := qt.New(t)
	for _, shape := range [][2]int{{95, 10}, {100, 10}, {7, 3}, {1, 1}, {13, 4}} {
		topo := NewTopology(shape[0], shape[1])
		for i := 0; i < topo.Len; i++ {
			for _, n := range topo.Neighbors(i) {
				c.Assert(topo.Contains(n), qt.IsTrue, qt.Commentf("n=%d columns=%d index=%d neighbour=%d", shape[0], shape[1], i, n))
				ci, ri := topo.Coords(i)
				cn, rn := topo.Coords(n)
				dist := abs(ci-cn) + abs(ri-rn)
				c.Assert(dist, qt.Equals, 1)
				// Adjacency is symmetric.
				c.Assert(topo.Neighbors(n), qt.Contains, i)
			}
		}
	}
}

func TestTopologyOutOfRange(t *testing.T) {
	c := qt.New(t)
	topo := NewTopology(10, 5)
	c.Assert(topo.Neighbors(-1), qt.IsNil)
	c.Assert(topo.Neighbors(10), qt.IsNil)
	c.Assert(topo.Size(), qt.Equals, Size{W: 5, H: 2})
}

func TestTopologyRows(t *testing.T) {
	c := qt.New(t)
	c.Assert(NewTopology(95, 10).Rows, qt.Equals, 10)
	c.Assert(NewTopology(90, 10).Rows, qt.Equals, 9)
	_, ok := NewTopology(95, 10).Index(5, 9)
	c.Assert(ok, qt.IsFalse)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
