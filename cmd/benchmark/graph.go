package main

import (
	"github.com/pkg/errors"

	"github.com/delaneyj/tagparty/tracked"
)

type source struct {
	value *tracked.Field[int]
}

type node struct {
	value *tracked.Computed[int]
}

// graph is w independent chains of h computeds hanging off one source.
type graph struct {
	sys   *tracked.System
	src   *source
	nodes []*node
	tails []*node
}

func newGraph(sys *tracked.System, w, h int) (*graph, error) {
	src := &source{}
	value, err := tracked.NewField(sys, src, "value", 1)
	if err != nil {
		return nil, err
	}
	src.value = value

	g := &graph{sys: sys, src: src}
	for i := 0; i < w; i++ {
		read := func() (int, error) { return src.value.Get(), nil }
		var tail *node
		for j := 0; j < h; j++ {
			prev := read
			n := &node{}
			c, err := tracked.NewComputed(sys, n, "value", func() (int, error) {
				v, err := prev()
				if err != nil {
					return 0, err
				}
				return v + 1, nil
			})
			if err != nil {
				return nil, errors.Wrapf(err, "chain %d node %d", i, j)
			}
			n.value = c
			read = c.Get
			tail = n
			g.nodes = append(g.nodes, n)
		}
		if tail != nil {
			g.tails = append(g.tails, tail)
		}
	}
	return g, nil
}

// render reads every chain tail, the way a renderer would read the leaves of
// a view, and returns the values it saw.
func (g *graph) render() ([]int, error) {
	values := make([]int, 0, len(g.tails))
	for _, tail := range g.tails {
		v, err := tail.value.Get()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if len(g.tails) == 0 {
		values = append(values, g.src.value.Get())
	}
	return values, nil
}
