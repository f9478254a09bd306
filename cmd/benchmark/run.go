package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jamiealquiza/tachymeter"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/delaneyj/tagparty/memo"
	"github.com/delaneyj/tagparty/tags"
	"github.com/delaneyj/tagparty/tracked"
)

type result struct {
	name     string
	nodes    int
	ops      int
	calc     *tachymeter.Metrics
	checksum uint64
}

type scenario func(g *graph, iters int, tach *tachymeter.Tachymeter) ([]int, error)

// validateOnly checks a fresh snapshot over and over, nothing is written.
func validateOnly(g *graph, iters int, tach *tachymeter.Tachymeter) ([]int, error) {
	var values []int
	tag, err := g.sys.Track(func() (err error) {
		values, err = g.render()
		return err
	})
	if err != nil {
		return nil, err
	}
	snapshot := tag.Value()

	for i := 0; i < iters; i++ {
		start := time.Now()
		valid := tag.Validate(snapshot)
		tach.AddTime(time.Since(start))
		if !valid {
			return nil, errors.New("snapshot went stale without a write")
		}
	}
	return values, nil
}

// invalidateAndRender writes the source, confirms the snapshot is stale and
// renders again to get a new one.
func invalidateAndRender(g *graph, iters int, tach *tachymeter.Tachymeter) ([]int, error) {
	var values []int
	render := func() (tags.Tag, error) {
		return g.sys.Track(func() (err error) {
			values, err = g.render()
			return err
		})
	}

	tag, err := render()
	if err != nil {
		return nil, err
	}
	snapshot := tag.Value()

	for i := 0; i < iters; i++ {
		start := time.Now()
		g.src.value.Set(g.src.value.Get() + 1)
		if tag.Validate(snapshot) {
			return nil, errors.New("snapshot still valid after a write")
		}
		if tag, err = render(); err != nil {
			return nil, err
		}
		snapshot = tag.Value()
		tach.AddTime(time.Since(start))
	}
	return values, nil
}

// memoHit reads a memoized render repeatedly, every read after the first is
// served from the cache.
func memoHit(g *graph, iters int, tach *tachymeter.Tachymeter) ([]int, error) {
	m := memo.New(g.sys, g.render)
	values, err := m.Get()
	if err != nil {
		return nil, err
	}

	for i := 0; i < iters; i++ {
		start := time.Now()
		values, err = m.Get()
		tach.AddTime(time.Since(start))
		if err != nil {
			return nil, err
		}
	}
	if m.Runs() != 1 {
		return nil, errors.Errorf("memo ran %d times without a write", m.Runs())
	}
	return values, nil
}

func checksum(values []int) uint64 {
	d := xxhash.New()
	for _, v := range values {
		d.WriteString(strconv.Itoa(v))
		d.WriteString(",")
	}
	return d.Sum64()
}

func runAll(logger *zap.Logger, widths, heights []int, iters int) ([]result, error) {
	scenarios := []struct {
		name string
		run  scenario
	}{
		{"validate", validateOnly},
		{"invalidate+render", invalidateAndRender},
		{"memo hit", memoHit},
	}

	var results []result
	for _, s := range scenarios {
		for _, w := range widths {
			for _, h := range heights {
				sys := tracked.NewSystem(
					tracked.WithClock(tags.NewClock()),
					tracked.WithLogger(logger.Named("tracked")),
				)
				g, err := newGraph(sys, w, h)
				if err != nil {
					return nil, errors.Wrapf(err, "building %d * %d graph", w, h)
				}

				tach := tachymeter.New(&tachymeter.Config{Size: iters})
				values, err := s.run(g, iters, tach)
				if err != nil {
					return nil, errors.Wrapf(err, "%s %d * %d", s.name, w, h)
				}

				r := result{
					name:     fmt.Sprintf("%s: %d * %d", s.name, w, h),
					nodes:    len(g.nodes),
					ops:      iters,
					calc:     tach.Calc(),
					checksum: checksum(values),
				}
				logger.Info("benchmark done",
					zap.String("name", r.name),
					zap.Duration("avg", r.calc.Time.Avg),
					zap.Uint64("checksum", r.checksum),
				)
				results = append(results, r)
			}
		}
	}
	return results, nil
}
