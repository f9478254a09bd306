package tags_test

import (
	"testing"

	"github.com/delaneyj/tagparty/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockIsMonotonic(t *testing.T) {
	c := tags.NewClock()
	assert.Equal(t, tags.Initial, c.Current())

	prev := c.Current()
	for i := 0; i < 100; i++ {
		next := c.Bump()
		assert.Greater(t, next, prev)
		assert.Equal(t, next, c.Current())
		prev = next
	}
}

func TestDirtyingAdvancesClock(t *testing.T) {
	c := tags.NewClock()
	tag := tags.NewDirtyableTag(c)

	before := c.Current()
	tag.Dirty()
	assert.Equal(t, before+1, c.Current())
	assert.Equal(t, c.Current(), tag.Value())
}

func TestFreshTagsAreValid(t *testing.T) {
	c := tags.NewClock()
	c.Bump()
	a, b := tags.NewDirtyableTag(c), tags.NewDirtyableTag(c)

	for name, tag := range map[string]tags.Tag{
		"const":     tags.Const,
		"dirtyable": a,
		"combined":  tags.Combine(a, b),
		"updatable": tags.NewUpdatableTag(a),
	} {
		assert.True(t, tag.Validate(tag.Value()), name)
	}
}

func TestDirtyInvalidatesSnapshot(t *testing.T) {
	c := tags.NewClock()
	tag := tags.NewDirtyableTag(c)

	snapshot := tag.Value()
	require.True(t, tag.Validate(snapshot))

	tag.Dirty()
	assert.False(t, tag.Validate(snapshot), "tag is invalidated after a write")

	snapshot = tag.Value()
	assert.True(t, tag.Validate(snapshot), "tag is valid on the second check")
}

func TestUnrelatedDirtyKeepsSnapshotValid(t *testing.T) {
	c := tags.NewClock()
	a, b := tags.NewDirtyableTag(c), tags.NewDirtyableTag(c)

	snapshot := a.Value()
	b.Dirty()
	assert.True(t, a.Validate(snapshot))
}

func TestCombineShortcuts(t *testing.T) {
	c := tags.NewClock()
	a := tags.NewDirtyableTag(c)

	assert.True(t, tags.IsConst(tags.Combine()))
	assert.Equal(t, tags.Constant, tags.Combine().Value())
	assert.Same(t, a, tags.Combine(a))

	combined, ok := tags.Combine(a, tags.Const).(*tags.CombinatorTag)
	require.True(t, ok)
	assert.Len(t, combined.Children(), 2)
}

func TestCombinator(t *testing.T) {
	c := tags.NewClock()
	a, b := tags.NewDirtyableTag(c), tags.NewDirtyableTag(c)
	combined := tags.Combine(a, b)

	snapshot := combined.Value()
	assert.True(t, combined.Validate(snapshot))

	a.Dirty()
	assert.False(t, combined.Validate(snapshot))
	assert.Equal(t, a.Value(), combined.Value())

	snapshot = combined.Value()
	assert.True(t, combined.Validate(snapshot))

	b.Dirty()
	assert.False(t, combined.Validate(snapshot))
	assert.Equal(t, b.Value(), combined.Value())
}

func TestCombineCopiesInput(t *testing.T) {
	c := tags.NewClock()
	a, b := tags.NewDirtyableTag(c), tags.NewDirtyableTag(c)
	input := []tags.Tag{a, b}
	combined := tags.Combine(input...)

	input[0] = tags.Const
	snapshot := combined.Value()
	a.Dirty()
	assert.False(t, combined.Validate(snapshot))
}

func TestUpdatableDelegates(t *testing.T) {
	c := tags.NewClock()
	a, b := tags.NewDirtyableTag(c), tags.NewDirtyableTag(c)
	a.Dirty()

	u := tags.NewUpdatableTag(a)
	assert.Equal(t, a.Value(), u.Value())

	snapshot := u.Value()
	u.Update(b)
	assert.Same(t, b, u.Inner())
	assert.True(t, u.Validate(snapshot), "swapping to an older tag keeps the snapshot")

	b.Dirty()
	assert.False(t, u.Validate(snapshot))

	u.Update(nil)
	assert.True(t, tags.IsConst(u.Inner()))
	assert.True(t, u.Validate(snapshot))
}

func TestNilClockUsesDefault(t *testing.T) {
	tag := tags.NewDirtyableTag(nil)
	before := tags.DefaultClock().Current()
	tag.Dirty()
	assert.Greater(t, tags.DefaultClock().Current(), before)
}
