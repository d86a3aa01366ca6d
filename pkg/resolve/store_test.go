package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ir-printer/engine/pkg/ir"
	"github.com/ir-printer/engine/pkg/resolve"
)

func TestInfoResolutionRoundTrip(t *testing.T) {
	s := resolve.New()
	m := ir.NewInfo("m")

	_, ok := s.Info(m)
	require.False(t, ok)
	require.False(t, s.Visited(m))

	state := ir.WriterState{Line: 3, Column: 7}
	s.ResolveInfo(m, state)

	got, ok := s.Info(m)
	require.True(t, ok)
	require.Equal(t, state, got)
	require.True(t, s.Visited(m))
}

func TestInfoIdentityKeyedNotNameKeyed(t *testing.T) {
	s := resolve.New()
	a := ir.NewInfo("dup")
	b := ir.NewInfo("dup")

	s.ResolveInfo(a, ir.WriterState{Line: 1})

	require.True(t, s.Visited(a))
	require.False(t, s.Visited(b))
}

func TestConditionDeferAndResolve(t *testing.T) {
	s := resolve.New()
	c := ir.NewCondition("c", nil, nil, nil)

	require.False(t, s.IsDeferred(c))
	s.Defer(c)
	require.True(t, s.IsDeferred(c))
	require.Equal(t, []*ir.Condition{c}, s.PendingConditions())

	s.ResolveCondition(c, true)
	require.False(t, s.IsDeferred(c))
	require.Empty(t, s.PendingConditions())

	v, ok := s.Condition(c)
	require.True(t, ok)
	require.True(t, v)
}

func TestDeferIsIdempotent(t *testing.T) {
	s := resolve.New()
	c := ir.NewCondition("c", nil, nil, nil)
	s.Defer(c)
	s.Defer(c)
	require.Len(t, s.PendingConditions(), 1)
}

func TestPendingConditionsPreservesOrder(t *testing.T) {
	s := resolve.New()
	a := ir.NewCondition("a", nil, nil, nil)
	b := ir.NewCondition("b", nil, nil, nil)
	c := ir.NewCondition("c", nil, nil, nil)

	s.Defer(a)
	s.Defer(b)
	s.Defer(c)
	s.ResolveCondition(b, false)

	require.Equal(t, []*ir.Condition{a, c}, s.PendingConditions())
}

func TestPendingConditionsReturnsCopy(t *testing.T) {
	s := resolve.New()
	a := ir.NewCondition("a", nil, nil, nil)
	s.Defer(a)

	pending := s.PendingConditions()
	pending[0] = nil

	require.Equal(t, []*ir.Condition{a}, s.PendingConditions())
}
