package selection

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/dialpick/internal/core/catalog"
)

type recordingScroller struct {
	rows []int
	err  error
}

func (r *recordingScroller) ScrollToRow(row int) error {
	if r.err != nil {
		return r.err
	}
	r.rows = append(r.rows, row)
	return nil
}

func offsetsOf(positions map[int]float64) *OffsetMap {
	m := NewOffsetMap()
	for k, y := range positions {
		m.Set(k, y)
	}
	return m
}

func TestNavigator_Resolve(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())
	offsets := offsetsOf(map[int]float64{0: 10, 1: 30, 2: 50})

	tests := []struct {
		name string
		y    float64
		want int
	}{
		{name: "exact", y: 30, want: 1},
		{name: "above first", y: -100, want: 0},
		{name: "below last", y: 1000, want: 2},
		{name: "nearer lower", y: 19, want: 0},
		{name: "nearer upper", y: 21, want: 1},
		{name: "midpoint goes to lower index", y: 20, want: 0},
		{name: "second midpoint", y: 40, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 3 {
				got, ok := nav.Resolve(tt.y, offsets)
				require.True(t, ok)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNavigator_ResolvePartialMap(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())

	got, ok := nav.Resolve(0, offsetsOf(map[int]float64{2: 50}))
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestNavigator_EmptyMapIsNoop(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())
	plan := Build([]catalog.Entry{albania, brazil}, nil)

	_, ok := nav.Resolve(10, NewOffsetMap())
	assert.False(t, ok)

	_, ok = nav.Request(10, NewOffsetMap(), plan)
	assert.False(t, ok)
	assert.Equal(t, -1, nav.LastSection())
}

func TestNavigator_RequestDebounces(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())
	plan := Build([]catalog.Entry{albania, algeria, brazil}, nil)
	offsets := offsetsOf(map[int]float64{0: 0, 1: 10})

	req, ok := nav.Request(1, offsets, plan)
	require.True(t, ok)
	assert.Equal(t, ScrollRequest{Row: 1, Section: 0, Header: "A", Seq: 1}, req)

	_, ok = nav.Request(2, offsets, plan)
	assert.False(t, ok, "same section twice in a row")

	req, ok = nav.Request(9, offsets, plan)
	require.True(t, ok)
	assert.Equal(t, ScrollRequest{Row: 4, Section: 1, Header: "B", Seq: 2}, req)

	nav.Reset()
	_, ok = nav.Request(9, offsets, plan)
	assert.True(t, ok, "reset clears the debounce")
}

func TestNavigator_TargetSkipsDebounce(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())
	plan := Build([]catalog.Entry{albania, brazil}, nil)

	_, ok := nav.RequestSection(1, plan)
	require.True(t, ok)
	_, ok = nav.RequestSection(1, plan)
	require.False(t, ok)

	req, ok := nav.Target(1, plan)
	require.True(t, ok)
	assert.Equal(t, 3, req.Row)
	assert.Equal(t, uint64(2), req.Seq)
	assert.Equal(t, 1, nav.LastSection())
}

func TestNavigator_RequestRejectsOlderOffsets(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())
	plan := Build([]catalog.Entry{albania}, nil)
	plan.generation = 2

	offsets := offsetsOf(map[int]float64{0: 0})
	offsets.generation = 1

	_, ok := nav.Request(0, offsets, plan)
	assert.False(t, ok)
}

func TestNavigator_RequestSectionOutOfRange(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())
	plan := Build([]catalog.Entry{albania}, nil)

	_, ok := nav.RequestSection(4, plan)
	assert.False(t, ok)
}

func TestNavigator_Apply(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())
	plan := Build([]catalog.Entry{albania, algeria, brazil}, nil)

	req, ok := nav.RequestSection(1, plan)
	require.True(t, ok)

	s := &recordingScroller{}
	assert.True(t, nav.Apply(req, plan, s))
	assert.Equal(t, []int{4}, s.rows)
}

func TestNavigator_ApplyLogsOnlyDrops(t *testing.T) {
	var buf bytes.Buffer
	nav := NewNavigator(zerolog.New(&buf).Level(zerolog.DebugLevel))
	plan := Build([]catalog.Entry{albania, algeria, brazil}, nil)

	req, ok := nav.RequestSection(1, plan)
	require.True(t, ok)

	s := &recordingScroller{}
	require.True(t, nav.Apply(req, plan, s))
	assert.Empty(t, buf.String(), "delivered scrolls are not logged")

	req.Seq = 0
	require.False(t, nav.Apply(req, plan, s))
	assert.Contains(t, buf.String(), "scroll dropped: superseded")
	assert.Contains(t, buf.String(), `"latest":1`)
}

func TestNavigator_ApplyDropsStale(t *testing.T) {
	var buf bytes.Buffer
	nav := NewNavigator(zerolog.New(&buf).Level(zerolog.DebugLevel))
	plan := Build([]catalog.Entry{albania, algeria, brazil}, nil)

	req, ok := nav.RequestSection(1, plan)
	require.True(t, ok)

	narrowed := Build([]catalog.Entry{brazil}, nil)
	narrowed.generation = plan.generation + 1

	s := &recordingScroller{}
	assert.False(t, nav.Apply(req, narrowed, s))
	assert.Empty(t, s.rows)
	assert.Contains(t, buf.String(), ErrStaleIndex.Error())
}

func TestNavigator_ApplyDropsSuperseded(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())
	plan := Build([]catalog.Entry{albania, brazil, canada}, nil)

	first, ok := nav.RequestSection(1, plan)
	require.True(t, ok)
	second, ok := nav.RequestSection(2, plan)
	require.True(t, ok)

	s := &recordingScroller{}
	assert.False(t, nav.Apply(first, plan, s))
	assert.True(t, nav.Apply(second, plan, s))
	assert.Equal(t, []int{5}, s.rows)
}

func TestNavigator_ApplyDropsOutOfRange(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())
	plan := Build([]catalog.Entry{albania}, nil)

	req, ok := nav.RequestSection(0, plan)
	require.True(t, ok)
	req.Row = 99

	s := &recordingScroller{}
	assert.False(t, nav.Apply(req, plan, s))
	assert.Empty(t, s.rows)
}

func TestNavigator_ApplySwallowsScrollerError(t *testing.T) {
	nav := NewNavigator(zerolog.Nop())
	plan := Build([]catalog.Entry{albania}, nil)

	req, ok := nav.RequestSection(0, plan)
	require.True(t, ok)

	s := &recordingScroller{err: errors.New("view detached")}
	assert.False(t, nav.Apply(req, plan, s))
}

func TestScrollerFunc(t *testing.T) {
	var got int
	s := ScrollerFunc(func(row int) error {
		got = row
		return nil
	})

	require.NoError(t, s.ScrollToRow(7))
	assert.Equal(t, 7, got)
}
