package scheduler

import (
	"testing"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffort(t *testing.T) {
	policy := DefaultPolicy()
	task := makeTask("t", "c", domain.PriorityNormal)
	assert.Equal(t, 1.5, Effort(task, policy))
	assert.Equal(t, 2.0, Effort(withHours(task, 2), policy))
	assert.Equal(t, 1.5, Effort(withHours(task, 0), policy), "zero estimate falls back")
	assert.Equal(t, 1.5, Effort(withHours(task, -1), policy), "negative estimate falls back")
}

func TestAllocate_FallbackEffortTwoPerDay(t *testing.T) {
	sorted := scoredInOrder(
		makeTask("T1", "CS101", ""),
		makeTask("T2", "CS101", ""),
		makeTask("T3", "CS101", ""),
		makeTask("T4", "CS101", ""),
	)

	alloc := Allocate(sorted, 3, DefaultPolicy())

	require.Len(t, alloc.Days, 2)
	assert.Equal(t, "Monday", alloc.Days[0].Day)
	assert.Equal(t, []string{"T1", "T2"}, titlesOf(alloc.Days[0].Tasks))
	assert.InDelta(t, 3.0, alloc.Days[0].Hours, 1e-9)
	assert.Equal(t, "Tuesday", alloc.Days[1].Day)
	assert.Equal(t, []string{"T3", "T4"}, titlesOf(alloc.Days[1].Tasks))
	assert.Empty(t, alloc.Unassigned)
}

func TestAllocate_EmptyInput(t *testing.T) {
	alloc := Allocate(nil, 3, DefaultPolicy())
	assert.Empty(t, alloc.Days)
	assert.Empty(t, alloc.Unassigned)
}

func TestAllocate_BudgetBelowThreshold(t *testing.T) {
	sorted := scoredInOrder(withHours(makeTask("tiny", "c", ""), 0.1))

	alloc := Allocate(sorted, 0.4, DefaultPolicy())

	assert.Empty(t, alloc.Days)
	require.Len(t, alloc.Unassigned, 1)
	assert.Equal(t, "tiny", alloc.Unassigned[0].ID)
}

func TestAllocate_NoSkipAheadPreservesOrder(t *testing.T) {
	// B does not fit after A; the day closes rather than pulling C forward.
	sorted := scoredInOrder(
		withHours(makeTask("A", "c", ""), 2),
		withHours(makeTask("B", "c", ""), 2),
		withHours(makeTask("C", "c", ""), 0.5),
	)

	alloc := Allocate(sorted, 3, DefaultPolicy())

	require.Len(t, alloc.Days, 2)
	assert.Equal(t, []string{"A"}, titlesOf(alloc.Days[0].Tasks))
	assert.Equal(t, []string{"B", "C"}, titlesOf(alloc.Days[1].Tasks))
}

func TestAllocate_TinyTaskBelowThresholdStillPlaced(t *testing.T) {
	sorted := scoredInOrder(
		withHours(makeTask("A", "c", ""), 2.4),
		withHours(makeTask("tiny", "c", ""), 0.25),
	)

	alloc := Allocate(sorted, 3, DefaultPolicy())

	require.Len(t, alloc.Days, 1)
	assert.Equal(t, []string{"A", "tiny"}, titlesOf(alloc.Days[0].Tasks))
}

func TestAllocate_StopsWhenRemainingAtThreshold(t *testing.T) {
	sorted := scoredInOrder(
		withHours(makeTask("A", "c", ""), 2.5),
		withHours(makeTask("B", "c", ""), 0.25),
	)

	alloc := Allocate(sorted, 3, DefaultPolicy())

	require.Len(t, alloc.Days, 2)
	assert.Equal(t, []string{"A"}, titlesOf(alloc.Days[0].Tasks))
	assert.Equal(t, []string{"B"}, titlesOf(alloc.Days[1].Tasks))
}

func TestAllocate_OversizedTaskGetsOwnDay(t *testing.T) {
	sorted := scoredInOrder(
		withHours(makeTask("big", "c", ""), 6),
		withHours(makeTask("next", "c", ""), 1),
	)

	alloc := Allocate(sorted, 3, DefaultPolicy())

	require.Len(t, alloc.Days, 2)
	assert.Equal(t, []string{"big"}, titlesOf(alloc.Days[0].Tasks))
	assert.InDelta(t, 3.0, alloc.Days[0].Hours, 1e-9)
	assert.Equal(t, []string{"next"}, titlesOf(alloc.Days[1].Tasks))
}

func TestAllocate_OverflowBeyondSundayDropped(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, withHours(makeTask(string(rune('A'+i)), "c", ""), 1))
	}

	alloc := Allocate(scoredInOrder(tasks...), 1, DefaultPolicy())

	require.Len(t, alloc.Days, 7)
	assert.Equal(t, "Sunday", alloc.Days[6].Day)
	require.Len(t, alloc.Unassigned, 3)
	assert.Equal(t, []string{"H", "I", "J"}, titlesOf(alloc.Unassigned))
}

func TestAllocate_PolicyOverride(t *testing.T) {
	sorted := scoredInOrder(
		makeTask("T1", "c", ""),
		makeTask("T2", "c", ""),
		makeTask("T3", "c", ""),
	)

	alloc := Allocate(sorted, 3, Policy{MinRemainingHours: 0.25, FallbackTaskHours: 1.0})

	require.Len(t, alloc.Days, 1)
	assert.Len(t, alloc.Days[0].Tasks, 3)
}

func TestAllocate_DoesNotMutateInput(t *testing.T) {
	sorted := scoredInOrder(makeTask("T1", "c", ""), makeTask("T2", "c", ""))
	before := append([]ScoredTask(nil), sorted...)

	_ = Allocate(sorted, 1.5, DefaultPolicy())

	assert.Equal(t, before, sorted)
}
