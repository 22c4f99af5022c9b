package inspection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepWalksSixtyFiveItemsInThirties(t *testing.T) {
	const total, capacity = 65, 30
	cursor := Start()

	page1, cursor := cursor.Step(total, capacity)
	assert.Equal(t, Page{Start: 0, End: 30, HasMore: true}, page1)
	assert.Equal(t, 30, cursor.Index())

	page2, cursor := cursor.Step(total, capacity)
	assert.Equal(t, Page{Start: 30, End: 60, HasMore: true}, page2)

	page3, cursor := cursor.Step(total, capacity)
	assert.Equal(t, Page{Start: 60, End: 65, HasMore: false}, page3)
	assert.True(t, cursor.Done())
}

func TestStepExactFit(t *testing.T) {
	cursor := Start()
	page, cursor := cursor.Step(30, 30)
	assert.Equal(t, Page{Start: 0, End: 30, HasMore: false}, page)
	assert.True(t, cursor.Done())
}

func TestStepSinglePage(t *testing.T) {
	cursor := Start()
	page, cursor := cursor.Step(5, 30)
	assert.False(t, page.HasMore)
	assert.Equal(t, 5, page.End)
	assert.True(t, cursor.Done())
}

func TestStepEmptyList(t *testing.T) {
	cursor := Start()
	page, cursor := cursor.Step(0, 30)
	assert.Equal(t, Page{Start: 0, End: 0, HasMore: false}, page)
	assert.True(t, cursor.Done())
}

func TestStepZeroCapacityMakesNoProgress(t *testing.T) {
	cursor := Start()
	page, next := cursor.Step(10, 0)
	assert.True(t, page.HasMore)
	assert.Equal(t, page.Start, page.End)
	assert.Equal(t, cursor.Index(), next.Index(), "no items consumed")
	assert.False(t, next.Done())
}

func TestStepAfterDoneStaysDone(t *testing.T) {
	cursor := Start()
	_, cursor = cursor.Step(5, 10)
	page, cursor := cursor.Step(5, 10)
	assert.False(t, page.HasMore)
	assert.Equal(t, page.Start, page.End)
	assert.True(t, cursor.Done())
}

func TestValueSemanticsLeaveOriginalUntouched(t *testing.T) {
	original := Start()
	_, _ = original.Step(65, 30)
	assert.Equal(t, 0, original.Index(), "stepping returns a successor, never mutates")
}
