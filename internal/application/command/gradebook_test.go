package command

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/grade"
	"github.com/alem-hub/gradebook/internal/domain/shared"
)

type recordingPublisher struct {
	events []shared.Event
}

func (p *recordingPublisher) Publish(e shared.Event) error {
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []shared.EventType {
	out := make([]shared.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

func newBook(t *testing.T) (*GradeBook, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	book, err := NewGradeBook(context.Background(), CreateRecordCommand{
		StudentID:     "S001",
		StudentName:   "Alice Johnson",
		CorrelationID: "corr-1",
	}, pub, nil)
	require.NoError(t, err)
	return book, pub
}

func TestNewGradeBook_PublishesCreated(t *testing.T) {
	book, pub := newBook(t)

	assert.Equal(t, "S001", book.StudentID())
	require.Len(t, pub.events, 1)
	created, ok := pub.events[0].(grade.RecordCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "Alice Johnson", created.StudentName)
	assert.Equal(t, "corr-1", created.CorrelationID)
	assert.NotEmpty(t, created.EventID())
}

func TestNewGradeBook_BlankIdentity(t *testing.T) {
	pub := &recordingPublisher{}
	book, err := NewGradeBook(context.Background(), CreateRecordCommand{StudentID: " ", StudentName: "Bob"}, pub, nil)

	assert.Nil(t, book)
	assert.True(t, shared.IsInvalidArgument(err))
	assert.Empty(t, pub.events)
}

func TestGradeBook_AddGrade(t *testing.T) {
	book, pub := newBook(t)
	ctx := context.Background()

	res, err := book.AddGrade(ctx, AddGradeCommand{Raw: "95.5"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 95.5, res.Value)
	assert.Equal(t, []float64{95.5}, res.Summary.Grades)

	res, err = book.AddGrade(ctx, AddGradeCommand{Raw: 150})
	assert.Error(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, err, res.Err)
	assert.True(t, shared.IsInvalidGrade(res.Err))
	assert.Equal(t, 1, res.Summary.GradeCount)

	assert.Equal(t, []shared.EventType{
		shared.EventRecordCreated,
		shared.EventGradeAdded,
		shared.EventGradeRejected,
	}, pub.types())
}

func TestGradeBook_Removals(t *testing.T) {
	book, pub := newBook(t)
	ctx := context.Background()
	for _, g := range []any{95.5, 87.0, 92.0, 88.5} {
		res, err := book.AddGrade(ctx, AddGradeCommand{Raw: g})
		require.NoError(t, err)
		require.True(t, res.Success)
	}

	res, err := book.RemoveGradeByValue(ctx, RemoveGradeByValueCommand{Raw: 87.0})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.InDelta(t, 91.8333333, res.Summary.Average, 1e-6)

	res, err = book.RemoveGradeByIndex(ctx, RemoveGradeByIndexCommand{Index: 0})
	require.NoError(t, err)
	assert.Equal(t, 95.5, res.Value)

	res, err = book.RemoveGradeByIndex(ctx, RemoveGradeByIndexCommand{Index: 10})
	assert.True(t, shared.IsIndexOutOfRange(err))
	assert.False(t, res.Success)

	res, err = book.RemoveGradeByValue(ctx, RemoveGradeByValueCommand{Raw: 999})
	assert.True(t, shared.IsNotFound(err))
	assert.False(t, res.Success)

	assert.Equal(t, []float64{92.0, 88.5}, book.Summary().Grades)

	last := pub.events[len(pub.events)-1]
	rejected, ok := last.(grade.GradeRejectedEvent)
	require.True(t, ok)
	assert.Equal(t, "RemoveGradeByValue", rejected.Op)

	removed, ok := pub.events[len(pub.events)-3].(grade.GradeRemovedEvent)
	require.True(t, ok)
	assert.True(t, removed.ByIndex())
	assert.Equal(t, 0, removed.Index)
}

func TestGradeBook_ConcurrentAdds(t *testing.T) {
	book, err := NewGradeBook(context.Background(), CreateRecordCommand{StudentID: "S003", StudentName: "Carol"}, nil, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = book.AddGrade(context.Background(), AddGradeCommand{Raw: 80})
		}()
	}
	wg.Wait()

	s := book.Summary()
	assert.Equal(t, 50, s.GradeCount)
	assert.Equal(t, 80.0, s.Average)
	assert.Equal(t, grade.LetterB, s.LetterGrade)
}
