package guestbook

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_View_HandleSubmit_blankDraft(t *testing.T) {
	t.Parallel()

	drafts := map[string]string{
		"empty":      "",
		"spaces":     "   ",
		"whitespace": " \t\n ",
	}

	for name, draft := range drafts {
		draft := draft
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			// no backend, logger or metrics call expected
			view, _, _, _ := newTestView(ctrl)
			view.entries = []string{"a"}
			view.draft = draft

			err := view.HandleSubmit(context.Background(), draft)

			require.NoError(t, err)
			state := view.Snapshot()
			assert.Equal(t, []string{"a"}, state.Entries)
			assert.Equal(t, draft, state.Draft)
		})
	}
}

func Test_View_HandleSubmit_success(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, backend, _, metrics := newTestView(ctrl)
	view.entries = []string{"a"}
	view.SetDraft("hello world")

	ctx := context.Background()
	metrics.EXPECT().SetEntries(2).Times(2)
	backend.EXPECT().RPush(ctx, "guestbook", "hello world").
		DoAndReturn(func(context.Context, string, string) ([]string, error) {
			state := view.Snapshot()
			assert.Equal(t, []string{"a", "..."}, state.Entries)
			assert.Equal(t, "hello world", state.Draft)
			return []string{"a", "hello world"}, nil
		})
	metrics.EXPECT().RequestDone("submit", nil)

	err := view.HandleSubmit(ctx, "hello world")

	require.NoError(t, err)
	state := view.Snapshot()
	assert.Equal(t, []string{"a", "hello world"}, state.Entries)
	assert.Empty(t, state.Draft)
}

func Test_View_HandleSubmit_draftChangedInFlight(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, backend, _, metrics := newTestView(ctrl)
	view.SetDraft("first")

	ctx := context.Background()
	metrics.EXPECT().SetEntries(1).Times(2)
	backend.EXPECT().RPush(ctx, "guestbook", "first").
		DoAndReturn(func(context.Context, string, string) ([]string, error) {
			view.SetDraft("second")
			return []string{"first"}, nil
		})
	metrics.EXPECT().RequestDone("submit", nil)

	err := view.HandleSubmit(ctx, "first")

	require.NoError(t, err)
	assert.Equal(t, "second", view.Snapshot().Draft)
}

func Test_View_HandleSubmit_failure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, backend, logger, metrics := newTestView(ctrl)
	view.entries = []string{"a"}
	view.SetDraft("hello")

	errTest := errors.New("test error")
	ctx := context.Background()
	metrics.EXPECT().SetEntries(2)
	backend.EXPECT().RPush(ctx, "guestbook", "hello").Return(nil, errTest)
	metrics.EXPECT().RequestDone("submit", errTest)
	logger.EXPECT().Warn("adding entry: test error")

	err := view.HandleSubmit(ctx, "hello")

	assert.ErrorIs(t, err, errTest)
	assert.EqualError(t, err, "adding entry: test error")
	state := view.Snapshot()
	assert.Equal(t, []string{"a", "..."}, state.Entries)
	assert.Equal(t, "hello", state.Draft)
}

func Test_View_HandleSubmit_failureThenFetch(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, backend, logger, metrics := newTestView(ctrl)

	ctx := context.Background()
	metrics.EXPECT().SetEntries(gomock.Any()).AnyTimes()
	metrics.EXPECT().RequestDone(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any())
	backend.EXPECT().RPush(ctx, "guestbook", "hello").Return(nil, errors.New("test"))
	backend.EXPECT().ListRange(ctx, "guestbook").Return([]string{"x"}, nil)

	_ = view.HandleSubmit(ctx, "hello")
	assert.Equal(t, []string{"..."}, view.Snapshot().Entries)

	err := view.FetchEntries(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, view.Snapshot().Entries)
}

// A fetch started before a submit and answered after it must not
// overwrite the submit result.
func Test_View_stalePollAfterSubmit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, backend, logger, metrics := newTestView(ctrl)

	ctx := context.Background()
	metrics.EXPECT().SetEntries(gomock.Any()).AnyTimes()
	metrics.EXPECT().RequestDone(gomock.Any(), nil).Times(2)
	metrics.EXPECT().StaleResponse("fetch")
	logger.EXPECT().Debug("discarding stale response of fetch #1")

	fetchStarted := make(chan struct{})
	releaseFetch := make(chan struct{})
	backend.EXPECT().ListRange(ctx, "guestbook").
		DoAndReturn(func(context.Context, string) ([]string, error) {
			close(fetchStarted)
			<-releaseFetch
			return []string{"old"}, nil
		})
	backend.EXPECT().RPush(ctx, "guestbook", "new").
		Return([]string{"old", "new"}, nil)

	fetchErr := make(chan error)
	go func() {
		fetchErr <- view.FetchEntries(ctx)
	}()
	<-fetchStarted

	err := view.HandleSubmit(ctx, "new")
	require.NoError(t, err)
	close(releaseFetch)
	require.NoError(t, <-fetchErr)

	assert.Equal(t, []string{"old", "new"}, view.Snapshot().Entries)
}

// A fetch started before a submit must not undo the optimistic marker.
func Test_View_stalePollDuringSubmit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, backend, logger, metrics := newTestView(ctrl)

	ctx := context.Background()
	metrics.EXPECT().SetEntries(gomock.Any()).AnyTimes()
	metrics.EXPECT().RequestDone(gomock.Any(), nil).Times(2)
	metrics.EXPECT().StaleResponse("fetch")
	logger.EXPECT().Debug("discarding stale response of fetch #1")

	fetchStarted := make(chan struct{})
	releaseFetch := make(chan struct{})
	backend.EXPECT().ListRange(ctx, "guestbook").
		DoAndReturn(func(context.Context, string) ([]string, error) {
			close(fetchStarted)
			<-releaseFetch
			return []string{}, nil
		})

	fetchErr := make(chan error)
	go func() {
		fetchErr <- view.FetchEntries(ctx)
	}()
	<-fetchStarted

	backend.EXPECT().RPush(ctx, "guestbook", "new").
		DoAndReturn(func(context.Context, string, string) ([]string, error) {
			close(releaseFetch)
			require.NoError(t, <-fetchErr)
			assert.Equal(t, []string{"..."}, view.Snapshot().Entries)
			return []string{"new"}, nil
		})

	err := view.HandleSubmit(ctx, "new")

	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, view.Snapshot().Entries)
}

func Test_View_pollAnsweredDuringSubmit(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		fetched []string
	}{
		"list read before the push": {
			fetched: []string{"a"},
		},
		"list read after the push": {
			fetched: []string{"a", "hello world", "other"},
		},
		"empty list": {
			fetched: []string{},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			view, backend, logger, metrics := newTestView(ctrl)
			view.entries = []string{"a"}
			view.SetDraft("hello world")

			ctx := context.Background()
			metrics.EXPECT().SetEntries(2).Times(2)
			metrics.EXPECT().RequestDone("fetch", nil)
			metrics.EXPECT().RequestDone("submit", nil)
			metrics.EXPECT().StaleResponse("fetch")
			logger.EXPECT().Debug("discarding stale response of fetch #2")

			backend.EXPECT().ListRange(ctx, "guestbook").Return(testCase.fetched, nil)
			backend.EXPECT().RPush(ctx, "guestbook", "hello world").
				DoAndReturn(func(context.Context, string, string) ([]string, error) {
					require.NoError(t, view.FetchEntries(ctx))
					assert.Equal(t, []string{"a", "..."}, view.Snapshot().Entries)
					return []string{"a", "hello world"}, nil
				})

			err := view.HandleSubmit(ctx, "hello world")

			require.NoError(t, err)
			state := view.Snapshot()
			assert.Equal(t, []string{"a", "hello world"}, state.Entries)
			assert.Empty(t, state.Draft)
		})
	}
}

// Only a fetch issued after the submit response was applied
// replaces the submit result.
func Test_View_pollAfterSubmitResponse(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, backend, _, metrics := newTestView(ctrl)

	ctx := context.Background()
	metrics.EXPECT().SetEntries(1).Times(2)
	metrics.EXPECT().SetEntries(2)
	metrics.EXPECT().RequestDone(gomock.Any(), nil).Times(2)
	backend.EXPECT().RPush(ctx, "guestbook", "new").Return([]string{"new"}, nil)
	backend.EXPECT().ListRange(ctx, "guestbook").Return([]string{"new", "other"}, nil)

	require.NoError(t, view.HandleSubmit(ctx, "new"))
	require.NoError(t, view.FetchEntries(ctx))

	assert.Equal(t, []string{"new", "other"}, view.Snapshot().Entries)
}

// The response of an older submit answered last does not replace
// the response of a newer submit.
func Test_View_staleSubmitResponse(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, backend, logger, metrics := newTestView(ctrl)

	ctx := context.Background()
	metrics.EXPECT().SetEntries(gomock.Any()).AnyTimes()
	metrics.EXPECT().RequestDone("submit", nil).Times(2)
	metrics.EXPECT().StaleResponse("submit")
	logger.EXPECT().Debug("discarding stale response of submit #1")

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	backend.EXPECT().RPush(ctx, "guestbook", "first").
		DoAndReturn(func(context.Context, string, string) ([]string, error) {
			close(firstStarted)
			<-releaseFirst
			return []string{"first"}, nil
		})
	backend.EXPECT().RPush(ctx, "guestbook", "second").
		Return([]string{"first", "second"}, nil)

	firstErr := make(chan error)
	go func() {
		firstErr <- view.HandleSubmit(ctx, "first")
	}()
	<-firstStarted

	require.NoError(t, view.HandleSubmit(ctx, "second"))
	close(releaseFirst)
	require.NoError(t, <-firstErr)

	assert.Equal(t, []string{"first", "second"}, view.Snapshot().Entries)
}
