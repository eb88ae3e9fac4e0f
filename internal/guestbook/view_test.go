package guestbook

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/guestbook/internal/guestbook/mock_guestbook"
	"github.com/qdm12/guestbook/internal/models"
	"github.com/stretchr/testify/assert"
)

func newTestView(ctrl *gomock.Controller) (view *View,
	backend *mock_guestbook.MockBackend, logger *mock_guestbook.MockLogger,
	metrics *mock_guestbook.MockMetrics) {
	backend = mock_guestbook.NewMockBackend(ctrl)
	logger = mock_guestbook.NewMockLogger(ctrl)
	metrics = mock_guestbook.NewMockMetrics(ctrl)
	palette := []models.Color{"#549", "#18d"}
	intn := func(int) int { return 0 }
	view = New(backend, "guestbook", palette, intn, logger, metrics)
	return view, backend, logger, metrics
}

func Test_New(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	palette := []models.Color{"#549", "#18d", "#d31", "#2a4", "#db1"}
	intn := func(n int) int {
		assert.Equal(t, 5, n)
		return 3
	}

	view := New(mock_guestbook.NewMockBackend(ctrl), "guestbook", palette,
		intn, mock_guestbook.NewMockLogger(ctrl), mock_guestbook.NewMockMetrics(ctrl))

	state := view.Snapshot()
	expected := State{
		Entries:     []string{},
		AccentColor: "#2a4",
	}
	assert.Equal(t, expected, state)
	assert.True(t, state.Waiting())
}

func Test_pickColor(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		palette []models.Color
		index   int
		color   models.Color
	}{
		"empty palette": {},
		"first": {
			palette: []models.Color{"#549", "#18d"},
			index:   0,
			color:   "#549",
		},
		"last": {
			palette: []models.Color{"#549", "#18d"},
			index:   1,
			color:   "#18d",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			intn := func(int) int { return testCase.index }

			color := pickColor(testCase.palette, intn)

			assert.Equal(t, testCase.color, color)
		})
	}
}

func Test_RandomIntn(t *testing.T) {
	t.Parallel()

	intn := RandomIntn()
	for i := 0; i < 100; i++ {
		n := intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}
}

func Test_View_CaptureHostAddress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, _, _, _ := newTestView(ctrl)

	view.CaptureHostAddress("http://localhost:8000/")
	view.CaptureHostAddress("http://other:8000/")

	assert.Equal(t, "http://localhost:8000/", view.Snapshot().HostAddress)
}

func Test_View_SetDraft(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, _, _, _ := newTestView(ctrl)

	view.SetDraft("h")
	view.SetDraft("he")

	assert.Equal(t, "he", view.Snapshot().Draft)
	select {
	case <-view.Changed():
	default:
		t.Fatal("no change signaled")
	}
	select {
	case <-view.Changed():
		t.Fatal("changes should be coalesced")
	default:
	}

	view.SetDraft("he")
	select {
	case <-view.Changed():
		t.Fatal("unchanged draft should not signal")
	default:
	}
}

func Test_View_Snapshot_isCopy(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	view, _, _, _ := newTestView(ctrl)
	view.entries = []string{"a"}

	state := view.Snapshot()
	state.Entries[0] = "modified"

	assert.Equal(t, []string{"a"}, view.Snapshot().Entries)
}
