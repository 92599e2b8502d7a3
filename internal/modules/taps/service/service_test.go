package service

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kegerator-server/internal/modules/taps/repository"
	"kegerator-server/internal/modules/taps/types"
	"kegerator-server/internal/mqtt"
	"kegerator-server/internal/observability"
)

func TestToDisplay(t *testing.T) {
	tests := []struct {
		name        string
		state       float64
		wantPercent float64
	}{
		{name: "empty", state: 0, wantPercent: 0},
		{name: "half", state: 9.5, wantPercent: 50},
		{name: "full", state: 19, wantPercent: 100},
		{name: "rounds down", state: 1, wantPercent: 5},
		{name: "rounds up", state: 3, wantPercent: 16},
		{name: "over full is not clamped", state: 38, wantPercent: 200},
		{name: "negative is not clamped", state: -1.9, wantPercent: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDisplay(types.Reading{Name: "IPA", State: tt.state})
			if got.Percent != tt.wantPercent {
				t.Errorf("ToDisplay(%v).Percent = %v; want %v", tt.state, got.Percent, tt.wantPercent)
			}
			if got.Volume != tt.state {
				t.Errorf("ToDisplay(%v).Volume = %v; want %v", tt.state, got.Volume, tt.state)
			}
			if got.Name != "IPA" {
				t.Errorf("ToDisplay().Name = %q; want %q", got.Name, "IPA")
			}
		})
	}
}

func TestToDisplay_matchesFormulaOverRange(t *testing.T) {
	for i := 0; i <= 190; i++ {
		state := float64(i) / 10
		want := math.Round(state / 19 * 100)
		if got := ToDisplay(types.Reading{State: state}).Percent; got != want {
			t.Fatalf("ToDisplay(%v).Percent = %v; want %v", state, got, want)
		}
		if got := ToDisplay(types.Reading{State: state}).Percent; got != math.Trunc(got) {
			t.Fatalf("ToDisplay(%v).Percent = %v; want integer value", state, got)
		}
	}
}

func TestToDisplaySet(t *testing.T) {
	got := ToDisplaySet(types.Readings{
		TapOne:   types.Reading{Name: "A", State: 19},
		TapTwo:   types.Reading{Name: "B", State: 9.5},
		TapThree: types.Reading{Name: "C", State: 0},
	})
	want := types.DisplaySet{
		TapOne:   types.DisplayReading{Name: "A", Percent: 100, Volume: 19},
		TapTwo:   types.DisplayReading{Name: "B", Percent: 50, Volume: 9.5},
		TapThree: types.DisplayReading{Name: "C", Percent: 0, Volume: 0},
	}
	if got != want {
		t.Errorf("ToDisplaySet() = %+v; want %+v", got, want)
	}
}

type fakeSubscriber struct {
	handler mqtt.MessageHandler
}

func (f *fakeSubscriber) SetMessageHandler(h mqtt.MessageHandler) { f.handler = h }

type fakeRepo struct {
	stored     []types.Readings
	replaceErr error
}

func (f *fakeRepo) LoadReadings() (types.Readings, error) { return types.Readings{}, nil }

func (f *fakeRepo) ReplaceReadings(r types.Readings) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.stored = append(f.stored, r)
	return nil
}

func registerFake(t *testing.T, repo *fakeRepo) *fakeSubscriber {
	t.Helper()
	sub := &fakeSubscriber{}
	svc := NewService(repo, observability.NewMetrics(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.Register(sub)
	require.NotNil(t, sub.handler, "Register did not set a handler")
	return sub
}

func TestFeedHandler_storesValidDocument(t *testing.T) {
	repo := &fakeRepo{}
	sub := registerFake(t, repo)

	err := sub.handler("kegerator/taps", []byte(`{"tap_one":{"name":"A","state":1},"tap_two":{"name":"B","state":2},"tap_three":{"name":"C","state":3}}`))

	require.NoError(t, err)
	require.Len(t, repo.stored, 1)
	assert.Equal(t, types.Reading{Name: "A", State: 1}, repo.stored[0].TapOne)
	assert.Equal(t, types.Reading{Name: "C", State: 3}, repo.stored[0].TapThree)
}

func TestFeedHandler_rejectsInvalidDocument(t *testing.T) {
	repo := &fakeRepo{}
	sub := registerFake(t, repo)

	err := sub.handler("kegerator/taps", []byte(`{"tap_one":{"name":"A","state":"x"}}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrReadingsParse)
	assert.Empty(t, repo.stored)
}

func TestFeedHandler_propagatesStoreError(t *testing.T) {
	repo := &fakeRepo{replaceErr: errors.New("disk full")}
	sub := registerFake(t, repo)

	err := sub.handler("kegerator/taps", []byte(`{"tap_one":{"name":"A","state":1},"tap_two":{"name":"B","state":2},"tap_three":{"name":"C","state":3}}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
