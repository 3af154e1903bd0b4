package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/lassoviz/pkg/errors"
	"github.com/YuminosukeSato/lassoviz/pkg/log"
)

func receive(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot")
		return Snapshot{}
	}
}

func testLogger() log.Logger {
	l, _ := log.NewTestLogger(log.LevelDebug)
	return l
}

func TestSessionStates(t *testing.T) {
	s := NewSession(WithSessionLogger(testLogger()))
	defer s.Close()
	assert.Equal(t, StateEmpty, s.State())
	assert.Nil(t, s.Latest())

	req := DefaultRequest()
	req.Seed = 3
	req.PathIndex = 0
	gen, ch := s.Submit(context.Background(), req)
	snap := receive(t, ch)
	require.NoError(t, snap.Err)
	assert.Equal(t, gen, snap.Generation)
	assert.Equal(t, StateNoSelection, s.State())

	req.PathIndex = 99
	_, ch = s.Submit(context.Background(), req)
	snap = receive(t, ch)
	require.NoError(t, snap.Err)
	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, uint64(2), s.Latest().Generation)

	req.N = -1
	_, ch = s.Submit(context.Background(), req)
	snap = receive(t, ch)
	require.Error(t, snap.Err)
	assert.Equal(t, StateFailed, s.State())
	assert.Equal(t, "failed", s.State().String())
}

func TestSessionSupersededRunIsCancelled(t *testing.T) {
	started := make(chan struct{})
	run := func(ctx context.Context, req Request, _ log.Logger) (*Outcome, error) {
		if req.N == 1 {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return &Outcome{}, nil
	}
	s := NewSession(WithRunFunc(run), WithSessionLogger(testLogger()))
	defer s.Close()

	_, slow := s.Submit(context.Background(), Request{N: 1})
	<-started
	gen, fast := s.Submit(context.Background(), Request{N: 2})

	stale := receive(t, slow)
	assert.True(t, errors.Is(stale.Err, errors.ErrStaleResult))
	assert.Nil(t, stale.Outcome)

	fresh := receive(t, fast)
	require.NoError(t, fresh.Err)
	assert.Equal(t, gen, fresh.Generation)
	assert.Equal(t, gen, s.Latest().Generation)
}

func TestSessionStaleResultNeverOverwrites(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	stale := &Outcome{LambdaMax: 1}
	fresh := &Outcome{LambdaMax: 2}

	run := func(_ context.Context, req Request, _ log.Logger) (*Outcome, error) {
		if req.N == 1 {
			close(started)
			// キャンセルを無視して完了する
			<-release
			return stale, nil
		}
		return fresh, nil
	}
	s := NewSession(WithRunFunc(run), WithSessionLogger(testLogger()))
	defer s.Close()

	_, first := s.Submit(context.Background(), Request{N: 1})
	<-started
	_, second := s.Submit(context.Background(), Request{N: 2})
	close(release)

	firstSnap := receive(t, first)
	assert.True(t, errors.Is(firstSnap.Err, errors.ErrStaleResult))
	secondSnap := receive(t, second)
	require.NoError(t, secondSnap.Err)

	s.Wait()
	assert.Same(t, fresh, s.Latest().Outcome)
}

func TestSessionRecoversPanics(t *testing.T) {
	run := func(context.Context, Request, log.Logger) (*Outcome, error) {
		panic("boom")
	}
	s := NewSession(WithRunFunc(run), WithSessionLogger(testLogger()))
	defer s.Close()

	_, ch := s.Submit(context.Background(), Request{})
	snap := receive(t, ch)
	var pErr *errors.PanicError
	require.True(t, errors.As(snap.Err, &pErr))
	assert.Equal(t, "boom", pErr.PanicValue)
	assert.Equal(t, StateFailed, s.State())
}

func TestSessionClose(t *testing.T) {
	run := func(ctx context.Context, _ Request, _ log.Logger) (*Outcome, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	s := NewSession(WithRunFunc(run), WithSessionLogger(testLogger()))

	_, ch := s.Submit(context.Background(), Request{})
	s.Close()
	snap := receive(t, ch)
	assert.True(t, errors.Is(snap.Err, errors.ErrStaleResult))
	assert.Equal(t, StateEmpty, s.State())

	_, ch = s.Submit(context.Background(), Request{})
	snap = receive(t, ch)
	assert.True(t, errors.Is(snap.Err, errors.ErrStaleResult))
}
