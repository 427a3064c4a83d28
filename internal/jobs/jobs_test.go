package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	err   error
	calls atomic.Int32
}

func (p *fakePinger) Ping(context.Context) error {
	p.calls.Add(1)
	return p.err
}

type fakeDeleter struct {
	calls atomic.Int32
}

func (d *fakeDeleter) DeleteExpired(context.Context) (int64, error) {
	d.calls.Add(1)
	return 3, nil
}

func TestDirectoryMonitor_Check(t *testing.T) {
	p := &fakePinger{}
	var reported []bool
	m := NewDirectoryMonitor(p, time.Minute, func(up bool) { reported = append(reported, up) })

	assert.True(t, m.Up(), "assumed up before first probe")

	assert.True(t, m.Check(context.Background()))
	assert.True(t, m.Up())

	p.err = errors.New("connection refused")
	assert.False(t, m.Check(context.Background()))
	assert.False(t, m.Up())

	assert.Equal(t, []bool{true, false}, reported)
}

func TestDirectoryMonitor_StartStopsOnCancel(t *testing.T) {
	p := &fakePinger{}
	m := NewDirectoryMonitor(p, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return p.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestKVSweeper_Sweep(t *testing.T) {
	d := &fakeDeleter{}
	s := NewKVSweeper(d, time.Minute)

	s.Sweep(context.Background())
	assert.Equal(t, int32(1), d.calls.Load())
}
