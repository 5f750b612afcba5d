package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/reznik99/cloud-storage-client/internal/mock"
)

func TestIndexRefreshJob_RunsAndStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileSvc := mock.NewMockClientFileService(ctrl)
	job := NewIndexRefreshJob(fileSvc)

	refreshed := make(chan struct{})
	var once sync.Once

	fileSvc.EXPECT().RefreshIndex(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			once.Do(func() { close(refreshed) })
			return nil
		},
	).MinTimes(1)

	job.Start(context.Background(), 10*time.Millisecond)

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh was never called")
	}

	job.Stop()
}

func TestIndexRefreshJob_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := NewIndexRefreshJob(mock.NewMockClientFileService(ctrl))

	// Must not panic or block.
	job.Stop()
}

func TestIndexRefreshJob_RestartReplacesPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileSvc := mock.NewMockClientFileService(ctrl)
	fileSvc.EXPECT().RefreshIndex(gomock.Any()).Return(nil).AnyTimes()

	job := NewIndexRefreshJob(fileSvc)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
}

func TestIndexRefreshJob_LogsRefreshFailureAndKeepsRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileSvc := mock.NewMockClientFileService(ctrl)
	job := NewIndexRefreshJob(fileSvc)

	calls := make(chan struct{}, 4)
	fileSvc.EXPECT().RefreshIndex(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			select {
			case calls <- struct{}{}:
			default:
			}
			return errors.New("server listing unavailable")
		},
	).MinTimes(2)

	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	job.Start(ctx, 10*time.Millisecond)

	// Two observed calls prove the first failure did not kill the ticker.
	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("refresh was not retried after a failure")
		}
	}
	job.Stop()

	if got := buf.String(); !strings.Contains(got, "periodic index refresh failed") {
		t.Fatalf("expected warn log about failed refresh, got: %s", got)
	}
}

func TestIndexRefreshJob_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fileSvc := mock.NewMockClientFileService(ctrl)
	fileSvc.EXPECT().RefreshIndex(gomock.Any()).Return(nil).AnyTimes()

	job := NewIndexRefreshJob(fileSvc)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	cancel()

	// Stop after cancel must return promptly.
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}
