// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"testing"
)

// countWorker tracks how many times Run was called.
type countWorker struct {
	runCount int
}

func (m *countWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countWorker{}
	w2 := &countWorker{}
	w3 := &countWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*countWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	var order []int

	ws := NewWorkers(
		WorkerFunc(func() { order = append(order, 1) }),
		WorkerFunc(func() { order = append(order, 2) }),
		WorkerFunc(func() { order = append(order, 3) }),
	)
	ws.Run()

	expected := []int{1, 2, 3}
	if len(order) != len(expected) {
		t.Fatalf("expected %d runs, got %d", len(expected), len(order))
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &countWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()

	if w.runCount != 2 {
		t.Errorf("expected Run to be called twice, got %d", w.runCount)
	}
}
