package workers

// Workers aggregates background workers and starts them as a group.
type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers. Order is
// preserved; Run starts them first to last.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every registered worker in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
