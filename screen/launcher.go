package screen

import "sync"

// Launcher starts a fetch task without blocking the caller.
type Launcher interface {
	Launch(task func())
}

// GoLauncher runs every task on its own goroutine.
type GoLauncher struct{}

func (GoLauncher) Launch(task func()) {
	go task()
}

// QueueLauncher holds tasks until RunUntilIdle is called. It gives tests, and
// single-threaded shells, full control over when fetches complete.
type QueueLauncher struct {
	mu    sync.Mutex
	tasks []func()
}

func NewQueueLauncher() *QueueLauncher {
	return &QueueLauncher{}
}

func (q *QueueLauncher) Launch(task func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, task)
}

// Pending returns the number of tasks waiting to run.
func (q *QueueLauncher) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// RunUntilIdle runs queued tasks in launch order, including tasks launched while running,
// until the queue is empty.
func (q *QueueLauncher) RunUntilIdle() {
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return
		}
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		task()
	}
}
