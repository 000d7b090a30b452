// Package driver implements a batched multi-threaded driver: it ingests a
// workload.Trace and, for each batch, splits the batch's operations into
// tasks pulled by a fixed pool of worker goroutines from a shared atomic
// task-index counter, then joins the pool as a global per-batch barrier
// before advancing.
//
// The task-size/task-count arithmetic and the atomic-counter consumer loop
// are a direct translation of
// original_source/concurrent_bench.cc's deployLinks/deployLookups/deployCuts
// closures (std::thread + std::atomic<unsigned> taskIndex) into goroutines
// and internal/atomics.Uint32, in the teacher's own style of building worker
// pools around a shared counter rather than a channel-fed queue
// (G-M-twostay-Go-Utils has no worker pool of its own to follow, so this
// stays closest to the original rather than inventing a channel-based one).
package driver

import (
	"sync"

	"github.com/arborist-systems/linkcut/internal/atomics"
)

// runTasks splits [0, count) into tasks of task_size = count /
// (taskFactor * numThreads), and runs them across numThreads goroutines
// that each pull the next unclaimed task from a shared atomic counter
// until none remain. If task_size is zero, work runs once on the calling
// goroutine instead. Blocks until every task has completed.
func runTasks(count, numThreads, taskFactor int, work func(start, stop int)) {
	if count == 0 {
		return
	}

	taskSize := count / (taskFactor * numThreads)
	if taskSize == 0 {
		work(0, count)
		return
	}

	numTasks := count / taskSize
	if count%taskSize != 0 {
		numTasks++
	}

	var taskIndex atomics.Uint32
	var wg sync.WaitGroup
	wg.Add(numThreads)
	for worker := 0; worker < numThreads; worker++ {
		go func() {
			defer wg.Done()
			for {
				i := taskIndex.Add(1) - 1
				if i >= uint32(numTasks) {
					return
				}
				start := int(i) * taskSize
				stop := start + taskSize
				if int(i) == numTasks-1 {
					stop = count
				}
				work(start, stop)
			}
		}()
	}
	wg.Wait()
}
