// Package queue implements the shared job queue of the worker pool.
//
// Queue is an unbounded FIFO with competing-consumer semantics: any number
// of producers may Push concurrently, any number of consumers may Pop
// concurrently, and each item is claimed by exactly one consumer.
//
//	  producers                                   consumers
//	┌──────────┐                               ┌──────────┐
//	│  Push()  │──┐                         ┌──│  Pop()   │
//	└──────────┘  │   ┌─────────────────┐   │  └──────────┘
//	┌──────────┐  ├──►│ [a] [b] [c] ... │───┤  ┌──────────┐
//	│  Push()  │──┘   └─────────────────┘   └──│  Pop()   │
//	└──────────┘        mutex + cond           └──────────┘
//
// The items live in a ring buffer (github.com/eapache/queue) guarded by a
// single mutex. Consumers wait on a condition variable bound to that mutex,
// so checking for an item and removing it happen in one critical section.
//
// # Closing
//
// Close is idempotent. After Close:
//   - Push returns a QueueClosedError and the item is not queued
//   - Pop keeps returning queued items until the queue is empty
//   - Pop on an empty closed queue returns immediately with ok == false
//
// # Usage Example
//
//	q := queue.New[func()]()
//
//	go func() {
//	    for {
//	        job, ok := q.Pop()
//	        if !ok {
//	            return // closed and drained
//	        }
//	        job()
//	    }
//	}()
//
//	_ = q.Push(func() { fmt.Println("hello") })
//	q.Close()
package queue
