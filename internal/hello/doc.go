// Package hello is the job producer of hello-pool: a TCP listener that
// answers every connection with a fixed HTTP response.
//
// The listener itself never handles a connection. Each accepted connection
// is wrapped in a pool.Job and submitted to the worker pool, which bounds
// how many connections are served at once.
//
//	┌──────────┐  Accept()  ┌──────────┐  Submit(job)  ┌──────────────┐
//	│  client  │──────────► │ Listener │─────────────► │  Worker Pool │
//	└──────────┘            └──────────┘               └──────┬───────┘
//	      ▲                                                   │
//	      │          Handler.Handle(conn) on a worker         │
//	      └───────────────────────────────────────────────────┘
//
// The handler reads up to ReadBufferSize bytes of the request without
// parsing them, then writes:
//
//	HTTP/1.1 200 OK\r\nContent-Length: <n>\r\n\r\n<content file>
//
// Accept errors are retried with exponential backoff. The listener stops
// when its context is cancelled or when the pool refuses a job.
package hello
