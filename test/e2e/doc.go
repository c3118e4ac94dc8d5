/*
Package main provides end-to-end tests for a running hello-pool process.

# Package Structure

	test/e2e/
	├── main.go     Entry point: flags, config validation, Ginkgo runner
	├── tests.go    Ginkgo specs (pool status, single and concurrent connections)
	└── doc.go      This file

The suite does not start hello-pool itself. Start the server first, then
point the suite at it:

	hello-pool serve --workers 4 --content-file hello.html &
	go run ./test/e2e -hello-address 127.0.0.1:7878 -admin-url http://127.0.0.1:8000 -workers 4

# What is verified

	┌──────────┐  TCP   ┌──────────────────────┐
	│  suite   │──────▶│ hello listener :7878 │──▶ worker pool
	│          │        └──────────────────────┘
	│          │  HTTP  ┌──────────────────────┐
	│          │──────▶│ admin API :8000      │
	└──────────┘        └──────────────────────┘

  - GET /api/v1/pool reports a running pool with the expected worker count
  - every connection receives the canned response built from the content file
  - the completed job counter grows by at least the number of connections
*/
package main
