package pool_test

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/kubev2v/hello-pool/pkg/errors"
	"github.com/kubev2v/hello-pool/pkg/pool"
)

var _ = Describe("Pool", func() {
	var p *pool.Pool

	AfterEach(func() {
		if p != nil {
			p.Close()
		}
	})

	Describe("New", func() {
		It("should reject a size of zero without starting workers", func() {
			base := runtime.NumGoroutine()

			var err error
			p, err = pool.New(0)

			Expect(p).To(BeNil())
			Expect(srvErrors.IsInvalidPoolSizeError(err)).To(BeTrue())
			Expect(runtime.NumGoroutine()).To(BeNumerically("<=", base))
		})

		It("should reject a negative size", func() {
			_, err := pool.New(-3)
			Expect(srvErrors.IsInvalidPoolSizeError(err)).To(BeTrue())
		})

		DescribeTable("should start exactly size workers",
			func(size int) {
				var err error
				p, err = pool.New(size)
				Expect(err).NotTo(HaveOccurred())

				Expect(p.Size()).To(Equal(size))
				stats := p.Stats()
				Expect(stats.Workers).To(Equal(size))
				Expect(stats.Idle).To(Equal(size))
				Expect(stats.Stopped).To(BeZero())
			},
			Entry("one worker", 1),
			Entry("four workers", 4),
			Entry("sixteen workers", 16),
		)

		It("should apply options", func() {
			var err error
			p, err = pool.New(1, pool.WithName("hello"))
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name()).To(Equal("hello"))
		})
	})

	Describe("Submit", func() {
		It("should reject a nil job", func() {
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())

			Expect(p.Submit(nil)).To(MatchError(srvErrors.ErrNilJob))
		})

		It("should run every job exactly once", func() {
			var err error
			p, err = pool.New(4)
			Expect(err).NotTo(HaveOccurred())

			const jobs = 1000
			var counts [jobs]atomic.Int32
			for i := range jobs {
				Expect(p.Submit(func() { counts[i].Add(1) })).To(Succeed())
			}

			p.Close()

			for i := range jobs {
				Expect(counts[i].Load()).To(Equal(int32(1)), "job %d", i)
			}
			Expect(p.Stats().Completed).To(Equal(uint64(jobs)))
			Expect(p.Stats().Submitted).To(Equal(uint64(jobs)))
		})

		It("should run every job exactly once with concurrent producers", func() {
			var err error
			p, err = pool.New(3)
			Expect(err).NotTo(HaveOccurred())

			const (
				producers       = 10
				jobsPerProducer = 100
			)
			var counter atomic.Int32
			var wg sync.WaitGroup
			for range producers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range jobsPerProducer {
						_ = p.Submit(func() { counter.Add(1) })
					}
				}()
			}
			wg.Wait()
			p.Close()

			Expect(counter.Load()).To(Equal(int32(producers * jobsPerProducer)))
		})

		It("should run jobs in submission order on a single worker", func() {
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())

			var order []int
			for i := range 100 {
				Expect(p.Submit(func() { order = append(order, i) })).To(Succeed())
			}
			p.Close()

			Expect(order).To(HaveLen(100))
			for i, v := range order {
				Expect(v).To(Equal(i))
			}
		})

		It("should not block while every worker is busy", func() {
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())

			unblock := make(chan struct{})
			Expect(p.Submit(func() { <-unblock })).To(Succeed())

			submitted := make(chan struct{})
			go func() {
				for range 10000 {
					_ = p.Submit(func() {})
				}
				close(submitted)
			}()

			Eventually(submitted, time.Second).Should(BeClosed())
			Expect(p.Stats().QueueDepth).To(BeNumerically(">", 0))
			close(unblock)
		})

		It("should run two batches in parallel on two workers", func() {
			var err error
			p, err = pool.New(2)
			Expect(err).NotTo(HaveOccurred())

			var mu sync.Mutex
			var seen []int
			start := time.Now()
			for id := 1; id <= 4; id++ {
				Expect(p.Submit(func() {
					mu.Lock()
					seen = append(seen, id)
					mu.Unlock()
					time.Sleep(50 * time.Millisecond)
				})).To(Succeed())
			}
			p.Close()
			elapsed := time.Since(start)

			Expect(seen).To(ConsistOf(1, 2, 3, 4))
			Expect(elapsed).To(BeNumerically(">=", 100*time.Millisecond))
			Expect(elapsed).To(BeNumerically("<", 190*time.Millisecond))
		})
	})

	Describe("Fault isolation", func() {
		It("should keep running jobs after a job panics", func() {
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())

			ran := make(chan struct{})
			Expect(p.Submit(func() { panic("boom") })).To(Succeed())
			Expect(p.Submit(func() { close(ran) })).To(Succeed())

			Eventually(ran, time.Second).Should(BeClosed())
			Eventually(func() uint64 { return p.Stats().Failed }, time.Second).Should(Equal(uint64(1)))
			Expect(p.Stats().Workers).To(Equal(1))
			Expect(p.Stats().Stopped).To(BeZero())
		})

		It("should keep the worker alive when a job calls runtime.Goexit", func() {
			// Arrange
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())

			var ran atomic.Int32
			Expect(p.Submit(func() { runtime.Goexit() })).To(Succeed())
			for range 5 {
				Expect(p.Submit(func() { ran.Add(1) })).To(Succeed())
			}

			// Act
			p.Close()

			// Assert
			stats := p.Stats()
			Expect(ran.Load()).To(Equal(int32(5)))
			Expect(stats.Completed).To(Equal(uint64(5)))
			Expect(stats.Failed).To(Equal(uint64(1)))
			Expect(stats.QueueDepth).To(BeZero())
			Expect(stats.Stopped).To(Equal(1))
		})

		It("should keep the pool at full size after runtime.Goexit", func() {
			var err error
			p, err = pool.New(2)
			Expect(err).NotTo(HaveOccurred())

			Expect(p.Submit(func() { runtime.Goexit() })).To(Succeed())
			Eventually(func() uint64 { return p.Stats().Failed }, time.Second).Should(Equal(uint64(1)))

			// both workers must be able to hold a job at the same time
			var wg sync.WaitGroup
			wg.Add(2)
			release := make(chan struct{})
			for range 2 {
				Expect(p.Submit(func() {
					wg.Done()
					<-release
				})).To(Succeed())
			}

			waited := make(chan struct{})
			go func() {
				wg.Wait()
				close(waited)
			}()
			Eventually(waited, time.Second).Should(BeClosed())
			close(release)
		})
	})

	Describe("SubmitWork", func() {
		It("should deliver the result on the future", func() {
			var err error
			p, err = pool.New(2)
			Expect(err).NotTo(HaveOccurred())

			future, err := pool.SubmitWork(p, func() (string, error) {
				return "done", nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(future.ID().String()).NotTo(BeEmpty())

			var result pool.Result[string]
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(result.Err).NotTo(HaveOccurred())
			Expect(result.Data).To(Equal("done"))
		})

		It("should deliver the work error on the future", func() {
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())

			workErr := errors.New("work failed")
			future, err := pool.SubmitWork(p, func() (int, error) {
				return 0, workErr
			})
			Expect(err).NotTo(HaveOccurred())

			var result pool.Result[int]
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(result.Err).To(MatchError(workErr))
		})

		It("should deliver a panic as a JobPanicError", func() {
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())

			future, err := pool.SubmitWork(p, func() (any, error) {
				panic("work panicked")
			})
			Expect(err).NotTo(HaveOccurred())

			var result pool.Result[any]
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(srvErrors.IsJobPanicError(result.Err)).To(BeTrue())
		})

		It("should deliver a runtime.Goexit as a JobExitError", func() {
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())

			future, err := pool.SubmitWork(p, func() (int, error) {
				runtime.Goexit()
				return 0, nil
			})
			Expect(err).NotTo(HaveOccurred())

			var result pool.Result[int]
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(srvErrors.IsJobExitError(result.Err)).To(BeTrue())
		})

		It("should fail after Close", func() {
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())
			p.Close()

			future, err := pool.SubmitWork(p, func() (int, error) { return 1, nil })
			Expect(future).To(BeNil())
			Expect(srvErrors.IsQueueClosedError(err)).To(BeTrue())
		})
	})

	Describe("Close behavior", func() {
		It("should return QueueClosedError when Submit is called after Close", func() {
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())
			p.Close()

			var ran atomic.Bool
			err = p.Submit(func() { ran.Store(true) })

			Expect(srvErrors.IsQueueClosedError(err)).To(BeTrue())
			Consistently(ran.Load, 100*time.Millisecond).Should(BeFalse())
			Expect(p.Closed()).To(BeTrue())
			Expect(p.Stats().Submitted).To(BeZero())
		})

		It("should wait for in-flight work to finish on Close", func() {
			var err error
			p, err = pool.New(1)
			Expect(err).NotTo(HaveOccurred())

			started := make(chan struct{})
			unblock := make(chan struct{})
			Expect(p.Submit(func() {
				close(started)
				<-unblock
			})).To(Succeed())
			Eventually(started, time.Second).Should(BeClosed())

			closeDone := make(chan struct{})
			go func() {
				p.Close()
				close(closeDone)
			}()

			Consistently(closeDone, 200*time.Millisecond).ShouldNot(BeClosed())
			close(unblock)
			Eventually(closeDone, time.Second).Should(BeClosed())
		})

		It("should drain jobs queued before Close", func() {
			var err error
			p, err = pool.New(2)
			Expect(err).NotTo(HaveOccurred())

			var counter atomic.Int32
			for range 50 {
				Expect(p.Submit(func() {
					time.Sleep(time.Millisecond)
					counter.Add(1)
				})).To(Succeed())
			}
			p.Close()

			Expect(counter.Load()).To(Equal(int32(50)))
			stats := p.Stats()
			Expect(stats.Stopped).To(Equal(2))
			Expect(stats.QueueDepth).To(BeZero())
		})

		It("should be safe to call concurrently", func() {
			var err error
			p, err = pool.New(4)
			Expect(err).NotTo(HaveOccurred())

			var wg sync.WaitGroup
			for range 5 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					p.Close()
				}()
			}

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			Eventually(done, time.Second).Should(BeClosed())
			Expect(p.Stats().Stopped).To(Equal(4))
		})
	})

	Describe("Goroutine cleanup", func() {
		It("should not leak goroutines after Close under load", func() {
			base := runtime.NumGoroutine()

			var err error
			p, err = pool.New(4)
			Expect(err).NotTo(HaveOccurred())

			for range 200 {
				_ = p.Submit(func() { time.Sleep(time.Millisecond) })
			}

			p.Close()

			Eventually(func() int {
				return runtime.NumGoroutine()
			}, 5*time.Second, 100*time.Millisecond).Should(BeNumerically("<=", base))
		})
	})
})
