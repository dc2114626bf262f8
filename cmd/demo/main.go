// Command demo drives a bounded mpmcchan.Channel with a configurable
// number of producer and consumer goroutines and reports throughput.
//
// Configuration is flag-parsed; a SIGINT/SIGTERM handler cancels a shared
// context so producers stop submitting new work and the run can wind
// down in bounded time.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rishav/mpmcchan"
)

func main() {
	capacity := flag.Int("capacity", 128, "channel capacity")
	producers := flag.Int("producers", 4, "number of producer goroutines")
	consumers := flag.Int("consumers", 4, "number of consumer goroutines")
	perProducer := flag.Int("per-producer", 250000, "messages sent by each producer")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("demo: received shutdown signal")
		cancel()
	}()

	ch := mpmcchan.NewChannel[int](*capacity)

	var sent, received int64
	var wg sync.WaitGroup

	start := time.Now()

	wg.Add(*producers)
	for p := 0; p < *producers; p++ {
		go func(id int) {
			defer wg.Done()
			base := id * *perProducer
			for i := 0; i < *perProducer; i++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if err := ch.Send(base + i); err != nil {
					log.Printf("demo: producer %d stopped: %v", id, err)
					return
				}
				atomic.AddInt64(&sent, 1)
			}
		}(p)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		ch.Close()
	}()

	var consumerWG sync.WaitGroup
	consumerWG.Add(*consumers)
	for c := 0; c < *consumers; c++ {
		go func(id int) {
			defer consumerWG.Done()
			for {
				_, err := ch.Recv()
				if err != nil {
					return
				}
				atomic.AddInt64(&received, 1)
			}
		}(c)
	}

	go func() {
		consumerWG.Wait()
		close(done)
	}()

	<-done
	elapsed := time.Since(start)

	log.Printf("demo: sent=%d received=%d elapsed=%s", atomic.LoadInt64(&sent), atomic.LoadInt64(&received), elapsed)
}
