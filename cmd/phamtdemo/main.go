package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/noahbenson/phamt-go"
)

func main() {
	n := flag.Int("n", 200_000, "number of keys to insert")
	flag.Parse()

	prng := rand.New(rand.NewPCG(42, 42))
	log.SetFlags(log.Lmicroseconds)

	m := phamt.Empty64[string]()
	ts := time.Now()
	keys := randomKeys(prng, *n)
	for _, k := range keys {
		m = m.Assoc(k, "v")
	}
	log.Printf("inserted %d keys: %v, size: %d", *n, time.Since(ts), m.Size())

	var mu sync.Mutex // guards only the local m variable, not the trie itself
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			mu.Lock()
			cur := m
			mu.Unlock()
			log.Printf("Map64.Size(): %d", cur.Size())
			time.Sleep(200 * time.Millisecond)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			churn := randomKeys(prng, 1_000)
			mu.Lock()
			for _, k := range churn {
				m = m.Assoc(k, "churn")
			}
			mu.Unlock()
			time.Sleep(200 * time.Millisecond)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			mu.Lock()
			cur := m
			mu.Unlock()
			dropped := 0
			for k := range cur.All() {
				cur = cur.Dissoc(k)
				dropped++
				if dropped >= 500 {
					break
				}
			}
			mu.Lock()
			m = cur
			mu.Unlock()
			time.Sleep(200 * time.Millisecond)
		}
	}()

	wg.Wait()
	log.Printf("final size: %d", m.Size())
}

func randomKeys(prng *rand.Rand, n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = prng.Uint64()
	}
	return keys
}
