package kernels

import "sync"

// forEachLine runs task for every line index in [0, n). With parallel set,
// lines are split into chunks processed by separate goroutines; lines within
// one pass are independent so no further synchronisation is needed.
func forEachLine(n int, parallel bool, task func(line int)) {
	if !parallel || n < 4 {
		for l := 0; l < n; l++ {
			task(l)
		}
		return
	}

	chunk := chooseChunk(n)
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for l := s; l < e; l++ {
				task(l)
			}
		}(start, end)
	}
	wg.Wait()
}

// chooseChunk picks a work chunk size that balances goroutine overhead and
// cache locality.
func chooseChunk(n int) int {
	switch {
	case n >= 2048:
		return 128
	case n >= 512:
		return 64
	default:
		return 32
	}
}
