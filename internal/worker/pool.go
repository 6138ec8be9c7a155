package worker

import "sync"

// Job produces one output value. Jobs carry their own context and
// error handling; the pool only schedules them.
type Job[T any] func() T

// Result pairs a job's output with the index it was submitted under,
// so callers can reassemble outputs in submission order.
type Result[T any] struct {
	Index  int
	Output T
}

// Pool fans jobs out over a fixed set of goroutines.
type Pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan Result[T]
	wg      sync.WaitGroup
}

type jobWrapper[T any] struct {
	index int
	fn    Job[T]
}

func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	p := &Pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- Result[T]{
			Index:  job.index,
			Output: job.fn(),
		}
	}
}

func (p *Pool[T]) Submit(index int, fn Job[T]) {
	p.jobs <- jobWrapper[T]{index: index, fn: fn}
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Close stops accepting jobs and closes the results channel once all
// in-flight jobs have finished.
func (p *Pool[T]) Close() {
	close(p.jobs)
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

// Map runs fn over every input on workerCount goroutines and returns
// the outputs in input order.
func Map[In, Out any](workerCount int, inputs []In, fn func(In) Out) []Out {
	if len(inputs) == 0 {
		return nil
	}
	if workerCount > len(inputs) {
		workerCount = len(inputs)
	}

	pool := NewPool[Out](workerCount, len(inputs))
	for i, in := range inputs {
		pool.Submit(i, func() Out { return fn(in) })
	}
	pool.Close()

	outputs := make([]Out, len(inputs))
	for res := range pool.Results() {
		outputs[res.Index] = res.Output
	}
	return outputs
}
