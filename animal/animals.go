package animal

import (
	"fmt"
	"io"
	"os"
)

// Ensure implementations satisfy their contracts.
var (
	_ Fleer  = (*Rabbit)(nil)
	_ Hunter = (*Wolf)(nil)
	_ Fleer  = (*Fish)(nil)
	_ Hunter = (*Fish)(nil)
)

// emitter is the shared output sink for the concrete animals.
// Entities are immutable after construction and hold no other state.
type emitter struct {
	out io.Writer
}

// Option configures an animal at construction time.
type Option func(*emitter)

// WithOutput redirects the animal's emitted lines to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(e *emitter) {
		if w != nil {
			e.out = w
		}
	}
}

func newEmitter(opts []Option) emitter {
	e := emitter{out: os.Stdout}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (e emitter) emit(line string) {
	fmt.Fprintln(e.out, line)
}

// Rabbit is prey: it can flee and nothing else.
type Rabbit struct {
	emitter
}

// NewRabbit creates a Rabbit.
func NewRabbit(opts ...Option) *Rabbit {
	return &Rabbit{emitter: newEmitter(opts)}
}

// Flee implements Fleer.
func (r *Rabbit) Flee() {
	r.emit("*The Rabbit is fleeing*")
}

// Wolf is a predator: it can hunt and nothing else.
type Wolf struct {
	emitter
}

// NewWolf creates a Wolf.
func NewWolf(opts ...Option) *Wolf {
	return &Wolf{emitter: newEmitter(opts)}
}

// Hunt implements Hunter.
func (w *Wolf) Hunt() {
	w.emit("*The Wolf is hunting*")
}

// Fish satisfies both contracts at once: it flees from bigger fish and hunts
// smaller ones. The two operations are independent.
type Fish struct {
	emitter
}

// NewFish creates a Fish.
func NewFish(opts ...Option) *Fish {
	return &Fish{emitter: newEmitter(opts)}
}

// Flee implements Fleer.
func (f *Fish) Flee() {
	f.emit("*The Fish is fleeing*")
}

// Hunt implements Hunter.
func (f *Fish) Hunt() {
	f.emit("*The Fish is hunting*")
}
