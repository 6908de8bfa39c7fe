package media

import (
	"fmt"
	"io"
	"os"
)

var (
	_ Player = (*Video)(nil)
	_ Player = (*Audio)(nil)
)

type emitter struct {
	out io.Writer
}

// Option configures a player at construction time.
type Option func(*emitter)

// WithOutput redirects the player's emitted lines to w instead of stdout.
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

// Video plays moving pictures.
type Video struct {
	emitter
}

// NewVideo creates a Video.
func NewVideo(opts ...Option) *Video {
	return &Video{emitter: newEmitter(opts)}
}

// Play implements Player.
func (v *Video) Play() {
	v.emit("*The Video is playing*")
}

// Audio plays sound.
type Audio struct {
	emitter
}

// NewAudio creates an Audio.
func NewAudio(opts ...Option) *Audio {
	return &Audio{emitter: newEmitter(opts)}
}

// Play implements Player.
func (a *Audio) Play() {
	a.emit("*The Audio is playing*")
}
