package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

// Capture reads the default input device and keeps the most recently analyzed
// frame. The portaudio callback runs on its own thread; Next hands out a copy
// under a mutex so the render loop never touches analyzer state.
type Capture struct {
	analyzer *Analyzer
	stream   *portaudio.Stream
	buf      []float64
	epoch    time.Time

	mu     sync.Mutex
	latest Frame
	have   bool
}

// NewCapture builds a capture source; Start must be called before Next yields
// frames.
func NewCapture(sampleRate float64, windowSize int) *Capture {
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}
	return &Capture{
		analyzer: NewAnalyzer(sampleRate, windowSize),
		buf:      make([]float64, windowSize),
	}
}

// Start opens the default mono input stream.
func (c *Capture) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio init: %w", err)
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, c.analyzer.sampleRate, len(c.buf), c.process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("open input stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("start input stream: %w", err)
	}
	c.stream = stream
	c.epoch = time.Now()
	return nil
}

func (c *Capture) process(in []float32) {
	for i := range c.buf {
		if i < len(in) {
			c.buf[i] = float64(in[i])
		} else {
			c.buf[i] = 0
		}
	}
	frame := c.analyzer.Analyze(c.buf, uint64(time.Since(c.epoch).Milliseconds()))

	c.mu.Lock()
	c.latest = frame
	c.have = true
	c.mu.Unlock()
}

// Next returns the most recent frame; ok is false until the first buffer has
// been analyzed.
func (c *Capture) Next() (Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest, c.have
}

// Stop closes the stream and tears down portaudio.
func (c *Capture) Stop() {
	if c.stream != nil {
		c.stream.Stop()
		c.stream.Close()
		c.stream = nil
	}
	portaudio.Terminate()
}
