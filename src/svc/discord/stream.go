package discord

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/textproto"
	"strings"
	"sync"
	"time"
)

// maxBatch keeps a flushed batch under the 2000 character message limit.
const maxBatch = 1800

type logStream struct {
	send     func(content string)
	interval time.Duration

	mtx sync.Mutex
	buf bytes.Buffer
}

func newLogStream(send func(content string)) *logStream {
	return &logStream{
		send:     send,
		interval: time.Second,
	}
}

// run batches lines read from logs and hands them to send every interval, or sooner once a
// batch would overflow. It returns when logs is closed, after a final flush. Once ctx is done
// lines are still drained from logs but no longer sent.
func (s *logStream) run(ctx context.Context, logs io.Reader) {
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		tick := time.NewTicker(s.interval)
		defer tick.Stop()
		for {
			select {
			case <-tick.C:
				s.deliver(ctx, s.take())
			case <-ctx.Done():
				return
			case <-stop:
				return
			}
		}
	}()

	lines := textproto.NewReader(bufio.NewReader(logs))
	for {
		line, err := lines.ReadLine()
		if err != nil {
			s.deliver(ctx, s.take())
			return
		}
		s.deliver(ctx, s.write(line))
	}
}

// write appends line to the batch and returns the previous batch when line would overflow it.
func (s *logStream) write(line string) string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var full string
	if s.buf.Len()+len(line)+1 > maxBatch {
		full = s.takeLocked()
	}
	_, _ = s.buf.WriteString(line + "\n")
	return full
}

func (s *logStream) take() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.takeLocked()
}

func (s *logStream) takeLocked() string {
	content := strings.TrimSpace(s.buf.String())
	s.buf.Reset()
	return content
}

func (s *logStream) deliver(ctx context.Context, content string) {
	if len(content) == 0 || ctx.Err() != nil {
		return
	}
	s.send(content)
}
