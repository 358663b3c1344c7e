package ftp

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net"
	"sync"
	"time"

	_ftp "github.com/jlaffaye/ftp"
)

// recorder keeps a copy of every byte read from data connections dialed while it is armed. The ftp library only
// hands back parsed LIST entries and drops the "<dir>:" lines of a recursive listing, so the raw text is taken
// off the wire instead.
type recorder struct {
	mu    sync.Mutex
	armed bool
	buf   bytes.Buffer
}

func (r *recorder) arm() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.armed = true
	r.buf.Reset()
}

// disarm stops recording and returns what was captured.
func (r *recorder) disarm() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.armed = false
	out := make([]byte, r.buf.Len())
	copy(out, r.buf.Bytes())
	r.buf.Reset()
	return out
}

func (r *recorder) isArmed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.armed
}

func (r *recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

// dialFunc returns the dial function handed to the ftp library. The first call dials the control connection
// under ctx; later calls dial data connections and are bounded by timeout only.
func (r *recorder) dialFunc(ctx context.Context, timeout time.Duration) func(network, address string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: timeout}
	var once sync.Once
	return func(network, address string) (net.Conn, error) {
		dialCtx := context.Background()
		once.Do(func() { dialCtx = ctx })

		conn, err := dialer.DialContext(dialCtx, network, address)
		if err != nil {
			return nil, err
		}
		if r.isArmed() {
			return &teeConn{Conn: conn, w: r}, nil
		}
		return conn, nil
	}
}

// teeConn copies everything read from the wrapped connection to w.
type teeConn struct {
	net.Conn
	w io.Writer
}

func (c *teeConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if n > 0 {
		_, _ = c.w.Write(p[:n])
	}
	return n, err
}

// serverConn adapts *ftp.ServerConn to types.Client.
type serverConn struct {
	*_ftp.ServerConn
	rec *recorder
}

func (c *serverConn) Retr(p string) (io.ReadCloser, error) {
	return c.ServerConn.Retr(p)
}

func (c *serverConn) RawList(args string) ([]string, error) {
	c.rec.arm()
	_, err := c.ServerConn.List(args)
	raw := c.rec.disarm()
	if err != nil {
		return nil, err
	}
	return splitLines(raw)
}

func splitLines(raw []byte) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
