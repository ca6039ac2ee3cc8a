// Package netx contains small transport helpers shared by the upload
// backends.
package netx

import "io"

// ProgressFunc receives the cumulative number of bytes sent and the total
// payload size.
type ProgressFunc func(sent, total int64)

// ProgressReader wraps r and reports read progress through fn. The photo API
// gives no transfer feedback of its own, so counting bytes as the transport
// drains the request body is the only real progress signal available.
type ProgressReader struct {
	r     io.Reader
	total int64
	sent  int64
	fn    ProgressFunc
}

func NewProgressReader(r io.Reader, total int64, fn ProgressFunc) *ProgressReader {
	return &ProgressReader{r: r, total: total, fn: fn}
}

func (p *ProgressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.fn != nil {
			p.fn(p.sent, p.total)
		}
	}
	return n, err
}
