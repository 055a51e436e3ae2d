package controller

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
)

// segmentRing keeps the most recent probe segments.
type segmentRing struct {
	buf  []common.Segment
	next int
	full bool
}

func newSegmentRing(capacity int) segmentRing {
	return segmentRing{buf: make([]common.Segment, capacity)}
}

func (r *segmentRing) push(s common.Segment) {
	if len(r.buf) == 0 {
		return
	}
	r.buf[r.next] = s
	r.next = (r.next + 1) % len(r.buf)
	if r.next == 0 {
		r.full = true
	}
}

// snapshot returns the segments oldest first.
func (r *segmentRing) snapshot() []common.Segment {
	if !r.full {
		return append([]common.Segment(nil), r.buf[:r.next]...)
	}
	out := make([]common.Segment, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	return append(out, r.buf[:r.next]...)
}
