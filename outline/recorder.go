// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

// Recorder collects the outline commands of exactly one glyph.
//
// The recorder performs no geometry processing. It is append-only until
// Finish, which trims the buffer to its exact size. A cubic segment puts the
// recorder into a failed state: the event is rejected with ErrCubicSegment,
// every later event is ignored and Err keeps reporting the failure.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	cmds     []Command
	err      error
	finished bool
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// MoveTo starts a new contour at (x, y).
func (r *Recorder) MoveTo(x, y float32) {
	r.push(Command{Op: OpMoveTo, Args: [2]Point{{x, y}}})
}

// LineTo records a straight segment to (x, y).
func (r *Recorder) LineTo(x, y float32) {
	r.push(Command{Op: OpLineTo, Args: [2]Point{{x, y}}})
}

// QuadTo records a quadratic segment with control (cx, cy) ending at (x, y).
func (r *Recorder) QuadTo(cx, cy, x, y float32) {
	r.push(Command{Op: OpQuadTo, Args: [2]Point{{cx, cy}, {x, y}}})
}

// CubeTo rejects a cubic segment. It always fails with ErrCubicSegment
// and leaves the recorder failed.
func (r *Recorder) CubeTo(_, _, _, _, _, _ float32) error {
	if r.err == nil {
		r.err = ErrCubicSegment
	}
	return r.err
}

// Close ends the current contour.
func (r *Recorder) Close() {
	r.push(Command{Op: OpClose})
}

func (r *Recorder) push(c Command) {
	if r.err != nil {
		return
	}
	r.cmds = append(r.cmds, c)
}

// Err returns the first contract violation seen by the recorder.
func (r *Recorder) Err() error {
	return r.err
}

// Finish trims the command buffer to its exact length and returns it.
// The recorder must not be written to afterwards except through Reset.
func (r *Recorder) Finish() []Command {
	if cap(r.cmds) > len(r.cmds) {
		exact := make([]Command, len(r.cmds))
		copy(exact, r.cmds)
		r.cmds = exact
	}
	r.finished = true
	return r.cmds
}

// Commands returns the recorded commands without trimming.
func (r *Recorder) Commands() []Command {
	return r.cmds
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.cmds)
}

// Empty reports whether the glyph produced no outline events. An empty
// recording is the "no geometry" case, distinct from an error.
func (r *Recorder) Empty() bool {
	return len(r.cmds) == 0
}

// Reset clears the recorder for reuse, keeping the allocated buffer when it
// was not handed out by Finish.
func (r *Recorder) Reset() {
	if r.finished {
		r.cmds = nil
	} else {
		r.cmds = r.cmds[:0]
	}
	r.err = nil
	r.finished = false
}
