package analyze

import (
	"github.com/kaslabs/textstat/internal/partition"
)

// worker scans one partition of the input and merges its private tally into
// the shared aggregate exactly once. A worker never reads another worker's
// partition and never touches the aggregate outside Merge; the aggregate
// handle is passed in explicitly rather than reached through any global.
type worker struct {
	id   int
	buf  []byte
	part partition.Partition
	term string
	agg  *Aggregate
}

// run scans the worker's byte range and performs the single locked merge.
// The scan happens entirely on the worker's private Stats value; the lock
// inside Merge is held only for the field additions.
func (w *worker) run() {
	local := scanText(w.buf[w.part.Start:w.part.End], w.term)
	w.agg.Merge(local)
}
