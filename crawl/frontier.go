package crawl

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/cdpdoc/cdpdoc"
	"github.com/cdpdoc/cdpdoc/bloom"
)

// Compile-time interface verification.
var _ cdpdoc.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory crawl queue ordered by link priority, with
// approximate deduplication. Links of equal priority pop in insertion
// order, so the crawl proceeds breadth-first within each priority band.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.URLSet
	queue *linkQueue
	seq   uint64
}

// NewFrontier creates a Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	q := &linkQueue{}
	heap.Init(q)
	return &Frontier{
		seen:  bloom.NewURLSet(n, fpRate),
		queue: q,
	}
}

// Push adds a link to the frontier.
// Returns false if the URL has already been seen. Fragments are
// stripped first, so URLs differing only by fragment are duplicates.
func (f *Frontier) Push(link cdpdoc.DiscoveredLink) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(link.URL)
	if f.seen.MarkSeen(url) {
		return false
	}

	link.URL = url
	f.seq++
	heap.Push(f.queue, queuedLink{link: link, seq: f.seq})
	return true
}

// Pop returns the next link by priority.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (cdpdoc.DiscoveredLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return cdpdoc.DiscoveredLink{}, false
	}
	entry, _ := heap.Pop(f.queue).(queuedLink)
	return entry.link, true
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been processed or queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Seen(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// queuedLink pairs a link with its insertion sequence so that equal
// priorities keep FIFO order.
type queuedLink struct {
	link cdpdoc.DiscoveredLink
	seq  uint64
}

// linkQueue implements heap.Interface as a max-heap on link priority.
type linkQueue []queuedLink

func (q linkQueue) Len() int { return len(q) }

func (q linkQueue) Less(i, j int) bool {
	if q[i].link.Priority != q[j].link.Priority {
		return q[i].link.Priority > q[j].link.Priority
	}
	return q[i].seq < q[j].seq
}

func (q linkQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *linkQueue) Push(x any) {
	entry, _ := x.(queuedLink)
	*q = append(*q, entry)
}

func (q *linkQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[0 : n-1]
	return x
}
