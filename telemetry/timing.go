package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TimingCollector records timings as a tree. The first Start call becomes
// the root; later timers nest under whichever timer is currently open.
type TimingCollector struct {
	mu      sync.Mutex
	root    *timerNode
	current *timerNode
}

type timerNode struct {
	name     string
	start    time.Time
	end      time.Time
	parent   *timerNode
	children []*timerNode
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	node := &timerNode{name: name, start: time.Now()}
	if c.root == nil {
		c.root = node
	} else {
		node.parent = c.current
		c.current.children = append(c.current.children, node)
	}
	c.current = node

	return &timingTimer{collector: c, node: node}
}

// Report writes the timing tree, one line per operation:
//
//	add: 125ms
//	├─ load journal: 85ms
//	│  └─ scan: 45ms
//	└─ insert: 40ms
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}

	_, _ = fmt.Fprintf(w, "%s: %s\n", c.root.name, formatDuration(c.root.end.Sub(c.root.start)))
	writeChildren(w, c.root, "")
}

type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

func (t *timingTimer) End() {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	t.node.end = time.Now()
	if t.node.parent != nil {
		t.collector.current = t.node.parent
	}
}

func (t *timingTimer) Child(name string) Timer {
	t.collector.mu.Lock()
	defer t.collector.mu.Unlock()

	node := &timerNode{name: name, start: time.Now(), parent: t.node}
	t.node.children = append(t.node.children, node)

	return &timingTimer{collector: t.collector, node: node}
}

func writeChildren(w io.Writer, node *timerNode, prefix string) {
	for i, child := range node.children {
		branch, extension := "├─ ", "│  "
		if i == len(node.children)-1 {
			branch, extension = "└─ ", "   "
		}

		_, _ = fmt.Fprintf(w, "%s%s%s: %s\n",
			prefix, branch, child.name, formatDuration(child.end.Sub(child.start)))
		writeChildren(w, child, prefix+extension)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}
