package browser

import "time"

// SessionState tracks the lifecycle of the single managed browser session.
type SessionState int

const (
	// StateClosed means no browser is running. The first tool call launches one.
	StateClosed SessionState = iota

	// StateLaunching means a launch sequence is in progress.
	StateLaunching

	// StateReady means the browser and page are live and usable.
	StateReady

	// StateCrashed means the browser died underneath us. The next
	// EnsureReady performs exactly one automatic relaunch.
	StateCrashed
)

func (s SessionState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateLaunching:
		return "launching"
	case StateReady:
		return "ready"
	case StateCrashed:
		return "crashed"
	default:
		return "invalid"
	}
}

// Attribute is a single element attribute. Order of appearance is preserved,
// so attributes are a slice rather than a map.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DomNode is a serialized snapshot of one element and, depth permitting,
// its descendants. Children always carry depth = parent depth + 1.
type DomNode struct {
	Tag        string      `json:"tag"`
	Attributes []Attribute `json:"attributes,omitempty"`
	Text       string      `json:"text,omitempty"`
	Children   []*DomNode  `json:"children,omitempty"`
	Depth      int         `json:"depth"`
}

// NodeCount returns the number of nodes in the tree rooted at n.
func (n *DomNode) NodeCount() int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.Children {
		count += child.NodeCount()
	}
	return count
}

// FrameBoundaryAttr marks a node standing in for an embedded document
// (iframe/frame). Such nodes are leaves: traversal never crosses into a
// foreign browsing context.
const FrameBoundaryAttr = "data-frame-boundary"

// ElementDescriptor is the lightweight per-match summary returned by
// find_elements.
type ElementDescriptor struct {
	Index int    `json:"index"`
	Tag   string `json:"tag"`
	Text  string `json:"text,omitempty"`
	ID    string `json:"id,omitempty"`
	Class string `json:"class,omitempty"`
}

// WaitState is the element state a wait condition targets.
type WaitState string

const (
	WaitAttached WaitState = "attached"
	WaitDetached WaitState = "detached"
	WaitVisible  WaitState = "visible"
	WaitHidden   WaitState = "hidden"
)

// ValidWaitState reports whether s names a supported wait state.
func ValidWaitState(s WaitState) bool {
	switch s {
	case WaitAttached, WaitDetached, WaitVisible, WaitHidden:
		return true
	}
	return false
}

// ConsoleLogEntry is one captured console message.
type ConsoleLogEntry struct {
	Level     string    `json:"level"`
	Text      string    `json:"text"`
	Location  string    `json:"location,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NetworkRequestEntry is one captured network request. Status stays zero
// until the response resolves.
type NetworkRequestEntry struct {
	URL          string    `json:"url"`
	Method       string    `json:"method"`
	ResourceType string    `json:"resource_type,omitempty"`
	Status       int       `json:"status,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Default values for browser operations.
const (
	DefaultTimeout        = 30 * time.Second
	DefaultPollInterval   = 100 * time.Millisecond
	DefaultMaxDepth       = 10
	DefaultBufferCapacity = 1000
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720

	// maxDescriptorText bounds the direct-text excerpt in element
	// descriptors and DOM nodes, matching the summaries the tools return.
	maxDescriptorText = 80
)
