package network

import (
	"io"
	"strings"
	"sync"

	"github.com/dd0wney/socialgraph/pkg/logging"
	"github.com/dd0wney/socialgraph/pkg/metrics"
)

// Operation names used in logs, metrics and errors
const (
	OpAddPerson     = "add_person"
	OpAddFriendship = "add_friendship"
)

// person is an arena record. Friends are indices into Network.people, kept in
// the order the friendships were established.
type person struct {
	name      string
	friends   []int
	friendSet map[int]struct{}
}

// Network is an undirected friendship graph keyed by person name.
// People and friendships are append-only.
type Network struct {
	id string

	mu          sync.RWMutex
	people      []*person
	index       map[string]int
	friendships int
	diagnostics int

	out     io.Writer // network listing
	diag    io.Writer // rejection notices
	logger  logging.Logger
	metrics *metrics.Registry
}

// Entry is a read-only copy of one person and their friends, in order.
type Entry struct {
	Name    string
	Friends []string
}

// String renders the entry as a listing line without the trailing newline.
func (e Entry) String() string {
	return e.Name + " is friends with: " + strings.Join(e.Friends, ", ")
}

// Stats summarises the network.
type Stats struct {
	People      int `json:"people"`
	Friendships int `json:"friendships"`
	Diagnostics int `json:"diagnostics"`
}

// Option configures a Network.
type Option func(*Network)

// WithOutput sets the writer used by PrintNetwork. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(n *Network) {
		n.out = w
	}
}

// WithDiagnostics sets the writer rejection notices go to. Defaults to stdout.
func WithDiagnostics(w io.Writer) Option {
	return func(n *Network) {
		n.diag = w
	}
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(n *Network) {
		n.logger = l
	}
}

// WithMetrics records operation metrics in r.
func WithMetrics(r *metrics.Registry) Option {
	return func(n *Network) {
		n.metrics = r
	}
}

// WithID overrides the generated network ID.
func WithID(id string) Option {
	return func(n *Network) {
		n.id = id
	}
}
