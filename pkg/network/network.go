package network

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/socialgraph/pkg/logging"
	"github.com/dd0wney/socialgraph/pkg/metrics"
)

// New creates an empty network.
func New(opts ...Option) *Network {
	n := &Network{
		id:    uuid.NewString(),
		index: make(map[string]int),
		out:   os.Stdout,
		diag:  os.Stdout,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = logging.DefaultLogger()
	}
	n.logger = n.logger.With(logging.Component("network"), logging.NetworkID(n.id))
	return n
}

// ID returns the network's instance identifier.
func (n *Network) ID() string {
	return n.id
}

// AddPerson adds a person with no friends. A duplicate or empty name prints a
// notice and leaves the network unchanged. Any other name is accepted as given.
// Reports whether a person was added.
func (n *Network) AddPerson(name string) bool {
	start := time.Now()

	n.mu.Lock()
	err := n.addPersonLocked(name)
	n.noteLocked(err)
	stats := n.statsLocked()
	n.mu.Unlock()

	n.observe(OpAddPerson, start, err, stats, logging.Person(name))
	return err == nil
}

func (n *Network) addPersonLocked(name string) *NetworkError {
	if name == "" {
		return NewError(OpAddPerson).People(name).Cause(ErrInvalidName).Detail("name is empty").Build()
	}
	if _, ok := n.index[name]; ok {
		return NewError(OpAddPerson).People(name).Cause(ErrPersonExists).Build()
	}

	n.index[name] = len(n.people)
	n.people = append(n.people, &person{
		name:      name,
		friendSet: make(map[int]struct{}),
	})
	return nil
}

// AddFriendship connects two existing people in both directions. If either is
// missing, or both names are the same person, a notice is printed and nothing
// changes. Repeating an existing friendship is a no-op. Reports whether a new
// friendship was created.
func (n *Network) AddFriendship(a, b string) bool {
	start := time.Now()

	n.mu.Lock()
	created, err := n.addFriendshipLocked(a, b)
	n.noteLocked(err)
	stats := n.statsLocked()
	n.mu.Unlock()

	n.observe(OpAddFriendship, start, err, stats, logging.Person(a), logging.Friend(b))
	return created
}

func (n *Network) addFriendshipLocked(a, b string) (bool, *NetworkError) {
	ia, okA := n.index[a]
	ib, okB := n.index[b]
	if !okA || !okB {
		return false, NewError(OpAddFriendship).People(a, b).Cause(ErrPersonNotFound).Build()
	}
	if ia == ib {
		return false, NewError(OpAddFriendship).People(a, b).Cause(ErrSelfFriendship).Build()
	}

	pa, pb := n.people[ia], n.people[ib]
	if _, ok := pa.friendSet[ib]; ok {
		return false, nil
	}

	pa.friends = append(pa.friends, ib)
	pa.friendSet[ib] = struct{}{}
	pb.friends = append(pb.friends, ia)
	pb.friendSet[ia] = struct{}{}
	n.friendships++
	return true, nil
}

// noteLocked prints the notice for a rejection. Called with the write lock
// held so notices and mutations stay in call order.
func (n *Network) noteLocked(err *NetworkError) {
	if err == nil {
		return
	}
	n.diagnostics++
	fmt.Fprintln(n.diag, err.Diagnostic())
}

func (n *Network) observe(op string, start time.Time, err *NetworkError, stats Stats, fields ...logging.Field) {
	elapsed := time.Since(start)
	fields = append(fields, logging.Operation(op))

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusRejected
		// Rejections are advisory, not failures
		n.logger.Info("operation rejected", append(fields, logging.Error(err), logging.String("kind", Kind(err)))...)
	} else {
		n.logger.Debug("operation applied", append(fields, logging.Duration("latency", elapsed))...)
	}

	if n.metrics == nil {
		return
	}
	n.metrics.RecordOperation(op, status, elapsed)
	if err != nil {
		n.metrics.RecordDiagnostic(Kind(err))
	}
	n.metrics.UpdateNetworkSize(stats.People, stats.Friendships)
}
