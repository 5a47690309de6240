package network

import (
	"fmt"
	"io"
)

// HasPerson reports whether name is in the network.
func (n *Network) HasPerson(name string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.index[name]
	return ok
}

// Friends returns name's friends in the order the friendships were made.
// The second result is false if name is not in the network.
func (n *Network) Friends(name string) ([]string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	i, ok := n.index[name]
	if !ok {
		return nil, false
	}
	return n.friendNamesLocked(n.people[i]), true
}

// AreFriends reports whether a and b are friends.
func (n *Network) AreFriends(a, b string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ia, okA := n.index[a]
	ib, okB := n.index[b]
	if !okA || !okB {
		return false
	}
	_, ok := n.people[ia].friendSet[ib]
	return ok
}

// People returns every name in insertion order.
func (n *Network) People() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	names := make([]string, len(n.people))
	for i, p := range n.people {
		names[i] = p.name
	}
	return names
}

// Len returns the number of people.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.people)
}

// FriendshipCount returns the number of undirected friendships.
func (n *Network) FriendshipCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.friendships
}

// Stats returns current counts.
func (n *Network) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.statsLocked()
}

func (n *Network) statsLocked() Stats {
	return Stats{
		People:      len(n.people),
		Friendships: n.friendships,
		Diagnostics: n.diagnostics,
	}
}

// Snapshot copies the network in listing order.
func (n *Network) Snapshot() []Entry {
	n.mu.RLock()
	defer n.mu.RUnlock()

	entries := make([]Entry, len(n.people))
	for i, p := range n.people {
		entries[i] = Entry{Name: p.name, Friends: n.friendNamesLocked(p)}
	}
	return entries
}

func (n *Network) friendNamesLocked(p *person) []string {
	names := make([]string, len(p.friends))
	for i, idx := range p.friends {
		names[i] = n.people[idx].name
	}
	return names
}

// WriteTo writes one "{name} is friends with: {friends}" line per person.
func (n *Network) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range n.Snapshot() {
		written, err := fmt.Fprintln(w, e.String())
		total += int64(written)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// PrintNetwork writes the listing to the network's output writer.
func (n *Network) PrintNetwork() error {
	_, err := n.WriteTo(n.out)
	return err
}

// CheckInvariants verifies the arena: every key matches its record, every
// friendship is mirrored, and there are no self or duplicate friendships.
func (n *Network) CheckInvariants() error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if len(n.index) != len(n.people) {
		return fmt.Errorf("%w: index has %d keys for %d people", ErrInvariantViolation, len(n.index), len(n.people))
	}

	degrees := 0
	for i, p := range n.people {
		if got, ok := n.index[p.name]; !ok || got != i {
			return fmt.Errorf("%w: %s is not indexed at position %d", ErrInvariantViolation, p.name, i)
		}
		if len(p.friends) != len(p.friendSet) {
			return fmt.Errorf("%w: %s has duplicate friends", ErrInvariantViolation, p.name)
		}
		for _, j := range p.friends {
			if j == i {
				return fmt.Errorf("%w: %s is their own friend", ErrInvariantViolation, p.name)
			}
			if j < 0 || j >= len(n.people) {
				return fmt.Errorf("%w: %s has dangling friend index %d", ErrInvariantViolation, p.name, j)
			}
			if _, ok := n.people[j].friendSet[i]; !ok {
				return fmt.Errorf("%w: %s lists %s but not the reverse", ErrInvariantViolation, p.name, n.people[j].name)
			}
		}
		degrees += len(p.friends)
	}

	if degrees != 2*n.friendships {
		return fmt.Errorf("%w: degree sum %d does not match %d friendships", ErrInvariantViolation, degrees, n.friendships)
	}
	return nil
}
