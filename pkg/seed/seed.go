// Package seed loads people and friendship requests from YAML fixtures and
// replays them against a network in file order.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/socialgraph/pkg/validation"
)

//go:embed demo.yaml
var demoFixture []byte

// ErrMalformedPair is returned when a friendship entry does not name exactly two people.
var ErrMalformedPair = errors.New("friendship must name exactly two people")

// Fixture is an ordered list of people followed by friendship requests.
type Fixture struct {
	People      []string   `yaml:"people"`
	Friendships [][]string `yaml:"friendships"`
}

// Graph is the subset of the network a fixture is applied to.
type Graph interface {
	AddPerson(name string) bool
	AddFriendship(a, b string) bool
}

// Result counts what a fixture changed.
type Result struct {
	PeopleAdded      int
	FriendshipsAdded int
	Rejected         int
}

// Parse decodes a fixture. Unknown keys are rejected, and every name must pass
// the person-name rules: present, at most 100 characters, visible and free of
// control characters.
func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	for i, name := range f.People {
		if err := validation.ValidatePersonName(name); err != nil {
			return nil, fmt.Errorf("people[%d]: %w", i, err)
		}
	}
	for i, pair := range f.Friendships {
		if len(pair) != 2 {
			return nil, fmt.Errorf("friendships[%d]: %w, got %d", i, ErrMalformedPair, len(pair))
		}
		req := &validation.FriendshipRequest{From: pair[0], To: pair[1]}
		if err := validation.ValidateFriendshipRequest(req); err != nil {
			return nil, fmt.Errorf("friendships[%d]: %w", i, err)
		}
	}
	return &f, nil
}

// Load reads a fixture from path.
func Load(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer file.Close()

	f, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Default returns the built-in demonstration fixture.
func Default() *Fixture {
	f, err := Parse(bytes.NewReader(demoFixture))
	if err != nil {
		panic(fmt.Sprintf("seed: embedded demo fixture is invalid: %v", err))
	}
	return f
}

// Apply adds every person, then every friendship, in fixture order.
func Apply(g Graph, f *Fixture) Result {
	var res Result
	for _, name := range f.People {
		if g.AddPerson(name) {
			res.PeopleAdded++
		} else {
			res.Rejected++
		}
	}
	for _, pair := range f.Friendships {
		if g.AddFriendship(pair[0], pair[1]) {
			res.FriendshipsAdded++
		} else if !alreadyFriends(g, pair[0], pair[1]) {
			res.Rejected++
		}
	}
	return res
}

// alreadyFriends distinguishes a repeated friendship, which is silent, from a
// rejected one when g can answer the question.
func alreadyFriends(g Graph, a, b string) bool {
	q, ok := g.(interface{ AreFriends(a, b string) bool })
	return ok && q.AreFriends(a, b)
}
