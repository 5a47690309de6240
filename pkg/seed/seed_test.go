package seed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/socialgraph/pkg/logging"
	"github.com/dd0wney/socialgraph/pkg/network"
)

func TestDefault(t *testing.T) {
	f := Default()
	assert.Equal(t, []string{"Alex", "Jordan", "Morgan", "Taylor", "Casey", "Riley"}, f.People)
	require.Len(t, f.Friendships, 9)
	assert.Equal(t, []string{"Jordan", "Johnny"}, f.Friendships[3])
}

func TestApply_Demo(t *testing.T) {
	var out bytes.Buffer
	n := network.New(
		network.WithOutput(&out),
		network.WithDiagnostics(&out),
		network.WithLogger(logging.NewNopLogger()),
	)

	res := Apply(n, Default())
	assert.Equal(t, Result{PeopleAdded: 6, FriendshipsAdded: 8, Rejected: 1}, res)

	require.NoError(t, n.PrintNetwork())
	want := `Friendship not created. One or both people don't exist: Jordan, Johnny
Alex is friends with: Jordan, Morgan, Taylor
Jordan is friends with: Alex, Taylor
Morgan is friends with: Alex, Casey, Riley
Taylor is friends with: Jordan, Riley, Alex
Casey is friends with: Morgan, Riley
Riley is friends with: Taylor, Casey, Morgan
`
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, strings.Count(out.String(), "don't exist"))
}

func TestApply_RepeatedFriendshipIsNotRejected(t *testing.T) {
	n := network.New(network.WithDiagnostics(&bytes.Buffer{}), network.WithLogger(logging.NewNopLogger()))
	f := &Fixture{
		People:      []string{"Alex", "Jordan", "Alex"},
		Friendships: [][]string{{"Alex", "Jordan"}, {"Jordan", "Alex"}},
	}

	res := Apply(n, f)
	assert.Equal(t, Result{PeopleAdded: 2, FriendshipsAdded: 1, Rejected: 1}, res)
}

type recordingGraph struct {
	calls []string
}

func (r *recordingGraph) AddPerson(name string) bool {
	r.calls = append(r.calls, "person:"+name)
	return true
}

func (r *recordingGraph) AddFriendship(a, b string) bool {
	r.calls = append(r.calls, "friendship:"+a+"-"+b)
	return false
}

func TestApply_OrderAndInterface(t *testing.T) {
	g := &recordingGraph{}
	res := Apply(g, &Fixture{
		People:      []string{"B", "A"},
		Friendships: [][]string{{"A", "B"}},
	})

	assert.Equal(t, []string{"person:B", "person:A", "friendship:A-B"}, g.calls)
	// Without AreFriends every false return counts as a rejection
	assert.Equal(t, 1, res.Rejected)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
		people  int
	}{
		{"valid", "people: [a, b]\nfriendships:\n  - [a, b]\n", "", 2},
		{"empty document", "", "", 0},
		{"people only", "people: [a]\n", "", 1},
		{"three names", "people: [a, b, c]\nfriendships:\n  - [a, b, c]\n", "exactly two people", 0},
		{"one name", "friendships:\n  - [a]\n", "exactly two people", 0},
		{"unknown key", "persons: [a]\n", "field persons not found", 0},
		{"bad yaml", "people: [a\n", "decode fixture", 0},
		{"blank person", "people: [a, '  ']\n", "people[1]: Name: must contain visible characters", 0},
		{"empty person", "people: ['']\n", "people[0]: Name: field is required", 0},
		{"long person", "people: [" + strings.Repeat("x", 101) + "]\n", "must not exceed 100", 0},
		{"control char in pair", "people: [a, b]\nfriendships:\n  - [a, \"b\\tc\"]\n", "friendships[0]: To: must contain", 0},
		{"empty pair member", "friendships:\n  - ['', b]\n", "friendships[0]: From: field is required", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, f.People, tt.people)
		})
	}
}

func TestParse_MalformedPairSentinel(t *testing.T) {
	_, err := Parse(strings.NewReader("friendships:\n  - [a]\n"))
	assert.ErrorIs(t, err, ErrMalformedPair)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "club.yaml")
	require.NoError(t, os.WriteFile(path, []byte("people: [Sam, Kim]\nfriendships:\n  - [Sam, Kim]\n"), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sam", "Kim"}, f.People)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
