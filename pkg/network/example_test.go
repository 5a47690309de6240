package network_test

import (
	"os"

	"github.com/dd0wney/socialgraph/pkg/logging"
	"github.com/dd0wney/socialgraph/pkg/network"
)

func ExampleNetwork() {
	n := network.New(
		network.WithOutput(os.Stdout),
		network.WithLogger(logging.NewNopLogger()),
	)

	n.AddPerson("Alex")
	n.AddPerson("Jordan")
	n.AddPerson("Alex")
	n.AddFriendship("Alex", "Jordan")
	n.AddFriendship("Jordan", "Johnny")
	n.PrintNetwork()

	// Output:
	// Alex already exists in the network.
	// Friendship not created. One or both people don't exist: Jordan, Johnny
	// Alex is friends with: Jordan
	// Jordan is friends with: Alex
}
