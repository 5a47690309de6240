// Package graphql exposes a read-only GraphQL schema over a network. Queries
// run in-process; there is no HTTP transport.
package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/socialgraph/pkg/network"
)

// Source is the read side of a network the schema resolves against.
type Source interface {
	HasPerson(name string) bool
	People() []string
	Friends(name string) ([]string, bool)
	AreFriends(a, b string) bool
	Stats() network.Stats
}

// personRef is the resolver source for the Person type. Friends are looked up
// once per ref, so friends and friendCount agree within a query.
type personRef struct {
	name    string
	friends []string
	loaded  bool
}

func (r *personRef) friendNames(src Source) []string {
	if !r.loaded {
		r.friends, _ = src.Friends(r.name)
		r.loaded = true
	}
	return r.friends
}

// NewSchema builds the schema:
//
//	type Person { name: String!, friends: [Person!]!, friendCount: Int! }
//	type Stats  { people: Int!, friendships: Int!, diagnostics: Int! }
//	type Query  {
//	  person(name: String!): Person
//	  people: [Person!]!
//	  areFriends(a: String!, b: String!): Boolean!
//	  stats: Stats!
//	}
func NewSchema(src Source) (graphql.Schema, error) {
	var personType *graphql.Object
	personType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Person",
		Description: "A member of the network",
		Fields: (graphql.FieldsThunk)(func() graphql.Fields {
			return graphql.Fields{
				"name": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*personRef).name, nil
					},
				},
				"friends": &graphql.Field{
					Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(personType))),
					Description: "Friends in the order the friendships were made",
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return refs(p.Source.(*personRef).friendNames(src)), nil
					},
				},
				"friendCount": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return len(p.Source.(*personRef).friendNames(src)), nil
					},
				},
			}
		}),
	})

	statsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Stats",
		Fields: graphql.Fields{
			"people": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(network.Stats).People, nil
				},
			},
			"friendships": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(network.Stats).Friendships, nil
				},
			},
			"diagnostics": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(network.Stats).Diagnostics, nil
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"person": &graphql.Field{
				Type: personType,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["name"].(string)
					if !src.HasPerson(name) {
						return nil, nil
					}
					return &personRef{name: name}, nil
				},
			},
			"people": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(personType))),
				Description: "Everyone, in the order they joined",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return refs(src.People()), nil
				},
			},
			"areFriends": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"a": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"b": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					a, _ := p.Args["a"].(string)
					b, _ := p.Args["b"].(string)
					return src.AreFriends(a, b), nil
				},
			},
			"stats": &graphql.Field{
				Type: graphql.NewNonNull(statsType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return src.Stats(), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("build schema: %w", err)
	}
	return schema, nil
}

func refs(names []string) []*personRef {
	out := make([]*personRef, len(names))
	for i, n := range names {
		out[i] = &personRef{name: n}
	}
	return out
}
