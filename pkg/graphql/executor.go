package graphql

import (
	"context"
	"fmt"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"

	"github.com/dd0wney/socialgraph/pkg/logging"
	"github.com/dd0wney/socialgraph/pkg/metrics"
)

// ExecutorConfig configures an Executor. Zero values fall back to defaults.
type ExecutorConfig struct {
	MaxDepth int
	Metrics  *metrics.Registry
	Logger   logging.Logger
}

// DefaultMaxDepth allows person { friends { friends { name } } } and a bit more.
const DefaultMaxDepth = 5

// Executor runs depth-limited queries against a schema.
type Executor struct {
	schema   graphql.Schema
	maxDepth int
	metrics  *metrics.Registry
	logger   logging.Logger
}

// NewExecutor builds the schema for src and wraps it with a depth limit.
func NewExecutor(src Source, cfg ExecutorConfig) (*Executor, error) {
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must not be negative, got %d", cfg.MaxDepth)
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.DefaultLogger()
	}

	schema, err := NewSchema(src)
	if err != nil {
		return nil, err
	}

	return &Executor{
		schema:   schema,
		maxDepth: cfg.MaxDepth,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger.With(logging.Component("graphql")),
	}, nil
}

// Schema returns the underlying schema.
func (e *Executor) Schema() graphql.Schema {
	return e.schema
}

// Execute validates the query depth and runs it. Errors are reported in the
// result, never returned.
func (e *Executor) Execute(ctx context.Context, query string, variables map[string]any) *graphql.Result {
	start := time.Now()

	var result *graphql.Result
	if err := ValidateQueryDepth(query, e.maxDepth); err != nil {
		result = &graphql.Result{
			Errors: []gqlerrors.FormattedError{gqlerrors.FormatError(err)},
		}
	} else {
		result = graphql.Do(graphql.Params{
			Schema:         e.schema,
			RequestString:  query,
			VariableValues: variables,
			Context:        ctx,
		})
	}

	elapsed := time.Since(start)
	status := metrics.StatusSuccess
	if result.HasErrors() {
		status = metrics.StatusError
		e.logger.Warn("query failed",
			logging.Int("errors", len(result.Errors)),
			logging.String("first_error", result.Errors[0].Message),
		)
	} else {
		e.logger.Debug("query executed", logging.Duration("latency", elapsed))
	}
	if e.metrics != nil {
		e.metrics.RecordQuery(status, elapsed)
	}
	return result
}
