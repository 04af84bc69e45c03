package agent

import (
	"errors"

	"github.com/seenimoa/tickerpulse/pkg/models"
)

// ErrNoCompanyProvided is set on NewsState.Err when the parse stage found
// nothing to look up.
var ErrNoCompanyProvided = errors.New("no company provided")

// NewsState is the request-scoped record passed between agent stages.
// Stages take it by value and return an updated copy.
type NewsState struct {
	Prompt   string
	Company  string
	Items    int
	Symbol   string
	Name     string
	Rows     []models.ScoredRow
	Summary  models.Summary
	Snapshot *models.Snapshot
	Err      error
}

// AgentState is the parent conversation state that embeds a news run.
type AgentState struct {
	Prompt     string
	NewsResult *NewsState
	RouteTaken []string
}

// IntoNewsState starts a news run from the parent prompt.
func IntoNewsState(parent AgentState) NewsState {
	return NewsState{Prompt: parent.Prompt}
}

// OutOfNewsState attaches child to a copy of parent and records the route.
// parent.RouteTaken is not modified.
func OutOfNewsState(parent AgentState, child NewsState) AgentState {
	route := make([]string, 0, len(parent.RouteTaken)+1)
	route = append(route, parent.RouteTaken...)
	route = append(route, routeNewsDone)

	out := parent
	out.NewsResult = &child
	out.RouteTaken = route
	return out
}
