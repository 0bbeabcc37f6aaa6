package http

import "github.com/leoslab/platform-api/internal/jira"

// Handler bundles the dependencies for Jira HTTP endpoints.
type Handler struct {
	client     *jira.Client
	maxResults int
}

func New(client *jira.Client, maxResults int) *Handler {
	if maxResults <= 0 {
		maxResults = 50
	}
	return &Handler{client: client, maxResults: maxResults}
}

type createIssueReq struct {
	ProjectKey  string `json:"project_key"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	IssueType   string `json:"issue_type"`
	Assignee    string `json:"assignee"`
}

type transitionReq struct {
	Transition string `json:"transition"`
}
