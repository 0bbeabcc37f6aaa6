package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to the Jira REST API (v2) using basic auth with an API token.
type Client struct {
	baseURL    string
	email      string
	apiToken   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Jira client. baseURL is the site URL, e.g.
// https://example.atlassian.net.
func NewClient(baseURL, email, apiToken string) *Client {
	return &Client{
		baseURL:  baseURL,
		email:    email,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
}

// Configured reports whether credentials are present.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.email != "" && c.apiToken != ""
}

// User is the authenticated Jira user.
type User struct {
	AccountID    string `json:"accountId"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
}

// Issue is a Jira issue in the shape this API exposes.
type Issue struct {
	Key         string `json:"key"`
	Summary     string `json:"summary"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee,omitempty"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
	Description string `json:"description,omitempty"`
}

// SearchResult is the result of a JQL search.
type SearchResult struct {
	Total  int     `json:"total"`
	Issues []Issue `json:"issues"`
	JQL    string  `json:"jql"`
}

// issueFields is the wire shape of Jira's issue fields.
type issueFields struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
	Status      struct {
		Name string `json:"name"`
	} `json:"status"`
	Assignee *struct {
		DisplayName string `json:"displayName"`
	} `json:"assignee"`
}

type wireIssue struct {
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

func (w wireIssue) toIssue() Issue {
	iss := Issue{
		Key:         w.Key,
		Summary:     w.Fields.Summary,
		Status:      w.Fields.Status.Name,
		Created:     w.Fields.Created,
		Updated:     w.Fields.Updated,
		Description: w.Fields.Description,
	}
	if w.Fields.Assignee != nil {
		iss.Assignee = w.Fields.Assignee.DisplayName
	}
	return iss
}

// Myself returns the authenticated user, verifying credentials.
func (c *Client) Myself(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/rest/api/2/myself", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Search runs a JQL query.
func (c *Client) Search(ctx context.Context, jql string, max int) (*SearchResult, error) {
	q := url.Values{}
	q.Set("jql", jql)
	q.Set("maxResults", strconv.Itoa(max))

	var resp struct {
		Total  int         `json:"total"`
		Issues []wireIssue `json:"issues"`
	}
	if err := c.do(ctx, http.MethodGet, "/rest/api/2/search?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}

	out := &SearchResult{Total: resp.Total, JQL: jql, Issues: make([]Issue, 0, len(resp.Issues))}
	for _, w := range resp.Issues {
		out.Issues = append(out.Issues, w.toIssue())
	}
	return out, nil
}

// GetIssue fetches a single issue by key.
func (c *Client) GetIssue(ctx context.Context, key string) (*Issue, error) {
	var w wireIssue
	if err := c.do(ctx, http.MethodGet, "/rest/api/2/issue/"+url.PathEscape(key), nil, &w); err != nil {
		return nil, err
	}
	iss := w.toIssue()
	return &iss, nil
}

// CreateIssueRequest carries the fields to create an issue.
type CreateIssueRequest struct {
	ProjectKey  string
	Summary     string
	Description string
	IssueType   string
	Assignee    string
}

// CreateIssue creates an issue and returns its key and browse URL.
func (c *Client) CreateIssue(ctx context.Context, req CreateIssueRequest) (key, browseURL string, err error) {
	if req.IssueType == "" {
		req.IssueType = "Task"
	}

	fields := map[string]any{
		"project":     map[string]string{"key": req.ProjectKey},
		"summary":     req.Summary,
		"description": req.Description,
		"issuetype":   map[string]string{"name": req.IssueType},
	}
	if req.Assignee != "" {
		fields["assignee"] = map[string]string{"accountId": req.Assignee}
	}

	var resp struct {
		Key string `json:"key"`
	}
	if err := c.do(ctx, http.MethodPost, "/rest/api/2/issue", map[string]any{"fields": fields}, &resp); err != nil {
		return "", "", err
	}
	return resp.Key, c.baseURL + "/browse/" + resp.Key, nil
}

// Transition moves an issue through the named transition. The transition
// may be given by name or by numeric id.
func (c *Client) Transition(ctx context.Context, key, transition string) error {
	path := "/rest/api/2/issue/" + url.PathEscape(key) + "/transitions"

	var resp struct {
		Transitions []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"transitions"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return err
	}

	id := ""
	for _, t := range resp.Transitions {
		if t.Name == transition || t.ID == transition {
			id = t.ID
			break
		}
	}
	if id == "" {
		return fmt.Errorf("transition %q not available for %s", transition, key)
	}

	body := map[string]any{"transition": map[string]string{"id": id}}
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// ProjectStatus aggregates issue counts per status for a project.
func (c *Client) ProjectStatus(ctx context.Context, project string) (total int, counts map[string]int, err error) {
	res, err := c.Search(ctx, fmt.Sprintf("project = %s", project), 100)
	if err != nil {
		return 0, nil, err
	}

	counts = make(map[string]int)
	for _, iss := range res.Issues {
		counts[iss.Status]++
	}
	return res.Total, counts, nil
}

// do executes a request against the Jira API, translating upstream
// status codes into the client's error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call jira: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrAuth
	case resp.StatusCode == http.StatusNotFound:
		return ErrIssueNotFound
	case resp.StatusCode >= 400:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("jira returned status %d: %s", resp.StatusCode, string(detail))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// BaseURL exposes the configured site URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Email exposes the configured account email.
func (c *Client) Email() string { return c.email }
