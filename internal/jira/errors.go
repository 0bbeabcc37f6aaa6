package jira

import "errors"

var (
	ErrNotConfigured = errors.New("jira is not configured")
	ErrAuth          = errors.New("jira authentication failed")
	ErrIssueNotFound = errors.New("jira issue not found")
)
