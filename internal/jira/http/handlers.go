package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leoslab/platform-api/internal/jira"
)

func (h *Handler) authTest(c *gin.Context) {
	user, err := h.client.Myself(c.Request.Context())
	if err != nil {
		h.fail(c, "jira auth test", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"jira_url":      h.client.BaseURL(),
		"email":         h.client.Email(),
		"account_id":    user.AccountID,
		"display_name":  user.DisplayName,
		"message":       "Jira authentication successful",
	})
}

func (h *Handler) search(c *gin.Context) {
	jql := strings.TrimSpace(c.Query("jql"))
	if jql == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "jql query parameter is required"})
		return
	}

	max := h.maxResults
	if v := c.Query("max_results"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid max_results"})
			return
		}
		max = n
	}

	res, err := h.client.Search(c.Request.Context(), jql, max)
	if err != nil {
		h.fail(c, "jira search", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) getIssue(c *gin.Context) {
	issue, err := h.client.GetIssue(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.fail(c, "jira get issue", err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (h *Handler) createIssue(c *gin.Context) {
	var req createIssueReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.ProjectKey) == "" || strings.TrimSpace(req.Summary) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "project_key and summary are required"})
		return
	}

	key, browseURL, err := h.client.CreateIssue(c.Request.Context(), jira.CreateIssueRequest{
		ProjectKey:  req.ProjectKey,
		Summary:     req.Summary,
		Description: req.Description,
		IssueType:   req.IssueType,
		Assignee:    req.Assignee,
	})
	if err != nil {
		h.fail(c, "jira create issue", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key, "url": browseURL, "success": true})
}

func (h *Handler) transition(c *gin.Context) {
	key := c.Param("key")

	var req transitionReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Transition) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "transition is required"})
		return
	}

	if err := h.client.Transition(c.Request.Context(), key, req.Transition); err != nil {
		h.fail(c, "jira transition", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issue_key":  key,
		"transition": req.Transition,
		"success":    true,
	})
}

func (h *Handler) projectStatus(c *gin.Context) {
	project := c.Param("key")

	total, counts, err := h.client.ProjectStatus(c.Request.Context(), project)
	if err != nil {
		h.fail(c, "jira project status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project":       project,
		"total_issues":  total,
		"status_counts": counts,
	})
}

// fail maps client errors onto HTTP codes: auth failures are 401, missing
// issues 404, a missing configuration 503, and every other upstream fault
// 502 with the detail kept in the log.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, jira.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Jira is not configured"})
	case errors.Is(err, jira.ErrAuth):
		log.Printf("%s: authentication failed", op)
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Jira authentication failed"})
	case errors.Is(err, jira.ErrIssueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Issue not found"})
	default:
		log.Printf("%s failed: %v", op, err)
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": "Jira request failed"})
	}
}
