package model

import (
	"time"

	"github.com/m-mizutani/octowatch/pkg/domain/types"
)

type Issue struct {
	Number      types.IssueNumber
	Title       string
	State       string
	HTMLURL     string
	CreatedAt   time.Time
	PullRequest bool
}

type Issues []*Issue

// WithoutPullRequests returns issues that are not pull requests, keeping order.
func (x Issues) WithoutPullRequests() Issues {
	resp := make(Issues, 0, len(x))
	for _, issue := range x {
		if issue == nil || issue.PullRequest {
			continue
		}
		resp = append(resp, issue)
	}
	return resp
}

// Latest returns the highest issue number. ok is false if there is no issue.
func (x Issues) Latest() (latest types.IssueNumber, ok bool) {
	for _, issue := range x {
		if !ok || issue.Number > latest {
			latest = issue.Number
			ok = true
		}
	}
	return latest, ok
}

// After returns issues whose number is strictly greater than n.
func (x Issues) After(n types.IssueNumber) Issues {
	var resp Issues
	for _, issue := range x {
		if issue.Number > n {
			resp = append(resp, issue)
		}
	}
	return resp
}
