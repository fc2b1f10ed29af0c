package model

import (
	"github.com/m-mizutani/octowatch/pkg/domain/types"
)

// Cursors maps a repository URL to the last notified issue number. A nil number means the repository has
// never been checked successfully.
type Cursors map[types.RepoURL]*types.IssueNumber

// Get returns the cursor of url. ok is false when the repository has no baseline yet.
func (x Cursors) Get(url types.RepoURL) (n types.IssueNumber, ok bool) {
	if p := x[url]; p != nil {
		return *p, true
	}
	return 0, false
}

// Set records n as the cursor of url.
func (x Cursors) Set(url types.RepoURL, n types.IssueNumber) {
	x[url] = &n
}

// Track adds a nil entry for every repository that has no entry yet.
func (x Cursors) Track(repos []*GitHubRepo) {
	for _, repo := range repos {
		if _, ok := x[repo.URL]; !ok {
			x[repo.URL] = nil
		}
	}
}

// Clone returns a deep copy.
func (x Cursors) Clone() Cursors {
	resp := make(Cursors, len(x))
	for url, p := range x {
		if p == nil {
			resp[url] = nil
			continue
		}
		n := *p
		resp[url] = &n
	}
	return resp
}

// Equal reports whether both maps hold the same keys and values.
func (x Cursors) Equal(y Cursors) bool {
	if len(x) != len(y) {
		return false
	}
	for url, p := range x {
		q, ok := y[url]
		if !ok {
			return false
		}
		if (p == nil) != (q == nil) {
			return false
		}
		if p != nil && *p != *q {
			return false
		}
	}
	return true
}

// NewIssueNumber returns a pointer to n, used to build Cursors literals.
func NewIssueNumber(n int64) *types.IssueNumber {
	v := types.IssueNumber(n)
	return &v
}
