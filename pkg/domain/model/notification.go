package model

import (
	"html"
	"slices"
	"strings"

	"github.com/m-mizutani/octowatch/pkg/domain/types"
)

// NotificationBatch is the set of new issues of one repository reported in a single message.
type NotificationBatch struct {
	ID     types.BatchID
	Repo   *GitHubRepo
	Issues Issues
}

// NewNotificationBatch builds a batch of issues newer than after, sorted by number ascending.
func NewNotificationBatch(repo *GitHubRepo, issues Issues, after types.IssueNumber) *NotificationBatch {
	newIssues := issues.After(after)
	slices.SortStableFunc(newIssues, func(a, b *Issue) int {
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		}
		return 0
	})

	return &NotificationBatch{
		ID:     types.NewBatchID(),
		Repo:   repo,
		Issues: newIssues,
	}
}

// Renderer converts a batch into message text.
type Renderer func(batch *NotificationBatch) string

// Render renders with RenderRich if rich is true, otherwise with RenderPlain.
func (x *NotificationBatch) Render(rich bool) string {
	var render Renderer = RenderPlain
	if rich {
		render = RenderRich
	}
	return render(x)
}

func (x *NotificationBatch) header() string {
	return "✅ Found new issue(s): " + x.Repo.IssuesURL()
}

// RenderRich renders HTML for Telegram's HTML parse mode.
func RenderRich(batch *NotificationBatch) string {
	lines := []string{"<b>" + html.EscapeString(batch.header()) + "</b>"}
	for _, issue := range batch.Issues {
		lines = append(lines, "- "+html.EscapeString(issue.Title))
	}
	return strings.Join(lines, "\n")
}

// RenderPlain renders the same lines as RenderRich without any markup.
func RenderPlain(batch *NotificationBatch) string {
	lines := []string{batch.header()}
	for _, issue := range batch.Issues {
		lines = append(lines, "- "+issue.Title)
	}
	return strings.Join(lines, "\n")
}
