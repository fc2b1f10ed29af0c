package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
)

func TestIssuesLatest(t *testing.T) {
	t.Run("returns highest number regardless of order", func(t *testing.T) {
		issues := model.Issues{{Number: 7}, {Number: 9}, {Number: 6}}
		latest, ok := issues.Latest()
		gt.True(t, ok)
		gt.V(t, latest).Equal(types.IssueNumber(9))
	})

	t.Run("empty issues", func(t *testing.T) {
		_, ok := model.Issues{}.Latest()
		gt.False(t, ok)
	})
}

func TestIssuesWithoutPullRequests(t *testing.T) {
	issues := model.Issues{
		{Number: 3, Title: "bug"},
		{Number: 10, Title: "feature PR", PullRequest: true},
		{Number: 4, Title: "question"},
		nil,
	}

	filtered := issues.WithoutPullRequests()
	gt.A(t, filtered).Length(2)
	gt.V(t, filtered[0].Number).Equal(types.IssueNumber(3))
	gt.V(t, filtered[1].Number).Equal(types.IssueNumber(4))

	latest, ok := filtered.Latest()
	gt.True(t, ok)
	gt.V(t, latest).Equal(types.IssueNumber(4))
}

func TestIssuesAfter(t *testing.T) {
	issues := model.Issues{{Number: 9}, {Number: 7}, {Number: 6}, {Number: 5}, {Number: 4}}
	after := issues.After(5)
	gt.A(t, after).Length(3)
	for _, issue := range after {
		gt.True(t, issue.Number > 5)
	}
}
