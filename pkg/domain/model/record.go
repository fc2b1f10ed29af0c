package model

import (
	"time"

	"github.com/m-mizutani/octowatch/pkg/domain/types"
)

// NotificationRecord is an audit row for one issue included in a notification.
type NotificationRecord struct {
	ID          types.RecordID    `bigquery:"id" json:"id"`
	BatchID     types.BatchID     `bigquery:"batch_id" json:"batch_id"`
	Timestamp   time.Time         `bigquery:"timestamp" json:"timestamp"`
	RepoURL     types.RepoURL     `bigquery:"repo_url" json:"repo_url"`
	Owner       string            `bigquery:"owner" json:"owner"`
	RepoName    string            `bigquery:"repo_name" json:"repo_name"`
	IssueNumber types.IssueNumber `bigquery:"issue_number" json:"issue_number"`
	Title       string            `bigquery:"title" json:"title"`
	Delivered   bool              `bigquery:"delivered" json:"delivered"`
}

// NewNotificationRecords converts a batch into audit rows.
func NewNotificationRecords(batch *NotificationBatch, ts time.Time, delivered bool) []*NotificationRecord {
	records := make([]*NotificationRecord, 0, len(batch.Issues))
	for _, issue := range batch.Issues {
		records = append(records, &NotificationRecord{
			ID:          types.NewRecordID(),
			BatchID:     batch.ID,
			Timestamp:   ts,
			RepoURL:     batch.Repo.URL,
			Owner:       batch.Repo.Owner,
			RepoName:    batch.Repo.RepoName,
			IssueNumber: issue.Number,
			Title:       issue.Title,
			Delivered:   delivered,
		})
	}
	return records
}
