package bq_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/infra/bq"
	"github.com/m-mizutani/octowatch/pkg/utils/testutil"
)

func newTestRecords(t *testing.T) []*model.NotificationRecord {
	t.Helper()
	repo := gt.R1(model.ParseGitHubRepo("https://github.com/secmon-lab/octowatch")).NoError(t)
	batch := model.NewNotificationBatch(repo, model.Issues{
		{Number: 2, Title: "second"},
		{Number: 1, Title: "first"},
	}, 0)
	return model.NewNotificationRecords(batch, time.Now(), true)
}

func TestToSavers(t *testing.T) {
	schema := gt.R1(bqs.Infer(model.NotificationRecord{})).NoError(t)

	t.Run("slice is expanded to rows", func(t *testing.T) {
		records := newTestRecords(t)
		savers := bq.ToSavers(schema, records)
		gt.A(t, savers).Length(2)
		gt.V(t, savers[0].Struct).Equal(any(records[0]))
		gt.V(t, savers[1].Struct).Equal(any(records[1]))
	})

	t.Run("single struct is one row", func(t *testing.T) {
		records := newTestRecords(t)
		savers := bq.ToSavers(schema, records[0])
		gt.A(t, savers).Length(1)
	})

	t.Run("nil has no rows", func(t *testing.T) {
		gt.A(t, bq.ToSavers(schema, nil)).Length(0)
	})
}

func TestClient(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("notification_test_20060102_150405"))
	client := gt.R1(bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)).NoError(t)

	t.Run("GetMetadata before create returns nil", func(t *testing.T) {
		md, err := client.GetMetadata(ctx)
		gt.NoError(t, err)
		gt.V(t, md).Equal(nil)
	})

	schema := gt.R1(bqs.Infer(model.NotificationRecord{})).NoError(t)

	t.Run("create table and insert records", func(t *testing.T) {
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))

		gt.NoError(t, client.Insert(ctx, schema, newTestRecords(t)))
	})

	t.Run("update table schema", func(t *testing.T) {
		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.V(t, md).NotEqual(nil)

		extended := append(bigquery.Schema{}, schema...)
		extended = append(extended, &bigquery.FieldSchema{Name: "note", Type: bigquery.StringFieldType})
		gt.NoError(t, client.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
			Schema: extended,
		}, md.ETag))
	})
}
