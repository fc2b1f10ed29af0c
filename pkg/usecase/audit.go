package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/utils/logging"
)

// recordNotification writes one audit row per notified issue. It is a no-op when BigQuery is not
// configured. The table is created or migrated on the first call only.
func (x *Poller) recordNotification(ctx context.Context, batch *model.NotificationBatch, delivered bool) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}

	if x.auditSchema == nil {
		schema, err := createOrUpdateBigQueryTable(ctx, bq)
		if err != nil {
			return err
		}
		x.auditSchema = schema
	}

	records := model.NewNotificationRecords(batch, logging.CtxTime(ctx).UTC(), delivered)
	if err := bq.Insert(ctx, x.auditSchema, records); err != nil {
		return goerr.Wrap(err, "failed to insert notification records to BigQuery",
			goerr.V("batch_id", batch.ID),
			goerr.V("records", len(records)),
		)
	}

	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery) (bigquery.Schema, error) {
	schema, err := bqs.Infer(&model.NotificationRecord{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer notification record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
