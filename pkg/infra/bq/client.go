package bq

import (
	"context"
	"reflect"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type Client struct {
	bqClient *bigquery.Client
	dataset  types.BQDatasetID
	tableID  types.BQTableID
}

var _ interfaces.BigQuery = (*Client)(nil)

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, tableID types.BQTableID, options ...option.ClientOption) (*Client, error) {
	bqClient, err := bigquery.NewClient(ctx, projectID.String(), options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	return &Client{
		bqClient: bqClient,
		dataset:  datasetID,
		tableID:  tableID,
	}, nil
}

func (x *Client) table() *bigquery.Table {
	return x.bqClient.Dataset(x.dataset.String()).Table(x.tableID.String())
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, md *bigquery.TableMetadata) error {
	if err := x.table().Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return nil
}

// GetMetadata implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error) {
	md, err := x.table().Metadata(ctx)
	if err != nil {
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == 404 {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}

	return md, nil
}

// UpdateTable implements interfaces.BigQuery.
func (x *Client) UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.table().Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID), goerr.V("meta", md))
	}

	return nil
}

// Insert implements interfaces.BigQuery. data is either a struct (or pointer to struct) or a slice of them; every
// element is saved against schema as one row.
func (x *Client) Insert(ctx context.Context, schema bigquery.Schema, data any) error {
	rows := toSavers(schema, data)
	if len(rows) == 0 {
		return nil
	}

	if err := x.table().Inserter().Put(ctx, rows); err != nil {
		return goerr.Wrap(err, "failed to insert rows",
			goerr.V("dataset", x.dataset),
			goerr.V("table", x.tableID),
			goerr.V("rows", len(rows)),
		)
	}

	return nil
}

func toSavers(schema bigquery.Schema, data any) []*bigquery.StructSaver {
	if data == nil {
		return nil
	}

	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return []*bigquery.StructSaver{{Schema: schema, Struct: data}}
	}

	savers := make([]*bigquery.StructSaver, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		savers = append(savers, &bigquery.StructSaver{
			Schema: schema,
			Struct: v.Index(i).Interface(),
		})
	}
	return savers
}
