package firestore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/repository"
	"google.golang.org/api/iterator"
)

type cursorRepository struct {
	client     *firestore.Client
	collection string
}

type cursorDoc struct {
	RepoURL    string    `firestore:"repo_url"`
	LastNumber *int64    `firestore:"last_number"`
	UpdatedAt  time.Time `firestore:"updated_at"`
}

// ToFirestoreID converts a repository URL to a Firestore-safe document ID. URLs contain "/", which is
// not allowed in IDs, so the hex encoded SHA-256 of the URL is used and the URL itself is stored in the
// document.
func ToFirestoreID(url types.RepoURL) (string, error) {
	if url == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "repository URL is empty")
	}

	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:]), nil
}

func (r *cursorRepository) LoadCursors(ctx context.Context) (model.Cursors, error) {
	iter := r.client.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	cursors := model.Cursors{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate cursors", goerr.V("collection", r.collection))
		}

		var doc cursorDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode cursor",
				goerr.V("collection", r.collection),
				goerr.V("docID", snap.Ref.ID),
			)
		}

		if doc.LastNumber == nil {
			cursors[types.RepoURL(doc.RepoURL)] = nil
		} else {
			cursors.Set(types.RepoURL(doc.RepoURL), types.IssueNumber(*doc.LastNumber))
		}
	}

	return cursors, nil
}

// SaveCursors writes one document per repository and deletes documents of repositories absent from
// cursors, in a single transaction.
func (r *cursorRepository) SaveCursors(ctx context.Context, cursors model.Cursors) error {
	col := r.client.Collection(r.collection)
	now := time.Now().UTC()

	docs := make(map[string]*cursorDoc, len(cursors))
	for url, p := range cursors {
		docID, err := ToFirestoreID(url)
		if err != nil {
			return err
		}

		doc := &cursorDoc{RepoURL: string(url), UpdatedAt: now}
		if p != nil {
			n := int64(*p)
			doc.LastNumber = &n
		}
		docs[docID] = doc
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// all reads must happen before writes in a transaction
		existing, err := tx.Documents(col).GetAll()
		if err != nil {
			return goerr.Wrap(err, "failed to list existing cursors")
		}

		for _, snap := range existing {
			if _, ok := docs[snap.Ref.ID]; ok {
				continue
			}
			if err := tx.Delete(snap.Ref); err != nil {
				return goerr.Wrap(err, "failed to delete stale cursor", goerr.V("docID", snap.Ref.ID))
			}
		}

		for docID, doc := range docs {
			if err := tx.Set(col.Doc(docID), doc); err != nil {
				return goerr.Wrap(err, "failed to set cursor", goerr.V("repo", doc.RepoURL))
			}
		}
		return nil
	})
	if err != nil {
		return goerr.Wrap(err, "failed to save cursors", goerr.V("collection", r.collection))
	}

	return nil
}
