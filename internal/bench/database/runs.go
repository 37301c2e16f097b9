package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-sod/kdtree/internal/bench/model"
	"github.com/go-sod/kdtree/internal/database"
	"github.com/go-sod/kdtree/internal/logging"
	bolt "go.etcd.io/bbolt"
)

const runsBucket = "runs:"

func New(db *database.DB) (*DB, error) {
	if err := db.EnsureBuckets(runsBucket); err != nil {
		return nil, fmt.Errorf("prepare runs bucket: %w", err)
	}
	return &DB{sDB: db}, nil
}

// DB stores benchmark run summaries keyed by run id.
type DB struct {
	sDB *database.DB
}

func (db *DB) Store(ctx context.Context, run model.Run) error {
	logger := logging.FromContext(ctx)
	bytes, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(runsBucket))
		if b == nil {
			return fmt.Errorf("bucket %s not found", runsBucket)
		}
		if err := b.Put([]byte(run.ID.String()), bytes); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}
	logger.Debugf("stored run %s", run.ID)

	return nil
}

// Runs returns every stored run, oldest first.
func (db *DB) Runs(_ context.Context) ([]model.Run, error) {
	var runs []model.Run
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(runsBucket))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var run model.Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("unmarshal run %s: %w", k, err)
			}
			runs = append(runs, run)
			return nil
		})
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
	return runs, nil
}
