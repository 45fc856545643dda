package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Notebook/internal/domain/contract"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
)

// NoteCacheStore is a redis-backed read-through cache for notes. It is
// only consulted by the note usecase; the access-control path never
// touches it.
type NoteCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

var _ contract.INoteCache = (*NoteCacheStore)(nil)

func NewNoteCacheStore(rdb *redis.Client) *NoteCacheStore {
	return &NoteCacheStore{
		rdb:       rdb,
		detailTTL: 30 * time.Minute,
		listTTL:   10 * time.Minute,
	}
}

func noteDetailKey(id string) string { return fmt.Sprintf("note:id:%s", id) }

func notesByOwnerKey(username string) string { return fmt.Sprintf("notes:owner:%s", username) }

func (c *NoteCacheStore) GetNoteByID(ctx context.Context, id string) (*entity.Note, bool, error) {
	b, err := c.rdb.Get(ctx, noteDetailKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var note entity.Note
	if err := json.Unmarshal(b, &note); err != nil {
		return nil, false, nil
	}
	return &note, true, nil
}

func (c *NoteCacheStore) SetNoteByID(ctx context.Context, note *entity.Note) error {
	data, err := json.Marshal(note)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, noteDetailKey(note.ID), data, c.detailTTL).Err()
}

func (c *NoteCacheStore) InvalidateNoteByID(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, noteDetailKey(id)).Err()
}

func (c *NoteCacheStore) GetNotesByOwner(ctx context.Context, username string) ([]entity.Note, bool, error) {
	b, err := c.rdb.Get(ctx, notesByOwnerKey(username)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var notes []entity.Note
	if err := json.Unmarshal(b, &notes); err != nil {
		return nil, false, nil
	}
	return notes, true, nil
}

func (c *NoteCacheStore) SetNotesByOwner(ctx context.Context, username string, notes []entity.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, notesByOwnerKey(username), data, c.listTTL).Err()
}

func (c *NoteCacheStore) InvalidateNotesByOwner(ctx context.Context, username string) error {
	return c.rdb.Del(ctx, notesByOwnerKey(username)).Err()
}
