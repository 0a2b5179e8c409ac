package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/tidwall/buntdb"

	"github.com/Isaiahshap/pulse/internal/models"
)

const (
	contactTable         = "contact"
	contactReceivedIndex = "contact_received"
)

// contactRecord is the on-disk JSON shape. received_unix keeps the index
// ordering numeric.
type contactRecord struct {
	models.ContactMessage
	ReceivedUnix int64 `json:"received_unix"`
}

// BuntContactRepository keeps contact messages in an embedded buntdb file, or
// in memory when opened with ":memory:".
type BuntContactRepository struct {
	db *buntdb.DB
}

func NewBuntContactRepository(path string) (*BuntContactRepository, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open contact store %s: %w", path, err)
	}

	err = db.CreateIndex(contactReceivedIndex, contactTable+":*", buntdb.IndexJSON("received_unix"), buntdb.IndexString)
	if err != nil && err != buntdb.ErrIndexExists {
		db.Close()
		return nil, fmt.Errorf("create contact index: %w", err)
	}

	return &BuntContactRepository{db: db}, nil
}

func (r *BuntContactRepository) Close() error {
	return r.db.Close()
}

func (r *BuntContactRepository) Save(_ context.Context, message *models.ContactMessage) error {
	if message.ReceivedAt.IsZero() {
		message.ReceivedAt = time.Now().UTC()
	}
	payload, err := sonic.Marshal(contactRecord{
		ContactMessage: *message,
		ReceivedUnix:   message.ReceivedAt.UnixMicro(),
	})
	if err != nil {
		return fmt.Errorf("encode contact message: %w", err)
	}

	return r.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(contactKey(message.ID), string(payload), nil)
		return err
	})
}

func (r *BuntContactRepository) Get(_ context.Context, id string) (*models.ContactMessage, error) {
	var raw string
	err := r.db.View(func(tx *buntdb.Tx) error {
		var err error
		raw, err = tx.Get(contactKey(id))
		return err
	})
	if err == buntdb.ErrNotFound {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}

	message, err := decodeContactRecord(raw)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// List walks the received index newest first.
func (r *BuntContactRepository) List(_ context.Context, offset, limit int) ([]models.ContactMessage, int, error) {
	messages := make([]models.ContactMessage, 0)
	total := 0

	var decodeErr error
	err := r.db.View(func(tx *buntdb.Tx) error {
		return tx.Descend(contactReceivedIndex, func(_, value string) bool {
			index := total
			total++
			if index < offset || len(messages) >= limit {
				return true
			}
			message, err := decodeContactRecord(value)
			if err != nil {
				decodeErr = err
				return false
			}
			messages = append(messages, message)
			return true
		})
	})
	if err != nil {
		return nil, 0, err
	}
	if decodeErr != nil {
		return nil, 0, decodeErr
	}

	return messages, total, nil
}

func contactKey(id string) string {
	return contactTable + ":" + id
}

func decodeContactRecord(raw string) (models.ContactMessage, error) {
	var record contactRecord
	if err := sonic.UnmarshalString(raw, &record); err != nil {
		return models.ContactMessage{}, fmt.Errorf("decode contact message: %w", err)
	}
	return record.ContactMessage, nil
}
