package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type orderNumbers struct {
	txRunner
}

func NewOrderNumbers(db *sqlx.DB) *orderNumbers {
	return &orderNumbers{txRunner: txRunner{db: db}}
}

// Next выдаёт номер вида ORD-<unix>-<n>.
// n берётся из последовательности, счётчик атомарный на уровне хранилища
// и не переиспользуется даже при откате транзакции.
func (r *orderNumbers) Next(ctx context.Context) (string, error) {
	var seq int64
	if err := r.getContext(ctx, &seq, "SELECT nextval('order_no_seq')"); err != nil {
		return "", fmt.Errorf("failed to get next order number: %w", err)
	}
	return fmt.Sprintf("ORD-%d-%d", time.Now().Unix(), seq), nil
}
