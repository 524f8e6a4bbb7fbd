package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hasanbut17314/kaspas-backend/internal/entities"
	"github.com/hasanbut17314/kaspas-backend/pkg/trm"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// txRunner выполняет запросы в транзакции из контекста, иначе через пул
type txRunner struct {
	db *sqlx.DB
}

func (r txRunner) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		res, err := tx.ExecContext(ctx, query, args...)
		return res, classify(err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	return res, classify(err)
}

func (r txRunner) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return classify(tx.GetContext(ctx, dest, query, args...))
	}
	return classify(r.db.GetContext(ctx, dest, query, args...))
}

func (r txRunner) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return classify(tx.SelectContext(ctx, dest, query, args...))
	}
	return classify(r.db.SelectContext(ctx, dest, query, args...))
}

// classify переводит конфликты сериализации и таймауты блокировок в ErrTxConflict,
// такие операции безопасно повторить целиком
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01", "55P03":
			return fmt.Errorf("%w: %v", entities.ErrTxConflict, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", entities.ErrTxConflict, err)
	}

	return err
}
