package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/retail-store/internal/model"
)

const billColumns = `id, user_id, user_type, products, total_amount::text, discount::text,
	net_amount::text, applied_discounts, created_at`

// CreateBill сохраняет счёт одной вставкой. Идентификатор и время создания назначает хранилище.
func (r *PostgresRepository) CreateBill(ctx context.Context, b model.Bill) (*model.Bill, error) {
	if b.AppliedDiscounts == nil {
		b.AppliedDiscounts = []string{}
	}

	products, err := json.Marshal(b.Products)
	if err != nil {
		return nil, fmt.Errorf("marshal bill products: %w", err)
	}
	applied, err := json.Marshal(b.AppliedDiscounts)
	if err != nil {
		return nil, fmt.Errorf("marshal applied discounts: %w", err)
	}

	b.ID = uuid.NewString()

	err = r.withRetry(ctx, func() error {
		return r.pool.QueryRow(ctx,
			`INSERT INTO bills (id, user_id, user_type, products, total_amount, discount, net_amount, applied_discounts)
			 VALUES ($1, $2, $3, $4, $5::text::numeric, $6::text::numeric, $7::text::numeric, $8)
			 RETURNING created_at`,
			b.ID, b.UserID, string(b.UserType), products,
			model.PlainAmount(b.TotalAmount), model.PlainAmount(b.Discount), model.PlainAmount(b.NetAmount), applied,
		).Scan(&b.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("create bill: %w", err)
	}

	return &b, nil
}

// GetBillByID возвращает счёт по идентификатору.
func (r *PostgresRepository) GetBillByID(ctx context.Context, id string) (*model.Bill, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+billColumns+` FROM bills WHERE id = $1`,
		id,
	)

	b, err := scanBill(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}

	return b, nil
}

// GetBills возвращает все счета, начиная с самых новых.
func (r *PostgresRepository) GetBills(ctx context.Context) ([]model.Bill, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+billColumns+` FROM bills ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("select bills: %w", err)
	}
	defer rows.Close()

	var bills []model.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return bills, nil
}

func scanBill(row pgx.Row) (*model.Bill, error) {
	var (
		b                    model.Bill
		userType             string
		products, applied    []byte
		total, discount, net string
		createdAt            time.Time
	)
	err := row.Scan(&b.ID, &b.UserID, &userType, &products, &total, &discount, &net, &applied, &createdAt)
	if err != nil {
		return nil, err
	}

	b.UserType = model.UserType(userType)
	b.CreatedAt = createdAt

	if err := json.Unmarshal(products, &b.Products); err != nil {
		return nil, fmt.Errorf("unmarshal bill products: %w", err)
	}
	if err := json.Unmarshal(applied, &b.AppliedDiscounts); err != nil {
		return nil, fmt.Errorf("unmarshal applied discounts: %w", err)
	}

	amounts := []struct {
		raw string
		dst *decimal.Decimal
	}{
		{total, &b.TotalAmount},
		{discount, &b.Discount},
		{net, &b.NetAmount},
	}
	for _, a := range amounts {
		d, err := decimal.NewFromString(a.raw)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", a.raw, err)
		}
		*a.dst = d
	}

	return &b, nil
}
