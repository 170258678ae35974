package repository

import (
	"context"
	"database/sql"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

type CardRepository struct {
	db *sql.DB
}

func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{db}
}

func (r *CardRepository) CreateCard(ctx context.Context, card *entity.CardRequest) (int, error) {
	query := `INSERT INTO cards (card_number, card_holder_name, postal_code) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, card.CardNumber, card.CardHolderName, card.PostalCode)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}

func (r *CardRepository) UpdateCard(ctx context.Context, paymentTypeID int, card *entity.CardRequest) (int64, error) {
	query := `UPDATE cards SET card_number = ?, card_holder_name = ?, postal_code = ? WHERE payment_type_id = ?`
	res, err := r.db.ExecContext(ctx, query, card.CardNumber, card.CardHolderName, card.PostalCode, paymentTypeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CardRepository) DeleteCard(ctx context.Context, paymentTypeID int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE payment_type_id = ?`, paymentTypeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CardRepository) GetCardsByHolderName(ctx context.Context, holderName string) ([]*entity.Card, error) {
	query := `SELECT payment_type_id, card_number, card_holder_name, postal_code FROM cards WHERE card_holder_name = ?`
	rows, err := r.db.QueryContext(ctx, query, holderName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*entity.Card
	for rows.Next() {
		var card entity.Card
		err := rows.Scan(&card.PaymentTypeID, &card.CardNumber, &card.CardHolderName, &card.PostalCode)
		if err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}

	return cards, rows.Err()
}
