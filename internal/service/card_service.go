package service

import (
	"context"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

// CardStore is the slice of the card repository the service needs.
type CardStore interface {
	CreateCard(ctx context.Context, card *entity.CardRequest) (int, error)
	UpdateCard(ctx context.Context, paymentTypeID int, card *entity.CardRequest) (int64, error)
	DeleteCard(ctx context.Context, paymentTypeID int) (int64, error)
	GetCardsByHolderName(ctx context.Context, holderName string) ([]*entity.Card, error)
}

type CardService struct {
	cards CardStore
}

// NewCardService creates a new instance of CardService.
func NewCardService(cards CardStore) *CardService {
	return &CardService{cards: cards}
}

func (s *CardService) AddCard(ctx context.Context, card *entity.CardRequest) (int, error) {
	if card.CardNumber == "" || card.CardHolderName == "" || card.PostalCode == "" {
		return 0, ErrMissingFields
	}

	id, err := s.cards.CreateCard(ctx, card)
	if err != nil {
		logger.Error().Err(err).Msg("Error adding card")
		return 0, err
	}
	return id, nil
}

func (s *CardService) EditCard(ctx context.Context, paymentTypeID int, card *entity.CardRequest) error {
	if card.CardNumber == "" || card.CardHolderName == "" || card.PostalCode == "" {
		return ErrMissingFields
	}

	rows, err := s.cards.UpdateCard(ctx, paymentTypeID, card)
	if err != nil {
		logger.Error().Err(err).Int("payment_type_id", paymentTypeID).Msg("Error updating card")
		return err
	}
	if rows == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (s *CardService) DeleteCard(ctx context.Context, paymentTypeID int) error {
	rows, err := s.cards.DeleteCard(ctx, paymentTypeID)
	if err != nil {
		logger.Error().Err(err).Int("payment_type_id", paymentTypeID).Msg("Error deleting card")
		return err
	}
	if rows == 0 {
		return ErrCardNotFound
	}
	return nil
}

func (s *CardService) GetCards(ctx context.Context, holderName string) ([]*entity.Card, error) {
	cards, err := s.cards.GetCardsByHolderName(ctx, holderName)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching cards")
		return nil, err
	}
	return cards, nil
}
