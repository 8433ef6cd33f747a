package service

import (
	"context"

	"github.com/DanRulev/flashdeck.git/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

type EntriesAPII interface {
	Entries(ctx context.Context, corpus string, count int) ([]models.Entry, error)
}

type RepositoryI interface {
	AddItems(ctx context.Context, corpus string, items []models.Item) error
	AddWords(ctx context.Context, corpus string, words []models.Word) error
	RandomItems(ctx context.Context, corpus string, n int) ([]models.Item, error)
	Items(ctx context.Context, corpus string) ([]models.Item, error)
	Words(ctx context.Context, corpus string) ([]models.Word, error)
	DeleteCorpus(ctx context.Context, corpus string) (items, words int64, err error)
}

type Service struct {
	*FlashcardS
}

func InitServices(api EntriesAPII, defaultCount int, log *zap.Logger) *Service {
	return &Service{
		FlashcardS: NewFlashcardService(api, defaultCount, log),
	}
}
