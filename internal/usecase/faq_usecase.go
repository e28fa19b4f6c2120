package usecase

import (
	"context"
	"errors"

	"github.com/swifttrack/backoffice/internal/domain/document"
	"github.com/swifttrack/backoffice/internal/domain/entity"
	"github.com/swifttrack/backoffice/pkg/logger"
)

type FAQUseCase struct {
	store document.Store
}

func NewFAQUseCase(store document.Store) *FAQUseCase {
	return &FAQUseCase{store: store}
}

func (uc *FAQUseCase) GetAllFAQs(ctx context.Context) []entity.FAQ {
	records, err := uc.store.List(ctx, document.CollectionFAQs)
	if err != nil {
		logger.LogStoreFault(document.CollectionFAQs, "list", err)
		return []entity.FAQ{}
	}

	faqs := make([]entity.FAQ, 0, len(records))
	for _, rec := range records {
		faqs = append(faqs, entity.FAQFromDocument(rec.ID, rec.Data))
	}
	return faqs
}

func (uc *FAQUseCase) GetFAQByID(ctx context.Context, id string) *entity.FAQ {
	rec, err := uc.store.Get(ctx, document.CollectionFAQs, id)
	if err != nil {
		if !errors.Is(err, document.ErrNotFound) {
			logger.LogStoreFault(document.CollectionFAQs, "get", err)
		}
		return nil
	}
	faq := entity.FAQFromDocument(rec.ID, rec.Data)
	return &faq
}

func (uc *FAQUseCase) CreateFAQ(ctx context.Context, question, answer string) (string, bool) {
	id, err := uc.store.Create(ctx, document.CollectionFAQs, document.Document{
		entity.FAQFieldQuestion: question,
		entity.FAQFieldAnswer:   answer,
	})
	if err != nil {
		logger.LogStoreFault(document.CollectionFAQs, "create", err)
		return "", false
	}
	return id, true
}

func (uc *FAQUseCase) UpdateFAQ(ctx context.Context, id, question, answer string) bool {
	err := uc.store.Update(ctx, document.CollectionFAQs, id, document.Document{
		entity.FAQFieldQuestion: question,
		entity.FAQFieldAnswer:   answer,
	})
	if err != nil {
		logger.LogStoreFault(document.CollectionFAQs, "update", err)
		return false
	}
	return true
}

func (uc *FAQUseCase) DeleteFAQ(ctx context.Context, id string) bool {
	if err := uc.store.Delete(ctx, document.CollectionFAQs, id); err != nil {
		logger.LogStoreFault(document.CollectionFAQs, "delete", err)
		return false
	}
	return true
}
