package usecase_test

import (
	"context"
	"testing"
	"time"

	"lensrent/internal/domain/model"
	repo "lensrent/internal/repository"
	"lensrent/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSuggestionUsecase_List(t *testing.T) {
	suggestionRepo := new(SuggestionRepoMock)
	suggestionRepo.On("List", mock.Anything, 1, 20).Return([]model.Suggestion{
		{ID: 2, SuggestionText: "New Order Request: ...", SuggestedBy: "Asha Verma", CreatedAt: time.Now()},
		{ID: 1, SuggestionText: "New Order Request: ...", SuggestedBy: "Ravi Kumar", CreatedAt: time.Now().Add(-time.Hour)},
	}, int64(2), nil)

	uc := usecase.NewSuggestionUsecase(suggestionRepo)

	out, err := uc.List(context.Background(), 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, int64(2), out.Total)

	suggestionRepo.AssertExpectations(t)
}

func TestSuggestionUsecase_List_InvalidPaging(t *testing.T) {
	uc := usecase.NewSuggestionUsecase(new(SuggestionRepoMock))

	_, err := uc.List(context.Background(), 0, 20)
	assertErrContains(t, err, "invalid page")

	_, err = uc.List(context.Background(), 1, 0)
	assertErrContains(t, err, "invalid limit")
}

func TestSuggestionUsecase_Delete_NotFound(t *testing.T) {
	suggestionRepo := new(SuggestionRepoMock)
	suggestionRepo.On("DeleteByID", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	uc := usecase.NewSuggestionUsecase(suggestionRepo)

	err := uc.Delete(context.Background(), 99)
	assertErrContains(t, err, "not found")
}

func TestSuggestionUsecase_Delete_Success(t *testing.T) {
	suggestionRepo := new(SuggestionRepoMock)
	suggestionRepo.On("DeleteByID", mock.Anything, int64(2)).Return(nil)

	uc := usecase.NewSuggestionUsecase(suggestionRepo)

	assert.NoError(t, uc.Delete(context.Background(), 2))
	suggestionRepo.AssertExpectations(t)
}
