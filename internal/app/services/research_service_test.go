package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/university/advisorfinder/internal/app/models"
	"github.com/university/advisorfinder/internal/pkg/apperrors"
)

func newResearchServiceForTest() (ResearchService, *fakeCategoryStore, *fakeInterestStore) {
	categories := newFakeCategoryStore()
	interests := newFakeInterestStore()
	return NewResearchService(categories, interests), categories, interests
}

func TestFindOrCreateInterest_CreatesUnderDefaultCategory(t *testing.T) {
	svc, categories, _ := newResearchServiceForTest()

	interest, err := svc.FindOrCreateInterest(context.Background(), "Quantum Computing", "Qubits and error correction")
	require.NoError(t, err)
	assert.NotZero(t, interest.ID)
	assert.Equal(t, "Quantum Computing", interest.Name)
	assert.Equal(t, "Qubits and error correction", interest.Description)

	general, err := categories.GetByName(context.Background(), "General")
	require.NoError(t, err)
	assert.Equal(t, "General Research Interests", general.Description)
	assert.Equal(t, general.ID, interest.CategoryID)
}

func TestFindOrCreateInterest_Idempotent(t *testing.T) {
	svc, categories, interests := newResearchServiceForTest()

	first, err := svc.FindOrCreateInterest(context.Background(), "Quantum Computing", "Qubits and error correction")
	require.NoError(t, err)

	second, err := svc.FindOrCreateInterest(context.Background(), "Quantum Computing", "a different description")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Qubits and error correction", second.Description, "an existing interest keeps its stored description")
	assert.Len(t, interests.interests, 1)
	assert.Len(t, categories.categories, 1, "the default category is created once")
}

func TestFindOrCreateInterest_BlankName(t *testing.T) {
	svc, _, interests := newResearchServiceForTest()

	_, err := svc.FindOrCreateInterest(context.Background(), "   ", "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, interests.interests)
}

func TestSaveCategory(t *testing.T) {
	svc, _, _ := newResearchServiceForTest()

	category, err := svc.SaveCategory(context.Background(), &models.ResearchCategory{
		Name:        "Computer Science",
		Description: "Computing and Information Technology",
	})
	require.NoError(t, err)
	assert.NotZero(t, category.ID)

	_, err = svc.SaveCategory(context.Background(), &models.ResearchCategory{Name: "Computer Science"})
	assert.ErrorIs(t, err, apperrors.ErrCategoryExists)

	_, err = svc.SaveCategory(context.Background(), &models.ResearchCategory{Name: "  "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSaveInterest_DefaultsCategory(t *testing.T) {
	svc, categories, _ := newResearchServiceForTest()

	interest, err := svc.SaveInterest(context.Background(), &models.ResearchInterest{Name: "Robotics"})
	require.NoError(t, err)

	general, err := categories.GetByName(context.Background(), "General")
	require.NoError(t, err)
	assert.Equal(t, general.ID, interest.CategoryID)
}

func TestSaveInterest_UnknownCategory(t *testing.T) {
	svc, _, _ := newResearchServiceForTest()

	_, err := svc.SaveInterest(context.Background(), &models.ResearchInterest{Name: "Robotics", CategoryID: 99})
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
}

func TestGetInterestsByCategory(t *testing.T) {
	svc, _, _ := newResearchServiceForTest()

	category, err := svc.SaveCategory(context.Background(), &models.ResearchCategory{Name: "Sciences"})
	require.NoError(t, err)

	_, err = svc.SaveInterest(context.Background(), &models.ResearchInterest{Name: "Physics", CategoryID: category.ID})
	require.NoError(t, err)
	_, err = svc.SaveInterest(context.Background(), &models.ResearchInterest{Name: "Biology", CategoryID: category.ID})
	require.NoError(t, err)

	interests, err := svc.GetInterestsByCategory(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Len(t, interests, 2)

	_, err = svc.GetInterestsByCategory(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
}

func TestSearchInterestsByKeyword(t *testing.T) {
	svc, _, _ := newResearchServiceForTest()

	_, err := svc.SaveInterest(context.Background(), &models.ResearchInterest{
		Name:        "Artificial Intelligence",
		Description: "Machine Learning and AI Systems",
	})
	require.NoError(t, err)
	_, err = svc.SaveInterest(context.Background(), &models.ResearchInterest{
		Name:        "Finance",
		Description: "Financial Analysis and Investment",
	})
	require.NoError(t, err)

	matches, err := svc.SearchInterestsByKeyword(context.Background(), "Intelligence")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	// description text is searched too
	matches, err = svc.SearchInterestsByKeyword(context.Background(), "Investment")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	// empty keyword matches everything
	matches, err = svc.SearchInterestsByKeyword(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
