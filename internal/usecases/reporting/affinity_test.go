package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/akozyrev/basket-analytics-api/infrastructure/repository"
	"github.com/akozyrev/basket-analytics-api/infrastructure/repository/mocks"
	"github.com/akozyrev/basket-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetProductAffinity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAffinityRepo := mocks.NewMockAffinityRepository(ctrl)

	service := &Service{
		cfg:          testConfig(),
		affinityRepo: mockAffinityRepo,
	}

	channel := domain.ChannelAll

	t.Run("derives support confidence and lift from the store counts", func(t *testing.T) {
		period := testPeriod(1, 7)

		mockAffinityRepo.EXPECT().
			GetProductPairs(period, channel, int64(0), 1, 10).
			Return([]*repository.ProductPairRow{
				{KeyA: "p:1", IDA: 1, NameA: "Coffee Beans", KeyB: "p:2", IDB: 2, NameB: "Paper Filters", Count: 20},
			}, nil)

		mockAffinityRepo.EXPECT().
			CountOrders(period, channel).
			Return(100, nil)

		mockAffinityRepo.EXPECT().
			GetProductOrderCounts(period, channel, gomock.Any()).
			Return(map[string]int{"p:1": 40, "p:2": 25}, nil)

		result, err := service.GetProductAffinity(period, channel, 0, 0)

		require.NoError(t, err)
		require.Len(t, result, 1)

		pair := result[0]
		assert.Equal(t, int64(1), pair.ProductAID)
		assert.Equal(t, "Coffee Beans", pair.ProductA)
		assert.Equal(t, int64(2), pair.ProductBID)
		assert.Equal(t, "Paper Filters", pair.ProductB)
		assert.Equal(t, 20, pair.Count)
		assert.Equal(t, 0.2, pair.Support)   // 20 / 100
		assert.Equal(t, 0.5, pair.ConfidenceAtoB) // 20 / 40
		assert.Equal(t, 0.8, pair.ConfidenceBtoA) // 20 / 25
		assert.Equal(t, 2.0, pair.Lift) // 20 * 100 / (40 * 25)

		// Support can never exceed either confidence.
		assert.LessOrEqual(t, pair.Support, pair.ConfidenceAtoB)
		assert.LessOrEqual(t, pair.Support, pair.ConfidenceBtoA)
	})

	t.Run("statistics are rounded to their documented precision", func(t *testing.T) {
		period := testPeriod(1, 7)

		mockAffinityRepo.EXPECT().
			GetProductPairs(period, channel, int64(0), 1, 10).
			Return([]*repository.ProductPairRow{
				{KeyA: "p:3", IDA: 3, NameA: "Shampoo", KeyB: "p:4", IDB: 4, NameB: "Conditioner", Count: 7},
			}, nil)

		mockAffinityRepo.EXPECT().
			CountOrders(period, channel).
			Return(150, nil)

		mockAffinityRepo.EXPECT().
			GetProductOrderCounts(period, channel, gomock.Any()).
			Return(map[string]int{"p:3": 9, "p:4": 11}, nil)

		result, err := service.GetProductAffinity(period, channel, 0, 0)

		require.NoError(t, err)
		require.Len(t, result, 1)

		pair := result[0]
		assert.Equal(t, 0.0467, pair.Support)  // 7/150 = 0.04666...
		assert.Equal(t, 0.778, pair.ConfidenceAtoB) // 7/9
		assert.Equal(t, 0.636, pair.ConfidenceBtoA) // 7/11
		assert.Equal(t, 10.61, pair.Lift) // 7*150/(9*11)
	})

	t.Run("short window requires a single co-occurrence", func(t *testing.T) {
		period := testPeriod(1, 13) // 13 days

		mockAffinityRepo.EXPECT().
			GetProductPairs(period, channel, int64(0), 1, 10).
			Return([]*repository.ProductPairRow{}, nil)

		result, err := service.GetProductAffinity(period, channel, 0, 0)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("fourteen day window switches to the strict threshold", func(t *testing.T) {
		period := testPeriod(1, 14)

		mockAffinityRepo.EXPECT().
			GetProductPairs(period, channel, int64(0), 2, 10).
			Return([]*repository.ProductPairRow{}, nil)

		result, err := service.GetProductAffinity(period, channel, 0, 0)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("explicit limit and anchor are forwarded to the store", func(t *testing.T) {
		period := testPeriod(1, 7)

		mockAffinityRepo.EXPECT().
			GetProductPairs(period, channel, int64(42), 1, 5).
			Return([]*repository.ProductPairRow{}, nil)

		result, err := service.GetProductAffinity(period, channel, 5, 42)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("missing per-product counts guard the denominators", func(t *testing.T) {
		period := testPeriod(1, 7)

		mockAffinityRepo.EXPECT().
			GetProductPairs(period, channel, int64(0), 1, 10).
			Return([]*repository.ProductPairRow{
				{KeyA: "p:1", IDA: 1, NameA: "Coffee Beans", KeyB: "i:9", IDB: 0, NameB: "Loose Item", Count: 3},
			}, nil)

		mockAffinityRepo.EXPECT().
			CountOrders(period, channel).
			Return(50, nil)

		mockAffinityRepo.EXPECT().
			GetProductOrderCounts(period, channel, gomock.Any()).
			Return(map[string]int{"p:1": 10}, nil)

		result, err := service.GetProductAffinity(period, channel, 0, 0)

		require.NoError(t, err)
		require.Len(t, result, 1)

		pair := result[0]
		assert.Equal(t, 0.06, pair.Support)
		assert.Equal(t, 0.3, pair.ConfidenceAtoB)
		assert.Equal(t, 0.0, pair.ConfidenceBtoA)
		assert.Equal(t, 0.0, pair.Lift)
	})

	t.Run("pair read failure is propagated", func(t *testing.T) {
		period := testPeriod(1, 7)

		mockAffinityRepo.EXPECT().
			GetProductPairs(period, channel, int64(0), 1, 10).
			Return(nil, assert.AnError)

		_, err := service.GetProductAffinity(period, channel, 0, 0)

		assert.Error(t, err)
	})
}

func TestService_GetCategoryAffinity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAffinityRepo := mocks.NewMockAffinityRepository(ctrl)

	service := &Service{
		cfg:          testConfig(),
		affinityRepo: mockAffinityRepo,
	}

	period := testPeriod(1, 31)
	channel := domain.ChannelAll

	t.Run("rows map onto category pairs with the default limit", func(t *testing.T) {
		mockAffinityRepo.EXPECT().
			GetCategoryPairs(period, channel, 10).
			Return([]*repository.EntityPairRow{
				{NameA: "Beverages", NameB: "Snacks", Count: 42},
				{NameA: "Dairy", NameB: "Unknown", Count: 7},
			}, nil)

		result, err := service.GetCategoryAffinity(period, channel, 0)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Beverages", result[0].CategoryA)
		assert.Equal(t, "Snacks", result[0].CategoryB)
		assert.Equal(t, 42, result[0].Count)
		assert.Equal(t, "Unknown", result[1].CategoryB)
	})

	t.Run("category read failure is propagated", func(t *testing.T) {
		mockAffinityRepo.EXPECT().
			GetCategoryPairs(period, channel, 10).
			Return(nil, assert.AnError)

		_, err := service.GetCategoryAffinity(period, channel, 0)

		assert.Error(t, err)
	})
}

func TestService_GetBrandAffinity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAffinityRepo := mocks.NewMockAffinityRepository(ctrl)

	service := &Service{
		cfg:          testConfig(),
		affinityRepo: mockAffinityRepo,
	}

	channel := domain.ChannelWholesale

	t.Run("long window applies the strict threshold", func(t *testing.T) {
		period := testPeriod(1, 31)

		mockAffinityRepo.EXPECT().
			GetBrandPairs(period, channel, 2, 10).
			Return([]*repository.EntityPairRow{
				{NameA: "Acme", NameB: "Globex", Count: 12},
			}, nil)

		result, err := service.GetBrandAffinity(period, channel, 0)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Acme", result[0].BrandA)
		assert.Equal(t, "Globex", result[0].BrandB)
		assert.Equal(t, 12, result[0].Count)
	})

	t.Run("short window relaxes the threshold", func(t *testing.T) {
		period := testPeriod(1, 7)

		mockAffinityRepo.EXPECT().
			GetBrandPairs(period, channel, 1, 10).
			Return([]*repository.EntityPairRow{}, nil)

		result, err := service.GetBrandAffinity(period, channel, 0)

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}
