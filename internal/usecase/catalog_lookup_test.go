package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pnr-quote-service/internal/domain/entity"
	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/internal/domain/repository/mocks"
	repoimpl "pnr-quote-service/internal/interface/repository"
	"pnr-quote-service/internal/usecase"
	"pnr-quote-service/pkg/logger"
	"pnr-quote-service/pkg/utils"
)

func TestCatalogLookup_AirlineName(t *testing.T) {
	t.Parallel()

	// Arrange: the database misses, the static catalog knows the code
	ctrl := gomock.NewController(t)
	db := mocks.NewMockAirlineRepository(ctrl)
	db.EXPECT().GetByCode(gomock.Any(), "AF").Return(nil, repository.ErrNotFound)

	lookup := usecase.NewCatalogLookup(
		[]repository.AirlineRepository{db, repoimpl.NewStaticAirlineRepository()},
		nil,
		logger.NewNopLogger(),
	)

	// Act
	name := lookup.AirlineName(context.Background(), "af")

	// Assert
	require.Equal(t, "Air France", name)
}

func TestCatalogLookup_FirstRepositoryWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	db := mocks.NewMockAirlineRepository(ctrl)
	db.EXPECT().GetByCode(gomock.Any(), "AF").Return(&entity.Airline{Code: "AF", Name: "Air France S.A."}, nil)

	lookup := usecase.NewCatalogLookup(
		[]repository.AirlineRepository{db, repoimpl.NewStaticAirlineRepository()},
		nil,
		logger.NewNopLogger(),
	)

	require.Equal(t, "Air France S.A.", lookup.AirlineName(context.Background(), "AF"))
}

func TestCatalogLookup_RepositoryErrorIsNotFatal(t *testing.T) {
	t.Parallel()

	// Arrange: the database is down
	ctrl := gomock.NewController(t)
	db := mocks.NewMockAirportRepository(ctrl)
	db.EXPECT().GetByCode(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")).Times(2)

	lookup := usecase.NewCatalogLookup(
		nil,
		[]repository.AirportRepository{db, repoimpl.NewStaticAirportRepository()},
		logger.NewNopLogger(),
	)

	// Act & Assert: the static catalog still answers, unknown codes echo back
	require.Equal(t, "Guarulhos International Airport (GRU), São Paulo, Brazil", lookup.AirportName(context.Background(), "GRU"))
	require.Equal(t, "QQQ", lookup.AirportName(context.Background(), "qqq"))
}

func TestCatalogLookup_NoRepositories(t *testing.T) {
	t.Parallel()

	lookup := usecase.NewCatalogLookup(nil, nil, logger.NewNopLogger())

	require.Equal(t, "AF", lookup.AirlineName(context.Background(), "AF"))
	require.Equal(t, "GRU", lookup.AirportName(context.Background(), "GRU"))
}

func TestCatalogLookup_FeedsSegmentDecoder(t *testing.T) {
	t.Parallel()

	// Arrange: a database airport with no country
	ctrl := gomock.NewController(t)
	airports := mocks.NewMockAirportRepository(ctrl)
	airports.EXPECT().GetByCode(gomock.Any(), "GRU").Return(&entity.Airport{Code: "GRU", Name: "Guarulhos", CityName: "Sao Paulo"}, nil)
	airports.EXPECT().GetByCode(gomock.Any(), "CDG").Return(nil, repository.ErrNotFound)

	lookup := usecase.NewCatalogLookup(nil, []repository.AirportRepository{airports}, logger.NewNopLogger())
	decoder := utils.NewFlightSegmentDecoder(lookup, logger.NewNopLogger())

	// Act
	it, err := decoder.Decode(context.Background(), []string{"AF 459 14APR GRUCDG HS2 1915 #1115"}, 2026)

	// Assert
	require.NoError(t, err)
	require.Equal(t, "Guarulhos (GRU), Sao Paulo", it.Legs[0].DepartureName)
	require.Equal(t, "CDG", it.Legs[0].ArrivalName)
	require.Equal(t, "AF", it.Legs[0].CarrierName)
}
