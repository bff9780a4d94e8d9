package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gamerental-backend/internal/domain"
	"gamerental-backend/internal/service"
)

func TestIngestService_LoadRentalHistory(t *testing.T) {
	ctx := context.Background()

	input := "Game Id\tRental Start\tRental End\tCustomer Id\n" +
		"50\t09/11/2023\t\t9967\n" +
		"50\t09/11/2023\t\t9967\n" + // duplicate, dropped
		"51\t10/11/2023\t12/11/2023\t1234\n"

	rentalRepo := new(MockRentalRepo)
	rentalRepo.On("LoadHistory", ctx,
		mock.MatchedBy(func(records []domain.RentalRecord) bool {
			return len(records) == 2 && records[0].RentalIndex == 1 && records[1].RentalIndex == 2
		}),
		mock.MatchedBy(func(periods []domain.RentalPeriod) bool {
			return len(periods) == 2 && periods[0].Open() && !periods[1].Open()
		}),
	).Return(nil)

	svc := service.NewIngestService(rentalRepo)
	report, err := svc.LoadRentalHistory(ctx, strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Accepted)
	assert.Len(t, report.Rejections, 1)
	rentalRepo.AssertExpectations(t)
}

func TestIngestService_LoadRentalHistory_StorageFailure(t *testing.T) {
	ctx := context.Background()

	rentalRepo := new(MockRentalRepo)
	rentalRepo.On("LoadHistory", ctx, mock.Anything, mock.Anything).Return(assert.AnError)

	svc := service.NewIngestService(rentalRepo)
	_, err := svc.LoadRentalHistory(ctx, strings.NewReader("header\n50\t09-11-2023\t\t9967\n"))
	assert.Error(t, err)
}
