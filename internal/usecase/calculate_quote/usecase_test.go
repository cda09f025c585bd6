package calculate_quote

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housnkuh/booking-service/internal/domain"
)

type stubCatalogueRepo struct {
	units     []domain.RentalUnit
	addons    []domain.Addon
	unitsErr  error
	addonsErr error
}

func (s *stubCatalogueRepo) ListRentalUnits(_ context.Context) ([]domain.RentalUnit, error) {
	return s.units, s.unitsErr
}

func (s *stubCatalogueRepo) ListAddons(_ context.Context) ([]domain.Addon, error) {
	return s.addons, s.addonsErr
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Info(string, ...interface{}) {}
func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Error(string, ...interface{}) {}

func testRepo() *stubCatalogueRepo {
	return &stubCatalogueRepo{
		units: []domain.RentalUnit{
			{ID: "regal-s", Name: "Regal S", MonthlyPrice: 35},
			{ID: "regal-m", Name: "Regal M", MonthlyPrice: 50},
		},
		addons: []domain.Addon{
			{ID: "social-media", Name: "Social Media Paket", MonthlyPrice: 30, BillingPeriod: domain.BillingMonthly},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("computes breakdown and summary", func(t *testing.T) {
		uc := NewUseCase(testRepo(), &recordingLogger{})

		resp, err := uc.Execute(ctx, &Request{Selection: domain.Selection{
			ProvisionType:        domain.ProvisionBasic,
			UnitCounts:           map[string]int{"regal-s": 2, "regal-m": 1},
			AddonIDs:             []string{"social-media"},
			RentalDurationMonths: 12,
		}})

		require.NoError(t, err)
		assert.Equal(t, 150.0, resp.Breakdown.Subtotal)
		assert.Equal(t, 135.0, resp.Breakdown.MonthlyTotal)
		require.Len(t, resp.Summary.Items, 2)
		assert.Equal(t, "regal-s", resp.Summary.Items[0].UnitID)
	})

	t.Run("unknown ids degrade to zero and are logged", func(t *testing.T) {
		log := &recordingLogger{}
		uc := NewUseCase(testRepo(), log)

		resp, err := uc.Execute(ctx, &Request{Selection: domain.Selection{
			ProvisionType:        domain.ProvisionBasic,
			UnitCounts:           map[string]int{"ghost-unit": 1},
			AddonIDs:             []string{"ghost-addon"},
			RentalDurationMonths: 1,
		}})

		require.NoError(t, err)
		assert.Equal(t, 0.0, resp.Breakdown.MonthlyTotal)
		assert.Len(t, log.warnings, 2)
	})

	t.Run("unknown provision type is a warning, not an error", func(t *testing.T) {
		log := &recordingLogger{}
		uc := NewUseCase(testRepo(), log)

		resp, err := uc.Execute(ctx, &Request{Selection: domain.Selection{
			ProvisionType:        "platinum",
			UnitCounts:           map[string]int{"regal-s": 1},
			RentalDurationMonths: 1,
		}})

		require.NoError(t, err)
		assert.Equal(t, domain.ProvisionRateBasic, resp.Breakdown.ProvisionRate)
		assert.False(t, resp.Breakdown.ProvisionKnown)
		assert.NotEmpty(t, log.warnings)
	})

	t.Run("negative duration is rejected", func(t *testing.T) {
		uc := NewUseCase(testRepo(), &recordingLogger{})

		_, err := uc.Execute(ctx, &Request{Selection: domain.Selection{
			ProvisionType:        domain.ProvisionBasic,
			RentalDurationMonths: -1,
		}})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("nil request is rejected", func(t *testing.T) {
		uc := NewUseCase(testRepo(), &recordingLogger{})

		_, err := uc.Execute(ctx, nil)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure surfaces as internal error", func(t *testing.T) {
		repo := testRepo()
		repo.unitsErr = errors.New("connection refused")
		uc := NewUseCase(repo, &recordingLogger{})

		_, err := uc.Execute(ctx, &Request{Selection: domain.Selection{
			ProvisionType: domain.ProvisionBasic,
		}})

		assert.ErrorIs(t, err, ErrInternal)
	})
}
