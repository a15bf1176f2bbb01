package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeStatus(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before opening", start.Add(-24 * time.Hour), StatusUpcoming},
		{"moment of opening", start, StatusOngoing},
		{"mid-run", start.Add(30 * 24 * time.Hour), StatusOngoing},
		{"moment of closing", end, StatusOngoing},
		{"after closing", end.Add(time.Minute), StatusPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStatus(tt.now, start, end))
		})
	}
}

func TestTierPrice(t *testing.T) {
	e := &Exhibition{TicketTiers: []TicketTier{
		{Tier: TierRegular, Price: decimal.NewFromInt(25)},
		{Tier: TierStudent, Price: decimal.NewFromInt(12)},
	}}

	price, ok := e.TierPrice(TierStudent)
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(12)))

	_, ok = e.TierPrice(TierVIP)
	assert.False(t, ok)
}

func TestCreateExhibitionRequest_DateRange(t *testing.T) {
	req := CreateExhibitionRequest{
		Title:     "Spring Salon",
		Location:  "Hall B",
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Error(t, req.Validate())

	req.EndDate = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, req.Validate())
}

func TestCreateExhibitionRequest_RejectsUnknownTier(t *testing.T) {
	req := CreateExhibitionRequest{
		Title:       "Spring Salon",
		Location:    "Hall B",
		StartDate:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		TicketTiers: []TicketTier{{Tier: "backstage", Price: decimal.NewFromInt(99)}},
	}
	assert.Error(t, req.Validate())
}
