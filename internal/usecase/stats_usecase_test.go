package usecase

import (
	"context"
	"testing"
	"time"
)

func TestStatsAggregation(t *testing.T) {
	repo := &fakeStatsRepo{
		patients:     12,
		appointments: 30,
		sinceCount:   4,
		revenue:      6500, // two invoices of 2500 and 4000
	}
	stats := NewStatsUsecase(quietLogger(), repo)

	resp, err := stats.Get(context.Background())
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}

	if resp.PatientCount != 12 {
		t.Fatalf("expected 12 patients, got %d", resp.PatientCount)
	}
	if resp.AppointmentCount != 30 {
		t.Fatalf("expected 30 appointments, got %d", resp.AppointmentCount)
	}
	if resp.AppointmentsToday != 4 {
		t.Fatalf("expected 4 appointments today, got %d", resp.AppointmentsToday)
	}
	if resp.TotalRevenue != 6500 {
		t.Fatalf("expected total revenue 6500, got %v", resp.TotalRevenue)
	}
}

func TestStatsTodayStartsAtMidnight(t *testing.T) {
	repo := &fakeStatsRepo{}
	stats := NewStatsUsecase(quietLogger(), repo).(*statsUsecase)

	fixed := time.Date(2025, 6, 15, 14, 35, 12, 0, time.UTC)
	stats.now = func() time.Time { return fixed }

	if _, err := stats.Get(context.Background()); err != nil {
		t.Fatalf("get stats: %v", err)
	}

	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !repo.lastSince.Equal(want) {
		t.Fatalf("expected since %s, got %s", want, repo.lastSince)
	}
}
