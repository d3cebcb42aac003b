package service

import (
	"context"
	"sort"

	"gymhub/internal/domain"
	"gymhub/internal/store"
)

// Report rows are raw tabular aggregates; turning them into charts is the
// rendering layer's concern.

// MonthCount is one point of the membership growth series.
type MonthCount struct {
	Month string `json:"month"` // "2006-01"
	Count int    `json:"count"`
}

// MonthAmount is one point of the monthly revenue series.
type MonthAmount struct {
	Month  string `json:"month"`
	Amount int    `json:"amount"`
}

// PlanCount is one slice of the plan distribution.
type PlanCount struct {
	Plan  string `json:"plan"`
	Count int    `json:"count"`
}

// ClassBookings is one bar of the class popularity report.
type ClassBookings struct {
	Class    string `json:"class"`
	Bookings int    `json:"bookings"`
}

// DashboardStats is the admin landing page summary.
type DashboardStats struct {
	TotalMembers  int          `json:"totalMembers"`
	ActiveMembers int          `json:"activeMembers"`
	TotalRevenue  int          `json:"totalRevenue"`
	Growth        []MonthCount `json:"growth"`
}

type ReportService interface {
	Dashboard(ctx context.Context) (DashboardStats, error)
	MonthlyRevenue(ctx context.Context) ([]MonthAmount, error)
	PlanDistribution(ctx context.Context) ([]PlanCount, error)
	ClassPopularity(ctx context.Context) ([]ClassBookings, error)
}

type reportService struct {
	store store.Store
}

// NewReportService creates a new instance of reportService.
func NewReportService(st store.Store) ReportService {
	return &reportService{store: st}
}

const monthKey = "2006-01"

func (s *reportService) Dashboard(ctx context.Context) (DashboardStats, error) {
	members, err := s.store.Members(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	payments, err := s.store.Payments(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{TotalMembers: len(members)}
	for _, m := range members {
		if m.Status == domain.StatusActive {
			stats.ActiveMembers++
		}
	}
	for _, p := range payments {
		stats.TotalRevenue += p.Amount
	}

	signups := make(map[string]int)
	for _, m := range members {
		signups[m.JoinDate.Format(monthKey)]++
	}
	stats.Growth = sortedMonthCounts(signups)
	return stats, nil
}

func (s *reportService) MonthlyRevenue(ctx context.Context) ([]MonthAmount, error) {
	payments, err := s.store.Payments(ctx)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[string]int)
	for _, p := range payments {
		byMonth[p.Date.Format(monthKey)] += p.Amount
	}

	out := make([]MonthAmount, 0, len(byMonth))
	for month, amount := range byMonth {
		out = append(out, MonthAmount{Month: month, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (s *reportService) PlanDistribution(ctx context.Context) ([]PlanCount, error) {
	members, err := s.store.Members(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, m := range members {
		counts[m.Plan]++
	}

	out := make([]PlanCount, 0, len(counts))
	for plan, count := range counts {
		out = append(out, PlanCount{Plan: plan, Count: count})
	}
	// Most popular plan first; ties in name order to keep output stable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Plan < out[j].Plan
	})
	return out, nil
}

func (s *reportService) ClassPopularity(ctx context.Context) ([]ClassBookings, error) {
	classes, err := s.store.Classes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClassBookings, len(classes))
	for i, c := range classes {
		out[i] = ClassBookings{Class: c.Name, Bookings: len(c.Booked)}
	}
	return out, nil
}

func sortedMonthCounts(byMonth map[string]int) []MonthCount {
	out := make([]MonthCount, 0, len(byMonth))
	for month, count := range byMonth {
		out = append(out, MonthCount{Month: month, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
