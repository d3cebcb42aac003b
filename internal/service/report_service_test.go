package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"gymhub/internal/domain"
	"gymhub/internal/store"
)

type ReportServiceSuite struct {
	suite.Suite
	store   *store.InMemory
	reports ReportService
	ctx     context.Context
}

func (s *ReportServiceSuite) SetupTest() {
	s.store = store.Seed()
	s.reports = NewReportService(s.store)
	s.ctx = context.Background()
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceSuite))
}

func (s *ReportServiceSuite) TestDashboard() {
	stats, err := s.reports.Dashboard(s.ctx)
	s.Require().NoError(err)

	s.Equal(3, stats.TotalMembers)
	s.Equal(2, stats.ActiveMembers)
	s.Equal(6500, stats.TotalRevenue)

	// One signup per seeded month, ascending.
	s.Require().Len(stats.Growth, 3)
	s.Equal(MonthCount{Month: "2023-05", Count: 1}, stats.Growth[0])
	s.Equal(MonthCount{Month: "2024-01", Count: 1}, stats.Growth[1])
	s.Equal(MonthCount{Month: "2024-03", Count: 1}, stats.Growth[2])
}

func (s *ReportServiceSuite) TestMonthlyRevenue() {
	revenue, err := s.reports.MonthlyRevenue(s.ctx)
	s.Require().NoError(err)
	s.Equal([]MonthAmount{
		{Month: "2024-01", Amount: 4000},
		{Month: "2024-03", Amount: 2500},
	}, revenue)

	// Same-month payments aggregate into one row.
	err = s.store.AppendPayment(s.ctx, domain.Payment{
		MemberID: 3, Amount: 1500,
		Date: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), Plan: "Bronze",
	})
	s.Require().NoError(err)

	revenue, err = s.reports.MonthlyRevenue(s.ctx)
	s.Require().NoError(err)
	s.Equal(4000, revenue[1].Amount)
}

func (s *ReportServiceSuite) TestPlanDistribution() {
	distribution, err := s.reports.PlanDistribution(s.ctx)
	s.Require().NoError(err)
	// One member per plan; ties break by name.
	s.Equal([]PlanCount{
		{Plan: "Bronze", Count: 1},
		{Plan: "Gold", Count: 1},
		{Plan: "Silver", Count: 1},
	}, distribution)
}

func (s *ReportServiceSuite) TestClassPopularity() {
	popularity, err := s.reports.ClassPopularity(s.ctx)
	s.Require().NoError(err)
	s.Equal([]ClassBookings{
		{Class: "Morning CrossFit", Bookings: 2},
		{Class: "Evening Yoga", Bookings: 1},
		{Class: "Pilates Core", Bookings: 0},
	}, popularity)
}
