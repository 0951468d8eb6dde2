package controller

import (
	"context"
	"fmt"
	"sort"

	"github.com/gartstein/outreach/internal/outreach/models"
	"github.com/gartstein/outreach/internal/outreach/notify"
)

// Notifications fetches the current company and active-schedule snapshots
// and passes them explicitly to the pure deriver. An empty today defaults
// to the current UTC calendar day.
func (s *OutreachService) Notifications(ctx context.Context, today string) (notify.Classification, error) {
	if today == "" {
		today = notify.Today()
	}

	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		return notify.Classification{}, fmt.Errorf("failed to list companies: %w", err)
	}
	schedules, err := s.repo.ListActiveSchedules(ctx)
	if err != nil {
		return notify.Classification{}, fmt.Errorf("failed to list schedules: %w", err)
	}

	return notify.Classify(companies, notify.ActiveByCompany(schedules), today), nil
}

// Dashboard returns, per company, the five most recent communications
// (newest first) and the denormalized next-contact date.
func (s *OutreachService) Dashboard(ctx context.Context) ([]models.DashboardEntry, error) {
	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	entries := make([]models.DashboardEntry, 0, len(companies))
	for _, company := range companies {
		comms := make([]models.Communication, len(company.Communications))
		copy(comms, company.Communications)
		sort.SliceStable(comms, func(i, j int) bool {
			return comms[i].CommunicationDate > comms[j].CommunicationDate
		})
		if len(comms) > 5 {
			comms = comms[:5]
		}
		entries = append(entries, models.DashboardEntry{
			ID:                     company.ID,
			Name:                   company.Name,
			LastFiveCommunications: comms,
			NextCommunication:      company.NextCommunication,
		})
	}
	return entries, nil
}
