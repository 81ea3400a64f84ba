package projection

import (
	"sort"
	"time"

	"github.com/Dan9191/finance-planner/internal/models"
)

// CollectCalendarEvents lists maturities inside the horizon and goals that are not
// reached yet, oldest first. A goal event is dated now, not at its projected completion.
func CollectCalendarEvents(now time.Time, accounts []models.SavingsAccount, months int) []models.CalendarEvent {
	events := []models.CalendarEvent{}
	if months <= 0 {
		return events
	}
	end := HorizonEnd(now, months)

	for _, a := range accounts {
		if a.MaturityDate != nil {
			m := *a.MaturityDate
			if !m.Before(now) && !m.After(end) {
				events = append(events, models.CalendarEvent{Date: m, Title: "Termin: " + a.Name, Type: models.EventBond})
			}
		}
		if a.Type == models.AccountGoal && a.TargetAmount != nil && *a.TargetAmount > 0 {
			if a.Balance/(*a.TargetAmount) < 1 {
				events = append(events, models.CalendarEvent{Date: now, Title: "Cel: " + a.Name, Type: models.EventGoal})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}
