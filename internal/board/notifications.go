package board

import (
	"fmt"
	"sort"
	"time"

	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
)

const (
	NotificationOverdue  = "overdue"
	NotificationAssigned = "assigned"
	NotificationScrapped = "scrapped"
)

// scrappedFeedLimit caps how many recently scrapped equipment items enter the
// feed.
const scrappedFeedLimit = 3

type Notification struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	EquipmentID string    `json:"equipment_id,omitempty"`
}

// BuildNotifications unions three item kinds: overdue requests (any viewer),
// requests assigned to the viewer that are still open (technicians only), and
// the most recently scrapped equipment. The union is sorted descending by each
// item's timestamp: scheduled date for overdue, update time for assigned,
// scrap time for scrapped.
func BuildNotifications(requests []entities.MaintenanceRequest, equipment []entities.Equipment, viewer *entities.User, now time.Time) []Notification {
	names := EquipmentNameIndex(equipment)
	items := make([]Notification, 0)

	for i := range requests {
		r := &requests[i]
		if !IsOverdue(r, now) {
			continue
		}
		days := DaysOverdue(r, now)
		plural := "s"
		if days == 1 {
			plural = ""
		}
		eqName := names[r.EquipmentID]
		if eqName == "" {
			eqName = "Unknown"
		}
		ts := now
		if r.ScheduledDate != nil {
			ts = *r.ScheduledDate
		}
		items = append(items, Notification{
			ID:          "overdue-" + r.ID,
			Type:        NotificationOverdue,
			Title:       "Overdue: " + r.Subject,
			Description: fmt.Sprintf("%s · %d day%s overdue", eqName, days, plural),
			Timestamp:   ts,
			RequestID:   r.ID,
		})
	}

	if viewer != nil && viewer.Role == constants.RoleTechnician {
		for i := range requests {
			r := &requests[i]
			if r.AssignedToID == nil || *r.AssignedToID != viewer.ID {
				continue
			}
			if lifecycle.IsTerminal(r.Stage) {
				continue
			}
			eqName := names[r.EquipmentID]
			if eqName == "" {
				eqName = "Unknown"
			}
			items = append(items, Notification{
				ID:          "assigned-" + r.ID,
				Type:        NotificationAssigned,
				Title:       "Assigned: " + r.Subject,
				Description: eqName + " · " + r.Type,
				Timestamp:   r.UpdatedAt,
				RequestID:   r.ID,
			})
		}
	}

	scrapped := make([]entities.Equipment, 0)
	for i := range equipment {
		if equipment[i].IsScrapped && equipment[i].ScrappedAt != nil {
			scrapped = append(scrapped, equipment[i])
		}
	}
	sort.SliceStable(scrapped, func(a, b int) bool {
		return scrapped[a].ScrappedAt.After(*scrapped[b].ScrappedAt)
	})
	if len(scrapped) > scrappedFeedLimit {
		scrapped = scrapped[:scrappedFeedLimit]
	}
	for i := range scrapped {
		e := &scrapped[i]
		desc := "Equipment marked as unusable"
		if e.ScrappedReason != nil && *e.ScrappedReason != "" {
			desc = *e.ScrappedReason
		}
		items = append(items, Notification{
			ID:          "scrapped-" + e.ID,
			Type:        NotificationScrapped,
			Title:       "Scrapped: " + e.Name,
			Description: desc,
			Timestamp:   *e.ScrappedAt,
			EquipmentID: e.ID,
		})
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Timestamp.After(items[b].Timestamp)
	})
	return items
}
