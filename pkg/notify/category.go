// pkg/notify/category.go
package notify

import (
	"fmt"

	"github.com/buildcrew/sitemaster/ent/generated/notification"
)

// Category constants for string-based notification handling
const (
	CategoryScheduleCreated   = "schedule_created"
	CategoryScheduleUpdated   = "schedule_updated"
	CategoryScheduleDeleted   = "schedule_deleted"
	CategoryTaskCreated       = "task_created"
	CategoryTaskUpdated       = "task_updated"
	CategoryTaskStatusChanged = "task_status_changed"
	CategoryTaskDeleted       = "task_deleted"
)

// ParseCategory converts a string category to the Ent enum.
func ParseCategory(category string) (notification.Category, error) {
	switch category {
	case CategoryScheduleCreated:
		return notification.CategoryScheduleCreated, nil
	case CategoryScheduleUpdated:
		return notification.CategoryScheduleUpdated, nil
	case CategoryScheduleDeleted:
		return notification.CategoryScheduleDeleted, nil
	case CategoryTaskCreated:
		return notification.CategoryTaskCreated, nil
	case CategoryTaskUpdated:
		return notification.CategoryTaskUpdated, nil
	case CategoryTaskStatusChanged:
		return notification.CategoryTaskStatusChanged, nil
	case CategoryTaskDeleted:
		return notification.CategoryTaskDeleted, nil
	default:
		return "", fmt.Errorf("unknown notification category: %s", category)
	}
}

// CategoryToString converts the Ent enum back to its string form.
func CategoryToString(category notification.Category) string {
	return string(category)
}
