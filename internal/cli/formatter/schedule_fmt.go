package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planmyday/internal/app"
)

// RenderSchedule renders an OptimizeResponse as a human table: one
// section for the ordered schedule, one for unachievable items (when
// any), and a trailing score/warnings footer.
func RenderSchedule(resp *app.OptimizeResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", Header(fmt.Sprintf("Schedule for %s on %s", resp.NurseID, resp.ScheduleDate)))

	if len(resp.OptimizedSchedule) == 0 {
		b.WriteString(Dim("no schedule produced") + "\n\n")
	} else {
		headers := []string{"Start", "End", "Type", "Title", "Details"}
		rows := make([][]string, 0, len(resp.OptimizedSchedule))
		for _, item := range resp.OptimizedSchedule {
			rows = append(rows, []string{item.SlotStartTime, item.SlotEndTime, item.ActivityType, item.Title, item.Details})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	if len(resp.UnachievableItems) > 0 {
		b.WriteString(Header("Unachievable") + "\n\n")
		headers := []string{"ItemID", "Type", "Reason"}
		rows := make([][]string, 0, len(resp.UnachievableItems))
		for _, item := range resp.UnachievableItems {
			rows = append(rows, []string{item.ItemID, item.ItemType, item.Reason})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %.1f\n", Bold("Score:"), resp.OptimizationScore)
	for _, w := range resp.Warnings {
		fmt.Fprintf(&b, "%s %s\n", Warn("Warning:"), w)
	}

	return b.String()
}
