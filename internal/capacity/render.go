package capacity

import (
	"encoding/json"
	"fmt"
	"strings"
)

const dateFormat = "2006-01-02"

// RenderSummary renders the Markdown summary report.
func RenderSummary(r Report) string {
	var sb strings.Builder

	writeHeader(&sb, r)
	if r.NoData {
		return sb.String()
	}

	writeUsage(&sb, r)
	writeWorkTypeTable(&sb, r.ByType)
	writeRecommendation(&sb, r)

	return sb.String()
}

// RenderDetailed renders the Markdown report with per-member and per-month
// breakdowns on top of the summary sections.
func RenderDetailed(r Report) string {
	var sb strings.Builder

	writeHeader(&sb, r)
	if r.NoData {
		return sb.String()
	}

	writeUsage(&sb, r)
	writeWorkTypeTable(&sb, r.ByType)

	sb.WriteString("## By team member\n\n")
	sb.WriteString("| Member | Professional Services | Support & Maintenance | Total | Entries |\n")
	sb.WriteString("|---|---:|---:|---:|---:|\n")
	for _, m := range r.Members {
		sb.WriteString(fmt.Sprintf("| %s | %.1fh | %.1fh | %.1fh | %d |\n",
			m.Name,
			m.ByType[ProfessionalServices].Hours,
			m.ByType[SupportMaintenance].Hours,
			m.Total.Hours,
			m.Total.EntryCount))
	}
	sb.WriteString("\n")

	sb.WriteString("## By month\n\n")
	sb.WriteString("| Month | Professional Services | Support & Maintenance | Total | Entries |\n")
	sb.WriteString("|---|---:|---:|---:|---:|\n")
	for _, mo := range r.Months {
		sb.WriteString(fmt.Sprintf("| %s | %.1fh | %.1fh | %.1fh | %d |\n",
			mo.Month,
			mo.ByType[ProfessionalServices].Hours,
			mo.ByType[SupportMaintenance].Hours,
			mo.Total.Hours,
			mo.Total.EntryCount))
	}
	sb.WriteString("\n")

	writeRecommendation(&sb, r)

	return sb.String()
}

// RenderJSON renders the report as indented JSON for programmatic use.
func RenderJSON(r Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func writeHeader(sb *strings.Builder, r Report) {
	sb.WriteString("# Capacity Report\n\n")
	sb.WriteString(fmt.Sprintf("Period: %s to %s\n\n", r.From.Format(dateFormat), r.To.Format(dateFormat)))
	if r.NoData {
		sb.WriteString("No entries found in this period. No utilization metrics were computed.\n")
		return
	}
	sb.WriteString("## Contract\n\n")
	sb.WriteString(fmt.Sprintf("- Monthly budget: %.1fh\n", r.Budget.MonthlyHours))
	sb.WriteString(fmt.Sprintf("- Contract total: %.1fh (%s to %s)\n",
		r.Budget.ContractTotalHours,
		r.Budget.Start.Format(dateFormat),
		r.Budget.End.Format(dateFormat)))
	sb.WriteString(fmt.Sprintf("- Months analyzed: %d\n\n", r.MonthsAnalyzed))
}

func writeUsage(sb *strings.Builder, r Report) {
	sb.WriteString("## Usage\n\n")
	sb.WriteString(fmt.Sprintf("- Actual hours: %.1fh\n", r.ActualHours))
	sb.WriteString(fmt.Sprintf("- Expected hours: %.1fh\n", r.ExpectedHours))
	sb.WriteString(fmt.Sprintf("- Utilization: %.1f%%\n", r.UtilizationPct))
	sb.WriteString(fmt.Sprintf("- Remaining capacity: %.1fh\n", r.RemainingHours))
	sb.WriteString(fmt.Sprintf("- Average monthly hours: %.1fh\n\n", r.AverageMonthlyHours))
}

func writeWorkTypeTable(sb *strings.Builder, byType map[WorkType]Totals) {
	sb.WriteString("## By work type\n\n")
	sb.WriteString("| Work type | Hours | Entries |\n")
	sb.WriteString("|---|---:|---:|\n")
	for _, workType := range []WorkType{ProfessionalServices, SupportMaintenance} {
		t := byType[workType]
		sb.WriteString(fmt.Sprintf("| %s | %.1fh | %d |\n", workType, t.Hours, t.EntryCount))
	}
	sb.WriteString("\n")
}

func writeRecommendation(sb *strings.Builder, r Report) {
	sb.WriteString("## Recommendation\n\n")
	sb.WriteString(r.Recommendation)
	sb.WriteString("\n")
}
