package capacity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/askeland/standup/internal/config"
	"github.com/askeland/standup/internal/entry"
	"github.com/askeland/standup/internal/timeutil"
)

// WorkType is the billing categorization used by the capacity report.
// Every entry is exactly one of the two: keyword/tag matches make it
// Professional Services, everything else defaults to Support & Maintenance.
type WorkType string

const (
	ProfessionalServices WorkType = "Professional Services"
	SupportMaintenance   WorkType = "Support & Maintenance"
)

// Totals is one accumulator leaf.
type Totals struct {
	Hours      float64 `json:"hours"`
	EntryCount int     `json:"entry_count"`
}

func (t *Totals) add(minutes int) {
	t.Hours += float64(minutes) / 60
	t.EntryCount++
}

// MemberSummary holds one team member's hours split by work type.
type MemberSummary struct {
	Name   string              `json:"name"`
	ByType map[WorkType]Totals `json:"by_type"`
	Total  Totals              `json:"total"`
}

// MonthSummary holds one calendar month's hours split by work type.
type MonthSummary struct {
	Month  string              `json:"month"`
	ByType map[WorkType]Totals `json:"by_type"`
	Total  Totals              `json:"total"`
}

// Budget is the contracted capacity the report compares against.
type Budget struct {
	MonthlyHours       float64   `json:"monthly_hours"`
	ContractTotalHours float64   `json:"contract_total_hours"`
	Start              time.Time `json:"start"`
	End                time.Time `json:"end"`
}

// BudgetFromConfig parses the configured contract dates into a Budget.
func BudgetFromConfig(cfg config.Capacity) (Budget, error) {
	start, err := timeutil.ParseDate(cfg.ContractStart)
	if err != nil {
		return Budget{}, fmt.Errorf("contract_start: %w", err)
	}
	end, err := timeutil.ParseDate(cfg.ContractEnd)
	if err != nil {
		return Budget{}, fmt.Errorf("contract_end: %w", err)
	}
	return Budget{
		MonthlyHours:       cfg.MonthlyBudgetHours,
		ContractTotalHours: cfg.ContractTotalHours,
		Start:              start,
		End:                end,
	}, nil
}

// Report is the result of one aggregation run. When NoData is set, no
// derived metric was computed and the renderers emit an explicit
// "no data" report instead of utilization figures.
type Report struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	NoData bool `json:"no_data"`

	Budget         Budget `json:"budget"`
	MonthsAnalyzed int    `json:"months_analyzed"`

	ActualHours         float64 `json:"actual_hours"`
	ExpectedHours       float64 `json:"expected_hours"`
	UtilizationPct      float64 `json:"utilization_pct"`
	RemainingHours      float64 `json:"remaining_hours"`
	AverageMonthlyHours float64 `json:"average_monthly_hours"`

	ByType  map[WorkType]Totals `json:"by_type"`
	Members []MemberSummary     `json:"members"`
	Months  []MonthSummary      `json:"months"`

	Recommendation string `json:"recommendation"`
}

// WorkTypeOf categorizes one entry. Tag matches are exact
// (case-insensitive) against the configured category labels; description
// matches are case-insensitive substring containment of any configured
// initiative keyword.
func WorkTypeOf(e entry.Entry, cfg config.Capacity) WorkType {
	for _, tag := range e.Tags {
		for _, label := range cfg.ProServicesTags {
			if strings.EqualFold(tag, label) {
				return ProfessionalServices
			}
		}
	}
	desc := strings.ToLower(e.Description)
	for _, keyword := range cfg.InitiativeKeywords {
		if keyword != "" && strings.Contains(desc, strings.ToLower(keyword)) {
			return ProfessionalServices
		}
	}
	return SupportMaintenance
}

// Aggregate folds the entries dated within [from, to] into per-member,
// per-work-type, and per-month totals and computes utilization against the
// budget. MonthsAnalyzed counts inclusive calendar months from the
// contract start to now, not the requested range.
func Aggregate(entries []entry.Entry, from, to time.Time, budget Budget, cfg config.Capacity, now time.Time) Report {
	r := Report{
		From:   from,
		To:     to,
		Budget: budget,
		ByType: map[WorkType]Totals{},
	}

	members := make(map[string]*MemberSummary)
	months := make(map[string]*MonthSummary)

	totalMinutes := 0
	for _, e := range entries {
		if !timeutil.IsInRange(e.Date, from, to) {
			continue
		}

		workType := WorkTypeOf(e, cfg)
		totalMinutes += e.Minutes

		byType := r.ByType[workType]
		byType.add(e.Minutes)
		r.ByType[workType] = byType

		name := e.User.DisplayName()
		m, ok := members[name]
		if !ok {
			m = &MemberSummary{Name: name, ByType: map[WorkType]Totals{}}
			members[name] = m
		}
		mt := m.ByType[workType]
		mt.add(e.Minutes)
		m.ByType[workType] = mt
		m.Total.add(e.Minutes)

		key := timeutil.MonthKey(e.Date)
		mo, ok := months[key]
		if !ok {
			mo = &MonthSummary{Month: key, ByType: map[WorkType]Totals{}}
			months[key] = mo
		}
		mot := mo.ByType[workType]
		mot.add(e.Minutes)
		mo.ByType[workType] = mot
		mo.Total.add(e.Minutes)
	}

	if totalMinutes == 0 {
		// No division on an empty corpus: the report stays in the
		// explicit no-data state instead of carrying NaN metrics.
		r.NoData = true
		return r
	}

	r.ActualHours = float64(totalMinutes) / 60

	r.MonthsAnalyzed = timeutil.MonthsBetween(budget.Start, now)
	if r.MonthsAnalyzed < 1 {
		r.MonthsAnalyzed = 1
	}

	r.ExpectedHours = budget.MonthlyHours * float64(r.MonthsAnalyzed)
	r.UtilizationPct = r.ActualHours / r.ExpectedHours * 100
	r.RemainingHours = r.ExpectedHours - r.ActualHours
	r.AverageMonthlyHours = r.ActualHours / float64(r.MonthsAnalyzed)

	for _, m := range members {
		r.Members = append(r.Members, *m)
	}
	sort.Slice(r.Members, func(i, j int) bool {
		if r.Members[i].Total.Hours != r.Members[j].Total.Hours {
			return r.Members[i].Total.Hours > r.Members[j].Total.Hours
		}
		return r.Members[i].Name < r.Members[j].Name
	})

	for _, mo := range months {
		r.Months = append(r.Months, *mo)
	}
	sort.Slice(r.Months, func(i, j int) bool {
		return r.Months[i].Month < r.Months[j].Month
	})

	r.Recommendation = recommend(r.UtilizationPct, cfg)

	return r
}

// recommend selects the recommendation text for a utilization percentage
// from the configured thresholds.
func recommend(utilizationPct float64, cfg config.Capacity) string {
	switch {
	case utilizationPct < cfg.ScaleBelowPct:
		return cfg.ScaleText
	case utilizationPct < cfg.OptimizeBelowPct:
		return cfg.OptimizeText
	default:
		return cfg.ExpandText
	}
}
