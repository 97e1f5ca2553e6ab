package participation

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Result is the outcome of evaluating a volunteer's rule set against a
// candidate date. Restrictions block assignment, warnings are advisory.
type Result struct {
	CanParticipate     bool     `json:"canParticipate"`
	Warnings           []string `json:"warnings,omitempty"`
	Restrictions       []string `json:"restrictions,omitempty"`
	ParticipationCount *int     `json:"participationCount,omitempty"`
	MaxAllowed         *int     `json:"maxAllowed,omitempty"`
}

func (r *Result) restrict(msg string) {
	r.CanParticipate = false
	r.Restrictions = append(r.Restrictions, msg)
}

func (r *Result) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Validate evaluates every rule against the same (selectedDate, history)
// pair and merges the outcomes. A failing rule clears CanParticipate but
// evaluation continues so all applicable messages are collected.
func Validate(rules []Rule, selectedDate time.Time, history []Record) Result {
	result := Result{CanParticipate: true}
	selected := dateOnly(selectedDate)

	for _, rule := range rules {
		switch rule.Type {
		case RuleMaxPerMonth:
			evalMaxPerMonth(rule, selected, history, &result)
		case RuleMaxPerWeek:
			evalMaxPerWeek(rule, selected, history, &result)
		case RuleSpecificWeeks:
			evalSpecificWeeks(rule, selected, &result)
		case RuleAlternatingWeeks:
			evalAlternatingWeeks(selected, history, &result)
		case RuleWeeklyAvailability:
			result.warn("El hermano envía su disponibilidad cada semana")
		}
	}

	return result
}

func evalMaxPerMonth(rule Rule, selected time.Time, history []Record, result *Result) {
	if rule.Value <= 0 {
		return
	}
	count := 0
	for _, rec := range history {
		d := dateOnly(rec.Date)
		if sameMonth(d, selected) && !d.After(selected) {
			count++
		}
	}
	result.ParticipationCount = &count
	limit := rule.Value
	result.MaxAllowed = &limit

	switch {
	case count >= limit:
		result.restrict(fmt.Sprintf("Ha alcanzado el límite mensual de %d participaciones", limit))
	case count == limit-1:
		result.warn(fmt.Sprintf("Le queda una sola participación disponible este mes (%d de %d)", count, limit))
	}
}

func evalMaxPerWeek(rule Rule, selected time.Time, history []Record, result *Result) {
	if rule.Value <= 0 {
		return
	}
	weekStart := WeekStart(selected)
	count := 0
	for _, rec := range history {
		d := dateOnly(rec.Date)
		if WeekStart(d).Equal(weekStart) && !d.After(selected) {
			count++
		}
	}
	result.ParticipationCount = &count
	limit := rule.Value
	result.MaxAllowed = &limit

	switch {
	case count >= limit:
		result.restrict(fmt.Sprintf("Ha alcanzado el límite semanal de %d participaciones", limit))
	case count == limit-1:
		result.warn(fmt.Sprintf("Le queda una sola participación disponible esta semana (%d de %d)", count, limit))
	}
}

func evalSpecificWeeks(rule Rule, selected time.Time, result *Result) {
	if len(rule.Weeks) == 0 {
		return
	}
	week := WeekOfMonth(selected)
	for _, allowed := range rule.Weeks {
		if week == allowed {
			result.warn(fmt.Sprintf("Participa en las semanas %s del mes", formatWeeks(rule.Weeks)))
			return
		}
	}
	result.restrict(fmt.Sprintf("Solo puede participar en las semanas %s del mes (fecha en semana %d)", formatWeeks(rule.Weeks), week))
}

func evalAlternatingWeeks(selected time.Time, history []Record, result *Result) {
	last, ok := latestRecord(history)
	if !ok {
		return
	}
	diff := weeksBetween(last.Date, selected)
	switch diff {
	case 0:
		result.restrict("Ya tiene una participación en esta semana (semanas alternas)")
	case 1:
		result.restrict("Debe dejar pasar una semana entre participaciones (semanas alternas)")
	default:
		result.warn(fmt.Sprintf("Semanas alternas: última participación hace %d semanas", diff))
	}
}

// latestRecord returns the most recent history entry by date.
func latestRecord(history []Record) (Record, bool) {
	if len(history) == 0 {
		return Record{}, false
	}
	sorted := make([]Record, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted[0], true
}

func formatWeeks(weeks []int) string {
	parts := make([]string, len(weeks))
	for i, w := range weeks {
		parts[i] = fmt.Sprintf("%d", w)
	}
	return strings.Join(parts, ", ")
}
