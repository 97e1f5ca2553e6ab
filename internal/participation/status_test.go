package participation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, "✅", StatusOK.Icon())
	assert.Equal(t, "⚠️", StatusWarning.Icon())
	assert.Equal(t, "🚫", StatusBlocked.Icon())
}

func TestStatusOf(t *testing.T) {
	selected := date(2025, time.June, 18)

	t.Run("no rules is ok", func(t *testing.T) {
		status := StatusOf(nil, selected, []Record{record(date(2025, time.June, 16))})
		assert.Equal(t, StatusOK, status)
	})

	t.Run("restriction is blocked", func(t *testing.T) {
		rules := []Rule{{Type: RuleMaxPerWeek, Value: 1}}
		history := []Record{record(date(2025, time.June, 16))}
		assert.Equal(t, StatusBlocked, StatusOf(rules, selected, history))
	})

	t.Run("warning only", func(t *testing.T) {
		rules := []Rule{{Type: RuleWeeklyAvailability}}
		assert.Equal(t, StatusWarning, StatusOf(rules, selected, nil))
	})

	t.Run("rules without findings is ok", func(t *testing.T) {
		rules := []Rule{{Type: RuleMaxPerMonth, Value: 3}}
		assert.Equal(t, StatusOK, StatusOf(rules, selected, nil))
	})
}

func TestStatusForResult(t *testing.T) {
	blocked := Result{CanParticipate: false, Restrictions: []string{"bloqueado"}}
	assert.Equal(t, StatusBlocked, StatusForResult(blocked))

	warned := Result{CanParticipate: true, Warnings: []string{"aviso"}}
	assert.Equal(t, StatusWarning, StatusForResult(warned))

	assert.Equal(t, StatusOK, StatusForResult(Result{CanParticipate: true}))
}
