package jobs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remindengine/core/internal/models"
)

func TestComposeDigest_NoTasks(t *testing.T) {
	title, body := composeDigest(0, nil, nil)
	assert.Equal(t, "Daily Digest: No tasks due today", title)
	assert.Contains(t, body, "no tasks due today")
}

func TestComposeDigest_ListsEachTaskWithPriorityDot(t *testing.T) {
	nonRecurring := []models.Todo{
		{Title: "Pay rent", Priority: models.PriorityHigh},
		{Title: "Water plants", Priority: models.PriorityLow},
	}

	title, body := composeDigest(2, nonRecurring, nil)

	assert.Equal(t, "Daily Digest: 2 task(s) due today", title)
	assert.Contains(t, body, priorityDot[models.PriorityHigh]+" Pay rent")
	assert.Contains(t, body, priorityDot[models.PriorityLow]+" Water plants")
	assert.NotContains(t, body, "...and")
}

func TestComposeDigest_AppendsRecurringTitles(t *testing.T) {
	title, body := composeDigest(1, nil, []string{"Take out trash"})

	assert.Equal(t, "Daily Digest: 1 task(s) due today", title)
	assert.Contains(t, body, "Take out trash (recurring)")
}

func TestComposeDigest_TruncatesBeyondCap(t *testing.T) {
	nonRecurring := make([]models.Todo, digestListCap+3)
	for i := range nonRecurring {
		nonRecurring[i] = models.Todo{Title: "task", Priority: models.PriorityNone}
	}

	_, body := composeDigest(len(nonRecurring), nonRecurring, nil)

	assert.Equal(t, digestListCap, strings.Count(body, "task\n"))
	assert.Contains(t, body, "...and 3 more")
}
