package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsPending(t *testing.T) {
	assert.True(t, StatusPending.IsPending())
	assert.True(t, Status("").IsPending())
	assert.False(t, StatusApproved.IsPending())
	assert.False(t, StatusRejected.IsPending())
	assert.False(t, StatusCancelled.IsPending())
}

func TestNoOfDaysInclusive(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2024-03-01", "2024-03-01", 1},
		{"three days", "2024-03-01", "2024-03-03", 3},
		{"across month boundary", "2024-02-28", "2024-03-02", 4},
		{"bad start date", "soon", "2024-03-03", 0},
		{"bad end date", "2024-03-01", "", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lr := LeaveRequest{StartDate: c.start, EndDate: c.end}
			assert.Equal(t, c.want, lr.NoOfDays())
		})
	}
}

func TestTransitionSources(t *testing.T) {
	assert.Contains(t, ApprovableFrom(), StatusPending)
	assert.Contains(t, ApprovableFrom(), Status(""), "empty status rows are still decidable")
	assert.NotContains(t, ApprovableFrom(), StatusApproved)

	assert.ElementsMatch(t, []Status{StatusPending, "", StatusApproved}, CancellableFrom())
}

func TestFileLeaveRequestValidate(t *testing.T) {
	valid := FileLeaveRequest{
		LeaveType:   "Casual Leave",
		Duration:    DurationFullDay,
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-03",
		ManagerName: "Priya",
		Reason:      "travel",
	}
	assert.NoError(t, valid.Validate())

	reversed := valid
	reversed.StartDate = "2024-03-05"
	reversed.EndDate = "2024-03-03"
	assert.Error(t, reversed.Validate())

	badDuration := valid
	badDuration.Duration = "Fortnight"
	assert.Error(t, badDuration.Validate())

	noReason := valid
	noReason.Reason = "   "
	assert.Error(t, noReason.Validate())
}
