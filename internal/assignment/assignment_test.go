package assignment

import (
	"reflect"
	"testing"
	"time"

	"hd2api/internal/raw"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func order(at time.Time, progress ...int64) raw.Assignment {
	return raw.Assignment{
		RetrievedAt: at,
		ID32:        1296000,
		Progress:    progress,
		ExpiresIn:   3600,
		Setting: &raw.Setting{
			OverrideTitle: "MAJOR ORDER",
			OverrideBrief: "Hold the line.",
			Tasks: []raw.Task{
				{Type: 11, Values: []int64{1, 1, 64}, ValueTypes: []int{3, 11, 12}},
				{Type: 99, Values: []int64{2, 126, 5}, ValueTypes: []int{12, 12, 42}},
			},
			Reward:  &raw.Reward{Type: 1, ID32: 897894480, Amount: 45},
			Rewards: []raw.Reward{{Type: 1, Amount: 45}},
		},
	}
}

func TestBuild(t *testing.T) {
	a := Build(order(base, 1, 0))
	if !a.Expiration.Equal(base.Add(time.Hour)) {
		t.Fatalf("expected expiration an hour out, got %s", a.Expiration)
	}
	if a.Title != "MAJOR ORDER" || a.Reward == nil || a.Reward.Amount != 45 || len(a.Rewards) != 1 {
		t.Fatalf("unexpected assignment: %+v", a)
	}
	if a.Tasks[0].Kind != "Liberation" || a.Tasks[1].Kind != "Unknown Task Type 99" {
		t.Fatalf("unexpected task kinds: %s, %s", a.Tasks[0].Kind, a.Tasks[1].Kind)
	}
	if got := a.Tasks[0].Data["goal"]; !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("expected goal [1], got %v", got)
	}
	if got := a.TaskPlanets(); !reflect.DeepEqual(got, []int{64, 2, 126}) {
		t.Fatalf("expected planets [64 2 126], got %v", got)
	}
}

func TestBuildWithoutSetting(t *testing.T) {
	a := Build(raw.Assignment{RetrievedAt: base, ID32: 5})
	if a.ID != 5 || len(a.Tasks) != 0 || a.Reward != nil {
		t.Fatalf("unexpected bare assignment: %+v", a)
	}
	if got := BuildAll(&raw.Snapshot{MajorOrders: []raw.Assignment{order(base, 0)}}); len(got) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(got))
	}
}

func TestSubProgress(t *testing.T) {
	earlier := Build(order(base, 1, 10, 7))
	later := Build(order(base.Add(30*time.Minute), 1, 25))

	diff := later.Sub(earlier)
	if !reflect.DeepEqual(diff.Progress, []int64{0, 15}) {
		t.Fatalf("expected [0 15], got %v", diff.Progress)
	}
	if diff.Elapsed() != 30*time.Minute {
		t.Fatalf("expected 30m, got %s", diff.Elapsed())
	}
}
