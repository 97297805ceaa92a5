package find

import "testing"

type row struct {
	planet int
	region int
	owner  int
}

func TestFirstReturnsEarliestMatch(t *testing.T) {
	rows := []row{{1, 0, 2}, {1, 1, 3}, {1, 1, 4}}

	got, ok := First(rows, func(r row) bool { return r.planet == 1 && r.region == 1 })
	if !ok {
		t.Fatalf("expected a match")
	}
	if got.owner != 3 {
		t.Fatalf("expected owner 3, got %d", got.owner)
	}
}

func TestFirstNoMatch(t *testing.T) {
	got, ok := First([]row{{1, 0, 2}}, func(r row) bool { return r.planet == 9 })
	if ok {
		t.Fatalf("expected no match, got %+v", got)
	}
	if got != (row{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestFirstByAndFirstOr(t *testing.T) {
	rows := []row{{4, 0, 1}, {5, 0, 2}}

	got, ok := FirstBy(rows, func(r row) int { return r.planet }, 5)
	if !ok || got.owner != 2 {
		t.Fatalf("expected planet 5 owner 2, got %+v (ok=%v)", got, ok)
	}

	fallback := row{planet: 7}
	if got := FirstOr(rows, func(r row) bool { return r.planet == 7 }, fallback); got != fallback {
		t.Fatalf("expected fallback, got %+v", got)
	}
}

func TestIndexByKeepsFirstDuplicate(t *testing.T) {
	rows := []row{{1, 1, 3}, {1, 1, 4}, {2, 0, 1}}

	index := IndexBy(rows, func(r row) [2]int { return [2]int{r.planet, r.region} })
	if len(index) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(index))
	}
	if index[[2]int{1, 1}].owner != 3 {
		t.Fatalf("expected first duplicate to win, got %+v", index[[2]int{1, 1}])
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	rows := []row{{1, 0, 0}, {2, 0, 0}, {1, 1, 0}}
	got := Filter(rows, func(r row) bool { return r.planet == 1 })
	if len(got) != 2 || got[0].region != 0 || got[1].region != 1 {
		t.Fatalf("unexpected filter result %+v", got)
	}
}
