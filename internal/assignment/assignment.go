package assignment

import (
	"fmt"
	"slices"
	"time"

	"hd2api/internal/delta"
	"hd2api/internal/raw"
)

// Assignment is a major order in display form.
type Assignment struct {
	delta.Stamp
	ID          int64     `json:"id"`
	Progress    []int64   `json:"progress"`
	Expiration  time.Time `json:"expiration"`
	Title       string    `json:"title"`
	Briefing    string    `json:"briefing"`
	Description string    `json:"description"`
	Tasks       []Task    `json:"tasks"`
	Reward      *Reward   `json:"reward"`
	Rewards     []Reward  `json:"rewards"`
	Type        int       `json:"type"`
	Flags       int       `json:"flags"`
}

type Reward struct {
	Type   int   `json:"type"`
	ID32   int64 `json:"id32"`
	Amount int64 `json:"amount"`
}

// Task is one requirement. Data collates Values by the name of their
// value type.
type Task struct {
	Type       int                `json:"type"`
	Kind       string             `json:"kind"`
	Values     []int64            `json:"values"`
	ValueTypes []int              `json:"valueTypes"`
	Data       map[string][]int64 `json:"data"`
}

var taskKinds = map[int]string{
	2:  "Gather",
	3:  "Eradicate",
	4:  "Objectives",
	7:  "Extract",
	9:  "Operations",
	11: "Liberation",
	12: "Defense",
	13: "Control",
	15: "Conquest",
}

var valueTypes = map[int]string{
	1:  "faction",
	2:  "hasCount",
	3:  "goal",
	4:  "enemyID",
	5:  "itemID",
	6:  "hasItem",
	7:  "objective",
	8:  "hasDifficulty",
	9:  "difficulty",
	10: "unknown7",
	11: "hasPlanet",
	12: "planet",
}

func buildTask(t raw.Task) Task {
	kind, ok := taskKinds[t.Type]
	if !ok {
		kind = fmt.Sprintf("Unknown Task Type %d", t.Type)
	}
	data := make(map[string][]int64)
	for i := 0; i < min(len(t.Values), len(t.ValueTypes)); i++ {
		name, ok := valueTypes[t.ValueTypes[i]]
		if !ok {
			name = fmt.Sprintf("valueType%d", t.ValueTypes[i])
		}
		data[name] = append(data[name], t.Values[i])
	}
	return Task{
		Type:       t.Type,
		Kind:       kind,
		Values:     slices.Clone(t.Values),
		ValueTypes: slices.Clone(t.ValueTypes),
		Data:       data,
	}
}

func buildReward(r raw.Reward) Reward {
	return Reward{Type: r.Type, ID32: r.ID32, Amount: r.Amount}
}

// Build converts a raw assignment. Expiration is the retrieval time plus
// expiresIn seconds.
func Build(a raw.Assignment) Assignment {
	out := Assignment{
		Stamp:      delta.At(a.RetrievedAt),
		ID:         a.ID32,
		Progress:   slices.Clone(a.Progress),
		Expiration: a.RetrievedAt.Add(time.Duration(a.ExpiresIn) * time.Second),
		Tasks:      []Task{},
		Rewards:    []Reward{},
	}
	if s := a.Setting; s != nil {
		out.Title = s.OverrideTitle
		out.Briefing = s.OverrideBrief
		out.Description = s.TaskDescription
		out.Type = s.Type
		out.Flags = s.Flags
		for _, t := range s.Tasks {
			out.Tasks = append(out.Tasks, buildTask(t))
		}
		if s.Reward != nil {
			r := buildReward(*s.Reward)
			out.Reward = &r
		}
		for _, r := range s.Rewards {
			out.Rewards = append(out.Rewards, buildReward(r))
		}
	}
	return out
}

// BuildAll converts the snapshot's major orders.
func BuildAll(snap *raw.Snapshot) []Assignment {
	if snap == nil {
		return []Assignment{}
	}
	out := make([]Assignment, 0, len(snap.MajorOrders))
	for _, a := range snap.MajorOrders {
		out = append(out, Build(a))
	}
	return out
}

// Sub diffs progress element-wise over the shorter of the two lists.
func (a Assignment) Sub(other Assignment) Assignment {
	out := a
	n := min(len(a.Progress), len(other.Progress))
	out.Progress = make([]int64, n)
	for i := range n {
		out.Progress[i] = a.Progress[i] - other.Progress[i]
	}
	out.Stamp = delta.Between(a.Stamp, other.Stamp)
	return out
}

// TaskPlanets lists every planet index referenced by the tasks, in task
// order.
func (a Assignment) TaskPlanets() []int {
	var planets []int
	for _, t := range a.Tasks {
		for _, p := range t.Data["planet"] {
			planets = append(planets, int(p))
		}
	}
	return planets
}
