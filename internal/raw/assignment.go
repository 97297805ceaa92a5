package raw

import "time"

// Assignment is a major or personal order.
type Assignment struct {
	RetrievedAt time.Time `json:"retrieved_at,omitzero"`
	ID32        int64     `json:"id32"`
	Progress    []int64   `json:"progress"`
	ExpiresIn   int64     `json:"expiresIn"`
	Setting     *Setting  `json:"setting"`
	Extra       Extra     `json:"-"`
}

func (a *Assignment) UnmarshalJSON(data []byte) error {
	type alias Assignment
	var v alias
	extra, err := decodeWithExtra(data, &v)
	if err != nil {
		return err
	}
	*a = Assignment(v)
	a.Extra = extra
	return nil
}

func (a Assignment) MarshalJSON() ([]byte, error) {
	type alias Assignment
	return encodeWithExtra(alias(a), a.Extra)
}

type Setting struct {
	RetrievedAt     time.Time `json:"retrieved_at,omitzero"`
	Type            int       `json:"type"`
	OverrideTitle   string    `json:"overrideTitle"`
	OverrideBrief   string    `json:"overrideBrief"`
	TaskDescription string    `json:"taskDescription"`
	Tasks           []Task    `json:"tasks"`
	Reward          *Reward   `json:"reward"`
	Rewards         []Reward  `json:"rewards"`
	Flags           int       `json:"flags"`
	Extra           Extra     `json:"-"`
}

func (s *Setting) UnmarshalJSON(data []byte) error {
	type alias Setting
	var v alias
	extra, err := decodeWithExtra(data, &v)
	if err != nil {
		return err
	}
	*s = Setting(v)
	s.Extra = extra
	return nil
}

func (s Setting) MarshalJSON() ([]byte, error) {
	type alias Setting
	return encodeWithExtra(alias(s), s.Extra)
}

// Task is one requirement of an assignment. Values and ValueTypes are
// parallel arrays.
type Task struct {
	RetrievedAt time.Time `json:"retrieved_at,omitzero"`
	Type        int       `json:"type"`
	Values      []int64   `json:"values"`
	ValueTypes  []int     `json:"valueTypes"`
	Extra       Extra     `json:"-"`
}

func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	var v alias
	extra, err := decodeWithExtra(data, &v)
	if err != nil {
		return err
	}
	*t = Task(v)
	t.Extra = extra
	return nil
}

func (t Task) MarshalJSON() ([]byte, error) {
	type alias Task
	return encodeWithExtra(alias(t), t.Extra)
}

type Reward struct {
	RetrievedAt time.Time `json:"retrieved_at,omitzero"`
	Type        int       `json:"type"`
	ID32        int64     `json:"id32"`
	Amount      int64     `json:"amount"`
	Extra       Extra     `json:"-"`
}

func (r *Reward) UnmarshalJSON(data []byte) error {
	type alias Reward
	var v alias
	extra, err := decodeWithExtra(data, &v)
	if err != nil {
		return err
	}
	*r = Reward(v)
	r.Extra = extra
	return nil
}

func (r Reward) MarshalJSON() ([]byte, error) {
	type alias Reward
	return encodeWithExtra(alias(r), r.Extra)
}

// NewsFeedItem is a dispatch. Published is a wartime offset in seconds.
type NewsFeedItem struct {
	RetrievedAt time.Time `json:"retrieved_at,omitzero"`
	ID          int64     `json:"id"`
	Published   int64     `json:"published"`
	Type        int       `json:"type"`
	TagIDs      []any     `json:"tagIds"`
	Message     string    `json:"message"`
	Extra       Extra     `json:"-"`
}

func (n *NewsFeedItem) UnmarshalJSON(data []byte) error {
	type alias NewsFeedItem
	var v alias
	extra, err := decodeWithExtra(data, &v)
	if err != nil {
		return err
	}
	*n = NewsFeedItem(v)
	n.Extra = extra
	return nil
}

func (n NewsFeedItem) MarshalJSON() ([]byte, error) {
	type alias NewsFeedItem
	return encodeWithExtra(alias(n), n.Extra)
}
