package faction

import "fmt"

const (
	Anything   = 0
	Humans     = 1
	Terminids  = 2
	Automaton  = 3
	Illuminate = 4
)

// Unknown is the name used for ids missing from the table.
const Unknown = "???"

var names = map[int]string{
	Anything:   "Anything",
	Humans:     "Humans",
	Terminids:  "Terminids",
	Automaton:  "Automaton",
	Illuminate: "Illuminate",
	5:          "ERR",
	15:         "ERR",
}

// Name maps an upstream race/owner id to its faction name.
func Name(id int) string {
	if name, ok := names[id]; ok {
		return name
	}
	return Unknown
}

// NamePtr is Name for optional ids; nil yields the empty string.
func NamePtr(id *int) string {
	if id == nil {
		return ""
	}
	return Name(*id)
}

// Playable lists the four factions fighting the galactic war.
func Playable() []string {
	return []string{names[Humans], names[Terminids], names[Automaton], names[Illuminate]}
}

var regionSizes = map[int]string{
	0: "Settlement",
	1: "Town",
	2: "City",
	3: "MegaCity",
}

// RegionSize names a region size class.
func RegionSize(size int) string {
	if name, ok := regionSizes[size]; ok {
		return name
	}
	return fmt.Sprintf("Size%d", size)
}
