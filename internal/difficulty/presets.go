package difficulty

// CustomID selects a board built from user-supplied dimensions.
const CustomID = "custom"

// Def defines a difficulty preset loaded from JSON.
type Def struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "easy")
	Name   string `json:"name"`   // Display name (e.g., "Easy")
	Key    string `json:"key"`    // Key that switches to this preset in the terminal UI
	Width  int    `json:"width"`  // Columns
	Height int    `json:"height"` // Rows
	Mines  int    `json:"mines"`  // Default mine count
}

// KeyRune returns the switch key as a rune.
func (d *Def) KeyRune() rune {
	if len(d.Key) == 0 {
		return 0
	}
	return rune(d.Key[0])
}

// File represents the structure of difficulties.json.
type File struct {
	Difficulties []Def    `json:"difficulties"`
	HintColors   []string `json:"hintColors"`
}

// Custom carries user-supplied overrides. Zero fields fall back to the preset.
type Custom struct {
	Width  int
	Height int
	Mines  int
}

// LoadFile loads the embedded difficulties.json.
func LoadFile() (File, error) {
	return Load[File]("difficulties.json")
}
