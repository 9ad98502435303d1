// Package physician holds the clinic's fixed physician roster. The roster is
// configured in source and is not user-editable; appointments reference a
// physician by name.
package physician

// Physician is a roster entry.
type Physician struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

var roster = []Physician{
	{Name: "Raimundo Neto", Image: "/assets/images/dr-hknight.png"},
	{Name: "Gatinho Bunitinho", Image: "/assets/images/dr-gatinho.png"},
	{Name: "Pombo da Silva", Image: "/assets/images/dr-pombo.png"},
	{Name: "Pochita Ferreira", Image: "/assets/images/dr-pochita.png"},
	{Name: "Miliciana Cyrus", Image: "/assets/images/dr-cyrus.png"},
	{Name: "Mae Pereira", Image: "/assets/images/dr-mae.png"},
	{Name: "Gatinho Laranjo", Image: "/assets/images/dr-laranjo.png"},
}

// All returns a copy of the roster.
func All() []Physician {
	out := make([]Physician, len(roster))
	copy(out, roster)
	return out
}

// Find returns the roster entry with the given name.
func Find(name string) (Physician, bool) {
	for _, p := range roster {
		if p.Name == name {
			return p, true
		}
	}
	return Physician{}, false
}

// IsKnown reports whether name is on the roster.
func IsKnown(name string) bool {
	_, ok := Find(name)
	return ok
}
