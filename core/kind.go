package core

import "fmt"

// Kind tags an exhibit with its portfolio category
// Closed set, zero value is "no kind"
type Kind uint8

const (
	KindNone Kind = iota
	KindEducation
	KindExperience
	KindProjects
	KindSkills
	KindAbout
	KindContact
)

var kindNames = [...]string{
	KindNone:       "",
	KindEducation:  "education",
	KindExperience: "experience",
	KindProjects:   "projects",
	KindSkills:     "skills",
	KindAbout:      "about",
	KindContact:    "contact",
}

// Kinds lists every valid kind in declaration order
func Kinds() []Kind {
	return []Kind{KindEducation, KindExperience, KindProjects, KindSkills, KindAbout, KindContact}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the six exhibit categories
func (k Kind) Valid() bool {
	return k > KindNone && int(k) < len(kindNames)
}

// ParseKind maps a registry tag to a Kind
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if i > 0 && name == s {
			return Kind(i), nil
		}
	}
	return KindNone, fmt.Errorf("unknown exhibit type %q", s)
}

// MarshalText encodes the tag, KindNone encodes as empty
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts a tag or the empty string for KindNone
func (k *Kind) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*k = KindNone
		return nil
	}
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
