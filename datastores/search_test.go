package datastores

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	john := &Contact{First: "John", Last: "Doe"}
	tests := []struct {
		name    string
		contact *Contact
		query   string
		want    bool
	}{
		{"empty query", john, "", true},
		{"blank query", john, "   ", true},
		{"first prefix", john, "jo", true},
		{"last name", john, "DOE", true},
		{"full name", john, "john d", true},
		{"no match", john, "smith", false},
		{"short typo not tolerated", john, "jon", false},
		{"one typo in four runes", &Contact{First: "Michael"}, "micheal", false},
		{"one edit in four runes", &Contact{First: "Michael"}, "michal", true},
		{"nameless contact", &Contact{}, "a", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.contact, tt.query))
		})
	}
}
