package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidISBN(t *testing.T) {
	cases := []struct {
		isbn string
		want bool
	}{
		{"978-0743273565", true}, // 13 digits with separators
		{"9780743273565", true},
		{"0743273565", true}, // 10 digits
		{"0-7432-7356-5", true},
		{"12345", false},
		{"abc-def-ghij", false},
		{"", false},
		{"978074327356", false},   // 12 digits
		{"97807432735650", false}, // 14 digits
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, ValidISBN(tc.isbn), "isbn %q", tc.isbn)
	}
}
