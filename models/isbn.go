package models

// ValidISBN reports whether s looks like an ISBN-10 or ISBN-13: ignoring
// separators, it must contain exactly 10 or exactly 13 digits. No checksum.
// This is the single validity predicate; the API boundary and any client-side
// check share it, with the server copy authoritative.
func ValidISBN(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits == 10 || digits == 13
}
