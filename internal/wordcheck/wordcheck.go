// internal/wordcheck/wordcheck.go
//
// Format validation for quiz words.
// A well-formed word is exactly three characters, each drawn from the Arabic
// letter block (U+0621–U+064A) or the Arabic-Indic digits (U+0660–U+0669).
//
// Notes:
//   - The predicate is advisory: the check flow may run with format
//     enforcement disabled, while teacher additions always enforce it.
//     Callers decide; this package only answers yes/no.
//   - Counting is by rune, not byte (Arabic letters are multi-byte in UTF-8).

package wordcheck

// WordLength is the required number of characters per word.
const WordLength = 3

// IsValidFormat reports whether word is exactly WordLength characters,
// all within the designated Arabic ranges.
func IsValidFormat(word string) bool {
	runes := []rune(word)
	if len(runes) != WordLength {
		return false
	}
	for _, r := range runes {
		if !isArabicChar(r) {
			return false
		}
	}
	return true
}

// isArabicChar reports whether r is an Arabic letter or Arabic-Indic digit.
func isArabicChar(r rune) bool {
	return (r >= 0x0621 && r <= 0x064A) || (r >= 0x0660 && r <= 0x0669)
}
