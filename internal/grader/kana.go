package grader

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// romajiTable maps romaji syllables to hiragana. Longest match wins, so
// digraphs like "kya" must be present alongside "ka".
var romajiTable = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",
	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"sa": "さ", "shi": "し", "si": "し", "su": "す", "se": "せ", "so": "そ",
	"za": "ざ", "ji": "じ", "zi": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"ta": "た", "chi": "ち", "ti": "ち", "tsu": "つ", "tu": "つ", "te": "て", "to": "と",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"ha": "は", "hi": "ひ", "fu": "ふ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"ya": "や", "yu": "ゆ", "yo": "よ",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"wa": "わ", "wo": "を",
	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ",
	"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
	"ja": "じゃ", "ju": "じゅ", "jo": "じょ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ",
	"tya": "ちゃ", "tyu": "ちゅ", "tyo": "ちょ",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
	"fa": "ふぁ", "fi": "ふぃ", "fe": "ふぇ", "fo": "ふぉ",
	"va": "ゔぁ", "vi": "ゔぃ", "vu": "ゔ", "ve": "ゔぇ", "vo": "ゔぉ",
	"-": "ー",
}

func isConsonant(b byte) bool {
	switch b {
	case 'a', 'i', 'u', 'e', 'o', 'n', '\'', '-':
		return false
	}
	return b >= 'a' && b <= 'z'
}

// ToHiragana converts a romaji string to hiragana, passing existing kana
// through unchanged. It reports false when the input contains sequences
// that do not form kana, in which case the partial conversion is still
// returned for display.
func ToHiragana(input string) (string, bool) {
	var out strings.Builder
	ok := true

	s := strings.ToLower(strings.TrimSpace(input))
	i := 0
	for i < len(s) {
		// Pass through any non-ASCII rune (already kana or kanji).
		if s[i] >= 0x80 {
			r, size := utf8.DecodeRuneInString(s[i:])
			out.WriteString(foldKanaRune(r))
			i += size
			continue
		}

		// Doubled consonant → っ.
		if i+1 < len(s) && s[i] == s[i+1] && isConsonant(s[i]) {
			out.WriteString("っ")
			i++
			continue
		}

		// Syllabic n: "n" before a consonant, apostrophe, or end of input.
		if s[i] == 'n' {
			if i+1 >= len(s) || s[i+1] == '\'' || (s[i+1] != 'a' && s[i+1] != 'i' && s[i+1] != 'u' && s[i+1] != 'e' && s[i+1] != 'o' && s[i+1] != 'y') {
				// IME convention spells a final ん as "nn"; collapse the
				// pair at end of input so "shinbunn" grades as しんぶん.
				if i+2 == len(s) && s[i+1] == 'n' {
					out.WriteString("ん")
					i += 2
					continue
				}
				// Likewise a lone trailing "n" right after a committed ん
				// is the second half of that convention, not a new mora.
				if i+1 == len(s) && strings.HasSuffix(out.String(), "ん") {
					i++
					continue
				}
				out.WriteString("ん")
				i++
				if i < len(s) && s[i] == '\'' {
					i++
				}
				continue
			}
		}

		// Longest-match syllable lookup (3, then 2, then 1 chars).
		matched := false
		for l := 3; l >= 1; l-- {
			if i+l > len(s) {
				continue
			}
			if kana, found := romajiTable[s[i:i+l]]; found {
				out.WriteString(kana)
				i += l
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if s[i] == ' ' {
			i++
			continue
		}

		// Unconvertible byte. Keep it so the learner sees what failed.
		out.WriteByte(s[i])
		ok = false
		i++
	}

	return out.String(), ok
}

// foldKanaRune converts a katakana rune to hiragana; everything else
// passes through. The prolonged sound mark is kept as-is.
func foldKanaRune(r rune) string {
	if r >= 0x30A1 && r <= 0x30F6 {
		return string(r - 0x60)
	}
	return string(r)
}

// FoldKana converts every katakana rune in s to hiragana.
func FoldKana(s string) string {
	var out strings.Builder
	for _, r := range s {
		out.WriteString(foldKanaRune(r))
	}
	return out.String()
}

// ConvertLive converts romaji to hiragana as the learner types. Unlike
// ToHiragana it never marks a trailing consonant run as a failure: "taber"
// renders "たべr" because the next keystroke may complete the syllable, and
// a lone trailing "n" stays "n" because "na" is still possible.
func ConvertLive(input string) string {
	s := strings.ToLower(input)

	// Find the shortest ASCII tail that could still grow into a syllable
	// and leave it unconverted.
	tail := len(s)
	for tail > 0 {
		b := s[tail-1]
		if b < 'a' || b > 'z' {
			break
		}
		if !isConsonant(b) && b != 'n' {
			break
		}
		// An "n" with something already typed after it commits to ん.
		if b == 'n' && tail != len(s) {
			break
		}
		tail--
		if tail > 0 && s[tail-1] >= 0x80 {
			break
		}
	}
	head, _ := ToHiragana(s[:tail])
	rest := s[tail:]

	// A doubled consonant at the head of the pending tail is a committed っ.
	for len(rest) >= 2 && rest[0] == rest[1] && isConsonant(rest[0]) {
		head += "っ"
		rest = rest[1:]
	}
	return head + rest
}

// IsKana reports whether s consists entirely of kana (and the prolonged
// sound mark), ignoring spaces.
func IsKana(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r == 'ー' {
			continue
		}
		if !unicode.In(r, unicode.Hiragana, unicode.Katakana) {
			return false
		}
	}
	return s != ""
}
