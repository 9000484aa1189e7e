package config

import "unicode"

// CJK language codes (first 3 chars of the code).
var cjkCodes = map[string]bool{
	"zho": true,
	"jpn": true,
	"kor": true,
	"chi": true,
	"zh":  true,
	"ja":  true,
	"ko":  true,
}

// IsCJK returns true if the language code represents Chinese, Japanese, or Korean.
func IsCJK(langCode string) bool {
	if len(langCode) > 3 {
		langCode = langCode[:3]
	}
	if cjkCodes[langCode] {
		return true
	}
	// "zh-CN", "ja-JP" and friends.
	if len(langCode) == 3 && langCode[2] == '-' {
		return cjkCodes[langCode[:2]]
	}
	return false
}

// IsCJKRune reports whether r is written without spaces between words
// (Han ideographs, kana, Hangul, CJK punctuation and full-width forms).
func IsCJKRune(r rune) bool {
	switch {
	case unicode.Is(unicode.Han, r),
		unicode.Is(unicode.Hiragana, r),
		unicode.Is(unicode.Katakana, r),
		unicode.Is(unicode.Hangul, r):
		return true
	case r >= 0x3000 && r <= 0x303F: // CJK symbols and punctuation
		return true
	case r >= 0xFF00 && r <= 0xFFEF: // half-width and full-width forms
		return true
	}
	return false
}
