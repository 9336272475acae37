package grader

import "testing"

func TestToHiragana(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"taberu", "たべる", true},
		{"tabemasu", "たべます", true},
		{"shinbun", "しんぶん", true},
		{"kippu", "きっぷ", true},
		{"kyou", "きょう", true},
		{"jugyou", "じゅぎょう", true},
		{"gakkou", "がっこう", true},
		{"n", "ん", true},
		{"nn", "ん", true},
		{"shinbunn", "しんぶん", true},
		{"しんぶんn", "しんぶん", true},
		{"onna", "おんな", true},
		{"kon'ya", "こんや", true},
		{"ra-men", "らーめん", true},
		{"たべる", "たべる", true},
		{"タベル", "たべる", true},
		{"食べる", "食べる", true},
		{"tabexq", "たべxq", false},
		{"", "", true},
	}

	for _, tc := range tests {
		got, ok := ToHiragana(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ToHiragana(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestConvertLive(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"t", "t"},
		{"ta", "た"},
		{"tab", "たb"},
		{"tabe", "たべ"},
		{"taber", "たべr"},
		{"taberu", "たべる"},
		{"tan", "たn"},
		{"tanb", "たんb"},
		{"tanbo", "たんぼ"},
		{"kipp", "きっp"},
		{"kippu", "きっぷ"},
		{"ky", "ky"},
		{"kyo", "きょ"},
		{"たべr", "たべr"},
		{"shinbun", "しんぶn"},
		{"shinbunn", "しんぶんn"},
	}

	for _, tc := range tests {
		if got := ConvertLive(tc.input); got != tc.want {
			t.Errorf("ConvertLive(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFoldKana(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"カタカナ", "かたかな"},
		{"ひらがな", "ひらがな"},
		{"ラーメン", "らーめん"},
		{"混ザッタら", "混ざったら"},
	}

	for _, tc := range tests {
		if got := FoldKana(tc.input); got != tc.want {
			t.Errorf("FoldKana(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestIsKana(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"たべる", true},
		{"タベル", true},
		{"らーめん", true},
		{"食べる", false},
		{"taberu", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsKana(tc.input); got != tc.want {
			t.Errorf("IsKana(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
