package ingest

import (
	"testing"
)

func TestMapPartOfSpeech(t *testing.T) {
	tests := []struct {
		name     string
		features []string
		want     string
	}{
		{"godan verb", []string{"動詞", "自立", "*", "*", "五段・カ行イ音便", "基本形", "行く", "イク", "イク"}, "godan verb"},
		{"ichidan verb", []string{"動詞", "自立", "*", "*", "一段", "基本形", "食べる", "タベル", "タベル"}, "ichidan verb"},
		{"suru verb", []string{"動詞", "自立", "*", "*", "サ変・スル", "基本形", "する", "スル", "スル"}, "する verb"},
		{"i adjective", []string{"形容詞", "自立", "*", "*", "形容詞・アウオ段", "基本形", "高い", "タカイ", "タカイ"}, "い adjective"},
		{"na adjective stem", []string{"名詞", "形容動詞語幹", "*", "*", "*", "*", "静か", "シズカ", "シズカ"}, "な adjective"},
		{"common noun", []string{"名詞", "一般", "*", "*", "*", "*", "新聞", "シンブン", "シンブン"}, "noun"},
		{"suru-attachable noun", []string{"名詞", "サ変接続", "*", "*", "*", "*", "勉強", "ベンキョウ", "ベンキョー"}, "noun"},
		{"particle", []string{"助詞", "格助詞", "一般", "*", "*", "*", "を", "ヲ", "ヲ"}, ""},
		{"number", []string{"名詞", "数", "*", "*", "*", "*", "一", "イチ", "イチ"}, ""},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapPartOfSpeech(tt.features); got != tt.want {
				t.Errorf("mapPartOfSpeech(%v) = %q, want %q", tt.features, got, tt.want)
			}
		})
	}
}

func TestKeepCandidate(t *testing.T) {
	tests := []struct {
		base string
		want bool
	}{
		{"食べる", true},
		{"新聞", true},
		{"ラーメン", true},
		{"を", false},
		{"ABC", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := keepCandidate(Token{BaseForm: tt.base}); got != tt.want {
			t.Errorf("keepCandidate(%q) = %v, want %v", tt.base, got, tt.want)
		}
	}
}

func TestExtractCandidatesDedupes(t *testing.T) {
	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("new analyzer: %v", err)
	}

	candidates := analyzer.ExtractCandidates("新聞を読む。新聞を買う。", 1)

	var shinbun *Candidate
	for i := range candidates {
		if candidates[i].Subject.Characters == "新聞" {
			shinbun = &candidates[i]
		}
	}
	if shinbun == nil {
		t.Fatal("新聞 not extracted")
	}
	if shinbun.Count != 2 {
		t.Errorf("新聞 count = %d, want 2", shinbun.Count)
	}
	if shinbun.Subject.PrimaryReading() != "しんぶん" {
		t.Errorf("新聞 reading = %q, want しんぶん", shinbun.Subject.PrimaryReading())
	}
}

func TestStripRuby(t *testing.T) {
	in := []byte(`<p><ruby>漢字<rp>(</rp><rt>かんじ</rt><rp>)</rp></ruby>を学ぶ</p>`)
	got := string(stripRuby(in))
	want := `<p><ruby>漢字</ruby>を学ぶ</p>`
	if got != want {
		t.Errorf("stripRuby = %q, want %q", got, want)
	}
}
