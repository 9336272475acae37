package inflect

import "testing"

func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		pos  []string
		want Category
	}{
		{"godan", []string{"transitive verb", "godan verb"}, CategoryGodanVerb},
		{"ichidan", []string{"ichidan verb", "transitive verb"}, CategoryIchidanVerb},
		{"suru", []string{"noun", "する verb"}, CategorySuruVerb},
		{"i adjective", []string{"い adjective"}, CategoryIAdjective},
		{"na adjective", []string{"な adjective", "noun"}, CategoryNaAdjective},
		{"verb beats adjective", []string{"い adjective", "godan verb"}, CategoryGodanVerb},
		{"none", []string{"noun", "expression"}, CategoryNone},
		{"empty", nil, CategoryNone},
	}

	for _, tc := range tests {
		got := Classify(tc.pos)
		if got != tc.want {
			t.Errorf("%s: Classify(%v) = %v, want %v", tc.name, tc.pos, got, tc.want)
		}
	}
}

func TestConjugateGodan(t *testing.T) {
	tests := []struct {
		word string
		form Form
		want string
	}{
		{"書く", "negative", "書かない"},
		{"書く", "past", "書いた"},
		{"書く", "past negative", "書かなかった"},
		{"書く", "polite", "書きます"},
		{"書く", "て form", "書いて"},
		{"書く", "potential", "書ける"},
		{"書く", "passive", "書かれる"},
		{"書く", "causative", "書かせる"},
		{"書く", "volitional", "書こう"},
		{"書く", "conditional", "書けば"},
		{"泳ぐ", "past", "泳いだ"},
		{"泳ぐ", "て form", "泳いで"},
		{"買う", "negative", "買わない"},
		{"買う", "past", "買った"},
		{"待つ", "past", "待った"},
		{"死ぬ", "past", "死んだ"},
		{"読む", "て form", "読んで"},
		{"話す", "past", "話した"},
		{"取る", "past", "取った"},
		{"行く", "past", "行った"},
		{"行く", "て form", "行って"},
	}

	for _, tc := range tests {
		got := ConjugateVerb(tc.word, CategoryGodanVerb, tc.form)
		if got != tc.want {
			t.Errorf("ConjugateVerb(%q, godan, %q) = %q, want %q", tc.word, tc.form, got, tc.want)
		}
	}
}

func TestConjugateIchidan(t *testing.T) {
	tests := []struct {
		word string
		form Form
		want string
	}{
		{"食べる", "negative", "食べない"},
		{"食べる", "past", "食べた"},
		{"食べる", "polite", "食べます"},
		{"食べる", "て form", "食べて"},
		{"食べる", "potential", "食べられる"},
		{"食べる", "volitional", "食べよう"},
		{"食べる", "conditional", "食べれば"},
		{"見る", "causative", "見させる"},
	}

	for _, tc := range tests {
		got := ConjugateVerb(tc.word, CategoryIchidanVerb, tc.form)
		if got != tc.want {
			t.Errorf("ConjugateVerb(%q, ichidan, %q) = %q, want %q", tc.word, tc.form, got, tc.want)
		}
	}
}

func TestConjugateSuru(t *testing.T) {
	tests := []struct {
		word string
		form Form
		want string
	}{
		{"勉強する", "negative", "勉強しない"},
		{"勉強する", "past", "勉強した"},
		{"勉強する", "polite", "勉強します"},
		{"勉強する", "potential", "勉強できる"},
		{"する", "passive", "される"},
		{"する", "volitional", "しよう"},
	}

	for _, tc := range tests {
		got := ConjugateVerb(tc.word, CategorySuruVerb, tc.form)
		if got != tc.want {
			t.Errorf("ConjugateVerb(%q, suru, %q) = %q, want %q", tc.word, tc.form, got, tc.want)
		}
	}
}

func TestDeclineAdjective(t *testing.T) {
	tests := []struct {
		word     string
		category Category
		form     Form
		want     string
	}{
		{"高い", CategoryIAdjective, "negative", "高くない"},
		{"高い", CategoryIAdjective, "past", "高かった"},
		{"高い", CategoryIAdjective, "past negative", "高くなかった"},
		{"高い", CategoryIAdjective, "て form", "高くて"},
		{"高い", CategoryIAdjective, "adverbial", "高く"},
		{"高い", CategoryIAdjective, "conditional", "高ければ"},
		{"静か", CategoryNaAdjective, "negative", "静かじゃない"},
		{"静か", CategoryNaAdjective, "past", "静かだった"},
		{"静か", CategoryNaAdjective, "て form", "静かで"},
		{"静か", CategoryNaAdjective, "adverbial", "静かに"},
		{"静か", CategoryNaAdjective, "conditional", "静かなら"},
	}

	for _, tc := range tests {
		got := DeclineAdjective(tc.word, tc.category, tc.form)
		if got != tc.want {
			t.Errorf("DeclineAdjective(%q, %v, %q) = %q, want %q", tc.word, tc.category, tc.form, got, tc.want)
		}
	}
}

func TestConjugate_UnknownFormPassesThrough(t *testing.T) {
	if got := ConjugateVerb("書く", CategoryGodanVerb, "no-such-form"); got != "書く" {
		t.Errorf("unknown form: got %q, want pass-through", got)
	}
	if got := ConjugateVerb("走る", CategoryNone, "past"); got != "走る" {
		t.Errorf("non-verb category: got %q, want pass-through", got)
	}
}

func TestRandomDraws_YieldKnownForms(t *testing.T) {
	known := make(map[Form]bool)
	for _, f := range VerbForms() {
		known[f] = true
	}
	for range 50 {
		if f := RandomVerbConjugation(); !known[f] {
			t.Fatalf("RandomVerbConjugation returned unknown form %q", f)
		}
	}

	knownAdj := make(map[Form]bool)
	for _, f := range AdjectiveForms() {
		knownAdj[f] = true
	}
	for range 50 {
		if f := RandomAdjectiveDeclension(); !knownAdj[f] {
			t.Fatalf("RandomAdjectiveDeclension returned unknown form %q", f)
		}
	}
}
