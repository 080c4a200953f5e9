package i18n

import "testing"

func TestCataloguesComplete(t *testing.T) {
	for id := range messagesEN {
		if _, ok := messagesZH[id]; !ok {
			t.Errorf("missing zh message for %s", id)
		}
	}
	for id := range messagesZH {
		if _, ok := messagesEN[id]; !ok {
			t.Errorf("zh message %s has no en entry", id)
		}
	}
}

func TestTranslate(t *testing.T) {
	defer SetLanguage(LangEnglish)

	SetLanguage(LangEnglish)
	if got := T(ErrExpectedToken, "';'"); got != "expected ';'" {
		t.Errorf("en: got %q", got)
	}

	SetLanguage(LangChinese)
	if got := T(ErrExpectedToken, "';'"); got != "需要 ';'" {
		t.Errorf("zh: got %q", got)
	}

	if got := T("no.such.message"); got != "no.such.message" {
		t.Errorf("unknown id: got %q", got)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
		wantErr  bool
	}{
		{"", LangEnglish, false},
		{"en", LangEnglish, false},
		{"EN-us", LangEnglish, false},
		{"zh", LangChinese, false},
		{"zh_TW", LangChinese, false},
		{"fr", LangEnglish, true},
	}

	for _, tt := range tests {
		got, err := ParseLanguage(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLanguage(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
