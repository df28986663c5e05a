package i18n

import (
	"reflect"
	"testing"

	"github.com/abhisek/synthetica/internal/olympiad"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"en", English, false},
		{"EN", English, false},
		{"english", English, false},
		{"hi", Hindi, false},
		{" Hindi ", Hindi, false},
		{"fr", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLanguage(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNext(t *testing.T) {
	if English.Next() != Hindi || Hindi.Next() != English {
		t.Error("toggle should cycle en -> hi -> en")
	}
	if Language("xx").Next() != DefaultLanguage {
		t.Error("unknown language should fall back to the default")
	}
}

func TestFor_Fallback(t *testing.T) {
	if For("xx") != For(English) {
		t.Error("unknown language should use the English table")
	}
	if For(Hindi).ModeSolve == For(English).ModeSolve {
		t.Error("Hindi table should differ from English")
	}
}

// Every string field must be populated in every table.
func TestTablesComplete(t *testing.T) {
	for _, lang := range AllLanguages() {
		tbl := reflect.ValueOf(*For(lang))
		for i := 0; i < tbl.NumField(); i++ {
			f := tbl.Field(i)
			name := tbl.Type().Field(i).Name
			if f.Kind() == reflect.String && f.String() == "" {
				t.Errorf("%s: %s is empty", lang, name)
			}
		}
	}
}

func TestEnumNames(t *testing.T) {
	for _, lang := range AllLanguages() {
		s := For(lang)
		for _, sub := range olympiad.AllSubjects() {
			if _, ok := s.SubjectNames[sub]; !ok {
				t.Errorf("%s: missing subject %q", lang, sub)
			}
		}
		for _, d := range olympiad.AllDifficulties() {
			if _, ok := s.DifficultyNames[d]; !ok {
				t.Errorf("%s: missing difficulty %q", lang, d)
			}
		}
		for _, e := range olympiad.AllElegances() {
			if _, ok := s.EleganceNames[e]; !ok {
				t.Errorf("%s: missing elegance %q", lang, e)
			}
		}
	}
	if got := For(Hindi).Subject(olympiad.SubjectGeometry); got != "ज्यामिति" {
		t.Errorf("Hindi geometry: got %q", got)
	}
	if got := For(English).Subject("Topology"); got != "Topology" {
		t.Errorf("untranslated subject should pass through, got %q", got)
	}
}
