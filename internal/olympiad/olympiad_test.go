package olympiad

import "testing"

func TestParseSubject(t *testing.T) {
	tests := []struct {
		in      string
		want    Subject
		wantErr bool
	}{
		{"Geometry", SubjectGeometry, false},
		{"number theory", SubjectNumberTheory, false},
		{"Number-Theory", SubjectNumberTheory, false},
		{"nt", SubjectNumberTheory, false},
		{"ALG", SubjectAlgebra, false},
		{"comb", SubjectCombinatorics, false},
		{"topology", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSubject(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSubject(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSubject(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSubject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"High School", DifficultyHighSchool},
		{"undergraduate", DifficultyUndergraduate},
		{"IMO Level", DifficultyIMO},
		{"imo", DifficultyIMO},
		{"grand_challenge", DifficultyGrandChallenge},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := ParseDifficulty("olympic"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestEnumValidity(t *testing.T) {
	for _, s := range AllSubjects() {
		if !s.Valid() {
			t.Errorf("subject %q should be valid", s)
		}
	}
	if Subject("Topology").Valid() {
		t.Error("Topology should not be a valid subject")
	}
	for _, d := range AllDifficulties() {
		if !d.Valid() {
			t.Errorf("difficulty %q should be valid", d)
		}
	}
	if len(StepTypeEnum()) != 5 {
		t.Errorf("expected 5 step types, got %d", len(StepTypeEnum()))
	}
	if SubjectEnum()[1] != "Number Theory" {
		t.Errorf("unexpected subject enum: %v", SubjectEnum())
	}
}

func TestSynthesisResultSolution(t *testing.T) {
	var nilResult *SynthesisResult
	if _, ok := nilResult.Solution(0); ok {
		t.Error("nil result should have no solutions")
	}

	r := &SynthesisResult{Solutions: []Solution{{MethodName: "Synthetic"}, {MethodName: "Vectors"}}}
	s, ok := r.Solution(1)
	if !ok || s.MethodName != "Vectors" {
		t.Errorf("Solution(1) = %+v, %v", s, ok)
	}
	if _, ok := r.Solution(2); ok {
		t.Error("index 2 should be out of range")
	}
	if _, ok := r.Solution(-1); ok {
		t.Error("negative index should be out of range")
	}
}

func TestVerificationAccepted(t *testing.T) {
	step := &ReasoningStep{ID: "S1"}
	tests := []struct {
		name string
		v    *VerificationResult
		want bool
	}{
		{"nil", nil, false},
		{"valid with step", &VerificationResult{IsValid: true, FormalizedStep: step}, true},
		{"valid without step", &VerificationResult{IsValid: true}, false},
		{"invalid with step", &VerificationResult{IsValid: false, FormalizedStep: step}, false},
	}
	for _, tt := range tests {
		if got := tt.v.Accepted(); got != tt.want {
			t.Errorf("%s: Accepted() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClassicProblemsIsCopy(t *testing.T) {
	a := ClassicProblems()
	if len(a) != 4 {
		t.Fatalf("expected 4 classic problems, got %d", len(a))
	}
	if a[0].Prompt != PresetPrompt {
		t.Errorf("first classic should be the preset prompt")
	}
	a[0].Name = "changed"
	if ClassicProblems()[0].Name == "changed" {
		t.Error("ClassicProblems should return a copy")
	}
}
