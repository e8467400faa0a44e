package domain

import (
	"testing"
	"time"
)

func TestUserProfileMerge_KeepsUnsetFields(t *testing.T) {
	age := 30
	visit := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	base := UserProfile{Name: "Asha", Age: &age, Location: "Guntur", Allergies: []string{"peanuts"}, LastVisit: &visit}

	newAge := 31
	merged := base.Merge(UserProfile{Age: &newAge})

	if merged.Name != "Asha" || merged.Location != "Guntur" {
		t.Fatalf("expected unset fields kept, got %+v", merged)
	}
	if merged.Age == nil || *merged.Age != 31 {
		t.Fatalf("expected age 31, got %v", merged.Age)
	}
	if len(merged.Allergies) != 1 || merged.LastVisit == nil || !merged.LastVisit.Equal(visit) {
		t.Fatalf("expected allergies and last visit kept, got %+v", merged)
	}
	if *base.Age != 30 {
		t.Fatalf("merge must not mutate the receiver")
	}
}

func TestUserProfileMerge_ZeroAgeIsSet(t *testing.T) {
	zero := 0
	merged := UserProfile{}.Merge(UserProfile{Age: &zero})
	if merged.Age == nil || *merged.Age != 0 {
		t.Fatalf("expected age 0 to be recorded, got %v", merged.Age)
	}
	if merged.IsEmpty() {
		t.Fatalf("profile with age should not be empty")
	}
	if !(UserProfile{}).IsEmpty() {
		t.Fatalf("zero profile should be empty")
	}
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]struct {
		want Language
		ok   bool
	}{
		"en":   {LanguageEnglish, true},
		" HI ": {LanguageHindi, true},
		"te":   {LanguageTelugu, true},
		"fr":   {"", false},
		"":     {"", false},
	}
	for in, tc := range cases {
		got, ok := ParseLanguage(in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLanguage(%q) = %q,%v; expected %q,%v", in, got, ok, tc.want, tc.ok)
		}
	}

	text := LocalizedText{En: "hello", Hi: "नमस्ते", Te: "నమస్కారం"}
	if text.In("fr") != "hello" {
		t.Fatalf("unknown language should fall back to english")
	}
}

func TestAgeBuckets(t *testing.T) {
	if BucketForAge(0) != AgeBucketBirth {
		t.Fatalf("age 0 should map to birth bucket")
	}
	for _, age := range []int{1, 5, 18} {
		if BucketForAge(age) != AgeBucketChild {
			t.Fatalf("age %d should map to child bucket", age)
		}
	}

	if !AgeBucketBirth.Matches("At birth, 6 weeks") || AgeBucketBirth.Matches("9 months") {
		t.Fatalf("birth bucket matching is wrong")
	}
	if !AgeBucketChild.Matches("2 years") || !AgeBucketChild.Matches("12-15 months") || AgeBucketChild.Matches("At birth") {
		t.Fatalf("child bucket matching is wrong")
	}
	if AgeBucketChild.Matches("6 weeks, 10 weeks") {
		t.Fatalf("weeks-only entries are not part of the child bucket")
	}
}

func TestUserProfileMerge_NormalizesLastVisit(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	visit := time.Date(2024, 2, 1, 10, 0, 0, 0, loc)
	merged := UserProfile{}.Merge(UserProfile{LastVisit: &visit})

	if merged.LastVisit.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", merged.LastVisit.Location())
	}
	if !merged.LastVisit.Equal(visit) {
		t.Fatalf("expected same instant, got %v", merged.LastVisit)
	}
}
