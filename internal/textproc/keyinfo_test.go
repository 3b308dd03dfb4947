package textproc

import (
	"reflect"
	"testing"
)

func TestExtractKeyInformationEmails(t *testing.T) {
	info := ExtractKeyInformation("Reach me at jane.doe@example.com or jane.doe@example.com again")
	if !reflect.DeepEqual(info.Emails, []string{"jane.doe@example.com"}) {
		t.Fatalf("unexpected emails: %v", info.Emails)
	}
}

func TestExtractKeyInformationPhones(t *testing.T) {
	info := ExtractKeyInformation("Call 555-123-4567 or (555) 123-4567 or +1 555.123.4567")
	if !reflect.DeepEqual(info.Phones, []string{"(555) 123-4567"}) {
		t.Fatalf("duplicate phone formats must normalize to one entry: %v", info.Phones)
	}
}

func TestExtractKeyInformationYears(t *testing.T) {
	info := ExtractKeyInformation("Worked 2021 to 2019, born 1890, retiring 2099, again 2019")
	if !reflect.DeepEqual(info.YearsMentioned, []int{2019, 2021}) {
		t.Fatalf("years must be deduplicated, sorted, and bounded to 1950-2030: %v", info.YearsMentioned)
	}
}

func TestExtractKeyInformationSkills(t *testing.T) {
	info := ExtractKeyInformation("Experienced in Python and Docker; strong communication")
	want := map[string]bool{"python": true, "docker": true, "communication": true}
	if len(info.SkillsMentioned) != len(want) {
		t.Fatalf("unexpected skills: %v", info.SkillsMentioned)
	}
	for _, s := range info.SkillsMentioned {
		if !want[s] {
			t.Fatalf("unexpected skill %q in %v", s, info.SkillsMentioned)
		}
	}
}

func TestExtractKeyInformationSkillsRespectWordBoundaries(t *testing.T) {
	info := ExtractKeyInformation("Worked at Google on ongoing migrations")
	if len(info.SkillsMentioned) != 0 {
		t.Fatalf("embedded keyword must not match: %v", info.SkillsMentioned)
	}

	info = ExtractKeyInformation("Worked at Google on ongoing Go services")
	if !reflect.DeepEqual(info.SkillsMentioned, []string{"go"}) {
		t.Fatalf("standalone keyword must match exactly once: %v", info.SkillsMentioned)
	}
}

func TestExtractKeyInformationEmptyText(t *testing.T) {
	info := ExtractKeyInformation("")
	if len(info.Emails)+len(info.Phones)+len(info.YearsMentioned)+len(info.SkillsMentioned) != 0 {
		t.Fatalf("empty text must yield empty key info: %+v", info)
	}
}
