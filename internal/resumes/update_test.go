package resumes

import (
	"reflect"
	"testing"
)

func TestApplyLeavesAbsentFieldsUnchanged(t *testing.T) {
	resume := NewDefault("u1", "Original")
	resume.ContactInfo.Email = "a@example.com"
	resume.Skills = []Skill{{Name: "Go", Progress: 80}}

	before := resume

	title := "Renamed"
	Update{Title: &title}.Apply(&resume)

	if resume.Title != "Renamed" {
		t.Fatalf("title = %q, want Renamed", resume.Title)
	}
	if resume.ContactInfo != before.ContactInfo {
		t.Errorf("contact info changed: %+v", resume.ContactInfo)
	}
	if !reflect.DeepEqual(resume.Skills, before.Skills) {
		t.Errorf("skills changed: %+v", resume.Skills)
	}
	if !reflect.DeepEqual(resume.WorkExperience, before.WorkExperience) {
		t.Errorf("work experience changed: %+v", resume.WorkExperience)
	}
}

func TestApplyReplacesSlicesWhole(t *testing.T) {
	resume := NewDefault("u1", "Title")
	resume.Skills = []Skill{
		{Name: "Go", Progress: 80},
		{Name: "SQL", Progress: 60},
	}

	newSkills := []Skill{{Name: "Rust", Progress: 40}}
	Update{Skills: &newSkills}.Apply(&resume)

	if !reflect.DeepEqual(resume.Skills, newSkills) {
		t.Fatalf("skills = %+v, want %+v", resume.Skills, newSkills)
	}
}

func TestApplyEmptySliceClearsSection(t *testing.T) {
	resume := NewDefault("u1", "Title")
	resume.Interests = []string{"reading", "chess"}

	empty := []string{}
	Update{Interests: &empty}.Apply(&resume)

	if len(resume.Interests) != 0 {
		t.Fatalf("interests = %v, want empty", resume.Interests)
	}
}

func TestApplyZeroUpdateIsNoOp(t *testing.T) {
	resume := NewDefault("u1", "Title")
	resume.ThumbnailLink = "http://localhost:8080/uploads/k"
	before := resume

	Update{}.Apply(&resume)

	if !reflect.DeepEqual(resume, before) {
		t.Fatalf("resume changed by empty update")
	}
}

func TestApplyNestedObjectReplacedWhole(t *testing.T) {
	resume := NewDefault("u1", "Title")
	resume.ProfileInfo.FullName = "Alice"
	resume.ProfileInfo.Summary = "Old summary"

	// A partial nested object replaces the whole section, so fields the
	// caller omitted are reset. That is the shallow-merge contract.
	Update{ProfileInfo: &ProfileInfo{Designation: "Engineer"}}.Apply(&resume)

	if resume.ProfileInfo.Designation != "Engineer" {
		t.Fatalf("designation = %q", resume.ProfileInfo.Designation)
	}
	if resume.ProfileInfo.FullName != "" || resume.ProfileInfo.Summary != "" {
		t.Fatalf("nested fields not replaced whole: %+v", resume.ProfileInfo)
	}
}
