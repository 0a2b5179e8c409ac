package catalog

import (
	"testing"
)

func TestSampleDataKeysAreUnique(t *testing.T) {
	c := Default()

	classNames := map[string]struct{}{}
	slugs := map[string]struct{}{}
	for _, class := range c.Classes() {
		if _, dup := classNames[class.Name]; dup {
			t.Fatalf("duplicate class name %q", class.Name)
		}
		if _, dup := slugs[class.Slug]; dup {
			t.Fatalf("duplicate class slug %q", class.Slug)
		}
		classNames[class.Name] = struct{}{}
		slugs[class.Slug] = struct{}{}
	}

	trainerIDs := map[int]struct{}{}
	for _, trainer := range c.Trainers() {
		if _, dup := trainerIDs[trainer.ID]; dup {
			t.Fatalf("duplicate trainer id %d", trainer.ID)
		}
		trainerIDs[trainer.ID] = struct{}{}
	}

	planNames := map[string]struct{}{}
	highlighted := 0
	for _, plan := range c.Plans() {
		if _, dup := planNames[plan.Name]; dup {
			t.Fatalf("duplicate plan name %q", plan.Name)
		}
		planNames[plan.Name] = struct{}{}
		if plan.Highlight {
			highlighted++
		}
	}
	if highlighted != 1 {
		t.Fatalf("expected exactly one highlighted plan, got %d", highlighted)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	classes := c.Classes()
	classes[0].Name = "mutated"
	classes[0].Benefits[0] = "mutated"
	if got := c.Classes()[0]; got.Name == "mutated" || got.Benefits[0] == "mutated" {
		t.Fatalf("expected catalog classes to be immutable, got %+v", got)
	}

	schedule := c.Schedule()
	schedule["Monday"]["Morning"][0].Name = "mutated"
	delete(schedule, "Tuesday")
	fresh := c.Schedule()
	if fresh["Monday"]["Morning"][0].Name == "mutated" {
		t.Fatalf("expected schedule copy to be independent")
	}
	if _, ok := fresh["Tuesday"]; !ok {
		t.Fatalf("expected Tuesday to survive caller mutation")
	}

	trainer, ok := c.TrainerByID(1)
	if !ok {
		t.Fatalf("expected trainer 1")
	}
	trainer.Certifications[0] = "mutated"
	if again, _ := c.TrainerByID(1); again.Certifications[0] == "mutated" {
		t.Fatalf("expected trainer copy to be independent")
	}
}

func TestClassBySlug(t *testing.T) {
	c := Default()

	class, ok := c.ClassBySlug("strength-power")
	if !ok || class.Name != "Strength & Power" {
		t.Fatalf("expected Strength & Power, got %+v (found=%v)", class, ok)
	}

	class, ok = c.ClassBySlug("Yoga Flow")
	if !ok || class.Slug != "yoga-flow" {
		t.Fatalf("expected raw names to resolve through slugify, got %+v", class)
	}

	if _, ok := c.ClassBySlug("zumba"); ok {
		t.Fatalf("expected unknown class to be missing")
	}
}

func TestClassesByCategory(t *testing.T) {
	c := Default()

	if got := len(c.ClassesByCategory("")); got != len(c.Classes()) {
		t.Fatalf("expected empty category to return all %d classes, got %d", len(c.Classes()), got)
	}
	if got := len(c.ClassesByCategory("all classes")); got != len(c.Classes()) {
		t.Fatalf("expected All Classes to return everything, got %d", got)
	}

	strength := c.ClassesByCategory("Strength")
	if len(strength) != 2 || strength[0].Name != "Strength & Power" || strength[1].Name != "Beast Mode" {
		t.Fatalf("unexpected strength classes: %+v", strength)
	}

	unknown := c.ClassesByCategory("Aqua")
	if unknown == nil || len(unknown) != 0 {
		t.Fatalf("expected empty non-nil slice for unknown category, got %#v", unknown)
	}
}

func TestCategoryAuditFlagsAuthoredCounts(t *testing.T) {
	audits := Default().CategoryAudit()
	if len(audits) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(audits))
	}

	all := audits[0]
	if all.Name != "All Classes" || all.DisplayCount != "24" || all.ClassCount != 8 || !all.CountMismatch {
		t.Fatalf("unexpected All Classes audit: %+v", all)
	}

	recovery := audits[5]
	if recovery.Name != "Recovery" || recovery.ClassCount != 0 || !recovery.CountMismatch {
		t.Fatalf("unexpected Recovery audit: %+v", recovery)
	}
}

func TestScheduleCoversEveryDayAndSlot(t *testing.T) {
	schedule := Default().Schedule()
	if len(schedule) != len(Days) {
		t.Fatalf("expected %d days, got %d", len(Days), len(schedule))
	}
	for _, day := range Days {
		for _, slot := range Slots {
			if len(schedule[day][slot]) == 0 {
				t.Fatalf("expected classes on %s %s", day, slot)
			}
		}
	}
}
