package catalog

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/Isaiahshap/pulse/internal/models"
	"github.com/Isaiahshap/pulse/pkg/utils"
)

// Catalog is the read-only content table for the site. Every accessor hands
// out copies so the shared records cannot be mutated by callers.
type Catalog struct {
	classes    []models.ClassOffering
	categories []models.Category
	featured   []models.FeaturedCategory
	trainers   []models.Trainer
	plans      []models.MembershipPlan
	faq        []models.FAQEntry
	schedule   models.WeekSchedule
	info       models.GymInfo
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog built from the compiled-in tables.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = newCatalog()
	})
	return defaultCatalog
}

func newCatalog() *Catalog {
	classes := make([]models.ClassOffering, 0, len(classOfferings))
	for _, class := range classOfferings {
		class = cloneClass(class)
		class.Slug = utils.Slugify(class.Name)
		classes = append(classes, class)
	}

	return &Catalog{
		classes:    classes,
		categories: categories,
		featured:   featuredCategories,
		trainers:   trainers,
		plans:      membershipPlans,
		faq:        faqEntries,
		schedule:   weekSchedule,
		info:       gymInfo,
	}
}

func (c *Catalog) Classes() []models.ClassOffering {
	out := make([]models.ClassOffering, 0, len(c.classes))
	for _, class := range c.classes {
		out = append(out, cloneClass(class))
	}
	return out
}

// ClassesByCategory returns the classes assigned to category, in authored
// order. "All Classes" and the empty string return every class.
func (c *Catalog) ClassesByCategory(category string) []models.ClassOffering {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, categoryAll) {
		return c.Classes()
	}

	out := make([]models.ClassOffering, 0)
	for _, class := range c.classes {
		if strings.EqualFold(class.Category, category) {
			out = append(out, cloneClass(class))
		}
	}
	return out
}

func (c *Catalog) ClassBySlug(slug string) (models.ClassOffering, bool) {
	slug = utils.Slugify(slug)
	for _, class := range c.classes {
		if class.Slug == slug {
			return cloneClass(class), true
		}
	}
	return models.ClassOffering{}, false
}

func (c *Catalog) Categories() []models.Category {
	return slices.Clone(c.categories)
}

// CategoryAudit reports, per category, the authored count label next to the
// number of class records that actually carry the category.
func (c *Catalog) CategoryAudit() []models.CategoryAudit {
	audits := make([]models.CategoryAudit, 0, len(c.categories))
	for _, category := range c.categories {
		actual := len(c.ClassesByCategory(category.Name))
		declared, err := strconv.Atoi(strings.TrimSpace(category.DisplayCount))
		audits = append(audits, models.CategoryAudit{
			Category:      category,
			ClassCount:    actual,
			CountMismatch: err != nil || declared != actual,
		})
	}
	return audits
}

func (c *Catalog) FeaturedCategories() []models.FeaturedCategory {
	out := make([]models.FeaturedCategory, 0, len(c.featured))
	for _, featured := range c.featured {
		featured.Stats = slices.Clone(featured.Stats)
		out = append(out, featured)
	}
	return out
}

func (c *Catalog) Trainers() []models.Trainer {
	out := make([]models.Trainer, 0, len(c.trainers))
	for _, trainer := range c.trainers {
		out = append(out, cloneTrainer(trainer))
	}
	return out
}

func (c *Catalog) TrainerByID(id int) (models.Trainer, bool) {
	for _, trainer := range c.trainers {
		if trainer.ID == id {
			return cloneTrainer(trainer), true
		}
	}
	return models.Trainer{}, false
}

func (c *Catalog) Plans() []models.MembershipPlan {
	out := make([]models.MembershipPlan, 0, len(c.plans))
	for _, plan := range c.plans {
		plan.Features = slices.Clone(plan.Features)
		out = append(out, plan)
	}
	return out
}

func (c *Catalog) PlanByName(name string) (models.MembershipPlan, bool) {
	name = strings.TrimSpace(name)
	for _, plan := range c.plans {
		if strings.EqualFold(plan.Name, name) {
			plan.Features = slices.Clone(plan.Features)
			return plan, true
		}
	}
	return models.MembershipPlan{}, false
}

func (c *Catalog) FAQ() []models.FAQEntry {
	return slices.Clone(c.faq)
}

// Schedule returns a deep copy of the weekly grid.
func (c *Catalog) Schedule() models.WeekSchedule {
	out := make(models.WeekSchedule, len(c.schedule))
	for day, slots := range c.schedule {
		copied := make(map[string][]models.ScheduleClass, len(slots))
		for slot, classes := range slots {
			copied[slot] = slices.Clone(classes)
		}
		out[day] = copied
	}
	return out
}

func (c *Catalog) GymInfo() models.GymInfo {
	info := c.info
	info.AddressLines = slices.Clone(info.AddressLines)
	info.Hours = slices.Clone(info.Hours)
	return info
}

func (c *Catalog) NavLinks() []models.NavLink        { return slices.Clone(navLinks) }
func (c *Catalog) MobileMenuLinks() []models.NavLink { return slices.Clone(mobileMenuLinks) }
func (c *Catalog) FooterLinks() []models.NavLink     { return slices.Clone(footerLinks) }

func cloneClass(class models.ClassOffering) models.ClassOffering {
	class.Benefits = slices.Clone(class.Benefits)
	class.Schedule = slices.Clone(class.Schedule)
	return class
}

func cloneTrainer(trainer models.Trainer) models.Trainer {
	trainer.Certifications = slices.Clone(trainer.Certifications)
	trainer.Schedule = slices.Clone(trainer.Schedule)
	trainer.Achievements = slices.Clone(trainer.Achievements)
	return trainer
}
