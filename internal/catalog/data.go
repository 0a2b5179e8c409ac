package catalog

import "github.com/Isaiahshap/pulse/internal/models"

const (
	categoryAll        = "All Classes"
	categoryStrength   = "Strength"
	categoryHIIT       = "HIIT"
	categoryMindBody   = "Mind & Body"
	categoryCombat     = "Combat"
	categoryRecovery   = "Recovery"
	slotMorning        = "Morning"
	slotAfternoon      = "Afternoon"
	slotEvening        = "Evening"
	levelAll           = "All Levels"
	levelBeginner      = "Beginner"
	levelIntermediate  = "Intermediate"
	levelAdvanced      = "Advanced"
	unsplashImageQuery = "?q=80&w=1200"
)

// Days and Slots are the schedule keys in display order.
var (
	Days  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	Slots = []string{slotMorning, slotAfternoon, slotEvening}
)

var classOfferings = []models.ClassOffering{
	{
		Name:        "HIIT Training",
		Description: "High-intensity interval training that burns maximum calories and improves cardiovascular fitness.",
		Duration:    "45 min",
		Level:       levelAll,
		Trainer:     "Sarah Johnson",
		Image:       "https://images.unsplash.com/photo-1534258936925-c58bed479fcb?q=80&w=800",
		Category:    categoryHIIT,
		Benefits:    []string{"Burn up to 1000 calories", "Improve endurance", "Boost metabolism", "Build lean muscle"},
		Schedule:    []string{"Mon/Wed/Fri 6:00 AM", "Tue/Thu 7:30 PM", "Sat 9:00 AM"},
	},
	{
		Name:        "Strength & Power",
		Description: "Build muscle and increase strength through progressive resistance training and compound movements.",
		Duration:    "60 min",
		Level:       levelIntermediate,
		Trainer:     "Mike Thompson",
		Image:       "https://images.unsplash.com/photo-1533681904393-9ab6eee7e408" + unsplashImageQuery,
		Category:    categoryStrength,
		Benefits:    []string{"Increase muscle mass", "Enhance core strength", "Improve posture", "Boost bone density"},
		Schedule:    []string{"Mon/Wed/Fri 7:00 AM", "Tue/Thu 6:30 PM", "Sat 10:00 AM"},
	},
	{
		Name:        "Yoga Flow",
		Description: "Connect mind and body through dynamic movements and poses that improve flexibility and balance.",
		Duration:    "75 min",
		Level:       levelAll,
		Trainer:     "Emma Davis",
		Image:       "https://images.unsplash.com/photo-1599901860904-17e6ed7083a0" + unsplashImageQuery,
		Category:    categoryMindBody,
		Benefits:    []string{"Increase flexibility", "Reduce stress", "Improve balance", "Enhanced mindfulness"},
		Schedule:    []string{"Tue/Thu 8:00 AM", "Mon/Wed 6:00 PM", "Sun 9:00 AM"},
	},
	{
		Name:        "Boxing",
		Description: "Learn proper technique while getting an intense full-body workout that builds strength and agility.",
		Duration:    "60 min",
		Level:       levelBeginner,
		Trainer:     "James Wilson",
		Image:       "https://images.unsplash.com/photo-1549719386-74dfcbf7dbed" + unsplashImageQuery,
		Category:    categoryCombat,
		Benefits:    []string{"Full body workout", "Improved coordination", "Stress relief", "Self-defense skills"},
		Schedule:    []string{"Mon/Wed/Fri 8:00 AM", "Tue/Thu 7:00 PM", "Sat 11:00 AM"},
	},
	{
		Name:        "CrossFit Elite",
		Description: "Push your limits with our high-intensity functional training program combining gymnastics, weightlifting, and cardio.",
		Duration:    "60 min",
		Level:       levelAdvanced,
		Trainer:     "Alex Rivera",
		Image:       "https://images.unsplash.com/photo-1541534741688-6078c6bfb5c5" + unsplashImageQuery,
		Category:    categoryHIIT,
		Benefits:    []string{"Full body conditioning", "Increased power output", "Athletic performance", "Community support"},
		Schedule:    []string{"Mon/Wed/Fri 5:30 AM", "Tue/Thu 6:30 PM", "Sat 8:00 AM"},
	},
	{
		Name:        "Spin Studio",
		Description: "High-energy indoor cycling sessions synchronized to powerful music and motivational coaching.",
		Duration:    "45 min",
		Level:       levelAll,
		Trainer:     "Maya Chen",
		Image:       "https://images.unsplash.com/photo-1594737625785-a6cbdabd333c" + unsplashImageQuery,
		Category:    categoryHIIT,
		Benefits:    []string{"Cardio endurance", "Lower body strength", "Fat burning", "Mental focus"},
		Schedule:    []string{"Mon-Fri 6:00 AM", "Mon/Wed 7:30 PM", "Sat/Sun 9:00 AM"},
	},
	{
		Name:        "Power Pilates",
		Description: "Modern approach to classical Pilates, incorporating dynamic movements and resistance training.",
		Duration:    "55 min",
		Level:       levelIntermediate,
		Trainer:     "Sofia Rodriguez",
		Image:       "https://images.unsplash.com/photo-1518611012118-696072aa579a" + unsplashImageQuery,
		Category:    categoryMindBody,
		Benefits:    []string{"Core strength", "Flexibility", "Posture improvement", "Mind-body connection"},
		Schedule:    []string{"Tue/Thu 9:00 AM", "Mon/Wed 5:30 PM", "Sat 10:30 AM"},
	},
	{
		Name:        "Beast Mode",
		Description: "Intense strength training focusing on compound movements and progressive overload principles.",
		Duration:    "75 min",
		Level:       levelAdvanced,
		Trainer:     "Marcus Stone",
		Image:       "https://images.unsplash.com/photo-1526506118085-60ce8714f8c5" + unsplashImageQuery,
		Category:    categoryStrength,
		Benefits:    []string{"Maximum strength gains", "Muscle hypertrophy", "Performance enhancement", "Expert coaching"},
		Schedule:    []string{"Mon/Wed/Fri 6:30 AM", "Tue/Thu 8:00 PM", "Sat 7:00 AM"},
	},
}

// The counts are authored display labels and do not track classOfferings.
var categories = []models.Category{
	{Name: categoryAll, DisplayCount: "24", Tooltip: "HIIT Training, Yoga Flow, Boxing, CrossFit Elite, and more"},
	{Name: categoryStrength, DisplayCount: "8", Tooltip: "Strength & Power, Beast Mode, PowerLifting, Olympic Lifting"},
	{Name: categoryHIIT, DisplayCount: "6", Tooltip: "HIIT Training, Tabata, Circuit Training, MetCon"},
	{Name: categoryMindBody, DisplayCount: "5", Tooltip: "Yoga Flow, Power Pilates, Meditation, Stretching"},
	{Name: categoryCombat, DisplayCount: "3", Tooltip: "Boxing, Kickboxing, MMA Conditioning"},
	{Name: categoryRecovery, DisplayCount: "2", Tooltip: "Mobility & Recovery, Deep Stretch"},
}

var featuredCategories = []models.FeaturedCategory{
	{
		Title:       "High Intensity",
		Description: "Push your limits with dynamic, full-body workouts",
		Image:       "https://images.unsplash.com/photo-1534258936925-c58bed479fcb",
		Stats:       []models.FeaturedStat{{Label: "Calories", Value: "800+"}, {Label: "Duration", Value: "45-60m"}},
	},
	{
		Title:       "Strength & Power",
		Description: "Build muscle and increase strength with expert guidance",
		Image:       "https://images.unsplash.com/photo-1576678927484-cc907957088c",
		Stats:       []models.FeaturedStat{{Label: "Focus Areas", Value: "5+"}, {Label: "Duration", Value: "60m"}},
	},
	{
		Title:       "Mind & Body",
		Description: "Find balance through movement and mindfulness",
		Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b",
		Stats:       []models.FeaturedStat{{Label: "Intensity", Value: "Low"}, {Label: "Duration", Value: "50m"}},
	},
}

var trainers = []models.Trainer{
	{
		ID:             1,
		Name:           "Alex Rivera",
		Specialty:      "CrossFit & Strength",
		Experience:     "10+ Years",
		Image:          "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b" + unsplashImageQuery,
		Bio:            "Former Olympic athlete turned elite trainer, specializing in explosive strength and conditioning.",
		Certifications: []string{"CrossFit Level 3", "NSCA CSCS", "USA Weightlifting Level 2"},
		Schedule:       []string{"Mon/Wed/Fri 6:00 AM", "Tue/Thu 5:30 PM"},
		Instagram:      "@alex.power",
		Achievements:   []string{"Olympic Team 2016", "National Champion 2015", "Featured in Fitness Magazine"},
	},
	{
		ID:             2,
		Name:           "Marcus Chen",
		Specialty:      "HIIT & Nutrition",
		Experience:     "8 Years",
		Image:          "https://images.unsplash.com/photo-1605296867304-46d5465a13f1" + unsplashImageQuery,
		Bio:            "Transforming lives through high-intensity training and precision nutrition planning.",
		Certifications: []string{"NASM CPT", "Precision Nutrition Level 2", "TRX Certified"},
		Schedule:       []string{"Mon/Wed 7:00 AM", "Tue/Thu/Fri 6:30 PM"},
		Instagram:      "@sarah.fit",
		Achievements:   []string{"Trainer of the Year 2022", "100+ Client Transformations", "Wellness Speaker"},
	},
	{
		ID:             3,
		Name:           "Sarah Stone",
		Specialty:      "Power Lifting",
		Experience:     "12 Years",
		Image:          "https://images.unsplash.com/photo-1534438327276-14e5300c3a48" + unsplashImageQuery,
		Bio:            "Record-holding powerlifter dedicated to building strength through perfect form.",
		Certifications: []string{"IPF Coach", "NSCA CSCS", "Westside Barbell Certified"},
		Schedule:       []string{"Mon/Wed/Fri 5:00 AM", "Tue/Thu 7:30 PM"},
		Instagram:      "@stone.strong",
		Achievements:   []string{"World Record Holder", "National Champion 2020", "Elite Coaching Certification"},
	},
}

var membershipPlans = []models.MembershipPlan{
	{
		Name:        "Basic",
		Price:       models.PlanPrice{Monthly: "49", Yearly: "470"},
		Description: "Perfect for beginners starting their fitness journey",
		Features: []models.PlanFeature{
			{Included: true, Feature: "Access to main gym area"},
			{Included: true, Feature: "Basic fitness assessment"},
			{Included: true, Feature: "2 group classes per month"},
			{Included: false, Feature: "Personal training sessions"},
			{Included: false, Feature: "Spa & recovery zones"},
			{Included: false, Feature: "Nutrition consultation"},
		},
	},
	{
		Name:        "Elite",
		Price:       models.PlanPrice{Monthly: "99", Yearly: "900"},
		Description: "Our most popular plan for dedicated fitness enthusiasts",
		Features: []models.PlanFeature{
			{Included: true, Feature: "Unlimited gym access"},
			{Included: true, Feature: "Advanced fitness assessment"},
			{Included: true, Feature: "Unlimited group classes"},
			{Included: true, Feature: "2 PT sessions per month"},
			{Included: true, Feature: "Spa & recovery zones"},
			{Included: false, Feature: "Nutrition consultation"},
		},
		Highlight: true,
	},
	{
		Name:        "Ultimate",
		Price:       models.PlanPrice{Monthly: "149", Yearly: "1400"},
		Description: "The complete package for maximum results",
		Features: []models.PlanFeature{
			{Included: true, Feature: "24/7 gym access"},
			{Included: true, Feature: "Monthly body composition"},
			{Included: true, Feature: "Unlimited group classes"},
			{Included: true, Feature: "4 PT sessions per month"},
			{Included: true, Feature: "Spa & recovery zones"},
			{Included: true, Feature: "Monthly nutrition plan"},
		},
	},
}

var faqEntries = []models.FAQEntry{
	{
		Question: "What's included in the membership?",
		Answer:   "Each membership tier includes different benefits, from basic gym access to premium features like personal training and nutrition consultation. Check our membership plans above for detailed information.",
	},
	{
		Question: "Can I freeze my membership?",
		Answer:   "Yes, you can freeze your membership for up to 3 months per year with a valid reason. Contact our support team for assistance.",
	},
	{
		Question: "Is there a joining fee?",
		Answer:   "No, we don't charge any joining fees. You only pay for your chosen membership plan.",
	},
	{
		Question: "What's your cancellation policy?",
		Answer:   "We offer a flexible month-to-month membership with 30-day notice for cancellation.",
	},
}

func sc(time, name, trainer, duration, level string) models.ScheduleClass {
	return models.ScheduleClass{Time: time, Name: name, Trainer: trainer, Duration: duration, Level: level}
}

var weekSchedule = models.WeekSchedule{
	"Monday": {
		slotMorning: {
			sc("06:00", "HIIT Fusion", "Sarah Johnson", "45 min", levelAll),
			sc("07:30", "Power Lifting", "Mike Thompson", "60 min", levelIntermediate),
			sc("09:00", "Yoga Flow", "Emma Davis", "75 min", levelAll),
		},
		slotAfternoon: {
			sc("12:00", "Boxing", "James Wilson", "60 min", levelBeginner),
			sc("14:30", "Spin Studio", "Maya Chen", "45 min", levelAll),
		},
		slotEvening: {
			sc("17:00", "CrossFit Elite", "Alex Rivera", "60 min", levelAdvanced),
			sc("18:30", "Beast Mode", "Marcus Stone", "75 min", levelAdvanced),
			sc("20:00", "Power Pilates", "Sofia Rodriguez", "55 min", levelIntermediate),
		},
	},
	"Tuesday": {
		slotMorning: {
			sc("06:00", "Cardio Blast", "Maya Chen", "45 min", levelAll),
			sc("07:30", "Strength & Core", "Alex Rivera", "60 min", levelIntermediate),
			sc("09:00", "Mindful Flow", "Emma Davis", "60 min", levelAll),
		},
		slotAfternoon: {
			sc("12:00", "Kickboxing", "James Wilson", "60 min", levelIntermediate),
			sc("14:30", "TRX Training", "Mike Thompson", "45 min", levelAll),
		},
		slotEvening: {
			sc("17:00", "Power Yoga", "Sofia Rodriguez", "75 min", levelIntermediate),
			sc("18:30", "Circuit Training", "Sarah Johnson", "60 min", levelAdvanced),
			sc("20:00", "Recovery Flow", "Emma Davis", "45 min", levelAll),
		},
	},
	"Wednesday": {
		slotMorning: {
			sc("06:00", "HIIT & Core", "Marcus Stone", "45 min", levelIntermediate),
			sc("07:30", "Olympic Lifting", "Mike Thompson", "75 min", levelAdvanced),
			sc("09:00", "Vinyasa Flow", "Emma Davis", "60 min", levelAll),
		},
		slotAfternoon: {
			sc("12:00", "Combat Fitness", "James Wilson", "60 min", levelIntermediate),
			sc("14:30", "Cycle & Burn", "Maya Chen", "45 min", levelAll),
		},
		slotEvening: {
			sc("17:00", "CrossFit Open", "Alex Rivera", "60 min", levelAll),
			sc("18:30", "Strength Wars", "Marcus Stone", "75 min", levelAdvanced),
			sc("20:00", "Flex & Flow", "Sofia Rodriguez", "45 min", levelAll),
		},
	},
	"Thursday": {
		slotMorning: {
			sc("06:00", "Metabolic Burn", "Sarah Johnson", "45 min", levelAll),
			sc("07:30", "Power Training", "Mike Thompson", "60 min", levelIntermediate),
			sc("09:00", "Gentle Flow", "Emma Davis", "60 min", levelBeginner),
		},
		slotAfternoon: {
			sc("12:00", "Box & Burn", "James Wilson", "60 min", levelAll),
			sc("14:30", "Core Power", "Sofia Rodriguez", "45 min", levelIntermediate),
		},
		slotEvening: {
			sc("17:00", "CrossFit Skills", "Alex Rivera", "75 min", levelIntermediate),
			sc("18:30", "HIIT Express", "Maya Chen", "30 min", levelAll),
			sc("20:00", "Restorative Yoga", "Emma Davis", "60 min", levelAll),
		},
	},
	"Friday": {
		slotMorning: {
			sc("06:00", "Sprint & Strength", "Marcus Stone", "45 min", levelAdvanced),
			sc("07:30", "Functional Fitness", "Sarah Johnson", "60 min", levelAll),
			sc("09:00", "Power Flow", "Emma Davis", "75 min", levelIntermediate),
		},
		slotAfternoon: {
			sc("12:00", "MMA Fitness", "James Wilson", "60 min", levelIntermediate),
			sc("14:30", "Endurance Cycle", "Maya Chen", "60 min", levelAll),
		},
		slotEvening: {
			sc("17:00", "CrossFit WOD", "Alex Rivera", "60 min", levelAdvanced),
			sc("18:30", "Ultimate HIIT", "Sarah Johnson", "45 min", levelAll),
			sc("20:00", "Candlelight Yoga", "Sofia Rodriguez", "60 min", levelAll),
		},
	},
	"Saturday": {
		slotMorning: {
			sc("08:00", "Weekend Warriors", "Marcus Stone", "90 min", levelAdvanced),
			sc("09:30", "Community Yoga", "Emma Davis", "75 min", levelAll),
			sc("11:00", "Boxing Bootcamp", "James Wilson", "60 min", levelAll),
		},
		slotAfternoon: {
			sc("13:00", "CrossFit Open Gym", "Alex Rivera", "120 min", levelAll),
			sc("15:00", "Dance Fitness", "Maya Chen", "60 min", levelAll),
		},
		slotEvening: {
			sc("17:00", "Sunset Flow", "Sofia Rodriguez", "60 min", levelAll),
		},
	},
	"Sunday": {
		slotMorning: {
			sc("09:00", "Sunday Stretch", "Emma Davis", "60 min", levelAll),
			sc("10:30", "Mobility & Flow", "Sofia Rodriguez", "75 min", levelAll),
		},
		slotAfternoon: {
			sc("12:00", "Open Gym", "Various Trainers", "180 min", levelAll),
		},
		slotEvening: {
			sc("16:00", "Meditation & Restore", "Emma Davis", "60 min", levelAll),
		},
	},
}

var gymInfo = models.GymInfo{
	Name:         "Pulse Gym",
	Tagline:      "Empowering your fitness journey with state-of-the-art facilities and expert guidance.",
	AddressLines: []string{"123 Fitness Street", "New York, NY 10001"},
	Phone:        "(555) 123-4567",
	Email:        "info@pulsegym.com",
	Hours: []models.OpeningHours{
		{Days: "Monday - Friday", Hours: "5am - 10pm"},
		{Days: "Saturday", Hours: "7am - 8pm"},
		{Days: "Sunday", Hours: "8am - 6pm"},
	},
	MapEmbedURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d193595.25280999342!2d-74.11976389828428!3d40.697403441436425!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x89c24fa5d33f083b%3A0xc80b8f06e177fe62!2sNew%20York%2C%20NY!5e0!3m2!1sen!2sus!4v1679436374500!5m2!1sen!2sus",
}

var (
	navLinks = []models.NavLink{
		{Path: "/classes", Label: "Classes"},
		{Path: "/trainers", Label: "Trainers"},
		{Path: "/contact", Label: "Contact"},
	}
	mobileMenuLinks = []models.NavLink{
		{Path: "/classes", Label: "Classes"},
		{Path: "/trainers", Label: "Trainers"},
		{Path: "/schedule", Label: "Schedule"},
		{Path: "/contact", Label: "Contact"},
	}
	footerLinks = []models.NavLink{
		{Path: "/classes", Label: "Classes"},
		{Path: "/trainers", Label: "Trainers"},
		{Path: "/membership", Label: "Membership"},
		{Path: "/contact", Label: "Contact Us"},
	}
)
