package content

import "github.com/fikanova/portfolio/internal/domain"

// Statically embedded fallback datasets. They exist purely as a degradation
// path for when the content store is unreachable or not yet populated; they
// are never mutated. Callers receive copies, see resolver.go.

var fallbackProfile = domain.Profile{
	ID:    "fallback-profile",
	Name:  "Bruce Odhiambo",
	Title: "Construction Manager | Digital Product Lead",
	Bio: "I am a purpose-driven project enthusiast combining my background in construction management with ongoing training in project planning and digital product development to drive sustainable, inclusive, and tech-enabled solutions.\n\n" +
		"My focus is on contributing to ecologically responsible, socially inclusive, and ethically managed initiatives that align with the UN Sustainable Development Goals (SDGs). I'm especially interested in how digital and green technologies can influence sustainable infrastructure and help build resilient communities across Africa.\n\n" +
		"I've taken on roles (both paid and voluntary) that sharpen my skills in planning, team coordination, data use, stakeholder communication, and tech adoption. These experiences are all steps toward my long-term goal: to become a strategic leader in sustainable development, shaping infrastructure projects that merge innovation with social impact.",
	PortraitImage: domain.Image{Direct: "/static/img/bruce-headshot.jpg"},
	CVFile:        "/cv",
	Interests: []string{
		"Project-based roles in sustainability",
		"Digital innovation for development",
		"Infrastructure strategy",
		"Community-centred design",
	},
	Skills: []string{
		"Project Management",
		"GIS & Spatial Analysis",
		"Monitoring & Evaluation",
		"Data Analytics",
		"ArchiCAD",
		"Microsoft Suite",
		"Strategic Management",
		"Lead Generation",
	},
	Hobbies: []domain.Hobby{
		{Name: "Rugby", Description: "Active player for 10+ years, currently in the leadership group at Nondescripts RFC."},
		{Name: "Technology", Description: "Enthusiast focusing on how technology can drive sustainability across ecosystems."},
	},
	Education: []domain.Education{
		{Degree: "MA Project Planning and Management", Institution: "University of Nairobi", Period: "2023 - Present"},
		{Degree: "BSc Construction Management", Institution: "University of Nairobi", Period: "2016 - 2020"},
	},
	SocialLinks: []domain.SocialLink{
		{Platform: "LinkedIn", URL: "https://www.linkedin.com/in/bruce-odhiambo-8614b5175/"},
		{Platform: "WhatsApp", URL: "https://wa.me/254741058917"},
	},
}

var fallbackContactSettings = domain.ContactSettings{
	ID:                 "fallback-contact",
	Email:              "cmbruce1015@gmail.com",
	Phone:              "(+254) 0741058917",
	Location:           "Munich, Germany / Nairobi, Kenya",
	AvailabilityStatus: "Open to Opportunities",
}

var fallbackExperience = []domain.Experience{
	{
		ID: "1", Company: "J365", Role: "Project Lead",
		Location: "Nairobi, Kenya", Period: "Oct 2024 - Present", Order: 1,
		Description: "Leading a mentorship-driven social initiative to empower student and early-career athletes (particularly rugby players) in building sustainable life paths beyond the pitch.",
		Highlights: []string{
			"Lead overall project strategy, including goal-setting, logistics, and implementation",
			"Coordinate mentor–mentee engagement, matching athletes with professionals across industries",
			"Cultivate partnerships with experienced rugby veterans and professionals",
			"Manage program timelines, monitor progress, and evaluate outcomes",
			"Foster a growth-oriented, inclusive culture for participants",
		},
	},
	{
		ID: "2", Company: "Dustlight", Role: "Marketing & Sales Trainee",
		Location: "Munich, Germany", Period: "Jun 2025 - Jul 2025", Order: 2,
		Website:     "https://dustlight.de",
		Description: "Start-up operations intern supporting sales development, lead generation, and presentation preparation.",
		Highlights: []string{
			"Sales development activities",
			"Lead generation and management",
			"Preparation of presentations",
		},
	},
	{
		ID: "3", Company: "Sustain East Africa", Role: "GIS & Project Management Assistant",
		Location: "Nairobi, Kenya", Period: "Dec 2024 - May 2025", Order: 3,
		Description: "Supported project planning and execution by integrating geospatial analysis with project management tools and practices.",
		Highlights: []string{
			"Cleaned and validated spatial data using QGIS",
			"Developed tools to monitor project deliverables and automate email reminders",
			"Designed and refined work plan templates to enhance tracking efficiency",
			"Provided regular progress reports and flagged data discrepancies",
			"Collaborated with team leads to maintain consistency and meet milestones",
		},
	},
	{
		ID: "4", Company: "ETCO Kenya", Role: "Monitoring and Evaluation Officer (Volunteer)",
		Location: "Nairobi, Kenya", Period: "Jan 2024 - Aug 2025", Order: 4,
		Website:     "https://www.etco-kenya.org/",
		Description: "Supporting organisational growth and accountability by implementing robust M&E systems to assess the performance and impact of development initiatives.",
		Highlights: []string{
			"Design and deploy M&E tools to assess program outcomes",
			"Collect and analyse field data to generate actionable insights",
			"Support adaptive management with evidence-based recommendations",
			"Facilitate cross-functional collaboration between teams",
		},
	},
	{
		ID: "5", Company: "LIMA Labs", Role: "Data Quality Specialist",
		Location: "Nairobi, Kenya", Period: "Jun 2023 - Nov 2023", Order: 5,
		Description: "Contributed to the development of high-quality machine learning datasets by accurately labelling and categorising data according to detailed project guidelines.",
		Highlights: []string{
			"Applied project-specific annotation protocols to label images and data",
			"Conducted regular quality checks and participated in feedback cycles",
			"Collaborated with team to clarify ambiguous cases and update labels",
			"Supported creation of unbiased, high-performing AI models",
		},
	},
	{
		ID: "6", Company: "Jubilee Allianz", Role: "Data Entry Clerk",
		Location: "Nairobi, Kenya", Period: "Dec 2021 - Jan 2022", Order: 6,
		Description: "Accurately entered and updated essential data into company databases and systems, ensuring all records were precise and up-to-date.",
		Highlights: []string{
			"Reviewed documents, verified information, and corrected discrepancies",
			"Handled sensitive information with confidentiality and accuracy",
			"Collaborated with team to streamline data processes",
			"Supported efficient data management for operational effectiveness",
		},
	},
	{
		ID: "7", Company: "Remotasks", Role: "3D-LiDAR Specialist",
		Location: "Nairobi, Kenya", Period: "Nov 2019 - Nov 2021", Order: 7,
		Description: "Labelled and annotated LiDAR data to assist in training AI models for spatial recognition and object detection in autonomous systems.",
		Highlights: []string{
			"Worked with complex 3D point cloud data",
			"Identified and categorised vehicles, pedestrians, and infrastructure",
			"Ensured all annotations met quality standards",
			"Contributed to datasets for autonomous driving applications",
		},
	},
}

var fallbackProjects = []domain.Project{
	{
		ID:          "j365",
		Title:       "J365 Rugby Mentorship",
		Slug:        domain.Slug{Current: "j365-rugby"},
		Role:        "Project Lead",
		Category:    domain.CategorySustainability,
		ProjectDate: "2024-10-01",
		CoverImage:  domain.Image{Direct: "https://images.unsplash.com/photo-1529180184693-41c463f25d91?q=80&w=2670&auto=format&fit=crop"},
		Description: []domain.RichTextBlock{block("A mentorship-driven social initiative empowering student and early-career athletes.")},
		Challenge:   "Many student-athletes struggle with the transition from sports to professional careers.",
		Solution:    "Developed a comprehensive mentorship framework matching athletes with industry professionals.",
		Impact: []string{
			"Established strategic partnerships",
			"Coordinated mentor-mentee engagements",
			"Implemented M&E tools",
			"Fostered an inclusive community",
		},
		Tags:        []string{"Strategy", "Mentorship", "Partnerships", "M&E"},
		ProjectLink: "https://j365.org",
	},
}

var fallbackServicePackages = []domain.ServicePackage{
	{
		ID:       "svc-pm",
		Title:    "Project Management & M&E Strategy",
		Category: domain.CategoryMAndE,
		Price:    "On request",
		Description: "End-to-end project lifecycle management with robust Monitoring & Evaluation frameworks. " +
			"Expertise in construction oversight, resource allocation, and stakeholder coordination.",
		Features: []string{
			"Construction Project Oversight",
			"M&E Framework Development",
			"Budget & Resource Management",
			"Stakeholder Coordination",
			"Risk Assessment & Mitigation",
		},
		IsPopular: true,
		ImageURL:  "https://images.unsplash.com/photo-1503387762-592deb58ef4e?q=80&w=2689&auto=format&fit=crop",
	},
	{
		ID:       "svc-gis",
		Title:    "GIS & Spatial Intelligence",
		Category: domain.CategoryGIS,
		Price:    "On request",
		Description: "Geographic Information Systems expertise for spatial analysis, mapping, and data-driven " +
			"decision making in construction and environmental projects.",
		Features: []string{
			"Spatial Data Analysis",
			"Custom Map Development",
			"Environmental Impact Mapping",
			"Site Selection Analysis",
			"Infrastructure Planning",
		},
		ImageURL: "https://images.unsplash.com/photo-1569336415962-a4bd9f69cd83?q=80&w=2669&auto=format&fit=crop",
	},
	{
		ID:       "svc-ai",
		Title:    "AI Training Data & QA",
		Category: domain.CategoryAIData,
		Price:    "On request",
		Description: "Quality assurance and training data preparation for AI/ML systems. Ensuring data accuracy " +
			"and model reliability through rigorous validation processes.",
		Features: []string{
			"Data Annotation & Labeling",
			"Quality Assurance Protocols",
			"Model Validation Testing",
			"Training Dataset Curation",
			"Edge Case Identification",
		},
		ImageURL: "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?q=80&w=2565&auto=format&fit=crop",
	},
}

func block(text string) domain.RichTextBlock {
	var b domain.RichTextBlock
	b.Type = "block"
	b.Children = []struct {
		Text string `json:"text"`
	}{{Text: text}}
	return b
}
