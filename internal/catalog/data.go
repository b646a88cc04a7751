package catalog

import "sync"

func ym(s string) YearMonth { return MustYearMonth(s) }

func until(s string) *YearMonth {
	end := MustYearMonth(s)
	return &end
}

const webDevelopment = "Web Development"

var majorProjects = []Project{
	{
		ID:    "1",
		Title: "Project Management System",
		Description: "A modern, real-time collaborative project management system built with the MERN stack (MongoDB, Express, React, Node.js) and Socket.io. " +
			"Teams can manage projects and tasks together with live updates, user assignments, intuitive drag & drop functionality, " +
			"project-based organization, and comprehensive activity tracking.",
		Technologies: []string{"JavaScript", "React", "Node.js", "Express.js", "MongoDB", "Socket.io", "Tailwind CSS"},
		Role:         "Full Stack Developer",
		Duration:     Duration{Start: ym("2025-07"), End: until("2025-12")},
		Highlights: []string{
			"Real-time collaboration with Socket.io",
			"Drag & drop task management",
			"Role-based access control",
			"Activity tracking and audit logs",
		},
		GitHub:   "https://github.com/Khanr7433/project-management-system",
		LiveDemo: "https://project-management-system-v2.vercel.app",
		Category: webDevelopment,
	},
	{
		ID:    "2",
		Title: "Next.js Authentication System",
		Description: "A comprehensive full-stack authentication system built with Next.js 15, TypeScript, MongoDB, and Tailwind CSS. " +
			"It implements a complete user authentication flow with email verification and password reset functionality.",
		Technologies: []string{"TypeScript", "Next.js", "MongoDB", "Tailwind CSS"},
		Role:         "Full Stack Developer",
		Duration:     Duration{Start: ym("2025-07"), End: until("2025-12")},
		Highlights: []string{
			"Secure user authentication flow",
			"Email verification integration",
			"Password reset functionality",
			"Protected routes and middleware",
		},
		GitHub:   "https://github.com/Khanr7433/nextjs-auth-system",
		LiveDemo: "https://nextjs-auth-system-phi.vercel.app",
		Category: webDevelopment,
	},
	{
		ID:           "3",
		Title:        "Project Approval System",
		Description:  "A web application designed to streamline the process of project approvals.",
		Technologies: []string{"JavaScript", "React", "Node.js", "Express.js", "MongoDB"},
		Role:         "Full Stack Developer",
		Duration:     Duration{Start: ym("2024-12"), End: until("2025-02")},
		Highlights: []string{
			"Streamlined approval workflows",
			"User role management",
			"Automated notifications",
			"Status tracking dashboard",
		},
		GitHub:   "https://github.com/Khanr7433/Project_approval_system",
		LiveDemo: "https://project-approval-system-frontend.vercel.app",
		Category: webDevelopment,
	},
	{
		ID:           "4",
		Title:        "E-Auction System",
		Description:  "A web application designed to streamline the process of auctioning products.",
		Technologies: []string{"HTML", "CSS", "JavaScript", "Django", "Python"},
		Role:         "Full Stack Developer",
		Duration:     Duration{Start: ym("2024-10"), End: until("2025-05")},
		Highlights: []string{
			"Real-time bidding functionality",
			"Auction timer and winner detection",
			"User authentication and admin panel",
			"Secure payment integration",
		},
		GitHub:   "https://github.com/Khanr7433/E_Auction-system-using-django",
		LiveDemo: "https://e-auction-system-using-django.vercel.app",
		Category: webDevelopment,
	},
	{
		ID:           "5",
		Title:        "Personal Dashboard",
		Description:  "A modern dashboard built with Next.js and Tailwind CSS to showcase a personal portfolio and track various metrics.",
		Technologies: []string{"JavaScript", "Next.js", "Tailwind CSS"},
		Role:         "Frontend Developer",
		Duration:     Duration{Start: ym("2025-05"), End: until("2025-12")},
		Highlights: []string{
			"Responsive dashboard layout",
			"Data visualization widgets",
			"API integrations",
			"Dark mode support",
		},
		GitHub:   "https://github.com/Khanr7433/personal-dashboard",
		LiveDemo: "https://personal-dashboard-psi-ivory.vercel.app",
		Category: webDevelopment,
	},
}

var minorProjects = []Project{
	{
		ID:           "6",
		Title:        "VidTube",
		Description:  "A YouTube-like application for video streaming.",
		Technologies: []string{"JavaScript", "React", "API Integration"},
		Role:         "Frontend Developer",
		Duration:     Duration{Start: ym("2025-07"), End: until("2025-12")},
		GitHub:       "https://github.com/Khanr7433/vidtube",
		Category:     webDevelopment,
	},
	{
		ID:           "7",
		Title:        "Translate App",
		Description:  "A modern React translation application with support for multiple languages.",
		Technologies: []string{"JavaScript", "React", "Translation API"},
		Role:         "Frontend Developer",
		Duration:     Duration{Start: ym("2025-07"), End: until("2025-07")},
		GitHub:       "https://github.com/Khanr7433/translate-app",
		Category:     webDevelopment,
	},
	{
		ID:           "8",
		Title:        "Bakery Management",
		Description:  "A management system for bakery operations.",
		Technologies: []string{"Python", "Django"},
		Role:         "Full Stack Developer",
		Duration:     Duration{Start: ym("2024-10"), End: until("2024-11")},
		GitHub:       "https://github.com/Khanr7433/bakery_management",
		LiveDemo:     "https://bakery-management-one.vercel.app",
		Category:     webDevelopment,
	},
	{
		ID:           "9",
		Title:        "Currency Converter",
		Description:  "A modern currency converter application with real-time exchange rates.",
		Technologies: []string{"JavaScript", "React", "Currency API"},
		Role:         "Frontend Developer",
		Duration:     Duration{Start: ym("2025-07"), End: until("2025-07")},
		GitHub:       "https://github.com/Khanr7433/currency-converter",
		LiveDemo:     "https://currency-converter-zeta-beryl.vercel.app",
		Category:     webDevelopment,
	},
	{
		ID:           "10",
		Title:        "Ummat Calendar",
		Description:  "A digital calendar application.",
		Technologies: []string{"JavaScript", "React", "Node.js"},
		Role:         "Developer",
		Duration:     Duration{Start: ym("2025-12"), End: until("2025-12")},
		GitHub:       "https://github.com/Khanr7433/ummat-calendar",
		Category:     webDevelopment,
	},
	{
		ID:           "11",
		Title:        "Smart Team Chat",
		Description:  "A real-time chat application for team collaboration.",
		Technologies: []string{"JavaScript", "Socket.io"},
		Role:         "Backend Developer",
		Duration:     Duration{Start: ym("2025-09"), End: until("2025-12")},
		GitHub:       "https://github.com/Khanr7433/smart-team-chat",
		Category:     webDevelopment,
	},
	{
		ID:           "12",
		Title:        "Snake Game",
		Description:  "Classic Snake game implemented in JavaScript.",
		Technologies: []string{"JavaScript", "HTML/CSS"},
		Role:         "Frontend Developer",
		Duration:     Duration{Start: ym("2025-12"), End: until("2025-12")},
		GitHub:       "https://github.com/Khanr7433/snake-game",
		Category:     webDevelopment,
	},
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return New(majorProjects, minorProjects)
})

// Load validates and returns the compiled-in project catalog.
func Load() (*Catalog, error) { return loadDefault() }

// Default is Load for callers that treat a broken table as a programming error.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(err)
	}
	return c
}
