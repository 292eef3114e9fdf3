package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// fixtureCourses is the seed dataset. Repository order is the order of
// this slice and is part of the query engine's contract.
func fixtureCourses() []Course {
	return []Course{
		{
			ID:            "1",
			Title:         "Complete Web Development Bootcamp",
			Description:   "Learn web development from scratch. Master HTML, CSS, JavaScript, React, Node.js, and MongoDB to build full-stack applications.",
			Price:         price("89.99"),
			DiscountPrice: pricePtr("49.99"),
			Category:      "Development",
			Level:         LevelAll,
			Rating:        4.8,
			Reviews:       4521,
			Enrollments:   12500,
			Duration:      "63h 30m",
			Lessons:       425,
			Featured:      true,
			Bestseller:    true,
			Tags:          []string{"web development", "javascript", "react", "node.js"},
			CreatedAt:     day("2023-03-15"),
			UpdatedAt:     day("2024-02-28"),
			Instructor: Instructor{
				ID:       "101",
				Name:     "Sarah Johnson",
				Avatar:   "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Full-stack developer with 10+ years of experience. Previously worked at Google and Amazon.",
				Rating:   4.9,
				Courses:  12,
				Students: 45000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Introduction to Web Development",
					Lessons: []Lesson{
						{ID: "1-1", Title: "Course Overview", Duration: "10m", Type: LessonVideo, Preview: true},
						{ID: "1-2", Title: "Setting Up Your Development Environment", Duration: "15m", Type: LessonVideo, Preview: true},
					},
				},
				{
					Title: "HTML Fundamentals",
					Lessons: []Lesson{
						{ID: "2-1", Title: "HTML Document Structure", Duration: "12m", Type: LessonVideo},
						{ID: "2-2", Title: "Working with Text and Images", Duration: "18m", Type: LessonVideo},
						{ID: "2-3", Title: "HTML Elements Quiz", Duration: "20m", Type: LessonQuiz},
					},
				},
			}},
		},
		{
			ID:            "2",
			Title:         "Machine Learning A-Z: Hands-On Python & R",
			Description:   "Learn to create machine learning algorithms in Python and R, dive into deep learning, and build artificial neural networks.",
			Price:         price("99.99"),
			DiscountPrice: pricePtr("59.99"),
			Category:      "Data Science",
			Level:         LevelIntermediate,
			Rating:        4.7,
			Reviews:       3872,
			Enrollments:   9800,
			Duration:      "45h 15m",
			Lessons:       320,
			Featured:      true,
			Bestseller:    true,
			Tags:          []string{"machine learning", "python", "data science", "deep learning"},
			CreatedAt:     day("2023-05-20"),
			UpdatedAt:     day("2024-01-15"),
			Instructor: Instructor{
				ID:       "102",
				Name:     "Michael Chen",
				Avatar:   "https://images.pexels.com/photos/2379005/pexels-photo-2379005.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Data scientist with PhD in Computer Science. Former ML researcher at MIT.",
				Rating:   4.8,
				Courses:  8,
				Students: 38000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Introduction to Machine Learning",
					Lessons: []Lesson{
						{ID: "1-1", Title: "What is Machine Learning?", Duration: "12m", Type: LessonVideo, Preview: true},
						{ID: "1-2", Title: "Setting Up Python & R", Duration: "18m", Type: LessonVideo},
					},
				},
				{
					Title: "Data Preprocessing",
					Lessons: []Lesson{
						{ID: "2-1", Title: "Importing Libraries and Datasets", Duration: "15m", Type: LessonVideo},
						{ID: "2-2", Title: "Handling Missing Data", Duration: "20m", Type: LessonVideo},
					},
				},
			}},
		},
		{
			ID:            "3",
			Title:         "The Complete Financial Analyst Course",
			Description:   "Master financial analysis and build a career as a financial analyst with this comprehensive course on finance, accounting, and valuation.",
			Price:         price("79.99"),
			DiscountPrice: pricePtr("39.99"),
			Category:      "Business",
			Level:         LevelBeginner,
			Rating:        4.6,
			Reviews:       2943,
			Enrollments:   7500,
			Duration:      "32h 45m",
			Lessons:       275,
			Featured:      false,
			Bestseller:    true,
			Tags:          []string{"finance", "accounting", "excel", "valuation"},
			CreatedAt:     day("2023-02-10"),
			UpdatedAt:     day("2023-11-30"),
			Instructor: Instructor{
				ID:       "103",
				Name:     "Emma Roberts",
				Avatar:   "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Former investment banker with 15 years experience in corporate finance and equity research.",
				Rating:   4.7,
				Courses:  5,
				Students: 32000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Financial Statements Analysis",
					Lessons: []Lesson{
						{ID: "1-1", Title: "Introduction to Financial Statements", Duration: "22m", Type: LessonVideo, Preview: true},
						{ID: "1-2", Title: "Balance Sheet Deep Dive", Duration: "35m", Type: LessonVideo},
					},
				},
			}},
		},
		{
			ID:            "4",
			Title:         "Digital Marketing Masterclass",
			Description:   "Master digital marketing strategy, social media marketing, SEO, YouTube marketing, email marketing, Facebook ads, and more!",
			Price:         price("69.99"),
			DiscountPrice: pricePtr("34.99"),
			Category:      "Marketing",
			Level:         LevelAll,
			Rating:        4.5,
			Reviews:       3156,
			Enrollments:   8200,
			Duration:      "28h 10m",
			Lessons:       230,
			Featured:      true,
			Bestseller:    false,
			Tags:          []string{"digital marketing", "social media", "SEO", "Google Ads"},
			CreatedAt:     day("2023-06-05"),
			UpdatedAt:     day("2024-03-01"),
			Instructor: Instructor{
				ID:       "104",
				Name:     "David Wilson",
				Avatar:   "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Digital marketing expert who has worked with Fortune 500 companies on marketing strategy.",
				Rating:   4.6,
				Courses:  7,
				Students: 36000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Marketing Fundamentals",
					Lessons: []Lesson{
						{ID: "1-1", Title: "The Digital Marketing Landscape", Duration: "18m", Type: LessonVideo, Preview: true},
					},
				},
			}},
		},
		{
			ID:            "5",
			Title:         "Modern React with Redux",
			Description:   "Master React v18 and Redux Toolkit with this complete guide. Build powerful, fast, user-friendly apps with React JS and Redux.",
			Price:         price("79.99"),
			DiscountPrice: pricePtr("44.99"),
			Category:      "Development",
			Level:         LevelIntermediate,
			Rating:        4.9,
			Reviews:       5283,
			Enrollments:   13400,
			Duration:      "52h 30m",
			Lessons:       380,
			Featured:      true,
			Bestseller:    true,
			Tags:          []string{"react", "redux", "javascript", "frontend"},
			CreatedAt:     day("2023-04-12"),
			UpdatedAt:     day("2024-02-15"),
			Instructor: Instructor{
				ID:       "105",
				Name:     "Jason Rivera",
				Avatar:   "https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Senior frontend developer specializing in React. Previously at Facebook and Netflix.",
				Rating:   4.9,
				Courses:  10,
				Students: 52000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "React Fundamentals",
					Lessons: []Lesson{
						{ID: "1-1", Title: "Course Introduction", Duration: "5m", Type: LessonVideo, Preview: true},
					},
				},
			}},
		},
		{
			ID:            "6",
			Title:         "Photography Masterclass: A Complete Guide",
			Description:   "The best online photography course. Learn how to take amazing photos that impress your family and friends.",
			Price:         price("59.99"),
			DiscountPrice: pricePtr("29.99"),
			Category:      "Photography",
			Level:         LevelAll,
			Rating:        4.7,
			Reviews:       3541,
			Enrollments:   9200,
			Duration:      "24h 15m",
			Lessons:       185,
			Featured:      false,
			Bestseller:    false,
			Tags:          []string{"photography", "camera basics", "photo editing", "composition"},
			CreatedAt:     day("2023-01-25"),
			UpdatedAt:     day("2023-10-10"),
			Instructor: Instructor{
				ID:       "106",
				Name:     "Lisa Zhang",
				Avatar:   "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Professional photographer with 20 years of experience in portrait and landscape photography.",
				Rating:   4.8,
				Courses:  6,
				Students: 28000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Photography Basics",
					Lessons: []Lesson{
						{ID: "1-1", Title: "Understanding Your Camera", Duration: "22m", Type: LessonVideo, Preview: true},
					},
				},
			}},
		},
		{
			ID:            "7",
			Title:         "Complete Python Developer in 2024",
			Description:   "Learn Python from scratch. Build projects, automate tasks, and master Python programming with this comprehensive course.",
			Price:         price("84.99"),
			DiscountPrice: pricePtr("42.99"),
			Category:      "Development",
			Level:         LevelBeginner,
			Rating:        4.6,
			Reviews:       4201,
			Enrollments:   11000,
			Duration:      "40h 45m",
			Lessons:       315,
			Featured:      true,
			Bestseller:    false,
			Tags:          []string{"python", "programming", "data structures", "algorithms"},
			CreatedAt:     day("2023-07-15"),
			UpdatedAt:     day("2024-03-05"),
			Instructor: Instructor{
				ID:       "107",
				Name:     "Robert Anderson",
				Avatar:   "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Python developer with 12 years of experience building enterprise applications and teaching programming.",
				Rating:   4.7,
				Courses:  9,
				Students: 47000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Python Basics",
					Lessons: []Lesson{
						{ID: "1-1", Title: "Introduction to Python", Duration: "15m", Type: LessonVideo, Preview: true},
					},
				},
			}},
		},
		{
			ID:            "8",
			Title:         "UI/UX Design Bootcamp",
			Description:   "Learn UI/UX design from the ground up. Master Figma, user research, wireframing, and create stunning user interfaces.",
			Price:         price("89.99"),
			DiscountPrice: pricePtr("54.99"),
			Category:      "Design",
			Level:         LevelAll,
			Rating:        4.8,
			Reviews:       2854,
			Enrollments:   7800,
			Duration:      "35h 20m",
			Lessons:       245,
			Featured:      true,
			Bestseller:    true,
			Tags:          []string{"UI design", "UX design", "Figma", "wireframing"},
			CreatedAt:     day("2023-08-20"),
			UpdatedAt:     day("2024-02-20"),
			Instructor: Instructor{
				ID:       "108",
				Name:     "Sophia Martinez",
				Avatar:   "https://images.pexels.com/photos/733872/pexels-photo-733872.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Senior UI/UX designer who has worked for Apple, Airbnb, and other top tech companies.",
				Rating:   4.9,
				Courses:  5,
				Students: 32000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Design Fundamentals",
					Lessons: []Lesson{
						{ID: "1-1", Title: "What is UI/UX Design?", Duration: "12m", Type: LessonVideo, Preview: true},
					},
				},
			}},
		},
		{
			ID:            "9",
			Title:         "Complete Guitar Lessons System - Beginner to Advanced",
			Description:   "Learn to play guitar with a proven system that takes you from beginner to advanced, with practical exercises and songs.",
			Price:         price("64.99"),
			DiscountPrice: pricePtr("32.99"),
			Category:      "Music",
			Level:         LevelAll,
			Rating:        4.7,
			Reviews:       3156,
			Enrollments:   8500,
			Duration:      "48h 30m",
			Lessons:       350,
			Featured:      false,
			Bestseller:    false,
			Tags:          []string{"guitar", "music theory", "acoustic guitar", "electric guitar"},
			CreatedAt:     day("2023-03-05"),
			UpdatedAt:     day("2023-12-15"),
			Instructor: Instructor{
				ID:       "109",
				Name:     "James Thompson",
				Avatar:   "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Professional guitarist with 25 years of experience performing and teaching guitar around the world.",
				Rating:   4.8,
				Courses:  7,
				Students: 34000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Getting Started with Guitar",
					Lessons: []Lesson{
						{ID: "1-1", Title: "Choosing Your First Guitar", Duration: "20m", Type: LessonVideo, Preview: true},
					},
				},
			}},
		},
		{
			ID:            "10",
			Title:         "The Complete 2024 Web Development Bootcamp",
			Description:   "Become a full-stack web developer with just one course. HTML, CSS, Javascript, Node, React, MongoDB, and more!",
			Price:         price("94.99"),
			DiscountPrice: pricePtr("49.99"),
			Category:      "Development",
			Level:         LevelAll,
			Rating:        4.9,
			Reviews:       5762,
			Enrollments:   15000,
			Duration:      "65h 45m",
			Lessons:       440,
			Featured:      true,
			Bestseller:    true,
			Tags:          []string{"web development", "full-stack", "javascript", "react"},
			CreatedAt:     day("2023-09-10"),
			UpdatedAt:     day("2024-03-15"),
			Instructor: Instructor{
				ID:       "110",
				Name:     "Angela Yu",
				Avatar:   "https://images.pexels.com/photos/3763188/pexels-photo-3763188.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Lead developer and bootcamp instructor with over 8 years of teaching coding to thousands of students.",
				Rating:   4.9,
				Courses:  6,
				Students: 65000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Introduction to Web Development",
					Lessons: []Lesson{
						{ID: "1-1", Title: "How the Internet Works", Duration: "15m", Type: LessonVideo, Preview: true},
					},
				},
			}},
		},
		{
			ID:            "11",
			Title:         "iOS & Swift - The Complete iOS App Development Bootcamp",
			Description:   "Learn iOS app development by building real apps. Master Swift, UIKit, and SwiftUI to create professional iOS applications.",
			Price:         price("99.99"),
			DiscountPrice: pricePtr("54.99"),
			Category:      "Development",
			Level:         LevelIntermediate,
			Rating:        4.8,
			Reviews:       4123,
			Enrollments:   10200,
			Duration:      "55h 30m",
			Lessons:       410,
			Featured:      true,
			Bestseller:    false,
			Tags:          []string{"iOS", "Swift", "mobile development", "app development"},
			CreatedAt:     day("2023-05-25"),
			UpdatedAt:     day("2024-01-20"),
			Instructor: Instructor{
				ID:       "111",
				Name:     "John Smith",
				Avatar:   "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Former Apple engineer with extensive experience developing iOS applications for startups and enterprise companies.",
				Rating:   4.8,
				Courses:  4,
				Students: 42000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Getting Started with iOS Development",
					Lessons: []Lesson{
						{ID: "1-1", Title: "Introduction to Xcode", Duration: "18m", Type: LessonVideo, Preview: true},
					},
				},
			}},
		},
		{
			ID:            "12",
			Title:         "The Complete Copywriting Course: Write to Sell Like a Pro",
			Description:   "Learn copywriting that sells products and services. Create powerful marketing materials that drive customer conversion.",
			Price:         price("69.99"),
			DiscountPrice: pricePtr("37.99"),
			Category:      "Marketing",
			Level:         LevelBeginner,
			Rating:        4.6,
			Reviews:       2873,
			Enrollments:   7600,
			Duration:      "21h 15m",
			Lessons:       185,
			Featured:      false,
			Bestseller:    false,
			Tags:          []string{"copywriting", "marketing", "sales", "content writing"},
			CreatedAt:     day("2023-04-05"),
			UpdatedAt:     day("2023-11-10"),
			Instructor: Instructor{
				ID:       "112",
				Name:     "Emily Parker",
				Avatar:   "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=120&h=120&dpr=1",
				Bio:      "Professional copywriter who has written for major brands like Nike, Coca-Cola, and Amazon.",
				Rating:   4.7,
				Courses:  3,
				Students: 24000,
			},
			Curriculum: Curriculum{Sections: []Section{
				{
					Title: "Copywriting Fundamentals",
					Lessons: []Lesson{
						{ID: "1-1", Title: "What Makes Great Copy?", Duration: "14m", Type: LessonVideo, Preview: true},
					},
				},
			}},
		},
	}
}
