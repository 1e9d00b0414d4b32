package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/university/advisorfinder/internal/app/models"
	"github.com/university/advisorfinder/internal/app/repositories"
)

// categorySeed groups a research category with its interests.
type categorySeed struct {
	name        string
	description string
	interests   []interestSeed
}

type interestSeed struct {
	name        string
	description string
}

// lecturerSeed describes a sample lecturer; interestMatches are literal
// substrings matched against the seeded interest names.
type lecturerSeed struct {
	lecturer        models.Lecturer
	interestMatches []string
}

var defaultCatalog = []categorySeed{
	{
		name:        "Engineering",
		description: "Engineering and Technology Fields",
		interests: []interestSeed{
			{"Civil Engineering", "Infrastructure, Construction, and Environmental Engineering"},
			{"Computer Engineering", "Hardware and Software Systems"},
			{"Electrical Engineering", "Power Systems and Electronics"},
			{"Mechanical Engineering", "Machines, Energy, and Manufacturing"},
		},
	},
	{
		name:        "Computer Science",
		description: "Computing and Information Technology",
		interests: []interestSeed{
			{"Artificial Intelligence", "Machine Learning and AI Systems"},
			{"Software Engineering", "Software Development and Architecture"},
			{"Data Science", "Big Data and Analytics"},
			{"Cybersecurity", "Information Security and Privacy"},
		},
	},
	{
		name:        "Business",
		description: "Business Administration and Management",
		interests: []interestSeed{
			{"Marketing", "Digital Marketing and Consumer Behavior"},
			{"Finance", "Financial Analysis and Investment"},
			{"Management", "Organizational Behavior and Leadership"},
		},
	},
	{
		name:        "Sciences",
		description: "Natural and Physical Sciences",
		interests: []interestSeed{
			{"Biology", "Life Sciences and Biotechnology"},
			{"Chemistry", "Chemical Research and Materials"},
			{"Physics", "Theoretical and Applied Physics"},
			{"Mathematics", "Applied and Pure Mathematics"},
		},
	},
}

var sampleLecturers = []lecturerSeed{
	{
		lecturer: models.Lecturer{
			Title:          "Dr.",
			FirstName:      "John",
			LastName:       "Smith",
			Department:     "Computer Science",
			Email:          "john.smith@university.edu",
			Phone:          "+1-555-0101",
			Bio:            "Dr. Smith is a Professor of Computer Science specializing in Artificial Intelligence and Machine Learning. He has over 15 years of experience in AI research and has published numerous papers in top-tier conferences.",
			OfficeLocation: "CS Building, Room 301",
			OfficeHours:    "Mon/Wed 2-4 PM, Fri 10-12 PM",
		},
		interestMatches: []string{"Artificial Intelligence", "Software Engineering"},
	},
	{
		lecturer: models.Lecturer{
			Title:          "Dr.",
			FirstName:      "Sarah",
			LastName:       "Johnson",
			Department:     "Computer Science",
			Email:          "sarah.johnson@university.edu",
			Phone:          "+1-555-0102",
			Bio:            "Dr. Johnson is an Associate Professor specializing in Data Science and Cybersecurity. She leads research projects in big data analytics and information security.",
			OfficeLocation: "CS Building, Room 205",
			OfficeHours:    "Tue/Thu 1-3 PM",
		},
		interestMatches: []string{"Data Science", "Cybersecurity"},
	},
	{
		lecturer: models.Lecturer{
			Title:          "Dr.",
			FirstName:      "Michael",
			LastName:       "Brown",
			Department:     "Mechanical Engineering",
			Email:          "michael.brown@university.edu",
			Phone:          "+1-555-0103",
			Bio:            "Dr. Brown is a Professor of Mechanical Engineering with expertise in robotics, manufacturing systems, and energy systems. He has industry experience and strong ties with engineering companies.",
			OfficeLocation: "Engineering Building, Room 401",
			OfficeHours:    "Mon/Wed/Fri 9-11 AM",
		},
		interestMatches: []string{"Mechanical Engineering"},
	},
	{
		lecturer: models.Lecturer{
			Title:          "Dr.",
			FirstName:      "Emily",
			LastName:       "Davis",
			Department:     "Business Administration",
			Email:          "emily.davis@university.edu",
			Phone:          "+1-555-0104",
			Bio:            "Dr. Davis is an Associate Professor in the Business School with specializations in Finance and Digital Marketing. She has worked extensively with startups and established companies on financial strategy and marketing campaigns.",
			OfficeLocation: "Business Building, Room 302",
			OfficeHours:    "Tue/Thu 10 AM-12 PM",
		},
		interestMatches: []string{"Finance", "Marketing"},
	},
	{
		lecturer: models.Lecturer{
			Title:          "Dr.",
			FirstName:      "Robert",
			LastName:       "Wilson",
			Department:     "Life Sciences",
			Email:          "robert.wilson@university.edu",
			Phone:          "+1-555-0105",
			Bio:            "Dr. Wilson is a Professor in the Life Sciences department with research focus on molecular biology and biochemistry. His lab studies protein interactions and drug discovery.",
			OfficeLocation: "Science Building, Room 501",
			OfficeHours:    "Mon/Wed 3-5 PM",
		},
		interestMatches: []string{"Biology", "Chemistry"},
	},
}

// CreateDefaultData seeds the research catalog and sample lecturers. Each
// block runs only when its table is empty, so repeated startups do not
// duplicate rows.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	categoryRepo := repositories.NewResearchCategoryRepository(dbPool)
	interestRepo := repositories.NewResearchInterestRepository(dbPool)
	lecturerRepo := repositories.NewLecturerRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (research catalog, sample lecturers)...")
	var finalErr error

	categoryCount, err := categoryRepo.Count(ctx)
	if err != nil {
		return err
	}
	if categoryCount == 0 {
		for _, cat := range defaultCatalog {
			category := &models.ResearchCategory{Name: cat.name, Description: cat.description}
			if err := categoryRepo.Create(ctx, category); err != nil {
				lgr.Error().Err(err).Str("category", cat.name).Msg("Error creating default category")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			for _, in := range cat.interests {
				interest := &models.ResearchInterest{
					Name:        in.name,
					Description: in.description,
					CategoryID:  category.ID,
				}
				if err := interestRepo.Create(ctx, interest); err != nil {
					lgr.Error().Err(err).Str("interest", in.name).Msg("Error creating default interest")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
		lgr.Info().Msg("Default research catalog created")
	}

	lecturerCount, err := lecturerRepo.Count(ctx)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if lecturerCount == 0 {
		allInterests, err := interestRepo.GetAll(ctx)
		if err != nil {
			return errors.Join(finalErr, err)
		}
		for _, sample := range sampleLecturers {
			lecturer := sample.lecturer
			lecturer.Interests = matchInterests(allInterests, sample.interestMatches)
			if err := lecturerRepo.Create(ctx, &lecturer); err != nil {
				lgr.Error().Err(err).Str("email", lecturer.Email).Msg("Error creating sample lecturer")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Msg("Sample lecturers created")
	}

	return finalErr
}

// matchInterests selects the interests whose name contains any of the
// given substrings.
func matchInterests(interests []*models.ResearchInterest, substrings []string) []*models.ResearchInterest {
	var matched []*models.ResearchInterest
	for _, interest := range interests {
		for _, sub := range substrings {
			if strings.Contains(interest.Name, sub) {
				matched = append(matched, interest)
				break
			}
		}
	}
	return matched
}
