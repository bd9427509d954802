package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"eduhub/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	NumInquiries int
	ShouldClean  bool
	// DryRun logs what would be created without writing to the database.
	DryRun bool
	// SkipBcrypt stores a plaintext placeholder password. Dev only.
	SkipBcrypt bool
	// MaxDays spreads generated created_at timestamps over the past N days.
	MaxDays int
}

// Seed populates the database with demo data: a root admin, a manager, a
// population of regular users, the curated academy fixtures with their
// approved inquiries, and a backlog of random inquiries across all statuses.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d inquiries...", opts.NumUsers, opts.NumInquiries)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	admins, err := createStaff(factory)
	if err != nil {
		return fmt.Errorf("failed to create staff accounts: %w", err)
	}
	log.Printf("Created %d staff accounts", len(admins))

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	approved, err := createFixtureAcademies(factory, admins)
	if err != nil {
		return fmt.Errorf("failed to create fixture academies: %w", err)
	}
	log.Printf("Created %d academies from fixtures", approved)

	if err := createInquiryBacklog(factory, admins, opts.NumInquiries); err != nil {
		return fmt.Errorf("failed to create inquiry backlog: %w", err)
	}
	log.Printf("Created %d backlog inquiries", opts.NumInquiries)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE inquiries, academies, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// createStaff seeds the well-known admin and manager accounts used in
// development. Logins: admin@eduhub.local / manager@eduhub.local.
func createStaff(factory *Factory) ([]models.User, error) {
	staff := []struct {
		name  string
		email string
		role  models.PlatformRole
	}{
		{"Root Admin", "admin@eduhub.local", models.PlatformRoleAdmin},
		{"Demo Manager", "manager@eduhub.local", models.PlatformRoleManager},
	}

	out := make([]models.User, 0, len(staff))
	for _, s := range staff {
		s := s
		user, err := factory.CreateUser(func(u *models.User) {
			u.FullName = s.name
			u.Email = s.email
			u.Role = s.role
		})
		if err != nil {
			return nil, err
		}
		out = append(out, *user)
	}
	return out, nil
}

func createUsers(factory *Factory, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			// Random emails can collide; skip and keep going.
			log.Printf("skipping user %d: %v", i, err)
			continue
		}
		users = append(users, *user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

// createFixtureAcademies loads the curated YAML fixtures and records each as
// an approved inquiry with its provisioned academy, so the platform starts
// with believable processed history.
func createFixtureAcademies(factory *Factory, admins []models.User) (int, error) {
	fixtures, err := LoadAcademyFixtures()
	if err != nil {
		return 0, err
	}

	for _, fixture := range fixtures {
		fixture := fixture
		academy, err := factory.CreateAcademy(func(a *models.Academy) {
			a.Name = fixture.Name
		})
		if err != nil {
			return 0, err
		}

		processedAt := time.Now().Add(-time.Duration(rand.Intn(30)+1) * 24 * time.Hour)
		inquiry := factory.BuildInquiry(func(i *models.Inquiry) {
			i.AcademyName = fixture.Name
			i.FullName = fixture.ContactName
			i.Email = fixture.ContactEmail
			i.Phone = fixture.ContactPhone
			i.Content = fixture.Pitch
			i.Status = models.InquiryStatusApproved
			i.AdminComment = "Verified during onboarding."
			i.AcademyID = &academy.ID
			i.ProcessedAt = &processedAt
			if len(admins) > 0 {
				i.ProcessedByUserID = &admins[0].ID
			}
			i.CreatedAt = processedAt.Add(-72 * time.Hour)
		})
		if err := factory.CreateInquiriesBatch([]*models.Inquiry{inquiry}); err != nil {
			return 0, err
		}
	}
	return len(fixtures), nil
}

// createInquiryBacklog generates random inquiries weighted toward pending so
// the admin listing has work to do. Rejected and on-hold inquiries carry
// processing metadata; approved ones come only from fixtures so the
// approved-implies-academy invariant holds.
func createInquiryBacklog(factory *Factory, admins []models.User, count int) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	batch := make([]*models.Inquiry, 0, count)
	for i := 0; i < count; i++ {
		inquiry := factory.BuildInquiry(func(inq *models.Inquiry) {
			switch pick := r.Intn(100); {
			case pick < 60:
				// pending, untouched
			case pick < 85:
				inq.Status = models.InquiryStatusRejected
				inq.AdminComment = "Does not meet onboarding requirements."
			default:
				inq.Status = models.InquiryStatusOnHold
				inq.AdminComment = "Waiting for business registration documents."
			}

			if inq.Status != models.InquiryStatusPending && len(admins) > 0 {
				admin := admins[r.Intn(len(admins))]
				processedAt := inq.CreatedAt.Add(time.Duration(r.Intn(48)+1) * time.Hour)
				inq.ProcessedByUserID = &admin.ID
				inq.ProcessedAt = &processedAt
			}
		})
		batch = append(batch, inquiry)
	}

	if len(batch) == 0 {
		return nil
	}
	return factory.CreateInquiriesBatch(batch)
}
