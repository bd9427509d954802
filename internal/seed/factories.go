// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"eduhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		FullName: gofakeit.Name(),
		Email:    gofakeit.Email(),
		Role:     models.PlatformRoleUser,
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s> (%s)", user.FullName, user.Email, user.Role)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildInquiry constructs an inquiry struct without persisting it.
// Useful for batching.
func (f *Factory) BuildInquiry(overrides ...func(*models.Inquiry)) *models.Inquiry {
	inquiry := &models.Inquiry{
		AcademyName: fmt.Sprintf("%s %s", gofakeit.City(), academySuffix()),
		FullName:    gofakeit.Name(),
		Email:       gofakeit.Email(),
		Phone:       gofakeit.Phone(),
		Content:     gofakeit.Paragraph(1, 2, 8, " "),
		Status:      models.InquiryStatusPending,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	inquiry.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(inquiry)
	}
	return inquiry
}

// CreateInquiriesBatch persists multiple inquiries in a single DB call when possible.
func (f *Factory) CreateInquiriesBatch(inquiries []*models.Inquiry) error {
	if f.opts.DryRun {
		for _, inquiry := range inquiries {
			f.nextID++
			inquiry.ID = f.nextID
		}
		log.Printf("[dry-run] CreateInquiriesBatch: %d inquiries (no DB write)", len(inquiries))
		return nil
	}
	return f.db.Create(&inquiries).Error
}

// CreateAcademy constructs and persists a sample `models.Academy`.
func (f *Factory) CreateAcademy(overrides ...func(*models.Academy)) (*models.Academy, error) {
	academy := &models.Academy{
		Name: fmt.Sprintf("%s %s", gofakeit.City(), academySuffix()),
	}

	for _, override := range overrides {
		override(academy)
	}

	if f.opts.DryRun {
		f.nextID++
		academy.ID = f.nextID
		log.Printf("[dry-run] CreateAcademy: %s", academy.Name)
		return academy, nil
	}

	if err := f.db.Create(academy).Error; err != nil {
		return nil, err
	}
	return academy, nil
}

var academySuffixes = []string{
	"Coding Academy", "Math Lab", "Science School", "English House",
	"Music Institute", "Art Studio", "Robotics Center", "Language School",
}

func academySuffix() string {
	return academySuffixes[gofakeit.Number(0, len(academySuffixes)-1)]
}
