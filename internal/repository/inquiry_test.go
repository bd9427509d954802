package repository

import (
	"context"
	"errors"
	"testing"

	"eduhub/internal/models"

	"gorm.io/gorm"
)

func seedInquiries(t *testing.T, db *gorm.DB) []models.Inquiry {
	t.Helper()
	inquiries := []models.Inquiry{
		{AcademyName: "Seoul Coding Academy", FullName: "Kim Minji", Email: "minji@example.com", Phone: "010-1111-1111", Status: models.InquiryStatusPending},
		{AcademyName: "Busan Math Lab", FullName: "Lee Junho", Email: "junho@mathlab.kr", Phone: "010-2222-2222", Status: models.InquiryStatusApproved},
		{AcademyName: "Daejeon Science Hub", FullName: "Park Seoyeon", Email: "seoyeon@example.com", Phone: "010-3333-3333", Status: models.InquiryStatusRejected},
		{AcademyName: "Incheon English House", FullName: "Choi Coding", Email: "choi@english.io", Phone: "010-4444-4444", Status: models.InquiryStatusOnHold},
	}
	for i := range inquiries {
		if err := db.Create(&inquiries[i]).Error; err != nil {
			t.Fatalf("failed to seed inquiry: %v", err)
		}
	}
	return inquiries
}

func TestInquiryRepositoryCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)
	ctx := context.Background()

	inquiry := &models.Inquiry{
		AcademyName: "Gwangju Piano School",
		FullName:    "Jung Haeun",
		Email:       "haeun@example.com",
		Phone:       "010-5555-5555",
		Content:     "We teach piano to 200 students.",
		Status:      models.InquiryStatusPending,
	}
	if err := repo.Create(ctx, inquiry); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if inquiry.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	got, err := repo.GetByID(ctx, inquiry.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.AcademyName != "Gwangju Piano School" {
		t.Errorf("unexpected academy name %q", got.AcademyName)
	}
	if got.Status != models.InquiryStatusPending {
		t.Errorf("expected pending status, got %q", got.Status)
	}
}

func TestInquiryRepositoryGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	if err == nil {
		t.Fatal("expected error for missing inquiry")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected NOT_FOUND AppError, got %v", err)
	}
}

func TestInquiryRepositoryListStatusFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)
	seedInquiries(t, db)

	got, total, err := repo.List(context.Background(), InquiryFilter{
		Statuses: []models.InquiryStatus{models.InquiryStatusPending, models.InquiryStatusOnHold},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("expected 2 results, got total=%d len=%d", total, len(got))
	}
	for _, inq := range got {
		if inq.Status != models.InquiryStatusPending && inq.Status != models.InquiryStatusOnHold {
			t.Errorf("unexpected status %q in filtered results", inq.Status)
		}
	}
}

func TestInquiryRepositoryListSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)
	seedInquiries(t, db)

	// "coding" matches academy_name on one row and full_name on another.
	got, total, err := repo.List(context.Background(), InquiryFilter{Search: "CODING"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 matches, got %d", total)
	}
	names := map[string]bool{}
	for _, inq := range got {
		names[inq.AcademyName] = true
	}
	if !names["Seoul Coding Academy"] || !names["Incheon English House"] {
		t.Errorf("unexpected match set: %v", names)
	}

	// Email column is searched too.
	_, total, err = repo.List(context.Background(), InquiryFilter{Search: "mathlab"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 email match, got %d", total)
	}
}

func TestInquiryRepositoryListSort(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)
	seedInquiries(t, db)
	ctx := context.Background()

	asc, _, err := repo.List(ctx, InquiryFilter{SortField: "academy_name", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i := 1; i < len(asc); i++ {
		if asc[i-1].AcademyName > asc[i].AcademyName {
			t.Fatalf("results not sorted ascending: %q before %q", asc[i-1].AcademyName, asc[i].AcademyName)
		}
	}

	desc, _, err := repo.List(ctx, InquiryFilter{SortField: "academy_name", SortOrder: "desc"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if asc[0].AcademyName != desc[len(desc)-1].AcademyName {
		t.Errorf("descending order should reverse ascending order")
	}

	// Unknown sort columns fall back to created_at instead of erroring.
	if _, _, err := repo.List(ctx, InquiryFilter{SortField: "status; DROP TABLE inquiries"}); err != nil {
		t.Fatalf("List with bad sort field failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.Inquiry{}).Count(&count).Error; err != nil || count != 4 {
		t.Fatalf("table should be intact, count=%d err=%v", count, err)
	}
}

func TestInquiryRepositoryListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)
	seedInquiries(t, db)

	got, total, err := repo.List(context.Background(), InquiryFilter{
		SortField: "id", SortOrder: "asc", Limit: 2, Offset: 2,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 4 {
		t.Errorf("total should count all rows, got %d", total)
	}
	if len(got) != 2 {
		t.Fatalf("expected page of 2, got %d", len(got))
	}
}

func TestInquiryRepositoryCountByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)
	seedInquiries(t, db)

	counts, err := repo.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountByStatus failed: %v", err)
	}
	if counts[models.InquiryStatusPending] != 1 || counts[models.InquiryStatusApproved] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestInquiryFilterSignature(t *testing.T) {
	a := InquiryFilter{Statuses: []models.InquiryStatus{models.InquiryStatusPending}, Search: "Seoul", Limit: 20}
	b := InquiryFilter{Statuses: []models.InquiryStatus{models.InquiryStatusPending}, Search: "seoul", Limit: 20}
	c := InquiryFilter{Statuses: []models.InquiryStatus{models.InquiryStatusApproved}, Search: "seoul", Limit: 20}

	if a.Signature() != b.Signature() {
		t.Errorf("search term case should not change the signature")
	}
	if a.Signature() == c.Signature() {
		t.Errorf("different status sets must produce different signatures")
	}
}
