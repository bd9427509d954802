package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix          = "user:%d"
	AcademyKeyPrefix       = "academy:%d"
	AdminInquiryListPrefix = "inquiries:admin:%s"
)

const (
	UserTTL             = 5 * time.Minute
	AcademyTTL          = 10 * time.Minute
	AdminInquiryListTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func AcademyKey(academyID uint) string {
	return fmt.Sprintf(AcademyKeyPrefix, academyID)
}

// AdminInquiryListKey keys a cached admin listing page by its filter signature.
func AdminInquiryListKey(signature string) string {
	return fmt.Sprintf(AdminInquiryListPrefix, signature)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateAcademy(ctx context.Context, academyID uint) {
	Invalidate(ctx, AcademyKey(academyID))
}

// InvalidateInquiryListings drops every cached admin listing page. Listing keys
// embed their filter signature, so invalidation scans by prefix.
func InvalidateInquiryListings(ctx context.Context) {
	if client == nil {
		return
	}
	pattern := fmt.Sprintf(AdminInquiryListPrefix, "*")
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
