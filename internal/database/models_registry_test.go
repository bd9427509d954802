package database

import (
	"testing"

	modelspkg "eduhub/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesInquiry(t *testing.T) {
	found := false
	for _, model := range PersistentModels() {
		if _, ok := model.(*modelspkg.Inquiry); ok {
			found = true
			break
		}
	}
	require.True(t, found, "PersistentModels should include Inquiry")
}

func TestPersistentModels_IncludesAcademyAndUser(t *testing.T) {
	var hasAcademy, hasUser bool
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *modelspkg.Academy:
			hasAcademy = true
		case *modelspkg.User:
			hasUser = true
		}
	}
	require.True(t, hasAcademy, "PersistentModels should include Academy")
	require.True(t, hasUser, "PersistentModels should include User")
}
