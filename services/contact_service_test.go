package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"devsfusion-backend/models"
)

func seedContacts(t *testing.T, svc *ContactService) []models.Contact {
	t.Helper()
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	contacts := []models.Contact{
		{Name: "A", Email: "a@example.com", Subject: "s1", Message: "m", Status: models.ContactStatusUnread, CreatedAt: base},
		{Name: "B", Email: "b@example.com", Subject: "s2", Message: "m", Status: models.ContactStatusUnread, CreatedAt: base.Add(time.Minute)},
		{Name: "C", Email: "c@example.com", Subject: "s3", Message: "m", Status: models.ContactStatusUnread, CreatedAt: base.Add(2 * time.Minute)},
		{Name: "D", Email: "d@example.com", Subject: "s4", Message: "m", Status: models.ContactStatusReplied, CreatedAt: base.Add(3 * time.Minute)},
	}
	for i := range contacts {
		require.NoError(t, svc.Create(&contacts[i]))
	}
	return contacts
}

func TestContactStatsAllBucketsPresent(t *testing.T) {
	svc := NewContactService(newTestDB(t))
	seedContacts(t, svc)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.Total)
	assert.EqualValues(t, 3, stats.Unread)
	assert.EqualValues(t, 0, stats.Read)
	assert.EqualValues(t, 1, stats.Replied)
	assert.EqualValues(t, 0, stats.Archived)
}

func TestContactStatsEmptyStore(t *testing.T) {
	svc := NewContactService(newTestDB(t))

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.Total)
	assert.EqualValues(t, 0, stats.Unread)
}

func TestContactListStatusFilter(t *testing.T) {
	svc := NewContactService(newTestDB(t))
	seedContacts(t, svc)

	contacts, total, err := svc.List(models.ContactStatusReplied, ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, contacts, 1)
	assert.Equal(t, "D", contacts[0].Name)
}

func TestContactUpdateStatus(t *testing.T) {
	svc := NewContactService(newTestDB(t))
	seeded := seedContacts(t, svc)

	updated, err := svc.UpdateStatus(seeded[0].ID, models.ContactStatusArchived)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusArchived, updated.Status)

	_, err = svc.UpdateStatus(9999, models.ContactStatusRead)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContactMarkEmailSent(t *testing.T) {
	svc := NewContactService(newTestDB(t))
	seeded := seedContacts(t, svc)

	require.False(t, seeded[0].EmailSent)
	require.NoError(t, svc.MarkEmailSent(seeded[0].ID))

	fetched, err := svc.GetByID(seeded[0].ID)
	require.NoError(t, err)
	assert.True(t, fetched.EmailSent)
}

func TestValidContactStatus(t *testing.T) {
	for _, s := range models.ContactStatuses {
		assert.True(t, models.ValidContactStatus(s))
	}
	assert.False(t, models.ValidContactStatus("spam"))
	assert.False(t, models.ValidContactStatus(""))
	assert.False(t, models.ValidContactStatus("Unread"))
}
