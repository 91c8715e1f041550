package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanMobileNumber(t *testing.T) {
	assert.Equal(t, "9876543210", cleanMobileNumber("98765-43210"))
	assert.Equal(t, "919876543210", cleanMobileNumber("+91 (98765) 43210"))
	assert.Equal(t, "9876543210", cleanMobileNumber("9876543210"))
	assert.Equal(t, "", cleanMobileNumber("abc"))
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, 10, date.Day())

	_, err = parseDate("10-03-2025")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = parseDate("")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = parseDate("2025-13-40")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestParseDateSameDayIsNotPast(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	orig := time.Local
	time.Local = loc
	defer func() { time.Local = orig }()

	day, err := parseDate(time.Now().Format("2006-01-02"))
	require.NoError(t, err)
	assert.True(t, day.Equal(today()))
	assert.False(t, day.Before(today()), "a booking dated today must not count as past")
}

func TestParseTimeOfDay(t *testing.T) {
	slot, err := parseTimeOfDay("09:30")
	assert.NoError(t, err)
	assert.Equal(t, "09:30", slot)

	_, err = parseTimeOfDay("9:30 AM")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = parseTimeOfDay("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_slot"}
	assert.True(t, isDuplicateKeyError(dup, "uq_appointments_slot"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("insert: %w", dup), "appointments_slot"))
	assert.False(t, isDuplicateKeyError(dup, "mobile_number"))

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_doctors_specialization"}
	assert.False(t, isDuplicateKeyError(fk, "specialization"))
	assert.True(t, isForeignKeyError(fk, "specialization"))

	assert.False(t, isDuplicateKeyError(fmt.Errorf("plain error"), "anything"))
}
