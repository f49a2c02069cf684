package services

import (
	"testing"
	"time"

	"centsible/internal/models"
	"centsible/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Alex@Example.com", "password123", "Alex", "Doe")
		testutil.AssertNoError(t, err)

		if user.Email != "alex@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Password == "password123" {
			t.Error("password should be stored hashed")
		}
		if !user.IsActive {
			t.Error("expected new user to be active")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("dup@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("DUP@example.com", "different", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "password123", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("a@b.com", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("verify@example.com", "correct-horse", "", "")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "correct-horse") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "battery-staple") {
		t.Error("expected wrong password to fail")
	}
}

func TestAttemptLogin(t *testing.T) {
	t.Run("success_resets_failures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.CreateUser("login@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.AttemptLogin("login@example.com", "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")

		user, err := svc.AttemptLogin("login@example.com", "password123")
		testutil.AssertNoError(t, err)
		if user.FailedLoginAttempts != 0 {
			t.Errorf("expected failure counter reset, got %d", user.FailedLoginAttempts)
		}
		if user.LastLoginAt == nil {
			t.Error("expected last login timestamp to be set")
		}
		_ = created
	})

	t.Run("unknown_email_looks_like_bad_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("nobody@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("locks_after_repeated_failures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("lock@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		for i := 0; i < maxFailedLogins; i++ {
			_, err = svc.AttemptLogin("lock@example.com", "wrong")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		// Even the correct password is refused while locked.
		_, err = svc.AttemptLogin("lock@example.com", "password123")
		testutil.AssertAppError(t, err, "ACCOUNT_LOCKED")
	})

	t.Run("lock_expires", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("expired@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		past := time.Now().Add(-time.Minute)
		if err := db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
			"failed_login_attempts": maxFailedLogins,
			"locked_until":          past,
		}).Error; err != nil {
			t.Fatalf("failed to backdate lock: %v", err)
		}

		_, err = svc.AttemptLogin("expired@example.com", "password123")
		testutil.AssertNoError(t, err)
	})
}

func TestRefreshTokenHash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("refresh@example.com", "password123", "", "")
	testutil.AssertNoError(t, err)

	hash, err := svc.GetRefreshTokenHash(user.ID)
	testutil.AssertNoError(t, err)
	if hash != "" {
		t.Errorf("expected empty hash before storing, got %q", hash)
	}

	testutil.AssertNoError(t, svc.StoreRefreshTokenHash(user.ID, "abc123"))

	hash, err = svc.GetRefreshTokenHash(user.ID)
	testutil.AssertNoError(t, err)
	if hash != "abc123" {
		t.Errorf("expected stored hash, got %q", hash)
	}
}
