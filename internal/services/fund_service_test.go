package services

import (
	"testing"
	"time"

	"centsible/internal/models"
	"centsible/internal/testutil"
)

func TestGetFund(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewFundService(db)
	user := testutil.CreateTestUser(t, db)

	fund, err := svc.GetFund(user.ID)
	testutil.AssertNoError(t, err)
	if fund != nil {
		t.Fatal("expected nil fund before setup")
	}

	testutil.CreateTestFund(t, db, user.ID, 400000, 1200000, 6)

	fund, err = svc.GetFund(user.ID)
	testutil.AssertNoError(t, err)
	if fund == nil {
		t.Fatal("expected fund after setup")
	}
	if fund.CurrentAmount != 400000 {
		t.Errorf("expected current amount 400000, got %d", fund.CurrentAmount)
	}
}

func TestUpsertFund(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("create_with_explicit_goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFundService(db)
		user := testutil.CreateTestUser(t, db)

		current := int64(100000)
		goal := int64(900000)
		fund, err := svc.UpsertFund(user.ID, &current, &goal, nil, nil, now)
		testutil.AssertNoError(t, err)

		if fund.GoalAmount != 900000 {
			t.Errorf("expected goal 900000, got %d", fund.GoalAmount)
		}
		if fund.TargetMonths != 6 {
			t.Errorf("expected default target of 6 months, got %d", fund.TargetMonths)
		}
	})

	t.Run("create_derives_goal_from_expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFundService(db)
		user := testutil.CreateTestUser(t, db)
		account := testutil.CreateTestAccount(t, db, user.ID, models.AccountTypeChecking, 0)

		// 200000 of expenses in each of the last three months.
		for i := 0; i < 3; i++ {
			date := now.AddDate(0, -i, 0)
			testutil.CreateTestTransactionAt(t, db, user.ID, account.ID, models.TransactionTypeExpense, "rent", 200000, date)
		}

		months := 3
		fund, err := svc.UpsertFund(user.ID, nil, nil, &months, nil, now)
		testutil.AssertNoError(t, err)

		if fund.GoalAmount != 600000 {
			t.Errorf("expected derived goal 600000, got %d", fund.GoalAmount)
		}
	})

	t.Run("update_existing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFundService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestFund(t, db, user.ID, 100000, 900000, 6)

		current := int64(250000)
		fund, err := svc.UpsertFund(user.ID, &current, nil, nil, nil, now)
		testutil.AssertNoError(t, err)

		if fund.CurrentAmount != 250000 {
			t.Errorf("expected current amount 250000, got %d", fund.CurrentAmount)
		}
		if fund.GoalAmount != 900000 {
			t.Errorf("goal should be unchanged, got %d", fund.GoalAmount)
		}

		var count int64
		if err := db.Model(&models.EmergencyFund{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count funds: %v", err)
		}
		if count != 1 {
			t.Errorf("expected a single fund row, got %d", count)
		}
	})

	t.Run("rejects_bad_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFundService(db)
		user := testutil.CreateTestUser(t, db)

		negative := int64(-1)
		_, err := svc.UpsertFund(user.ID, &negative, nil, nil, nil, now)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		zero := 0
		_, err = svc.UpsertFund(user.ID, nil, nil, &zero, nil, now)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteFund(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewFundService(db)
	user := testutil.CreateTestUser(t, db)

	err := svc.DeleteFund(user.ID)
	testutil.AssertAppError(t, err, "FUND_NOT_CONFIGURED")

	testutil.CreateTestFund(t, db, user.ID, 100000, 900000, 6)
	testutil.AssertNoError(t, svc.DeleteFund(user.ID))

	fund, err := svc.GetFund(user.ID)
	testutil.AssertNoError(t, err)
	if fund != nil {
		t.Error("expected fund to be gone after delete")
	}
}
