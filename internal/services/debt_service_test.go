package services

import (
	"testing"
	"time"

	"centsible/internal/models"
	"centsible/internal/pagination"
	"centsible/internal/testutil"
)

func TestCreateDebt(t *testing.T) {
	t.Run("valid_defaults_to_avalanche", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		debt, err := svc.CreateDebt(user.ID, "Visa", 500000, 18.99, 15000, nil, "", "")
		testutil.AssertNoError(t, err)

		if debt.Strategy != models.DebtStrategyAvalanche {
			t.Errorf("expected default avalanche strategy, got %s", debt.Strategy)
		}
	})

	t.Run("rejects_bad_input", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateDebt(user.ID, "", 500000, 18.99, 15000, nil, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateDebt(user.ID, "Visa", 0, 18.99, 15000, nil, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateDebt(user.ID, "Visa", 500000, -1, 15000, nil, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateDebt(user.ID, "Visa", 500000, 18.99, 15000, nil, models.DebtStrategy("tsunami"), "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateDebt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewDebtService(db)
	user := testutil.CreateTestUser(t, db)
	debt := testutil.CreateTestDebt(t, db, user.ID, 500000, 18.99, 15000)

	balance := int64(400000)
	strategy := models.DebtStrategySnowball
	updated, err := svc.UpdateDebt(user.ID, debt.ID, DebtUpdateFields{Balance: &balance, Strategy: &strategy})
	testutil.AssertNoError(t, err)

	if updated.Balance != 400000 {
		t.Errorf("expected balance 400000, got %d", updated.Balance)
	}
	if updated.Strategy != models.DebtStrategySnowball {
		t.Errorf("expected snowball strategy, got %s", updated.Strategy)
	}

	zero := int64(0)
	_, err = svc.UpdateDebt(user.ID, debt.ID, DebtUpdateFields{Balance: &zero})
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	other := testutil.CreateTestUser(t, db)
	_, err = svc.UpdateDebt(other.ID, debt.ID, DebtUpdateFields{Balance: &balance})
	testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
}

func TestDeleteDebt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewDebtService(db)
	user := testutil.CreateTestUser(t, db)
	debt := testutil.CreateTestDebt(t, db, user.ID, 500000, 18.99, 15000)

	testutil.AssertNoError(t, svc.DeleteDebt(user.ID, debt.ID))

	_, err := svc.GetDebtByID(user.ID, debt.ID)
	testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
}

func TestGetPayoffProjection(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("extra_payment_shortens_payoff", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, user.ID, 500000, 18.99, 15000)

		base, err := svc.GetPayoffProjection(user.ID, debt.ID, 0, now)
		testutil.AssertNoError(t, err)
		boosted, err := svc.GetPayoffProjection(user.ID, debt.ID, 10000, now)
		testutil.AssertNoError(t, err)

		if base.Projection.Unpayable || boosted.Projection.Unpayable {
			t.Fatal("expected both plans to be payable")
		}
		if boosted.Projection.Months >= base.Projection.Months {
			t.Errorf("extra payment should shorten payoff: %d vs %d months", boosted.Projection.Months, base.Projection.Months)
		}
		if boosted.MonthlyPayment != 25000 {
			t.Errorf("expected monthly payment 25000, got %d", boosted.MonthlyPayment)
		}
	})

	t.Run("payment_below_interest_is_unpayable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, user.ID, 500000, 18.99, 5000)

		projection, err := svc.GetPayoffProjection(user.ID, debt.ID, 0, now)
		testutil.AssertNoError(t, err)
		if !projection.Projection.Unpayable {
			t.Error("expected projection to be unpayable")
		}
	})

	t.Run("negative_extra_payment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, user.ID, 500000, 18.99, 15000)

		_, err := svc.GetPayoffProjection(user.ID, debt.ID, -1, now)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetPayoffPlan(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewDebtService(db)
	user := testutil.CreateTestUser(t, db)

	small := testutil.CreateTestDebt(t, db, user.ID, 100000, 22.0, 5000)
	large := testutil.CreateTestDebt(t, db, user.ID, 900000, 6.5, 20000)

	t.Run("snowball_orders_by_balance", func(t *testing.T) {
		plan, err := svc.GetPayoffPlan(user.ID, models.DebtStrategySnowball, now)
		testutil.AssertNoError(t, err)

		if len(plan.Debts) != 2 {
			t.Fatalf("expected 2 debts in plan, got %d", len(plan.Debts))
		}
		if plan.Debts[0].Debt.ID != small.ID {
			t.Error("snowball should list the smallest balance first")
		}
		if plan.TotalBalance != 1000000 {
			t.Errorf("expected total balance 1000000, got %d", plan.TotalBalance)
		}
		if plan.MonthlyPayments != 25000 {
			t.Errorf("expected monthly payments 25000, got %d", plan.MonthlyPayments)
		}
	})

	t.Run("avalanche_orders_by_rate", func(t *testing.T) {
		plan, err := svc.GetPayoffPlan(user.ID, models.DebtStrategyAvalanche, now)
		testutil.AssertNoError(t, err)

		if plan.Debts[0].Debt.ID != small.ID {
			t.Error("avalanche should list the highest rate first")
		}
		_ = large
	})

	t.Run("empty_plan", func(t *testing.T) {
		lonely := testutil.CreateTestUser(t, db)
		plan, err := svc.GetPayoffPlan(lonely.ID, "", now)
		testutil.AssertNoError(t, err)
		if len(plan.Debts) != 0 || plan.TotalBalance != 0 {
			t.Errorf("expected empty plan, got %+v", plan)
		}
		if plan.Strategy != models.DebtStrategyAvalanche {
			t.Errorf("expected default strategy avalanche, got %s", plan.Strategy)
		}
	})
}
