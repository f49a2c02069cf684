package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"centsible/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates an account of the given type and value (in cents).
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string, accountType models.AccountType, value int64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Account %d", nextID()),
		Type:     accountType,
		Value:    value,
		Currency: "USD",
		IsActive: true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestTransaction creates a transaction of the given type, category,
// and amount (positive magnitude in cents) dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, accountID string, txType models.TransactionType, category string, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, userID, accountID, txType, category, amount, time.Now())
}

// CreateTestTransactionAt creates a transaction dated at the given time.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, userID, accountID string, txType models.TransactionType, category string, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:    userID,
		AccountID: accountID,
		Type:      txType,
		Category:  category,
		Amount:    amount,
		Date:      date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates an active monthly budget for the given category.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, category string, amount int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		StartDate: time.Now().Truncate(24 * time.Hour),
		IsActive:  true,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestDebt creates a debt with the given balance (in cents), annual
// rate (percent), and minimum payment (in cents).
func CreateTestDebt(t *testing.T, db *gorm.DB, userID string, balance int64, rate float64, minPayment int64) *models.Debt {
	t.Helper()

	debt := &models.Debt{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Debt %d", nextID()),
		Balance:      balance,
		InterestRate: rate,
		MinPayment:   minPayment,
		Strategy:     models.DebtStrategyAvalanche,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// CreateTestFund creates an emergency fund for the user.
func CreateTestFund(t *testing.T, db *gorm.DB, userID string, current, goal int64, targetMonths int) *models.EmergencyFund {
	t.Helper()

	fund := &models.EmergencyFund{
		UserID:        userID,
		CurrentAmount: current,
		GoalAmount:    goal,
		TargetMonths:  targetMonths,
	}
	if err := db.Create(fund).Error; err != nil {
		t.Fatalf("failed to create test emergency fund: %v", err)
	}
	return fund
}
