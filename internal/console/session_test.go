package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pesobank/pesobank/internal/console"
	"github.com/pesobank/pesobank/internal/core/services"
	"github.com/pesobank/pesobank/internal/platform/config"
	"github.com/pesobank/pesobank/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSession drives a full session with scripted input and returns everything
// written to the operator.
func runSession(t *testing.T, input string) string {
	t.Helper()

	cfg := &config.Config{
		LogLevel:           "error",
		AnnualInterestRate: decimal.NewFromFloat(0.05),
	}
	accountRepo := memory.NewAccountRepository()
	rateRepo := memory.NewExchangeRateRepository()
	svcs := services.NewServiceContainer(cfg, accountRepo, rateRepo)

	ctx := context.Background()
	require.NoError(t, svcs.ExchangeRate.InitializeRates(ctx))

	var out bytes.Buffer
	session := console.NewSession(svcs, strings.NewReader(input), &out)
	require.NoError(t, session.Run(ctx))
	return out.String()
}

func TestSession_MenuRendering(t *testing.T) {
	output := runSession(t, "9\nN\n")

	assert.Contains(t, output, "Select Transaction:")
	assert.Contains(t, output, "[1] Register Account Name")
	assert.Contains(t, output, "[6] Show Interest Amount")
	assert.Contains(t, output, "No transaction with this ID exists!")
}

func TestSession_RegisterThenDuplicate(t *testing.T) {
	output := runSession(t, "1\nAlice\nY\n1\nAlice\nN\n")

	assert.Equal(t, 1, strings.Count(output, "An account with this name already exists!"))
}

func TestSession_RegisterEmptyName(t *testing.T) {
	output := runSession(t, "1\n\nN\n")

	assert.Contains(t, output, "Account name must not be empty!")
}

func TestSession_DepositHomeCurrency(t *testing.T) {
	output := runSession(t, "1\nBob\nY\n2\nBob\nPHP\n100\nN\n")

	assert.Contains(t, output, "Current Balance: 0.00")
	assert.Contains(t, output, "Updated Balance: 100.00")
}

func TestSession_DepositForeignAtDefaultRate(t *testing.T) {
	output := runSession(t, "1\nCara\nY\n2\nCara\nusd\n50\nN\n")

	// Codes are uppercased before lookup; all rates start at 1.0.
	assert.Contains(t, output, "Updated Balance: 50.00")
}

func TestSession_RecordRateThenDeposit(t *testing.T) {
	// 2 is the 1-based catalog index of USD.
	output := runSession(t, "5\n2\n55\nY\n1\nDan\nY\n2\nDan\nUSD\n10\nN\n")

	assert.Contains(t, output, "Updated Balance: 550.00")
}

func TestSession_RecordRateRejectsHomeSlot(t *testing.T) {
	output := runSession(t, "5\n1\nN\n")

	assert.Contains(t, output, "No foreign currency with this ID exists!")
}

func TestSession_RecordRateRejectsNonPositive(t *testing.T) {
	output := runSession(t, "5\n2\n-3\nN\n")

	assert.Contains(t, output, "Exchange rate must be a positive number!")
}

func TestSession_WithdrawOverdraftIsNoOp(t *testing.T) {
	input := "1\nEve\nY\n" +
		"2\nEve\nPHP\n100\nY\n" +
		"3\nEve\nPHP\n200\nY\n" +
		"3\nEve\nPHP\n100\nN\n"
	output := runSession(t, input)

	assert.Contains(t, output, "Withdraw amount must be less than the current balance!")
	// The failed withdrawal left the full 100 available.
	assert.Contains(t, output, "Updated Balance: 0.00")
}

func TestSession_DepositUnknownCurrency(t *testing.T) {
	output := runSession(t, "1\nBob\nY\n2\nBob\nXXX\nN\n")

	assert.Contains(t, output, "No currency with this code exists!")
}

func TestSession_DepositInvalidAmount(t *testing.T) {
	output := runSession(t, "1\nBob\nY\n2\nBob\nPHP\nabc\nN\n")

	assert.Contains(t, output, "Deposit amount must be a floating point number!")
}

func TestSession_ExchangeQuotePivotsThroughHome(t *testing.T) {
	input := "5\n2\n55\nY\n" + // USD → 55
		"5\n3\n0.4\nY\n" + // JPY → 0.4
		"4\n2\n2\n3\nN\nN\n" // quote 2 USD → JPY
	output := runSession(t, input)

	assert.Contains(t, output, "Source Currency Options:")
	assert.Contains(t, output, "[2] United States Dollar (USD)")
	assert.Contains(t, output, "Exchange Amount: 44.00")
}

func TestSession_ExchangeRepeats(t *testing.T) {
	input := "4\n1\n5\n1\nY\n1\n7\n1\nN\nN\n"
	output := runSession(t, input)

	assert.Contains(t, output, "Exchange Amount: 5.00")
	assert.Contains(t, output, "Exchange Amount: 7.00")
	assert.Contains(t, output, "Convert another currency? (Y/N): ")
}

func TestSession_ExchangeInvalidIndex(t *testing.T) {
	output := runSession(t, "4\n0\nN\nN\n")

	assert.Contains(t, output, "No currency with this ID exists!")
}

func TestSession_ExchangeNonNumericIndex(t *testing.T) {
	output := runSession(t, "4\n-2\nN\nN\n")

	assert.Contains(t, output, "ID must be a positive whole number (integer)!")
}

func TestSession_InterestProjection(t *testing.T) {
	input := "1\nFay\nY\n" +
		"2\nFay\nPHP\n10000\nY\n" +
		"6\nFay\n3\nN\n"
	output := runSession(t, input)

	assert.Contains(t, output, "Interest Rate: 5%")
	assert.Contains(t, output, "Day | Interest | Balance |")
	assert.Contains(t, output, "1   | 1.37     | 10001.37 |")
	assert.Contains(t, output, "2   | 1.37     | 10002.74 |")
	assert.Contains(t, output, "3   | 1.37     | 10004.11 |")
}

func TestSession_InterestInvalidDayCount(t *testing.T) {
	output := runSession(t, "1\nFay\nY\n6\nFay\n-1\nN\n")

	assert.Contains(t, output, "Number must be a positive whole number (integer)!")
}

func TestSession_InvalidYesNoReprompts(t *testing.T) {
	output := runSession(t, "9\nmaybe\nY\n9\nN\n")

	assert.Contains(t, output, "Only accepting a [Y]es or [N]o answer!")
	assert.Equal(t, 2, strings.Count(output, "No transaction with this ID exists!"))
}
