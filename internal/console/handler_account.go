package console

import (
	"context"
	"errors"
	"strings"

	"github.com/pesobank/pesobank/internal/apperrors"
	"github.com/pesobank/pesobank/internal/core/domain"
	"github.com/pesobank/pesobank/internal/dto"
	"github.com/pesobank/pesobank/internal/utils"
	"github.com/shopspring/decimal"
)

// handleRegister runs the "Register Account Name" transaction.
// A successful registration prints nothing.
func (s *Session) handleRegister(ctx context.Context) error {
	name, err := s.prompter.Prompt("Account Name: ")
	if err != nil {
		return err
	}

	req := dto.RegisterAccountRequest{Name: name}
	if err := s.validate.Struct(req); err != nil {
		s.prompter.Println("Account name must not be empty!")
		return nil
	}

	if _, err := s.services.Account.RegisterAccount(ctx, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			s.prompter.Println("An account with this name already exists!")
		case errors.Is(err, apperrors.ErrValidation):
			s.prompter.Println("Account name must not be empty!")
		default:
			s.reportUnexpected(ctx, "register account", err)
		}
	}
	return nil
}

// handleDeposit runs the "Deposit Amount" transaction.
func (s *Session) handleDeposit(ctx context.Context) error {
	account, ok, err := s.promptAccount(ctx)
	if err != nil || !ok {
		return err
	}
	s.prompter.Printf("Current Balance: %s\n", utils.FormatAmount(account.Balance))

	currency, ok, err := s.promptCurrencyCode(ctx)
	if err != nil || !ok {
		return err
	}
	s.prompter.Println()

	amount, ok, err := s.promptAmount("Deposit Amount: ", "Deposit amount must be a floating point number!")
	if err != nil || !ok {
		return err
	}

	req := dto.DepositRequest{AccountName: account.Name, CurrencyCode: currency, Amount: amount}
	if err := s.validate.Struct(req); err != nil {
		s.prompter.Println("Deposit amount must be a floating point number!")
		return nil
	}

	updated, err := s.services.Account.Deposit(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			s.prompter.Println("Deposit amount must be a floating point number!")
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			s.prompter.Println("No currency with this code exists!")
		case errors.Is(err, apperrors.ErrNotFound):
			s.prompter.Println("No account with this name exists!")
		default:
			s.reportUnexpected(ctx, "deposit", err)
		}
		return nil
	}

	resp := dto.ToAccountResponse(updated)
	s.prompter.Printf("Updated Balance: %s\n", utils.FormatAmount(resp.Balance))
	return nil
}

// handleWithdraw runs the "Withdraw Amount" transaction. A withdrawal that
// would overdraw the account fails and leaves the balance unchanged.
func (s *Session) handleWithdraw(ctx context.Context) error {
	account, ok, err := s.promptAccount(ctx)
	if err != nil || !ok {
		return err
	}
	s.prompter.Printf("Current Balance: %s\n", utils.FormatAmount(account.Balance))

	currency, ok, err := s.promptCurrencyCode(ctx)
	if err != nil || !ok {
		return err
	}
	s.prompter.Println()

	amount, ok, err := s.promptAmount("Withdraw Amount: ", "Withdraw amount must be a floating point number!")
	if err != nil || !ok {
		return err
	}

	req := dto.WithdrawRequest{AccountName: account.Name, CurrencyCode: currency, Amount: amount}
	if err := s.validate.Struct(req); err != nil {
		s.prompter.Println("Withdraw amount must be a floating point number!")
		return nil
	}

	updated, err := s.services.Account.Withdraw(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			s.prompter.Println("Withdraw amount must be less than the current balance!")
		case errors.Is(err, apperrors.ErrInvalidAmount):
			s.prompter.Println("Withdraw amount must be a floating point number!")
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			s.prompter.Println("No currency with this code exists!")
		case errors.Is(err, apperrors.ErrNotFound):
			s.prompter.Println("No account with this name exists!")
		default:
			s.reportUnexpected(ctx, "withdraw", err)
		}
		return nil
	}

	resp := dto.ToAccountResponse(updated)
	s.prompter.Printf("Updated Balance: %s\n", utils.FormatAmount(resp.Balance))
	return nil
}

// promptAccount asks for an owner name and resolves the account. The second
// return value reports whether the transaction should proceed.
func (s *Session) promptAccount(ctx context.Context) (*domain.Account, bool, error) {
	name, err := s.prompter.Prompt("Account Name: ")
	if err != nil {
		return nil, false, err
	}

	account, lookupErr := s.services.Account.GetAccountByName(ctx, name)
	if lookupErr != nil {
		if errors.Is(lookupErr, apperrors.ErrNotFound) {
			s.prompter.Println("No account with this name exists!")
		} else {
			s.reportUnexpected(ctx, "find account", lookupErr)
		}
		return nil, false, nil
	}
	return account, true, nil
}

// promptCurrencyCode asks for a currency code and checks it against the catalog.
func (s *Session) promptCurrencyCode(ctx context.Context) (string, bool, error) {
	code, err := s.prompter.Prompt("Currency: ")
	if err != nil {
		return "", false, err
	}
	code = strings.ToUpper(code)

	if _, lookupErr := s.services.Currency.GetCurrencyByCode(ctx, code); lookupErr != nil {
		s.prompter.Println("No currency with this code exists!")
		return "", false, nil
	}
	return code, true, nil
}

// promptAmount asks for a monetary value; parse failures print parseMsg.
func (s *Session) promptAmount(prompt, parseMsg string) (decimal.Decimal, bool, error) {
	raw, err := s.prompter.Prompt(prompt)
	if err != nil {
		return decimal.Decimal{}, false, err
	}

	amount, parseErr := decimal.NewFromString(raw)
	if parseErr != nil {
		s.prompter.Println(parseMsg)
		return decimal.Decimal{}, false, nil
	}
	return amount, true, nil
}
