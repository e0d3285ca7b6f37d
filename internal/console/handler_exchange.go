package console

import (
	"context"
	"errors"
	"strconv"

	"github.com/pesobank/pesobank/internal/apperrors"
	"github.com/pesobank/pesobank/internal/core/domain"
	"github.com/pesobank/pesobank/internal/dto"
	"github.com/pesobank/pesobank/internal/utils"
)

// handleExchange runs the "Currency Exchange" transaction. Unlike the other
// transactions it loops, offering another quote after each one, until the
// operator answers N.
func (s *Session) handleExchange(ctx context.Context) error {
	for {
		if err := s.quoteExchange(ctx); err != nil {
			return err
		}
		s.prompter.Println()

		again, err := s.prompter.PromptYesNo("Convert another currency? (Y/N): ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		s.prompter.Println()
	}
}

// quoteExchange performs a single source→destination quote without touching
// any account.
func (s *Session) quoteExchange(ctx context.Context) error {
	currencies, err := s.services.Currency.ListCurrencies(ctx)
	if err != nil {
		s.reportUnexpected(ctx, "list currencies", err)
		return nil
	}
	titles := currencyTitles(currencies)

	s.prompter.Println("Source Currency Options:")
	s.prompter.PrintChoices(titles)
	s.prompter.Println()

	srcIdx, ok, err := s.promptCurrencyIndex("Source Currency: ", len(currencies))
	if err != nil || !ok {
		return err
	}

	amount, ok, err := s.promptAmount("Source Amount: ", "Amount must be a floating point number!")
	if err != nil || !ok {
		return err
	}

	s.prompter.Println()
	s.prompter.Println("Exchanged Currency Options:")
	s.prompter.PrintChoices(titles)
	s.prompter.Println()

	dstIdx, ok, err := s.promptCurrencyIndex("Exchange Currency: ", len(currencies))
	if err != nil || !ok {
		return err
	}

	result, convErr := s.services.ExchangeRate.Convert(ctx, amount,
		currencies[srcIdx-1].CurrencyCode, currencies[dstIdx-1].CurrencyCode)
	if convErr != nil {
		if errors.Is(convErr, apperrors.ErrUnknownCurrency) {
			s.prompter.Println("No currency with this code exists!")
		} else {
			s.reportUnexpected(ctx, "currency exchange", convErr)
		}
		return nil
	}

	s.prompter.Printf("Exchange Amount: %s\n", utils.FormatAmount(result))
	return nil
}

// handleRecordRates runs the "Record Exchange Rates" transaction.
func (s *Session) handleRecordRates(ctx context.Context) error {
	s.prompter.Println()

	currencies, err := s.services.Currency.ListCurrencies(ctx)
	if err != nil {
		s.reportUnexpected(ctx, "list currencies", err)
		return nil
	}

	// The home currency is first in the catalog; only foreign titles are shown.
	s.prompter.PrintChoices(currencyTitles(currencies[1:]))
	s.prompter.Println()

	// The entered number is a 1-based index into the full catalog, so 2
	// selects the first foreign currency. 1 is the home slot and is rejected
	// outright; the rate table would refuse it anyway.
	idx, ok, err := s.promptCurrencyIndex("Select Foreign Currency: ", len(currencies))
	if err != nil || !ok {
		return err
	}
	if domain.IsHome(currencies[idx-1].CurrencyCode) {
		s.prompter.Println("No foreign currency with this ID exists!")
		return nil
	}

	rate, ok, err := s.promptAmount("Exchange Rate: ", "Amount must be a floating point number!")
	if err != nil || !ok {
		return err
	}

	req := dto.RecordExchangeRateRequest{CurrencyCode: currencies[idx-1].CurrencyCode, Rate: rate}
	if err := s.validate.Struct(req); err != nil {
		s.prompter.Println("Exchange rate must be a positive number!")
		return nil
	}

	if _, err := s.services.ExchangeRate.RecordExchangeRate(ctx, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidRate):
			s.prompter.Println("Exchange rate must be a positive number!")
		case errors.Is(err, apperrors.ErrUnknownCurrency):
			s.prompter.Println("No foreign currency with this ID exists!")
		default:
			s.reportUnexpected(ctx, "record exchange rate", err)
		}
	}
	return nil
}

// promptCurrencyIndex reads a 1-based index into a currency menu of count
// entries. Negative or non-numeric input is rejected before range checking.
func (s *Session) promptCurrencyIndex(prompt string, count int) (int, bool, error) {
	raw, err := s.prompter.Prompt(prompt)
	if err != nil {
		return 0, false, err
	}

	idx, parseErr := strconv.ParseUint(raw, 10, 32)
	if parseErr != nil {
		s.prompter.Println("ID must be a positive whole number (integer)!")
		return 0, false, nil
	}
	if idx < 1 || int(idx) > count {
		s.prompter.Println("No currency with this ID exists!")
		return 0, false, nil
	}
	return int(idx), true, nil
}
