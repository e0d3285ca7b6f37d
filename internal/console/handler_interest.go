package console

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/pesobank/pesobank/internal/apperrors"
	"github.com/pesobank/pesobank/internal/dto"
	"github.com/pesobank/pesobank/internal/platform/logging"
	"github.com/pesobank/pesobank/internal/utils"
)

// handleInterest runs the "Show Interest Amount" transaction: a per-day
// projection of interest on the account's current balance.
func (s *Session) handleInterest(ctx context.Context) error {
	account, ok, err := s.promptAccount(ctx)
	if err != nil || !ok {
		return err
	}

	s.prompter.Printf("Current Balance: %s\n", utils.FormatAmount(account.Balance))
	s.prompter.Printf("Currency: %s\n", account.CurrencyCode)
	s.prompter.Printf("Interest Rate: %d%%\n", s.services.Interest.AnnualRatePercent())
	s.prompter.Println()

	raw, err := s.prompter.Prompt("Total Number of Days: ")
	if err != nil {
		return err
	}
	days, parseErr := strconv.ParseUint(raw, 10, 32)
	if parseErr != nil {
		logging.GetLoggerFromCtx(ctx).Debug("Rejected projection horizon",
			slog.String("input", raw),
			slog.String("error", apperrors.ErrInvalidDayCount.Error()))
		s.prompter.Println("Number must be a positive whole number (integer)!")
		return nil
	}
	s.prompter.Println()

	req := dto.InterestProjectionRequest{AccountName: account.Name, Days: uint32(days)}
	schedule, projErr := s.services.Interest.ProjectInterest(ctx, req)
	if projErr != nil {
		if errors.Is(projErr, apperrors.ErrNotFound) {
			s.prompter.Println("No account with this name exists!")
		} else {
			s.reportUnexpected(ctx, "interest projection", projErr)
		}
		return nil
	}

	s.prompter.Println("Day | Interest | Balance |")
	for _, entry := range schedule.Entries {
		s.prompter.Printf("%-3d | %-8s | %-7s |\n",
			entry.Day,
			utils.FormatAmount(entry.Interest),
			utils.FormatAmount(entry.Balance))
	}
	return nil
}
