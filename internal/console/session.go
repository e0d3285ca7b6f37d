package console

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pesobank/pesobank/internal/apperrors"
	"github.com/pesobank/pesobank/internal/core/domain"
	portssvc "github.com/pesobank/pesobank/internal/core/ports/services"
	"github.com/pesobank/pesobank/internal/platform/logging"
)

// transactionTitles is the transaction menu in its stable 1-based order.
var transactionTitles = []string{
	"Register Account Name",
	"Deposit Amount",
	"Withdraw Amount",
	"Currency Exchange",
	"Record Exchange Rates",
	"Show Interest Amount",
}

// Session owns the account registry and rate table for the life of one
// operator conversation. It dispatches validated menu selections to the
// services and handles every transaction error locally, so the only errors
// it returns are I/O failures on the underlying streams.
type Session struct {
	services *portssvc.ServiceContainer
	prompter *Prompter
	validate *validator.Validate
}

// NewSession creates a Session over the given service container and streams.
func NewSession(services *portssvc.ServiceContainer, in io.Reader, out io.Writer) *Session {
	return &Session{
		services: services,
		prompter: NewPrompter(in, out),
		validate: validator.New(),
	}
}

// Run drives the main menu loop until the operator declines to continue.
func (s *Session) Run(ctx context.Context) error {
	logger := logging.GetLoggerFromCtx(ctx)
	logger.Info("Session started")

	for {
		s.prompter.Println("Select Transaction:")
		s.prompter.PrintChoices(transactionTitles)
		s.prompter.Println()

		choice, err := s.prompter.Prompt("> ")
		if err != nil {
			return err
		}
		s.prompter.Println()

		id, convErr := strconv.Atoi(choice)
		if convErr != nil {
			id = 0
		}
		if id >= 1 && id <= len(transactionTitles) {
			s.prompter.Println(transactionTitles[id-1])
		}

		var handlerErr error
		switch id {
		case 1:
			handlerErr = s.handleRegister(ctx)
		case 2:
			handlerErr = s.handleDeposit(ctx)
		case 3:
			handlerErr = s.handleWithdraw(ctx)
		case 4:
			handlerErr = s.handleExchange(ctx)
		case 5:
			handlerErr = s.handleRecordRates(ctx)
		case 6:
			handlerErr = s.handleInterest(ctx)
		default:
			logger.Debug("Unknown transaction selected",
				slog.String("input", choice),
				slog.String("error", apperrors.ErrUnknownTransaction.Error()))
			s.prompter.Println("No transaction with this ID exists!")
		}
		if handlerErr != nil {
			return handlerErr
		}

		s.prompter.Println()
		again, err := s.prompter.PromptYesNo("Back to the Main Menu (Y/N): ")
		if err != nil {
			return err
		}
		if !again {
			logger.Info("Session terminated")
			return nil
		}
		s.prompter.Println()
	}
}

// reportUnexpected logs an error no transaction-level handling matched and
// tells the operator the transaction failed.
func (s *Session) reportUnexpected(ctx context.Context, operation string, err error) {
	logging.GetLoggerFromCtx(ctx).Error("Transaction failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()))
	s.prompter.Println("Something went wrong! Please try again.")
}

// currencyTitles renders catalog currencies in their menu form.
func currencyTitles(currencies []domain.Currency) []string {
	titles := make([]string, len(currencies))
	for i, c := range currencies {
		titles[i] = c.Title()
	}
	return titles
}
