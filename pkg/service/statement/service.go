// Package statement renders a client's transaction history as a PDF
// statement.
package statement

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	"github.com/gibraltarbank/gibraltar/pkg/service/account"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

// statementTitle matches the fixed heading of the exported history.
const statementTitle = "Transaction History - D ESS 0001"

// Service renders PDF statements.
type Service struct {
	accounts *account.Service
	cfg      *config.Statement
	logger   *slog.Logger
}

// New creates a statement service.
func New(
	accounts *account.Service,
	cfg *config.Statement,
	logger *slog.Logger,
) *Service {
	return &Service{accounts: accounts, cfg: cfg, logger: logger}
}

// Filename returns the download name for a statement generated at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("statement_%s.pdf", t.Format("2006-01-02"))
}

// Render produces the full transaction history PDF for the given user.
func (s *Service) Render(
	ctx context.Context,
	userID uuid.UUID,
) ([]byte, error) {
	log := s.logger.With("handler", "Render", "user_id", userID)
	log.Debug("rendering statement")

	transactions, err := s.accounts.TransactionsAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	total, err := s.accounts.TotalBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	// Bank name top left, institution address beneath it.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(10, 18, s.cfg.BankName)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.Text(10, 26, s.cfg.AddressLine1)
	pdf.Text(10, 30, s.cfg.AddressLine2)

	// Centered title and right-aligned subtitle.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	titleWidth := pdf.GetStringWidth(statementTitle)
	pdf.Text((pageWidth-titleWidth)/2, 40, statementTitle)

	pdf.SetFont("Helvetica", "", 11)
	subtitle := s.cfg.BankName
	pdf.Text(pageWidth-10-pdf.GetStringWidth(subtitle), 15, subtitle)

	// Transaction table.
	headers := []string{"Date", "Description", "Amount", "Type", "Status"}
	widths := []float64{28, 72, 30, 28, 32}

	pdf.SetY(48)
	pdf.SetX(10)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(52, 58, 64)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(245, 245, 245)
	for _, t := range transactions {
		pdf.SetX(10)
		row := []string{
			t.TransactionDate.Format("Jan 2, 2006"),
			t.Description,
			money.FormatUSD(t.Amount),
			string(t.Type),
			string(t.Status),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	// Balance summary, right aligned under the table.
	summary := "Total Balance: " + money.FormatUSD(total)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(10)
	pdf.CellFormat(pageWidth-20, 8, summary, "", 0, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Error("statement rendering failed", "error", err)
		return nil, err
	}
	log.Info("statement rendered",
		"transactions", len(transactions), "bytes", buf.Len())
	return buf.Bytes(), nil
}
