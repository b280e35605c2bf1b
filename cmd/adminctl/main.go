// adminctl is a terminal version of the back office update utility. It
// talks to the database directly, like the web utility does.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gibraltarbank/gibraltar/infra"
	infra_repository "github.com/gibraltarbank/gibraltar/infra/repository"
	"github.com/gibraltarbank/gibraltar/pkg/config"
	"github.com/gibraltarbank/gibraltar/pkg/domain"
	"github.com/gibraltarbank/gibraltar/pkg/dto"
	"github.com/gibraltarbank/gibraltar/pkg/money"
	adminsvc "github.com/gibraltarbank/gibraltar/pkg/service/admin"
	"github.com/google/uuid"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	svc := adminsvc.New(infra_repository.NewUoW(db), slog.Default())
	ctx := context.Background()

	switch os.Args[1] {
	case "search":
		if len(os.Args) < 3 {
			fmt.Println("Usage: adminctl search <query>")
			return
		}
		profiles, err := svc.SearchProfiles(ctx, os.Args[2])
		if err != nil {
			color.Red("Search failed: %v", err)
			os.Exit(1)
		}
		if len(profiles) == 0 {
			color.Yellow("No profiles matched %q", os.Args[2])
			return
		}
		for _, p := range profiles {
			fmt.Printf("%s  %s  %s\n",
				color.CyanString(p.ID.String()), p.FullName, p.Email)
		}

	case "show":
		if len(os.Args) < 3 {
			fmt.Println("Usage: adminctl show <profile_id>")
			return
		}
		detail, err := svc.Detail(ctx, mustParse(os.Args[2]))
		if err != nil {
			color.Red("Lookup failed: %v", err)
			os.Exit(1)
		}
		printDetail(detail)

	case "set-balance":
		if len(os.Args) < 4 {
			fmt.Println("Usage: adminctl set-balance <account_id> <dollars>")
			return
		}
		dollars, err := strconv.ParseFloat(os.Args[3], 64)
		if err != nil {
			color.Red("Invalid amount: %v", err)
			os.Exit(1)
		}
		acct, err := svc.UpdateBalance(
			ctx, mustParse(os.Args[2]), money.Amount(math.Round(dollars*100)))
		if err != nil {
			color.Red("Balance update failed: %v", err)
			os.Exit(1)
		}
		color.Green("Account %s balance set to %s",
			acct.ID, money.FormatUSD(acct.Balance))

	case "set-status":
		if len(os.Args) < 4 {
			fmt.Println("Usage: adminctl set-status <transaction_id> <Pending|Completed|Failed>")
			return
		}
		txn, err := svc.UpdateTransactionStatus(
			ctx, mustParse(os.Args[2]),
			domain.TransactionStatus(os.Args[3]))
		if err != nil {
			color.Red("Status update failed: %v", err)
			os.Exit(1)
		}
		color.Green("Transaction %s is now %s", txn.ID, txn.Status)

	case "set-profile":
		if len(os.Args) < 5 {
			fmt.Println("Usage: adminctl set-profile <profile_id> <full_name> <email>")
			return
		}
		update := &dto.ProfileUpdate{
			FullName: &os.Args[3],
			Email:    &os.Args[4],
		}
		p, err := svc.UpdateProfile(ctx, mustParse(os.Args[2]), update)
		if err != nil {
			color.Red("Profile update failed: %v", err)
			os.Exit(1)
		}
		color.Green("Profile %s updated: %s <%s>", p.ID, p.FullName, p.Email)

	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: adminctl <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  search <query>")
	fmt.Println("  show <profile_id>")
	fmt.Println("  set-balance <account_id> <dollars>")
	fmt.Println("  set-status <transaction_id> <Pending|Completed|Failed>")
	fmt.Println("  set-profile <profile_id> <full_name> <email>")
}

func mustParse(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		color.Red("Invalid id %q: %v", s, err)
		os.Exit(1)
	}
	return id
}

func printDetail(detail *adminsvc.UserDetail) {
	p := detail.Profile
	fmt.Printf("%s %s <%s>\n",
		color.CyanString(p.ID.String()), p.FullName, p.Email)
	for _, a := range detail.Accounts {
		fmt.Printf("  %s %-10s %s\n",
			a.ID, a.AccountType, money.FormatUSD(a.Balance))
	}
	if len(detail.PendingTransactions) > 0 {
		color.Yellow("  Pending transactions:")
		for _, t := range detail.PendingTransactions {
			fmt.Printf("    %s  %s  %s  %s\n",
				t.ID, t.TransactionDate.Format("2006-01-02"),
				t.Description, money.FormatUSD(t.Amount))
		}
	}
}
