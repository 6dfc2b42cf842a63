package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"kopilka/internal/config"
	"kopilka/internal/core"
	"kopilka/internal/ledger"
	"kopilka/internal/ledger/csvfile"
	gsheet "kopilka/internal/ledger/google"
	applog "kopilka/internal/log"
	"kopilka/internal/logtable"
	"kopilka/internal/quotes"
	"kopilka/internal/reports"
	"kopilka/internal/search"
	"kopilka/internal/settings"
	"kopilka/internal/views"
)

func main() {
	date := flag.String("date", time.Now().Format(core.DateTimeLayout),
		"dashboard anchor datetime (YYYY-MM-DD HH:MM:SS)")
	reportDate := flag.String("report-date", "", "report anchor date (YYYY-MM-DD, empty = today)")
	category := flag.String("category", "", "build the category spending report")
	month := flag.String("month", "", "month (YYYY-MM) for cashback and roundup analysis")
	limit := flag.Int("limit", 50, "round-up limit for the investment analysis")
	query := flag.String("query", "", "simple search query")
	phones := flag.Bool("phones", false, "find transactions with phone numbers")
	transfers := flag.Bool("transfers", false, "find personal transfers")
	save := flag.Bool("save", false, "persist report results as JSON artifacts")
	flag.Parse()

	// .env is optional; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	handler, logFile, err := applog.NewActivityHandler(cfg.LogFile, slog.LevelInfo)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := applog.New(applog.Config{Component: applog.ComponentApp, Handler: handler})
	applog.SetDefault(logger)

	ctx := context.Background()

	var loader ledger.Loader
	switch cfg.LedgerBackend {
	case "sheets":
		cli, err := gsheet.NewFromEnv(ctx, logger)
		if err != nil {
			logger.Error("failed to initialize sheets backend", applog.FieldError, err)
			os.Exit(1)
		}
		loader = cli
		logger.Info("initialized sheets backend", applog.FieldBackend, cfg.LedgerBackend)
	default:
		loader = csvfile.New(cfg.OperationsFile, logger)
		logger.Info("initialized csv backend",
			applog.FieldBackend, cfg.LedgerBackend,
			applog.FieldFile, cfg.OperationsFile)
	}

	settingsLoader := settings.NewFileLoader(cfg.SettingsFile)
	provider := quotes.NewClient(cfg.RatesAPIURL, cfg.RatesAPIKey, cfg.FinnhubAPIURL, cfg.FinnhubAPIKey, logger)
	engine := reports.NewService(logger)
	sink := reports.NewSink(cfg.ReportsDir, logger)
	composer := views.NewComposer(loader, settingsLoader, provider, engine, logger)

	home, err := composer.Home(ctx, *date)
	if err != nil {
		logger.Error("home dashboard failed", applog.FieldError, err)
		os.Exit(1)
	}
	printJSON("Главная", home)

	events, err := composer.Events(ctx, *date)
	if err != nil {
		logger.Error("events dashboard failed", applog.FieldError, err)
		os.Exit(1)
	}
	printJSON("События", events)

	// The remaining operations work on the raw collection.
	operations, err := loader.Load(ctx)
	if err != nil {
		logger.Error("failed to load operations", applog.FieldError, err)
		os.Exit(1)
	}

	finder := search.NewService(logger)
	if *query != "" {
		printJSON("Простой поиск", finder.Simple(*query, operations))
	}
	if *phones {
		printJSON("Поиск по телефонным номерам", finder.PhoneTransactions(operations))
	}
	if *transfers {
		printJSON("Переводы физическим лицам", finder.PersonalTransfers(operations))
	}

	if *category != "" {
		run := reports.Saved(sink, "spending_by_category", func() ([]reports.CategorySpend, error) {
			return engine.SpendingByCategory(operations, *category, *reportDate)
		})
		report, err := run(*save)
		if err != nil {
			logger.Error("category report failed", applog.FieldError, err)
			os.Exit(1)
		}
		printJSON(fmt.Sprintf("Траты по категории %q", *category), report)
	}

	weekday := reports.Saved(sink, "spending_by_weekday", func() ([]reports.WeekdaySpend, error) {
		return engine.SpendingByWeekday(operations, *reportDate)
	})
	weekdayReport, err := weekday(*save)
	if err != nil {
		logger.Error("weekday report failed", applog.FieldError, err)
		os.Exit(1)
	}
	printJSON("Средние траты по дням недели", weekdayReport)

	workday := reports.Saved(sink, "spending_by_workday", func() (reports.WorkdaySpend, error) {
		return engine.SpendingByWorkday(operations, *reportDate)
	})
	workdayReport, err := workday(*save)
	if err != nil {
		logger.Error("workday report failed", applog.FieldError, err)
		os.Exit(1)
	}
	printJSON("Средние траты по типу дня", workdayReport)

	if *month != "" {
		target, err := time.Parse("2006-01", *month)
		if err != nil {
			logger.Error("invalid -month value", applog.FieldMonth, *month, applog.FieldError, err)
			os.Exit(1)
		}
		printJSON("Кэшбэк по категориям",
			engine.CashbackByCategory(operations, target.Year(), target.Month()))

		saved, err := engine.InvestmentRoundup(*month, operations, *limit)
		if err != nil {
			logger.Error("investment roundup failed", applog.FieldError, err)
			os.Exit(1)
		}
		printJSON("Инвесткопилка", saved)
	}

	if n, err := logtable.NewConverter(logger).Convert(cfg.LogFile, cfg.LogTable); err != nil {
		logger.Warn("activity log not converted", applog.FieldError, err)
	} else if n > 0 {
		fmt.Printf("Отчет логов сохранен в %s\n", cfg.LogTable)
	}
}

func printJSON(title string, v any) {
	fmt.Printf("\n=== %s ===\n", title)
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encode %s: %v\n", title, err)
	}
}
