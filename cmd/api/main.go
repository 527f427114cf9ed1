// Package main is the entry point for the Village Banking API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/village-banking/backend/config"
	"github.com/village-banking/backend/internal/application/adapter"
	"github.com/village-banking/backend/internal/application/usecase/backup"
	"github.com/village-banking/backend/internal/application/usecase/cycle"
	"github.com/village-banking/backend/internal/application/usecase/loan"
	"github.com/village-banking/backend/internal/application/usecase/member"
	"github.com/village-banking/backend/internal/application/usecase/pot"
	"github.com/village-banking/backend/internal/application/usecase/settings"
	"github.com/village-banking/backend/internal/application/usecase/transaction"
	"github.com/village-banking/backend/internal/domain/entity"
	"github.com/village-banking/backend/internal/infra/db"
	"github.com/village-banking/backend/internal/infra/server/router"
	"github.com/village-banking/backend/internal/integration/entrypoint/controller"
	"github.com/village-banking/backend/internal/integration/persistence"
	"github.com/village-banking/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Village Banking API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.MemberModel{},
		&model.TransactionModel{},
		&model.LoanModel{},
		&model.CycleModel{},
		&model.SettingsModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	clock := adapter.SystemClock{}

	// Repositories
	memberRepo := persistence.NewMemberRepository(database.DB())
	txnRepo := persistence.NewTransactionRepository(database.DB())
	loanRepo := persistence.NewLoanRepository(database.DB(), clock)
	cycleRepo := persistence.NewCycleRepository(database.DB())
	settingsRepo := persistence.NewSettingsRepository(database.DB())
	snapshotRepo := persistence.NewSnapshotRepository(database.DB())
	txManager := persistence.NewTxManager(database.DB())

	// Pot calculator
	calculator := pot.NewCalculator(memberRepo, txnRepo, loanRepo)

	// Member use cases
	listMembersUseCase := member.NewListMembersUseCase(memberRepo)
	createMemberUseCase := member.NewCreateMemberUseCase(memberRepo, clock)
	getMemberUseCase := member.NewGetMemberUseCase(memberRepo)
	updateMemberUseCase := member.NewUpdateMemberUseCase(memberRepo, clock)
	deleteMemberUseCase := member.NewDeleteMemberUseCase(memberRepo, txnRepo, loanRepo, txManager)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(txnRepo)
	recordTransactionUseCase := transaction.NewRecordTransactionUseCase(
		memberRepo, txnRepo, settingsRepo, txManager, clock)

	// Loan use cases (shared by both families)
	listLoansUseCase := loan.NewListLoansUseCase(loanRepo)
	getLoanUseCase := loan.NewGetLoanUseCase(loanRepo)
	eligibilityUseCase := loan.NewCheckEligibilityUseCase(memberRepo, loanRepo, settingsRepo, calculator)
	createLoanUseCase := loan.NewCreateLoanUseCase(loanRepo, settingsRepo, eligibilityUseCase, txManager, clock)
	approveLoanUseCase := loan.NewApproveLoanUseCase(loanRepo, txnRepo, calculator, txManager, clock)
	makePaymentUseCase := loan.NewMakePaymentUseCase(loanRepo, txnRepo, txManager, clock)
	penaliseLoanUseCase := loan.NewPenaliseLoanUseCase(loanRepo, txnRepo, txManager, clock)
	rolloverLoanUseCase := loan.NewRolloverLoanUseCase(loanRepo, txnRepo, settingsRepo, txManager, clock)
	markDefaultedUseCase := loan.NewMarkDefaultedUseCase(loanRepo, txManager, clock)
	previewInterestUseCase := loan.NewPreviewInterestUseCase()
	getScheduleUseCase := loan.NewGetScheduleUseCase(loanRepo)

	// Cycle use cases
	listCyclesUseCase := cycle.NewListCyclesUseCase(cycleRepo)
	getActiveCycleUseCase := cycle.NewGetActiveCycleUseCase(cycleRepo)
	createCycleUseCase := cycle.NewCreateCycleUseCase(cycleRepo, txManager)
	closeCycleUseCase := cycle.NewCloseCycleUseCase(cycleRepo, memberRepo, loanRepo, txManager, clock)
	shareOutUseCase := cycle.NewShareOutPreviewUseCase(cycleRepo, memberRepo)

	// Settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo, clock)

	// Pot and dashboard use cases
	potSummaryUseCase := pot.NewGetPotSummaryUseCase(calculator)
	socialFundUseCase := pot.NewGetSocialFundSummaryUseCase(calculator)
	dashboardStatsUseCase := pot.NewGetDashboardStatsUseCase(memberRepo, loanRepo, calculator)

	// Backup use cases
	exportDataUseCase := backup.NewExportDataUseCase(snapshotRepo, clock)
	importDataUseCase := backup.NewImportDataUseCase(snapshotRepo)
	clearDataUseCase := backup.NewClearDataUseCase(snapshotRepo)
	seedDemoDataUseCase := backup.NewSeedDemoDataUseCase(snapshotRepo, clock)

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	memberController := controller.NewMemberController(
		listMembersUseCase, createMemberUseCase, getMemberUseCase, updateMemberUseCase, deleteMemberUseCase)
	transactionController := controller.NewTransactionController(listTransactionsUseCase, recordTransactionUseCase)
	loanController := controller.NewLoanController(
		entity.LoanFamilyMain,
		listLoansUseCase, getLoanUseCase, createLoanUseCase, eligibilityUseCase, approveLoanUseCase,
		makePaymentUseCase, penaliseLoanUseCase, rolloverLoanUseCase, markDefaultedUseCase, getScheduleUseCase)
	socialLoanController := controller.NewLoanController(
		entity.LoanFamilySocial,
		listLoansUseCase, getLoanUseCase, createLoanUseCase, eligibilityUseCase, approveLoanUseCase,
		makePaymentUseCase, penaliseLoanUseCase, rolloverLoanUseCase, markDefaultedUseCase, getScheduleUseCase)
	interestController := controller.NewInterestController(previewInterestUseCase)
	cycleController := controller.NewCycleController(
		listCyclesUseCase, getActiveCycleUseCase, createCycleUseCase, closeCycleUseCase, shareOutUseCase)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)
	dashboardController := controller.NewDashboardController(potSummaryUseCase, socialFundUseCase, dashboardStatsUseCase)
	backupController := controller.NewBackupController(
		exportDataUseCase, importDataUseCase, clearDataUseCase, seedDemoDataUseCase)

	// Router and HTTP server
	r := router.NewRouter(
		healthController, memberController, transactionController,
		loanController, socialLoanController, interestController,
		cycleController, settingsController, dashboardController, backupController)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
