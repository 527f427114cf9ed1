// Package steps provides step definitions for BDD integration tests. Each
// scenario runs against a full in-process server backed by its own in-memory
// SQLite database.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

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

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	database     *db.Database
	client       *http.Client
	response     *http.Response
	responseBody []byte

	// Values captured from responses, referenced as {name} in later steps.
	vars map[string]string

	clock *manualClock
}

// manualClock is an adjustable clock so scenarios can cross due dates.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

var _ adapter.Clock = (*manualClock)(nil)

// Scenario databases get unique names so shared-cache memory stores never
// leak between scenarios.
var dbCounter atomic.Int64

// newTestServer boots the whole application against a fresh in-memory store.
func newTestServer(clock adapter.Clock) (*httptest.Server, *db.Database, error) {
	cfg := &config.DatabaseConfig{
		Driver:          "sqlite",
		Path:            fmt.Sprintf("file:scenario%d?mode=memory&cache=shared", dbCounter.Add(1)),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	database, err := db.NewConnection(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open test database: %w", err)
	}

	if err := database.AutoMigrate(
		&model.MemberModel{},
		&model.TransactionModel{},
		&model.LoanModel{},
		&model.CycleModel{},
		&model.SettingsModel{},
	); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	memberRepo := persistence.NewMemberRepository(database.DB())
	txnRepo := persistence.NewTransactionRepository(database.DB())
	loanRepo := persistence.NewLoanRepository(database.DB(), clock)
	cycleRepo := persistence.NewCycleRepository(database.DB())
	settingsRepo := persistence.NewSettingsRepository(database.DB())
	snapshotRepo := persistence.NewSnapshotRepository(database.DB())
	txManager := persistence.NewTxManager(database.DB())

	calculator := pot.NewCalculator(memberRepo, txnRepo, loanRepo)

	listMembersUseCase := member.NewListMembersUseCase(memberRepo)
	createMemberUseCase := member.NewCreateMemberUseCase(memberRepo, clock)
	getMemberUseCase := member.NewGetMemberUseCase(memberRepo)
	updateMemberUseCase := member.NewUpdateMemberUseCase(memberRepo, clock)
	deleteMemberUseCase := member.NewDeleteMemberUseCase(memberRepo, txnRepo, loanRepo, txManager)

	listTransactionsUseCase := transaction.NewListTransactionsUseCase(txnRepo)
	recordTransactionUseCase := transaction.NewRecordTransactionUseCase(
		memberRepo, txnRepo, settingsRepo, txManager, clock)

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

	listCyclesUseCase := cycle.NewListCyclesUseCase(cycleRepo)
	getActiveCycleUseCase := cycle.NewGetActiveCycleUseCase(cycleRepo)
	createCycleUseCase := cycle.NewCreateCycleUseCase(cycleRepo, txManager)
	closeCycleUseCase := cycle.NewCloseCycleUseCase(cycleRepo, memberRepo, loanRepo, txManager, clock)
	shareOutUseCase := cycle.NewShareOutPreviewUseCase(cycleRepo, memberRepo)

	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo, clock)

	potSummaryUseCase := pot.NewGetPotSummaryUseCase(calculator)
	socialFundUseCase := pot.NewGetSocialFundSummaryUseCase(calculator)
	dashboardStatsUseCase := pot.NewGetDashboardStatsUseCase(memberRepo, loanRepo, calculator)

	exportDataUseCase := backup.NewExportDataUseCase(snapshotRepo, clock)
	importDataUseCase := backup.NewImportDataUseCase(snapshotRepo)
	clearDataUseCase := backup.NewClearDataUseCase(snapshotRepo)
	seedDemoDataUseCase := backup.NewSeedDemoDataUseCase(snapshotRepo, clock)

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

	r := router.NewRouter(
		healthController, memberController, transactionController,
		loanController, socialLoanController, interestController,
		cycleController, settingsController, dashboardController, backupController)

	return httptest.NewServer(r.Setup("test")), database, nil
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		clock := &manualClock{now: time.Now().UTC()}
		server, database, err := newTestServer(clock)
		if err != nil {
			return ctx, err
		}

		tc := &TestContext{
			server:   server,
			database: database,
			client:   &http.Client{Timeout: 10 * time.Second},
			vars:     make(map[string]string),
			clock:    clock,
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.database != nil {
				_ = tc.database.Close()
			}
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerClockSteps(ctx)
}
