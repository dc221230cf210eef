package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"smartmoney/api"
	"smartmoney/internal"
	"smartmoney/internal/app"
	"smartmoney/internal/repository"
	"smartmoney/internal/service"
	"smartmoney/pkg/arkfunds"
	"smartmoney/pkg/edgar"
	"smartmoney/pkg/finra"
	"smartmoney/pkg/quiverquant"

	_ "github.com/lib/pq"
)

// arkHoldingsURLs maps each tracked ARK fund to its official daily
// holdings CSV.
var arkHoldingsURLs = map[string]string{
	"ARKK": "https://ark-funds.com/wp-content/uploads/funds-etf-csv/ARK_INNOVATION_ETF_ARKK_HOLDINGS.csv",
	"ARKW": "https://ark-funds.com/wp-content/uploads/funds-etf-csv/ARK_NEXT_GENERATION_INTERNET_ETF_ARKW_HOLDINGS.csv",
	"ARKG": "https://ark-funds.com/wp-content/uploads/funds-etf-csv/ARK_GENOMIC_REVOLUTION_ETF_ARKG_HOLDINGS.csv",
}

// trackedInstitutions are the 13F filers diffed quarter over quarter.
var trackedInstitutions = []service.TrackedInstitution{
	{CIK: "0001067983", Name: "Berkshire Hathaway"},
	{CIK: "0001350694", Name: "Bridgewater Associates"},
	{CIK: "0001336528", Name: "Pershing Square Capital Management"},
	{CIK: "0001179392", Name: "Third Point"},
}

// tickerByCusip resolves 13F holdings, which EDGAR reports by CUSIP
// only. Unknown CUSIPs are skipped by the differ, so this list bounds
// which filing changes become signals.
var tickerByCusip = map[string]string{
	"037833100": "AAPL",
	"02079K305": "GOOGL",
	"023135106": "AMZN",
	"30303M102": "META",
	"594918104": "MSFT",
	"67066G104": "NVDA",
	"88160R101": "TSLA",
	"097023105": "BA",
	"151020104": "CELH",
	"20030N101": "CMCSA",
	"22160K105": "COST",
	"060505104": "BAC",
	"166764100": "CVX",
	"191216100": "KO",
	"615369105": "MCO",
	"02209S103": "AXP",
	"844741108": "SPGI",
	"91324P102": "UNH",
	"92826C839": "V",
}

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	signalRepository := repository.NewSignalRepository()
	confluenceScoreRepository := repository.NewConfluenceScoreRepository()
	digestSubscriberRepository := repository.NewDigestSubscriberRepository()
	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret)

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	emailRepository, err := repository.NewEmailRepository(secrets.SES.Region, secrets.SES.FromEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to create email repository: %w", err)
	}
	emailService := service.NewEmailService(emailRepository)

	quiverClient := &quiverquant.Client{
		HttpClient: http.DefaultClient,
		ApiKey:     secrets.QuiverQuantApiKey,
	}
	arkClient := &arkfunds.Client{HttpClient: http.DefaultClient}
	finraClient := &finra.Client{HttpClient: http.DefaultClient}
	edgarClient := &edgar.Client{
		HttpClient: http.DefaultClient,
		// EDGAR requires a descriptive User-Agent with a contact address
		UserAgent: "smartmoney admin@smartmoney.dev",
	}

	signalCollectionService := service.NewSignalCollectionService(
		dbConn,
		signalRepository,
		quiverClient,
		arkClient,
		finraClient,
		edgarClient,
		arkHoldingsURLs,
		trackedInstitutions,
		tickerByCusip,
	)
	excessReturnService := service.NewExcessReturnService(alpacaRepository)

	scoringPassApp := app.NewScoringPassApp(
		dbConn,
		signalCollectionService,
		excessReturnService,
		signalRepository,
		confluenceScoreRepository,
	)
	digestApp := app.NewDigestApp(
		dbConn,
		scoringPassApp,
		gptRepository,
		emailService,
		digestSubscriberRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                        dbConn,
		ScoringPassApp:            scoringPassApp,
		DigestApp:                 digestApp,
		SignalRepository:          signalRepository,
		ConfluenceScoreRepository: confluenceScoreRepository,
		ApiRequestRepository:      repository.ApiRequestRepositoryHandler{},
		AdminJwtSecret:            secrets.AdminJwtSecret,
	}

	return apiHandler, nil
}
