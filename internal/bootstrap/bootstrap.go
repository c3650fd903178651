package bootstrap

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	appControllers "github.com/yigit/classworks/internal/app/controllers"
	appRepos "github.com/yigit/classworks/internal/app/repositories"
	appRoutes "github.com/yigit/classworks/internal/app/routes"
	appServices "github.com/yigit/classworks/internal/app/services"
	"github.com/yigit/classworks/internal/config"
	"github.com/yigit/classworks/internal/pkg/filestorage"
	"github.com/yigit/classworks/internal/pkg/helpers"
	"github.com/yigit/classworks/internal/pkg/logger"
	"github.com/yigit/classworks/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	HospitalService      appServices.HospitalService      // Interface type
	BookStoreService     appServices.BookStoreService     // Interface type
	ServiceCenterService appServices.ServiceCenterService // Interface type
	UniversityService    appServices.UniversityService    // Interface type
	ComputerService      appServices.ComputerService      // Interface type
	BankService          appServices.BankService          // Interface type

	HospitalController      *appControllers.HospitalController
	BookStoreController     *appControllers.BookStoreController
	ServiceCenterController *appControllers.ServiceCenterController
	UniversityController    *appControllers.UniversityController
	ComputerController      *appControllers.ComputerController
	BankController          *appControllers.BankController

	Repos              *appRepos.Repositories
	ServiceCenterFiles *filestorage.LocalStorage
	UniversityFiles    *filestorage.LocalStorage
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies seeds the repositories and wires services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger, now helpers.Clock) (*Dependencies, error) {
	if now == nil {
		now = helpers.SystemClock
	}
	deps := &Dependencies{Logger: lgr}

	collator, err := helpers.NewCollator(cfg.Report.Collation)
	if err != nil {
		lgr.Error().Err(err).Str("collation", cfg.Report.Collation).Msg("Failed to build collator")
		return nil, fmt.Errorf("failed to build collator: %w", err)
	}

	deps.Repos = appRepos.NewRepositories()
	deps.Repos.ServiceCenterRepository.WithClock(now)
	seed.CreateDefaultData(deps.Repos, lgr)

	deps.ServiceCenterFiles = filestorage.NewLocalStorage(cfg.ServiceCenter.OutputDir)
	deps.UniversityFiles = filestorage.NewLocalStorage(cfg.University.OutputDir)
	lgr.Debug().
		Str("serviceCenter", deps.ServiceCenterFiles.BasePath()).
		Str("university", deps.UniversityFiles.BasePath()).
		Msg("Export directories configured")

	// Initialize services
	deps.HospitalService = appServices.NewHospitalService(deps.Repos.HospitalRepository, appServices.HospitalOptions{
		LoyaltyYears:    cfg.Hospital.LoyaltyYears,
		LoyaltyDiscount: cfg.LoyaltyDiscount(),
	})
	deps.BookStoreService = appServices.NewBookStoreService(deps.Repos.BookStoreRepository)
	deps.ServiceCenterService = appServices.NewServiceCenterService(deps.Repos.ServiceCenterRepository, collator, now)
	deps.UniversityService = appServices.NewUniversityService(deps.Repos.UniversityRepository, collator)
	deps.ComputerService = appServices.NewComputerService(deps.Repos.ComputerRepository)
	deps.BankService = appServices.NewBankService(deps.Repos.BankRepository, collator, appServices.BankOptions{
		CreditMultiplier: cfg.Bank.CreditMultiplier,
		Now:              now,
	}, lgr.With().Str("exercise", "bank").Logger())

	// Initialize controllers
	deps.HospitalController = appControllers.NewHospitalController(
		deps.HospitalService,
		appControllers.DefaultSpendingQuery,
		cfg.Report.Currency,
		lgr.With().Str("exercise", "hospital").Logger(),
	)
	deps.BookStoreController = appControllers.NewBookStoreController(
		deps.BookStoreService,
		appControllers.DefaultBuyerSurname,
		appControllers.DefaultAuthorSurname,
		cfg.Report.Currency,
		lgr.With().Str("exercise", "bookstore").Logger(),
	)
	deps.ServiceCenterController = appControllers.NewServiceCenterController(
		deps.ServiceCenterService,
		deps.Repos.ServiceCenterRepository,
		deps.ServiceCenterFiles,
		cfg.ServiceCenter.InputDir,
		cfg.ServiceCenter.Category,
		lgr.With().Str("exercise", "servicecenter").Logger(),
	)
	deps.UniversityController = appControllers.NewUniversityController(
		deps.UniversityService,
		deps.Repos.UniversityRepository,
		deps.UniversityFiles,
		cfg.University.InputDir,
		lgr.With().Str("exercise", "university").Logger(),
	)
	deps.ComputerController = appControllers.NewComputerController(
		deps.ComputerService,
		lgr.With().Str("exercise", "computers").Logger(),
	)
	deps.BankController = appControllers.NewBankController(
		deps.BankService,
		appControllers.DefaultBankScenario,
		lgr.With().Str("exercise", "bank").Logger(),
	)

	return deps, nil
}

// SetupRouter maps exercise names to the controllers built in deps.
func SetupRouter(deps *Dependencies) *appRoutes.Router {
	return appRoutes.SetupRouter(
		deps.HospitalController,
		deps.BookStoreController,
		deps.ServiceCenterController,
		deps.UniversityController,
		deps.ComputerController,
		deps.BankController,
	)
}
