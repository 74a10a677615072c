package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"fooddelivery/cmd"
	_ "fooddelivery/docs"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if configs.SeedDemoData {
		if err := postgres.SeedDemoData(gormDB); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	if configs.EnableDispatchJob {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		jobManager := jobs.NewJobManager(app.CreateDispatchOrdersCommandHandler(), logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		SkipMissingItems:  goDotEnvBool("SKIP_MISSING_ITEMS"),
		EnableDispatchJob: goDotEnvBool("ENABLE_DISPATCH_JOB"),
		SeedDemoData:      goDotEnvBool("SEED_DEMO_DATA"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvBool(key string) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return false
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %q", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateCustomerCommandHandler(),
		app.CreateCreateCourierCommandHandler(),
		app.CreateUpdateCourierStatusCommandHandler(),
		app.CreateAddToCartCommandHandler(),
		app.CreateClearCartCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateAssignCourierCommandHandler(),
		app.CreateGetCustomerQueryHandler(),
		app.CreateGetRestaurantsQueryHandler(),
		app.CreateGetRestaurantQueryHandler(),
		app.CreateGetRestaurantMenuQueryHandler(),
		app.CreateGetMenuItemQueryHandler(),
		app.CreateGetCouriersQueryHandler(),
		app.CreateGetCourierQueryHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
