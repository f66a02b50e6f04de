package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"storefront/cmd"
	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/restorationrepo"
	"storefront/internal/adapters/out/postgres/reviewrepo"
	"storefront/internal/core/domain/model/cart"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	redisClient := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	coupons, err := parseCoupons(configs.Coupons)
	if err != nil {
		log.Fatalf("Invalid coupon configuration: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, coupons, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:             goDotEnvVariable("REDIS_ADDR"),
		TaxRate:               goDotEnvFloat("TAX_RATE"),
		ShippingFee:           goDotEnvFloat("SHIPPING_FEE"),
		FreeShippingThreshold: goDotEnvFloat("FREE_SHIPPING_THRESHOLD"),
		Coupons:               goDotEnvVariable("COUPONS"),
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

func goDotEnvFloat(key string) float64 {
	value, err := strconv.ParseFloat(goDotEnvVariable(key), 64)
	if err != nil {
		log.Fatalf("Invalid float value for %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&reviewrepo.ReviewDTO{},
		&restorationrepo.StockRestorationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

// parseCoupons reads the coupon table from its compact form, entries of
// CODE:value:type separated by commas. An empty table is valid.
func parseCoupons(spec string) ([]cart.Coupon, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	var coupons []cart.Coupon
	for _, entry := range strings.Split(spec, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed coupon entry %q", entry)
		}

		discount, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed coupon entry %q: %w", entry, err)
		}

		discountType, err := cart.DiscountTypeFromString(parts[2])
		if err != nil {
			return nil, err
		}

		coupon, err := cart.NewCoupon(parts[0], discount, discountType)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, coupon)
	}

	return coupons, nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateAddCartItemCommandHandler(),
		app.CreateUpdateCartItemCommandHandler(),
		app.CreateRemoveCartItemCommandHandler(),
		app.CreateClearCartCommandHandler(),
		app.CreateApplyCouponCommandHandler(),
		app.CreateCheckoutCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateAddReviewCommandHandler(),
		app.CreateUpdateReviewCommandHandler(),
		app.CreateDeleteReviewCommandHandler(),
		app.CreateMarkReviewHelpfulCommandHandler(),
		app.CreateGetCartQueryHandler(),
		app.CreateGetMyOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetProductReviewsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
