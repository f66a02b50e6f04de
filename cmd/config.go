package cmd

// Config carries everything the composition root needs to assemble the
// application. Values are read from the environment in cmd/app.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	RedisAddr  string

	// Pricing policy.
	TaxRate               float64
	ShippingFee           float64
	FreeShippingThreshold float64

	// Coupon table, entries of the form CODE:value:type where type is
	// "percentage" or "fixed". Example: "SAVE10:10:percentage,SAVE20:20:fixed".
	Coupons string
}
