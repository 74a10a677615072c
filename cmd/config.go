package cmd

// Config holds everything the application reads from its environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SkipMissingItems makes order placement silently drop cart entries
	// whose menu item no longer exists instead of failing the order.
	SkipMissingItems bool

	// EnableDispatchJob turns on the background job that assigns couriers
	// to orders left pending when the whole fleet was busy.
	EnableDispatchJob bool

	// SeedDemoData loads the demo dataset on startup.
	SeedDemoData bool
}
