package config

// Default paths for databases and data files
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./library.db"

	// DefaultQuestionsFile is the question file used when no locale-specific file matches
	DefaultQuestionsFile = "data/questions.csv"

	// DefaultLocale is used for console messages when QUIZ_LOCALE is empty
	DefaultLocale = "en-US"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)
