// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, driver selection, migrations
//	├── seed.go          # Demo catalog rows
//	├── authors/         # Author lookups
//	├── genres/          # Genre lookups
//	├── books/           # Book CRUD with author and genre associations
//	├── comments/        # Book comments
//	├── results/         # Recorded quiz attempts
//	└── audit/           # Audit trail of catalog changes and logins
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(cfg.Database)
//
//	booksRepo := books.NewRepository(db.DB)
//	book, err := booksRepo.FindByID(1)
//
// Repositories return gorm.ErrRecordNotFound for missing rows; the catalog
// services translate it into their own not-found error.
//
// # Drivers
//
// DATABASE_DRIVER selects sqlite (default, DATABASE_PATH), mysql or postgres
// (both read DATABASE_DSN).
package database
