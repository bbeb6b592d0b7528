// Command generate_demo creates a demo database with a small public domain catalog
// and a few recorded quiz attempts.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/database/authors"
	"github.com/mrlokans/library/internal/database/books"
	"github.com/mrlokans/library/internal/database/comments"
	"github.com/mrlokans/library/internal/database/genres"
	"github.com/mrlokans/library/internal/database/results"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/services"
)

const defaultDemoDatabasePath = "./demo/demo.db"

// demoBook is a book with the names of its genres and the comments left on it.
type demoBook struct {
	Title    string
	Author   string
	Genres   []string
	Comments []string
}

var demoBooks = []demoBook{
	{
		Title:  "Meditations",
		Author: "Marcus Aurelius",
		Genres: []string{"Philosophy", "Classic"},
		Comments: []string{
			"Short chapters, easy to read one per evening.",
			"The Hays translation is the most readable.",
		},
	},
	{
		Title:  "Letters from a Stoic",
		Author: "Seneca",
		Genres: []string{"Philosophy", "Classic"},
		Comments: []string{
			"Letter 1 on saving time is worth rereading every year.",
		},
	},
	{
		Title:    "On the Origin of Species",
		Author:   "Charles Darwin",
		Genres:   []string{"Science", "Classic"},
		Comments: []string{"Start with the 1859 first edition."},
	},
	{
		Title:  "Pride and Prejudice",
		Author: "Jane Austen",
		Genres: []string{"Fiction", "Classic"},
		Comments: []string{
			"The opening line alone is worth it.",
			"Better on a second read.",
		},
	},
	{
		Title:  "Frankenstein",
		Author: "Mary Shelley",
		Genres: []string{"Fiction", "Science"},
	},
}

var demoAttempts = []entities.QuizAttempt{
	{FirstName: "Ada", LastName: "Lovelace", RightAnswers: 3, TotalQuestions: 3, Passed: true},
	{FirstName: "Charles", LastName: "Babbage", RightAnswers: 1, TotalQuestions: 3},
	{FirstName: "Charles", LastName: "Babbage", RightAnswers: 3, TotalQuestions: 3, Passed: true},
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(config.Database{Path: *dbPath, Seed: true, LogLevel: "silent"})
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	authorRepo := authors.NewRepository(db.DB)
	genreRepo := genres.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	bookService := services.NewBookService(authorRepo, genreRepo, bookRepo)
	commentService := services.NewCommentService(bookRepo, comments.NewRepository(db.DB))

	authorIDs := createAuthors(db)
	genreIDs := createGenres(db)

	for _, demo := range demoBooks {
		ids := make([]uint, 0, len(demo.Genres))
		for _, name := range demo.Genres {
			ids = append(ids, genreIDs[name])
		}

		book, err := bookService.Insert(demo.Title, authorIDs[demo.Author], ids)
		if err != nil {
			log.Printf("Failed to save book %s: %v", demo.Title, err)
			continue
		}

		for _, text := range demo.Comments {
			if _, err := commentService.Insert(text, book.ID); err != nil {
				log.Printf("Failed to add comment to %s: %v", demo.Title, err)
			}
		}
		log.Printf("Saved: %s by %s (%d comments)", demo.Title, demo.Author, len(demo.Comments))
	}

	resultRepo := results.NewRepository(db.DB)
	for i := range demoAttempts {
		if err := resultRepo.Record(&demoAttempts[i]); err != nil {
			log.Printf("Failed to record attempt of %s: %v", demoAttempts[i].FirstName, err)
		}
	}

	log.Println("Demo database generated successfully!")
}

func createAuthors(db *database.Database) map[string]uint {
	ids := make(map[string]uint)
	for _, demo := range demoBooks {
		if _, ok := ids[demo.Author]; ok {
			continue
		}
		author := entities.Author{FullName: demo.Author}
		if err := db.DB.Create(&author).Error; err != nil {
			log.Fatalf("Failed to create author %s: %v", demo.Author, err)
		}
		ids[demo.Author] = author.ID
	}
	return ids
}

func createGenres(db *database.Database) map[string]uint {
	ids := make(map[string]uint)
	for _, demo := range demoBooks {
		for _, name := range demo.Genres {
			if _, ok := ids[name]; ok {
				continue
			}
			genre := entities.Genre{Name: name}
			if err := db.DB.Create(&genre).Error; err != nil {
				log.Fatalf("Failed to create genre %s: %v", name, err)
			}
			ids[name] = genre.ID
		}
	}
	return ids
}
