package services

import "github.com/mrlokans/library/internal/entities"

type AuthorService struct {
	authors AuthorRepository
}

func NewAuthorService(authors AuthorRepository) *AuthorService {
	return &AuthorService{authors: authors}
}

func (s *AuthorService) FindAll() ([]entities.Author, error) {
	return s.authors.FindAll()
}

type GenreService struct {
	genres GenreRepository
}

func NewGenreService(genres GenreRepository) *GenreService {
	return &GenreService{genres: genres}
}

func (s *GenreService) FindAll() ([]entities.Genre, error) {
	return s.genres.FindAll()
}
