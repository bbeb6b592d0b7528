// Package auth keeps track of which student is using the HTTP quiz API.
//
// Students do not have accounts or passwords: POST /api/quiz/login stores the
// first and last name in an scs session, and quiz endpoints wrapped in
// RequireStudent read it back.
//
// # Session storage
//
// With the sqlite driver sessions live in the application database through
// scs/sqlite3store; other drivers fall back to the in-memory store.
//
//	sm, err := auth.NewSessionManager(sqlDB, cfg.Session)
//	router.Use(sm.SessionLoadSave())
//	quiz := router.Group("/api/quiz", sm.RequireStudent())
//
// # Rate limiting
//
// RateLimiter is a per-client token bucket (golang.org/x/time/rate) used on
// mutating endpoints.
package auth
