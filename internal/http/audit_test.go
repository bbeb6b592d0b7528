package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/audit"
	auditRepo "github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/entities"
)

type auditPage struct {
	Events []entities.AuditEvent `json:"events"`
	Total  int64                 `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

func setupAuditRouter(t *testing.T) (*testEnv, *audit.Service, func()) {
	t.Helper()
	var service *audit.Service
	env, cleanup := setupTestRouter(t, func(cfg *RouterConfig) {
		service = audit.NewService(auditRepo.NewRepository(cfg.Database.DB))
		cfg.Audit = service
	})
	return env, service, cleanup
}

func TestAudit_RecordsCatalogChanges(t *testing.T) {
	env, service, cleanup := setupAuditRouter(t)
	defer cleanup()

	w := env.do(t, "POST", "/api/books", BookRequest{Title: "Dune", AuthorID: 1, GenreIDs: []uint{1}})
	require.Equal(t, http.StatusCreated, w.Code)
	book := decode[entities.Book](t, w)

	require.Equal(t, http.StatusOK, env.do(t, "DELETE", "/api/comments/1", nil).Code)
	service.Wait()

	w = env.do(t, "GET", "/api/audit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[auditPage](t, w)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, defaultAuditLimit, page.Limit)

	actions := map[string]entities.AuditEvent{}
	for _, e := range page.Events {
		actions[e.Action] = e
	}
	require.Contains(t, actions, "book_create")
	require.Contains(t, actions, "comment_delete")
	assert.Equal(t, "Created book: Dune", actions["book_create"].Description)
	require.NotNil(t, actions["book_create"].EntityID)
	assert.Equal(t, book.ID, *actions["book_create"].EntityID)
}

func TestAudit_FailedChangesAreNotRecorded(t *testing.T) {
	env, service, cleanup := setupAuditRouter(t)
	defer cleanup()

	w := env.do(t, "POST", "/api/books", BookRequest{Title: "Dune", AuthorID: 999, GenreIDs: []uint{1}})
	require.Equal(t, http.StatusNotFound, w.Code)
	service.Wait()

	page := decode[auditPage](t, env.do(t, "GET", "/api/audit", nil))
	assert.Zero(t, page.Total)
}

func TestAudit_LoginActorAndTypeFilter(t *testing.T) {
	env, service, cleanup := setupAuditRouter(t)
	defer cleanup()

	w := env.do(t, "POST", "/api/quiz/login", LoginRequest{FirstName: "Ada", LastName: "Lovelace"})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)

	w = env.do(t, "PUT", "/api/comments/1", CommentRequest{Text: "edited"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	service.Wait()

	page := decode[auditPage](t, env.do(t, "GET", "/api/audit?type=login", nil))
	require.Len(t, page.Events, 1)
	assert.Equal(t, "quiz_login", page.Events[0].Action)
	assert.Equal(t, "Ada Lovelace", page.Events[0].Actor)

	page = decode[auditPage](t, env.do(t, "GET", "/api/audit?type=update", nil))
	require.Len(t, page.Events, 1)
	assert.Equal(t, "Ada Lovelace", page.Events[0].Actor)
}

func TestAudit_InvalidQuery(t *testing.T) {
	env, _, cleanup := setupAuditRouter(t)
	defer cleanup()

	assert.Equal(t, http.StatusBadRequest, env.do(t, "GET", "/api/audit?type=bogus", nil).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, "GET", "/api/audit?offset=-1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, "GET", "/api/audit?limit=x", nil).Code)
}

func TestAudit_NotRegisteredWithoutService(t *testing.T) {
	env, cleanup := setupTestRouter(t, nil)
	defer cleanup()

	assert.Equal(t, http.StatusNotFound, env.do(t, "GET", "/api/audit", nil).Code)
}
