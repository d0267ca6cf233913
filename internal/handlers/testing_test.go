package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harivola/medbot-api/internal/middleware"
	"github.com/harivola/medbot-api/internal/models"
	"github.com/harivola/medbot-api/internal/repository"
	"github.com/harivola/medbot-api/internal/utils"
)

const testSecret = "handlers-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory repository implementations mirroring the Mongo semantics, so the
// handlers can be exercised without a running database.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by hex object id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	cp := *user
	r.users[user.ID.Hex()] = &cp
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID.Hex()]; !ok {
		return repository.ErrNotFound
	}
	// Mirror the Mongo unique indexes: a write colliding with another
	// account's username or email is rejected.
	for id, u := range r.users {
		if id == user.ID.Hex() {
			continue
		}
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	cp := *user
	r.users[user.ID.Hex()] = &cp
	return nil
}

type memCapsuleRepo struct {
	mu       sync.Mutex
	capsules map[string]models.Capsule // keyed by business id
}

func newMemCapsuleRepo() *memCapsuleRepo {
	return &memCapsuleRepo{capsules: make(map[string]models.Capsule)}
}

func (r *memCapsuleRepo) List(_ context.Context) ([]models.Capsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Capsule, 0, len(r.capsules))
	for _, c := range r.capsules {
		out = append(out, copyCapsule(c))
	}
	return out, nil
}

func (r *memCapsuleRepo) FindByBusinessID(_ context.Context, id string) (models.Capsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.capsules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyCapsule(c), nil
}

func (r *memCapsuleRepo) Upsert(_ context.Context, id string, fields models.Capsule) (models.Capsule, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.capsules[id]
	merged := copyCapsule(existing)
	if merged == nil {
		merged = models.Capsule{}
	}
	for k, v := range fields {
		merged[k] = v
	}
	r.capsules[id] = merged
	return copyCapsule(merged), !ok, nil
}

func copyCapsule(c models.Capsule) models.Capsule {
	if c == nil {
		return nil
	}
	cp := make(models.Capsule, len(c))
	for k, v := range c {
		cp[k] = v
	}
	return cp
}

type memPatientRepo struct {
	mu       sync.Mutex
	patients map[string]models.Patient // keyed by business id
}

func newMemPatientRepo() *memPatientRepo {
	return &memPatientRepo{patients: make(map[string]models.Patient)}
}

func (r *memPatientRepo) List(_ context.Context) ([]models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, p)
	}
	return out, nil
}

func (r *memPatientRepo) FindByBusinessID(_ context.Context, id string) (*models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.patients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (r *memPatientRepo) Create(_ context.Context, patient *models.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if patient.ObjectID.IsZero() {
		patient.ObjectID = primitive.NewObjectID()
	}
	r.patients[patient.ID] = *patient
	return nil
}

func (r *memPatientRepo) DeleteByBusinessID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.patients, id)
	return nil
}

type testEnv struct {
	router   *gin.Engine
	handler  *Handler
	users    *memUserRepo
	capsules *memCapsuleRepo
	patients *memPatientRepo
	tokens   *utils.JWTManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:    newMemUserRepo(),
		capsules: newMemCapsuleRepo(),
		patients: newMemPatientRepo(),
		tokens:   utils.NewJWTManager(testSecret),
	}
	env.handler = NewHandler(env.users, env.capsules, env.patients, env.tokens)
	env.router = NewRouter(env.handler, middleware.AuthMiddleware(env.tokens))
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
	return out
}
