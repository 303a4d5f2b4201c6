package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro/internal/http/middleware"
	"bistro/internal/models"
	"bistro/internal/repo"
	"bistro/internal/service"
)

func init() { gin.SetMode(gin.TestMode) }

const testSecret = "handler-test-secret"

// --- in-memory repositories ---

type fakeUserRepo struct{ docs []models.User }

func (f *fakeUserRepo) List(context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.docs...), nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.docs {
		if f.docs[i].Email == email {
			u := f.docs[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, u models.User) (models.InsertAck, error) {
	u.ID = primitive.NewObjectID()
	f.docs = append(f.docs, u)
	return models.InsertAck{InsertedID: u.ID.Hex()}, nil
}

func (f *fakeUserRepo) PromoteAdmin(_ context.Context, id string) (models.UpdateAck, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.UpdateAck{}, repo.ErrInvalidID
	}
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			var modified int64
			if f.docs[i].Role != models.RoleAdmin {
				f.docs[i].Role = models.RoleAdmin
				modified = 1
			}
			return models.UpdateAck{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return models.UpdateAck{}, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (models.DeleteAck, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.DeleteAck{}, repo.ErrInvalidID
	}
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return models.DeleteAck{DeletedCount: 1}, nil
		}
	}
	return models.DeleteAck{}, nil
}

func (f *fakeUserRepo) countByEmail(email string) int {
	n := 0
	for i := range f.docs {
		if f.docs[i].Email == email {
			n++
		}
	}
	return n
}

type fakeMenuRepo struct{ docs []models.MenuItem }

func (f *fakeMenuRepo) List(context.Context) ([]models.MenuItem, error) {
	return append([]models.MenuItem(nil), f.docs...), nil
}

func (f *fakeMenuRepo) FindByID(_ context.Context, id string) (*models.MenuItem, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repo.ErrInvalidID
	}
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			m := f.docs[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepo) Insert(_ context.Context, m models.MenuItem) (models.InsertAck, error) {
	m.ID = primitive.NewObjectID()
	f.docs = append(f.docs, m)
	return models.InsertAck{InsertedID: m.ID.Hex()}, nil
}

func (f *fakeMenuRepo) Update(_ context.Context, id string, m models.MenuItem) (models.UpdateAck, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.UpdateAck{}, repo.ErrInvalidID
	}
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			f.docs[i].Name = m.Name
			f.docs[i].Recipe = m.Recipe
			f.docs[i].Category = m.Category
			f.docs[i].Price = m.Price
			return models.UpdateAck{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return models.UpdateAck{}, nil
}

func (f *fakeMenuRepo) Delete(_ context.Context, id string) (models.DeleteAck, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.DeleteAck{}, repo.ErrInvalidID
	}
	for i := range f.docs {
		if f.docs[i].ID.Hex() == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return models.DeleteAck{DeletedCount: 1}, nil
		}
	}
	return models.DeleteAck{}, nil
}

type fakeCartRepo struct{ docs []bson.M }

func (f *fakeCartRepo) List(context.Context) ([]bson.M, error) {
	return append([]bson.M(nil), f.docs...), nil
}

func (f *fakeCartRepo) Insert(_ context.Context, item map[string]interface{}) (models.InsertAck, error) {
	doc := bson.M{}
	for k, v := range item {
		doc[k] = v
	}
	id := primitive.NewObjectID()
	doc["_id"] = id
	f.docs = append(f.docs, doc)
	return models.InsertAck{InsertedID: id.Hex()}, nil
}

func (f *fakeCartRepo) Delete(_ context.Context, id string) (models.DeleteAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.DeleteAck{}, repo.ErrInvalidID
	}
	for i := range f.docs {
		if f.docs[i]["_id"] == oid {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return models.DeleteAck{DeletedCount: 1}, nil
		}
	}
	return models.DeleteAck{}, nil
}

type fakeReviewRepo struct{ docs []models.Review }

func (f *fakeReviewRepo) List(context.Context) ([]models.Review, error) {
	return append([]models.Review(nil), f.docs...), nil
}

var (
	_ repo.UserRepo   = (*fakeUserRepo)(nil)
	_ repo.MenuRepo   = (*fakeMenuRepo)(nil)
	_ repo.CartRepo   = (*fakeCartRepo)(nil)
	_ repo.ReviewRepo = (*fakeReviewRepo)(nil)
)

// --- test server ---

type testEnv struct {
	router  *gin.Engine
	tokens  service.TokenService
	users   *fakeUserRepo
	menu    *fakeMenuRepo
	carts   *fakeCartRepo
	reviews *fakeReviewRepo
}

// newTestEnv wires the same route table as cmd/server over in-memory repos.
func newTestEnv() *testEnv {
	env := &testEnv{
		tokens:  service.NewTokenService(testSecret),
		users:   &fakeUserRepo{},
		menu:    &fakeMenuRepo{},
		carts:   &fakeCartRepo{},
		reviews: &fakeReviewRepo{},
	}

	r := gin.New()
	tokenH := NewTokenHandler(env.tokens)
	userH := NewUserHandler(env.users)
	menuH := NewMenuHandler(env.menu)
	cartH := NewCartHandler(env.carts)
	reviewH := NewReviewHandler(env.reviews)

	auth := middleware.Auth(env.tokens)
	admin := middleware.Admin(env.users)

	r.POST("/jwt", tokenH.Create)

	r.GET("/users", auth, admin, userH.List)
	r.GET("/users/admin/:email", auth, userH.AdminFlag)
	r.PATCH("/users/admin/:id", auth, admin, userH.Promote)
	r.POST("/users", userH.Register)
	r.DELETE("/users/:id", auth, admin, userH.Delete)

	r.GET("/menu", menuH.List)
	r.GET("/menu/:id", menuH.Get)
	r.POST("/menu", auth, admin, menuH.Create)
	r.PATCH("/menu/:id", auth, admin, menuH.Update)
	r.DELETE("/menu/:id", auth, admin, menuH.Delete)

	r.GET("/carts", cartH.List)
	r.POST("/carts", cartH.Create)
	r.DELETE("/carts/:id", cartH.Delete)

	r.GET("/reviews", reviewH.List)

	env.router = r
	return env
}

func (e *testEnv) seedUser(t *testing.T, email, role string) models.User {
	t.Helper()
	u := models.User{ID: primitive.NewObjectID(), Email: email, Role: role}
	e.users.docs = append(e.users.docs, u)
	return u
}

func (e *testEnv) bearerFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := e.tokens.Issue(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return "Bearer " + tok
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, auth string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
