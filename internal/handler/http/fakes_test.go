package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fake services
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case. ParseToken accepts
// tokens of the form "valid-<userID>" unless parseTokenFn is set.
type fakeAuthService struct {
	signupFn      func(ctx context.Context, request models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	currentUserFn func(ctx context.Context, userID string) (models.User, error)
	issueTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.SessionClaims, error)
}

func (f *fakeAuthService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return f.signupFn(ctx, request)
}

func (f *fakeAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return f.loginFn(ctx, request)
}

func (f *fakeAuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return f.currentUserFn(ctx, userID)
}

func (f *fakeAuthService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	if f.issueTokenFn != nil {
		return f.issueTokenFn(ctx, user)
	}
	return models.Token{SignedString: "valid-" + user.ID}, nil
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	userID, ok := strings.CutPrefix(tokenString, "valid-")
	if !ok || userID == "" {
		return models.SessionClaims{}, service.ErrInvalidToken
	}
	return models.SessionClaims{UserID: userID}, nil
}

type fakePostService struct {
	createPostFn    func(ctx context.Context, actorID string, request models.CreatePostRequest) (models.Post, error)
	getPostFn       func(ctx context.Context, id string) (models.Post, error)
	updatePostFn    func(ctx context.Context, actorID, id string, request models.UpdatePostRequest) (models.Post, error)
	deletePostFn    func(ctx context.Context, actorID, id string) error
	listPostsFn     func(ctx context.Context, ownerID, viewerID string) ([]models.Post, error)
	listUserPostsFn func(ctx context.Context, username string) (models.AuthorPostsData, error)
}

func (f *fakePostService) CreatePost(ctx context.Context, actorID string, request models.CreatePostRequest) (models.Post, error) {
	return f.createPostFn(ctx, actorID, request)
}

func (f *fakePostService) GetPost(ctx context.Context, id string) (models.Post, error) {
	return f.getPostFn(ctx, id)
}

func (f *fakePostService) UpdatePost(ctx context.Context, actorID, id string, request models.UpdatePostRequest) (models.Post, error) {
	return f.updatePostFn(ctx, actorID, id, request)
}

func (f *fakePostService) DeletePost(ctx context.Context, actorID, id string) error {
	return f.deletePostFn(ctx, actorID, id)
}

func (f *fakePostService) ListPosts(ctx context.Context, ownerID, viewerID string) ([]models.Post, error) {
	return f.listPostsFn(ctx, ownerID, viewerID)
}

func (f *fakePostService) ListUserPosts(ctx context.Context, username string) (models.AuthorPostsData, error) {
	return f.listUserPostsFn(ctx, username)
}

type fakeUserService struct {
	updateProfileFn func(ctx context.Context, userID string, request models.UpdateProfileRequest) (models.User, error)
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, userID string, request models.UpdateProfileRequest) (models.User, error) {
	return f.updateProfileFn(ctx, userID, request)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testConfig = config.StructuredConfig{
	App: config.App{
		TokenDuration: 7 * 24 * time.Hour,
		Environment:   "development",
	},
	Server: config.Server{RequestTimeout: 5 * time.Second},
}

// newTestHandler builds a Handler over the given fakes. Nil fakes are
// replaced by empty ones whose methods panic when called.
func newTestHandler(auth *fakeAuthService, posts *fakePostService, users *fakeUserService) *Handler {
	if auth == nil {
		auth = &fakeAuthService{}
	}
	if posts == nil {
		posts = &fakePostService{}
	}
	if users == nil {
		users = &fakeUserService{}
	}
	svcs := &service.Services{AuthService: auth, PostService: posts, UserService: users}
	return NewHandler(svcs, testConfig, logger.Nop())
}

// request is one call against the router.
type request struct {
	method string
	path   string
	body   string
	userID string // when set, a session cookie for this user is attached
}

func serve(t *testing.T, h *Handler, req request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if req.body != "" {
		body = strings.NewReader(req.body)
	}
	r := httptest.NewRequest(req.method, req.path, body)
	if req.userID != "" {
		r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid-" + req.userID})
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, r)
	return rr
}

// envelope decodes the response body; data is left raw for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}

func sessionCookieFrom(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}
