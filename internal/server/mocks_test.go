package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/domain"
)

// mockAppService implements domain.AppService with function fields so each
// test pins down only the calls it expects. Unset fields panic.
type mockAppService struct {
	register          func(ctx context.Context, input domain.RegisterInput) (*domain.Account, error)
	login             func(ctx context.Context, email, password string, role domain.Role) (*domain.Account, error)
	getAccount        func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	updateProfile     func(ctx context.Context, subjectID uuid.UUID, update domain.ProfileUpdate) (*domain.Account, error)
	registerCompany   func(ctx context.Context, subjectID uuid.UUID, name string) (*domain.Company, error)
	listCompanies     func(ctx context.Context, subjectID uuid.UUID) ([]domain.Company, error)
	getCompany        func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	updateCompany     func(ctx context.Context, subjectID, companyID uuid.UUID, update domain.CompanyUpdate) (*domain.Company, error)
	postJob           func(ctx context.Context, subjectID uuid.UUID, job domain.NewJob) (*domain.Job, error)
	listJobs          func(ctx context.Context, keyword string) ([]domain.JobWithCompany, error)
	getJob            func(ctx context.Context, id uuid.UUID) (*domain.JobWithCompany, error)
	listOwnJobs       func(ctx context.Context, subjectID uuid.UUID) ([]domain.JobWithCompany, error)
	apply             func(ctx context.Context, subjectID, jobID uuid.UUID) (*domain.Application, error)
	appliedJobs       func(ctx context.Context, subjectID uuid.UUID) ([]domain.AppliedJob, error)
	jobApplicants     func(ctx context.Context, subjectID, jobID uuid.UUID) ([]domain.JobApplicant, error)
	decideApplication func(ctx context.Context, subjectID, applicationID uuid.UUID, status domain.Status) (*domain.Application, error)
}

func (m *mockAppService) Register(ctx context.Context, input domain.RegisterInput) (*domain.Account, error) {
	return m.register(ctx, input)
}

func (m *mockAppService) Login(ctx context.Context, email, password string, role domain.Role) (*domain.Account, error) {
	return m.login(ctx, email, password, role)
}

func (m *mockAppService) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return m.getAccount(ctx, id)
}

func (m *mockAppService) UpdateProfile(ctx context.Context, subjectID uuid.UUID, update domain.ProfileUpdate) (*domain.Account, error) {
	return m.updateProfile(ctx, subjectID, update)
}

func (m *mockAppService) RegisterCompany(ctx context.Context, subjectID uuid.UUID, name string) (*domain.Company, error) {
	return m.registerCompany(ctx, subjectID, name)
}

func (m *mockAppService) ListCompanies(ctx context.Context, subjectID uuid.UUID) ([]domain.Company, error) {
	return m.listCompanies(ctx, subjectID)
}

func (m *mockAppService) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return m.getCompany(ctx, id)
}

func (m *mockAppService) UpdateCompany(ctx context.Context, subjectID, companyID uuid.UUID, update domain.CompanyUpdate) (*domain.Company, error) {
	return m.updateCompany(ctx, subjectID, companyID, update)
}

func (m *mockAppService) PostJob(ctx context.Context, subjectID uuid.UUID, job domain.NewJob) (*domain.Job, error) {
	return m.postJob(ctx, subjectID, job)
}

func (m *mockAppService) ListJobs(ctx context.Context, keyword string) ([]domain.JobWithCompany, error) {
	return m.listJobs(ctx, keyword)
}

func (m *mockAppService) GetJob(ctx context.Context, id uuid.UUID) (*domain.JobWithCompany, error) {
	return m.getJob(ctx, id)
}

func (m *mockAppService) ListOwnJobs(ctx context.Context, subjectID uuid.UUID) ([]domain.JobWithCompany, error) {
	return m.listOwnJobs(ctx, subjectID)
}

func (m *mockAppService) Apply(ctx context.Context, subjectID, jobID uuid.UUID) (*domain.Application, error) {
	return m.apply(ctx, subjectID, jobID)
}

func (m *mockAppService) AppliedJobs(ctx context.Context, subjectID uuid.UUID) ([]domain.AppliedJob, error) {
	return m.appliedJobs(ctx, subjectID)
}

func (m *mockAppService) JobApplicants(ctx context.Context, subjectID, jobID uuid.UUID) ([]domain.JobApplicant, error) {
	return m.jobApplicants(ctx, subjectID, jobID)
}

func (m *mockAppService) DecideApplication(ctx context.Context, subjectID, applicationID uuid.UUID, status domain.Status) (*domain.Application, error) {
	return m.decideApplication(ctx, subjectID, applicationID, status)
}

const testSecretKey = "0123456789abcdef0123456789abcdef"

type testServer struct {
	srv      *Server
	sessions *auth.Sessions
}

func newTestServer(t *testing.T, app domain.AppService) *testServer {
	t.Helper()

	cfg := &config.Config{
		AppEnv:    "test",
		Port:      "0",
		SecretKey: testSecretKey,
	}
	sessions, err := auth.NewSessions(testSecretKey, clockwork.NewRealClock())
	require.NoError(t, err)

	return &testServer{
		srv:      NewServer(cfg, app, sessions, nil, nil, nil, nil),
		sessions: sessions,
	}
}

// do executes a request against the router and returns the recorded response.
func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.srv.echo.ServeHTTP(rec, req)
	return rec
}

// authedRequest builds a request carrying a valid session cookie for subjectID.
func (ts *testServer) authedRequest(t *testing.T, method, target string, body io.Reader, subjectID uuid.UUID) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	token, err := ts.sessions.Issue(subjectID)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	return req
}
