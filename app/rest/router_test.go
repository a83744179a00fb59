package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"identity-dashboard/app/config"
	"identity-dashboard/app/domain"
	mocks "identity-dashboard/app/mocks"
	"identity-dashboard/app/port"
	"identity-dashboard/app/usecase"
	"identity-dashboard/app/utils/validator"
	"identity-dashboard/app/web"
)

const (
	testSecret    = "test-session-secret-0123456789"
	testCSRFToken = "csrf-test-token"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type panelMocks struct {
	identity *mocks.MockIdentityClient
	compute  *mocks.MockComputeClient
	volume   *mocks.MockVolumeClient
	network  *mocks.MockNetworkClient
}

type panelFixture struct {
	router   *echo.Echo
	mocks    panelMocks
	sessions *web.SessionManager
}

func newPanelFixture(t *testing.T, ctrl *gomock.Controller, settings config.PanelSettings) *panelFixture {
	t.Helper()

	pm := panelMocks{
		identity: mocks.NewMockIdentityClient(ctrl),
		compute:  mocks.NewMockComputeClient(ctrl),
		volume:   mocks.NewMockVolumeClient(ctrl),
		network:  mocks.NewMockNetworkClient(ctrl),
	}

	logger := testLogger()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	sessions := web.NewSessionManager(testSecret, time.Hour)

	projects := usecase.NewProjectUsecase(pm.identity, pm.identity, nil, logger)
	membership := usecase.NewMembershipUsecase(pm.identity, pm.identity, logger)
	quotas := usecase.NewQuotaUsecase(
		pm.compute, pm.volume, pm.network, nil,
		settings.DisabledQuotas, settings.EnableNetworkQuotas, logger)
	usage := usecase.NewUsageUsecase(pm.compute, settings.OverviewDaysRange, logger)

	router := NewRouter(RouterConfig{
		Logger:     logger,
		Renderer:   renderer,
		Sessions:   sessions,
		Projects:   projects,
		Membership: membership,
		Quotas:     quotas,
		Usage:      usage,
		Validator:  validator.New(),
		Settings:   settings,
	})

	return &panelFixture{router: router, mocks: pm, sessions: sessions}
}

func adminSession() web.Session {
	return web.Session{UserID: "admin-1", UserName: "admin", Admin: true}
}

func (f *panelFixture) sessionCookie(t *testing.T, s web.Session) *http.Cookie {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, f.sessions.Issue(c, s))
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == web.SessionCookie {
			return cookie
		}
	}
	t.Fatal("session cookie not issued")
	return nil
}

func (f *panelFixture) get(t *testing.T, s web.Session, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(f.sessionCookie(t, s))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *panelFixture) post(t *testing.T, s web.Session, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	form.Set("csrf_token", testCSRFToken)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(f.sessionCookie(t, s))
	req.AddCookie(&http.Cookie{Name: "dashboard_csrf", Value: testCSRFToken})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func assertMessageCount(t *testing.T, rec *httptest.ResponseRecorder, level string, want int) {
	t.Helper()
	assert.Equal(t, fmt.Sprintf("%d", want), rec.Header().Get("X-Messages-"+level),
		"unexpected %s message count", level)
}

func assertTemplate(t *testing.T, rec *httptest.ResponseRecorder, name string) {
	t.Helper()
	assert.Equal(t, name, rec.Header().Get(web.TemplateHeader))
}

func listedProjects() []domain.Project {
	return []domain.Project{
		{ID: "t1", Name: "test_tenant", DomainID: "d1", Enabled: true},
		{ID: "t2", Name: "disabled_tenant", DomainID: "d1", Enabled: false},
	}
}

func directoryExpectations(pm panelMocks) {
	pm.identity.EXPECT().DefaultRole(gomock.Any()).
		Return(&domain.Role{ID: "r1", Name: "member"}, nil)
	pm.identity.EXPECT().UserList(gomock.Any(), gomock.Any()).
		Return([]domain.User{
			{ID: "u1", Name: "alice", DomainID: "d1", Enabled: true},
			{ID: "u2", Name: "bob", DomainID: "d1", Enabled: true},
		}, nil)
	pm.identity.EXPECT().RoleList(gomock.Any()).
		Return([]domain.Role{
			{ID: "r1", Name: "member"},
			{ID: "r2", Name: "admin"},
		}, nil)
	pm.identity.EXPECT().GroupList(gomock.Any(), gomock.Any()).
		Return([]domain.Group{{ID: "g1", Name: "developers", DomainID: "d1"}}, nil)
}

func TestProjectsIndex_Admin(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, opts port.ProjectListOpts) ([]domain.Project, bool, error) {
			assert.True(t, opts.Admin)
			assert.Empty(t, opts.DomainID)
			return listedProjects(), false, nil
		})
	f.mocks.identity.EXPECT().DomainLookup(gomock.Any()).
		Return(map[string]string{"d1": "default"}, nil)

	rec := f.get(t, adminSession(), "/identity/projects")

	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "identity/projects/index.html")
	assert.Contains(t, rec.Body.String(), "test_tenant")
	assert.Contains(t, rec.Body.String(), "disabled_tenant")
	assert.NotContains(t, rec.Body.String(), "<em>")
}

func TestProjectsIndex_DomainContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, opts port.ProjectListOpts) ([]domain.Project, bool, error) {
			assert.Equal(t, "d1", opts.DomainID)
			return listedProjects(), false, nil
		})
	f.mocks.identity.EXPECT().DomainLookup(gomock.Any()).
		Return(map[string]string{"d1": "test_domain"}, nil)

	session := adminSession()
	session.DomainContext = "d1"
	session.DomainContextName = "test_domain"
	rec := f.get(t, session, "/identity/projects")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<em>test_domain:</em>")
}

func TestProjectsIndex_FilterFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := config.DefaultPanelSettings()
	settings.FilterFirst = true
	f := newPanelFixture(t, ctrl, settings)

	// No backend call happens until a filter is given.
	rec := f.get(t, adminSession(), "/identity/projects")

	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "identity/projects/index.html")
	assert.Contains(t, rec.Body.String(), "Please specify a search criteria first.")

	f.mocks.identity.EXPECT().ProjectList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, opts port.ProjectListOpts) ([]domain.Project, bool, error) {
			assert.Equal(t, map[string]string{"name": "test"}, opts.Filters)
			return listedProjects()[:1], false, nil
		})
	f.mocks.identity.EXPECT().DomainLookup(gomock.Any()).
		Return(map[string]string{}, nil)

	rec = f.get(t, adminSession(), "/identity/projects?filter=test")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_tenant")
}

func TestProjectsIndex_Member(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, opts port.ProjectListOpts) ([]domain.Project, bool, error) {
			assert.False(t, opts.Admin)
			assert.Equal(t, "u1", opts.UserID)
			return listedProjects()[:1], false, nil
		})
	f.mocks.identity.EXPECT().DomainLookup(gomock.Any()).
		Return(map[string]string{}, nil)

	rec := f.get(t, web.Session{UserID: "u1", UserName: "alice"}, "/identity/projects")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "/identity/projects/create")
}

func TestProjectsIndex_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectList(gomock.Any(), gomock.Any()).
		Return(nil, false, fmt.Errorf("identity service down"))

	rec := f.get(t, adminSession(), "/identity/projects")

	assert.Equal(t, http.StatusOK, rec.Code)
	assertMessageCount(t, rec, web.LevelError, 1)
	assert.Contains(t, rec.Body.String(), "Unable to retrieve project list.")
}

func TestProjectsIndex_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	req := httptest.NewRequest(http.MethodGet, "/identity/projects", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateProject_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	rec := f.get(t, web.Session{UserID: "u1", UserName: "alice"}, "/identity/projects/create")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateProject_Form(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().DefaultDomain(gomock.Any()).
		Return(&domain.Domain{ID: "d1", Name: "default", Enabled: true}, nil)
	directoryExpectations(f.mocks)

	rec := f.get(t, adminSession(), "/identity/projects/create")

	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "workflow.html")
	body := rec.Body.String()
	assert.Contains(t, body, "Create Project")
	assert.Contains(t, body, "Project Information")
	assert.Contains(t, body, "Project Members")
	assert.Contains(t, body, "Project Groups")
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "developers")
}

func TestCreateProject_FormDefaultRoleMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().DefaultDomain(gomock.Any()).
		Return(&domain.Domain{ID: "d1", Name: "default", Enabled: true}, nil)
	f.mocks.identity.EXPECT().DefaultRole(gomock.Any()).Return(nil, nil)

	rec := f.get(t, adminSession(), "/identity/projects/create")

	// The info step still renders; the membership steps are dropped and one
	// error message reports the failure.
	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "workflow.html")
	assertMessageCount(t, rec, web.LevelError, 1)
	assert.Contains(t, rec.Body.String(), "Project Information")
	assert.NotContains(t, rec.Body.String(), "Project Members")
}

func TestCreateProject_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	directoryExpectations(f.mocks)
	f.mocks.identity.EXPECT().ProjectCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p domain.Project) (*domain.Project, error) {
			assert.Equal(t, "happy_tenant", p.Name)
			assert.Equal(t, "d1", p.DomainID)
			assert.True(t, p.Enabled)
			created := p
			created.ID = "t9"
			return &created, nil
		})
	f.mocks.identity.EXPECT().RoleAssignmentList(gomock.Any(), "t9").
		Return(nil, nil).AnyTimes()
	f.mocks.identity.EXPECT().AddProjectUserRole(gomock.Any(), "t9", "u2", "r1").
		Return(nil)
	f.mocks.identity.EXPECT().AddProjectGroupRole(gomock.Any(), "t9", "g1", "r2").
		Return(nil)

	rec := f.post(t, adminSession(), "/identity/projects/create", url.Values{
		"name":          {"happy_tenant"},
		"description":   {"testing"},
		"domain_id":     {"d1"},
		"enabled":       {"on"},
		"role_r1":       {"u2"},
		"group_role_r2": {"g1"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/identity/projects", rec.Header().Get("Location"))
	assertMessageCount(t, rec, web.LevelSuccess, 1)
	assertMessageCount(t, rec, web.LevelError, 0)
}

func TestCreateProject_SubmitMissingName(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	directoryExpectations(f.mocks)
	f.mocks.identity.EXPECT().DomainGet(gomock.Any(), "d1").
		Return(&domain.Domain{ID: "d1", Name: "test_domain"}, nil).AnyTimes()

	rec := f.post(t, adminSession(), "/identity/projects/create", url.Values{
		"description": {"testing"},
		"domain_id":   {"d1"},
		"enabled":     {"on"},
	})

	// The form re-renders with the required-field message; the project is
	// never created.
	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "workflow.html")
	assert.Contains(t, rec.Body.String(), "This field is required.")
}

func TestCreateProject_SubmitCreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	directoryExpectations(f.mocks)
	f.mocks.identity.EXPECT().ProjectCreate(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("quota exceeded"))

	rec := f.post(t, adminSession(), "/identity/projects/create", url.Values{
		"name":      {"happy_tenant"},
		"domain_id": {"d1"},
		"enabled":   {"on"},
	})

	// The member steps have no project to grant on, so only the creation
	// failure is reported.
	assert.Equal(t, http.StatusFound, rec.Code)
	assertMessageCount(t, rec, web.LevelError, 1)
	assertMessageCount(t, rec, web.LevelSuccess, 0)
}

func TestCreateProject_SubmitGrantError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	directoryExpectations(f.mocks)
	f.mocks.identity.EXPECT().ProjectCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p domain.Project) (*domain.Project, error) {
			created := p
			created.ID = "t9"
			return &created, nil
		})
	f.mocks.identity.EXPECT().RoleAssignmentList(gomock.Any(), "t9").
		Return(nil, nil).AnyTimes()
	f.mocks.identity.EXPECT().AddProjectUserRole(gomock.Any(), "t9", "u2", "r1").
		Return(fmt.Errorf("conflict"))

	rec := f.post(t, adminSession(), "/identity/projects/create", url.Values{
		"name":      {"happy_tenant"},
		"domain_id": {"d1"},
		"enabled":   {"on"},
		"role_r1":   {"u2"},
	})

	// The project exists, so the user lands on the table with the grant
	// failure reported instead of a success.
	assert.Equal(t, http.StatusFound, rec.Code)
	assertMessageCount(t, rec, web.LevelError, 1)
	assertMessageCount(t, rec, web.LevelSuccess, 0)
}

func existingProject() *domain.Project {
	return &domain.Project{
		ID:          "t1",
		Name:        "test_tenant",
		Description: "a test tenant",
		DomainID:    "d1",
		Enabled:     true,
	}
}

func TestUpdateProject_Form(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectGet(gomock.Any(), "t1", true).
		Return(existingProject(), nil)
	directoryExpectations(f.mocks)
	f.mocks.identity.EXPECT().RoleAssignmentList(gomock.Any(), "t1").
		Return([]domain.RoleAssignment{
			{ProjectID: "t1", UserID: "u1", RoleID: "r1"},
		}, nil)
	f.mocks.identity.EXPECT().DomainGet(gomock.Any(), "d1").
		Return(&domain.Domain{ID: "d1", Name: "default"}, nil)

	rec := f.get(t, adminSession(), "/identity/projects/t1/update")

	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "workflow.html")
	assert.Contains(t, rec.Body.String(), `value="test_tenant"`)
}

func TestUpdateProject_FormDefaultRoleMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectGet(gomock.Any(), "t1", true).
		Return(existingProject(), nil)
	f.mocks.identity.EXPECT().DefaultRole(gomock.Any()).Return(nil, nil)
	f.mocks.identity.EXPECT().DomainGet(gomock.Any(), "d1").
		Return(&domain.Domain{ID: "d1", Name: "default"}, nil)

	rec := f.get(t, adminSession(), "/identity/projects/t1/update")

	// The info step still renders; the membership steps are dropped and one
	// error message reports the failure.
	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "workflow.html")
	assertMessageCount(t, rec, web.LevelError, 1)
	assertMessageCount(t, rec, web.LevelWarning, 0)
	assert.Contains(t, rec.Body.String(), `value="test_tenant"`)
	assert.NotContains(t, rec.Body.String(), "Project Members")
}

func TestUpdateProject_FormFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectGet(gomock.Any(), "t1", true).
		Return(nil, fmt.Errorf("not found"))

	rec := f.get(t, adminSession(), "/identity/projects/t1/update")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/identity/projects", rec.Header().Get("Location"))
	assertMessageCount(t, rec, web.LevelError, 1)
}

func TestUpdateProject_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectGet(gomock.Any(), "t1", true).
		Return(existingProject(), nil)
	directoryExpectations(f.mocks)
	f.mocks.identity.EXPECT().RoleAssignmentList(gomock.Any(), "t1").
		Return([]domain.RoleAssignment{
			{ProjectID: "t1", UserID: "u1", RoleID: "r1"},
		}, nil).AnyTimes()
	f.mocks.identity.EXPECT().ProjectUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p domain.Project) (*domain.Project, error) {
			assert.Equal(t, "renamed_tenant", p.Name)
			assert.False(t, p.Enabled)
			return &p, nil
		})
	// u2 gains member, u1 keeps it.
	f.mocks.identity.EXPECT().AddProjectUserRole(gomock.Any(), "t1", "u2", "r1").
		Return(nil)

	rec := f.post(t, adminSession(), "/identity/projects/t1/update", url.Values{
		"name":        {"renamed_tenant"},
		"description": {"still testing"},
		"domain_id":   {"d1"},
		"role_r1":     {"u1", "u2"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/identity/projects", rec.Header().Get("Location"))
	assertMessageCount(t, rec, web.LevelSuccess, 1)
	assertMessageCount(t, rec, web.LevelError, 0)
}

func TestUpdateProject_SubmitSelfRemovalWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectGet(gomock.Any(), "t1", true).
		Return(existingProject(), nil)
	directoryExpectations(f.mocks)
	// The acting admin holds a role on the project and the form drops it.
	f.mocks.identity.EXPECT().RoleAssignmentList(gomock.Any(), "t1").
		Return([]domain.RoleAssignment{
			{ProjectID: "t1", UserID: "admin-1", RoleID: "r2"},
		}, nil).AnyTimes()
	f.mocks.identity.EXPECT().ProjectUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p domain.Project) (*domain.Project, error) {
			return &p, nil
		})

	rec := f.post(t, adminSession(), "/identity/projects/t1/update", url.Values{
		"name":      {"test_tenant"},
		"domain_id": {"d1"},
		"enabled":   {"on"},
	})

	// The revocation is skipped, the save succeeds, and a warning tells the
	// admin why their role survived.
	assert.Equal(t, http.StatusFound, rec.Code)
	assertMessageCount(t, rec, web.LevelWarning, 1)
	assertMessageCount(t, rec, web.LevelSuccess, 1)
	assertMessageCount(t, rec, web.LevelError, 0)
}

func TestUpdateProject_SubmitUpdateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectGet(gomock.Any(), "t1", true).
		Return(existingProject(), nil)
	directoryExpectations(f.mocks)
	f.mocks.identity.EXPECT().RoleAssignmentList(gomock.Any(), "t1").
		Return(nil, nil).AnyTimes()
	f.mocks.identity.EXPECT().ProjectUpdate(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("backend down"))

	rec := f.post(t, adminSession(), "/identity/projects/t1/update", url.Values{
		"name":      {"test_tenant"},
		"domain_id": {"d1"},
		"enabled":   {"on"},
	})

	// The info step fails; the member steps have nothing to change.
	assert.Equal(t, http.StatusFound, rec.Code)
	assertMessageCount(t, rec, web.LevelError, 1)
	assertMessageCount(t, rec, web.LevelSuccess, 0)
}

func computeQuotas() domain.QuotaSet {
	return domain.QuotaSet{"instances": 10, "cores": 20, "ram": 51200}
}

func volumeQuotas() domain.QuotaSet {
	return domain.QuotaSet{"volumes": 10, "snapshots": 10, "gigabytes": 1000}
}

func emptyUsages() domain.QuotaUsageMap {
	return domain.QuotaUsageMap{}
}

func TestUpdateQuotas_Form(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := config.DefaultPanelSettings()
	settings.EnableNetworkQuotas = false
	f := newPanelFixture(t, ctrl, settings)

	f.mocks.compute.EXPECT().QuotaGet(gomock.Any(), "t1").Return(computeQuotas(), nil)
	f.mocks.volume.EXPECT().QuotaGet(gomock.Any(), "t1").Return(volumeQuotas(), nil)

	rec := f.get(t, adminSession(), "/identity/projects/t1/update_quotas")

	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "workflow.html")
	body := rec.Body.String()
	assert.Contains(t, body, `name="instances"`)
	assert.Contains(t, body, `value="10"`)
	assert.Contains(t, body, `name="gigabytes"`)
	assert.NotContains(t, body, "Network Quotas")
}

func TestUpdateQuotas_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := config.DefaultPanelSettings()
	settings.EnableNetworkQuotas = false
	f := newPanelFixture(t, ctrl, settings)

	f.mocks.compute.EXPECT().QuotaUsages(gomock.Any(), "t1").Return(emptyUsages(), nil)
	f.mocks.compute.EXPECT().QuotaUpdate(gomock.Any(), "t1", domain.QuotaSet{
		"instances": 15, "cores": 30,
	}).Return(nil)
	f.mocks.volume.EXPECT().QuotaUsages(gomock.Any(), "t1").Return(emptyUsages(), nil)
	f.mocks.volume.EXPECT().QuotaUpdate(gomock.Any(), "t1", domain.QuotaSet{
		"volumes": 20,
	}).Return(nil)

	rec := f.post(t, adminSession(), "/identity/projects/t1/update_quotas", url.Values{
		"instances": {"15"},
		"cores":     {"30"},
		"volumes":   {"20"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assertMessageCount(t, rec, web.LevelSuccess, 1)
	assertMessageCount(t, rec, web.LevelError, 0)
}

func TestUpdateQuotas_SubmitWithNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.network.EXPECT().QuotasExtensionSupported(gomock.Any()).
		Return(true, nil).AnyTimes()
	f.mocks.compute.EXPECT().QuotaUsages(gomock.Any(), "t1").Return(emptyUsages(), nil)
	f.mocks.compute.EXPECT().QuotaUpdate(gomock.Any(), "t1", gomock.Any()).Return(nil)
	f.mocks.network.EXPECT().QuotaUsages(gomock.Any(), "t1").Return(emptyUsages(), nil)
	f.mocks.network.EXPECT().QuotaUpdate(gomock.Any(), "t1", domain.QuotaSet{
		"networks": 5,
	}).Return(nil)

	rec := f.post(t, adminSession(), "/identity/projects/t1/update_quotas", url.Values{
		"instances": {"15"},
		"networks":  {"5"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assertMessageCount(t, rec, web.LevelSuccess, 1)
	assertMessageCount(t, rec, web.LevelError, 0)
}

func TestUpdateQuotas_SubmitServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := config.DefaultPanelSettings()
	settings.EnableNetworkQuotas = false
	f := newPanelFixture(t, ctrl, settings)

	f.mocks.compute.EXPECT().QuotaUsages(gomock.Any(), "t1").Return(emptyUsages(), nil)
	f.mocks.compute.EXPECT().QuotaUpdate(gomock.Any(), "t1", gomock.Any()).
		Return(fmt.Errorf("nova rejected the update"))
	f.mocks.volume.EXPECT().QuotaUsages(gomock.Any(), "t1").Return(emptyUsages(), nil)
	f.mocks.volume.EXPECT().QuotaUpdate(gomock.Any(), "t1", gomock.Any()).Return(nil)

	rec := f.post(t, adminSession(), "/identity/projects/t1/update_quotas", url.Values{
		"instances": {"15"},
		"volumes":   {"20"},
	})

	// The compute failure and the overall summary; the volume update still
	// went through.
	assert.Equal(t, http.StatusFound, rec.Code)
	assertMessageCount(t, rec, web.LevelError, 2)
	assertMessageCount(t, rec, web.LevelSuccess, 0)
}

func TestUpdateQuotas_SubmitInvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := config.DefaultPanelSettings()
	settings.EnableNetworkQuotas = false
	f := newPanelFixture(t, ctrl, settings)

	rec := f.post(t, adminSession(), "/identity/projects/t1/update_quotas", url.Values{
		"instances": {"-2"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "workflow.html")
	assert.Contains(t, rec.Body.String(), "instances must be -1 (unlimited) or a non-negative number")
}

func TestDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectGet(gomock.Any(), "t1", true).
		Return(existingProject(), nil)
	f.mocks.identity.EXPECT().DomainGet(gomock.Any(), "d1").
		Return(&domain.Domain{ID: "d1", Name: "default"}, nil)

	rec := f.get(t, adminSession(), "/identity/projects/t1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "identity/projects/detail.html")
	body := rec.Body.String()
	assert.Contains(t, body, "test_tenant")
	assert.Contains(t, body, "default")
}

func TestDetail_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectGet(gomock.Any(), "t1", true).
		Return(nil, fmt.Errorf("gone"))

	rec := f.get(t, adminSession(), "/identity/projects/t1")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/identity/projects", rec.Header().Get("Location"))
	assertMessageCount(t, rec, web.LevelError, 1)
}

func testUsage() *domain.ProjectUsage {
	return &domain.ProjectUsage{
		Servers: []domain.ServerUsage{
			{Name: "test_server", VCPUs: 2, RAMMB: 2048, DiskGB: 20, Hours: 1.25, Uptime: 4500, State: "active"},
		},
		TotalVCPUs: 2.5,
		TotalRAMMB: 2560,
		TotalDisk:  25,
		TotalHours: 1.25,
	}
}

func TestUsage_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.compute.EXPECT().ExtensionSupported(gomock.Any(), "SimpleTenantUsage").
		Return(true, nil)
	f.mocks.compute.EXPECT().UsageGet(gomock.Any(), "t1", gomock.Any(), gomock.Any()).
		Return(testUsage(), nil)

	rec := f.get(t, adminSession(), "/identity/projects/t1/usage")

	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "identity/projects/usage.html")
	body := rec.Body.String()
	assert.Contains(t, body, "test_server")
	assert.Contains(t, body, "format=csv")
}

func TestUsage_CSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.compute.EXPECT().ExtensionSupported(gomock.Any(), "SimpleTenantUsage").
		Return(true, nil)
	f.mocks.compute.EXPECT().UsageGet(gomock.Any(), "t1", gomock.Any(), gomock.Any()).
		Return(testUsage(), nil)

	rec := f.get(t, adminSession(), "/identity/projects/t1/usage?format=csv")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")

	lines := strings.Split(rec.Body.String(), "\r\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "Instance Name,VCPUs,RAM (MB),Disk (GB),Usage (Hours),Time since created (Seconds),State", lines[0])
	assert.Equal(t, "test_server,2,2048,20,1.25,4500,active", lines[1])
}

func TestUsage_ExtensionUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.compute.EXPECT().ExtensionSupported(gomock.Any(), "SimpleTenantUsage").
		Return(false, nil)

	rec := f.get(t, adminSession(), "/identity/projects/t1/usage")

	assert.Equal(t, http.StatusOK, rec.Code)
	assertTemplate(t, rec, "identity/projects/usage.html")
	assert.Contains(t, rec.Body.String(), "No items to display.")
}

func TestUsage_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.compute.EXPECT().ExtensionSupported(gomock.Any(), "SimpleTenantUsage").
		Return(true, nil)
	f.mocks.compute.EXPECT().UsageGet(gomock.Any(), "t1", gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("nova down"))

	rec := f.get(t, adminSession(), "/identity/projects/t1/usage")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/identity/projects", rec.Header().Get("Location"))
	assertMessageCount(t, rec, web.LevelError, 1)
}

func TestPost_RejectsMissingCSRFToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	form := url.Values{"name": {"happy_tenant"}, "domain_id": {"d1"}}
	req := httptest.NewRequest(http.MethodPost, "/identity/projects/create", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(f.sessionCookie(t, adminSession()))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProject_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectGet(gomock.Any(), "t1", true).
		Return(existingProject(), nil)
	f.mocks.identity.EXPECT().ProjectDelete(gomock.Any(), "t1").Return(nil)

	rec := f.post(t, adminSession(), "/identity/projects/t1/delete", url.Values{})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/identity/projects", rec.Header().Get("Location"))
	assertMessageCount(t, rec, web.LevelSuccess, 1)
	assertMessageCount(t, rec, web.LevelError, 0)
}

func TestDeleteProject_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	f.mocks.identity.EXPECT().ProjectGet(gomock.Any(), "t1", true).
		Return(existingProject(), nil)
	f.mocks.identity.EXPECT().ProjectDelete(gomock.Any(), "t1").
		Return(fmt.Errorf("keystone down"))

	rec := f.post(t, adminSession(), "/identity/projects/t1/delete", url.Values{})

	assert.Equal(t, http.StatusFound, rec.Code)
	assertMessageCount(t, rec, web.LevelError, 1)
	assertMessageCount(t, rec, web.LevelSuccess, 0)
}

func TestHealthEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newPanelFixture(t, ctrl, config.DefaultPanelSettings())

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "identity-dashboard")

	req = httptest.NewRequest(http.MethodGet, "/v1/live", nil)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
