package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/taskboard-api/internal/auth"
	"github.com/yukikurage/taskboard-api/internal/cache"
	"github.com/yukikurage/taskboard-api/internal/database"
	"github.com/yukikurage/taskboard-api/internal/models"
	"github.com/yukikurage/taskboard-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeProvider struct {
	identity *auth.ExternalIdentity
	err      error
	calls    int
}

func (f *fakeProvider) Exchange(ctx context.Context, credential string) (*auth.ExternalIdentity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	identity := *f.identity
	return &identity, nil
}

type serviceTestEnv struct {
	db     *gorm.DB
	cache  *cache.MemoryCache
	google *fakeProvider
	github *fakeProvider

	users       *UserService
	auth        *AuthService
	dashboards  *DashboardService
	columns     *ColumnService
	cards       *CardService
	invitations *InvitationService
	access      *AccessService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(database.AllModels()...))

	userRepo := repository.NewUserRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	cardRepo := repository.NewCardRepository(db)

	hasher := auth.NewPasswordHasherWithCost(bcrypt.MinCost)
	issuer, err := auth.NewTokenIssuer(auth.TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	})
	require.NoError(t, err)

	tokenCache := cache.NewMemoryCache()
	google := &fakeProvider{}
	github := &fakeProvider{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := NewUserService(userRepo, hasher)
	items := NewChecklistItemService(repository.NewChecklistItemRepository(db))

	return serviceTestEnv{
		db:     db,
		cache:  tokenCache,
		google: google,
		github: github,
		users:  users,
		auth: NewAuthService(userRepo, users, hasher, issuer, tokenCache, auth.Providers{
			models.ProviderGoogle: google,
			models.ProviderGitHub: github,
		}, logger),
		dashboards: NewDashboardService(dashboardRepo, userRepo),
		columns:    NewColumnService(columnRepo, dashboardRepo),
		cards: NewCardService(cardRepo, columnRepo, dashboardRepo, userRepo, CardChildren{
			Labels:      NewLabelService(repository.NewLabelRepository(db)),
			Checklists:  NewChecklistService(repository.NewChecklistRepository(db), items),
			Comments:    NewCommentService(repository.NewCommentRepository(db), userRepo),
			Attachments: NewAttachmentService(repository.NewAttachmentRepository(db)),
		}),
		invitations: NewInvitationService(repository.NewInvitationRepository(db), dashboardRepo),
		access:      NewAccessService(dashboardRepo, columnRepo),
	}
}

func (env serviceTestEnv) register(t *testing.T, email string) *AuthResult {
	t.Helper()
	result, err := env.auth.Register(context.Background(), RegisterInput{Email: email, Password: "Aa1!aaaa"})
	require.NoError(t, err)
	return result
}

func (env serviceTestEnv) dashboard(t *testing.T, title, creatorID string) *models.Dashboard {
	t.Helper()
	dashboard, err := env.dashboards.Create(CreateDashboardInput{Title: title}, creatorID)
	require.NoError(t, err)
	return dashboard
}

func (env serviceTestEnv) column(t *testing.T, title, dashboardID string) *models.Column {
	t.Helper()
	column, err := env.columns.Create(CreateColumnInput{Title: title, DashboardID: dashboardID})
	require.NoError(t, err)
	return column
}

func (env serviceTestEnv) card(t *testing.T, title string, column *models.Column) *models.Card {
	t.Helper()
	card, err := env.cards.Create(CreateCardInput{Title: title, DashboardID: column.DashboardID, ColumnID: column.ID})
	require.NoError(t, err)
	return card
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
