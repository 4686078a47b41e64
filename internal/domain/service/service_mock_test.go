package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/chore-board/internal/catalog"
	"github.com/diegoclair/chore-board/internal/domain/contract"
	"github.com/diegoclair/chore-board/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testCatalogJSON has four persons for three weekly categories, so one joker.
const testCatalogJSON = `{
	"personer": ["NA", "OL", "BA", "AL"],
	"base_date": "2024-01-01",
	"ugentlig": {
		"køkken": ["Tøm opvaskeren", "Tør bordet af"],
		"bad": ["Vask toilet"],
		"stue": ["Støvsug"]
	},
	"månedlig": {
		"køkken": ["Afkalk elkedlen"],
		"overflader": ["Tør lister af", "Puds vinduer"]
	}
}`

var testNow = time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockTaskStateRepo *mocks.MockTaskStateRepo
	mockSettingsRepo  *mocks.MockSettingsRepo
	mockSessionRepo   *mocks.MockSessionRepo
	mockSlackClient   *mocks.MockSlackClient
	mockAuthService   *mocks.MockAuthService
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	taskStateRepo := mocks.NewMockTaskStateRepo(ctrl)
	dm.EXPECT().TaskState().Return(taskStateRepo).AnyTimes()

	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	sessionRepo := mocks.NewMockSessionRepo(ctrl)
	dm.EXPECT().Session().Return(sessionRepo).AnyTimes()

	// transactions run inline on the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockTaskStateRepo: taskStateRepo,
		mockSettingsRepo:  settingsRepo,
		mockSessionRepo:   sessionRepo,
		mockSlackClient:   mocks.NewMockSlackClient(ctrl),
		mockAuthService:   mocks.NewMockAuthService(ctrl),
	}

	// validate service creation
	services := New(dm, Options{
		Catalog:  testCatalog(t),
		Settings: newMemSettings(),
		Now:      func() time.Time { return testNow },
	})
	require.NotNil(t, services)

	return
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Parse([]byte(testCatalogJSON), time.UTC)
	require.NoError(t, err)
	return c
}

// memSettings is an in-memory SettingsRepo for tests that need real state.
type memSettings struct {
	values map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{values: map[string]string{}}
}

func (s *memSettings) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memSettings) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func (s *memSettings) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}
