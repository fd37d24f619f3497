package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	mockSvc "placebook/internal/mocks/service"
	"placebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type collectionServiceMocks struct {
	*txMocks
	qrCode    *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func newCollectionService(t *testing.T) (*collectionService, *collectionServiceMocks) {
	t.Helper()

	m := &collectionServiceMocks{
		txMocks:   newTxMocks(t),
		qrCode:    mockSvc.NewMockQRCodeService(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	srv := NewCollectionService(CollectionServiceParams{
		TxManager:      m.txManager,
		CollectionRepo: m.collectionRepo,
		LocationRepo:   m.locationRepo,
		QRCode:         m.qrCode,
		Publisher:      m.publisher,
		Config:         newTestConfig(),
		Logger:         newTestLogger(),
	}).(*collectionService)
	srv.now = func() time.Time { return fixedNow }

	return srv, m
}

func sharedCollection(ownerID uuid.UUID, token string) *entity.Collection {
	collection := ownedCollection(ownerID)
	collection.Visibility = entity.VisibilityShared
	collection.Share = &entity.ShareInfo{
		Token:    token,
		URL:      "https://placebook.test/shared/" + token,
		SharedAt: fixedNow.Add(-24 * time.Hour),
	}

	return collection
}

func TestCollectionService_CreateCollection(t *testing.T) {
	tests := []struct {
		name        string
		existing    int64
		wantDefault bool
	}{
		{name: "first collection is the default", existing: 0, wantDefault: true},
		{name: "later collections are not", existing: 1, wantDefault: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newCollectionService(t)
			ctx := context.Background()
			ownerID := uuid.New()

			m.collectionRepo.EXPECT().CountCollectionsByOwner(ctx, ownerID).Return(tt.existing, nil).Once()
			m.collectionRepo.EXPECT().CreateCollection(ctx, mock.AnythingOfType("*entity.Collection")).Return(nil).Once()
			m.publisher.EXPECT().
				PublishSyncEvent(ctx, mock.MatchedBy(func(event *entity.SyncEvent) bool {
					return event.EntityType == entity.SyncEntityCollection &&
						event.OwnerID == ownerID.String() &&
						event.Status == entity.SyncStatusPendingCreate
				})).
				Return(nil).
				Once()

			collection, err := srv.CreateCollection(ctx, ownerID, &usecase.CreateCollectionInput{Name: " Coffee ", Icon: "cup"})
			require.NoError(t, err)

			assert.Equal(t, "Coffee", collection.Name)
			assert.Equal(t, tt.wantDefault, collection.IsDefault)
			assert.Equal(t, entity.VisibilityPrivate, collection.Visibility)
			assert.Equal(t, ownerID, collection.OwnerID)
		})
	}
}

func TestCollectionService_CreateCollection_LimitExceeded(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.collectionRepo.EXPECT().CountCollectionsByOwner(ctx, ownerID).Return(int64(3), nil).Once()

	collection, err := srv.CreateCollection(ctx, ownerID, &usecase.CreateCollectionInput{Name: "One too many"})
	assert.Nil(t, collection)
	assert.ErrorIs(t, err, domainerrors.ErrCollectionLimitExceeded)
}

func TestCollectionService_UpdateCollection_PrivateRevokesShare(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	collection := sharedCollection(ownerID, "abc123")
	private := entity.VisibilityPrivate

	m.collectionRepo.EXPECT().FindCollectionByID(ctx, collection.ID).Return(collection, nil).Once()
	m.collectionRepo.EXPECT().UpdateCollection(ctx, collection).Return(nil).Once()
	m.publisher.EXPECT().PublishSyncEvent(ctx, mock.Anything).Return(nil).Once()

	updated, err := srv.UpdateCollection(ctx, ownerID, collection.ID, &usecase.UpdateCollectionInput{Visibility: &private})
	require.NoError(t, err)

	assert.Equal(t, entity.VisibilityPrivate, updated.Visibility)
	assert.Nil(t, updated.Share)
	assert.False(t, updated.IsShared())
	assert.Equal(t, entity.SyncStatusPendingUpdate, updated.SyncStatus)
}

func TestCollectionService_UpdateCollection_UnknownVisibility(t *testing.T) {
	srv, _ := newCollectionService(t)
	hidden := entity.Visibility("hidden")

	updated, err := srv.UpdateCollection(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateCollectionInput{Visibility: &hidden})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCollectionService_DeleteCollection(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	collection := ownedCollection(ownerID)

	m.collectionRepo.EXPECT().FindCollectionByID(ctx, collection.ID).Return(collection, nil).Once()
	m.locationRepo.EXPECT().MarkLocationsDeletedByCollection(ctx, collection.ID).Return(nil).Once()
	m.collectionRepo.EXPECT().
		UpdateCollection(ctx, mock.MatchedBy(func(c *entity.Collection) bool {
			return c.SyncStatus == entity.SyncStatusPendingDelete
		})).
		Return(nil).
		Once()
	m.publisher.EXPECT().
		PublishSyncEvent(ctx, mock.MatchedBy(func(event *entity.SyncEvent) bool {
			return event.EntityID == collection.ID.String() && event.Status == entity.SyncStatusPendingDelete
		})).
		Return(nil).
		Once()

	require.NoError(t, srv.DeleteCollection(ctx, ownerID, collection.ID))
}

func TestCollectionService_DeleteCollection_DefaultLocked(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	collection := ownedCollection(ownerID)
	collection.IsDefault = true

	m.collectionRepo.EXPECT().FindCollectionByID(ctx, collection.ID).Return(collection, nil).Once()

	err := srv.DeleteCollection(ctx, ownerID, collection.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDefaultCollectionLocked)
}

func TestCollectionService_DeleteCollection_NotFound(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	collectionID := uuid.New()

	m.collectionRepo.EXPECT().FindCollectionByID(ctx, collectionID).Return(nil, repository.ErrCollectionNotFound).Once()

	err := srv.DeleteCollection(ctx, uuid.New(), collectionID)
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotFound)
}

func TestCollectionService_ShareCollection(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	collection := ownedCollection(ownerID)
	srv.newShareToken = func() string { return "0f1e2d3c4b5a69788796a5b4c3d2e1f0" }

	m.collectionRepo.EXPECT().FindCollectionByID(ctx, collection.ID).Return(collection, nil).Once()
	m.qrCode.EXPECT().
		ShareURL("0f1e2d3c4b5a69788796a5b4c3d2e1f0").
		Return("https://placebook.test/shared/0f1e2d3c4b5a69788796a5b4c3d2e1f0").
		Once()
	m.collectionRepo.EXPECT().UpdateCollection(ctx, collection).Return(nil).Once()
	m.publisher.EXPECT().PublishSyncEvent(ctx, mock.Anything).Return(nil).Once()

	shared, err := srv.ShareCollection(ctx, ownerID, collection.ID)
	require.NoError(t, err)

	require.NotNil(t, shared.Share)
	assert.Equal(t, "0f1e2d3c4b5a69788796a5b4c3d2e1f0", shared.Share.Token)
	assert.Equal(t, "https://placebook.test/shared/0f1e2d3c4b5a69788796a5b4c3d2e1f0", shared.Share.URL)
	assert.Equal(t, fixedNow, shared.Share.SharedAt)
	assert.Equal(t, entity.VisibilityShared, shared.Visibility)
	assert.True(t, shared.IsShared())
}

func TestCollectionService_ShareCollection_Visibility(t *testing.T) {
	tests := []struct {
		name       string
		visibility entity.Visibility
		want       entity.Visibility
	}{
		{name: "unset becomes shared", visibility: "", want: entity.VisibilityShared},
		{name: "private becomes shared", visibility: entity.VisibilityPrivate, want: entity.VisibilityShared},
		{name: "public stays public", visibility: entity.VisibilityPublic, want: entity.VisibilityPublic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newCollectionService(t)
			ctx := context.Background()
			ownerID := uuid.New()
			collection := ownedCollection(ownerID)
			collection.Visibility = tt.visibility
			srv.newShareToken = func() string { return "token-1" }

			m.collectionRepo.EXPECT().FindCollectionByID(ctx, collection.ID).Return(collection, nil).Once()
			m.qrCode.EXPECT().ShareURL("token-1").Return("https://placebook.test/shared/token-1").Once()
			m.collectionRepo.EXPECT().UpdateCollection(ctx, collection).Return(nil).Once()
			m.publisher.EXPECT().PublishSyncEvent(ctx, mock.Anything).Return(nil).Once()

			shared, err := srv.ShareCollection(ctx, ownerID, collection.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, shared.Visibility)
			assert.True(t, shared.IsShared())
		})
	}
}

func TestCollectionService_ShareCollection_AlreadyShared(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	collection := sharedCollection(ownerID, "existing")

	m.collectionRepo.EXPECT().FindCollectionByID(ctx, collection.ID).Return(collection, nil).Once()

	shared, err := srv.ShareCollection(ctx, ownerID, collection.ID)
	require.NoError(t, err)
	assert.Equal(t, "existing", shared.Share.Token)
}

func TestCollectionService_ShareCollection_RetriesTokenConflict(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	tokens := []string{"taken", "free"}
	srv.newShareToken = func() string {
		token := tokens[0]
		tokens = tokens[1:]

		return token
	}

	m.collectionRepo.EXPECT().
		FindCollectionByID(ctx, mock.Anything).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Collection, error) {
			c := ownedCollection(ownerID)

			return c, nil
		}).
		Twice()
	m.qrCode.EXPECT().ShareURL(mock.Anything).Return("https://placebook.test/shared/x").Twice()
	m.collectionRepo.EXPECT().
		UpdateCollection(ctx, mock.MatchedBy(func(c *entity.Collection) bool { return c.Share.Token == "taken" })).
		Return(repository.ErrShareTokenConflict).
		Once()
	m.collectionRepo.EXPECT().
		UpdateCollection(ctx, mock.MatchedBy(func(c *entity.Collection) bool { return c.Share.Token == "free" })).
		Return(nil).
		Once()
	m.publisher.EXPECT().PublishSyncEvent(ctx, mock.Anything).Return(nil).Once()

	shared, err := srv.ShareCollection(ctx, ownerID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "free", shared.Share.Token)
}

func TestCollectionService_ShareCollection_GivesUpAfterRepeatedConflicts(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	m.collectionRepo.EXPECT().
		FindCollectionByID(ctx, mock.Anything).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Collection, error) {
			return ownedCollection(ownerID), nil
		}).
		Times(shareTokenAttempts)
	m.qrCode.EXPECT().ShareURL(mock.Anything).Return("https://placebook.test/shared/x").Times(shareTokenAttempts)
	m.collectionRepo.EXPECT().UpdateCollection(ctx, mock.Anything).Return(repository.ErrShareTokenConflict).Times(shareTokenAttempts)

	shared, err := srv.ShareCollection(ctx, ownerID, uuid.New())
	assert.Nil(t, shared)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestCollectionService_GetSharedCollection(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	collection := sharedCollection(uuid.New(), "abc123")
	locations := []*entity.Location{savedLocation(collection.ID, entity.SyncStatusSynced)}

	m.collectionRepo.EXPECT().FindCollectionByShareToken(ctx, "abc123").Return(collection, nil).Once()
	m.locationRepo.EXPECT().FindLocationsByCollection(ctx, collection.ID).Return(locations, nil).Once()

	shared, err := srv.GetSharedCollection(ctx, "abc123")
	require.NoError(t, err)
	assert.Same(t, collection, shared.Collection)
	assert.Equal(t, locations, shared.Locations)
}

func TestCollectionService_GetSharedCollection_FromScannedURL(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	collection := sharedCollection(uuid.New(), "abc123")

	m.qrCode.EXPECT().ParseShareQR("https://placebook.test/shared/abc123").Return("abc123", nil).Once()
	m.collectionRepo.EXPECT().FindCollectionByShareToken(ctx, "abc123").Return(collection, nil).Once()
	m.locationRepo.EXPECT().FindLocationsByCollection(ctx, collection.ID).Return(nil, nil).Once()

	shared, err := srv.GetSharedCollection(ctx, "https://placebook.test/shared/abc123")
	require.NoError(t, err)
	assert.Equal(t, collection.ID, shared.Collection.ID)
}

func TestCollectionService_GetSharedCollection_UnknownToken(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()

	m.collectionRepo.EXPECT().FindCollectionByShareToken(ctx, "nope").Return(nil, repository.ErrCollectionNotFound).Once()

	shared, err := srv.GetSharedCollection(ctx, "nope")
	assert.Nil(t, shared)
	assert.ErrorIs(t, err, domainerrors.ErrShareNotFound)
}

func TestCollectionService_ShareQRCode(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	collection := sharedCollection(ownerID, "abc123")
	png := []byte{0x89, 'P', 'N', 'G'}

	m.collectionRepo.EXPECT().FindCollectionByID(ctx, collection.ID).Return(collection, nil).Once()
	m.qrCode.EXPECT().GenerateShareQR("abc123").Return(png, nil).Once()

	got, err := srv.ShareQRCode(ctx, ownerID, collection.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCollectionService_ShareQRCode_GenerationFailure(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	collection := sharedCollection(ownerID, "abc123")

	m.collectionRepo.EXPECT().FindCollectionByID(ctx, collection.ID).Return(collection, nil).Once()
	m.qrCode.EXPECT().GenerateShareQR("abc123").Return(nil, errors.New("content too long")).Once()

	got, err := srv.ShareQRCode(ctx, ownerID, collection.ID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrQRCodeGenerationFailed)
}

func TestCollectionService_ExportGeoJSON(t *testing.T) {
	srv, m := newCollectionService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	collection := ownedCollection(ownerID)

	location := savedLocation(collection.ID, entity.SyncStatusSynced)
	location.Category = "market"

	m.collectionRepo.EXPECT().FindCollectionByID(ctx, collection.ID).Return(collection, nil).Once()
	m.locationRepo.EXPECT().FindLocationsByCollection(ctx, collection.ID).Return([]*entity.Location{location}, nil).Once()

	fc, err := srv.ExportGeoJSON(ctx, ownerID, collection.ID)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	feature := fc.Features[0]
	assert.Equal(t, location.ID.String(), feature.ID)
	assert.Equal(t, orb.Point{-122.3937, 37.7955}, feature.Geometry)
	assert.Equal(t, "Ferry Building", feature.Properties["name"])
	assert.Equal(t, "market", feature.Properties["category"])
	assert.NotContains(t, feature.Properties, "tags")
	assert.Equal(t, "Favourites", fc.ExtraMembers["name"])

	body, err := fc.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"type":"FeatureCollection"`)
}
