package handler

import (
	"net/http"
	"testing"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	mockUsecase "placebook/internal/mocks/usecase"
	"placebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationHandler(t *testing.T) (*LocationHandler, *mockUsecase.MockLocationUsecase) {
	locationUC := mockUsecase.NewMockLocationUsecase(t)

	return NewLocationHandler(LocationHandlerParams{LocationUC: locationUC, Logger: newTestLogger()}), locationUC
}

func ferryBuilding(collectionID uuid.UUID) *entity.Location {
	return entity.NewLocation(entity.LocationParams{
		CollectionID: collectionID,
		Name:         "Ferry Building",
		Address:      "1 Ferry Building, San Francisco, CA 94111",
		Coordinate:   entity.Coordinate{Latitude: 37.7955, Longitude: -122.3937},
		SyncStatus:   entity.SyncStatusPendingCreate,
	})
}

func TestLocationHandler_ListLocations(t *testing.T) {
	h, locationUC := newLocationHandler(t)
	userID := uuid.New()
	collectionID := uuid.New()

	locationUC.EXPECT().ListLocations(mock.Anything, userID, collectionID).
		Return([]*entity.Location{ferryBuilding(collectionID)}, nil).Once()

	c, rec := newUserContext(userID, http.MethodGet, "/api/v1/collections/"+collectionID.String()+"/locations", "")
	withIDParam(c, collectionID.String())
	require.NoError(t, h.ListLocations(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]LocationResponse](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, collectionID.String(), got[0].CollectionID)
	assert.Equal(t, "saved", got[0].Origin)
}

func TestLocationHandler_AddLocation(t *testing.T) {
	h, locationUC := newLocationHandler(t)
	userID := uuid.New()
	collectionID := uuid.New()

	want := &usecase.AddLocationInput{
		Name:       "Ferry Building",
		Address:    "1 Ferry Building, San Francisco, CA 94111",
		Latitude:   37.7955,
		Longitude:  -122.3937,
		Tags:       []string{"market"},
		IsFavorite: true,
	}
	locationUC.EXPECT().AddLocation(mock.Anything, userID, collectionID, want).Return(ferryBuilding(collectionID), nil).Once()

	c, rec := newUserContext(userID, http.MethodPost, "/api/v1/collections/"+collectionID.String()+"/locations",
		`{"name":"Ferry Building","address":"1 Ferry Building, San Francisco, CA 94111","latitude":37.7955,"longitude":-122.3937,"tags":["market"],"is_favorite":true}`)
	withIDParam(c, collectionID.String())
	require.NoError(t, h.AddLocation(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Ferry Building", decodeData[LocationResponse](t, rec).Name)
}

func TestLocationHandler_AddLocation_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUsecase.MockLocationUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "latitude out of range",
			body:       `{"name":"Nowhere","latitude":91,"longitude":0}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "missing name",
			body:       `{"latitude":1,"longitude":1}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "collection full",
			body: `{"name":"Ferry Building","latitude":37.7955,"longitude":-122.3937}`,
			setup: func(uc *mockUsecase.MockLocationUsecase) {
				uc.EXPECT().AddLocation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrLocationLimitExceeded).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "LOCATION_LIMIT_EXCEEDED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, locationUC := newLocationHandler(t)
			if tt.setup != nil {
				tt.setup(locationUC)
			}

			collectionID := uuid.New().String()
			c, rec := newUserContext(uuid.New(), http.MethodPost, "/api/v1/collections/"+collectionID+"/locations", tt.body)
			withIDParam(c, collectionID)
			require.NoError(t, h.AddLocation(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestLocationHandler_SaveResolvedLocation(t *testing.T) {
	h, locationUC := newLocationHandler(t)
	userID := uuid.New()
	collectionID := uuid.New()

	locationUC.EXPECT().SaveResolvedLocation(mock.Anything, userID, collectionID, mock.MatchedBy(func(l *entity.Location) bool {
		return l.Name == "Empire State Building" &&
			l.Origin == entity.OriginMapSelection &&
			l.IsTransient() &&
			l.Latitude == 40.74843124 &&
			l.ExternalPlaceID == "W34633854"
	})).Return(entity.NewLocation(entity.LocationParams{
		CollectionID:    collectionID,
		ExternalPlaceID: "W34633854",
		Name:            "Empire State Building",
		Coordinate:      entity.Coordinate{Latitude: 40.74843124, Longitude: -73.98565657},
		SyncStatus:      entity.SyncStatusPendingCreate,
	}), nil).Once()

	c, rec := newUserContext(userID, http.MethodPost, "/api/v1/collections/"+collectionID.String()+"/locations/resolved",
		`{"name":"Empire State Building","latitude":40.748431236,"longitude":-73.985656574,"external_place_id":"W34633854","origin":"map_selection"}`)
	withIDParam(c, collectionID.String())
	require.NoError(t, h.SaveResolvedLocation(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[LocationResponse](t, rec)
	assert.Equal(t, collectionID.String(), got.CollectionID)
	assert.Equal(t, "saved", got.Origin)
}

func TestLocationHandler_SaveResolvedLocation_RejectsSavedOrigin(t *testing.T) {
	h, _ := newLocationHandler(t)
	collectionID := uuid.New().String()

	c, rec := newUserContext(uuid.New(), http.MethodPost, "/api/v1/collections/"+collectionID+"/locations/resolved",
		`{"name":"Empire State Building","latitude":40.7484,"longitude":-73.9857,"origin":"saved"}`)
	withIDParam(c, collectionID)
	require.NoError(t, h.SaveResolvedLocation(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"origin": "oneof"}, decodeError(t, rec).Details)
}

func TestLocationHandler_GetLocation_NotFound(t *testing.T) {
	h, locationUC := newLocationHandler(t)
	userID := uuid.New()
	locationID := uuid.New()

	locationUC.EXPECT().GetLocation(mock.Anything, userID, locationID).Return(nil, domainerrors.ErrLocationNotFound).Once()

	c, rec := newUserContext(userID, http.MethodGet, "/api/v1/locations/"+locationID.String(), "")
	withIDParam(c, locationID.String())
	require.NoError(t, h.GetLocation(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "LOCATION_NOT_FOUND", decodeError(t, rec).Code)
}

func TestLocationHandler_UpdateLocation(t *testing.T) {
	h, locationUC := newLocationHandler(t)
	userID := uuid.New()
	location := ferryBuilding(uuid.New())
	location.IsFavorite = true

	locationUC.EXPECT().UpdateLocation(mock.Anything, userID, location.ID, mock.MatchedBy(func(in *usecase.UpdateLocationInput) bool {
		return in.IsFavorite != nil && *in.IsFavorite && in.Name == nil && in.Latitude == nil
	})).Return(location, nil).Once()

	c, rec := newUserContext(userID, http.MethodPut, "/api/v1/locations/"+location.ID.String(), `{"is_favorite":true}`)
	withIDParam(c, location.ID.String())
	require.NoError(t, h.UpdateLocation(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[LocationResponse](t, rec).IsFavorite)
}

func TestLocationHandler_DeleteLocation(t *testing.T) {
	userID := uuid.New()
	locationID := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not the owner", err: domainerrors.ErrForbidden.WrapMessage("location belongs to another owner"), wantStatus: http.StatusForbidden},
		{name: "already gone", err: domainerrors.ErrLocationNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, locationUC := newLocationHandler(t)
			locationUC.EXPECT().DeleteLocation(mock.Anything, userID, locationID).Return(tt.err).Once()

			c, rec := newUserContext(userID, http.MethodDelete, "/api/v1/locations/"+locationID.String(), "")
			withIDParam(c, locationID.String())
			require.NoError(t, h.DeleteLocation(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
