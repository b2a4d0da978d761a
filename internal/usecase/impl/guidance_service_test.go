package impl

import (
	"context"
	"math"
	"testing"

	"skywitness/config"
	"skywitness/internal/domain/entity"
	domainerrors "skywitness/internal/domain/errors"
	mockUsecase "skywitness/internal/mocks/usecase"
	"skywitness/internal/navigation"
	"skywitness/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuidanceService(t *testing.T, cfg *config.Config) (usecase.GuidanceUsecase, *mockUsecase.MockSightingUsecase) {
	t.Helper()

	mockSightings := mockUsecase.NewMockSightingUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}
	svc := NewGuidanceService(GuidanceServiceParams{
		Sightings: mockSightings,
		Config:    cfg,
	})

	return svc, mockSightings
}

func TestGuidanceService_ComputeGuidance_Success(t *testing.T) {
	svc, mockSightings := newGuidanceService(t, nil)

	ctx := context.Background()
	sightingID := uuid.New()

	// Target due north of the observer, roughly 111 km away.
	mockSightings.EXPECT().
		GetSighting(ctx, sightingID).
		Return(&entity.Sighting{
			ID:        sightingID,
			Latitude:  26.0,
			Longitude: 121.5,
		}, nil)

	result, err := svc.ComputeGuidance(ctx, sightingID, &usecase.GuidanceRequest{
		Observer: usecase.ObserverInput{
			Latitude:    25.0,
			Longitude:   121.5,
			TrueHeading: 90.0,
			GroundSpeed: 60.0,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, sightingID, result.SightingID)
	assert.InDelta(t, 111.2, result.DistanceKm, 1.0)
	assert.InDelta(t, 0.0, result.Bearing, 0.5)
	assert.InDelta(t, -90.0, result.RelativeBearing, 0.5)
	assert.Equal(t, "N", result.Cardinal)
	require.NotNil(t, result.EstimatedTimeEnroute)
	// 111 km at 60 km/h is a bit under two hours.
	assert.InDelta(t, 6670, *result.EstimatedTimeEnroute, 120)
	assert.Nil(t, result.RequiredHeading)
	assert.Nil(t, result.WindAccuracy)
}

func TestGuidanceService_ComputeGuidance_SightingNotFound(t *testing.T) {
	svc, mockSightings := newGuidanceService(t, nil)

	ctx := context.Background()
	sightingID := uuid.New()

	mockSightings.EXPECT().
		GetSighting(ctx, sightingID).
		Return(nil, ErrSightingNotFound)

	result, err := svc.ComputeGuidance(ctx, sightingID, &usecase.GuidanceRequest{
		Observer: usecase.ObserverInput{Latitude: 25.0, Longitude: 121.5},
	})
	assert.Nil(t, result)
	assert.Equal(t, ErrSightingNotFound, err)
}

func TestGuidanceService_ComputeGuidance_CoincidentTarget(t *testing.T) {
	svc, mockSightings := newGuidanceService(t, nil)

	ctx := context.Background()
	sightingID := uuid.New()

	mockSightings.EXPECT().
		GetSighting(ctx, sightingID).
		Return(&entity.Sighting{
			ID:        sightingID,
			Latitude:  25.0,
			Longitude: 121.5,
		}, nil)

	result, err := svc.ComputeGuidance(ctx, sightingID, &usecase.GuidanceRequest{
		Observer: usecase.ObserverInput{Latitude: 25.0, Longitude: 121.5},
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrGuidanceUnavailable)
}

func TestGuidanceService_SolveDirect_WithWindCorrection(t *testing.T) {
	svc, _ := newGuidanceService(t, nil)

	tas := 100.0
	sol, err := svc.SolveDirect(&usecase.GuidanceRequest{
		Observer: usecase.ObserverInput{
			Latitude:     25.0,
			Longitude:    121.5,
			TrueHeading:  0.0,
			GroundSpeed:  100.0,
			TrueAirspeed: &tas,
		},
		Wind: &usecase.WindInput{
			DirectionFrom: 90.0, // pure crosswind from the east
			Speed:         30.0,
			Accuracy:      "measured",
		},
	}, 26.0, 121.5, nil)
	require.NoError(t, err)
	require.NotNil(t, sol)
	require.NotNil(t, sol.RequiredHeading)
	// Crab into the crosswind: required heading east of the due-north track.
	assert.Greater(t, *sol.RequiredHeading, 10.0)
	assert.Less(t, *sol.RequiredHeading, 25.0)
	require.NotNil(t, sol.DesiredTrack)
	assert.InDelta(t, 0.0, *sol.DesiredTrack, 0.5)
	require.NotNil(t, sol.WindAccuracy)
	assert.Equal(t, "measured", sol.WindAccuracy.String())
}

func TestGuidanceService_SolveDirect_InfeasibleWindDegrades(t *testing.T) {
	svc, _ := newGuidanceService(t, nil)

	tas := 20.0
	sol, err := svc.SolveDirect(&usecase.GuidanceRequest{
		Observer: usecase.ObserverInput{
			Latitude:     25.0,
			Longitude:    121.5,
			TrueHeading:  0.0,
			GroundSpeed:  20.0,
			TrueAirspeed: &tas,
		},
		Wind: &usecase.WindInput{
			DirectionFrom: 90.0,
			Speed:         80.0, // crosswind far beyond the airspeed
		},
	}, 26.0, 121.5, nil)
	require.NoError(t, err)
	require.NotNil(t, sol)
	assert.Nil(t, sol.RequiredHeading)
	assert.Nil(t, sol.TrackError)
	assert.Equal(t, navigation.WindInfeasible, sol.WindStatus)
	assert.InDelta(t, 111.2, sol.DistanceKm, 1.0)
}

func TestGuidanceService_ComputeGuidance_ReportsWindStatus(t *testing.T) {
	svc, mockSightings := newGuidanceService(t, nil)

	ctx := context.Background()
	sightingID := uuid.New()
	tas := 20.0

	mockSightings.EXPECT().
		GetSighting(ctx, sightingID).
		Return(&entity.Sighting{
			ID:        sightingID,
			Latitude:  26.0,
			Longitude: 121.5,
		}, nil).
		Twice()

	// Wind beyond the airspeed: the client still gets the uncorrected
	// solution, with the degradation named instead of implied by absence.
	result, err := svc.ComputeGuidance(ctx, sightingID, &usecase.GuidanceRequest{
		Observer: usecase.ObserverInput{
			Latitude:     25.0,
			Longitude:    121.5,
			TrueHeading:  0.0,
			GroundSpeed:  20.0,
			TrueAirspeed: &tas,
		},
		Wind: &usecase.WindInput{DirectionFrom: 90.0, Speed: 80.0},
	})
	require.NoError(t, err)
	assert.Nil(t, result.RequiredHeading)
	require.NotNil(t, result.WindStatus)
	assert.Equal(t, "infeasible", *result.WindStatus)

	// A manageable wind reports the corrected status alongside the fields.
	result, err = svc.ComputeGuidance(ctx, sightingID, &usecase.GuidanceRequest{
		Observer: usecase.ObserverInput{
			Latitude:     25.0,
			Longitude:    121.5,
			TrueHeading:  0.0,
			GroundSpeed:  20.0,
			TrueAirspeed: &tas,
		},
		Wind: &usecase.WindInput{DirectionFrom: 90.0, Speed: 5.0},
	})
	require.NoError(t, err)
	assert.NotNil(t, result.RequiredHeading)
	require.NotNil(t, result.WindStatus)
	assert.Equal(t, "corrected", *result.WindStatus)
}

func TestGuidanceService_SolveDirect_WindSpeedOutOfRange(t *testing.T) {
	cfg := &config.Config{
		Guidance: &config.GuidanceConfig{MaxWindSpeed: 150},
	}
	svc, _ := newGuidanceService(t, cfg)

	request := func(speed float64, gust *float64) *usecase.GuidanceRequest {
		return &usecase.GuidanceRequest{
			Observer: usecase.ObserverInput{
				Latitude:    25.0,
				Longitude:   121.5,
				TrueHeading: 0.0,
				GroundSpeed: 20.0,
			},
			Wind: &usecase.WindInput{DirectionFrom: 90.0, Speed: speed, Gust: gust},
		}
	}

	sol, err := svc.SolveDirect(request(200.0, nil), 26.0, 121.5, nil)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, domainerrors.ErrWindInfeasible)

	sol, err = svc.SolveDirect(request(-5.0, nil), 26.0, 121.5, nil)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, domainerrors.ErrWindInfeasible)

	sol, err = svc.SolveDirect(request(math.NaN(), nil), 26.0, 121.5, nil)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, domainerrors.ErrWindInfeasible)

	gust := 300.0
	sol, err = svc.SolveDirect(request(30.0, &gust), 26.0, 121.5, nil)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, domainerrors.ErrWindInfeasible)

	// At the boundary the reading is still accepted.
	sol, err = svc.SolveDirect(request(150.0, nil), 26.0, 121.5, nil)
	require.NoError(t, err)
	assert.NotNil(t, sol)
}

func TestGuidanceService_SolveDirect_DefaultDeclinationFromConfig(t *testing.T) {
	cfg := &config.Config{
		Guidance: &config.GuidanceConfig{DefaultDeclination: -4.5},
	}
	svc, _ := newGuidanceService(t, cfg)

	sol, err := svc.SolveDirect(&usecase.GuidanceRequest{
		Observer: usecase.ObserverInput{
			Latitude:    25.0,
			Longitude:   121.5,
			TrueHeading: 0.0,
		},
	}, 26.0, 121.5, nil)
	require.NoError(t, err)
	require.NotNil(t, sol.MagneticBearing)
	// West declination pushes the magnetic bearing east of true north.
	assert.InDelta(t, 4.5, *sol.MagneticBearing, 0.5)
}

func TestGuidanceService_SolveDirect_ExplicitDeclinationWins(t *testing.T) {
	cfg := &config.Config{
		Guidance: &config.GuidanceConfig{DefaultDeclination: -4.5},
	}
	svc, _ := newGuidanceService(t, cfg)

	declination := 10.0
	sol, err := svc.SolveDirect(&usecase.GuidanceRequest{
		Observer: usecase.ObserverInput{
			Latitude:    25.0,
			Longitude:   121.5,
			TrueHeading: 0.0,
		},
		Declination: &declination,
	}, 26.0, 121.5, nil)
	require.NoError(t, err)
	require.NotNil(t, sol.MagneticBearing)
	assert.InDelta(t, 350.0, *sol.MagneticBearing, 0.5)
}

func TestGuidanceService_SolveDirect_InvalidObserverCoordinate(t *testing.T) {
	svc, _ := newGuidanceService(t, nil)

	sol, err := svc.SolveDirect(&usecase.GuidanceRequest{
		Observer: usecase.ObserverInput{
			Latitude:  95.0,
			Longitude: 121.5,
		},
	}, 26.0, 121.5, nil)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}
