package impl

import (
	"context"
	"log/slog"
	"time"

	"wildtrack/internal/domain/entity"
	"wildtrack/internal/domain/repository"
	"wildtrack/internal/infra/persistence/model"
	"wildtrack/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Fixed sample values so repeated seed runs are reproducible: the four
// natural-key entities resolve to the same records every run, while
// telemetry, alert and sighting records are appended fresh.
const (
	sampleUserEmail    = "researcher@example.org"
	sampleUserName     = "Dr. Asha Rao"
	sampleSpecies      = "Sloth Bear"
	sampleAnimalTag    = "SB-001"
	sampleAnimalName   = "Tara"
	sampleDeviceID     = "DEV-ALPHA-001"
	sampleGeofenceName = "Bandipur Zone A"
)

// sampleGeofenceRing is a square around the Bandipur reserve area.
var sampleGeofenceRing = orb.Ring{
	{76.62, 11.64},
	{76.72, 11.64},
	{76.72, 11.72},
	{76.62, 11.72},
	{76.62, 11.64},
}

// sampleTrack is a short path inside the geofence, oldest first.
var sampleTrack = []struct {
	AgeBefore    time.Duration
	Lon, Lat     float64
	SpeedKmh     float64
	HeartRateBpm float64
	TemperatureC float64
}{
	{AgeBefore: 10 * time.Minute, Lon: 76.65, Lat: 11.66, SpeedKmh: 3.1, HeartRateBpm: 55.0, TemperatureC: 36.8},
	{AgeBefore: 5 * time.Minute, Lon: 76.67, Lat: 11.68, SpeedKmh: 4.2, HeartRateBpm: 58.0, TemperatureC: 36.9},
	{AgeBefore: 1 * time.Minute, Lon: 76.69, Lat: 11.70, SpeedKmh: 2.5, HeartRateBpm: 54.0, TemperatureC: 36.7},
}

// Seed populates one mutually-consistent record per entity kind, in
// dependency order so a referencing document is never written before its
// referent. The first storage error aborts the remaining steps; partially
// seeded state is left in place.
func (s *sampleDataService) Seed(ctx context.Context) (*usecase.SeedResult, error) {
	started := time.Now()
	result, err := s.seed(ctx)
	s.metrics.Observe("seed", started, err)

	return result, err
}

func (s *sampleDataService) seed(ctx context.Context) (*usecase.SeedResult, error) {
	now := s.now()

	// 1. User
	user, err := entity.NewUser(sampleUserEmail, sampleUserName, entity.RoleResearcher)
	if err != nil {
		return nil, err
	}
	userID, err := s.store.Collection(repository.CollectionUsers).
		UpsertByKey(ctx, repository.Document{"email": user.Email}, model.FromUserDomain(user))
	if err != nil {
		return nil, errors.Wrap(err, "seed user")
	}
	s.logger.Info("Seeded user", slog.String("id", userID))

	// 2. Animal
	animal, err := entity.NewAnimal(sampleSpecies, sampleAnimalTag, entity.SexFemale, 7.5, sampleAnimalName)
	if err != nil {
		return nil, err
	}
	animalID, err := s.store.Collection(repository.CollectionAnimals).
		UpsertByKey(ctx, repository.Document{"tag_id": animal.TagID}, model.FromAnimalDomain(animal))
	if err != nil {
		return nil, errors.Wrap(err, "seed animal")
	}
	s.logger.Info("Seeded animal", slog.String("id", animalID))

	// 3. Device
	device, err := entity.NewDevice(sampleDeviceID, animalID, entity.DeviceStatusActive, 88.5, now)
	if err != nil {
		return nil, err
	}
	deviceID, err := s.store.Collection(repository.CollectionDevices).
		UpsertByKey(ctx, repository.Document{"device_id": device.DeviceID}, model.FromDeviceDomain(device))
	if err != nil {
		return nil, errors.Wrap(err, "seed device")
	}
	s.logger.Info("Seeded device", slog.String("id", deviceID))

	// 4. Geofence
	geometry, err := entity.NewGeoPolygon(sampleGeofenceRing)
	if err != nil {
		return nil, err
	}
	fence, err := entity.NewGeofence(
		sampleGeofenceName,
		"Core monitoring area for sloth bears.",
		true,
		geometry,
		userID,
	)
	if err != nil {
		return nil, err
	}
	geofenceID, err := s.store.Collection(repository.CollectionGeofences).
		UpsertByKey(ctx, repository.Document{"name": fence.Name}, model.FromGeofenceDomain(fence))
	if err != nil {
		return nil, errors.Wrap(err, "seed geofence")
	}
	s.logger.Info("Seeded geofence", slog.String("id", geofenceID))

	// 5. Telemetry: a short route of three points inside the geofence
	telemetryColl := s.store.Collection(repository.CollectionTelemetry)
	telemetryIDs := make([]string, 0, len(sampleTrack))
	for _, step := range sampleTrack {
		location, err := entity.NewGeoPoint(step.Lon, step.Lat)
		if err != nil {
			return nil, err
		}
		point, err := entity.NewTelemetryPoint(entity.TelemetryInput{
			AnimalID:     animalID,
			DeviceID:     deviceID,
			Timestamp:    now.Add(-step.AgeBefore),
			Location:     location,
			SpeedKmh:     step.SpeedKmh,
			HeartRateBpm: step.HeartRateBpm,
			TemperatureC: step.TemperatureC,
		})
		if err != nil {
			return nil, err
		}

		pointID, err := telemetryColl.InsertOne(ctx, model.FromTelemetryDomain(point))
		if err != nil {
			return nil, errors.Wrap(err, "seed telemetry")
		}
		telemetryIDs = append(telemetryIDs, pointID)
	}
	s.logger.Info("Seeded telemetry", slog.Any("ids", telemetryIDs))

	// 6. Alert referencing the animal, with the geofence id in the metadata
	alert, err := entity.NewAlert(
		animalID,
		entity.AlertTypeGeofenceBreach,
		"Animal Tara crossed the northern boundary of Bandipur Zone A.",
		entity.AlertStatusOpen,
		&entity.AlertMetadata{GeofenceID: geofenceID, Severity: "medium"},
	)
	if err != nil {
		return nil, err
	}
	alertID, err := s.store.Collection(repository.CollectionAlerts).
		InsertOne(ctx, model.FromAlertDomain(alert))
	if err != nil {
		return nil, errors.Wrap(err, "seed alert")
	}
	s.logger.Info("Seeded alert", slog.String("id", alertID))

	// 7. Sighting reported by the seeded user
	sightingLocation, err := entity.NewGeoPoint(76.68, 11.69)
	if err != nil {
		return nil, err
	}
	sighting, err := entity.NewSighting(entity.SightingInput{
		Species:    sampleSpecies,
		ReporterID: userID,
		Timestamp:  now.Add(-time.Hour),
		Location:   sightingLocation,
		Notes:      "Observed foraging near termite mound. No cubs observed.",
		MediaURLs:  []string{"https://example.org/media/sighting1.jpg"},
		Confidence: 0.9,
	})
	if err != nil {
		return nil, err
	}
	sightingID, err := s.store.Collection(repository.CollectionSightings).
		InsertOne(ctx, model.FromSightingDomain(sighting))
	if err != nil {
		return nil, errors.Wrap(err, "seed sighting")
	}
	s.logger.Info("Seeded sighting", slog.String("id", sightingID))

	return &usecase.SeedResult{
		UsersID:      userID,
		AnimalsID:    animalID,
		DevicesID:    deviceID,
		TelemetryIDs: telemetryIDs,
		GeofenceID:   geofenceID,
		AlertID:      alertID,
		SightingID:   sightingID,
	}, nil
}
