//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/observability"
	"github.com/shenikar/disaster_preparedness/internal/repository"
	"github.com/shenikar/disaster_preparedness/internal/service"
	"github.com/shenikar/disaster_preparedness/migrations"
	"github.com/shenikar/disaster_preparedness/pkg/logger"
	"github.com/shenikar/disaster_preparedness/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// startPostgres поднимает контейнер, применяет миграции и возвращает пул
func startPostgres(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("preparedness"),
		tcpostgres.WithUsername("prep"),
		tcpostgres.WithPassword("prep"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err, "start postgres container")

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, migrations.Up(dsn), "apply migrations")

	pool, err := postgres.NewPostgresDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seed(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	seeder := service.NewSeeder(
		repository.NewSeedRepository(pool),
		observability.NewMetricsForTesting(),
		logger.New("error"),
	)
	require.NoError(t, seeder.Initialize(ctx))
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	pool := startPostgres(ctx, t)

	seed(ctx, t, pool)

	goBag := repository.NewGoBagRepository(pool)
	items, err := goBag.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, len(service.DefaultGoBagItems()))

	// отметка пользователя должна пережить повторный посев
	_, err = goBag.UpdateChecked(ctx, items[0].ID, true)
	require.NoError(t, err)

	evacuation := repository.NewEvacuationRepository(pool)
	centers, err := evacuation.List(ctx)
	require.NoError(t, err)
	_, err = evacuation.UpdateStatus(ctx, centers[0].ID, models.CenterStatusClosed)
	require.NoError(t, err)

	seed(ctx, t, pool)

	items, err = goBag.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(service.DefaultGoBagItems()))
	assert.True(t, items[0].Checked)

	centers, err = evacuation.List(ctx)
	require.NoError(t, err)
	assert.Len(t, centers, len(service.DefaultEvacuationCenters()))
	assert.Equal(t, models.CenterStatusClosed, centers[0].Status)

	family := repository.NewFamilyRepository(pool)
	households, err := family.ListHouseholds(ctx)
	require.NoError(t, err)
	require.Len(t, households, 1)

	_, defaults := service.DefaultHousehold()
	members, err := family.ListMembersByHousehold(ctx, households[0].ID)
	require.NoError(t, err)
	assert.Len(t, members, len(defaults))

	maps := repository.NewMapRepository(pool)
	zones, err := maps.ListHazardZones(ctx)
	require.NoError(t, err)
	require.Len(t, zones, len(service.DefaultHazardZones()))
	assert.Equal(t, service.DefaultHazardZones()[0].Coordinates, zones[0].Coordinates)
}

func TestIncidentsAreListedInReportOrder(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	pool := startPostgres(ctx, t)

	repo := repository.NewIncidentRepository(pool)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lat, lon := 14.6, 120.98

	later := &models.Incident{Type: "fire", Description: "smoke", Location: "Block 4", ReportedAt: base.Add(time.Hour)}
	earlier := &models.Incident{
		Type: "flood", Description: "knee deep", Location: "Main St",
		Latitude: &lat, Longitude: &lon, IsAnonymous: true, ReportedAt: base,
	}
	require.NoError(t, repo.Create(ctx, later))
	require.NoError(t, repo.Create(ctx, earlier))
	assert.NotZero(t, later.ID)

	incidents, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, earlier.ID, incidents[0].ID)
	assert.True(t, incidents[0].IsAnonymous)
	require.NotNil(t, incidents[0].Latitude)
	assert.InDelta(t, lat, *incidents[0].Latitude, 1e-9)
	assert.Nil(t, incidents[1].Latitude)
}

func TestFamilyReferencesAndStatusUpdates(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	pool := startPostgres(ctx, t)

	repo := repository.NewFamilyRepository(pool)

	orphan := &models.Member{HouseholdID: 999, Name: "Ghost", Status: models.MemberStatusUnknown}
	assert.ErrorIs(t, repo.CreateMember(ctx, orphan), models.ErrReferenceNotFound)

	household := &models.Household{Name: "Santos"}
	require.NoError(t, repo.CreateHousehold(ctx, household))

	home := "Home"
	member := &models.Member{HouseholdID: household.ID, Name: "Lito", LastKnownLocation: &home, Status: models.MemberStatusUnknown}
	require.NoError(t, repo.CreateMember(ctx, member))

	// без нового местоположения сохраняется прежнее
	updated, err := repo.UpdateMemberStatus(ctx, member.ID, models.MemberStatusSafe, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MemberStatusSafe, updated.Status)
	require.NotNil(t, updated.LastKnownLocation)
	assert.Equal(t, "Home", *updated.LastKnownLocation)

	_, err = repo.UpdateMemberStatus(ctx, 424242, models.MemberStatusDanger, nil)
	assert.ErrorIs(t, err, models.ErrNotFound)

	checkIn := &models.CheckIn{MemberID: member.ID, IsSafe: true, Timestamp: time.Now().UTC()}
	require.NoError(t, repo.CreateCheckIn(ctx, checkIn))

	bad := &models.CheckIn{MemberID: 424242, IsSafe: true, Timestamp: time.Now().UTC()}
	assert.ErrorIs(t, repo.CreateCheckIn(ctx, bad), models.ErrReferenceNotFound)

	checkIns, err := repo.ListCheckInsByMember(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, checkIns, 1)
	assert.Equal(t, checkIn.ID, checkIns[0].ID)
}

func TestPOIFilterByType(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	pool := startPostgres(ctx, t)
	seed(ctx, t, pool)

	repo := repository.NewMapRepository(pool)

	all, err := repo.ListPOIs(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(service.DefaultPOIs()))

	medical, err := repo.ListPOIs(ctx, "medical")
	require.NoError(t, err)
	require.NotEmpty(t, medical)
	for _, poi := range medical {
		assert.Equal(t, "medical", poi.Type)
	}

	none, err := repo.ListPOIs(ctx, "spaceport")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdatesTouchOnlyTargetRow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	pool := startPostgres(ctx, t)
	seed(ctx, t, pool)

	family := repository.NewFamilyRepository(pool)
	households, err := family.ListHouseholds(ctx)
	require.NoError(t, err)
	require.Len(t, households, 1)

	before, err := family.ListMembersByHousehold(ctx, households[0].ID)
	require.NoError(t, err)
	require.Len(t, before, 3)

	target := before[1]
	require.NotEqual(t, models.MemberStatusDanger, target.Status)
	_, err = family.UpdateMemberStatus(ctx, target.ID, models.MemberStatusDanger, nil)
	require.NoError(t, err)

	after, err := family.ListMembersByHousehold(ctx, households[0].ID)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i, member := range after {
		require.Equal(t, before[i].ID, member.ID)
		if member.ID == target.ID {
			assert.Equal(t, models.MemberStatusDanger, member.Status)
			continue
		}
		assert.Equal(t, before[i].Status, member.Status, "member %d", member.ID)
	}

	goBag := repository.NewGoBagRepository(pool)
	updated, err := goBag.UpdateChecked(ctx, 1, true)
	require.NoError(t, err)
	assert.True(t, updated.Checked)

	items, err := goBag.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, len(service.DefaultGoBagItems()))
	for _, item := range items {
		if item.ID == 1 {
			assert.True(t, item.Checked)
			continue
		}
		assert.False(t, item.Checked, "item %d", item.ID)
	}
}
