package services

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/TheoLaperrouse/SportChallenge/internal/models"
)

type fakeAnnouncer struct {
	crossings []string
}

func (f *fakeAnnouncer) AnnounceCrossing(category, overtakerName, overtakenName string) {
	f.crossings = append(f.crossings, fmt.Sprintf("%s:%s>%s", category, overtakerName, overtakenName))
}

func newOvertakeService(db *gorm.DB, announcer Announcer) *OvertakeService {
	return NewOvertakeService(db, NewSnapshotStore(db), rand.New(rand.NewSource(1)), announcer)
}

func notificationsFor(t *testing.T, db *gorm.DB, userID uint) []models.Notification {
	t.Helper()
	var rows []models.Notification
	require.NoError(t, db.Where("user_id = ?", userID).Order("id").Find(&rows).Error)
	return rows
}

func TestDetectCrossingAcrossTwoCycles(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, 1, "Alice", "Martin", "alice")
	bob := createUser(t, db, 2, "Bob", "Durand", "bob")

	// Cycle 1: both eligible (Run threshold 10000), Bob ahead, same order as
	// the previous cycle — nothing crosses.
	createActivity(t, db, alice.ID, 101, "Run", 12000)
	createActivity(t, db, bob.ID, 201, "Run", 15000)

	store := NewSnapshotStore(db)
	require.NoError(t, store.Set(context.Background(), alice.ID, "Run", 11000))
	require.NoError(t, store.Set(context.Background(), bob.ID, "Run", 14000))

	svc := newOvertakeService(db, nil)
	require.NoError(t, svc.Detect(context.Background()))

	assert.Empty(t, notificationsFor(t, db, alice.ID))
	assert.Empty(t, notificationsFor(t, db, bob.ID))

	prevAlice, err := store.Get(context.Background(), alice.ID, "Run")
	require.NoError(t, err)
	assert.Equal(t, 12000.0, prevAlice)
	prevBob, err := store.Get(context.Background(), bob.ID, "Run")
	require.NoError(t, err)
	assert.Equal(t, 15000.0, prevBob)

	// Cycle 2: Alice runs 4000 more, Bob only 500 — Alice crosses.
	createActivity(t, db, alice.ID, 102, "Run", 4000)
	createActivity(t, db, bob.ID, 202, "Run", 500)

	require.NoError(t, svc.Detect(context.Background()))

	aliceNotifs := notificationsFor(t, db, alice.ID)
	require.Len(t, aliceNotifs, 1)
	assert.Equal(t, models.NotificationOvertook, aliceNotifs[0].Type)
	assert.Equal(t, bob.ID, aliceNotifs[0].RelatedUserID)
	assert.Equal(t, "Run", aliceNotifs[0].ActivityType)
	assert.Contains(t, aliceNotifs[0].Message, "Bob Durand")

	bobNotifs := notificationsFor(t, db, bob.ID)
	require.Len(t, bobNotifs, 1)
	assert.Equal(t, models.NotificationOvertaken, bobNotifs[0].Type)
	assert.Equal(t, alice.ID, bobNotifs[0].RelatedUserID)
	assert.Contains(t, bobNotifs[0].Message, "Alice Martin")

	prevAlice, err = store.Get(context.Background(), alice.ID, "Run")
	require.NoError(t, err)
	assert.Equal(t, 16000.0, prevAlice)
	prevBob, err = store.Get(context.Background(), bob.ID, "Run")
	require.NoError(t, err)
	assert.Equal(t, 15500.0, prevBob)
}

func TestDetectFirstCycleWithoutHistoryEmits(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, 1, "Alice", "Martin", "alice")
	bob := createUser(t, db, 2, "Bob", "Durand", "bob")

	// No snapshots yet: both previous sums default to 0, so the leader's
	// strictly-greater total counts as a crossing on the very first cycle.
	createActivity(t, db, alice.ID, 101, "Run", 12000)
	createActivity(t, db, bob.ID, 201, "Run", 15000)

	announcer := &fakeAnnouncer{}
	svc := newOvertakeService(db, announcer)
	require.NoError(t, svc.Detect(context.Background()))

	bobNotifs := notificationsFor(t, db, bob.ID)
	require.Len(t, bobNotifs, 1)
	assert.Equal(t, models.NotificationOvertook, bobNotifs[0].Type)
	assert.Equal(t, alice.ID, bobNotifs[0].RelatedUserID)

	aliceNotifs := notificationsFor(t, db, alice.ID)
	require.Len(t, aliceNotifs, 1)
	assert.Equal(t, models.NotificationOvertaken, aliceNotifs[0].Type)

	assert.Equal(t, []string{"Run:Bob Durand>Alice Martin"}, announcer.crossings)

	// A second cycle with no new distance stays quiet: order and sums match
	// the freshly written snapshots.
	require.NoError(t, svc.Detect(context.Background()))
	assert.Len(t, notificationsFor(t, db, bob.ID), 1)
	assert.Len(t, notificationsFor(t, db, alice.ID), 1)
}

func TestDetectTieNeverCrosses(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, 1, "Alice", "Martin", "alice")
	bob := createUser(t, db, 2, "Bob", "Durand", "bob")

	createActivity(t, db, alice.ID, 101, "Run", 14000)
	createActivity(t, db, bob.ID, 201, "Run", 14000)

	// Give them unequal history so only the strict-greater condition can save us.
	store := NewSnapshotStore(db)
	require.NoError(t, store.Set(context.Background(), alice.ID, "Run", 5000))
	require.NoError(t, store.Set(context.Background(), bob.ID, "Run", 12000))

	svc := newOvertakeService(db, nil)
	require.NoError(t, svc.Detect(context.Background()))

	var total int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestDetectEligibilityGating(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, 1, "Alice", "Martin", "alice")
	bob := createUser(t, db, 2, "Bob", "Durand", "bob")

	// Alice crosses Bob on raw numbers, but Bob is below the 10000m Run
	// threshold, so neither side may be notified.
	createActivity(t, db, alice.ID, 101, "Run", 12000)
	createActivity(t, db, bob.ID, 201, "Run", 9500)

	store := NewSnapshotStore(db)
	require.NoError(t, store.Set(context.Background(), alice.ID, "Run", 0))
	require.NoError(t, store.Set(context.Background(), bob.ID, "Run", 9000))

	svc := newOvertakeService(db, nil)
	require.NoError(t, svc.Detect(context.Background()))

	var total int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestDetectSnapshotsWrittenForIneligibleUsersToo(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, 1, "Alice", "Martin", "alice")
	bob := createUser(t, db, 2, "Bob", "Durand", "bob")

	createActivity(t, db, alice.ID, 101, "Run", 12000)
	createActivity(t, db, bob.ID, 201, "Run", 500) // far below threshold

	svc := newOvertakeService(db, nil)
	require.NoError(t, svc.Detect(context.Background()))

	store := NewSnapshotStore(db)
	prev, err := store.Get(context.Background(), bob.ID, "Run")
	require.NoError(t, err)
	assert.Equal(t, 500.0, prev)
}

func TestDetectReportsEveryPairwiseCrossing(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, 1, "Alice", "Martin", "alice")
	bob := createUser(t, db, 2, "Bob", "Durand", "bob")
	carol := createUser(t, db, 3, "Carol", "Petit", "carol")

	createActivity(t, db, alice.ID, 101, "Run", 20000)
	createActivity(t, db, bob.ID, 201, "Run", 15000)
	createActivity(t, db, carol.ID, 301, "Run", 12000)

	// Last cycle Alice was behind both; Bob and Carol keep their order.
	store := NewSnapshotStore(db)
	require.NoError(t, store.Set(context.Background(), alice.ID, "Run", 1000))
	require.NoError(t, store.Set(context.Background(), bob.ID, "Run", 14000))
	require.NoError(t, store.Set(context.Background(), carol.ID, "Run", 11000))

	announcer := &fakeAnnouncer{}
	svc := newOvertakeService(db, announcer)
	require.NoError(t, svc.Detect(context.Background()))

	// Alice passed two users in one cycle: two pairs, four notifications.
	aliceNotifs := notificationsFor(t, db, alice.ID)
	assert.Len(t, aliceNotifs, 2)
	for _, n := range aliceNotifs {
		assert.Equal(t, models.NotificationOvertook, n.Type)
	}

	assert.Len(t, notificationsFor(t, db, bob.ID), 1)
	assert.Len(t, notificationsFor(t, db, carol.ID), 1)

	assert.ElementsMatch(t, []string{
		"Run:Alice Martin>Bob Durand",
		"Run:Alice Martin>Carol Petit",
	}, announcer.crossings)
}

func TestDetectCategoriesAreIndependent(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, 1, "Alice", "Martin", "alice")
	bob := createUser(t, db, 2, "Bob", "Durand", "bob")

	// Swim threshold is 1000m; the Run rows are below the Run threshold and
	// must not leak into Swim sums.
	createActivity(t, db, alice.ID, 101, "Swim", 2000)
	createActivity(t, db, bob.ID, 201, "Swim", 1500)
	createActivity(t, db, alice.ID, 102, "Run", 3000)

	store := NewSnapshotStore(db)
	require.NoError(t, store.Set(context.Background(), alice.ID, "Swim", 1000))
	require.NoError(t, store.Set(context.Background(), bob.ID, "Swim", 1400))

	svc := newOvertakeService(db, nil)
	require.NoError(t, svc.Detect(context.Background()))

	aliceNotifs := notificationsFor(t, db, alice.ID)
	require.Len(t, aliceNotifs, 1)
	assert.Equal(t, "Swim", aliceNotifs[0].ActivityType)

	runPrev, err := store.Get(context.Background(), alice.ID, "Run")
	require.NoError(t, err)
	assert.Equal(t, 3000.0, runPrev)
}

func TestDetectAggregatesTypeGroups(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, 1, "Alice", "Martin", "alice")

	// Run and TrailRun both count towards Run.
	createActivity(t, db, alice.ID, 101, "Run", 6000)
	createActivity(t, db, alice.ID, 102, "TrailRun", 7000)

	svc := newOvertakeService(db, nil)
	require.NoError(t, svc.Detect(context.Background()))

	prev, err := NewSnapshotStore(db).Get(context.Background(), alice.ID, "Run")
	require.NoError(t, err)
	assert.Equal(t, 13000.0, prev)
}
