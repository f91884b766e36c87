package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/merging"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/migration"
	"crm/internal/infra/persistence/model"
	"crm/internal/infra/pubsub"
	"crm/internal/usecase"
	"crm/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB starts a PostgreSQL container and applies the embedded migrations.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("crm"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")

	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(pgdriver.Open(connStr), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	migrator := migration.NewMigrator(db, logger)
	require.NoError(t, migrator.Up(ctx), "failed to migrate test database")

	version, dirty, err := migrator.Version(ctx)
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, uint(3), version)

	return db
}

func insertCustomer(t *testing.T, db *gorm.DB, customerM *model.CustomerModel) *entity.Customer {
	t.Helper()
	require.NoError(t, db.Create(customerM).Error)

	return toCustomerDomain(customerM)
}

func TestRepositories_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	tenantID := uuid.New()
	actor := entity.Actor{ID: uuid.New(), TenantID: tenantID, Name: "integration"}

	customers := NewCustomerRepository(db)
	related := NewRelatedRecordRepository(db)
	dismissals := NewDismissalRepository(db)
	merges := NewMergeRecordRepository(db)
	txManager := NewTransactionManager(db)

	t.Run("customer lookup computes keys and activity", func(t *testing.T) {
		c := insertCustomer(t, db, &model.CustomerModel{
			TenantID: tenantID,
			Name:     "ＳＡＫＡＩ　Yuki",
			Email:    " Yuki@Example.com",
			Phone:    "090-0000-1111",
		})
		occurred := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		require.NoError(t, db.Create(&model.ActivityModel{TenantID: tenantID, CustomerID: c.ID, Kind: "call", OccurredAt: occurred}).Error)

		var stored model.CustomerModel
		require.NoError(t, db.First(&stored, "id = ?", c.ID).Error)
		assert.Equal(t, "yuki@example.com", stored.EmailNormalized)
		assert.Equal(t, "09000001111", stored.PhoneDigits)
		assert.Equal(t, "sakai yuki", stored.NameNormalized)

		found, err := customers.FindCustomerByID(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, found.LastActivityAt)
		assert.True(t, occurred.Equal(*found.LastActivityAt))

		_, err = customers.FindCustomerByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})

	t.Run("duplicate candidates use normalized keys", func(t *testing.T) {
		ref := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "Noguchi", Email: "noguchi@example.com"})
		same := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "N", Email: "NOGUCHI@example.com "})
		merged := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "N2", Email: "noguchi@example.com", MergedIntoID: &ref.ID})
		insertCustomer(t, db, &model.CustomerModel{TenantID: uuid.New(), Name: "N3", Email: "noguchi@example.com"})

		candidates, err := customers.FindDuplicateCandidates(ctx, repository.DuplicateQuery{
			TenantID:  tenantID,
			ExcludeID: ref.ID,
			Email:     "noguchi@example.com",
		})
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, same.ID, candidates[0].ID)

		count, err := customers.CountMergedInto(ctx, ref.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.NotEqual(t, merged.ID, candidates[0].ID)
	})

	t.Run("duplicate scan limit only caps name matches", func(t *testing.T) {
		scanTenant := uuid.New()
		base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		ref := insertCustomer(t, db, &model.CustomerModel{TenantID: scanTenant, Name: "Ueda Rei", Email: "rei@example.com", UpdatedAt: base})
		emailMatch := insertCustomer(t, db, &model.CustomerModel{TenantID: scanTenant, Name: "R Ueda", Email: "rei@example.com", UpdatedAt: base.AddDate(-1, 0, 0)})
		older := insertCustomer(t, db, &model.CustomerModel{TenantID: scanTenant, Name: "Ueda Rei", UpdatedAt: base.AddDate(0, 0, 1)})
		recent := insertCustomer(t, db, &model.CustomerModel{TenantID: scanTenant, Name: "Ueda Rei", UpdatedAt: base.AddDate(0, 0, 2)})
		dismissed := insertCustomer(t, db, &model.CustomerModel{TenantID: scanTenant, Name: "Ueda Rei", UpdatedAt: base.AddDate(0, 0, 3)})

		candidates, err := customers.FindDuplicateCandidates(ctx, repository.DuplicateQuery{
			TenantID:     scanTenant,
			ExcludeID:    ref.ID,
			DismissedIDs: []uuid.UUID{dismissed.ID},
			Email:        "rei@example.com",
			Name:         "ueda rei",
			Limit:        1,
		})
		require.NoError(t, err)

		ids := make([]uuid.UUID, 0, len(candidates))
		for _, c := range candidates {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []uuid.UUID{emailMatch.ID, recent.ID}, ids)
		assert.NotContains(t, ids, older.ID)
	})

	t.Run("update customer refreshes keys", func(t *testing.T) {
		c := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "Before"})
		c.Name = "After Name"
		c.Phone = "(06) 1234-5678"
		c.PreferredAreas = []string{"Namba"}
		require.NoError(t, customers.UpdateCustomer(ctx, c))

		var stored model.CustomerModel
		require.NoError(t, db.First(&stored, "id = ?", c.ID).Error)
		assert.Equal(t, "after name", stored.NameNormalized)
		assert.Equal(t, "0612345678", stored.PhoneDigits)
		assert.Equal(t, []string{"Namba"}, []string(stored.PreferredAreas))

		err := customers.UpdateCustomer(ctx, &entity.Customer{ID: uuid.New(), Name: "ghost", Status: entity.CustomerStatusActive})
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})

	t.Run("related records move and move back", func(t *testing.T) {
		from := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "From"})
		to := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "To"})
		draft := &model.MessageDraftModel{TenantID: tenantID, CustomerID: from.ID, Channel: "line"}
		require.NoError(t, db.Create(draft).Error)
		require.NoError(t, db.Create(&model.InquiryModel{TenantID: tenantID, CustomerID: from.ID, Subject: "2LDK"}).Error)

		counts, err := related.CountByCustomer(ctx, from.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[entity.RelatedMessageDrafts])
		assert.Equal(t, int64(1), counts[entity.RelatedInquiries])
		assert.Equal(t, int64(0), counts[entity.RelatedAccessGrants])

		moved, err := related.MoveAll(ctx, entity.RelatedMessageDrafts, from.ID, to.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{draft.ID}, moved)

		n, err := related.MoveByIDs(ctx, entity.RelatedMessageDrafts, moved, from.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = related.MoveByIDs(ctx, entity.RelatedMessageDrafts, moved, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})

	t.Run("dismissal ledger", func(t *testing.T) {
		a := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "Ledger A"})
		b := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "Ledger B"})
		pair := entity.NewCustomerPair(b.ID, a.ID)

		dismissal := &entity.MergeDismissal{TenantID: tenantID, Pair: pair, DismissedBy: actor.ID, DismissedAt: time.Now().UTC()}
		require.NoError(t, dismissals.CreateDismissal(ctx, dismissal))
		assert.NotEqual(t, uuid.Nil, dismissal.ID)

		err := dismissals.CreateDismissal(ctx, &entity.MergeDismissal{TenantID: tenantID, Pair: pair, DismissedBy: actor.ID, DismissedAt: time.Now().UTC()})
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyDismissed)

		dismissed, err := dismissals.IsDismissed(ctx, tenantID, pair)
		require.NoError(t, err)
		assert.True(t, dismissed)

		partners, err := dismissals.FindDismissedPartnerIDs(ctx, tenantID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a.ID}, partners)

		listed, err := dismissals.ListDismissals(ctx, tenantID, &a.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, pair, listed[0].Pair)

		require.NoError(t, dismissals.DeleteDismissal(ctx, tenantID, pair))
		assert.ErrorIs(t, dismissals.DeleteDismissal(ctx, tenantID, pair), domainerrors.ErrDismissalNotFound)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		c := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "Rollback"})
		errAbort := errors.New("abort")

		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			locked, err := factory.NewCustomerRepository().LockCustomers(ctx, c.ID)
			if err != nil {
				return err
			}
			locked[0].Name = "Changed"
			if err := factory.NewCustomerRepository().UpdateCustomer(ctx, locked[0]); err != nil {
				return err
			}

			return errAbort
		})
		assert.ErrorIs(t, err, errAbort)

		found, err := customers.FindCustomerByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rollback", found.Name)
	})

	t.Run("merge and undo end to end", func(t *testing.T) {
		publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{Config: &config.Config{}, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
		require.NoError(t, err)

		svc := impl.NewMergeService(impl.MergeServiceParams{
			TxManager:      txManager,
			CustomerRepo:   customers,
			RelatedRepo:    related,
			MergeRepo:      merges,
			EventPublisher: publisher,
			Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		})

		p := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "Tanaka", Email: "t@x.com", Notes: "called once", LineID: "U-p"})
		s := insertCustomer(t, db, &model.CustomerModel{TenantID: tenantID, Name: "Tanaka Taro", Notes: "viewed room 203", LineID: "U-s"})
		grant := &model.AccessGrantModel{TenantID: tenantID, CustomerID: s.ID, PropertyID: uuid.New()}
		require.NoError(t, db.Create(grant).Error)

		record, err := svc.Merge(ctx, actor, &usecase.MergeInput{
			PrimaryID:   p.ID,
			SecondaryID: s.ID,
			Resolutions: entity.FieldResolutions{
				merging.FieldName:   entity.SideSecondary,
				merging.FieldLineID: entity.SidePrimary,
			},
		})
		require.NoError(t, err)

		absorbed, err := customers.FindCustomerByID(ctx, s.ID)
		require.NoError(t, err)
		require.NotNil(t, absorbed.MergedIntoID)
		require.NotNil(t, absorbed.LineDisconnectedByMergeID)
		assert.Equal(t, record.ID, *absorbed.LineDisconnectedByMergeID)

		stored, err := merges.FindMergeRecordByID(ctx, tenantID, record.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{grant.ID}, stored.MovedRecords[entity.RelatedAccessGrants])
		assert.Equal(t, "Tanaka", stored.PrimaryBefore.Name)
		assert.Equal(t, "U-s", stored.SeveredLineID)

		_, err = merges.FindMergeRecordByID(ctx, uuid.New(), record.ID)
		assert.ErrorIs(t, err, domainerrors.ErrMergeNotFound)

		latest, err := merges.FindLatestCompletedMergeID(ctx, tenantID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, latest)

		_, err = svc.Undo(ctx, actor, record.ID)
		require.NoError(t, err)

		latest, err = merges.FindLatestCompletedMergeID(ctx, tenantID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, latest)

		primary, err := customers.FindCustomerByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Tanaka", primary.Name)
		assert.Equal(t, "called once", primary.Notes)

		secondary, err := customers.FindCustomerByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Nil(t, secondary.MergedIntoID)
		assert.Nil(t, secondary.LineDisconnectedByMergeID)
		assert.Equal(t, "U-s", secondary.LineID)

		var grantAfter model.AccessGrantModel
		require.NoError(t, db.First(&grantAfter, "id = ?", grant.ID).Error)
		assert.Equal(t, s.ID, grantAfter.CustomerID)

		_, err = svc.Undo(ctx, actor, record.ID)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyUndone)

		undone, err := merges.ListMergeRecords(ctx, tenantID, repository.MergeRecordFilter{Status: entity.MergeStatusUndone})
		require.NoError(t, err)
		require.Len(t, undone, 1)
		assert.Equal(t, record.ID, undone[0].ID)
	})
}
