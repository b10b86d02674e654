package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/vastra-crm/services"
	"github.com/yeremiapane/vastra-crm/testutil"
	"github.com/yeremiapane/vastra-crm/utils"
)

func TestFollowUpCreateDefaults(t *testing.T) {
	db := testutil.NewDB(t)
	seedCustomer(t, db, "CUST0001", "Anita Rao")
	svc := services.NewFollowUpService(db, utils.DiscardLogger(), fixedClock(nov1))

	f, err := svc.Create(context.Background(), services.FormMap{
		"customer_id": "CUST0001",
		"notes":       "Send new Kanjeevaram catalogue",
	})
	require.NoError(t, err)
	assert.Equal(t, "Open", f.Status)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), f.FollowUpDate)
}

func TestFollowUpCreateValidation(t *testing.T) {
	db := testutil.NewDB(t)
	seedCustomer(t, db, "CUST0001", "Anita Rao")
	svc := services.NewFollowUpService(db, utils.DiscardLogger(), fixedClock(nov1))

	_, err := svc.Create(context.Background(), services.FormMap{"status": "Later"})

	var verr *services.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Customer is required.", "Status must be Open or Done."}, verr.Messages)
}

func TestFollowUpCreateUnknownCustomer(t *testing.T) {
	db := testutil.NewDB(t)
	svc := services.NewFollowUpService(db, utils.DiscardLogger(), fixedClock(nov1))

	_, err := svc.Create(context.Background(), services.FormMap{"customer_id": "CUST0404"})
	assert.ErrorIs(t, err, services.ErrConstraint)
}

func TestFollowUpListSearch(t *testing.T) {
	db := testutil.NewDB(t)
	seedCustomer(t, db, "CUST0001", "Anita Rao")
	svc := services.NewFollowUpService(db, utils.DiscardLogger(), fixedClock(nov1))
	ctx := context.Background()

	_, err := svc.Create(ctx, services.FormMap{"customer_id": "CUST0001", "followup_date": "2025-10-01", "notes": "Diwali offer call"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, services.FormMap{"customer_id": "CUST0001", "followup_date": "05/10/2025", "notes": "Blouse fitting", "status": "Done"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Blouse fitting", all[0].Notes)

	done, err := svc.List(ctx, "done")
	require.NoError(t, err)
	assert.Len(t, done, 1)

	diwali, err := svc.List(ctx, "DIWALI")
	require.NoError(t, err)
	assert.Len(t, diwali, 1)
}
