package sync

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkuebler/paymirror/app/models"
)

func TestUpsertCreatesOnFirstSight(t *testing.T) {
	db, _ := newTestDB(t)

	var p models.Plan
	created, err := UpsertByStripeID(db, &p, "plan_basic", map[string]interface{}{
		"Amount":   decimal.RequireFromString("9.99"),
		"Currency": "usd",
		"Name":     "Basic",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "plan_basic", p.StripeID)
	assert.Equal(t, "Basic", p.Name)
}

func TestUpsertUpdatesChangedFieldsOnce(t *testing.T) {
	db, _ := newTestDB(t)

	var p models.Plan
	_, err := UpsertByStripeID(db, &p, "plan_basic", map[string]interface{}{
		"Amount": decimal.RequireFromString("9.99"),
		"Name":   "Basic",
	})
	require.NoError(t, err)

	var p2 models.Plan
	created, err := UpsertByStripeID(db, &p2, "plan_basic", map[string]interface{}{
		"Amount": decimal.RequireFromString("14.99"),
		"Name":   "Basic",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, p.ID, p2.ID)
	assert.True(t, p2.Amount.Equal(decimal.RequireFromString("14.99")))

	var count int64
	require.NoError(t, db.Model(&models.Plan{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertIdenticalPayloadIssuesNoWrite(t *testing.T) {
	db, counter := newTestDB(t)

	defaults := map[string]interface{}{
		"Amount":   decimal.RequireFromString("9.99"),
		"Currency": "usd",
		"Name":     "Basic",
	}
	var p models.Plan
	_, err := UpsertByStripeID(db, &p, "plan_basic", defaults)
	require.NoError(t, err)

	before := counter.Count()
	var p2 models.Plan
	created, err := UpsertByStripeID(db, &p2, "plan_basic", defaults)
	require.NoError(t, err)
	assert.False(t, created)

	// The second pass must be read-only: exactly the lookup, no save.
	assert.Equal(t, int64(1), counter.Count()-before)
}

func TestUpsertDecimalScaleDoesNotTriggerWrite(t *testing.T) {
	db, counter := newTestDB(t)

	var p models.Plan
	_, err := UpsertByStripeID(db, &p, "plan_basic", map[string]interface{}{
		"Amount": decimal.RequireFromString("10.50"),
	})
	require.NoError(t, err)

	before := counter.Count()
	var p2 models.Plan
	_, err = UpsertByStripeID(db, &p2, "plan_basic", map[string]interface{}{
		"Amount": decimal.RequireFromString("10.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counter.Count()-before)
}

func TestUpsertNilPointerDefaults(t *testing.T) {
	db, counter := newTestDB(t)

	var c models.Coupon
	_, err := UpsertByStripeID(db, &c, "off25", map[string]interface{}{
		"AmountOff": (*decimal.Decimal)(nil),
		"Duration":  "once",
	})
	require.NoError(t, err)
	assert.Nil(t, c.AmountOff)

	before := counter.Count()
	var c2 models.Coupon
	_, err = UpsertByStripeID(db, &c2, "off25", map[string]interface{}{
		"AmountOff": (*decimal.Decimal)(nil),
		"Duration":  "once",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), counter.Count()-before)
}

func TestUpsertUnknownFieldErrors(t *testing.T) {
	db, _ := newTestDB(t)

	var p models.Plan
	_, err := UpsertByStripeID(db, &p, "plan_basic", map[string]interface{}{
		"NoSuchField": "x",
	})
	require.Error(t, err)
}
