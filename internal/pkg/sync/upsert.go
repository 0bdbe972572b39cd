package sync

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UpsertByStripeID reconciles one local record with a remote payload. dest
// must be a pointer to a model struct with a StripeID field. The row matching
// stripeID is loaded into dest; if none exists, one is created from defaults.
// For an existing row each default is compared against the current value and
// the record is saved once, only when something actually differs. Defaults
// are keyed by struct field name.
//
// Returns whether the row was created.
func UpsertByStripeID(db *gorm.DB, dest interface{}, stripeID string, defaults map[string]interface{}) (bool, error) {
	return UpsertByKey(db, dest, "stripe_id", "StripeID", stripeID, defaults)
}

// UpsertByKey is the general form for records not keyed on a provider id of
// their own, such as the per-customer discount. column names the database
// column to match, field the struct field it maps to.
func UpsertByKey(db *gorm.DB, dest interface{}, column, field string, key interface{}, defaults map[string]interface{}) (bool, error) {
	err := db.Where(column+" = ?", key).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := setField(dest, field, key); err != nil {
			return false, err
		}
		for name, value := range defaults {
			if err := setField(dest, name, value); err != nil {
				return false, err
			}
		}
		if err := db.Create(dest).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	changed := false
	for name, value := range defaults {
		field, err := structField(dest, name)
		if err != nil {
			return false, err
		}
		if valuesEqual(field.Interface(), value) {
			continue
		}
		if err := setField(dest, name, value); err != nil {
			return false, err
		}
		changed = true
	}
	if !changed {
		return false, nil
	}
	return false, db.Save(dest).Error
}

func structField(dest interface{}, name string) (reflect.Value, error) {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("upsert target must be a struct pointer, got %T", dest)
	}
	field := v.Elem().FieldByName(name)
	if !field.IsValid() {
		return reflect.Value{}, fmt.Errorf("upsert target %T has no field %q", dest, name)
	}
	return field, nil
}

func setField(dest interface{}, name string, value interface{}) error {
	field, err := structField(dest, name)
	if err != nil {
		return err
	}
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	rv := reflect.ValueOf(value)
	if rv.Type() != field.Type() {
		if !rv.Type().ConvertibleTo(field.Type()) {
			return fmt.Errorf("cannot assign %T to field %q (%s)", value, name, field.Type())
		}
		rv = rv.Convert(field.Type())
	}
	field.Set(rv)
	return nil
}

// valuesEqual compares a stored field value against an incoming default.
// Decimals compare numerically so that "10.5" and "10.50" do not trigger a
// spurious save; times compare with Equal for the same reason.
func valuesEqual(current, incoming interface{}) bool {
	if incoming == nil {
		cr := reflect.ValueOf(current)
		return current == nil || (cr.Kind() == reflect.Ptr && cr.IsNil())
	}
	if current == nil {
		return false
	}
	switch cv := current.(type) {
	case decimal.Decimal:
		if iv, ok := incoming.(decimal.Decimal); ok {
			return cv.Equal(iv)
		}
	case *decimal.Decimal:
		if iv, ok := incoming.(*decimal.Decimal); ok {
			if cv == nil || iv == nil {
				return cv == nil && iv == nil
			}
			return cv.Equal(*iv)
		}
	case time.Time:
		if iv, ok := incoming.(time.Time); ok {
			return cv.Equal(iv)
		}
	case *time.Time:
		if iv, ok := incoming.(*time.Time); ok {
			if cv == nil || iv == nil {
				return cv == nil && iv == nil
			}
			return cv.Equal(*iv)
		}
	}
	cr := reflect.ValueOf(current)
	ir := reflect.ValueOf(incoming)
	if cr.Kind() == reflect.Ptr && ir.Kind() == reflect.Ptr && cr.Type() == ir.Type() {
		if cr.IsNil() || ir.IsNil() {
			return cr.IsNil() && ir.IsNil()
		}
		return reflect.DeepEqual(cr.Elem().Interface(), ir.Elem().Interface())
	}
	if ir.IsValid() && cr.IsValid() && ir.Type() != cr.Type() && ir.Type().ConvertibleTo(cr.Type()) {
		return reflect.DeepEqual(current, ir.Convert(cr.Type()).Interface())
	}
	return reflect.DeepEqual(current, incoming)
}
