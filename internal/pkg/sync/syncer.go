package sync

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
)

// Syncer holds the collaborators every sync routine needs. All routines run
// synchronously in the caller's goroutine; the database's own transactional
// behavior is the only consistency mechanism.
type Syncer struct {
	db     *gorm.DB
	client stripeapi.Client
	log    zerolog.Logger
}

func NewSyncer(db *gorm.DB, client stripeapi.Client, log zerolog.Logger) *Syncer {
	return &Syncer{db: db, client: client, log: log}
}

// DB exposes the underlying handle for callers that mix sync calls with
// their own queries.
func (s *Syncer) DB() *gorm.DB {
	return s.db
}

func (s *Syncer) Client() stripeapi.Client {
	return s.client
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// timeFromUnix maps a provider timestamp onto a nullable column. The
// provider uses zero for "not set".
func timeFromUnix(ts int64) *time.Time {
	if ts == 0 {
		return nil
	}
	t := time.Unix(ts, 0).UTC()
	return &t
}

// marshalJSON serializes an opaque sub-document for text-column storage.
// encoding/json writes map keys in sorted order, which keeps repeated syncs
// of the same payload byte-identical.
func marshalJSON(v interface{}) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return ""
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
