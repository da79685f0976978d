package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// dnsCache holds the previous list responses from a DNS provider.
type dnsCache struct {
	listZones   *ttlcache.Cache[struct{}, []Zone] // all zones
	listRecords *ttlcache.Cache[ID, *[]Record]    // zone IDs to records
}

func newCache[K comparable, V any](cacheExpiration time.Duration) *ttlcache.Cache[K, V] {
	return ttlcache.New(
		ttlcache.WithDisableTouchOnHit[K, V](),
		ttlcache.WithTTL[K, V](cacheExpiration),
	)
}

func newDNSCache(cacheExpiration time.Duration) dnsCache {
	return dnsCache{
		listZones:   newCache[struct{}, []Zone](cacheExpiration),
		listRecords: newCache[ID, *[]Record](cacheExpiration),
	}
}

func (c dnsCache) getRecords(zone ID) ([]Record, bool) {
	if rs := c.listRecords.Get(zone); rs != nil {
		return slices.Clone(*rs.Value()), true
	}
	return nil, false
}

func (c dnsCache) setRecords(zone ID, rs []Record) {
	c.listRecords.DeleteExpired()
	c.listRecords.Set(zone, &rs, ttlcache.DefaultTTL)
}

// recordCreated adds a newly created record to the cached records of its zone.
func (c dnsCache) recordCreated(zone ID, r Record) {
	if rs := c.listRecords.Get(zone); rs != nil {
		*rs.Value() = append(*rs.Value(), r)
	}
}

// recordUpdated replaces the cached record with the same ID.
func (c dnsCache) recordUpdated(zone ID, r Record) {
	if rs := c.listRecords.Get(zone); rs != nil {
		for i := range *rs.Value() {
			if (*rs.Value())[i].ID == r.ID {
				(*rs.Value())[i] = r
			}
		}
	}
}

// writeFailed adjusts the cached records of a zone after a rejected write.
// The status code is 0 when no answer was received, in which case the write
// may or may not have happened and the records must be listed again.
// A rejected update of a record that is gone removes that record.
func (c dnsCache) writeFailed(zone ID, id ID, code int) {
	switch {
	case code == 0:
		c.listRecords.Delete(zone)
	case code == http.StatusNotFound && id != "":
		if rs := c.listRecords.Get(zone); rs != nil {
			*rs.Value() = slices.DeleteFunc(*rs.Value(), func(r Record) bool { return r.ID == id })
		}
	}
}
