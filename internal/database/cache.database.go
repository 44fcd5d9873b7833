package database

import (
	"fmt"

	"github.com/raj2411/MusicPlayerBackend/config"

	"github.com/valkey-io/valkey-go"
)

type CacheClient valkey.Client

type Cache struct {
	General CacheClient
	User    CacheClient
	Track   CacheClient
}

// Valkey database index organization; each index gives logical separation
// for one cache category.
const (
	// GENERAL_CACHE_INDEX (DB 0) - miscellaneous cache operations
	GENERAL_CACHE_INDEX = iota

	// USER_CACHE_INDEX (DB 1) - user documents, favorites, history
	USER_CACHE_INDEX

	// TRACK_CACHE_INDEX (DB 2) - track catalog documents
	TRACK_CACHE_INDEX
)

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		return log.Error("failed to initialize cache database",
			"reason", "address or port is empty")
	}

	initAddress := []string{fmt.Sprintf("%s:%d", address, port)}

	clients := []struct {
		target *CacheClient
		index  int
		name   string
	}{
		{&s.Cache.General, GENERAL_CACHE_INDEX, "General"},
		{&s.Cache.User, USER_CACHE_INDEX, "User"},
		{&s.Cache.Track, TRACK_CACHE_INDEX, "Track"},
	}

	for _, client := range clients {
		cacheClient, err := valkey.NewClient(valkey.ClientOption{
			InitAddress: initAddress,
			SelectDB:    client.index,
		})
		if err != nil {
			return log.Err("failed to create cache client", err, "cache", client.name)
		}
		*client.target = cacheClient
	}

	log.Info("cache database initialized")
	return nil
}
