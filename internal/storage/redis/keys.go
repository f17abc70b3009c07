package redis

import "fmt"

// Key prefix for all quiz data
const keyPrefix = "geoquiz"

// catalogRegionsKey returns the Redis key for the JSON-encoded region partition
func catalogRegionsKey() string {
	return fmt.Sprintf("%s:catalog:regions", keyPrefix)
}

// catalogAliasesKey returns the Redis key for the HASH of entity id -> JSON alias list
func catalogAliasesKey() string {
	return fmt.Sprintf("%s:catalog:aliases", keyPrefix)
}

// catalogMarkersKey returns the Redis key for the HASH of entity id -> JSON coordinates
func catalogMarkersKey() string {
	return fmt.Sprintf("%s:catalog:markers", keyPrefix)
}
