package repository

// CacheRepository caches extracted loan records (as JSON) keyed by a
// document fingerprint, so re-auditing an unchanged statement skips the
// parse. Strictly a collaborator: the core never caches across runs.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
