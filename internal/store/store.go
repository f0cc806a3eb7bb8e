package store

// Keys used by the application in the persisted store. Each key holds a
// whole value that is overwritten on every write, mirroring the
// localStorage model the state was designed around.
const (
	// TeamsKey holds the serialized JSON array of all teams.
	TeamsKey = "teams"

	// UserKey holds the logged-in username as a plain string.
	UserKey = "user"
)

// KV is a string-keyed durable store with whole-value overwrite
// semantics. Get reports found=false for keys that were never written,
// so callers can distinguish "absent" from "empty".
type KV interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}
