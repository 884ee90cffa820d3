package contextkeys

// Dedicated key type so context values set here cannot collide with
// plain string keys from other packages.
type contextKey string

// DBContextKey holds the request-scoped *gorm.DB (pool or transaction).
const DBContextKey = contextKey("db")
