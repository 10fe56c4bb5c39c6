package constants

// Chat store kinds accepted by CHAT_STORE.
const (
	StorePostgres   = "postgres"
	StoreMySQL      = "mysql"
	StoreSQLite     = "sqlite"
	StoreClickhouse = "clickhouse"
	StoreMongoDB    = "mongodb"
)

// ChatInteractionTable is the table (or collection) holding chat records.
const ChatInteractionTable = "chat_interaction"

func IsSupportedStore(store string) bool {
	switch store {
	case StorePostgres, StoreMySQL, StoreSQLite, StoreClickhouse, StoreMongoDB:
		return true
	}
	return false
}

// IsRelationalStore reports whether the store is served by the GORM adapter.
func IsRelationalStore(store string) bool {
	return IsSupportedStore(store) && store != StoreMongoDB
}
