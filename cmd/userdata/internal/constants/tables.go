package constants

// UsersTable is the table dumped by the entry point.
// Used in: main.go
const UsersTable = "users"

// MaxIdentifierLength is the longest table name accepted by ReadTable.
// Used in: database/inspector.go
const MaxIdentifierLength = 64
