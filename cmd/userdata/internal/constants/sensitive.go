package constants

// PIIFields are the field names treated as personally identifiable information.
// Used in: logging/registry.go as the default redaction set
var PIIFields = []string{
	"name",
	"email",
	"ssn",
	"password",
}

// EntryPointFields is the redaction set used when dumping the users table.
// It extends PIIFields with phone numbers.
// Used in: main.go
var EntryPointFields = []string{
	"name",
	"email",
	"phone",
	"ssn",
	"password",
}

// RedactionToken is the string used to replace sensitive values in logs.
// Used in: logging/formatter.go
const RedactionToken = "***"

// FieldSeparator delimits consecutive key=value pairs in a log message.
// Used in: logging/formatter.go, database/row.go
const FieldSeparator = ";"
