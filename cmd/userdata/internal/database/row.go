package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/thalib/personaldata/cmd/userdata/internal/constants"
)

// Field is one column of a result row
type Field struct {
	Name  string
	Value any
}

// Row is a result row with columns in select order
type Row []Field

// Format renders the row as "k1=v1<sep>k2=v2<sep>". Every pair, including the
// last, is terminated so that every value can be matched by a redactor.
func (r Row) Format(separator string) string {
	var sb strings.Builder
	for _, f := range r {
		sb.WriteString(f.Name)
		sb.WriteByte('=')
		sb.WriteString(formatValue(f.Value))
		sb.WriteString(separator)
	}
	return sb.String()
}

// String renders the row with the default field separator
func (r Row) String() string {
	return r.Format(constants.FieldSeparator)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return constants.NullValue
	case []byte:
		return string(val)
	case string:
		return val
	case time.Time:
		return val.Format(constants.ValueTimeLayout)
	default:
		return fmt.Sprint(val)
	}
}
