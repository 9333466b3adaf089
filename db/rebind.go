// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"strconv"
	"strings"

	"github.com/danielhkuo/travel-tracker/cliparse"
)

// Rebind rewrites ? placeholders into the dialect's bind syntax.
// Postgres gets $1, $2, ...; SQLite keeps ?. Queries must not contain a
// literal question mark.
func Rebind(dbType, query string) string {
	if dbType != cliparse.DatabasePostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
