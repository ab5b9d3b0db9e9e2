package metrics

import (
	"database/sql"

	promcollectors "github.com/prometheus/client_golang/prometheus/collectors"
)

// RegisterDBStats exports connection pool statistics of db under the given name
func RegisterDBStats(db *sql.DB, name string) error {
	return registerOnce(promcollectors.NewDBStatsCollector(db, name))
}
